package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalSeeks int     `json:"total_seeks"`
	ZeroSeeks  int     `json:"zero_seeks"`
	UpSeeks    int     `json:"up_seeks"`
	DownSeeks  int     `json:"down_seeks"`
	Reversals  int     `json:"reversals"`
	MaxSeek    int     `json:"max_seek"`
	MeanSeek   float64 `json:"mean_seek"`
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
// A reversal is counted whenever a moving seek goes the opposite way from the
// previous moving seek; zero-length seeks do not break a run.
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil || len(st.Seeks) == 0 {
		return summary
	}

	summary.TotalSeeks = len(st.Seeks)
	total := 0
	last := DirectionNone
	for _, s := range st.Seeks {
		total += s.Distance
		if s.Distance > summary.MaxSeek {
			summary.MaxSeek = s.Distance
		}
		switch s.Direction {
		case DirectionNone:
			summary.ZeroSeeks++
			continue
		case DirectionUp:
			summary.UpSeeks++
		case DirectionDown:
			summary.DownSeeks++
		}
		if last != DirectionNone && s.Direction != last {
			summary.Reversals++
		}
		last = s.Direction
	}
	summary.MeanSeek = float64(total) / float64(len(st.Seeks))

	return summary
}
