package trace

// TraceLevel controls the verbosity of seek tracing.
type TraceLevel string

const (
	// TraceLevelNone keeps only the summary; individual seeks are dropped.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSeeks retains every head movement.
	TraceLevelSeeks TraceLevel = "seeks"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelSeeks: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects seek records for one policy run.
type SimulationTrace struct {
	Config TraceConfig
	Seeks  []SeekRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config: config,
		Seeks:  make([]SeekRecord, 0),
	}
}

// RecordSeek appends a movement of the head from one track to another.
// Step numbers are assigned in recording order starting at 0.
func (st *SimulationTrace) RecordSeek(batch, from, to int) {
	d := to - from
	if d < 0 {
		d = -d
	}
	st.Seeks = append(st.Seeks, SeekRecord{
		Step:      len(st.Seeks),
		Batch:     batch,
		From:      from,
		To:        to,
		Distance:  d,
		Direction: DirectionOf(from, to),
	})
}

// Retained returns the records worth keeping for the configured level:
// all of them for TraceLevelSeeks, nil otherwise.
func (st *SimulationTrace) Retained() []SeekRecord {
	if st == nil || st.Config.Level != TraceLevelSeeks {
		return nil
	}
	return st.Seeks
}
