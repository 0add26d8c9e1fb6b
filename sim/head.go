package sim

// HeadState is the explicit per-policy head model.
// Each policy run owns exactly one HeadState; when requests are scheduled in
// batches the same state is carried from batch to batch.
type HeadState struct {
	Position int   `json:"position"` // track the head currently sits on
	Traveled int64 `json:"traveled"` // cumulative tracks crossed since the state was created
	Serviced int   `json:"serviced"` // number of requests serviced so far
}

// NewHeadState creates a state resting on start with no history.
func NewHeadState(start int) *HeadState {
	return &HeadState{Position: start}
}

// MoveTo services track: the head travels there and the tallies advance.
// Returns the length of this seek.
func (h *HeadState) MoveTo(track int) int {
	d := absDiff(track, h.Position)
	h.Traveled += int64(d)
	h.Serviced++
	h.Position = track
	return d
}
