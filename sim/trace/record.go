// Package trace provides per-seek recording of head movements.
// It has no dependencies on sim/ and stores plain data types only.
package trace

// Direction is the way the head moved for a single seek.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	// DirectionNone marks a zero-length seek (request already under the head).
	DirectionNone Direction = "none"
)

// DirectionOf classifies a movement from one track to another.
func DirectionOf(from, to int) Direction {
	switch {
	case to > from:
		return DirectionUp
	case to < from:
		return DirectionDown
	default:
		return DirectionNone
	}
}

// SeekRecord captures a single head movement.
type SeekRecord struct {
	Step      int       `json:"step"`
	Batch     int       `json:"batch"`
	From      int       `json:"from"`
	To        int       `json:"to"`
	Distance  int       `json:"distance"`
	Direction Direction `json:"direction"`
}
