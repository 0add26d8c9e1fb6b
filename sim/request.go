// Defines the track-request model consumed by the scheduling policies.
// A request is nothing more than the cylinder/track number the head must visit.

package sim

import "fmt"

const (
	// MinTrack is the innermost addressable track.
	MinTrack = 0
	// MaxTrack is the outermost addressable track.
	MaxTrack = 65535
	// DefaultHeadPosition is the track the head rests on before the first seek.
	DefaultHeadPosition = 32767
)

// InBounds reports whether track lies within [MinTrack, MaxTrack].
func InBounds(track int) bool {
	return track >= MinTrack && track <= MaxTrack
}

// ValidateTracks returns an error naming the first out-of-range track, if any.
func ValidateTracks(tracks []int) error {
	for i, t := range tracks {
		if !InBounds(t) {
			return fmt.Errorf("track %d at index %d out of bounds [%d, %d]", t, i, MinTrack, MaxTrack)
		}
	}
	return nil
}

// cloneTracks returns a copy so callers' slices are never reordered in place.
func cloneTracks(tracks []int) []int {
	out := make([]int, len(tracks))
	copy(out, tracks)
	return out
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
