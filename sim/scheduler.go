package sim

import (
	"fmt"
	"strings"
)

// SeekScheduler decides the order in which pending track requests are serviced.
// Implementations never mutate tracks; they return a new slice holding a
// permutation of it. head is the track the head rests on before the first seek.
type SeekScheduler interface {
	Name() string
	Order(tracks []int, head int) []int
}

// FCFSScheduler services requests in arrival order (no-op).
// This is the baseline the other policies are compared against.
type FCFSScheduler struct{}

func (f *FCFSScheduler) Name() string { return "fcfs" }

func (f *FCFSScheduler) Order(tracks []int, _ int) []int {
	return cloneTracks(tracks)
}

// SSTFScheduler services whichever pending request is closest to the head.
// Ties go to the earliest-arriving request; direction is never considered.
// Each step is a linear scan of what is left, so ordering is O(n²).
type SSTFScheduler struct{}

func (s *SSTFScheduler) Name() string { return "sstf" }

func (s *SSTFScheduler) Order(tracks []int, head int) []int {
	remaining := cloneTracks(tracks)
	order := make([]int, 0, len(tracks))
	pos := head
	for len(remaining) > 0 {
		best := 0
		for j := 1; j < len(remaining); j++ {
			if absDiff(remaining[j], pos) < absDiff(remaining[best], pos) {
				best = j
			}
		}
		pos = remaining[best]
		order = append(order, pos)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return order
}

// scanPasses bounds the elevator to one upward and one downward sweep.
const scanPasses = 2

// SCANScheduler is the elevator policy. The head first sweeps up, servicing
// every request at or above it in increasing order, then reverses once and
// sweeps down. Within a sweep the next request is always the innermost one in
// the direction of travel (ties to the earliest arrival), so the admissible
// range narrows monotonically. Anything not reached after both sweeps keeps
// its arrival order at the end.
type SCANScheduler struct{}

func (s *SCANScheduler) Name() string { return "scan" }

func (s *SCANScheduler) Order(tracks []int, head int) []int {
	remaining := cloneTracks(tracks)
	order := make([]int, 0, len(tracks))
	pos := head
	up := true
	for pass := 0; pass < scanPasses; pass++ {
		for {
			best := -1
			for j, t := range remaining {
				if (up && t < pos) || (!up && t > pos) {
					continue
				}
				if best == -1 || absDiff(t, pos) < absDiff(remaining[best], pos) {
					best = j
				}
			}
			if best == -1 {
				break
			}
			pos = remaining[best]
			order = append(order, pos)
			remaining = append(remaining[:best], remaining[best+1:]...)
		}
		up = !up
	}
	return append(order, remaining...)
}

// ValidSchedulers is the set of recognized scheduler names.
// "elevator" is accepted as an alias for "scan".
var ValidSchedulers = map[string]bool{"fcfs": true, "sstf": true, "scan": true, "elevator": true}

// DefaultSchedulers is the policy line-up used when none is requested.
var DefaultSchedulers = []string{"fcfs", "sstf", "scan"}

// IsValidScheduler reports whether name selects a known policy.
func IsValidScheduler(name string) bool {
	return ValidSchedulers[strings.ToLower(name)]
}

// NewScheduler creates a SeekScheduler by name.
// Valid names: "fcfs", "sstf", "scan" (or "elevator"); matching is case-insensitive.
// Panics on unrecognized names; validate with IsValidScheduler first.
func NewScheduler(name string) SeekScheduler {
	switch strings.ToLower(name) {
	case "fcfs":
		return &FCFSScheduler{}
	case "sstf":
		return &SSTFScheduler{}
	case "scan", "elevator":
		return &SCANScheduler{}
	default:
		panic(fmt.Sprintf("unknown scheduler %q", name))
	}
}

// SchedulerTitle returns the human-readable report title for a policy name.
func SchedulerTitle(name string) string {
	switch strings.ToLower(name) {
	case "fcfs":
		return "First come, first served"
	case "sstf":
		return "Shortest seek first"
	case "scan", "elevator":
		return "Elevator algorithm"
	default:
		return name
	}
}
