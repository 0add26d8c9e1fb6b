package sim

import (
	"fmt"
	"strings"

	"github.com/inference-sim/seek-sim/sim/trace"
)

// SimConfig groups the parameters of one simulation run.
type SimConfig struct {
	StartPosition int              // track the head rests on before the first seek (0..65535)
	Policies      []string         // scheduler names, run in this order; empty = DefaultSchedulers
	BatchSize     int              // requests per scheduling window (0 = whole sequence)
	TraceLevel    trace.TraceLevel // "none" (default) or "seeks"
}

// DefaultSimConfig returns the configuration used when nothing is overridden.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		StartPosition: DefaultHeadPosition,
		Policies:      append([]string(nil), DefaultSchedulers...),
		TraceLevel:    trace.TraceLevelNone,
	}
}

// Validate checks ranges and policy names.
func (c SimConfig) Validate() error {
	if !InBounds(c.StartPosition) {
		return fmt.Errorf("start position %d out of bounds [%d, %d]", c.StartPosition, MinTrack, MaxTrack)
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("batch size must be non-negative, got %d", c.BatchSize)
	}
	for _, p := range c.Policies {
		if !IsValidScheduler(p) {
			return fmt.Errorf("unknown scheduler %q (valid: %s)", p, strings.Join(DefaultSchedulers, ", "))
		}
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	return nil
}

// ParsePolicies splits a comma-separated policy list, trimming blanks.
func ParsePolicies(list string) []string {
	var out []string
	for _, p := range strings.Split(list, ",") {
		if p = strings.TrimSpace(strings.ToLower(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
