package workload

import (
	"fmt"
	"math/rand"

	"github.com/inference-sim/seek-sim/sim"
)

// GenerateUniform draws n tracks uniformly from [sim.MinTrack, sim.MaxTrack].
func GenerateUniform(rng *rand.Rand, n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("request count must be non-negative, got %d", n)
	}
	if rng == nil {
		return nil, fmt.Errorf("nil random source")
	}
	span := sim.MaxTrack - sim.MinTrack + 1
	tracks := make([]int, n)
	for i := range tracks {
		tracks[i] = sim.MinTrack + rng.Intn(span)
	}
	return tracks, nil
}

// GenerateRequests draws n uniform tracks from the workload subsystem of a
// PartitionedRNG keyed by seed (0 = time-based).
func GenerateRequests(seed int64, n int) ([]int, error) {
	prng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
	return GenerateUniform(prng.ForSubsystem(sim.SubsystemWorkload), n)
}
