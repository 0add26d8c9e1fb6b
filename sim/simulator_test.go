package sim

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/seek-sim/sim/internal/testutil"
	"github.com/inference-sim/seek-sim/sim/trace"
)

func newTestSimulator(t *testing.T, start int, requests []int, batch int) *Simulator {
	t.Helper()
	cfg := DefaultSimConfig()
	cfg.StartPosition = start
	cfg.BatchSize = batch
	s, err := NewSimulator(cfg, requests)
	require.NoError(t, err)
	return s
}

// TestSimulator_GoldenDataset runs every golden case through every policy.
func TestSimulator_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	require.NotEmpty(t, dataset.Tests)

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			// GIVEN the golden request set
			s := newTestSimulator(t, tc.Start, tc.Requests, tc.BatchSize)

			// WHEN all policies run
			results := s.Run()

			// THEN each policy matches its expected order and distance
			require.Len(t, results, len(DefaultSchedulers))
			for _, r := range results {
				want, ok := tc.Expected[r.Policy]
				require.True(t, ok, "no golden entry for %s", r.Policy)
				if want.Order == nil {
					want.Order = []int{}
				}
				if diff := cmp.Diff(want.Order, r.Order); diff != "" {
					t.Errorf("%s order mismatch (-want +got):\n%s", r.Policy, diff)
				}
				assert.Equal(t, want.Distance, r.Stats.Distance, "%s distance", r.Policy)
				testutil.AssertFloat64Equal(t, r.Policy+" mean", tc.Mean, r.Stats.Mean, 1e-9)
				testutil.AssertFloat64Equal(t, r.Policy+" stddev", tc.StdDev, r.Stats.StdDev, 1e-9)
			}
		})
	}
}

func TestSimulator_EmptyInput_ZeroStatsForAllPolicies(t *testing.T) {
	s := newTestSimulator(t, DefaultHeadPosition, nil, 0)
	for _, r := range s.Run() {
		assert.Equal(t, RunStatistics{}, r.Stats, r.Policy)
		assert.Equal(t, 0, r.Summary.TotalSeeks, r.Policy)
		assert.Equal(t, DefaultHeadPosition, r.Head.Position, r.Policy)
	}
}

func TestSimulator_SingleRequest_SameDistanceEverywhere(t *testing.T) {
	s := newTestSimulator(t, 0, []int{500}, 0)
	for _, r := range s.Run() {
		assert.Equal(t, int64(500), r.Stats.Distance, r.Policy)
	}
}

func TestSimulator_PoliciesDoNotShareHeadState(t *testing.T) {
	// GIVEN two runs of the same policy on one simulator
	s := newTestSimulator(t, 53, textbookRequests, 0)

	// WHEN SSTF runs twice
	first := s.RunPolicy(&SSTFScheduler{})
	second := s.RunPolicy(&SSTFScheduler{})

	// THEN the second starts fresh from the configured start
	assert.Equal(t, first.Stats.Distance, second.Stats.Distance)
	assert.Equal(t, first.Order, second.Order)
}

func TestSimulator_HeadStateMatchesDistance(t *testing.T) {
	s := newTestSimulator(t, 53, textbookRequests, 3)
	for _, r := range s.Run() {
		assert.Equal(t, r.Stats.Distance, r.Head.Traveled, r.Policy)
		assert.Equal(t, len(textbookRequests), r.Head.Serviced, r.Policy)
		assert.Equal(t, r.Order[len(r.Order)-1], r.Head.Position, r.Policy)
	}
}

func TestSimulator_DoesNotMutateCallerSlice(t *testing.T) {
	input := append([]int(nil), textbookRequests...)
	s := newTestSimulator(t, 53, input, 0)
	s.Run()
	assert.Equal(t, textbookRequests, input)
}

func TestSimulator_TraceLevelSeeks_RetainsRecords(t *testing.T) {
	cfg := DefaultSimConfig()
	cfg.StartPosition = 53
	cfg.TraceLevel = trace.TraceLevelSeeks
	cfg.Policies = []string{"scan"}
	s, err := NewSimulator(cfg, textbookRequests)
	require.NoError(t, err)

	results := s.Run()
	require.Len(t, results, 1)
	r := results[0]
	require.Len(t, r.Seeks, len(textbookRequests))
	assert.Equal(t, 53, r.Seeks[0].From)
	assert.Equal(t, 65, r.Seeks[0].To)
	// one up sweep then one down sweep
	assert.Equal(t, 1, r.Summary.Reversals)
	assert.Equal(t, 146, r.Summary.MaxSeek)
}

func TestSimulator_TraceLevelNone_DropsRecordsKeepsSummary(t *testing.T) {
	s := newTestSimulator(t, 53, textbookRequests, 0)
	for _, r := range s.Run() {
		assert.Nil(t, r.Seeks, r.Policy)
		assert.Equal(t, len(textbookRequests), r.Summary.TotalSeeks, r.Policy)
	}
}

func TestSimulator_PolicyOrderFollowsConfig(t *testing.T) {
	cfg := DefaultSimConfig()
	cfg.Policies = []string{"scan", "fcfs"}
	s, err := NewSimulator(cfg, []int{1, 2, 3})
	require.NoError(t, err)

	results := s.Run()
	require.Len(t, results, 2)
	assert.Equal(t, "scan", results[0].Policy)
	assert.Equal(t, "fcfs", results[1].Policy)
}

func TestNewSimulator_RejectsOutOfRangeRequests(t *testing.T) {
	_, err := NewSimulator(DefaultSimConfig(), []int{1, -5})
	require.Error(t, err)
}

func TestNewSimulator_EmptyPolicies_UsesDefaults(t *testing.T) {
	cfg := DefaultSimConfig()
	cfg.Policies = nil
	s, err := NewSimulator(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultSchedulers, s.Config.Policies)
}

func TestBatches(t *testing.T) {
	tracks := []int{1, 2, 3, 4, 5}
	tests := []struct {
		name string
		n    int
		want [][]int
	}{
		{"zero means whole", 0, [][]int{{1, 2, 3, 4, 5}}},
		{"larger than input", 10, [][]int{{1, 2, 3, 4, 5}}},
		{"uneven tail", 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"singletons", 1, [][]int{{1}, {2}, {3}, {4}, {5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Batches(tracks, tt.n))
		})
	}
	assert.Nil(t, Batches(nil, 3))
}

func TestSimulator_BatchSizeOne_EveryPolicyIsFCFS(t *testing.T) {
	// with one request per window there is nothing to reorder
	s := newTestSimulator(t, 53, textbookRequests, 1)
	for _, r := range s.Run() {
		assert.Equal(t, textbookRequests, r.Order, r.Policy)
		assert.Equal(t, int64(640), r.Stats.Distance, r.Policy)
	}
}
