package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/seek-sim/sim"
	"github.com/inference-sim/seek-sim/sim/trace"
)

func writeTempYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenarioSpec_ValidYAML(t *testing.T) {
	yaml := `
version: "1"
seed: 42
head: 53
policies: [fcfs, sstf, elevator]
batch_size: 4
trace: seeks
requests: [98, 183, 37, 122, 14, 124, 65, 67]
`
	spec, err := LoadScenarioSpec(writeTempYAML(t, t.TempDir(), yaml))
	require.NoError(t, err)
	require.NoError(t, spec.Validate())

	require.NotNil(t, spec.Head)
	assert.Equal(t, 53, *spec.Head)
	assert.Equal(t, int64(42), spec.Seed)
	assert.Equal(t, []string{"fcfs", "sstf", "elevator"}, spec.Policies)
	assert.Equal(t, 4, spec.BatchSize)
	assert.Len(t, spec.Requests, 8)
}

func TestLoadScenarioSpec_UnknownKey_Rejected(t *testing.T) {
	yaml := `
requests: [1]
hed: 53
`
	_, err := LoadScenarioSpec(writeTempYAML(t, t.TempDir(), yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing scenario spec")
}

func TestLoadScenarioSpec_MissingFile(t *testing.T) {
	_, err := LoadScenarioSpec(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestScenarioSpec_Validate(t *testing.T) {
	head := func(v int) *int { return &v }
	tests := []struct {
		name    string
		spec    ScenarioSpec
		wantErr string
	}{
		{"no source", ScenarioSpec{}, "at least one"},
		{"bad version", ScenarioSpec{Version: "9", Requests: []int{1}}, "version"},
		{"head out of range", ScenarioSpec{Head: head(70000), Requests: []int{1}}, "head"},
		{"bad policy", ScenarioSpec{Policies: []string{"look"}, Requests: []int{1}}, "policies[0]"},
		{"negative batch", ScenarioSpec{BatchSize: -1, Requests: []int{1}}, "batch_size"},
		{"bad trace", ScenarioSpec{Trace: "all", Requests: []int{1}}, "trace"},
		{"request out of range", ScenarioSpec{Requests: []int{1, 65536}}, "requests"},
		{"negative random", ScenarioSpec{Random: &RandomSpec{Count: -3}}, "random.count"},
		{"random only", ScenarioSpec{Random: &RandomSpec{Count: 3}}, ""},
		{"file only", ScenarioSpec{File: "x.txt"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScenarioSpec_Apply_OverlaysOnlySetFields(t *testing.T) {
	base := sim.DefaultSimConfig()

	// GIVEN an empty scenario
	// THEN base is unchanged
	assert.Equal(t, base, (&ScenarioSpec{}).Apply(base))

	// GIVEN a scenario setting every field
	h := 0
	spec := &ScenarioSpec{Head: &h, Policies: []string{"scan"}, BatchSize: 3, Trace: "seeks"}
	cfg := spec.Apply(base)
	assert.Equal(t, 0, cfg.StartPosition)
	assert.Equal(t, []string{"scan"}, cfg.Policies)
	assert.Equal(t, 3, cfg.BatchSize)
	assert.Equal(t, trace.TraceLevelSeeks, cfg.TraceLevel)
}

func TestScenarioSpec_LoadRequests_CombinesSources(t *testing.T) {
	// GIVEN a scenario with inline requests, a sibling file and random requests
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "more.txt"), []byte("7 8 bogus 9"), 0644))
	yaml := `
seed: 3
requests: [1, 2]
file: more.txt
random:
  count: 5
`
	spec, err := LoadScenarioSpec(writeTempYAML(t, dir, yaml))
	require.NoError(t, err)

	// WHEN requests are loaded
	tracks, err := spec.LoadRequests()

	// THEN inline, file and random requests appear in that order
	require.NoError(t, err)
	require.Len(t, tracks, 2+3+5)
	assert.Equal(t, []int{1, 2, 7, 8, 9}, tracks[:5])

	again, err := spec.LoadRequests()
	require.NoError(t, err)
	assert.Equal(t, tracks, again, "fixed seed must reproduce random requests")
}
