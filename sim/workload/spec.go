package workload

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/seek-sim/sim"
	"github.com/inference-sim/seek-sim/sim/trace"
)

// ScenarioSpec is the top-level scenario configuration.
// Loaded from YAML via LoadScenarioSpec(path). Request sources are combined in
// the order requests, file, random.
type ScenarioSpec struct {
	Version   string      `yaml:"version"`
	Seed      int64       `yaml:"seed"`
	Head      *int        `yaml:"head,omitempty"` // nil = keep the configured start position
	Policies  []string    `yaml:"policies,omitempty"`
	BatchSize int         `yaml:"batch_size,omitempty"`
	Trace     string      `yaml:"trace,omitempty"`
	Requests  []int       `yaml:"requests,omitempty"`
	File      string      `yaml:"file,omitempty"` // relative paths resolve against the scenario file's directory
	Random    *RandomSpec `yaml:"random,omitempty"`

	dir string
}

// RandomSpec asks for uniformly generated requests.
type RandomSpec struct {
	Count int `yaml:"count"`
}

var validVersions = map[string]bool{"": true, "1": true}

// LoadScenarioSpec reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenarioSpec(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario spec: %w", err)
	}
	spec, err := ParseScenarioSpec(data)
	if err != nil {
		return nil, err
	}
	spec.dir = filepath.Dir(path)
	return spec, nil
}

// ParseScenarioSpec decodes a scenario from YAML bytes.
func ParseScenarioSpec(data []byte) (*ScenarioSpec, error) {
	var spec ScenarioSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing scenario spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the scenario are valid.
func (s *ScenarioSpec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("unsupported scenario version %q; valid: 1", s.Version)
	}
	if s.Head != nil && !sim.InBounds(*s.Head) {
		return fmt.Errorf("head %d out of bounds [%d, %d]", *s.Head, sim.MinTrack, sim.MaxTrack)
	}
	for i, p := range s.Policies {
		if !sim.IsValidScheduler(p) {
			return fmt.Errorf("policies[%d]: unknown scheduler %q", i, p)
		}
	}
	if s.BatchSize < 0 {
		return fmt.Errorf("batch_size must be non-negative, got %d", s.BatchSize)
	}
	if !trace.IsValidTraceLevel(s.Trace) {
		return fmt.Errorf("unknown trace level %q; valid: none, seeks", s.Trace)
	}
	if len(s.Requests) == 0 && s.File == "" && s.Random == nil {
		return fmt.Errorf("at least one of requests, file or random required")
	}
	if err := sim.ValidateTracks(s.Requests); err != nil {
		return fmt.Errorf("requests: %w", err)
	}
	if s.Random != nil && s.Random.Count < 0 {
		return fmt.Errorf("random.count must be non-negative, got %d", s.Random.Count)
	}
	return nil
}

// Apply overlays the scenario's settings on base. Unset fields keep base values.
func (s *ScenarioSpec) Apply(base sim.SimConfig) sim.SimConfig {
	cfg := base
	if s.Head != nil {
		cfg.StartPosition = *s.Head
	}
	if len(s.Policies) > 0 {
		cfg.Policies = append([]string(nil), s.Policies...)
	}
	if s.BatchSize > 0 {
		cfg.BatchSize = s.BatchSize
	}
	if s.Trace != "" {
		cfg.TraceLevel = trace.TraceLevel(s.Trace)
	}
	return cfg
}

// LoadRequests materializes every request source of the scenario.
func (s *ScenarioSpec) LoadRequests() ([]int, error) {
	tracks := append([]int(nil), s.Requests...)

	if s.File != "" {
		path := s.File
		if !filepath.IsAbs(path) && s.dir != "" {
			path = filepath.Join(s.dir, path)
		}
		fromFile, _, err := ReadTracksFile(path)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, fromFile...)
	}

	if s.Random != nil {
		generated, err := GenerateRequests(s.Seed, s.Random.Count)
		if err != nil {
			return nil, fmt.Errorf("generating random requests: %w", err)
		}
		tracks = append(tracks, generated...)
	}

	logrus.Debugf("scenario: %d requests loaded", len(tracks))
	return tracks, nil
}
