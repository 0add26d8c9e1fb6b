package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/seek-sim/sim"
)

// envPrefix scopes the environment: SEEKSIM_HEAD -> head, SEEKSIM_LOG -> log.
const envPrefix = "SEEKSIM_"

// EnvConfig is the configuration layered from defaults and the environment.
// Explicitly set CLI flags override it.
type EnvConfig struct {
	Head     int
	LogLevel string
	Policies string
	Output   string
}

func configDefaults() map[string]interface{} {
	return map[string]interface{}{
		"head":     sim.DefaultHeadPosition,
		"log":      "warn",
		"policies": strings.Join(sim.DefaultSchedulers, ","),
		"output":   "text",
	}
}

// LoadEnvConfig reads defaults then overlays SEEKSIM_* variables.
// An absent, non-integer or out-of-range head falls back to the default.
func LoadEnvConfig() (*EnvConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(configDefaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading config defaults: %w", err)
	}

	// Only non-empty env vars count, so SEEKSIM_HEAD= keeps the default.
	if err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(strings.TrimPrefix(key, envPrefix)), strings.TrimSpace(value)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	return &EnvConfig{
		Head:     parseHead(k.String("head"), envPrefix+"HEAD"),
		LogLevel: k.String("log"),
		Policies: k.String("policies"),
		Output:   k.String("output"),
	}, nil
}

// parseHead converts a configured head position, warning and falling back
// to sim.DefaultHeadPosition when the value is unusable.
func parseHead(raw, source string) int {
	head, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		logrus.Warnf("%s=%q is not an integer; using default head position %d", source, raw, sim.DefaultHeadPosition)
		return sim.DefaultHeadPosition
	}
	if !sim.InBounds(head) {
		logrus.Warnf("%s=%d out of bounds [%d, %d]; using default head position %d",
			source, head, sim.MinTrack, sim.MaxTrack, sim.DefaultHeadPosition)
		return sim.DefaultHeadPosition
	}
	return head
}
