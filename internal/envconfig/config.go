package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

var (
	// Set via NDLAB_DEBUG in the environment
	Debug bool
	// Set via NDLAB_SEED in the environment
	Seed uint64
	// Set via NDLAB_TRIALS in the environment
	Trials int
	// Set via NDLAB_FLIPS in the environment
	Flips int
	// Set via NDLAB_BINS in the environment
	Bins int
	// Set via NDLAB_CHART_DIR in the environment
	ChartDir string
)

const (
	defaultSeed   = 42
	defaultTrials = 10000
	defaultFlips  = 100
	defaultBins   = 30
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"NDLAB_DEBUG":     {"NDLAB_DEBUG", Debug, "Show additional debug information (e.g. NDLAB_DEBUG=1)"},
		"NDLAB_SEED":      {"NDLAB_SEED", Seed, "Seed for the coin-flip simulation (default 42)"},
		"NDLAB_TRIALS":    {"NDLAB_TRIALS", Trials, "Number of simulated trials (default 10000)"},
		"NDLAB_FLIPS":     {"NDLAB_FLIPS", Flips, "Coin flips per trial (default 100)"},
		"NDLAB_BINS":      {"NDLAB_BINS", Bins, "Histogram bins for the probability estimates (default 30)"},
		"NDLAB_CHART_DIR": {"NDLAB_CHART_DIR", ChartDir, "Directory for PNG charts; empty disables charts"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func init() {
	LoadConfig()
}

func LoadConfig() {
	Debug = false
	if debug := clean("NDLAB_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			Debug = d
		} else {
			Debug = true
		}
	}

	Seed = defaultSeed
	if seed := clean("NDLAB_SEED"); seed != "" {
		s, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			slog.Error("invalid setting, ignoring", "NDLAB_SEED", seed, "error", err)
		} else {
			Seed = s
		}
	}

	Trials = positive("NDLAB_TRIALS", defaultTrials)
	Flips = positive("NDLAB_FLIPS", defaultFlips)
	Bins = positive("NDLAB_BINS", defaultBins)

	ChartDir = clean("NDLAB_CHART_DIR")
}

// positive reads a strictly positive integer, keeping def on bad input.
func positive(key string, def int) int {
	raw := clean(key)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		slog.Error("invalid setting must be greater than zero", key, raw, "error", err)
		return def
	}
	return val
}
