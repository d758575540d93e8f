package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/cmapgen/internal/model"
)

// Config is the complete, immutable description of one colormap run.
//
// The zero value is an empty configuration that fails validation.
// Callers treat a Config as a value: Merge returns a new Config and no
// method mutates its receiver.
type Config struct {
	// Intervals lists the colour names of each interval, in order.
	// Each entry must hold exactly a start and an end colour.
	Intervals [][]string `json:"intervals" yaml:"intervals"`

	// Percentages optionally weights each interval. Empty means an equal
	// split. When present it must have one entry per interval and sum to 100.
	Percentages []int `json:"percentages,omitempty" yaml:"percentages,omitempty"`

	// OutputFile is the destination path of the generated colormap.
	OutputFile string `json:"output" yaml:"output"`
}

// LoadFile reads a preset file and parses it into a Config.
//
// The format is chosen by extension:
//   - .yaml, .yml:  YAML via gopkg.in/yaml.v3
//   - .json, .jsonc: JSON with optional comments and trailing commas,
//     cleaned with github.com/tidwall/jsonc before encoding/json parses it
//
// Unknown keys are ignored. The returned Config is not validated.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read preset file: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse preset file %s: %w", path, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse preset file %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported preset file extension %q (valid: .yaml, .yml, .json, .jsonc)", ext)
	}

	return cfg, nil
}

// Merge overlays override on base and returns the result.
//
// Each field group is replaced wholesale when set in override: flag
// intervals do not append to preset intervals, they replace them.
func Merge(base, override Config) Config {
	out := Config{
		Intervals:   cloneIntervals(base.Intervals),
		Percentages: cloneInts(base.Percentages),
		OutputFile:  base.OutputFile,
	}
	if len(override.Intervals) > 0 {
		out.Intervals = cloneIntervals(override.Intervals)
	}
	if len(override.Percentages) > 0 {
		out.Percentages = cloneInts(override.Percentages)
	}
	if override.OutputFile != "" {
		out.OutputFile = override.OutputFile
	}
	return out
}

// Validate checks the configuration as a whole and returns the first
// problem found, wrapping one of the model error sentinels.
//
// Checks, in order:
//  1. an output file is set
//  2. at least one and at most model.TotalSlots intervals are given
//  3. every interval has exactly two colour names
//  4. percentages, when given, each lie in [1, 100], sum to 100, and
//     match the interval count
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputFile) == "" {
		return model.ErrMissingOutputFile
	}

	if len(c.Intervals) == 0 {
		return model.ErrNoIntervals
	}
	if len(c.Intervals) > model.TotalSlots {
		return fmt.Errorf("%w (got %d)", model.ErrTooManyIntervals, len(c.Intervals))
	}

	for i, iv := range c.Intervals {
		if len(iv) != 2 {
			return fmt.Errorf("interval %d %v: %w (got %d)", i+1, iv, model.ErrIntervalArity, len(iv))
		}
	}

	if len(c.Percentages) == 0 {
		return nil
	}

	total := 0
	for _, p := range c.Percentages {
		if p < 1 || p > 100 {
			return fmt.Errorf("%w (got %d)", model.ErrPercentageRange, p)
		}
		total += p
	}
	if total != 100 {
		return fmt.Errorf("%w (got %d)", model.ErrPercentageSum, total)
	}
	if len(c.Percentages) != len(c.Intervals) {
		return fmt.Errorf("%w (got %d percentages for %d intervals)",
			model.ErrPercentageCount, len(c.Percentages), len(c.Intervals))
	}

	return nil
}

// Proportions returns the slot split requested by the configuration:
// a weighted split when percentages were given, an equal split otherwise.
func (c Config) Proportions() model.Proportions {
	if len(c.Percentages) > 0 {
		return model.Weighted(c.Percentages)
	}
	return model.Equal(len(c.Intervals))
}

// ParseColours splits a comma-separated --colours value into trimmed
// colour names. Empty elements are kept so that "red," is reported as a
// bad colour name instead of silently becoming a one-colour interval.
func ParseColours(value string) []string {
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ParsePercentages parses a comma-separated --percentages value.
func ParsePercentages(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid percentage %q: must be an integer", p)
		}
		out = append(out, n)
	}
	return out, nil
}

func cloneIntervals(in [][]string) [][]string {
	if in == nil {
		return nil
	}
	out := make([][]string, len(in))
	for i, iv := range in {
		out[i] = append([]string(nil), iv...)
	}
	return out
}

func cloneInts(in []int) []int {
	if in == nil {
		return nil
	}
	return append([]int(nil), in...)
}
