// generate.go implements the colormap run behind the root command.
//
// Orchestration steps:
//  1. Load the optional preset file
//  2. Merge the -c/-p/-o flags over it into one immutable Config
//  3. Validate the Config as a whole
//  4. Resolve every colour name to RGB
//  5. Allocate the 256 slots across intervals
//  6. Interpolate each interval and concatenate the gradients
//  7. Write the colormap file (only now does anything touch the disk)
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/cmapgen/internal/colormap"
	"github.com/shinji-kodama/cmapgen/internal/config"
	"github.com/shinji-kodama/cmapgen/internal/gradient"
	"github.com/shinji-kodama/cmapgen/internal/model"
	"github.com/shinji-kodama/cmapgen/internal/palette"
	"github.com/shinji-kodama/cmapgen/internal/slot"
)

// buildConfig assembles the run configuration from the preset file and the
// parsed flags. It does not validate the result.
func buildConfig(flags *rootFlags) (config.Config, error) {
	var base config.Config
	if flags.configFile != "" {
		loaded, err := config.LoadFile(flags.configFile)
		if err != nil {
			return config.Config{}, model.WrapCLIError(model.ExitValidation, "failed to load preset", err)
		}
		base = loaded
		VerboseLog("Loaded preset: %s", flags.configFile)
	}

	override := config.Config{OutputFile: flags.outputFile}
	for _, c := range flags.colours {
		override.Intervals = append(override.Intervals, config.ParseColours(c))
	}
	if flags.percentages != "" {
		pcts, err := config.ParsePercentages(flags.percentages)
		if err != nil {
			return config.Config{}, model.WrapCLIError(model.ExitUsage, "invalid --percentages value", err)
		}
		override.Percentages = pcts
	}

	return config.Merge(base, override), nil
}

// resolveIntervals turns the configured colour names into RGB intervals.
func resolveIntervals(cfg config.Config) ([]model.Interval, error) {
	intervals := make([]model.Interval, len(cfg.Intervals))
	for i, names := range cfg.Intervals {
		colours, err := palette.LookupAll(names)
		if err != nil {
			return nil, fmt.Errorf("interval %d: %w", i+1, err)
		}
		intervals[i] = model.Interval{
			Names: append([]string(nil), names...),
			Start: colours[0],
			End:   colours[1],
		}
	}
	return intervals, nil
}

// runGenerate is the main orchestration function of the root command.
func runGenerate(cmd *cobra.Command, flags *rootFlags) error {
	out := cmd.OutOrStdout()

	cfg, err := buildConfig(flags)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return model.WrapCLIError(model.ExitValidation, "invalid input", err)
	}
	VerboseLog("Output file: %s", cfg.OutputFile)
	VerboseLog("Intervals: %v", cfg.Intervals)

	intervals, err := resolveIntervals(cfg)
	if err != nil {
		return model.WrapCLIError(model.ExitValidation, "colour lookup failed", err)
	}

	proportions := cfg.Proportions()
	if proportions.Kind() == model.ProportionEqual && proportions.Len() > 1 {
		printInfo(out, "Colour ranges will have the same size")
	}
	VerboseLog("Proportions: %s", proportions)

	sizes, err := slot.Allocate(proportions)
	if err != nil {
		return model.WrapCLIError(model.ExitValidation, "slot allocation failed", err)
	}
	VerboseLog("Slot allocation: %v", sizes)

	printIntervals(out, intervals, sizes)

	cm, err := gradient.Build(intervals, sizes)
	if err != nil {
		return model.WrapCLIError(model.ExitValidation, "gradient generation failed", err)
	}

	if err := colormap.WriteFile(cfg.OutputFile, cm); err != nil {
		return model.WrapCLIError(model.ExitValidation, "failed to write colormap", err)
	}
	VerboseLog("Wrote %d entries to %s", len(cm), cfg.OutputFile)

	if IsJSONOutput() {
		return printSummaryJSON(out, newRunSummary(cfg.OutputFile, proportions, intervals, sizes))
	}
	return nil
}
