package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/shinji-kodama/cmapgen/internal/model"
)

// label renders a bold coloured message label for w. The renderer is bound
// to w, so the colours are dropped when w is not a terminal even if another
// stream is.
func label(w io.Writer, text string, color lipgloss.Color) string {
	return lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(color).Render(text)
}

func errorLabel(w io.Writer) string {
	return label(w, "ERROR", lipgloss.Color("1"))
}

func infoLabel(w io.Writer) string {
	return label(w, "INFO", lipgloss.Color("3"))
}

// printInfo writes an "INFO -- message" line. It is silent in JSON mode so
// stdout carries only the JSON summary.
func printInfo(w io.Writer, format string, args ...interface{}) {
	if IsJSONOutput() {
		return
	}
	fmt.Fprintf(w, infoLabel(w)+" -- "+format+"\n", args...)
}

// intervalSummary is one interval of the run summary.
type intervalSummary struct {
	Colours []string  `json:"colours"`
	Start   model.RGB `json:"start"`
	End     model.RGB `json:"end"`
	Slots   int       `json:"slots"`
}

// runSummary describes a completed run. It is printed as JSON with --json.
type runSummary struct {
	OutputFile  string            `json:"outputFile"`
	Proportions string            `json:"proportions"`
	Intervals   []intervalSummary `json:"intervals"`
}

// newRunSummary pairs each interval with its allocated slot count.
func newRunSummary(outputFile string, p model.Proportions, intervals []model.Interval, sizes []int) runSummary {
	s := runSummary{
		OutputFile:  outputFile,
		Proportions: p.String(),
		Intervals:   make([]intervalSummary, len(intervals)),
	}
	for i, iv := range intervals {
		s.Intervals[i] = intervalSummary{
			Colours: iv.Names,
			Start:   iv.Start,
			End:     iv.End,
			Slots:   sizes[i],
		}
	}
	return s
}

// printIntervals lists the requested intervals before the colormap is built.
//
//	INFO -- Will generate colormap interpolating the following intervals:
//	 * [red, green]  (255 0 0 -> 0 128 0, 77 slots)
func printIntervals(w io.Writer, intervals []model.Interval, sizes []int) {
	if IsJSONOutput() {
		return
	}
	printInfo(w, "Will generate colormap interpolating the following intervals:")
	for i, iv := range intervals {
		fmt.Fprintf(w, " * %s  (%s -> %s, %s)\n", iv.String(), iv.Start, iv.End, FormatSlots(sizes[i]))
	}
}

// printSummaryJSON writes the run summary as indented JSON.
func printSummaryJSON(w io.Writer, s runSummary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// FormatSlots renders a slot count with its unit.
//
//	1  → "1 slot"
//	77 → "77 slots"
func FormatSlots(n int) string {
	if n == 1 {
		return "1 slot"
	}
	return fmt.Sprintf("%d slots", n)
}
