package model

import (
	"fmt"
	"strings"
)

// TotalSlots is the number of entries in every colormap. ncview reads
// colormaps as a fixed 256-entry lookup table.
const TotalSlots = 256

// RGB is a single colour with 8-bit channels.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Channels returns the three channels in R, G, B order.
// Interpolation code iterates over them instead of naming each field.
func (c RGB) Channels() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// RGBFromChannels is the inverse of Channels.
func RGBFromChannels(ch [3]uint8) RGB {
	return RGB{R: ch[0], G: ch[1], B: ch[2]}
}

// String returns the colormap line representation without the newline.
// Format: "R G B"
func (c RGB) String() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

// Interval is a single start-to-end colour transition request.
//
// Names keeps the colour names the interval was built from so the CLI can
// report what it is about to interpolate. Start and End are the resolved
// colours.
type Interval struct {
	// Names holds the original colour names, in start, end order.
	Names []string `json:"names"`

	// Start is the colour of the first slot of the interval.
	Start RGB `json:"start"`

	// End is the colour of the last slot of the interval.
	End RGB `json:"end"`
}

// String returns a human-readable representation of the interval.
// Format: "[red, blue]"
func (i Interval) String() string {
	return "[" + strings.Join(i.Names, ", ") + "]"
}

// Colormap is the final lookup table written to the output file.
// A complete colormap holds exactly TotalSlots entries.
type Colormap []RGB

// IsComplete reports whether the colormap has exactly TotalSlots entries.
func (c Colormap) IsComplete() bool {
	return len(c) == TotalSlots
}

// ProportionKind tells the two Proportions variants apart.
type ProportionKind int

const (
	// ProportionEqual splits the slots evenly across all intervals.
	ProportionEqual ProportionKind = iota

	// ProportionWeighted splits the slots by user-supplied percentages.
	ProportionWeighted
)

// String returns the string representation of ProportionKind.
func (k ProportionKind) String() string {
	switch k {
	case ProportionEqual:
		return "equal"
	case ProportionWeighted:
		return "weighted"
	default:
		return fmt.Sprintf("ProportionKind(%d)", int(k))
	}
}

// Proportions describes how the colormap slots are shared between
// intervals. It is either an equal split across n intervals or an explicit
// list of percentages, one per interval.
//
// The zero value is an equal split across zero intervals, which the
// allocator rejects.
type Proportions struct {
	kind        ProportionKind
	count       int
	percentages []int
}

// Equal returns Proportions that split the slots evenly across n intervals.
func Equal(n int) Proportions {
	return Proportions{kind: ProportionEqual, count: n}
}

// Weighted returns Proportions that split the slots by percentages.
// The slice is copied; later changes by the caller are not observed.
func Weighted(percentages []int) Proportions {
	p := make([]int, len(percentages))
	copy(p, percentages)
	return Proportions{kind: ProportionWeighted, count: len(p), percentages: p}
}

// Kind returns which variant p is.
func (p Proportions) Kind() ProportionKind {
	return p.kind
}

// Len returns the number of intervals the proportions cover.
func (p Proportions) Len() int {
	return p.count
}

// Percentages returns a copy of the weighted percentages, or nil for an
// equal split.
func (p Proportions) Percentages() []int {
	if p.kind != ProportionWeighted {
		return nil
	}
	out := make([]int, len(p.percentages))
	copy(out, p.percentages)
	return out
}

// Targets resolves the proportions into real-valued slot targets that sum
// (up to floating point error) to TotalSlots.
//
// Equal split:    every target is TotalSlots / n
// Weighted split: target i is TotalSlots * percentages[i] / 100
func (p Proportions) Targets() []float64 {
	targets := make([]float64, p.count)
	switch p.kind {
	case ProportionWeighted:
		for i, pct := range p.percentages {
			targets[i] = float64(TotalSlots*pct) / 100
		}
	default:
		for i := range targets {
			targets[i] = float64(TotalSlots) / float64(p.count)
		}
	}
	return targets
}

// String returns a human-readable representation of the proportions.
func (p Proportions) String() string {
	if p.kind == ProportionWeighted {
		parts := make([]string, len(p.percentages))
		for i, pct := range p.percentages {
			parts[i] = fmt.Sprintf("%d%%", pct)
		}
		return "weighted(" + strings.Join(parts, ", ") + ")"
	}
	return fmt.Sprintf("equal(%d)", p.count)
}
