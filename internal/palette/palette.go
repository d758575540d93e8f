package palette

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/shinji-kodama/cmapgen/internal/model"
)

// extraCSS holds CSS4 colours missing from the SVG 1.1 table in colornames.
var extraCSS = map[string]model.RGB{
	"rebeccapurple": {R: 0x66, G: 0x33, B: 0x99},
}

// baseColors are the single-letter shorthands. Fractional channels
// (0.5, 0.75) are scaled by 255 and truncated, hence 127 and 191.
var baseColors = map[string]model.RGB{
	"b": {R: 0, G: 0, B: 255},
	"g": {R: 0, G: 127, B: 0},
	"r": {R: 255, G: 0, B: 0},
	"c": {R: 0, G: 191, B: 191},
	"m": {R: 191, G: 0, B: 191},
	"y": {R: 191, G: 191, B: 0},
	"k": {R: 0, G: 0, B: 0},
	"w": {R: 255, G: 255, B: 255},
}

// tableauColors is the Tableau 10 categorical palette.
var tableauColors = map[string]model.RGB{
	"tab:blue":   {R: 0x1f, G: 0x77, B: 0xb4},
	"tab:orange": {R: 0xff, G: 0x7f, B: 0x0e},
	"tab:green":  {R: 0x2c, G: 0xa0, B: 0x2c},
	"tab:red":    {R: 0xd6, G: 0x27, B: 0x28},
	"tab:purple": {R: 0x94, G: 0x67, B: 0xbd},
	"tab:brown":  {R: 0x8c, G: 0x56, B: 0x4b},
	"tab:pink":   {R: 0xe3, G: 0x77, B: 0xc2},
	"tab:gray":   {R: 0x7f, G: 0x7f, B: 0x7f},
	"tab:grey":   {R: 0x7f, G: 0x7f, B: 0x7f},
	"tab:olive":  {R: 0xbc, G: 0xbd, B: 0x22},
	"tab:cyan":   {R: 0x17, G: 0xbe, B: 0xcf},
}

func fromRGBA(c color.RGBA) model.RGB {
	return model.RGB{R: c.R, G: c.G, B: c.B}
}

// Lookup resolves a colour name or hex string to its RGB value.
// Surrounding whitespace and letter case are ignored.
//
// Returns an error wrapping model.ErrInvalidColorName when the name is not
// recognised.
func Lookup(name string) (model.RGB, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	if c, ok := colornames.Map[key]; ok {
		return fromRGBA(c), nil
	}
	if c, ok := extraCSS[key]; ok {
		return c, nil
	}
	if c, ok := baseColors[key]; ok {
		return c, nil
	}
	if c, ok := tableauColors[key]; ok {
		return c, nil
	}

	if strings.HasPrefix(key, "#") && (len(key) == 7 || len(key) == 4) {
		hex, err := colorful.Hex(key)
		if err == nil {
			r, g, b := hex.RGB255()
			return model.RGB{R: r, G: g, B: b}, nil
		}
	}

	return model.RGB{}, fmt.Errorf("%w: %q", model.ErrInvalidColorName, name)
}

// LookupAll resolves every name in order and stops at the first failure.
func LookupAll(names []string) ([]model.RGB, error) {
	out := make([]model.RGB, len(names))
	for i, n := range names {
		c, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// Names returns every accepted colour name, sorted. Hex strings are not
// listed.
func Names() []string {
	names := make([]string, 0, len(colornames.Map)+len(extraCSS)+len(baseColors)+len(tableauColors))
	for n := range colornames.Map {
		names = append(names, n)
	}
	for _, m := range []map[string]model.RGB{extraCSS, baseColors, tableauColors} {
		for n := range m {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
