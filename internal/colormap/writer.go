// Package colormap serialises colormaps in the ncview text format:
// one "R G B" line per entry, decimal channels, in colormap order.
package colormap

import (
	"bufio"
	"fmt"
	"io"

	"github.com/moby/sys/atomicwriter"

	"github.com/shinji-kodama/cmapgen/internal/model"
)

// Encode writes cm to w, one "R G B\n" line per entry.
func Encode(w io.Writer, cm model.Colormap) error {
	bw := bufio.NewWriter(w)
	for _, c := range cm {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes a complete colormap to path.
//
// The colormap is streamed through an atomicwriter, which encodes into a
// temporary file beside path and renames it into place on Close, so a
// failure never leaves a partial colormap behind. A colormap that does not
// hold exactly model.TotalSlots entries is rejected before anything is
// created.
func WriteFile(path string, cm model.Colormap) error {
	if !cm.IsComplete() {
		return fmt.Errorf("colormap has %d entries, want %d", len(cm), model.TotalSlots)
	}

	w, err := atomicwriter.New(path, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Encode(w, cm); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write colormap: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to move colormap into place: %w", err)
	}
	return nil
}
