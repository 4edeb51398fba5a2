/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-echarts/go-echarts/v2/components"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/humaidq/cardioviz/logging"
)

var logger = logging.Logger(logging.SourceChart)

// FormatHTML selects the go-echarts renderer. Every other format is handed
// to gonum/plot.
const FormatHTML = "html"

var imageFormats = []string{"png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff"}

// Figure is a rendered-on-demand chart with a fixed page size.
type Figure struct {
	Name   string
	Width  vg.Length
	Height vg.Length

	draw func(dc draw.Canvas)
	page func() *components.Page
}

// FormatFromPath returns the lower-cased extension of path without its dot.
func FormatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// WriteTo renders the figure in the given format.
func (f *Figure) WriteTo(w io.Writer, format string) error {
	format = strings.ToLower(format)

	if format == FormatHTML {
		if f.page == nil {
			return errNoHTMLRenderer
		}
		return f.page().Render(w)
	}

	if !isImageFormat(format) {
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
	if f.draw == nil {
		return errNoImageRenderer
	}

	c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return fmt.Errorf("failed to create %s canvas: %w", format, err)
	}
	f.draw(draw.New(c))

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// Save writes the figure to path, picking the format from its extension.
func (f *Figure) Save(path string) (err error) {
	format := FormatFromPath(path)
	if format != FormatHTML && !isImageFormat(format) {
		return fmt.Errorf("%w: %q", errUnknownFormat, path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := f.WriteTo(out, format); err != nil {
		return fmt.Errorf("failed to render %s: %w", f.Name, err)
	}

	logger.Info("wrote figure", "figure", f.Name, "path", path, "format", format)
	return nil
}

func isImageFormat(format string) bool {
	return slices.Contains(imageFormats, format)
}
