package service

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/surface"
)

// Format is an output format for a rendered chart.
type Format string

// Supported output formats.
const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// ErrUnsupportedFormat is returned for an unknown output format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ErrEmptySurface is returned when there is nothing to draw on.
var ErrEmptySurface = errors.New("surface has no area")

// FormatFromPath derives the output format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatSVG, FormatPNG, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// ChartService writes a visual's surface out as an image or document.
type ChartService struct {
	title string
}

func NewChartService(title string) *ChartService {
	return &ChartService{title: title}
}

// Render writes sf to w in format f.
func (s *ChartService) Render(w io.Writer, sf *surface.Surface, f Format) error {
	if sf == nil {
		return ErrEmptySurface
	}
	if width, height := sf.Size(); width <= 0 || height <= 0 {
		return ErrEmptySurface
	}

	switch f {
	case FormatSVG:
		return sf.Render(w, chart.SVG)
	case FormatPNG:
		return sf.Render(w, chart.PNG)
	case FormatPDF:
		return renderPDF(w, sf, s.title)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}
