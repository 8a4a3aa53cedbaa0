// Package surface is an immediate-mode display list that can be replayed onto
// go-chart renderers. A visual clears and refills it on every update.
package surface

import (
	"fmt"
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Surface is a sized drawing area holding an ordered list of elements.
type Surface struct {
	width      float64
	height     float64
	background drawing.Color
	elements   []Element
	font       *truetype.Font
}

// New creates an empty surface.
func New(width, height float64) *Surface {
	return &Surface{
		width:      width,
		height:     height,
		background: drawing.ColorWhite,
	}
}

// Resize changes the surface dimensions. Elements are kept.
func (s *Surface) Resize(width, height float64) {
	s.width, s.height = width, height
}

// Size returns the surface dimensions.
func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}

// SetFont overrides the font used for text; the go-chart default is used otherwise.
func (s *Surface) SetFont(f *truetype.Font) {
	s.font = f
}

// Clear removes every element.
func (s *Surface) Clear() {
	s.elements = nil
}

// Add appends elements to the top level of the list.
func (s *Surface) Add(elements ...Element) {
	s.elements = append(s.elements, elements...)
}

// Elements returns the top level elements in draw order.
func (s *Surface) Elements() []Element {
	return append([]Element(nil), s.elements...)
}

// Count returns the number of drawable elements, groups excluded.
func (s *Surface) Count() int {
	n := 0
	Walk(s.elements, func(e Element, _, _ float64) {
		if _, ok := e.(*Group); !ok {
			n++
		}
	})
	return n
}

// Find returns every element, at any depth, whose class is class.
func (s *Surface) Find(class string) []Element {
	var out []Element
	Walk(s.elements, func(e Element, _, _ float64) {
		if e.Class() == class {
			out = append(out, e)
		}
	})
	return out
}

// Walk visits elements depth-first, passing each element's accumulated group offset.
func Walk(elements []Element, fn func(e Element, dx, dy float64)) {
	walk(elements, 0, 0, fn)
}

func walk(elements []Element, dx, dy float64, fn func(e Element, dx, dy float64)) {
	for _, e := range elements {
		fn(e, dx, dy)
		if g, ok := e.(*Group); ok {
			walk(g.Children, dx+g.X, dy+g.Y, fn)
		}
	}
}

// Render replays the display list on a renderer from provider (chart.SVG or
// chart.PNG) and writes the result to w.
func (s *Surface) Render(w io.Writer, provider chart.RendererProvider) error {
	width, height := int(math.Ceil(s.width)), int(math.Ceil(s.height))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("surface: invalid size %dx%d", width, height)
	}
	r, err := provider(width, height)
	if err != nil {
		return fmt.Errorf("surface: create renderer: %w", err)
	}

	font := s.font
	if font == nil {
		if font, err = chart.GetDefaultFont(); err != nil {
			return fmt.Errorf("surface: load default font: %w", err)
		}
	}

	p := &painter{r: r, font: font}
	Rect{ClassName: "background", Width: s.width, Height: s.height, Fill: s.background}.draw(p, 0, 0)
	for _, e := range s.elements {
		e.draw(p, 0, 0)
	}
	return r.Save(w)
}
