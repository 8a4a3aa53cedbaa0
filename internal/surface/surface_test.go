package surface

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func sample() *Surface {
	s := New(200, 100)
	g := &Group{ClassName: "chart", X: 10, Y: 20}
	g.Add(
		Rect{ClassName: "bar", X: 5, Y: 5, Width: 20, Height: 40, Fill: drawing.ColorBlue, Tooltip: "A: 1"},
		Text{ClassName: "data-label", X: 15, Y: 2, Body: "1", FontSize: 12, Color: drawing.ColorBlack, Anchor: AnchorMiddle},
		Line{ClassName: "connector", X1: 0, Y1: 0, X2: 10, Y2: 10, Stroke: drawing.ColorBlack, StrokeWidth: 1, Dash: []float64{4, 3}},
		Circle{ClassName: "variance-bubble", CX: 50, CY: 20, Radius: 22, Fill: drawing.ColorRed, FillOpacity: 0.9, Stroke: drawing.ColorWhite, StrokeWidth: 2},
	)
	s.Add(g)
	return s
}

func TestFindAndCount(t *testing.T) {
	s := sample()
	if got := s.Count(); got != 4 {
		t.Fatalf("Count = %d, want 4", got)
	}
	bars := s.Find("bar")
	if len(bars) != 1 {
		t.Fatalf("Find(bar) = %d elements, want 1", len(bars))
	}
	if r, ok := bars[0].(Rect); !ok || r.Tooltip != "A: 1" {
		t.Fatalf("Find(bar) returned %#v", bars[0])
	}
	if len(s.Find("chart")) != 1 {
		t.Fatalf("groups should be found by class")
	}
}

func TestWalkAccumulatesOffsets(t *testing.T) {
	s := sample()
	var found bool
	Walk(s.Elements(), func(e Element, dx, dy float64) {
		if e.Class() == "bar" {
			found = true
			if dx != 10 || dy != 20 {
				t.Fatalf("bar offset = (%v, %v), want (10, 20)", dx, dy)
			}
		}
	})
	if !found {
		t.Fatalf("bar not visited")
	}
}

func TestClear(t *testing.T) {
	s := sample()
	s.Clear()
	if s.Count() != 0 || len(s.Elements()) != 0 {
		t.Fatalf("surface not empty after Clear")
	}
}

func TestCircleFillColor(t *testing.T) {
	c := Circle{Fill: drawing.Color{R: 10, G: 20, B: 30, A: 255}, FillOpacity: 0.9}
	if got := c.FillColor().A; got != 230 {
		t.Fatalf("alpha = %d, want 230", got)
	}
	c.FillOpacity = 0
	if got := c.FillColor().A; got != 255 {
		t.Fatalf("alpha without opacity = %d, want 255", got)
	}
}

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := sample().Render(&buf, chart.SVG); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("output is not an svg document: %q", out)
	}
	if !strings.Contains(out, "<circle") {
		t.Fatalf("svg has no circle: %q", out)
	}
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := sample().Render(&buf, chart.PNG); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("output is not a png")
	}
}

func TestRenderRejectsEmptySize(t *testing.T) {
	s := New(0, 100)
	if err := s.Render(&bytes.Buffer{}, chart.SVG); err == nil {
		t.Fatalf("expected error for zero width surface")
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want drawing.Color
	}{
		{"#118DFF", drawing.Color{R: 0x11, G: 0x8d, B: 0xff, A: 255}},
		{"ffffff", drawing.Color{R: 255, G: 255, B: 255, A: 255}},
		{"#f00", drawing.Color{R: 255, G: 0, B: 0, A: 255}},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); !got.Equals(tt.want) {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
