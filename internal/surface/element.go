package surface

import (
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Anchor is the horizontal alignment of a text element relative to its X.
type Anchor int

// Text anchors.
const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Element is one item of the display list.
type Element interface {
	Class() string
	draw(p *painter, dx, dy float64)
}

// Rect is a filled rectangle; Tooltip is the hover text a host may show for it.
type Rect struct {
	ClassName   string
	X, Y        float64
	Width       float64
	Height      float64
	Fill        drawing.Color
	Stroke      drawing.Color
	StrokeWidth float64
	Tooltip     string
}

// Class implements Element.
func (e Rect) Class() string { return e.ClassName }

func (e Rect) draw(p *painter, dx, dy float64) {
	r := p.begin()
	r.SetFillColor(e.Fill)
	if e.StrokeWidth > 0 {
		r.SetStrokeColor(e.Stroke)
		r.SetStrokeWidth(e.StrokeWidth)
	}
	x0, y0 := px(e.X+dx), px(e.Y+dy)
	x1, y1 := px(e.X+dx+e.Width), px(e.Y+dy+e.Height)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.LineTo(x0, y0)
	r.Close()
	if e.StrokeWidth > 0 {
		r.FillStroke()
	} else {
		r.Fill()
	}
}

// Text is a single line label; Y is the baseline.
type Text struct {
	ClassName string
	X, Y      float64
	Body      string
	FontSize  float64
	Color     drawing.Color
	Anchor    Anchor
	Bold      bool
}

// Class implements Element.
func (e Text) Class() string { return e.ClassName }

func (e Text) draw(p *painter, dx, dy float64) {
	if e.Body == "" {
		return
	}
	r := p.begin()
	if p.font != nil {
		r.SetFont(p.font)
	}
	r.SetFontSize(e.FontSize)
	r.SetFontColor(e.Color)

	x := e.X + dx
	switch e.Anchor {
	case AnchorMiddle:
		x -= float64(r.MeasureText(e.Body).Width()) / 2
	case AnchorEnd:
		x -= float64(r.MeasureText(e.Body).Width())
	}
	r.Text(e.Body, px(x), px(e.Y+dy))
}

// Circle is a filled, optionally stroked circle.
type Circle struct {
	ClassName   string
	CX, CY      float64
	Radius      float64
	Fill        drawing.Color
	FillOpacity float64
	Stroke      drawing.Color
	StrokeWidth float64
}

// Class implements Element.
func (e Circle) Class() string { return e.ClassName }

// FillColor returns Fill with FillOpacity applied as alpha.
func (e Circle) FillColor() drawing.Color {
	if e.FillOpacity <= 0 || e.FillOpacity >= 1 {
		return e.Fill
	}
	return e.Fill.WithAlpha(uint8(math.Round(255 * e.FillOpacity)))
}

func (e Circle) draw(p *painter, dx, dy float64) {
	r := p.begin()
	r.SetFillColor(e.FillColor())
	r.SetStrokeColor(e.Stroke)
	r.SetStrokeWidth(e.StrokeWidth)
	r.Circle(e.Radius, px(e.CX+dx), px(e.CY+dy))
}

// Line is a straight, optionally dashed, stroke.
type Line struct {
	ClassName   string
	X1, Y1      float64
	X2, Y2      float64
	Stroke      drawing.Color
	StrokeWidth float64
	Dash        []float64
}

// Class implements Element.
func (e Line) Class() string { return e.ClassName }

func (e Line) draw(p *painter, dx, dy float64) {
	r := p.begin()
	r.SetStrokeColor(e.Stroke)
	r.SetStrokeWidth(e.StrokeWidth)
	if len(e.Dash) > 0 {
		r.SetStrokeDashArray(e.Dash)
	}
	r.MoveTo(px(e.X1+dx), px(e.Y1+dy))
	r.LineTo(px(e.X2+dx), px(e.Y2+dy))
	r.Stroke()
}

// Group translates its children by (X, Y).
type Group struct {
	ClassName string
	X, Y      float64
	Children  []Element
}

// Class implements Element.
func (g *Group) Class() string { return g.ClassName }

// Add appends children to the group.
func (g *Group) Add(children ...Element) {
	g.Children = append(g.Children, children...)
}

func (g *Group) draw(p *painter, dx, dy float64) {
	for _, c := range g.Children {
		c.draw(p, dx+g.X, dy+g.Y)
	}
}

func px(v float64) int {
	return int(math.Round(v))
}

// painter carries renderer state across elements.
type painter struct {
	r    chart.Renderer
	font *truetype.Font
}

// begin resets the renderer style for the next element. Class names stay in
// the display list: go-chart drops inline styles once a class is set.
func (p *painter) begin() chart.Renderer {
	p.r.ResetStyle()
	return p.r
}
