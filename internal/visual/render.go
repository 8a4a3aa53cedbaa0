package visual

import (
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/format"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/logging"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/model"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/surface"
)

// Class names of the drawn elements.
const (
	ClassChart     = "chart"
	ClassXAxis     = "x-axis"
	ClassYAxis     = "y-axis"
	ClassTick      = "tick"
	ClassDomain    = "domain"
	ClassZeroLine  = "zero-line"
	ClassBars      = "bars"
	ClassBar       = "bar"
	ClassDataLabel = "data-label"
	ClassVariance  = "variance"
	ClassBubble    = "variance-bubble"
	ClassBubbleTxt = "variance-text"
	ClassConnector = "connector"
)

const (
	labelGap      = 4.0
	bubbleLift    = 30.0
	minBubble     = 22.0
	bubbleScale   = 1.8
	axisFontSize  = 10.0
	tickSize      = 6.0
	connectorDash = 4.0
)

var (
	labelColor = surface.Hex("#333333")
	axisColor  = surface.Hex("#666666")
	lineColor  = surface.Hex("#999999")
)

func (v *Visual) draw(points []model.BarDataPoint, l Layout) {
	root := &surface.Group{ClassName: ClassChart, X: v.margin.Left, Y: v.margin.Top}

	drawAxes(root, l)

	bs := v.settings.Bar
	vs := v.settings.Variance
	first, second := ComparisonIndices(vs, len(points))
	normal, selected := surface.Hex(bs.BarColor), surface.Hex(bs.SelectedBarColor)

	bars := &surface.Group{ClassName: ClassBars}
	for _, p := range points {
		fill := normal
		if vs.Show && (p.Index == first || p.Index == second) {
			fill = selected
		}
		x, y, w, h := l.Bar(p)
		bars.Add(surface.Rect{
			ClassName: ClassBar,
			X:         x,
			Y:         y,
			Width:     w,
			Height:    h,
			Fill:      fill,
			Tooltip:   p.Category + ": " + strconv.FormatFloat(p.Value, 'f', -1, 64),
		})
		if bs.ShowDataLabels {
			bars.Add(dataLabel(p, l, bs.LabelFontSize))
		}
	}
	root.Add(bars)

	if g := v.variance(points, l, first, second); g != nil {
		root.Add(g)
	}
	v.surface.Add(root)
}

func dataLabel(p model.BarDataPoint, l Layout, fontSize float64) surface.Text {
	y := l.Y.Scale(p.Value) - labelGap
	if p.Value < 0 {
		y = l.Y.Scale(p.Value) + fontSize + labelGap
	}
	return surface.Text{
		ClassName: ClassDataLabel,
		X:         l.Center(p),
		Y:         y,
		Body:      format.Abbreviate(p.Value),
		FontSize:  fontSize,
		Color:     labelColor,
		Anchor:    surface.AnchorMiddle,
	}
}

func drawAxes(root *surface.Group, l Layout) {
	x := &surface.Group{ClassName: ClassXAxis, Y: l.Height}
	x.Add(surface.Line{ClassName: ClassDomain, X2: l.Width, Stroke: lineColor, StrokeWidth: 1})
	for _, c := range l.X.Domain() {
		cx, _ := l.X.Center(c)
		x.Add(surface.Text{
			ClassName: ClassTick,
			X:         cx,
			Y:         tickSize + 3 + axisFontSize*0.71,
			Body:      c,
			FontSize:  axisFontSize,
			Color:     axisColor,
			Anchor:    surface.AnchorMiddle,
		})
	}

	y := &surface.Group{ClassName: ClassYAxis}
	y.Add(surface.Line{ClassName: ClassDomain, Y2: l.Height, Stroke: lineColor, StrokeWidth: 1})
	for _, t := range l.Y.Ticks(l.tickCount()) {
		ty := l.Y.Scale(t)
		y.Add(
			surface.Line{ClassName: ClassTick, X1: -tickSize, Y1: ty, Y2: ty, Stroke: lineColor, StrokeWidth: 1},
			surface.Text{
				ClassName: ClassTick,
				X:         -tickSize - 3,
				Y:         ty + axisFontSize*0.32,
				Body:      format.Abbreviate(t),
				FontSize:  axisFontSize,
				Color:     axisColor,
				Anchor:    surface.AnchorEnd,
			},
		)
	}
	root.Add(x, y)

	if lo, hi := l.Y.Domain(); lo < 0 && hi > 0 {
		root.Add(surface.Line{ClassName: ClassZeroLine, Y1: l.Zero(), X2: l.Width, Y2: l.Zero(), Stroke: lineColor, StrokeWidth: 1})
	}
}

// variance builds the bubble comparing points[first] and points[second], or
// returns nil when there is nothing to compare.
func (v *Visual) variance(points []model.BarDataPoint, l Layout, first, second int) *surface.Group {
	vs := v.settings.Variance
	if !vs.Show || first == second {
		return nil
	}
	if first < 0 || second < 0 || first >= len(points) || second >= len(points) {
		return nil
	}
	a, b := points[first], points[second]
	pct, ok := format.Variance(a.Value, b.Value)
	if !ok {
		logging.Debug().Int("first", first).Msg("variance skipped: first bar is zero")
		return nil
	}

	color := surface.Hex(vs.BubbleColor)
	if pct < 0 {
		color = surface.Hex(vs.NegativeBubbleColor)
	}

	cx := (l.Center(a) + l.Center(b)) / 2
	cy := math.Min(l.Top(a), l.Top(b)) - bubbleLift
	r := math.Max(minBubble, vs.FontSize*bubbleScale)
	bottom := cy + r

	g := &surface.Group{ClassName: ClassVariance}
	for _, p := range []model.BarDataPoint{a, b} {
		top := l.Top(p)
		g.Add(surface.Line{
			ClassName:   ClassConnector,
			X1:          cx,
			Y1:          math.Min(bottom, top),
			X2:          l.Center(p),
			Y2:          top,
			Stroke:      color,
			StrokeWidth: 1.5,
			Dash:        []float64{connectorDash, connectorDash},
		})
	}
	g.Add(
		surface.Circle{
			ClassName:   ClassBubble,
			CX:          cx,
			CY:          cy,
			Radius:      r,
			Fill:        color,
			FillOpacity: 0.9,
			Stroke:      drawing.ColorWhite,
			StrokeWidth: 2,
		},
		surface.Text{
			ClassName: ClassBubbleTxt,
			X:         cx,
			Y:         cy + vs.FontSize*0.35,
			Body:      format.Percent(pct),
			FontSize:  vs.FontSize,
			Color:     drawing.ColorWhite,
			Anchor:    surface.AnchorMiddle,
			Bold:      true,
		},
	)
	return g
}
