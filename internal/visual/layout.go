package visual

import (
	"math"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/model"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/scale"
)

// BandPadding is the share of each band left empty between bars.
const BandPadding = 0.25

// Layout holds the scales for one update, in plot coordinates (origin at the
// top-left of the area inside the margins).
type Layout struct {
	Width  float64
	Height float64
	X      *scale.Band
	Y      *scale.Linear
}

// NewLayout computes the scales for points in a width x height plot.
func NewLayout(points []model.BarDataPoint, width, height float64) Layout {
	categories := make([]string, len(points))
	for i, p := range points {
		categories[i] = p.Category
	}
	lo, hi := scale.YDomain(points)
	return Layout{
		Width:  width,
		Height: height,
		X:      scale.NewBand(categories, width, BandPadding),
		Y:      scale.NewLinear(lo, hi, height, 0).Nice(scale.DefaultTickCount),
	}
}

// Zero is the y of the value axis origin.
func (l Layout) Zero() float64 { return l.Y.Scale(0) }

// Bar returns the rectangle for p: it spans from the zero line to the value.
func (l Layout) Bar(p model.BarDataPoint) (x, y, width, height float64) {
	x, _ = l.X.Position(p.Category)
	yv, y0 := l.Y.Scale(p.Value), l.Zero()
	return x, math.Min(yv, y0), l.X.Bandwidth(), math.Abs(yv - y0)
}

// Top is the highest on-screen edge of the bar for p; for a negative bar that is the zero line.
func (l Layout) Top(p model.BarDataPoint) float64 {
	if p.Value >= 0 {
		return l.Y.Scale(p.Value)
	}
	return l.Zero()
}

// Center is the horizontal middle of the bar for p.
func (l Layout) Center(p model.BarDataPoint) float64 {
	x, _ := l.X.Center(p.Category)
	return x
}

// tickCount keeps roughly 40 units between value axis ticks.
func (l Layout) tickCount() int {
	n := int(l.Height / 40)
	if n < 2 {
		return 2
	}
	if n > scale.DefaultTickCount {
		return scale.DefaultTickCount
	}
	return n
}
