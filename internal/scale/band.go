// Package scale maps data values onto drawing coordinates.
package scale

import "math"

// Band assigns each distinct category an equal slot across a pixel range.
type Band struct {
	domain       []string
	index        map[string]int
	start, stop  float64
	paddingInner float64
	paddingOuter float64
	align        float64

	step      float64
	bandwidth float64
	offset    float64
}

// NewBand builds a band scale over categories (first-seen order, duplicates
// collapsed) spanning [0, width], with padding applied on both sides of every band.
func NewBand(categories []string, width, padding float64) *Band {
	b := &Band{
		index:        make(map[string]int, len(categories)),
		stop:         width,
		paddingInner: padding,
		paddingOuter: padding,
		align:        0.5,
	}
	for _, c := range categories {
		if _, seen := b.index[c]; seen {
			continue
		}
		b.index[c] = len(b.domain)
		b.domain = append(b.domain, c)
	}
	b.rescale()
	return b
}

func (b *Band) rescale() {
	n := float64(len(b.domain))
	b.step = (b.stop - b.start) / math.Max(1, n-b.paddingInner+b.paddingOuter*2)
	b.offset = b.start + (b.stop-b.start-b.step*(n-b.paddingInner))*b.align
	b.bandwidth = b.step * (1 - b.paddingInner)
}

// Domain returns the distinct categories in slot order.
func (b *Band) Domain() []string {
	return append([]string(nil), b.domain...)
}

// Step is the distance between the starts of adjacent bands.
func (b *Band) Step() float64 { return b.step }

// Bandwidth is the width of one band.
func (b *Band) Bandwidth() float64 { return b.bandwidth }

// Position returns the start of the band for category.
func (b *Band) Position(category string) (float64, bool) {
	i, ok := b.index[category]
	if !ok {
		return 0, false
	}
	return b.offset + b.step*float64(i), true
}

// Center returns the middle of the band for category.
func (b *Band) Center(category string) (float64, bool) {
	x, ok := b.Position(category)
	return x + b.bandwidth/2, ok
}
