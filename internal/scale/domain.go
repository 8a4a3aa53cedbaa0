package scale

import "github.com/MohauNtholeng/PowerBI-Visual/internal/model"

// Headroom is the fraction added beyond the extreme values so bars never touch the plot edge.
const Headroom = 1.15

// YDomain returns the vertical domain before rounding: [0 or 1.15*min, 1 or 1.15*max].
func YDomain(points []model.BarDataPoint) (lo, hi float64) {
	lo, hi = 0, 1
	if len(points) == 0 {
		return lo, hi
	}
	minV, maxV := points[0].Value, points[0].Value
	for _, p := range points[1:] {
		if p.Value < minV {
			minV = p.Value
		}
		if p.Value > maxV {
			maxV = p.Value
		}
	}
	if minV < 0 {
		lo = minV * Headroom
	}
	if maxV > 0 {
		hi = maxV * Headroom
	}
	return lo, hi
}
