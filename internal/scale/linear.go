package scale

import "math"

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// DefaultTickCount is the tick density used by Nice when no count is given.
const DefaultTickCount = 10

// Linear maps a continuous domain onto a continuous range.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear builds a linear scale mapping [d0, d1] onto [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) *Linear {
	return &Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Domain returns the current domain bounds.
func (l *Linear) Domain() (float64, float64) { return l.d0, l.d1 }

// Range returns the current range bounds.
func (l *Linear) Range() (float64, float64) { return l.r0, l.r1 }

// Scale maps v from the domain into the range.
func (l *Linear) Scale(v float64) float64 {
	if l.d1 == l.d0 {
		return (l.r0 + l.r1) / 2
	}
	t := (v - l.d0) / (l.d1 - l.d0)
	return l.r0 + t*(l.r1-l.r0)
}

// Nice extends the domain to round tick boundaries for roughly count ticks.
func (l *Linear) Nice(count int) *Linear {
	if count <= 0 {
		count = DefaultTickCount
	}
	start, stop := l.d0, l.d1
	reversed := stop < start
	if reversed {
		start, stop = stop, start
	}
	var prestep float64
loop:
	for i := 0; i < 10; i++ {
		step := TickIncrement(start, stop, count)
		switch {
		case step == prestep:
			break loop
		case step > 0:
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		case step < 0:
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		default:
			break loop
		}
		prestep = step
	}
	if reversed {
		start, stop = stop, start
	}
	l.d0, l.d1 = start, stop
	return l
}

// Ticks returns round values inside the domain, about count of them.
func (l *Linear) Ticks(count int) []float64 {
	if count <= 0 {
		count = DefaultTickCount
	}
	start, stop := l.d0, l.d1
	if stop < start {
		start, stop = stop, start
	}
	if start == stop {
		return []float64{start}
	}
	step := TickIncrement(start, stop, count)
	if step == 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return nil
	}
	var ticks []float64
	if step > 0 {
		lo, hi := math.Ceil(start/step), math.Floor(stop/step)
		for i := lo; i <= hi; i++ {
			ticks = append(ticks, i*step)
		}
	} else {
		inv := -step
		lo, hi := math.Ceil(start*inv), math.Floor(stop*inv)
		for i := lo; i <= hi; i++ {
			ticks = append(ticks, i/inv)
		}
	}
	return ticks
}

// TickIncrement picks a 1, 2 or 5 x 10^k step that splits [start, stop] into
// about count intervals. Steps below one are returned as the negated inverse.
func TickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / math.Max(0, float64(count))
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return 0
	}
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}
