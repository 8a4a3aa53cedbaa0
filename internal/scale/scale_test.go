package scale

import (
	"math"
	"testing"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/model"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestBandLayout(t *testing.T) {
	b := NewBand([]string{"A", "B", "C", "D"}, 100, 0.25)

	// step = 100 / (4 - 0.25 + 0.5)
	wantStep := 100 / 4.25
	if !near(b.Step(), wantStep) {
		t.Fatalf("Step = %v, want %v", b.Step(), wantStep)
	}
	if !near(b.Bandwidth(), wantStep*0.75) {
		t.Fatalf("Bandwidth = %v, want %v", b.Bandwidth(), wantStep*0.75)
	}
	first, _ := b.Position("A")
	last, _ := b.Position("D")
	if !near(first, 100-(last+b.Bandwidth())) {
		t.Fatalf("bands not centered: first=%v last end=%v", first, last+b.Bandwidth())
	}
	if _, ok := b.Position("missing"); ok {
		t.Fatalf("Position of unknown category should not be ok")
	}
}

func TestBandDuplicatesKeepFirstSeenOrder(t *testing.T) {
	b := NewBand([]string{"B", "A", "B", "C"}, 90, 0.25)
	got := b.Domain()
	want := []string{"B", "A", "C"}
	if len(got) != len(want) {
		t.Fatalf("Domain = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Domain = %v, want %v", got, want)
		}
	}
	xb, _ := b.Position("B")
	xa, _ := b.Position("A")
	if xb >= xa {
		t.Fatalf("B should come before A: %v >= %v", xb, xa)
	}
}

func TestBandEmptyDomain(t *testing.T) {
	b := NewBand(nil, 100, 0.25)
	if b.Step() <= 0 {
		t.Fatalf("empty band scale should still have a positive step, got %v", b.Step())
	}
}

func TestLinearNice(t *testing.T) {
	tests := []struct {
		name         string
		d0, d1       float64
		want0, want1 float64
	}{
		{"positive", 0, 115, 0, 120},
		{"mixed", -115, 172.5, -120, 180},
		{"unit", 0, 1, 0, 1},
		{"small", 0, 0.23, 0, 0.24},
		{"negative", -57.5, 1, -60, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLinear(tt.d0, tt.d1, 100, 0).Nice(0)
			got0, got1 := l.Domain()
			if !near(got0, tt.want0) || !near(got1, tt.want1) {
				t.Fatalf("Nice(%v, %v) = [%v, %v], want [%v, %v]", tt.d0, tt.d1, got0, got1, tt.want0, tt.want1)
			}
		})
	}
}

func TestLinearScaleInvertedRange(t *testing.T) {
	l := NewLinear(0, 100, 200, 0)
	if got := l.Scale(0); !near(got, 200) {
		t.Fatalf("Scale(0) = %v, want 200", got)
	}
	if got := l.Scale(100); !near(got, 0) {
		t.Fatalf("Scale(100) = %v, want 0", got)
	}
	if got := l.Scale(25); !near(got, 150) {
		t.Fatalf("Scale(25) = %v, want 150", got)
	}
}

func TestLinearTicks(t *testing.T) {
	l := NewLinear(-120, 180, 0, 1)
	ticks := l.Ticks(10)
	if len(ticks) == 0 {
		t.Fatalf("no ticks")
	}
	if !near(ticks[0], -120) || !near(ticks[len(ticks)-1], 180) {
		t.Fatalf("ticks = %v, want -120..180", ticks)
	}
	for i := 1; i < len(ticks); i++ {
		if !near(ticks[i]-ticks[i-1], 20) {
			t.Fatalf("uneven tick step in %v", ticks)
		}
	}
}

func TestYDomain(t *testing.T) {
	pts := func(vals ...float64) []model.BarDataPoint {
		out := make([]model.BarDataPoint, len(vals))
		for i, v := range vals {
			out[i] = model.BarDataPoint{Value: v, Index: i}
		}
		return out
	}
	tests := []struct {
		name   string
		points []model.BarDataPoint
		lo, hi float64
	}{
		{"empty", nil, 0, 1},
		{"positive", pts(10, 40, 20), 0, 46},
		{"mixed", pts(-20, 40), -23, 46},
		{"negative", pts(-20, -5), -23, 1},
		{"zeros", pts(0, 0), 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := YDomain(tt.points)
			if !near(lo, tt.lo) || !near(hi, tt.hi) {
				t.Fatalf("YDomain = [%v, %v], want [%v, %v]", lo, hi, tt.lo, tt.hi)
			}
		})
	}
}
