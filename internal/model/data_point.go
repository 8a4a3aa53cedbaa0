package model

// BarDataPoint is one rendered bar.
type BarDataPoint struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Index    int     `json:"index"`
}

// Viewport is the size of the area the host gives the visual.
type Viewport struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Margin reserves space around the plot area for axes and annotations.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Inner returns the plot size left after the margins are taken from vp.
func (m Margin) Inner(vp Viewport) (width, height float64) {
	return vp.Width - m.Left - m.Right, vp.Height - m.Top - m.Bottom
}
