package visual

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/model"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/settings"
)

// ExtractPoints converts the first category and measure columns of dv into
// bars, one per row in row order. ok is false when either column is missing.
func ExtractPoints(dv *model.DataView) (points []model.BarDataPoint, ok bool) {
	points, reason := extract(dv)
	return points, reason == ""
}

func extract(dv *model.DataView) ([]model.BarDataPoint, string) {
	switch {
	case dv == nil || dv.Categorical == nil:
		return nil, "no categorical data"
	case len(dv.Categorical.Categories) == 0:
		return nil, "missing category column"
	case len(dv.Categorical.Values) == 0:
		return nil, "missing value column"
	}

	categories := dv.Categorical.Categories[0].Values
	values := dv.Categorical.Values[0].Values
	points := make([]model.BarDataPoint, len(categories))
	for i, c := range categories {
		var raw any
		if i < len(values) {
			raw = values[i]
		}
		points[i] = model.BarDataPoint{
			Category: categoryText(c),
			Value:    numberOf(raw),
			Index:    i,
		}
	}
	return points, ""
}

func categoryText(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return fmt.Sprint(c)
	}
}

// numberOf casts a measure cell to a number; null and unparseable cells are 0.
func numberOf(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case bool:
		if n {
			f = 1
		}
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err == nil {
			f = parsed
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ComparisonIndices converts the 1-based bar indices in vs to 0-based indices
// rounded to the nearest integer and clamped to [0, n-1].
func ComparisonIndices(vs settings.VarianceSettings, n int) (first, second int) {
	return clampIndex(vs.FirstBarIndex, n), clampIndex(vs.SecondBarIndex, n)
}

func clampIndex(oneBased float64, n int) int {
	i := math.Floor(oneBased+0.5) - 1
	switch {
	case i > float64(n-1):
		i = float64(n - 1)
	case math.IsNaN(i):
		i = 0
	}
	if i < 0 {
		return 0
	}
	return int(i)
}
