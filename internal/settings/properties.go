package settings

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ControlType names the editor the host should build for a slice.
type ControlType string

// Editors used by the variance chart.
const (
	ColorPicker  ControlType = "ColorPicker"
	ToggleSwitch ControlType = "ToggleSwitch"
	NumUpDown    ControlType = "NumUpDown"
)

type card struct {
	name        string
	displayName string
}

var cards = []card{
	{ObjectBar, "Bar Settings"},
	{ObjectVariance, "Variance Bubble"},
}

type property struct {
	object      string
	name        string
	displayName string
	control     ControlType
	def         any
	min, max    *float64
	get         func(*Model) any
	set         func(*Model, any)
}

func bound(v float64) *float64 { return &v }

var properties = []property{
	{
		object: ObjectBar, name: "barColor", displayName: "Bar Color",
		control: ColorPicker, def: "#118DFF",
		get: func(m *Model) any { return m.Bar.BarColor },
		set: func(m *Model, v any) { m.Bar.BarColor = v.(string) },
	},
	{
		object: ObjectBar, name: "selectedBarColor", displayName: "Selected Bar Color",
		control: ColorPicker, def: "#12239E",
		get: func(m *Model) any { return m.Bar.SelectedBarColor },
		set: func(m *Model, v any) { m.Bar.SelectedBarColor = v.(string) },
	},
	{
		object: ObjectBar, name: "showDataLabels", displayName: "Show Data Labels",
		control: ToggleSwitch, def: true,
		get: func(m *Model) any { return m.Bar.ShowDataLabels },
		set: func(m *Model, v any) { m.Bar.ShowDataLabels = v.(bool) },
	},
	{
		object: ObjectBar, name: "labelFontSize", displayName: "Label Font Size",
		control: NumUpDown, def: 12.0, min: bound(6), max: bound(40),
		get: func(m *Model) any { return m.Bar.LabelFontSize },
		set: func(m *Model, v any) { m.Bar.LabelFontSize = v.(float64) },
	},
	{
		object: ObjectVariance, name: "show", displayName: "Show",
		control: ToggleSwitch, def: true,
		get: func(m *Model) any { return m.Variance.Show },
		set: func(m *Model, v any) { m.Variance.Show = v.(bool) },
	},
	{
		object: ObjectVariance, name: "bubbleColor", displayName: "Positive Color",
		control: ColorPicker, def: "#1AAB40",
		get: func(m *Model) any { return m.Variance.BubbleColor },
		set: func(m *Model, v any) { m.Variance.BubbleColor = v.(string) },
	},
	{
		object: ObjectVariance, name: "negativeBubbleColor", displayName: "Negative Color",
		control: ColorPicker, def: "#D64550",
		get: func(m *Model) any { return m.Variance.NegativeBubbleColor },
		set: func(m *Model, v any) { m.Variance.NegativeBubbleColor = v.(string) },
	},
	{
		object: ObjectVariance, name: "fontSize", displayName: "Font Size",
		control: NumUpDown, def: 12.0, min: bound(6), max: bound(40),
		get: func(m *Model) any { return m.Variance.FontSize },
		set: func(m *Model, v any) { m.Variance.FontSize = v.(float64) },
	},
	{
		object: ObjectVariance, name: "firstBarIndex", displayName: "First Bar Index",
		control: NumUpDown, def: 1.0, min: bound(1),
		get: func(m *Model) any { return m.Variance.FirstBarIndex },
		set: func(m *Model, v any) { m.Variance.FirstBarIndex = v.(float64) },
	},
	{
		object: ObjectVariance, name: "secondBarIndex", displayName: "Second Bar Index",
		control: NumUpDown, def: 2.0, min: bound(1),
		get: func(m *Model) any { return m.Variance.SecondBarIndex },
		set: func(m *Model, v any) { m.Variance.SecondBarIndex = v.(float64) },
	},
}

func lookup(object, name string) (property, bool) {
	for _, p := range properties {
		if p.object == object && p.name == name {
			return p, true
		}
	}
	return property{}, false
}

func errUnknown(object, name string) error {
	return fmt.Errorf("%w: %s.%s", ErrUnknownProperty, object, name)
}

func (p property) coerce(raw any) (any, error) {
	switch p.control {
	case ColorPicker:
		return toColor(raw)
	case ToggleSwitch:
		return toBool(raw)
	default:
		return toNumber(raw)
	}
}

func (p property) checkBounds(v any) error {
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	if p.min != nil && f < *p.min {
		return fmt.Errorf("%w: %s.%s must be >= %v", ErrInvalidValue, p.object, p.name, *p.min)
	}
	if p.max != nil && f > *p.max {
		return fmt.Errorf("%w: %s.%s must be <= %v", ErrInvalidValue, p.object, p.name, *p.max)
	}
	return nil
}

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// toColor accepts "#rrggbb", "rrggbb", "#rgb" or the host's {"solid":{"color":...}} fill.
func toColor(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		s := strings.TrimSpace(v)
		if !hexColor.MatchString(s) {
			return "", fmt.Errorf("%w: color %q", ErrInvalidValue, v)
		}
		if !strings.HasPrefix(s, "#") {
			s = "#" + s
		}
		return s, nil
	case map[string]any:
		if solid, ok := v["solid"].(map[string]any); ok {
			return toColor(solid["color"])
		}
	}
	return "", fmt.Errorf("%w: color %v", ErrInvalidValue, raw)
}

func toBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("%w: bool %q", ErrInvalidValue, v)
		}
		return b, nil
	}
	return false, fmt.Errorf("%w: bool %v", ErrInvalidValue, raw)
}

func toNumber(raw any) (float64, error) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: number %q", ErrInvalidValue, v)
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: number %q", ErrInvalidValue, v)
		}
		f = n
	default:
		return 0, fmt.Errorf("%w: number %v", ErrInvalidValue, raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: number %v", ErrInvalidValue, raw)
	}
	return f, nil
}
