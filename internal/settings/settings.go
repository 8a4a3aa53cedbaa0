// Package settings holds the user-configurable options of the variance chart
// and describes them to the host as a formatting model.
package settings

import (
	"errors"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/logging"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/model"
)

// Object names as persisted by the host.
const (
	ObjectBar      = "barSettings"
	ObjectVariance = "varianceBubble"
)

var (
	// ErrUnknownProperty is returned for an object/property pair the model does not define.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrInvalidValue is returned when a value cannot be used for a property.
	ErrInvalidValue = errors.New("invalid value")
)

// BarSettings is the "Bar Settings" card.
type BarSettings struct {
	BarColor         string  `json:"barColor"`
	SelectedBarColor string  `json:"selectedBarColor"`
	ShowDataLabels   bool    `json:"showDataLabels"`
	LabelFontSize    float64 `json:"labelFontSize"`
}

// VarianceSettings is the "Variance Bubble" card. Bar indices are 1-based.
type VarianceSettings struct {
	Show                bool    `json:"show"`
	BubbleColor         string  `json:"bubbleColor"`
	NegativeBubbleColor string  `json:"negativeBubbleColor"`
	FontSize            float64 `json:"fontSize"`
	FirstBarIndex       float64 `json:"firstBarIndex"`
	SecondBarIndex      float64 `json:"secondBarIndex"`
}

// Model is the complete set of options for one update cycle.
type Model struct {
	Bar      BarSettings      `json:"barSettings"`
	Variance VarianceSettings `json:"varianceBubble"`
}

// Default returns a model with every option at its default value.
func Default() *Model {
	m := &Model{}
	for _, p := range properties {
		p.set(m, p.def)
	}
	return m
}

// Populate returns the defaults overridden by any usable persisted values in objects.
func Populate(objects model.Objects) *Model {
	m := Default()
	for _, p := range properties {
		raw, ok := objects.Get(p.object, p.name)
		if !ok || raw == nil {
			continue
		}
		v, err := p.coerce(raw)
		if err != nil {
			logging.Debug().
				Str("object", p.object).
				Str("property", p.name).
				Err(err).
				Msg("ignoring persisted value")
			continue
		}
		p.set(m, v)
	}
	return m
}

// Objects returns the full model in persisted form.
func (m *Model) Objects() model.Objects {
	out := model.Objects{}
	for _, p := range properties {
		out.Set(p.object, p.name, p.get(m))
	}
	return out
}

// Validate coerces value for object/property and checks it against the
// property's bounds, returning the value to persist.
func Validate(object, property string, value any) (any, error) {
	p, ok := lookup(object, property)
	if !ok {
		return nil, errUnknown(object, property)
	}
	v, err := p.coerce(value)
	if err != nil {
		return nil, err
	}
	if err := p.checkBounds(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Apply validates value and stores it on the model.
func (m *Model) Apply(object, property string, value any) error {
	v, err := Validate(object, property, value)
	if err != nil {
		return err
	}
	p, _ := lookup(object, property)
	p.set(m, v)
	return nil
}
