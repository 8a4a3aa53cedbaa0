// Package visual is the variance bar chart: a bar chart that highlights the
// percentage difference between two selected bars with a bubble annotation.
package visual

import (
	"github.com/MohauNtholeng/PowerBI-Visual/internal/logging"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/model"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/settings"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/surface"
)

// DefaultMargin is the space reserved around the plot for axes and the bubble.
var DefaultMargin = model.Margin{Top: 40, Right: 30, Bottom: 60, Left: 60}

// Container is the host element a visual mounts its drawing surface into.
type Container interface {
	Mount(s *surface.Surface)
}

// ConstructorOptions is what the host passes when it creates the visual.
type ConstructorOptions struct {
	Element    Container
	Translator settings.Translator
}

// UpdateOptions is what the host passes on every data or viewport change.
type UpdateOptions struct {
	DataViews []*model.DataView
	Viewport  model.Viewport
}

// Visual renders the chart. It keeps only its surface and the last settings
// between updates; calls are expected to be serialized by the host.
type Visual struct {
	surface    *surface.Surface
	settings   *settings.Model
	translator settings.Translator
	margin     model.Margin
}

// New creates the visual and mounts a fresh surface in opts.Element.
func New(opts ConstructorOptions) *Visual {
	s := surface.New(0, 0)
	if opts.Element != nil {
		opts.Element.Mount(s)
	}
	return &Visual{
		surface:    s,
		settings:   settings.Default(),
		translator: opts.Translator,
		margin:     DefaultMargin,
	}
}

// Surface returns the surface owned by the visual.
func (v *Visual) Surface() *surface.Surface { return v.surface }

// Settings returns the settings applied by the last update.
func (v *Visual) Settings() *settings.Model { return v.settings }

// SetTranslator changes the language of display names in the formatting model.
func (v *Visual) SetTranslator(tr settings.Translator) { v.translator = tr }

// Update clears the surface and redraws it from opts.
func (v *Visual) Update(opts UpdateOptions) {
	v.surface.Resize(opts.Viewport.Width, opts.Viewport.Height)
	v.surface.Clear()

	var dv *model.DataView
	if len(opts.DataViews) > 0 {
		dv = opts.DataViews[0]
	}
	var objects model.Objects
	if dv != nil {
		objects = dv.Metadata.Objects
	}
	v.settings = settings.Populate(objects)

	points, reason := extract(dv)
	if reason != "" {
		logging.Debug().Str("reason", reason).Msg("chart cleared")
		return
	}

	width, height := v.margin.Inner(opts.Viewport)
	if width <= 0 || height <= 0 {
		logging.Debug().
			Str("reason", "viewport smaller than margins").
			Int("width", int(opts.Viewport.Width)).
			Int("height", int(opts.Viewport.Height)).
			Msg("chart cleared")
		return
	}

	v.draw(points, NewLayout(points, width, height))
}

// FormattingModel describes the current settings for the host's property pane.
func (v *Visual) FormattingModel() settings.FormattingModel {
	return v.settings.FormattingModel(v.translator)
}
