package view

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/settings"
)

// applyFunc receives one edit from the property pane.
type applyFunc func(object, property string, value any)

// buildPane turns the formatting model into an accordion with one form per card.
func buildPane(fm settings.FormattingModel, apply applyFunc) *widget.Accordion {
	acc := widget.NewAccordion()
	for _, card := range fm.Cards {
		form := widget.NewForm()
		for _, s := range card.Slices {
			form.Append(s.DisplayName, sliceEditor(s, apply))
		}
		acc.Append(widget.NewAccordionItem(card.DisplayName, form))
	}
	acc.MultiOpen = true
	acc.OpenAll()
	return acc
}

func sliceEditor(s settings.Slice, apply applyFunc) fyne.CanvasObject {
	object, property := s.Descriptor.ObjectName, s.Descriptor.PropertyName
	switch s.Control {
	case settings.ToggleSwitch:
		check := widget.NewCheck("", nil)
		check.SetChecked(s.Value == true)
		check.OnChanged = func(on bool) { apply(object, property, on) }
		return check
	default:
		entry := widget.NewEntry()
		entry.SetText(sliceText(s.Value))
		if s.Control == settings.ColorPicker {
			entry.SetPlaceHolder("#RRGGBB")
		}
		entry.OnSubmitted = func(text string) { apply(object, property, text) }
		return entry
	}
}

// sliceText renders a slice value for an entry field.
func sliceText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}
