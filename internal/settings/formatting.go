package settings

// Translator resolves display names; pkg/localization.Locale satisfies it.
type Translator interface {
	Translate(key string) string
}

// Descriptor addresses one persisted property.
type Descriptor struct {
	ObjectName   string `json:"objectName"`
	PropertyName string `json:"propertyName"`
}

// Slice is one editable option.
type Slice struct {
	UID         string      `json:"uid"`
	Name        string      `json:"name"`
	DisplayName string      `json:"displayName"`
	Control     ControlType `json:"control"`
	Value       any         `json:"value"`
	Descriptor  Descriptor  `json:"descriptor"`
	Min         *float64    `json:"min,omitempty"`
	Max         *float64    `json:"max,omitempty"`
}

// Card groups the slices of one object.
type Card struct {
	UID         string  `json:"uid"`
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	Slices      []Slice `json:"slices"`
}

// FormattingModel is what the host renders as the property pane.
type FormattingModel struct {
	Cards []Card `json:"cards"`
}

// FormattingModel describes the current values of m. A nil tr leaves display names in English.
func (m *Model) FormattingModel(tr Translator) FormattingModel {
	translate := func(s string) string {
		if tr == nil {
			return s
		}
		return tr.Translate(s)
	}

	var fm FormattingModel
	for _, c := range cards {
		out := Card{
			UID:         c.name + "_card",
			Name:        c.name,
			DisplayName: translate(c.displayName),
		}
		for _, p := range properties {
			if p.object != c.name {
				continue
			}
			out.Slices = append(out.Slices, Slice{
				UID:         c.name + "_" + p.name,
				Name:        p.name,
				DisplayName: translate(p.displayName),
				Control:     p.control,
				Value:       p.get(m),
				Descriptor:  Descriptor{ObjectName: p.object, PropertyName: p.name},
				Min:         p.min,
				Max:         p.max,
			})
		}
		fm.Cards = append(fm.Cards, out)
	}
	return fm
}

// Slice returns the slice for object/property, if present.
func (fm FormattingModel) Slice(object, property string) (Slice, bool) {
	for _, c := range fm.Cards {
		if c.Name != object {
			continue
		}
		for _, s := range c.Slices {
			if s.Name == property {
				return s, true
			}
		}
	}
	return Slice{}, false
}
