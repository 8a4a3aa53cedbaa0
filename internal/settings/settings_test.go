package settings

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/model"
)

func TestDefaultIsFullyPopulated(t *testing.T) {
	m := Default()
	want := Model{
		Bar: BarSettings{
			BarColor:         "#118DFF",
			SelectedBarColor: "#12239E",
			ShowDataLabels:   true,
			LabelFontSize:    12,
		},
		Variance: VarianceSettings{
			Show:                true,
			BubbleColor:         "#1AAB40",
			NegativeBubbleColor: "#D64550",
			FontSize:            12,
			FirstBarIndex:       1,
			SecondBarIndex:      2,
		},
	}
	if *m != want {
		t.Fatalf("Default() = %+v, want %+v", *m, want)
	}
}

func TestPopulateMergesOverrides(t *testing.T) {
	objects := model.Objects{
		ObjectBar: {
			"barColor":       map[string]any{"solid": map[string]any{"color": "#ff0000"}},
			"showDataLabels": false,
			"labelFontSize":  json.Number("16"),
		},
		ObjectVariance: {
			"firstBarIndex":  3,
			"secondBarIndex": "5",
			"bubbleColor":    "00ff00",
		},
	}
	m := Populate(objects)
	if m.Bar.BarColor != "#ff0000" {
		t.Errorf("BarColor = %q", m.Bar.BarColor)
	}
	if m.Bar.ShowDataLabels {
		t.Errorf("ShowDataLabels should be false")
	}
	if m.Bar.LabelFontSize != 16 {
		t.Errorf("LabelFontSize = %v", m.Bar.LabelFontSize)
	}
	if m.Variance.FirstBarIndex != 3 || m.Variance.SecondBarIndex != 5 {
		t.Errorf("indices = %v, %v", m.Variance.FirstBarIndex, m.Variance.SecondBarIndex)
	}
	if m.Variance.BubbleColor != "#00ff00" {
		t.Errorf("BubbleColor = %q", m.Variance.BubbleColor)
	}
	// Untouched options keep their defaults.
	if m.Bar.SelectedBarColor != "#12239E" || !m.Variance.Show {
		t.Errorf("defaults lost: %+v", m)
	}
}

func TestPopulateKeepsDefaultForUnusableValues(t *testing.T) {
	m := Populate(model.Objects{
		ObjectBar:      {"barColor": "not-a-color", "labelFontSize": "big"},
		ObjectVariance: {"show": 7},
	})
	d := Default()
	if m.Bar.BarColor != d.Bar.BarColor || m.Bar.LabelFontSize != d.Bar.LabelFontSize || m.Variance.Show != d.Variance.Show {
		t.Fatalf("unusable values should be ignored, got %+v", m)
	}
}

func TestPopulatePassesOutOfRangeIndices(t *testing.T) {
	m := Populate(model.Objects{ObjectVariance: {"firstBarIndex": -4.0, "secondBarIndex": 99.5}})
	if m.Variance.FirstBarIndex != -4 || m.Variance.SecondBarIndex != 99.5 {
		t.Fatalf("indices should be kept for render-time clamping, got %+v", m.Variance)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		object   string
		property string
		value    any
		want     any
		wantErr  error
	}{
		{"color", ObjectBar, "barColor", "#abc", "#abc", nil},
		{"bad color", ObjectBar, "barColor", "red", nil, ErrInvalidValue},
		{"toggle string", ObjectVariance, "show", "false", false, nil},
		{"font too small", ObjectVariance, "fontSize", 2, nil, ErrInvalidValue},
		{"font too big", ObjectBar, "labelFontSize", "41", nil, ErrInvalidValue},
		{"index", ObjectVariance, "secondBarIndex", "4", 4.0, nil},
		{"index below one", ObjectVariance, "firstBarIndex", 0, nil, ErrInvalidValue},
		{"unknown", ObjectVariance, "radius", 3, nil, ErrUnknownProperty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.object, tt.property, tt.value)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Validate = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestApplyAndObjectsRoundTrip(t *testing.T) {
	m := Default()
	if err := m.Apply(ObjectVariance, "firstBarIndex", 4); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := m.Apply(ObjectVariance, "firstBarIndex", -1); err == nil {
		t.Fatalf("Apply should reject index below one")
	}
	again := Populate(m.Objects())
	if *again != *m {
		t.Fatalf("Populate(Objects()) = %+v, want %+v", *again, *m)
	}
}

type upper struct{}

func (upper) Translate(key string) string { return "[" + key + "]" }

func TestFormattingModel(t *testing.T) {
	m := Default()
	m.Variance.FontSize = 18

	fm := m.FormattingModel(nil)
	if len(fm.Cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(fm.Cards))
	}
	if fm.Cards[0].DisplayName != "Bar Settings" || fm.Cards[1].DisplayName != "Variance Bubble" {
		t.Fatalf("card names = %q, %q", fm.Cards[0].DisplayName, fm.Cards[1].DisplayName)
	}
	if len(fm.Cards[0].Slices) != 4 || len(fm.Cards[1].Slices) != 6 {
		t.Fatalf("slice counts = %d, %d", len(fm.Cards[0].Slices), len(fm.Cards[1].Slices))
	}

	s, ok := fm.Slice(ObjectVariance, "fontSize")
	if !ok {
		t.Fatalf("fontSize slice missing")
	}
	if s.Value != 18.0 || s.Control != NumUpDown {
		t.Fatalf("fontSize slice = %+v", s)
	}
	if s.Descriptor != (Descriptor{ObjectName: ObjectVariance, PropertyName: "fontSize"}) {
		t.Fatalf("descriptor = %+v", s.Descriptor)
	}

	translated := m.FormattingModel(upper{})
	if translated.Cards[0].DisplayName != "[Bar Settings]" {
		t.Fatalf("translator not applied: %q", translated.Cards[0].DisplayName)
	}

	if _, err := json.Marshal(fm); err != nil {
		t.Fatalf("formatting model is not serializable: %v", err)
	}
}
