package connect

import (
	"testing"

	"github.com/google/uuid"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/model"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/surface"
)

func TestNewSession(t *testing.T) {
	s := NewSession(model.Viewport{Width: 640, Height: 480})
	if _, err := uuid.Parse(s.ID); err != nil {
		t.Fatalf("ID %q is not a uuid: %v", s.ID, err)
	}
	if s.Unsaved {
		t.Fatalf("new session should not be unsaved")
	}
	if other := NewSession(s.Viewport); other.ID == s.ID {
		t.Fatalf("sessions share an ID")
	}
}

func TestMount(t *testing.T) {
	s := NewSession(model.Viewport{})
	sf := surface.New(1, 1)
	s.Mount(sf)
	if s.Surface() != sf {
		t.Fatalf("mounted surface not retained")
	}
}

func TestDataViewsCarryObjects(t *testing.T) {
	s := NewSession(model.Viewport{})
	if dvs := s.DataViews(); len(dvs) != 1 || dvs[0].Categorical != nil {
		t.Fatalf("empty session data views = %+v", dvs)
	}

	dv := &model.DataView{Categorical: &model.Categorical{}}
	s.BindData("sales.csv", dv)
	s.SetProperty("varianceBubble", "show", false)
	if !s.Unsaved {
		t.Fatalf("SetProperty should mark the session unsaved")
	}

	got := s.DataViews()[0]
	if got.Categorical != dv.Categorical {
		t.Fatalf("categorical data not passed through")
	}
	if v, ok := got.Metadata.Objects.Get("varianceBubble", "show"); !ok || v != false {
		t.Fatalf("objects not attached: %v, %v", v, ok)
	}
	if dv.Metadata.Objects != nil {
		t.Fatalf("bound data view should not be modified")
	}
}
