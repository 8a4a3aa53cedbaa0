package connect

import (
	"time"

	"github.com/google/uuid"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/model"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/surface"
)

// Session is the host-side state of one visual instance: the data bound to
// it, its persisted properties and the element it draws into.
type Session struct {
	ID           string
	DataPath     string
	ObjectsPath  string
	DataView     *model.DataView
	Objects      model.Objects
	Viewport     model.Viewport
	Unsaved      bool
	LastModified time.Time

	surface *surface.Surface
}

func NewSession(viewport model.Viewport) *Session {
	return &Session{
		ID:           uuid.New().String(),
		Objects:      model.Objects{},
		Viewport:     viewport,
		LastModified: time.Now(),
	}
}

// Mount implements visual.Container.
func (s *Session) Mount(sf *surface.Surface) {
	s.surface = sf
}

// Surface returns the surface mounted by the visual, or nil before construction.
func (s *Session) Surface() *surface.Surface {
	return s.surface
}

// BindData replaces the data view, carrying the session's persisted objects along.
func (s *Session) BindData(path string, dv *model.DataView) {
	s.DataPath = path
	s.DataView = dv
	s.touch()
}

// SetProperty stores a persisted property value.
func (s *Session) SetProperty(object, property string, value any) {
	if s.Objects == nil {
		s.Objects = model.Objects{}
	}
	s.Objects.Set(object, property, value)
	s.Unsaved = true
	s.touch()
}

// DataViews returns what the host hands to the visual on update. The objects
// travel in the data view metadata, as the host does.
func (s *Session) DataViews() []*model.DataView {
	dv := &model.DataView{}
	if s.DataView != nil {
		copied := *s.DataView
		dv = &copied
	}
	dv.Metadata.Objects = s.Objects
	return []*model.DataView{dv}
}

func (s *Session) touch() {
	s.LastModified = time.Now()
}
