package controller

import (
	"fmt"
	"io"
	"os"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/connect"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/logging"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/model"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/repository"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/service"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/settings"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/surface"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/visual"
	"github.com/MohauNtholeng/PowerBI-Visual/pkg/localization"
)

// VisualController plays the host for one variance chart: it binds data,
// persists property edits and asks the visual to redraw.
type VisualController struct {
	session *connect.Session
	visual  *visual.Visual
	objects *repository.ObjectsRepository
	charts  *service.ChartService
	locale  *localization.Locale

	datasetPath string
	datasetOpts []repository.DatasetOption
}

func NewVisualController(objects *repository.ObjectsRepository, locale *localization.Locale, viewport model.Viewport) *VisualController {
	session := connect.NewSession(viewport)
	session.Objects = objects.GetAll()
	session.ObjectsPath = objects.FilePath()

	c := &VisualController{
		session: session,
		objects: objects,
		charts:  service.NewChartService(locale.Translate("Variance Chart")),
		locale:  locale,
	}
	c.visual = visual.New(visual.ConstructorOptions{Element: session, Translator: locale})

	logging.Debug().Str("session", session.ID).Msg("visual created")
	return c
}

// Session returns the host state of the visual.
func (c *VisualController) Session() *connect.Session {
	return c.session
}

// Surface returns the surface the visual draws into.
func (c *VisualController) Surface() *surface.Surface {
	return c.session.Surface()
}

// OpenDataset loads a CSV or XLSX file, binds it to the visual and redraws.
func (c *VisualController) OpenDataset(path string, opts ...repository.DatasetOption) error {
	repo := repository.NewDatasetRepository(path, opts...)
	if err := repo.Load(); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	dv, err := repo.DataView()
	if err != nil {
		return fmt.Errorf("bind dataset: %w", err)
	}
	c.datasetPath, c.datasetOpts = path, opts
	c.BindDataView(path, dv)
	logging.Info().
		Str("session", c.session.ID).
		Str("path", path).
		Int("rows", dv.Rows()).
		Msg("dataset opened")
	return nil
}

// DatasetPath returns the file last opened with OpenDataset.
func (c *VisualController) DatasetPath() string {
	return c.datasetPath
}

// ReloadDataset opens the last dataset again with the same column options.
func (c *VisualController) ReloadDataset() error {
	if c.datasetPath == "" {
		return nil
	}
	return c.OpenDataset(c.datasetPath, c.datasetOpts...)
}

// BindDataView hands an already shaped data view to the visual and redraws.
func (c *VisualController) BindDataView(source string, dv *model.DataView) {
	c.session.BindData(source, dv)
	c.Refresh()
}

// Refresh runs one update cycle of the visual.
func (c *VisualController) Refresh() {
	c.visual.Update(visual.UpdateOptions{
		DataViews: c.session.DataViews(),
		Viewport:  c.session.Viewport,
	})
}

// Resize changes the viewport and redraws.
func (c *VisualController) Resize(viewport model.Viewport) {
	c.session.Viewport = viewport
	c.Refresh()
}

// SetProperty validates and persists one property edit, then redraws.
func (c *VisualController) SetProperty(object, property string, value any) error {
	v, err := settings.Validate(object, property, value)
	if err != nil {
		return err
	}
	c.session.SetProperty(object, property, v)
	if err := c.objects.Set(object, property, v); err != nil {
		return fmt.Errorf("persist %s.%s: %w", object, property, err)
	}
	c.session.Unsaved = false
	c.Refresh()

	logging.Debug().
		Str("session", c.session.ID).
		Str("object", object).
		Str("property", property).
		Msg("property persisted")
	return nil
}

// FormattingModel returns the property pane description of the current settings.
func (c *VisualController) FormattingModel() settings.FormattingModel {
	return c.visual.FormattingModel()
}

// SetLocale switches the language of display names.
func (c *VisualController) SetLocale(locale *localization.Locale) {
	c.locale = locale
	c.visual.SetTranslator(locale)
	c.charts = service.NewChartService(locale.Translate("Variance Chart"))
}

// Render writes the current drawing to w.
func (c *VisualController) Render(w io.Writer, format service.Format) error {
	return c.charts.Render(w, c.Surface(), format)
}

// Export writes the current drawing to path, choosing the format by extension.
func (c *VisualController) Export(path string) error {
	format, err := service.FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Render(file, format); err != nil {
		file.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return err
	}
	logging.Info().Str("session", c.session.ID).Str("path", path).Msg("chart exported")
	return nil
}
