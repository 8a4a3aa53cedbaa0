package view

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/controller"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/logging"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/repository"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/service"
	"github.com/MohauNtholeng/PowerBI-Visual/pkg/config"
	"github.com/MohauNtholeng/PowerBI-Visual/pkg/localization"
)

// PreviewWindow hosts the chart in a desktop window with a property pane built
// from the chart's formatting model. Opened files and the chosen language are
// recorded in cfg; saving it is up to the caller.
type PreviewWindow struct {
	app        fyne.App
	window     fyne.Window
	controller *controller.VisualController
	locale     *localization.Locale
	cfg        *config.AppConfig

	image     *canvas.Image
	pane      *fyne.Container
	stopWatch context.CancelFunc
}

func NewPreviewWindow(app fyne.App, ctrl *controller.VisualController, locale *localization.Locale, cfg *config.AppConfig) *PreviewWindow {
	pw := &PreviewWindow{
		app:        app,
		window:     app.NewWindow(locale.Translate("Variance Chart")),
		controller: ctrl,
		locale:     locale,
		cfg:        cfg,
		image:      canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
		pane:       container.NewStack(),
	}
	pw.image.FillMode = canvas.ImageFillContain
	vp := ctrl.Session().Viewport
	pw.image.SetMinSize(fyne.NewSize(float32(vp.Width), float32(vp.Height)))
	return pw
}

func (pw *PreviewWindow) setupMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu(pw.locale.Translate("File"),
		fyne.NewMenuItem(pw.locale.Translate("Open Data"), pw.onOpen),
		fyne.NewMenuItem(pw.locale.Translate("Export"), pw.onExport),
		fyne.NewMenuItem(pw.locale.Translate("Exit"), func() { pw.app.Quit() }),
	)

	var langItems []*fyne.MenuItem
	for _, lang := range localization.Languages() {
		lang := lang
		langItems = append(langItems, fyne.NewMenuItem(lang, func() { pw.changeLanguage(lang) }))
	}
	langMenu := fyne.NewMenu(pw.locale.Translate("Language"), langItems...)

	return fyne.NewMainMenu(fileMenu, langMenu)
}

// Show builds the window and runs the app until it is closed.
func (pw *PreviewWindow) Show() {
	pw.window.SetMainMenu(pw.setupMenu())
	pw.refresh()

	split := container.NewHSplit(pw.image, container.NewVScroll(pw.pane))
	split.Offset = 0.72

	vp := pw.controller.Session().Viewport
	pw.watch(pw.controller.DatasetPath())
	defer pw.watch("")

	pw.window.SetContent(split)
	pw.window.Resize(fyne.NewSize(float32(vp.Width)+320, float32(vp.Height)+40))
	pw.window.ShowAndRun()
}

// refresh redraws the chart image and rebuilds the property pane.
func (pw *PreviewWindow) refresh() {
	pw.pane.Objects = []fyne.CanvasObject{buildPane(pw.controller.FormattingModel(), pw.apply)}
	pw.pane.Refresh()

	var buf bytes.Buffer
	if err := pw.controller.Render(&buf, service.FormatPNG); err != nil {
		// Nothing drawable yet, e.g. before a dataset is opened.
		logging.Debug().Err(err).Msg("preview not rendered")
		return
	}
	img, err := png.Decode(&buf)
	if err != nil {
		dialog.ShowError(err, pw.window)
		return
	}
	pw.image.Image = img
	pw.image.Refresh()
}

func (pw *PreviewWindow) apply(object, property string, value any) {
	if err := pw.controller.SetProperty(object, property, value); err != nil {
		dialog.ShowError(err, pw.window)
	}
	pw.refresh()
}

func (pw *PreviewWindow) onOpen() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, pw.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		if err := pw.controller.OpenDataset(path); err != nil {
			dialog.ShowError(err, pw.window)
			return
		}
		pw.cfg.AddRecentFile(path, 10)
		pw.watch(path)
		pw.refresh()
	}, pw.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".xlsx"}))
	fileDialog.Show()
}

func (pw *PreviewWindow) onExport() {
	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, pw.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := pw.controller.Export(path); err != nil {
			dialog.ShowError(err, pw.window)
			return
		}
		dialog.ShowInformation(pw.locale.Translate("Export"), pw.locale.Translate("Exported")+": "+path, pw.window)
	}, pw.window)

	saveDialog.SetFileName("variance-chart.png")
	saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".svg", ".pdf"}))
	saveDialog.Show()
}

func (pw *PreviewWindow) changeLanguage(lang string) {
	locale, err := localization.NewLocale(lang)
	if err != nil {
		logging.Warn().Str("language", lang).Err(err).Msg("language not changed")
		return
	}
	pw.locale = locale
	pw.controller.SetLocale(locale)
	pw.cfg.Language = lang

	pw.window.SetMainMenu(pw.setupMenu())
	pw.window.SetTitle(locale.Translate("Variance Chart"))
	pw.refresh()
}

// watch redraws whenever the dataset at path changes on disk. An empty path
// stops the current watch.
func (pw *PreviewWindow) watch(path string) {
	if pw.stopWatch != nil {
		pw.stopWatch()
		pw.stopWatch = nil
	}
	if path == "" {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	pw.stopWatch = cancel
	go func() {
		err := repository.WatchFile(ctx, path, 300*time.Millisecond, func() {
			fyne.Do(pw.reload)
		})
		if err != nil {
			logging.Warn().Str("path", path).Err(err).Msg("dataset not watched")
		}
	}()
}

func (pw *PreviewWindow) reload() {
	if err := pw.controller.ReloadDataset(); err != nil {
		// Usually a half written file; the next write triggers another reload.
		logging.Warn().Err(err).Msg("dataset reload failed")
		return
	}
	pw.refresh()
}
