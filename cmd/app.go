package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/controller"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/logging"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/model"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/repository"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/service"
	"github.com/MohauNtholeng/PowerBI-Visual/internal/view"
	"github.com/MohauNtholeng/PowerBI-Visual/pkg/config"
	"github.com/MohauNtholeng/PowerBI-Visual/pkg/localization"
)

// Version is set at build time.
var Version = "dev"

// App is the variance-chart command line.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	configPath string
	language   string
	logLevel   string

	cfg    *config.AppConfig
	locale *localization.Locale
}

// chartOptions are the flags shared by commands that build a chart.
type chartOptions struct {
	data     string
	objects  string
	category string
	value    string
	sheet    string
	width    float64
	height   float64
}

func New() *App {
	a := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	a.root = &cobra.Command{
		Use:   "variance-chart",
		Short: "Bar chart with a variance bubble between two bars",
		Long: `variance-chart draws one bar per category and a bubble with the percentage
change between two selected bars. Data comes from CSV or XLSX files,
formatting properties from a JSON or YAML objects file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup() },
	}

	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default under the user config dir)")
	a.root.PersistentFlags().StringVar(&a.language, "lang", "", "Display language (en, ru)")
	a.root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	a.root.AddCommand(
		a.newVersionCmd(),
		a.newRenderCmd(),
		a.newModelCmd(),
		a.newSetCmd(),
		a.newPreviewCmd(),
	)
	return a
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the command line until it finishes or is interrupted.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the command line with explicit arguments.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// setup loads the config, then configures logging and the locale from it.
func (a *App) setup() error {
	var (
		cfg *config.AppConfig
		err error
	)
	if a.configPath != "" {
		cfg, err = config.Load(a.configPath)
		if errors.Is(err, os.ErrNotExist) {
			cfg, err = config.Default(), nil
		}
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.language != "" {
		cfg.Language = a.language
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: a.stderr})

	locale, err := localization.NewLocale(cfg.Language)
	if err != nil {
		return fmt.Errorf("load locale: %w", err)
	}
	a.cfg = cfg
	a.locale = locale
	return nil
}

func (a *App) saveConfig() error {
	if a.configPath != "" {
		return config.Save(a.configPath, a.cfg)
	}
	return config.SaveConfig(a.cfg)
}

func addChartFlags(cmd *cobra.Command, opts *chartOptions) {
	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "CSV or XLSX dataset")
	cmd.Flags().StringVarP(&opts.objects, "objects", "o", "", "JSON or YAML file with formatting properties")
	cmd.Flags().StringVar(&opts.category, "category", "", "Category column (default: first column)")
	cmd.Flags().StringVar(&opts.value, "value", "", "Value column (default: first numeric column)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "XLSX sheet (default: first sheet)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "Viewport width (default from config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "Viewport height (default from config)")
}

// newController builds a controller for opts and binds the dataset if one is given.
func (a *App) newController(opts *chartOptions) (*controller.VisualController, error) {
	objects, err := repository.NewObjectsRepository(opts.objects)
	if err != nil {
		return nil, fmt.Errorf("load objects: %w", err)
	}

	vp := model.Viewport{Width: a.cfg.Viewport.Width, Height: a.cfg.Viewport.Height}
	if opts.width > 0 {
		vp.Width = opts.width
	}
	if opts.height > 0 {
		vp.Height = opts.height
	}
	ctrl := controller.NewVisualController(objects, a.locale, vp)

	if opts.data == "" {
		// First update without data, so persisted objects reach the settings.
		ctrl.Refresh()
		return ctrl, nil
	}
	var dsOpts []repository.DatasetOption
	if opts.sheet != "" {
		dsOpts = append(dsOpts, repository.WithSheet(opts.sheet))
	}
	if opts.category != "" {
		dsOpts = append(dsOpts, repository.WithCategoryColumn(opts.category))
	}
	if opts.value != "" {
		dsOpts = append(dsOpts, repository.WithValueColumn(opts.value))
	}
	if err := ctrl.OpenDataset(opts.data, dsOpts...); err != nil {
		return nil, err
	}
	return ctrl, nil
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "variance-chart version %s\n", Version)
		},
	}
}

func (a *App) newRenderCmd() *cobra.Command {
	opts := &chartOptions{}
	var out, format string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart to SVG, PNG or PDF",
		Long: `Render the chart for a dataset.

The output format follows the extension of --out. Without --out the chart is
written to stdout in the --format given.

Examples:
  variance-chart render -d sales.csv --out sales.svg
  variance-chart render -d sales.xlsx --sheet Q1 -o props.yaml --out q1.pdf
  variance-chart render -d sales.csv --format png > sales.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.data == "" {
				return errors.New("--data is required")
			}
			ctrl, err := a.newController(opts)
			if err != nil {
				return err
			}
			if out != "" {
				if err := ctrl.Export(out); err != nil {
					return err
				}
				a.cfg.AddRecentFile(opts.data, 10)
				if err := a.saveConfig(); err != nil {
					logging.Warn().Err(err).Msg("config not saved")
				}
				return nil
			}
			f, err := service.ParseFormat(format)
			if err != nil {
				return err
			}
			return ctrl.Render(a.stdout, f)
		},
	}

	addChartFlags(cmd, opts)
	cmd.Flags().StringVar(&out, "out", "", "Output file; the extension picks the format")
	cmd.Flags().StringVar(&format, "format", string(service.FormatSVG), "Format for stdout output (svg, png, pdf)")
	return cmd
}

func (a *App) newModelCmd() *cobra.Command {
	opts := &chartOptions{}

	cmd := &cobra.Command{
		Use:   "model",
		Short: "Print the formatting model as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.newController(opts)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(a.stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(ctrl.FormattingModel())
		},
	}

	cmd.Flags().StringVarP(&opts.objects, "objects", "o", "", "JSON or YAML file with formatting properties")
	return cmd
}

func (a *App) newSetCmd() *cobra.Command {
	opts := &chartOptions{}

	cmd := &cobra.Command{
		Use:   "set object.property=value...",
		Short: "Validate and persist formatting properties",
		Long: `Validate property edits and write them to the objects file.

Examples:
  variance-chart set -o props.yaml varianceBubble.firstBarIndex=3
  variance-chart set -o props.json barSettings.barColor=#FF8800 barSettings.showDataLabels=false`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.objects == "" {
				return errors.New("--objects is required")
			}
			ctrl, err := a.newController(opts)
			if err != nil {
				return err
			}
			for _, arg := range args {
				object, property, value, err := parseAssignment(arg)
				if err != nil {
					return err
				}
				if err := ctrl.SetProperty(object, property, value); err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
				fmt.Fprintf(a.stdout, "%s.%s = %s\n", object, property, value)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.objects, "objects", "o", "", "JSON or YAML file with formatting properties")
	return cmd
}

// parseAssignment splits "object.property=value".
func parseAssignment(arg string) (object, property, value string, err error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok {
		return "", "", "", fmt.Errorf("expected object.property=value, got %q", arg)
	}
	object, property, ok = strings.Cut(key, ".")
	if !ok || object == "" || property == "" {
		return "", "", "", fmt.Errorf("expected object.property=value, got %q", arg)
	}
	return object, property, value, nil
}

func (a *App) newPreviewCmd() *cobra.Command {
	opts := &chartOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Open the chart in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.newController(opts)
			if err != nil {
				return err
			}
			if opts.data != "" {
				a.cfg.AddRecentFile(opts.data, 10)
			}

			fyneApp := app.NewWithID("io.github.mohauntholeng.variancechart")
			view.NewPreviewWindow(fyneApp, ctrl, a.locale, a.cfg).Show()

			return a.saveConfig()
		},
	}

	addChartFlags(cmd, opts)
	return cmd
}
