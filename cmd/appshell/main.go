package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/appshell/internal/config"
	"github.com/jask/appshell/internal/journal"
	"github.com/jask/appshell/internal/locale"
	"github.com/jask/appshell/internal/logging"
	"github.com/jask/appshell/internal/pages"
	"github.com/jask/appshell/internal/platform"
	"github.com/jask/appshell/internal/shell"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if len(os.Args) > 1 && os.Args[1] == "journal" {
		err = printJournal(ctx, os.Stdout, cfg, os.Args[2:])
	} else {
		err = run(ctx, cfg)
	}
	if err != nil {
		log.Fatalf("appshell: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		Path:        cfg.Log.Path,
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	opts, err := shellOptions(cfg)
	if err != nil {
		return fmt.Errorf("options: %w", err)
	}
	if opts.Locale != nil && !opts.SupportedLocales.Contains(*opts.Locale) {
		logger.Warn("display locale is not in the supported list",
			zap.String("locale", opts.Locale.String()),
			zap.String("supported", opts.SupportedLocales.String()))
	}

	var recorder shell.Recorder
	if cfg.Journal.Path != "" {
		j, err := journal.New(cfg.Journal.Path)
		if err != nil {
			return fmt.Errorf("journal: %w", err)
		}
		defer j.Close()
		recorder = j
		logger = logger.With(zap.String("session", j.Session()))
	}

	platformLocale, err := locale.Detect(os.Getenv)
	if err != nil {
		logger.Info("platform locale not detected, using default", zap.Error(err))
		platformLocale = opts.SupportedLocales[0]
	}

	model, err := shell.New(opts, shell.Deps{
		Platform: platformLocale,
		Journal:  recorder,
		Logger:   logger,
		Hooks: shell.Hooks{
			MemoryPressure: func(heap uint64) {
				logger.Warn("memory pressure", zap.Uint64("heap_bytes", heap))
			},
		},
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	platform.Watch(ctx, platform.WatchConfig{
		DeepLinkFile:    cfg.Platform.DeepLinkFile,
		MemoryThreshold: cfg.Platform.MemoryThresholdMB << 20,
		MemoryInterval:  cfg.Platform.MemoryInterval,
		Logger:          logger,
	}, p.Send)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program: %w", err)
	}
	return nil
}

func shellOptions(cfg config.Config) (shell.Options, error) {
	opts := shell.DefaultOptions()
	opts.Title = cfg.UI.Title
	opts.Color = lipgloss.Color(cfg.UI.Color)
	opts.InitialRoute = cfg.UI.InitialRoute
	opts.OnGenerateRoute = pages.Generate
	opts.KnownRoutes = pages.Known()
	opts.KeyBindings = pages.Bindings()

	supported, err := locale.ParseList(cfg.Locale.Supported)
	if err != nil {
		return opts, err
	}
	opts.SupportedLocales = supported
	if cfg.Locale.Override != "" {
		l, err := locale.Parse(cfg.Locale.Override)
		if err != nil {
			return opts, err
		}
		opts.Locale = &l
	}

	mode, err := shell.ParseBuildMode(cfg.Build.Mode)
	if err != nil {
		return opts, err
	}
	opts.BuildMode = mode
	opts.ShowPerformanceOverlay = cfg.Display.PerformanceOverlay
	opts.CheckerboardRasterCacheImages = cfg.Display.CheckerboardRaster
	opts.CheckerboardOffscreenLayers = cfg.Display.CheckerboardOffscreen
	opts.ShowDebugOverlay = cfg.Display.DebugOverlay
	opts.ShowInspector = cfg.Display.Inspector
	opts.ShowNonProductionBanner = cfg.Display.Banner
	return opts, nil
}

func printJournal(ctx context.Context, w io.Writer, cfg config.Config, args []string) error {
	n := 20
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("count %q: %w", args[0], err)
		}
		n = v
	}
	j, err := journal.New(cfg.Journal.Path)
	if err != nil {
		return err
	}
	defer j.Close()

	entries, err := j.Recent(ctx, "", n)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %s  %-16s %s\n", e.RecordedAt.Format("2006-01-02 15:04:05"), e.SessionID[:8], e.Kind, e.Detail)
	}
	return nil
}
