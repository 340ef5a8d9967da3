package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	ambientinadapter "folio/internal/modules/ambient/adapter/in"
	ambientoutadapter "folio/internal/modules/ambient/adapter/out"
	ambientout "folio/internal/modules/ambient/port/out"
	ambientservice "folio/internal/modules/ambient/service"
	ambientusecase "folio/internal/modules/ambient/usecase"
	analyticsoutadapter "folio/internal/modules/analytics/adapter/out"
	analyticsin "folio/internal/modules/analytics/port/in"
	analyticsout "folio/internal/modules/analytics/port/out"
	analyticsservice "folio/internal/modules/analytics/service"
	analyticsusecase "folio/internal/modules/analytics/usecase"
	capabilityinadapter "folio/internal/modules/capability/adapter/in"
	capabilityoutadapter "folio/internal/modules/capability/adapter/out"
	capabilitydomain "folio/internal/modules/capability/domain"
	capabilityservice "folio/internal/modules/capability/service"
	capabilityusecase "folio/internal/modules/capability/usecase"
	contactinadapter "folio/internal/modules/contact/adapter/in"
	contactoutadapter "folio/internal/modules/contact/adapter/out"
	contactdomain "folio/internal/modules/contact/domain"
	contactin "folio/internal/modules/contact/port/in"
	contactservice "folio/internal/modules/contact/service"
	contactusecase "folio/internal/modules/contact/usecase"
	contentinadapter "folio/internal/modules/content/adapter/in"
	contentoutadapter "folio/internal/modules/content/adapter/out"
	contentin "folio/internal/modules/content/port/in"
	contentservice "folio/internal/modules/content/service"
	contentusecase "folio/internal/modules/content/usecase"
	localeoutadapter "folio/internal/modules/locale/adapter/out"
	localein "folio/internal/modules/locale/port/in"
	localeservice "folio/internal/modules/locale/service"
	localeusecase "folio/internal/modules/locale/usecase"
	preferenceinadapter "folio/internal/modules/preference/adapter/in"
	preferenceoutadapter "folio/internal/modules/preference/adapter/out"
	preferencein "folio/internal/modules/preference/port/in"
	preferenceservice "folio/internal/modules/preference/service"
	preferenceusecase "folio/internal/modules/preference/usecase"
	resumeinadapter "folio/internal/modules/resume/adapter/in"
	resumeoutadapter "folio/internal/modules/resume/adapter/out"
	resumein "folio/internal/modules/resume/port/in"
	resumeout "folio/internal/modules/resume/port/out"
	resumeservice "folio/internal/modules/resume/service"
	resumeusecase "folio/internal/modules/resume/usecase"
	revealservice "folio/internal/modules/reveal/service"
	"folio/internal/platform/clock"
	"folio/internal/platform/config"
	"folio/internal/platform/id"
	uiapp "folio/internal/ui/app"
	"folio/internal/ui/theme"
	"folio/internal/ui/views/page"
)

type App struct {
	CapabilityCLI capabilityinadapter.CLIHandler
	AmbientCLI    ambientinadapter.CLIHandler
	ContactCLI    contactinadapter.CLIHandler
	PreferenceCLI preferenceinadapter.CLIHandler
	ContentCLI    contentinadapter.CLIHandler
	ResumeCLI     resumeinadapter.CLIHandler

	cfg config.Config
	log *zap.Logger
	clk clock.Clock

	locale    localein.Usecase
	prefs     preferencein.Usecase
	content   contentin.Usecase
	contact   contactin.Usecase
	resume    resumein.Usecase
	analytics analyticsin.Usecase
	monitor   *capabilityservice.Monitor
	probe     *capabilityoutadapter.NetworkProbe
	tracker   *analyticsservice.Tracker
	store     *preferenceoutadapter.SQLiteStore
	launcher  resumeout.Launcher
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	ctx := context.Background()
	clk := clock.SystemClock{}

	store, err := preferenceoutadapter.NewSQLiteStore(cfg.DBPath, clk)
	if err != nil {
		return nil, fmt.Errorf("new preference store: %w", err)
	}
	settings := preferenceservice.NewSettings(store, preferenceoutadapter.NewTerminalBackground(os.Stdout), log.Named("preference"))
	settings.Load(ctx)
	prefsUC := preferenceusecase.NewInteractor(settings)

	saved, err := prefsUC.Language(ctx)
	if err != nil {
		log.Warn("saved language unreadable", zap.Error(err))
	}
	lang := localeservice.Detect(firstNonEmpty(saved, cfg.Language), os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
	translator, err := localeservice.NewTranslator(localeoutadapter.NewEmbeddedCatalogs(), lang)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("new translator: %w", err)
	}
	localeUC := localeusecase.NewInteractor(translator)

	var sink analyticsout.Sink = analyticsoutadapter.NewLogSink(log.Named("analytics"))
	if cfg.Analytics.Configured() {
		sink = analyticsoutadapter.NewGA4Sink(nil, analyticsoutadapter.GA4Options{
			Endpoint:      cfg.Analytics.Endpoint,
			MeasurementID: cfg.Analytics.MeasurementID,
			APISecret:     cfg.Analytics.APISecret,
		})
	}
	tracker := analyticsservice.NewTracker(sink, id.UUID{}, cfg.Analytics.QueueSize, log.Named("analytics"))
	analyticsUC := analyticsusecase.NewInteractor(tracker)

	contentUC := contentusecase.NewInteractor(contentservice.NewContentService(
		contentoutadapter.NewEmbeddedPortfolio(), log.Named("content")))

	contactUC := contactusecase.NewInteractor(contactservice.NewContactService(
		contactoutadapter.NewEmailJSMailer(cfg.EmailJS.Endpoint, cfg.EmailJS.Timeout),
		analyticsUC,
		contactdomain.ServiceParams{
			ServiceID:  cfg.EmailJS.ServiceID,
			TemplateID: cfg.EmailJS.TemplateID,
			PublicKey:  cfg.EmailJS.PublicKey,
		},
		cfg.EmailJS.RecipientName,
		log.Named("contact"),
	))

	launcher := resumeoutadapter.NewOSLauncher()
	resumeUC := resumeusecase.NewInteractor(resumeservice.NewResumeService(
		resumeoutadapter.NewLocalPDFReader(), launcher, analyticsUC, cfg.CVPath, log.Named("resume")))

	probe := capabilityoutadapter.NewNetworkProbe(capabilityoutadapter.ProbeOptions{
		URL:      cfg.Network.ProbeURL,
		Interval: cfg.Network.Interval,
		Timeout:  cfg.Network.Timeout,
	}, clk, log.Named("network"))
	signals := capabilityoutadapter.NewTerminalSignals(os.Stdout, capabilityoutadapter.TerminalOptions{
		CellWidthPx:   cfg.CellWidthPx,
		ReducedMotion: cfg.ReducedMotion,
		Mouse:         cfg.Mouse,
	})
	monitor := capabilityservice.NewMonitor(signals, probe, log.Named("capability"))
	capabilityCLI := capabilityinadapter.NewCLIHandler(capabilityusecase.NewInteractor(monitor))

	snapshotter := ambientservice.NewSnapshotter(func(width, height int) ambientout.RasterTarget {
		return ambientoutadapter.NewRasterSurface(width, height, theme.For(true).Background())
	}, log.Named("ambient"))

	return &App{
		CapabilityCLI: capabilityCLI,
		AmbientCLI:    ambientinadapter.NewCLIHandler(ambientusecase.NewInteractor(snapshotter)),
		ContactCLI:    contactinadapter.NewCLIHandler(contactUC),
		PreferenceCLI: preferenceinadapter.NewCLIHandler(prefsUC),
		ContentCLI:    contentinadapter.NewCLIHandler(contentUC),
		ResumeCLI:     resumeinadapter.NewCLIHandler(resumeUC),

		cfg:       cfg,
		log:       log,
		clk:       clk,
		locale:    localeUC,
		prefs:     prefsUC,
		content:   contentUC,
		contact:   contactUC,
		resume:    resumeUC,
		analytics: analyticsUC,
		monitor:   monitor,
		probe:     probe,
		tracker:   tracker,
		store:     store,
		launcher:  launcher,
	}, nil
}

// Close flushes queued analytics and releases the preference store.
func (a *App) Close() error {
	a.monitor.Stop()
	a.tracker.Close()
	return a.store.Close()
}

// Probe measures the network once so one-shot commands report a real type.
func (a *App) Probe(ctx context.Context) {
	a.probe.Refresh(ctx)
}

func (a *App) pageDeps(reveal *revealservice.Options) page.Deps {
	return page.Deps{
		T:       a.locale,
		Content: a.content,
		Contact: a.contact,
		Tracker: a.analytics,
		Opener:  a.launcher,
		Reveal:  reveal,
		Now:     a.clk.Now,
	}
}

// RenderPage lays out the whole page at width without a viewport. Every
// section loads at once.
func (a *App) RenderPage(width int) string {
	styles := theme.For(a.prefs.Theme(context.Background()).Theme == "dark")
	p := page.New(a.pageDeps(nil), styles)
	p, _ = p.Update(tea.WindowSizeMsg{Width: width, Height: 24})
	p.Mount()
	defer p.Unmount()
	a.analytics.TrackPageView("/")
	return p.Render()
}

// RunTUI runs the terminal UI until it quits or ctx is done. The network
// probe and the ambient frame loop live exactly as long as the program.
func (a *App) RunTUI(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := ambientoutadapter.NewTimerScheduler(ambientoutadapter.DisplayRate, a.clk)
	surface := ambientoutadapter.NewCellSurface(a.cfg.CellWidthPx, a.cfg.CellHeightPx)
	effect := ambientservice.NewEffect(surface, sched, a.log.Named("ambient"))

	tiers := make(chan struct{}, 1)
	dispose := a.monitor.OnChange(func(capabilitydomain.Tier) {
		select {
		case tiers <- struct{}{}:
		default:
		}
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.probe.Run(gctx) })
	a.monitor.Start(gctx)

	reveal := revealservice.Options{
		MarginPx:     revealservice.DefaultMarginPx,
		Threshold:    revealservice.DefaultThreshold,
		CellHeightPx: a.cfg.CellHeightPx,
	}
	model := uiapp.NewModel(uiapp.Deps{
		Page:        a.pageDeps(&reveal),
		Locale:      a.locale,
		Prefs:       a.prefs,
		Capability:  a.CapabilityCLI,
		Resume:      a.resume,
		Ambient:     effect,
		Backdrop:    surface,
		TierChanges: tiers,
		CellW:       a.cfg.CellWidthPx,
		CellH:       a.cfg.CellHeightPx,
		Log:         a.log.Named("ui"),
	})
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if a.cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	program := tea.NewProgram(model, opts...)

	a.analytics.TrackPageView("/")
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})
	err := g.Wait()

	effect.Deactivate()
	sched.Close()
	a.monitor.Stop()
	dispose()
	close(tiers)
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
