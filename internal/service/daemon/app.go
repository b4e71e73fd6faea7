package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"

	api "github.com/oshokin/adhan-alarm/internal/api/grpc/adhan"
	"github.com/oshokin/adhan-alarm/internal/config"
	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/host/audio"
	"github.com/oshokin/adhan-alarm/internal/host/notify"
	"github.com/oshokin/adhan-alarm/internal/host/timer"
	"github.com/oshokin/adhan-alarm/internal/logger"
	"github.com/oshokin/adhan-alarm/internal/metrics"
	pb "github.com/oshokin/adhan-alarm/internal/pb/v1"
	"github.com/oshokin/adhan-alarm/internal/repository/schedule"
	"github.com/oshokin/adhan-alarm/internal/service/dispatcher"
	"github.com/oshokin/adhan-alarm/internal/service/playback"
	"github.com/oshokin/adhan-alarm/internal/service/scheduler"
	"github.com/oshokin/adhan-alarm/internal/version"
)

// Run starts the daemon and blocks until ctx is cancelled or a stop signal arrives.
func Run(ctx context.Context, opts *Options) error {
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if opts.ListenAddress != "" {
		settings.ServerAddress = opts.ListenAddress
	}

	if opts.StorePath != "" {
		settings.Store.Path = opts.StorePath
	}

	if opts.ConfigureLogging {
		if err = logger.Configure(settings.LogLevel, settings.LogEncoding); err != nil {
			return fmt.Errorf("configure logger: %w", err)
		}
	}

	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "adhand")

	app := newApp(ctx, settings, opts)

	startCtx, cancelStart := context.WithTimeout(ctx, startTimeout)
	defer cancelStart()

	if err = app.Start(startCtx); err != nil {
		return fmt.Errorf("start daemon: %w", err)
	}

	logger.InfoKV(ctx, "Adhan daemon running",
		"version", version.Short(),
		"listen_address", settings.ServerAddress,
		"store", settings.Store.Backend,
		"store_path", settings.Store.Path,
		"notifiers", settings.Notifier.Backends)

	select {
	case <-ctx.Done():
	case sig := <-app.Done():
		logger.InfoKV(ctx, "Received signal", "signal", sig.String())
	}

	stopCtx, cancelStop := context.WithTimeout(context.WithoutCancel(ctx), stopTimeout)
	defer cancelStop()

	if err = app.Stop(stopCtx); err != nil {
		return fmt.Errorf("stop daemon: %w", err)
	}

	logger.Info(ctx, "Adhan daemon stopped")

	return nil
}

// newApp assembles the daemon's dependency graph.
func newApp(ctx context.Context, settings *config.Config, opts *Options) *fx.App {
	b := &builder{
		ctx:      context.WithoutCancel(ctx),
		settings: settings,
		opts:     opts,
	}

	return fx.New(
		fx.WithLogger(b.fxLogger),
		fx.Provide(
			b.newRegistry,
			b.newRecorder,
			b.newRepository,
			b.newTimer,
			b.newNotifier,
			b.newCatalog,
			b.newPlayer,
			b.newScheduler,
			b.newController,
			b.newDispatcher,
			b.newLoop,
			b.newService,
		),
		fx.Invoke(
			b.restoreSchedule,
			b.watchStore,
			b.serveGRPC,
			b.serveMetrics,
		),
	)
}

// builder holds what the constructors share. ctx outlives start and stop
// hook contexts and is the parent of every long-running goroutine.
type builder struct {
	ctx      context.Context //nolint:containedctx // Long-lived daemon context.
	settings *config.Config
	opts     *Options
}

//nolint:ireturn // fx expects the fxevent.Logger interface.
func (b *builder) fxLogger() fxevent.Logger {
	l := &fxevent.ZapLogger{Logger: logger.FromContext(b.ctx).Desugar().Named("fx")}
	l.UseLogLevel(zapcore.DebugLevel)

	return l
}

func (b *builder) newRegistry() *prom.Registry {
	reg := prom.NewRegistry()
	buildInfo := prom.NewGauge(prom.GaugeOpts{
		Namespace:   "adhan",
		Name:        "build_info",
		Help:        "Build metadata of the running daemon.",
		ConstLabels: version.Labels(),
	})
	buildInfo.Set(1)

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		buildInfo,
	)

	return reg
}

//nolint:ireturn // The recorder is consumed through its interface.
func (b *builder) newRecorder(reg *prom.Registry) metrics.Recorder {
	if b.settings.MetricsAddress == "" {
		return metrics.NoopRecorder{}
	}

	return metrics.NewPrometheusRecorder(reg)
}

//nolint:ireturn // Backends are selected at runtime.
func (b *builder) newRepository(lc fx.Lifecycle) (schedule.Repository, error) {
	var repo schedule.Repository

	switch b.settings.Store.Backend {
	case config.StoreBackendBadger:
		badgerRepo, err := schedule.OpenBadger(b.ctx, b.settings.Store.Path)
		if err != nil {
			return nil, err
		}

		repo = badgerRepo
	default:
		repo = schedule.NewFileRepository(b.settings.Store.Path)
	}

	lc.Append(fx.StopHook(repo.Close))

	return repo, nil
}

func (b *builder) newTimer(lc fx.Lifecycle) (*timer.Timer, error) {
	t, err := timer.New(timer.Options{
		ExactAllowed:     b.settings.Timer.ExactAllowed,
		BestEffortWindow: b.settings.Timer.BestEffortWindow,
	})
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			t.Start(b.ctx)
			return nil
		},
		OnStop: t.Shutdown,
	})

	return t, nil
}

// newNotifier builds the configured backends. Backends that cannot connect are
// skipped so that a missing desktop session or broker never silences the Adhan.
//
//nolint:ireturn // Backends are selected at runtime.
func (b *builder) newNotifier(lc fx.Lifecycle) adhan.Notifier {
	var backends notify.Fanout

	for _, name := range b.settings.Notifier.Backends {
		switch name {
		case config.NotifierLog:
			backends = append(backends, notify.LogNotifier{})
		case config.NotifierDBus:
			bus, err := notify.NewSessionBus()
			if err != nil {
				logger.WarnKV(b.ctx, "Desktop notifications disabled", "error", err)
				continue
			}

			lc.Append(fx.StopHook(bus.Close))
			backends = append(backends, notify.NewDBusNotifier(bus, b.settings.Notifier.AppName))
		case config.NotifierMQTT:
			mqttSettings := b.settings.Notifier.MQTT

			client, err := notify.ConnectMQTT(b.ctx, notify.MQTTOptions{
				Broker:      mqttSettings.Broker,
				ClientID:    mqttSettings.ClientID,
				TopicPrefix: mqttSettings.TopicPrefix,
				Username:    mqttSettings.Username,
				Password:    mqttSettings.Password,
			}, b.settings.Timeout)
			if err != nil {
				logger.WarnKV(b.ctx, "MQTT notifications disabled", "error", err)
				continue
			}

			lc.Append(fx.StopHook(func() { notify.DisconnectMQTT(client) }))
			backends = append(backends, notify.NewMQTTNotifier(client, mqttSettings.TopicPrefix, b.settings.Timeout))
		}
	}

	if len(backends) == 0 {
		return notify.LogNotifier{}
	}

	return backends
}

func (b *builder) newCatalog() *audio.Catalog {
	return audio.NewCatalog(b.settings.Player.AssetsDir, b.settings.Player.Extensions)
}

//nolint:ireturn // The player is consumed through its interface.
func (b *builder) newPlayer(catalog *audio.Catalog) (adhan.Player, error) {
	return audio.NewProcessPlayer(b.settings.Player.Command, catalog)
}

func (b *builder) newScheduler(t *timer.Timer, recorder metrics.Recorder) *scheduler.Scheduler {
	return scheduler.New(t, recorder)
}

func (b *builder) newController(
	lc fx.Lifecycle,
	player adhan.Player,
	notifier adhan.Notifier,
	recorder metrics.Recorder,
) *playback.Controller {
	opts := playback.DefaultOptions()
	opts.DefaultAsset = b.settings.Player.DefaultAsset
	opts.TitlePrefix = b.settings.Notification.TitlePrefix
	opts.FallbackLabel = b.settings.Notification.FallbackLabel
	opts.Body = b.settings.Notification.Body
	opts.TapTarget = b.settings.Notification.TapTarget

	controller := playback.NewController(player, notifier, recorder, opts)

	lc.Append(fx.StopHook(controller.Teardown))

	return controller
}

func (b *builder) newDispatcher(
	controller *playback.Controller,
	sched *scheduler.Scheduler,
	repo schedule.Repository,
	recorder metrics.Recorder,
) *dispatcher.Dispatcher {
	return dispatcher.New(controller, sched, repo, dispatcher.WithRecorder(recorder))
}

func (b *builder) newLoop(lc fx.Lifecycle, t *timer.Timer, d *dispatcher.Dispatcher) *dispatchLoop {
	loop := newDispatchLoop(t.Events(), d)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			loop.Start(b.ctx)
			return nil
		},
		OnStop: loop.Stop,
	})

	return loop
}

func (b *builder) newService(
	sched *scheduler.Scheduler,
	controller *playback.Controller,
	d *dispatcher.Dispatcher,
	repo schedule.Repository,
	catalog *audio.Catalog,
	loop *dispatchLoop,
) *service {
	return &service{
		scheduler:  sched,
		playback:   controller,
		reconciler: d,
		repo:       repo,
		assets:     catalog,
		events:     loop,
	}
}

// restoreSchedule re-submits the stored schedule once the dispatch loop runs.
func (b *builder) restoreSchedule(lc fx.Lifecycle, svc *service) {
	lc.Append(fx.StartHook(func() {
		svc.Restore(b.ctx)
	}))
}

func (b *builder) watchStore(lc fx.Lifecycle, svc *service) error {
	if !b.settings.Store.Watch || b.settings.Store.Backend != config.StoreBackendFile {
		return nil
	}

	watcher, err := newStoreWatcher(b.settings.Store.Path, b.opts.WatchDebounce, svc.Reconcile)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return watcher.Start(b.ctx)
		},
		OnStop: watcher.Stop,
	})

	return nil
}

func (b *builder) serveGRPC(lc fx.Lifecycle, svc *service) {
	grpcServer := grpc.NewServer()
	pb.RegisterAdhanServiceServer(grpcServer, api.NewServer(svc))

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listenConfig := net.ListenConfig{}

			lis, err := listenConfig.Listen(ctx, "tcp", b.settings.ServerAddress)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", b.settings.ServerAddress, err)
			}

			logger.InfoKV(b.ctx, "Control API listening", "listen_address", lis.Addr().String())

			go func() {
				if serveErr := grpcServer.Serve(lis); serveErr != nil && !errors.Is(serveErr, grpc.ErrServerStopped) {
					logger.ErrorKV(b.ctx, "Control API stopped unexpectedly", "error", serveErr)
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info(b.ctx, "Shutting down gRPC server")

			done := make(chan struct{})

			go func() {
				grpcServer.GracefulStop()
				close(done)
			}()

			select {
			case <-done:
			case <-ctx.Done():
				grpcServer.Stop()
			}

			return nil
		},
	})
}

func (b *builder) serveMetrics(lc fx.Lifecycle, reg *prom.Registry) {
	if b.settings.MetricsAddress == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))

	server := &http.Server{
		Addr:              b.settings.MetricsAddress,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listenConfig := net.ListenConfig{}

			lis, err := listenConfig.Listen(ctx, "tcp", server.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", server.Addr, err)
			}

			logger.InfoKV(b.ctx, "Metrics listening", "listen_address", lis.Addr().String())

			go func() {
				if serveErr := server.Serve(lis); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
					logger.ErrorKV(b.ctx, "Metrics server stopped unexpectedly", "error", serveErr)
				}
			}()

			return nil
		},
		OnStop: server.Shutdown,
	})
}
