package main

import (
	"context"
	"os"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/ajitpratap0/medallion/internal/pipeline"
	"github.com/ajitpratap0/medallion/pkg/compression"
	"github.com/ajitpratap0/medallion/pkg/config"
	"github.com/ajitpratap0/medallion/pkg/errors"
	"github.com/ajitpratap0/medallion/pkg/fake"
	"github.com/ajitpratap0/medallion/pkg/generator"
	"github.com/ajitpratap0/medallion/pkg/logger"
	"github.com/ajitpratap0/medallion/pkg/metrics"
	"github.com/ajitpratap0/medallion/pkg/observability"
	"github.com/ajitpratap0/medallion/pkg/storage"
)

// app holds the state shared by commands that talk to the lake
type app struct {
	configFile  string
	seed        uint64
	backend     string
	compression string

	cfg      *config.Config
	log      *zap.Logger
	store    storage.Store
	recorder *metrics.Recorder
	shutdown observability.ShutdownFunc
}

// setup loads the configuration and starts logging and tracing
func (a *app) setup() error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.seed != 0 {
		cfg.Generation.Seed = a.seed
	}
	if a.backend != "" {
		cfg.Storage.Backend = a.backend
	}
	if a.compression != "" {
		cfg.Output.Compression = a.compression
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Encoding:    cfg.Logging.Encoding,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stderr"},
	}); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "init logger")
	}
	a.log = logger.With(zap.String("component", "medallion-cli"))

	a.shutdown, err = observability.InitTracing(observability.TracingConfig{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: version,
		Writer:         os.Stderr,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "init tracing")
	}
	if cfg.Metrics.Enabled {
		a.recorder = metrics.NewRecorder()
	}
	return nil
}

// runner opens the store and builds a runner over it
func (a *app) runner(ctx context.Context, needStore bool) (*pipeline.Runner, error) {
	if err := a.setup(); err != nil {
		return nil, err
	}

	faker := fake.NewRand(a.cfg.Generation.Seed)
	provider, err := fake.New(a.cfg.Generation.Locale, faker)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "generation locale")
	}
	clock := clockwork.NewRealClock()
	gen, err := generator.New(generator.Deps{Provider: provider, Rand: faker, Clock: clock})
	if err != nil {
		return nil, err
	}

	if needStore {
		settings, err := a.cfg.StorageSettings()
		if err != nil {
			return nil, err
		}
		if a.store, err = storage.New(ctx, settings); err != nil {
			return nil, err
		}
		a.log.Info("storage opened",
			zap.String("backend", string(settings.Backend)),
			zap.String("endpoint", settings.Endpoint))
	} else {
		a.store = storage.NewMemoryStore()
	}

	algorithm, err := compression.Parse(a.cfg.Output.Compression)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "output compression")
	}
	return pipeline.NewRunner(a.store, gen, &pipeline.RunnerConfig{
		Clock:       clock,
		Compression: algorithm,
		Recorder:    a.recorder,
	}, a.log)
}

// close pushes metrics, flushes spans and closes the store
func (a *app) close(ctx context.Context) error {
	var first error
	if a.cfg == nil {
		return nil
	}
	if a.recorder != nil && a.cfg.Metrics.PushgatewayURL != "" {
		if err := a.recorder.Push(ctx, a.cfg.Metrics.PushgatewayURL, a.cfg.Metrics.Job); err != nil {
			a.log.Warn("failed to push metrics", zap.Error(err))
		}
	}
	if a.shutdown != nil {
		if err := a.shutdown(context.WithoutCancel(ctx)); err != nil {
			first = err
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
