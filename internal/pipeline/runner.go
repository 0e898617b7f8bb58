// Package pipeline orchestrates medallion runs: provisioning the lake's
// buckets, then for each zone generating a record set, serializing it in the
// zone's format and uploading it as one object.
//
// # Overview
//
// A run is strictly sequential and all-or-nothing:
//   - generate the whole record set in memory
//   - serialize it into a single payload (optionally compressed)
//   - upload exactly one object, at most once
//
// Any failure aborts the run before the upload, so a failed run writes
// nothing.
//
// # Basic Usage
//
//	runner, err := pipeline.NewRunner(store, gen, &pipeline.RunnerConfig{
//	    Clock:       clockwork.NewRealClock(),
//	    Compression: compression.None,
//	}, logger)
//
//	results, err := runner.RunAll(ctx)
package pipeline

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/ajitpratap0/medallion/pkg/compression"
	"github.com/ajitpratap0/medallion/pkg/errors"
	"github.com/ajitpratap0/medallion/pkg/formats"
	"github.com/ajitpratap0/medallion/pkg/generator"
	"github.com/ajitpratap0/medallion/pkg/logger"
	"github.com/ajitpratap0/medallion/pkg/metrics"
	"github.com/ajitpratap0/medallion/pkg/observability"
	"github.com/ajitpratap0/medallion/pkg/storage"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

// RunnerConfig contains the optional collaborators of a Runner
type RunnerConfig struct {
	// Clock stamps object keys and metadata (default: real clock)
	Clock clockwork.Clock
	// Compression applies to JSON and CSV payloads
	Compression compression.Algorithm
	// Recorder receives run metrics; nil disables metrics
	Recorder *metrics.Recorder
}

// DefaultRunnerConfig returns a real clock and no compression
func DefaultRunnerConfig() *RunnerConfig {
	return &RunnerConfig{
		Clock:       clockwork.NewRealClock(),
		Compression: compression.None,
	}
}

// Runner executes zone runs against one store
type Runner struct {
	store      storage.Store
	gen        *generator.Generator
	clock      clockwork.Clock
	compressor compression.Compressor
	recorder   *metrics.Recorder
	logger     *zap.Logger
}

// BucketResult is the provisioning outcome of one bucket
type BucketResult struct {
	Bucket string
	Status storage.BucketStatus
}

// RunResult describes one uploaded object
type RunResult struct {
	RunID    string
	Zone     zone.Zone
	Bucket   string
	Key      string
	Format   zone.Format
	Records  int
	Bytes    int
	Duration time.Duration
}

// Location renders bucket/key
func (r *RunResult) Location() string { return r.Bucket + "/" + r.Key }

// NewRunner creates a runner. A nil config uses DefaultRunnerConfig.
func NewRunner(store storage.Store, gen *generator.Generator, config *RunnerConfig, log *zap.Logger) (*Runner, error) {
	if store == nil {
		return nil, errors.New(errors.ErrorTypeValidation, "runner: store is required")
	}
	if gen == nil {
		return nil, errors.New(errors.ErrorTypeValidation, "runner: generator is required")
	}
	if config == nil {
		config = DefaultRunnerConfig()
	}
	if config.Clock == nil {
		config.Clock = clockwork.NewRealClock()
	}
	if log == nil {
		log = logger.Get()
	}
	comp, err := compression.NewCompressor(config.Compression)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "runner: compression")
	}
	return &Runner{
		store:      store,
		gen:        gen,
		clock:      config.Clock,
		compressor: comp,
		recorder:   config.Recorder,
		logger:     log.With(zap.String("component", "runner"), zap.String("backend", string(store.Backend()))),
	}, nil
}

// Provision creates every lake bucket that does not exist yet. It stops at
// the first failure.
func (r *Runner) Provision(ctx context.Context) (results []BucketResult, err error) {
	ctx, span := observability.StartSpan(ctx, "provision")
	defer func() { observability.EndSpan(span, err) }()

	results = make([]BucketResult, 0, len(zone.Buckets))
	for _, bucket := range zone.Buckets {
		status, err := r.store.CreateBucketIfAbsent(ctx, bucket)
		if err != nil {
			r.logger.Error("bucket provisioning failed", zap.String("bucket", bucket), zap.Error(err))
			return results, err
		}
		if r.recorder != nil {
			r.recorder.BucketProvisioned(status.String())
		}
		switch status {
		case storage.BucketCreated:
			r.logger.Info("bucket created", zap.String("bucket", bucket))
		default:
			r.logger.Info("bucket already exists", zap.String("bucket", bucket))
		}
		results = append(results, BucketResult{Bucket: bucket, Status: status})
	}
	return results, nil
}

// Run generates, serializes and uploads one zone's record set
func (r *Runner) Run(ctx context.Context, z zone.Zone) (result *RunResult, err error) {
	def, err := zone.Lookup(z)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, "run")
	}

	start := r.clock.Now()
	runID := uuid.NewString()
	ctx = logger.WithRun(ctx, runID, string(z))
	log := logger.FromContext(ctx, r.logger)

	ctx, span := observability.StartSpan(ctx, "run",
		attribute.String("zone", string(z)),
		attribute.String("run_id", runID))
	defer func() {
		observability.EndSpan(span, err)
		if r.recorder != nil {
			r.recorder.RunFinished(string(z), err)
		}
		if err != nil {
			log.Error("run failed", zap.Error(err), zap.String("error_type", string(errors.TypeOf(err))))
		}
	}()

	log.Info("run started", zap.String("bucket", def.Bucket), zap.String("format", string(def.Format)))

	set, err := r.generate(ctx, z)
	if err != nil {
		return nil, err
	}
	log.Info("records generated", zap.Int("records", set.Len()))

	payload, err := r.serialize(ctx, z, def.Format, set)
	if err != nil {
		return nil, err
	}
	log.Info("payload serialized", zap.Int("bytes", payload.Size()), zap.String("content_type", payload.ContentType))

	key := r.objectKey(def, start, payload)
	if err := r.upload(ctx, def, key, payload, set.Len(), start); err != nil {
		return nil, err
	}

	result = &RunResult{
		RunID:    runID,
		Zone:     z,
		Bucket:   def.Bucket,
		Key:      key,
		Format:   def.Format,
		Records:  set.Len(),
		Bytes:    payload.Size(),
		Duration: r.clock.Since(start),
	}
	log.Info("run completed",
		zap.String("location", result.Location()),
		zap.Int("records", result.Records),
		zap.Int("bytes", result.Bytes),
		zap.Duration("duration", result.Duration))
	return result, nil
}

// RunAll provisions the buckets and runs every zone in order. It stops at
// the first failing zone and returns the results so far.
func (r *Runner) RunAll(ctx context.Context) ([]*RunResult, error) {
	if _, err := r.Provision(ctx); err != nil {
		return nil, err
	}
	defs := zone.All()
	results := make([]*RunResult, 0, len(defs))
	for _, def := range defs {
		res, err := r.Run(ctx, def.Zone)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) generate(ctx context.Context, z zone.Zone) (set *generator.RecordSet, err error) {
	ctx, span := observability.StartSpan(ctx, "generate")
	defer func() { observability.EndSpan(span, err) }()
	if r.recorder != nil {
		defer r.recorder.Timer(string(z), metrics.StageGenerate).ObserveDuration()
	}

	set, err = r.gen.Run(ctx, z, 0)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("records", set.Len()))
	if r.recorder != nil {
		r.recorder.RecordsGenerated(string(z), set.Len())
	}
	return set, nil
}

func (r *Runner) serialize(ctx context.Context, z zone.Zone, f zone.Format, set *generator.RecordSet) (payload *formats.Payload, err error) {
	_, span := observability.StartSpan(ctx, "serialize", attribute.String("format", string(f)))
	defer func() { observability.EndSpan(span, err) }()
	if r.recorder != nil {
		defer r.recorder.Timer(string(z), metrics.StageSerialize).ObserveDuration()
	}

	ser, err := formats.ForFormat(f)
	if err != nil {
		return nil, err
	}
	payload, err = ser.Serialize(set.Records)
	if err != nil {
		return nil, err
	}
	return formats.Compress(payload, r.compressor)
}

func (r *Runner) upload(ctx context.Context, def zone.Definition, key string, payload *formats.Payload, records int, at time.Time) (err error) {
	ctx, span := observability.StartSpan(ctx, "upload",
		attribute.String("bucket", def.Bucket),
		attribute.String("key", key),
		attribute.Int("bytes", payload.Size()))
	defer func() { observability.EndSpan(span, err) }()
	if r.recorder != nil {
		defer r.recorder.Timer(string(def.Zone), metrics.StageUpload).ObserveDuration()
	}

	opts := []storage.PutOption{storage.WithMetadata(map[string]string{
		storage.MetaRecords:     strconv.Itoa(records),
		storage.MetaZone:        string(def.Zone),
		storage.MetaFormat:      string(def.Format),
		storage.MetaGeneratedAt: at.UTC().Format(time.RFC3339),
	})}
	if payload.ContentEncoding != "" {
		opts = append(opts, storage.WithContentEncoding(payload.ContentEncoding))
	}
	if err := r.store.Put(ctx, def.Bucket, key, payload.Body, payload.ContentType, opts...); err != nil {
		return err
	}
	if r.recorder != nil {
		r.recorder.PayloadSize(string(def.Zone), string(def.Format), payload.Size())
	}
	return nil
}

// objectKey renders the zone key for the run start second, plus the
// compression suffix when the payload is compressed
func (r *Runner) objectKey(def zone.Definition, at time.Time, payload *formats.Payload) string {
	key := def.Key(at.Unix())
	if info, ok := formats.GetInfo(def.Format); ok && payload.Extension != info.Extension {
		key += payload.Extension[len(info.Extension):]
	}
	return key
}
