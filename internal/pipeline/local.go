package pipeline

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ajitpratap0/medallion/pkg/errors"
	"github.com/ajitpratap0/medallion/pkg/formats"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

// GenerateOptions controls a local generation
type GenerateOptions struct {
	Zone zone.Zone
	// Format overrides the zone's format when set
	Format zone.Format
	// Count <= 0 draws a count from the zone range
	Count int
	// Dir receives the file
	Dir string
}

// Generate builds one zone's record set and writes it under opts.Dir using
// the base name of the zone key. Storage is never touched.
func (r *Runner) Generate(ctx context.Context, opts GenerateOptions) (result *RunResult, err error) {
	def, err := zone.Lookup(opts.Zone)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, "generate")
	}
	format := def.Format
	if opts.Format != "" {
		format = opts.Format
	}
	info, ok := formats.GetInfo(format)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeValidation, "unsupported format: %s", format)
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}

	start := r.clock.Now()
	set, err := r.gen.Run(ctx, opts.Zone, opts.Count)
	if err != nil {
		return nil, err
	}
	payload, err := r.serialize(ctx, opts.Zone, format, set)
	if err != nil {
		return nil, err
	}

	base := path.Base(def.Key(start.Unix()))
	name := strings.TrimSuffix(base, path.Ext(base)) + payload.Extension
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeStorage, "create output directory").
			WithDetail("dir", opts.Dir)
	}
	file := filepath.Join(opts.Dir, name)
	if err := os.WriteFile(file, payload.Body, 0o644); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeStorage, "write output file").
			WithDetail("path", file)
	}

	r.logger.Info("records written",
		zap.String("zone", string(opts.Zone)),
		zap.String("format", info.Name),
		zap.String("path", file),
		zap.Int("records", set.Len()),
		zap.Int("bytes", payload.Size()))

	return &RunResult{
		Zone:     opts.Zone,
		Key:      file,
		Format:   format,
		Records:  set.Len(),
		Bytes:    payload.Size(),
		Duration: r.clock.Since(start),
	}, nil
}

// Inspect reads back an object and summarises it
func (r *Runner) Inspect(ctx context.Context, bucket, key string) (*formats.Summary, error) {
	obj, err := r.store.Get(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	return inspect(ctx, key, obj.Body)
}

// InspectFile summarises a local file
func InspectFile(ctx context.Context, file string) (*formats.Summary, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeStorage, "read file").WithDetail("path", file)
	}
	return inspect(ctx, file, data)
}

func inspect(ctx context.Context, name string, data []byte) (*formats.Summary, error) {
	f, algorithm, err := formats.Detect(name)
	if err != nil {
		return nil, err
	}
	return formats.Inspect(ctx, f, algorithm, data)
}
