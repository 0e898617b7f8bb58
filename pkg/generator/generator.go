package generator

import (
	"context"

	"github.com/ajitpratap0/medallion/pkg/errors"
	"github.com/ajitpratap0/medallion/pkg/fake"
	"github.com/ajitpratap0/medallion/pkg/models"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

// RecordSet is the output of one generation run
type RecordSet struct {
	Zone    zone.Zone
	Records []*models.Record
}

// Len returns the number of records
func (s *RecordSet) Len() int { return len(s.Records) }

// RandomCount draws the record count of a run uniformly from the zone's
// inclusive range.
func RandomCount(r fake.Rand, z zone.Zone) (int, error) {
	def, err := zone.Lookup(z)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrorTypeValidation, "record count")
	}
	return r.IntRange(def.Count.Min, def.Count.Max), nil
}

// Generate builds count records in order. Any factory failure or context
// cancellation aborts the run and no records are returned.
func Generate(ctx context.Context, f RecordFactory, count int) (*RecordSet, error) {
	if count < 0 {
		return nil, errors.Newf(errors.ErrorTypeValidation, "negative record count %d", count)
	}
	records := make([]*models.Record, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeGeneration, "generation cancelled").
				WithDetail("zone", string(f.Zone())).
				WithDetail("built", i)
		}
		rec, err := f.Build()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeGeneration, "generate records").
				WithDetail("zone", string(f.Zone())).
				WithDetail("index", i)
		}
		records = append(records, rec)
	}
	return &RecordSet{Zone: f.Zone(), Records: records}, nil
}

// Generator draws a count and builds a full record set for any zone from
// one set of dependencies.
type Generator struct {
	deps Deps
}

// New returns a generator over deps
func New(deps Deps) (*Generator, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	return &Generator{deps: deps}, nil
}

// Run generates a record set for z. A count <= 0 draws one from the zone's
// range.
func (g *Generator) Run(ctx context.Context, z zone.Zone, count int) (*RecordSet, error) {
	f, err := NewFactory(z, g.deps)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		if count, err = RandomCount(g.deps.Rand, z); err != nil {
			return nil, err
		}
	}
	return Generate(ctx, f, count)
}
