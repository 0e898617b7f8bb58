package generator

import (
	"fmt"
	"math"
	"time"

	"github.com/ajitpratap0/medallion/pkg/errors"
	"github.com/ajitpratap0/medallion/pkg/models"
)

// recordBuilder accumulates fields and remembers the first provider
// failure. Once failed, every further call is a no-op and build returns the
// error without a record.
type recordBuilder struct {
	rec *models.Record
	err error
}

func newRecordBuilder(capacity int) *recordBuilder {
	return &recordBuilder{rec: models.NewRecord(capacity)}
}

func (b *recordBuilder) fail(name string, err error) {
	b.err = fmt.Errorf("%s: %w", name, err)
}

func (b *recordBuilder) set(name string, v interface{}) {
	if b.err != nil {
		return
	}
	b.rec.Set(name, v)
}

func (b *recordBuilder) text(name string, fn func() (string, error)) {
	if b.err != nil {
		return
	}
	v, err := fn()
	if err != nil {
		b.fail(name, err)
		return
	}
	b.rec.Set(name, v)
}

// dateText stores a date as YYYY-MM-DD text
func (b *recordBuilder) dateText(name string, fn func() (time.Time, error)) {
	if b.err != nil {
		return
	}
	v, err := fn()
	if err != nil {
		b.fail(name, err)
		return
	}
	b.rec.Set(name, v.Format(models.DateLayout))
}

// date stores a typed calendar date
func (b *recordBuilder) date(name string, fn func() (time.Time, error)) {
	if b.err != nil {
		return
	}
	v, err := fn()
	if err != nil {
		b.fail(name, err)
		return
	}
	b.rec.Set(name, models.NewDate(v))
}

func (b *recordBuilder) group(name string, capacity int, fill func(g *recordBuilder)) {
	if b.err != nil {
		return
	}
	g := newRecordBuilder(capacity)
	fill(g)
	if g.err != nil {
		b.fail(name, g.err)
		return
	}
	b.rec.Set(name, g.rec)
}

func (b *recordBuilder) build(zoneName string) (*models.Record, error) {
	if b.err != nil {
		return nil, errors.Wrap(b.err, errors.ErrorTypeGeneration, "build record").
			WithDetail("zone", zoneName)
	}
	return b.rec, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
