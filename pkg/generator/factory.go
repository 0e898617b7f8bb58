// Package generator builds synthetic customer records for each lake zone.
//
// Every zone has its own factory type that knows the zone's field set,
// vocabularies and derivations. Factories draw identity attributes from a
// fake.Provider, plain random values from a fake.Rand and wall-clock values
// from a clockwork.Clock, so a fixed seed and a fake clock reproduce a run
// exactly (record ids aside).
//
// A factory either returns a complete record or a generation error; it never
// returns a partially filled record.
package generator

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ajitpratap0/medallion/pkg/errors"
	"github.com/ajitpratap0/medallion/pkg/fake"
	"github.com/ajitpratap0/medallion/pkg/models"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

// RecordFactory builds one record of a zone
type RecordFactory interface {
	Zone() zone.Zone
	Build() (*models.Record, error)
}

// Deps are the injected sources of randomness and time
type Deps struct {
	Provider fake.Provider
	Rand     fake.Rand
	Clock    clockwork.Clock
}

func (d Deps) validate() error {
	if d.Provider == nil {
		return errors.New(errors.ErrorTypeValidation, "generator: provider is required")
	}
	if d.Rand == nil {
		return errors.New(errors.ErrorTypeValidation, "generator: random source is required")
	}
	if d.Clock == nil {
		return errors.New(errors.ErrorTypeValidation, "generator: clock is required")
	}
	return nil
}

// NewFactory returns the factory for z
func NewFactory(z zone.Zone, deps Deps) (RecordFactory, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	switch z {
	case zone.LandingSAP:
		return &landingSAPFactory{deps}, nil
	case zone.LandingCloudX:
		return &landingCloudXFactory{deps}, nil
	case zone.Bronze:
		return &bronzeFactory{deps}, nil
	case zone.Silver:
		return &silverFactory{deps}, nil
	case zone.Gold:
		return &goldFactory{deps}, nil
	default:
		return nil, errors.Newf(errors.ErrorTypeValidation, "no record factory for zone %q", string(z))
	}
}

// Shared vocabularies
var (
	setoresBase      = []string{"Tecnologia", "Varejo", "Saúde", "Educação", "Financeiro"}
	setoresIndustria = []string{"Tecnologia", "Varejo", "Saúde", "Educação", "Financeiro", "Industrial"}
)

// lookback returns a date generator for the window [now - years, now]
func lookback(p fake.Provider, now time.Time, years int) func() (time.Time, error) {
	return func() (time.Time, error) {
		return p.DateBetween(now.AddDate(-years, 0, 0), now)
	}
}

func dateOfBirth(p fake.Provider, now time.Time) func() (time.Time, error) {
	return func() (time.Time, error) {
		return p.DateOfBirth(now, 18, 80)
	}
}
