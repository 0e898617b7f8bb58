// Package fake supplies the pseudo-random identity data used to build
// synthetic customer records: natural persons, addresses, companies and
// dates for a given locale.
//
// Randomness comes from an injected Rand so that a fixed seed reproduces the
// same record set. Record identifiers are the exception: UUIDs always come
// from crypto/rand so they never collide across runs.
package fake

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// LocalePtBR is the only locale bundled with medallion
const LocalePtBR = "pt_BR"

// Rand is the seedable random source consumed by providers and record
// factories. *gofakeit.Faker satisfies it.
type Rand interface {
	// IntRange returns a uniform int in [min, max]
	IntRange(min, max int) int
	// Float64Range returns a uniform float64 in [min, max]
	Float64Range(min, max float64) float64
	// RandomString picks one element of a uniformly
	RandomString(a []string) string
	// Bool returns a fair coin flip
	Bool() bool
}

// Provider produces one identity attribute per call. Every method may fail,
// e.g. when the locale has no data for an attribute; callers must treat a
// failure as fatal for the record being built.
type Provider interface {
	Locale() string
	UUID() (string, error)
	Name() (string, error)
	Email() (string, error)
	PhoneNumber() (string, error)
	// StreetAddress is street, number and optional complement
	StreetAddress() (string, error)
	// Address is a full multi-line postal address
	Address() (string, error)
	City() (string, error)
	CitySuffix() (string, error)
	State() (string, error)
	Postcode() (string, error)
	Company() (string, error)
	CNPJ() (string, error)
	Job() (string, error)
	// DateOfBirth returns a birth date for someone aged [minAge, maxAge] at ref
	DateOfBirth(ref time.Time, minAge, maxAge int) (time.Time, error)
	// DateBetween returns a uniform date in [start, end]
	DateBetween(start, end time.Time) (time.Time, error)
}

// NewRand returns a seeded random source. Seed 0 picks a random seed.
func NewRand(seed uint64) *gofakeit.Faker {
	return gofakeit.New(seed)
}

// New returns the provider for locale backed by faker
func New(locale string, faker *gofakeit.Faker) (Provider, error) {
	if faker == nil {
		faker = gofakeit.New(0)
	}
	switch locale {
	case LocalePtBR, "pt-BR", "":
		return newPtBR(faker), nil
	default:
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
}
