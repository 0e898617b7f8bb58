// Package testutil provides testing utilities for medallion
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/ajitpratap0/medallion/pkg/fake"
	"github.com/ajitpratap0/medallion/pkg/models"
)

// Epoch is the instant every fake clock starts at
var Epoch = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

// TestLogger creates a test logger that writes to the test output.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// TestContext creates a test context with a 30-second timeout.
// The caller must call the returned cancel function to avoid leaks.
func TestContext(_ *testing.T) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// FakeClock returns a clock frozen at Epoch
func FakeClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(Epoch)
}

// Faker returns a seeded random source
func Faker(seed uint64) *gofakeit.Faker {
	return fake.NewRand(seed)
}

// Provider returns a pt_BR provider over faker
func Provider(t *testing.T, faker *gofakeit.Faker) fake.Provider {
	t.Helper()
	p, err := fake.New(fake.LocalePtBR, faker)
	if err != nil {
		t.Fatalf("create provider: %v", err)
	}
	return p
}

// FlatRecords returns n flat records covering every scalar type
func FlatRecords(n int) []*models.Record {
	out := make([]*models.Record, 0, n)
	for i := 0; i < n; i++ {
		r := models.NewRecord(6)
		r.Set("cliente_id", "id-"+string(rune('a'+i%26)))
		r.Set("nome", "Ana Luíza, \"Filha\"")
		r.Set("idade", 30+i)
		r.Set("salario", 1234.5+float64(i))
		r.Set("ativo", i%2 == 0)
		r.Set("data_cadastro", models.NewDate(Epoch.AddDate(0, 0, -i)))
		out = append(out, r)
	}
	return out
}

// NestedRecords returns n records with one nested group
func NestedRecords(n int) []*models.Record {
	out := make([]*models.Record, 0, n)
	for i := 0; i < n; i++ {
		end := models.NewRecord(2)
		end.Set("cidade", "São Paulo")
		end.Set("pais", "Brasil")
		r := models.NewRecord(3)
		r.Set("id", i)
		r.Set("endereco", end)
		r.Set("newsletter", i%2 == 1)
		out = append(out, r)
	}
	return out
}

// RequireNoError fails the test immediately if err is not nil.
func RequireNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}
