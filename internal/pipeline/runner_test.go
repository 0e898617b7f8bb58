package pipeline

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jonboulle/clockwork"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/medallion/pkg/compression"
	"github.com/ajitpratap0/medallion/pkg/errors"
	"github.com/ajitpratap0/medallion/pkg/fake"
	"github.com/ajitpratap0/medallion/pkg/formats"
	"github.com/ajitpratap0/medallion/pkg/generator"
	"github.com/ajitpratap0/medallion/pkg/metrics"
	"github.com/ajitpratap0/medallion/pkg/storage"
	"github.com/ajitpratap0/medallion/pkg/testutil"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

// smallCounts keeps drawn run sizes small
type smallCounts struct {
	*gofakeit.Faker
}

func (s smallCounts) IntRange(min, max int) int {
	if min >= 1000 {
		return 20
	}
	return s.Faker.IntRange(min, max)
}

// brokenCity fails every City call
type brokenCity struct {
	fake.Provider
}

func (brokenCity) City() (string, error) {
	return "", stderrors.New("city table unavailable")
}

func testGenerator(t *testing.T, seed uint64) *generator.Generator {
	t.Helper()
	faker := testutil.Faker(seed)
	gen, err := generator.New(generator.Deps{
		Provider: testutil.Provider(t, faker),
		Rand:     smallCounts{faker},
		Clock:    testutil.FakeClock(),
	})
	require.NoError(t, err)
	return gen
}

func newTestRunner(t *testing.T, store storage.Store, clock clockwork.Clock, algorithm compression.Algorithm) (*Runner, *metrics.Recorder) {
	t.Helper()
	rec := metrics.NewRecorder()
	r, err := NewRunner(store, testGenerator(t, 42), &RunnerConfig{
		Clock:       clock,
		Compression: algorithm,
		Recorder:    rec,
	}, testutil.TestLogger(t))
	require.NoError(t, err)
	return r, rec
}

func TestNewRunnerValidation(t *testing.T) {
	_, err := NewRunner(nil, testGenerator(t, 1), nil, nil)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	_, err = NewRunner(storage.NewMemoryStore(), nil, nil, nil)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	_, err = NewRunner(storage.NewMemoryStore(), testGenerator(t, 1), &RunnerConfig{Compression: "brotli"}, nil)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestProvisionIsIdempotent(t *testing.T) {
	store := storage.NewMemoryStore()
	r, rec := newTestRunner(t, store, testutil.FakeClock(), compression.None)
	ctx := context.Background()

	first, err := r.Provision(ctx)
	require.NoError(t, err)
	require.Len(t, first, len(zone.Buckets))
	for i, res := range first {
		assert.Equal(t, zone.Buckets[i], res.Bucket)
		assert.Equal(t, storage.BucketCreated, res.Status)
	}

	second, err := r.Provision(ctx)
	require.NoError(t, err)
	for _, res := range second {
		assert.Equal(t, storage.BucketAlreadyExists, res.Status)
	}
	expected := `
# HELP medallion_buckets_provisioned_total Bucket provisioning outcomes
# TYPE medallion_buckets_provisioned_total counter
medallion_buckets_provisioned_total{status="already_exists"} 4
medallion_buckets_provisioned_total{status="created"} 4
`
	assert.NoError(t, promtestutil.GatherAndCompare(rec.Registry(), strings.NewReader(expected),
		"medallion_buckets_provisioned_total"))
}

func TestRunAllWritesOneObjectPerZone(t *testing.T) {
	store := storage.NewMemoryStore()
	clock := testutil.FakeClock()
	r, rec := newTestRunner(t, store, clock, compression.None)
	ctx := context.Background()

	results, err := r.RunAll(ctx)
	require.NoError(t, err)
	require.Len(t, results, 5)
	assert.Equal(t, 5, store.Puts())

	ts := strconv.FormatInt(testutil.Epoch.Unix(), 10)
	want := map[zone.Zone]string{
		zone.LandingSAP:    "landing-zone/dataway/sap/clients/clients_data_" + ts + ".json",
		zone.LandingCloudX: "landing-zone/dataway/cloud_x/clients/clients_data_" + ts + ".parquet",
		zone.Bronze:        "bronze-zone/processed/protheus/clients_bronze_" + ts + ".csv",
		zone.Silver:        "silver-zone/enriched/sap/clients_silver_" + ts + ".json",
		zone.Gold:          "gold-zone/analytics/cloud_x/clients_gold_" + ts + ".parquet",
	}
	for i, def := range zone.All() {
		res := results[i]
		assert.Equal(t, def.Zone, res.Zone)
		assert.Equal(t, want[def.Zone], res.Location())
		assert.Equal(t, 20, res.Records)

		obj, err := store.Get(ctx, res.Bucket, res.Key)
		require.NoError(t, err)
		assert.Equal(t, res.Bytes, len(obj.Body))
		assert.Equal(t, "20", obj.Metadata[storage.MetaRecords])
		assert.Equal(t, string(def.Zone), obj.Metadata[storage.MetaZone])
		assert.Equal(t, string(def.Format), obj.Metadata[storage.MetaFormat])
		assert.Equal(t, "2024-03-15T10:30:00Z", obj.Metadata[storage.MetaGeneratedAt])
		assert.Empty(t, obj.ContentEncoding)

		info, _ := formats.GetInfo(def.Format)
		assert.Equal(t, info.ContentType, obj.ContentType)

		summary, err := r.Inspect(ctx, res.Bucket, res.Key)
		require.NoError(t, err)
		assert.Equal(t, 20, summary.Rows)
		assert.Equal(t, def.Format, summary.Format)
	}

	expected := `
# HELP medallion_records_generated_total Records generated per zone
# TYPE medallion_records_generated_total counter
medallion_records_generated_total{zone="bronze"} 20
medallion_records_generated_total{zone="gold"} 20
medallion_records_generated_total{zone="landing-cloudx"} 20
medallion_records_generated_total{zone="landing-sap"} 20
medallion_records_generated_total{zone="silver"} 20
# HELP medallion_runs_total Zone runs by outcome
# TYPE medallion_runs_total counter
medallion_runs_total{status="success",zone="bronze"} 1
medallion_runs_total{status="success",zone="gold"} 1
medallion_runs_total{status="success",zone="landing-cloudx"} 1
medallion_runs_total{status="success",zone="landing-sap"} 1
medallion_runs_total{status="success",zone="silver"} 1
`
	assert.NoError(t, promtestutil.GatherAndCompare(rec.Registry(), strings.NewReader(expected),
		"medallion_records_generated_total", "medallion_runs_total"))
}

func TestRunFailureWritesNothing(t *testing.T) {
	store := storage.NewMemoryStore()
	faker := testutil.Faker(3)
	gen, err := generator.New(generator.Deps{
		Provider: brokenCity{testutil.Provider(t, faker)},
		Rand:     smallCounts{faker},
		Clock:    testutil.FakeClock(),
	})
	require.NoError(t, err)
	r, err := NewRunner(store, gen, &RunnerConfig{Clock: testutil.FakeClock()}, testutil.TestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()
	_, err = r.Provision(ctx)
	require.NoError(t, err)

	for _, z := range []zone.Zone{zone.LandingSAP, zone.Bronze, zone.Silver, zone.Gold} {
		res, err := r.Run(ctx, z)
		assert.Nil(t, res)
		assert.True(t, errors.IsGeneration(err), "%s: %v", z, err)
	}
	assert.Equal(t, 0, store.Puts())

	_, err = r.RunAll(ctx)
	require.Error(t, err)
	assert.Equal(t, 0, store.Puts())
}

func TestRunWithoutBucketIsStorageError(t *testing.T) {
	store := storage.NewMemoryStore()
	r, _ := newTestRunner(t, store, testutil.FakeClock(), compression.None)

	_, err := r.Run(context.Background(), zone.Gold)
	require.Error(t, err)
	assert.True(t, errors.IsStorage(err))
	assert.Equal(t, 0, store.Puts())
}

func TestRunUnknownZone(t *testing.T) {
	r, _ := newTestRunner(t, storage.NewMemoryStore(), testutil.FakeClock(), compression.None)
	_, err := r.Run(context.Background(), zone.Zone("diamond"))
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestRunCompressesRowFormatsOnly(t *testing.T) {
	store := storage.NewMemoryStore()
	r, _ := newTestRunner(t, store, testutil.FakeClock(), compression.Gzip)
	ctx := context.Background()
	_, err := r.Provision(ctx)
	require.NoError(t, err)

	bronze, err := r.Run(ctx, zone.Bronze)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(bronze.Key, ".csv.gz"), bronze.Key)
	obj, err := store.Get(ctx, bronze.Bucket, bronze.Key)
	require.NoError(t, err)
	assert.Equal(t, "gzip", obj.ContentEncoding)

	summary, err := r.Inspect(ctx, bronze.Bucket, bronze.Key)
	require.NoError(t, err)
	assert.Equal(t, compression.Gzip, summary.Compression)
	assert.Equal(t, bronze.Records, summary.Rows)

	gold, err := r.Run(ctx, zone.Gold)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(gold.Key, ".parquet"), gold.Key)
}

func TestRunKeysFollowClock(t *testing.T) {
	store := storage.NewMemoryStore()
	clock := testutil.FakeClock()
	r, _ := newTestRunner(t, store, clock, compression.None)
	ctx := context.Background()
	_, err := r.Provision(ctx)
	require.NoError(t, err)

	first, err := r.Run(ctx, zone.Silver)
	require.NoError(t, err)
	clock.Advance(time.Second)
	second, err := r.Run(ctx, zone.Silver)
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)
	assert.Len(t, store.Keys(zone.SilverBucket), 2)
}

func TestGenerateWritesLocalFile(t *testing.T) {
	store := storage.NewMemoryStore()
	r, _ := newTestRunner(t, store, testutil.FakeClock(), compression.None)
	dir := filepath.Join(t.TempDir(), "out")
	ctx := context.Background()

	tests := []struct {
		zone   zone.Zone
		format zone.Format
		count  int
		file   string
	}{
		{zone.Gold, "", 15, "clients_gold_1710498600.parquet"},
		{zone.Gold, zone.FormatAvro, 15, "clients_gold_1710498600.avro"},
		{zone.Bronze, zone.FormatJSON, 0, "clients_bronze_1710498600.json"},
		{zone.LandingSAP, zone.FormatParquet, 7, "clients_data_1710498600.parquet"},
	}
	for _, tt := range tests {
		t.Run(string(tt.zone)+"/"+string(tt.format), func(t *testing.T) {
			res, err := r.Generate(ctx, GenerateOptions{Zone: tt.zone, Format: tt.format, Count: tt.count, Dir: dir})
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.file), res.Key)
			if tt.count > 0 {
				assert.Equal(t, tt.count, res.Records)
			}

			summary, err := InspectFile(ctx, res.Key)
			require.NoError(t, err)
			assert.Equal(t, res.Records, summary.Rows)
		})
	}
	assert.Equal(t, 0, store.Puts())
}

func TestGenerateRejectsNestedCSV(t *testing.T) {
	r, _ := newTestRunner(t, storage.NewMemoryStore(), testutil.FakeClock(), compression.None)
	dir := t.TempDir()

	_, err := r.Generate(context.Background(), GenerateOptions{Zone: zone.Silver, Format: zone.FormatCSV, Count: 3, Dir: dir})
	assert.True(t, errors.IsSerialization(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInspectFileUnknownExtension(t *testing.T) {
	file := filepath.Join(t.TempDir(), "clients.xml")
	require.NoError(t, os.WriteFile(file, []byte("<x/>"), 0o644))
	_, err := InspectFile(context.Background(), file)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}
