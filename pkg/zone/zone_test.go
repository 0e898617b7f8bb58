package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionKey(t *testing.T) {
	tests := []struct {
		zone Zone
		key  string
	}{
		{LandingSAP, "dataway/sap/clients/clients_data_1700000000.json"},
		{LandingCloudX, "dataway/cloud_x/clients/clients_data_1700000000.parquet"},
		{Bronze, "processed/protheus/clients_bronze_1700000000.csv"},
		{Silver, "enriched/sap/clients_silver_1700000000.json"},
		{Gold, "analytics/cloud_x/clients_gold_1700000000.parquet"},
	}

	for _, tt := range tests {
		t.Run(string(tt.zone), func(t *testing.T) {
			d, err := Lookup(tt.zone)
			require.NoError(t, err)
			assert.Equal(t, tt.key, d.Key(1700000000))
		})
	}
}

func TestDistinctSecondsGiveDistinctKeys(t *testing.T) {
	d, err := Lookup(Gold)
	require.NoError(t, err)
	assert.NotEqual(t, d.Key(1700000000), d.Key(1700000001))
}

func TestBucketsAndRanges(t *testing.T) {
	want := map[Zone]struct {
		bucket string
		format Format
		count  Range
	}{
		LandingSAP:    {LandingBucket, FormatJSON, Range{1000, 10000}},
		LandingCloudX: {LandingBucket, FormatParquet, Range{1000, 10000}},
		Bronze:        {BronzeBucket, FormatCSV, Range{2000, 8000}},
		Silver:        {SilverBucket, FormatJSON, Range{1500, 6000}},
		Gold:          {GoldBucket, FormatParquet, Range{1000, 4000}},
	}

	all := All()
	require.Len(t, all, len(want))
	for _, d := range all {
		w := want[d.Zone]
		assert.Equal(t, w.bucket, d.Bucket, d.Zone)
		assert.Equal(t, w.format, d.Format, d.Zone)
		assert.Equal(t, w.count, d.Count, d.Zone)
	}
	assert.Equal(t, []string{"landing-zone", "bronze-zone", "silver-zone", "gold-zone"}, Buckets)
}

func TestParse(t *testing.T) {
	z, err := Parse(" GOLD ")
	require.NoError(t, err)
	assert.Equal(t, Gold, z)

	_, err = Parse("platinum")
	assert.Error(t, err)

	f, err := ParseFormat("Avro")
	require.NoError(t, err)
	assert.Equal(t, FormatAvro, f)
}

func TestRangeContains(t *testing.T) {
	r := Range{Min: 2, Max: 4}
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(1))
	assert.False(t, r.Contains(5))
	assert.Equal(t, "2-4", r.String())
}
