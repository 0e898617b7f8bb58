package formats

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/medallion/pkg/compression"
	"github.com/ajitpratap0/medallion/pkg/errors"
	jsonpkg "github.com/ajitpratap0/medallion/pkg/json"
	"github.com/ajitpratap0/medallion/pkg/models"
	"github.com/ajitpratap0/medallion/pkg/testutil"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

var allFormats = []zone.Format{zone.FormatJSON, zone.FormatCSV, zone.FormatParquet, zone.FormatAvro}

func TestEmptySetFails(t *testing.T) {
	for _, f := range allFormats {
		t.Run(string(f), func(t *testing.T) {
			s, err := ForFormat(f)
			require.NoError(t, err)
			p, err := s.Serialize(nil)
			assert.Nil(t, p)
			assert.True(t, errors.IsSerialization(err), "%v", err)
		})
	}
}

func TestHeterogeneousSetFails(t *testing.T) {
	records := testutil.FlatRecords(3)
	odd := models.NewRecord(1)
	odd.Set("cliente_id", "x")
	records = append(records, odd)

	for _, f := range allFormats {
		s, err := ForFormat(f)
		require.NoError(t, err)
		_, err = s.Serialize(records)
		assert.True(t, errors.IsSerialization(err), "%s: %v", f, err)
	}
}

func TestTypeMismatchFails(t *testing.T) {
	records := testutil.FlatRecords(2)
	records[1].Set("idade", "trinta")

	_, err := InferSchema("x", records)
	assert.True(t, errors.IsSerialization(err))
}

func TestInferSchemaReportsOffendingRecord(t *testing.T) {
	reversed := func(r *models.Record) *models.Record {
		fields := r.Fields()
		out := models.NewRecord(len(fields))
		for i := len(fields) - 1; i >= 0; i-- {
			out.Set(fields[i].Name, fields[i].Value)
		}
		return out
	}

	tests := []struct {
		name    string
		records func() []*models.Record
		details map[string]interface{}
	}{
		{
			name:    "nil first record",
			records: func() []*models.Record { return append([]*models.Record{nil}, testutil.FlatRecords(2)...) },
			details: map[string]interface{}{"index": 0},
		},
		{
			name: "nil later record",
			records: func() []*models.Record {
				records := testutil.FlatRecords(3)
				records[2] = nil
				return records
			},
			details: map[string]interface{}{"index": 2},
		},
		{
			name: "same fields in another order",
			records: func() []*models.Record {
				records := testutil.FlatRecords(2)
				records[1] = reversed(records[1])
				return records
			},
			details: map[string]interface{}{
				"index":    1,
				"path":     "",
				"position": 0,
				"expected": "cliente_id:string",
				"actual":   "data_cadastro:date",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var schema *models.Schema
			var err error
			require.NotPanics(t, func() { schema, err = InferSchema("x", tt.records()) })
			assert.Nil(t, schema)
			require.True(t, errors.IsSerialization(err), "%v", err)

			var e *errors.Error
			require.True(t, stderrors.As(err, &e))
			assert.Equal(t, tt.details, e.Details)
		})
	}
}

func TestSerializersRejectNilRecord(t *testing.T) {
	for _, f := range allFormats {
		t.Run(string(f), func(t *testing.T) {
			s, err := ForFormat(f)
			require.NoError(t, err)
			records := testutil.FlatRecords(2)
			records[1] = nil
			var p *Payload
			require.NotPanics(t, func() { p, err = s.Serialize(records) })
			assert.Nil(t, p)
			assert.True(t, errors.IsSerialization(err), "%v", err)
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	records := testutil.NestedRecords(4)
	p, err := (&JSONSerializer{}).Serialize(records)
	require.NoError(t, err)
	assert.Equal(t, "application/json", p.ContentType)
	assert.Equal(t, ".json", p.Extension)
	assert.Equal(t, 4, p.Records)

	decoded, err := DecodeJSON(p.Body)
	require.NoError(t, err)
	require.Len(t, decoded, len(records))
	for i, r := range records {
		raw, err := jsonpkg.Marshal(r.ToMap())
		require.NoError(t, err)
		want, err := DecodeJSON(append(append([]byte("["), raw...), ']'))
		require.NoError(t, err)
		assert.Equal(t, want[0], decoded[i])
	}
}

func TestJSONLayout(t *testing.T) {
	p, err := (&JSONSerializer{}).Serialize(testutil.NestedRecords(1))
	require.NoError(t, err)
	body := string(p.Body)

	assert.True(t, strings.HasPrefix(body, "[\n  {\n    \"id\": 0,"), body)
	assert.Contains(t, body, "\"cidade\": \"São Paulo\"")
	assert.Less(t, strings.Index(body, "\"id\""), strings.Index(body, "\"endereco\""))
	assert.Less(t, strings.Index(body, "\"endereco\""), strings.Index(body, "\"newsletter\""))
}

func TestJSONSerializerWritesMarkupLiterally(t *testing.T) {
	tests := []struct {
		name  string
		build func() *models.Record
		want  []string
	}{
		{
			name: "top level",
			build: func() *models.Record {
				r := models.NewRecord(1)
				r.Set("nome", "João & Cia")
				return r
			},
			want: []string{`"nome": "João & Cia"`},
		},
		{
			name: "nested group",
			build: func() *models.Record {
				empresa := models.NewRecord(1)
				empresa.Set("nome", "Silva & Filhos <Ltda>")
				r := models.NewRecord(2)
				r.Set("nome", "João & Cia")
				r.Set("empresa", empresa)
				return r
			},
			want: []string{`"nome": "João & Cia"`, `"nome": "Silva & Filhos <Ltda>"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := (&JSONSerializer{}).Serialize([]*models.Record{tt.build(), tt.build()})
			require.NoError(t, err)
			body := string(p.Body)
			for _, want := range tt.want {
				assert.Equal(t, 2, strings.Count(body, want), body)
			}
			for _, escaped := range []string{`\u0026`, `\u003c`, `\u003e`} {
				assert.NotContains(t, body, escaped)
			}

			decoded, err := DecodeJSON(p.Body)
			require.NoError(t, err)
			require.Len(t, decoded, 2)
			assert.Equal(t, "João & Cia", decoded[1]["nome"])
		})
	}
}

func TestCSVLayout(t *testing.T) {
	p, err := (&CSVSerializer{}).Serialize(testutil.FlatRecords(2))
	require.NoError(t, err)
	assert.Equal(t, "text/csv", p.ContentType)

	lines := strings.Split(strings.TrimSpace(string(p.Body)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "cliente_id,nome,idade,salario,ativo,data_cadastro", lines[0])
	assert.Equal(t, `id-a,"Ana Luíza, ""Filha""",30,1234.5,true,2024-03-15`, lines[1])
	assert.Equal(t, `id-b,"Ana Luíza, ""Filha""",31,1235.5,false,2024-03-14`, lines[2])
}

func TestCSVRejectsNestedRecords(t *testing.T) {
	_, err := (&CSVSerializer{}).Serialize(testutil.NestedRecords(2))
	assert.True(t, errors.IsSerialization(err))
}

func TestParquetRoundTrip(t *testing.T) {
	records := testutil.FlatRecords(10)
	p, err := (&ParquetSerializer{}).Serialize(records)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", p.ContentType)
	assert.True(t, bytes.HasPrefix(p.Body, []byte("PAR1")))

	got, schema, err := ReadParquet(context.Background(), p.Body)
	require.NoError(t, err)
	require.Len(t, got, len(records))
	assert.Equal(t, []models.SchemaField{
		{Name: "cliente_id", Type: models.FieldTypeString},
		{Name: "nome", Type: models.FieldTypeString},
		{Name: "idade", Type: models.FieldTypeInt},
		{Name: "salario", Type: models.FieldTypeFloat},
		{Name: "ativo", Type: models.FieldTypeBool},
		{Name: "data_cadastro", Type: models.FieldTypeDate},
	}, schema.Fields)
	for i := range records {
		assert.Equal(t, records[i].Fields(), got[i].Fields())
	}
}

func TestParquetNestedGroups(t *testing.T) {
	records := testutil.NestedRecords(3)
	p, err := (&ParquetSerializer{}).Serialize(records)
	require.NoError(t, err)

	got, schema, err := ReadParquet(context.Background(), p.Body)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, models.FieldTypeRecord, schema.Fields[1].Type)
	assert.Equal(t, records[2].ToMap(), got[2].ToMap())
}

func TestAvroContainer(t *testing.T) {
	records := testutil.NestedRecords(5)
	p, err := (&AvroSerializer{}).Serialize(records)
	require.NoError(t, err)

	rows, schema, err := ReadAvro(p.Body)
	require.NoError(t, err)
	assert.Equal(t, 5, rows)
	require.Len(t, schema.Fields, 3)
	assert.Equal(t, models.FieldTypeInt, schema.Fields[0].Type)
	assert.Equal(t, models.FieldTypeRecord, schema.Fields[1].Type)
	assert.Len(t, schema.Fields[1].Fields, 2)
}

func TestAvroDates(t *testing.T) {
	p, err := (&AvroSerializer{}).Serialize(testutil.FlatRecords(2))
	require.NoError(t, err)
	_, schema, err := ReadAvro(p.Body)
	require.NoError(t, err)
	assert.Equal(t, models.FieldTypeDate, schema.Fields[5].Type)
}

func TestCompressRowFormatsOnly(t *testing.T) {
	gz, err := compression.NewCompressor(compression.Gzip)
	require.NoError(t, err)

	p, err := (&CSVSerializer{}).Serialize(testutil.FlatRecords(20))
	require.NoError(t, err)
	cp, err := Compress(p, gz)
	require.NoError(t, err)
	assert.Equal(t, ".csv.gz", cp.Extension)
	assert.Equal(t, "gzip", cp.ContentEncoding)
	assert.Equal(t, ".csv", p.Extension)

	pq, err := (&ParquetSerializer{}).Serialize(testutil.FlatRecords(20))
	require.NoError(t, err)
	same, err := Compress(pq, gz)
	require.NoError(t, err)
	assert.Same(t, pq, same)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		key       string
		format    zone.Format
		algorithm compression.Algorithm
	}{
		{"dataway/sap/clients/clients_data_1.json", zone.FormatJSON, compression.None},
		{"processed/protheus/clients_bronze_1.csv.zst", zone.FormatCSV, compression.Zstd},
		{"analytics/cloud_x/clients_gold_1.parquet", zone.FormatParquet, compression.None},
		{"out/gold.avro", zone.FormatAvro, compression.None},
	}
	for _, tt := range tests {
		f, a, err := Detect(tt.key)
		require.NoError(t, err, tt.key)
		assert.Equal(t, tt.format, f, tt.key)
		assert.Equal(t, tt.algorithm, a, tt.key)
	}
	_, _, err := Detect("notes.txt")
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	ctx := context.Background()
	records := testutil.FlatRecords(7)
	for _, f := range allFormats {
		t.Run(string(f), func(t *testing.T) {
			s, err := ForFormat(f)
			require.NoError(t, err)
			p, err := s.Serialize(records)
			require.NoError(t, err)

			summary, err := Inspect(ctx, f, compression.None, p.Body)
			require.NoError(t, err)
			assert.Equal(t, 7, summary.Rows)
			assert.Len(t, summary.Fields, 6)
		})
	}
}
