package formats

import (
	"bytes"
	"context"
	"encoding/csv"
	"path"
	"sort"
	"strings"

	"github.com/ajitpratap0/medallion/pkg/compression"
	"github.com/ajitpratap0/medallion/pkg/errors"
	jsonpkg "github.com/ajitpratap0/medallion/pkg/json"
	"github.com/ajitpratap0/medallion/pkg/models"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

// Summary is what inspect reports about a payload
type Summary struct {
	Format      zone.Format           `json:"format"`
	Compression compression.Algorithm `json:"compression"`
	Rows        int                   `json:"rows"`
	Bytes       int                   `json:"bytes"`
	Fields      []models.SchemaField  `json:"fields"`
}

// Detect derives format and compression from an object key or file name
func Detect(key string) (zone.Format, compression.Algorithm, error) {
	name := strings.ToLower(path.Base(key))
	algorithm := compression.None
	for _, a := range compression.Algorithms {
		c, err := compression.NewCompressor(a)
		if err != nil || c.Extension() == "" {
			continue
		}
		if strings.HasSuffix(name, c.Extension()) {
			algorithm = a
			name = strings.TrimSuffix(name, c.Extension())
			break
		}
	}
	for f, info := range infos {
		if strings.HasSuffix(name, info.Extension) {
			return f, algorithm, nil
		}
	}
	return "", "", errors.Newf(errors.ErrorTypeValidation, "cannot detect format of %q", key)
}

// Inspect decodes a payload and reports row count and schema. Compressed
// payloads are decompressed first.
func Inspect(ctx context.Context, f zone.Format, algorithm compression.Algorithm, data []byte) (*Summary, error) {
	comp, err := compression.NewCompressor(algorithm)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, "inspect")
	}
	body, err := comp.Decompress(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "decompress payload").
			WithDetail("algorithm", string(algorithm))
	}

	s := &Summary{Format: f, Compression: algorithm, Bytes: len(data)}
	switch f {
	case zone.FormatJSON:
		s.Rows, s.Fields, err = inspectJSON(body)
	case zone.FormatCSV:
		s.Rows, s.Fields, err = inspectCSV(body)
	case zone.FormatParquet:
		var records []*models.Record
		var schema *models.Schema
		records, schema, err = ReadParquet(ctx, body)
		if err == nil {
			s.Rows, s.Fields = len(records), schema.Fields
		}
	case zone.FormatAvro:
		var schema *models.Schema
		s.Rows, schema, err = ReadAvro(body)
		if err == nil {
			s.Fields = schema.Fields
		}
	default:
		err = errors.Newf(errors.ErrorTypeValidation, "unsupported format: %s", f)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// DecodeJSON decodes a JSON array payload into generic maps, numbers kept
// as json.Number
func DecodeJSON(body []byte) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	if err := jsonpkg.DecodeNumbers(bytes.NewReader(body), &rows); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "decode json")
	}
	return rows, nil
}

func inspectJSON(body []byte) (int, []models.SchemaField, error) {
	rows, err := DecodeJSON(body)
	if err != nil {
		return 0, nil, err
	}
	if len(rows) == 0 {
		return 0, nil, nil
	}
	return len(rows), mapFields(rows[0]), nil
}

// mapFields describes a decoded object. Key order is not preserved by the
// decoder, so fields are sorted by name.
func mapFields(m map[string]interface{}) []models.SchemaField {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	out := make([]models.SchemaField, 0, len(names))
	for _, name := range names {
		sf := models.SchemaField{Name: name, Type: models.FieldTypeString}
		switch v := m[name].(type) {
		case jsonpkg.Number:
			sf.Type = models.FieldTypeFloat
			if _, err := v.Int64(); err == nil {
				sf.Type = models.FieldTypeInt
			}
		case bool:
			sf.Type = models.FieldTypeBool
		case map[string]interface{}:
			sf.Type = models.FieldTypeRecord
			sf.Fields = mapFields(v)
		}
		out = append(out, sf)
	}
	return out
}

func inspectCSV(body []byte) (int, []models.SchemaField, error) {
	rows, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		return 0, nil, errors.Wrap(err, errors.ErrorTypeSerialization, "decode csv")
	}
	if len(rows) == 0 {
		return 0, nil, nil
	}
	fields := make([]models.SchemaField, 0, len(rows[0]))
	for _, name := range rows[0] {
		fields = append(fields, models.SchemaField{Name: name, Type: models.FieldTypeString})
	}
	return len(rows) - 1, fields, nil
}
