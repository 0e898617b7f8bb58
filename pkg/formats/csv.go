package formats

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/ajitpratap0/medallion/pkg/errors"
	"github.com/ajitpratap0/medallion/pkg/models"
	"github.com/ajitpratap0/medallion/pkg/pool"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

// CSVSerializer writes a header row taken from the first record followed by
// one row per record. Records must be flat.
type CSVSerializer struct{}

func (s *CSVSerializer) Format() zone.Format { return zone.FormatCSV }

func (s *CSVSerializer) Serialize(records []*models.Record) (*Payload, error) {
	if _, err := InferSchema("csv", records); err != nil {
		return nil, err
	}
	if !records[0].IsFlat() {
		return nil, errors.New(errors.ErrorTypeSerialization, "csv requires flat records").
			WithDetail("shape", records[0].Shape())
	}

	buf := pool.Buffers.Get()
	defer pool.Buffers.Put(buf)
	w := csv.NewWriter(buf)
	if err := w.Write(records[0].Names()); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "write csv header")
	}
	row := make([]string, records[0].Len())
	for i, r := range records {
		for j, f := range r.Fields() {
			row[j] = csvValue(f.Value)
		}
		if err := w.Write(row); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "write csv row").
				WithDetail("index", i)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "flush csv")
	}
	return newPayload(zone.FormatCSV, bytes.Clone(buf.Bytes()), len(records)), nil
}

func csvValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case models.Date:
		return x.String()
	default:
		return ""
	}
}
