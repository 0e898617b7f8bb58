// Package formats serializes generated record sets into object payloads.
//
// A Serializer turns a uniform, non-empty record set into one payload: the
// encoded bytes plus the content type and file extension that go with the
// format. JSON and Avro keep nested groups; CSV and Parquet serve the flat
// zones (Parquet also maps groups onto struct columns).
//
// Every serializer rejects an empty set and a set whose records do not share
// one schema, with a serialization error.
package formats

import (
	"github.com/ajitpratap0/medallion/pkg/compression"
	"github.com/ajitpratap0/medallion/pkg/errors"
	"github.com/ajitpratap0/medallion/pkg/models"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

// Payload is a serialized record set ready for upload
type Payload struct {
	Body        []byte
	ContentType string
	// Extension includes the leading dot and any compression suffix
	Extension string
	// ContentEncoding is set when the body is compressed
	ContentEncoding string
	Records         int
	Format          zone.Format
}

// Size returns the body length in bytes
func (p *Payload) Size() int { return len(p.Body) }

// Serializer encodes a record set in one format
type Serializer interface {
	Format() zone.Format
	Serialize(records []*models.Record) (*Payload, error)
}

// Info describes a supported format
type Info struct {
	Format      zone.Format
	Name        string
	Extension   string
	ContentType string
	// Row formats are compressed as a whole when compression is enabled
	Row bool
}

var infos = map[zone.Format]Info{
	zone.FormatJSON: {
		Format:      zone.FormatJSON,
		Name:        "JSON",
		Extension:   ".json",
		ContentType: "application/json",
		Row:         true,
	},
	zone.FormatCSV: {
		Format:      zone.FormatCSV,
		Name:        "CSV",
		Extension:   ".csv",
		ContentType: "text/csv",
		Row:         true,
	},
	zone.FormatParquet: {
		Format:      zone.FormatParquet,
		Name:        "Apache Parquet",
		Extension:   ".parquet",
		ContentType: "application/octet-stream",
	},
	zone.FormatAvro: {
		Format:      zone.FormatAvro,
		Name:        "Apache Avro",
		Extension:   ".avro",
		ContentType: "application/avro",
	},
}

// GetInfo returns information about a format
func GetInfo(f zone.Format) (Info, bool) {
	info, ok := infos[f]
	return info, ok
}

// ForFormat returns the serializer for f
func ForFormat(f zone.Format) (Serializer, error) {
	switch f {
	case zone.FormatJSON:
		return &JSONSerializer{}, nil
	case zone.FormatCSV:
		return &CSVSerializer{}, nil
	case zone.FormatParquet:
		return &ParquetSerializer{}, nil
	case zone.FormatAvro:
		return &AvroSerializer{}, nil
	default:
		return nil, errors.Newf(errors.ErrorTypeValidation, "unsupported format: %s", f)
	}
}

func newPayload(f zone.Format, body []byte, records int) *Payload {
	info := infos[f]
	return &Payload{
		Body:        body,
		ContentType: info.ContentType,
		Extension:   info.Extension,
		Records:     records,
		Format:      f,
	}
}

// Compress returns a copy of p compressed with c. Non-row formats and the
// none algorithm return p unchanged.
func Compress(p *Payload, c compression.Compressor) (*Payload, error) {
	if c == nil || c.Algorithm() == compression.None || !infos[p.Format].Row {
		return p, nil
	}
	body, err := c.Compress(p.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "compress payload").
			WithDetail("algorithm", string(c.Algorithm()))
	}
	out := *p
	out.Body = body
	out.Extension = p.Extension + c.Extension()
	out.ContentEncoding = c.ContentEncoding()
	return &out, nil
}
