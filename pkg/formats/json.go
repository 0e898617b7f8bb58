package formats

import (
	"bytes"

	"github.com/ajitpratap0/medallion/pkg/errors"
	jsonpkg "github.com/ajitpratap0/medallion/pkg/json"
	"github.com/ajitpratap0/medallion/pkg/models"
	"github.com/ajitpratap0/medallion/pkg/pool"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

// JSONSerializer writes the set as one indented JSON array. Field order
// follows record order; non-ASCII text and HTML characters are written
// unescaped. Records are encoded field by field rather than through an
// encoder, which would escape their MarshalJSON output.
type JSONSerializer struct{}

func (s *JSONSerializer) Format() zone.Format { return zone.FormatJSON }

func (s *JSONSerializer) Serialize(records []*models.Record) (*Payload, error) {
	if _, err := InferSchema("json", records); err != nil {
		return nil, err
	}
	buf := pool.Buffers.Get()
	defer pool.Buffers.Put(buf)

	buf.WriteByte('[')
	for i, r := range records {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
		buf.WriteString(jsonpkg.Indent)
		b, err := r.AppendJSON(buf.AvailableBuffer(), jsonpkg.Indent, jsonpkg.Indent)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "encode json").
				WithDetail("index", i)
		}
		buf.Write(b)
	}
	buf.WriteString("\n]\n")
	body := bytes.Clone(buf.Bytes())
	return newPayload(zone.FormatJSON, body, len(records)), nil
}
