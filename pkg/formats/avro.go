package formats

import (
	"bytes"
	"fmt"

	"github.com/linkedin/goavro/v2"

	"github.com/ajitpratap0/medallion/pkg/errors"
	jsonpkg "github.com/ajitpratap0/medallion/pkg/json"
	"github.com/ajitpratap0/medallion/pkg/models"
	"github.com/ajitpratap0/medallion/pkg/pool"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

// avroRecordName names the top-level Avro record
const avroRecordName = "cliente"

// AvroSerializer writes the set as a Snappy-compressed Avro object
// container. Nested groups become nested Avro records named after their
// path.
type AvroSerializer struct{}

func (s *AvroSerializer) Format() zone.Format { return zone.FormatAvro }

func (s *AvroSerializer) Serialize(records []*models.Record) (*Payload, error) {
	schema, err := InferSchema("avro", records)
	if err != nil {
		return nil, err
	}
	schemaJSON, err := toAvroSchema(schema)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "convert schema")
	}
	codec, err := goavro.NewCodec(schemaJSON)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "create avro codec")
	}

	buf := pool.Buffers.Get()
	defer pool.Buffers.Put(buf)
	ocf, err := goavro.NewOCFWriter(goavro.OCFConfig{
		W:               buf,
		Codec:           codec,
		CompressionName: goavro.CompressionSnappyLabel,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "create avro writer")
	}

	batch := make([]interface{}, 0, len(records))
	for _, r := range records {
		batch = append(batch, toAvroNative(r))
	}
	if err := ocf.Append(batch); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "write avro records")
	}
	return newPayload(zone.FormatAvro, bytes.Clone(buf.Bytes()), len(records)), nil
}

// avroField is one entry of an Avro record schema
type avroField struct {
	Name string      `json:"name"`
	Type interface{} `json:"type"`
}

type avroRecord struct {
	Type   string      `json:"type"`
	Name   string      `json:"name"`
	Fields []avroField `json:"fields"`
}

type avroLogical struct {
	Type        string `json:"type"`
	LogicalType string `json:"logicalType"`
}

func toAvroSchema(schema *models.Schema) (string, error) {
	rec, err := toAvroRecord(avroRecordName, schema.Fields)
	if err != nil {
		return "", err
	}
	out, err := jsonpkg.Marshal(rec)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func toAvroRecord(name string, fields []models.SchemaField) (*avroRecord, error) {
	rec := &avroRecord{Type: "record", Name: name, Fields: make([]avroField, 0, len(fields))}
	for _, f := range fields {
		var t interface{}
		switch f.Type {
		case models.FieldTypeString:
			t = "string"
		case models.FieldTypeInt:
			t = "long"
		case models.FieldTypeFloat:
			t = "double"
		case models.FieldTypeBool:
			t = "boolean"
		case models.FieldTypeDate:
			t = avroLogical{Type: "int", LogicalType: "date"}
		case models.FieldTypeRecord:
			nested, err := toAvroRecord(name+"_"+f.Name, f.Fields)
			if err != nil {
				return nil, err
			}
			t = nested
		default:
			return nil, fmt.Errorf("field %s: unsupported type %s", f.Name, f.Type)
		}
		rec.Fields = append(rec.Fields, avroField{Name: f.Name, Type: t})
	}
	return rec, nil
}

func toAvroNative(r *models.Record) map[string]interface{} {
	native := make(map[string]interface{}, r.Len())
	for _, f := range r.Fields() {
		switch v := f.Value.(type) {
		case int:
			native[f.Name] = int64(v)
		case models.Date:
			native[f.Name] = v.Time()
		case *models.Record:
			native[f.Name] = toAvroNative(v)
		default:
			native[f.Name] = v
		}
	}
	return native
}

// ReadAvro counts the records of an Avro container and returns its schema
func ReadAvro(data []byte) (int, *models.Schema, error) {
	ocf, err := goavro.NewOCFReader(bytes.NewReader(data))
	if err != nil {
		return 0, nil, errors.Wrap(err, errors.ErrorTypeSerialization, "open avro container")
	}
	rows := 0
	for ocf.Scan() {
		if _, err := ocf.Read(); err != nil {
			return 0, nil, errors.Wrap(err, errors.ErrorTypeSerialization, "read avro record")
		}
		rows++
	}
	if err := ocf.Err(); err != nil {
		return 0, nil, errors.Wrap(err, errors.ErrorTypeSerialization, "scan avro container")
	}

	var rec rawAvroRecord
	if err := jsonpkg.Unmarshal([]byte(ocf.Codec().Schema()), &rec); err != nil {
		return 0, nil, errors.Wrap(err, errors.ErrorTypeSerialization, "parse avro schema")
	}
	return rows, &models.Schema{Name: rec.Name, Fields: fromAvroFields(rec.Fields)}, nil
}

type rawAvroRecord struct {
	Name   string         `json:"name"`
	Fields []rawAvroField `json:"fields"`
}

type rawAvroField struct {
	Name string      `json:"name"`
	Type interface{} `json:"type"`
}

func fromAvroFields(in []rawAvroField) []models.SchemaField {
	out := make([]models.SchemaField, 0, len(in))
	for _, f := range in {
		out = append(out, fromAvroType(f.Name, f.Type))
	}
	return out
}

func fromAvroType(name string, t interface{}) models.SchemaField {
	sf := models.SchemaField{Name: name, Type: models.FieldTypeString}
	switch v := t.(type) {
	case string:
		switch v {
		case "int", "long":
			sf.Type = models.FieldTypeInt
		case "float", "double":
			sf.Type = models.FieldTypeFloat
		case "boolean":
			sf.Type = models.FieldTypeBool
		}
	case map[string]interface{}:
		if v["logicalType"] == "date" {
			sf.Type = models.FieldTypeDate
			break
		}
		if v["type"] == "record" {
			sf.Type = models.FieldTypeRecord
			fields, _ := v["fields"].([]interface{})
			for _, raw := range fields {
				m, ok := raw.(map[string]interface{})
				if !ok {
					continue
				}
				childName, _ := m["name"].(string)
				sf.Fields = append(sf.Fields, fromAvroType(childName, m["type"]))
			}
		}
	}
	return sf
}
