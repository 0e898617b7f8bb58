package formats

import (
	"bytes"
	"context"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/ajitpratap0/medallion/pkg/errors"
	"github.com/ajitpratap0/medallion/pkg/models"
	"github.com/ajitpratap0/medallion/pkg/pool"
	"github.com/ajitpratap0/medallion/pkg/zone"
)

// ParquetSerializer writes the set as a single Snappy-compressed Parquet
// file. Column types are inferred from the first record.
type ParquetSerializer struct{}

func (s *ParquetSerializer) Format() zone.Format { return zone.FormatParquet }

func (s *ParquetSerializer) Serialize(records []*models.Record) (*Payload, error) {
	schema, err := InferSchema("parquet", records)
	if err != nil {
		return nil, err
	}
	arrowSchema, err := toArrowSchema(schema)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "convert schema")
	}

	mem := memory.NewGoAllocator()
	rb := array.NewRecordBuilder(mem, arrowSchema)
	defer rb.Release()

	for i, r := range records {
		for j, f := range r.Fields() {
			if err := appendValue(rb.Field(j), f.Value); err != nil {
				return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "append value").
					WithDetail("index", i).
					WithDetail("field", f.Name)
			}
		}
	}
	rec := rb.NewRecord()
	defer rec.Release()

	props := parquet.NewWriterProperties(
		parquet.WithCompression(compress.Codecs.Snappy),
		parquet.WithDictionaryDefault(true),
	)
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithAllocator(mem))

	buf := pool.Buffers.Get()
	defer pool.Buffers.Put(buf)
	fw, err := pqarrow.NewFileWriter(arrowSchema, buf, props, arrowProps)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "create parquet writer")
	}
	if err := fw.Write(rec); err != nil {
		fw.Close()
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "write parquet row group")
	}
	if err := fw.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "close parquet writer")
	}
	return newPayload(zone.FormatParquet, bytes.Clone(buf.Bytes()), len(records)), nil
}

func toArrowSchema(schema *models.Schema) (*arrow.Schema, error) {
	fields, err := toArrowFields(schema.Fields)
	if err != nil {
		return nil, err
	}
	return arrow.NewSchema(fields, nil), nil
}

func toArrowFields(in []models.SchemaField) ([]arrow.Field, error) {
	fields := make([]arrow.Field, 0, len(in))
	for _, f := range in {
		dt, err := toArrowType(f)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		fields = append(fields, arrow.Field{Name: f.Name, Type: dt})
	}
	return fields, nil
}

func toArrowType(f models.SchemaField) (arrow.DataType, error) {
	switch f.Type {
	case models.FieldTypeString:
		return arrow.BinaryTypes.String, nil
	case models.FieldTypeInt:
		return arrow.PrimitiveTypes.Int64, nil
	case models.FieldTypeFloat:
		return arrow.PrimitiveTypes.Float64, nil
	case models.FieldTypeBool:
		return arrow.FixedWidthTypes.Boolean, nil
	case models.FieldTypeDate:
		return arrow.FixedWidthTypes.Date32, nil
	case models.FieldTypeRecord:
		children, err := toArrowFields(f.Fields)
		if err != nil {
			return nil, err
		}
		return arrow.StructOf(children...), nil
	default:
		return nil, fmt.Errorf("unsupported field type: %s", f.Type)
	}
}

func appendValue(builder array.Builder, value interface{}) error {
	switch b := builder.(type) {
	case *array.StringBuilder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		b.Append(v)

	case *array.Int64Builder:
		switch v := value.(type) {
		case int:
			b.Append(int64(v))
		case int32:
			b.Append(int64(v))
		case int64:
			b.Append(v)
		default:
			return fmt.Errorf("expected integer, got %T", value)
		}

	case *array.Float64Builder:
		switch v := value.(type) {
		case float32:
			b.Append(float64(v))
		case float64:
			b.Append(v)
		default:
			return fmt.Errorf("expected float, got %T", value)
		}

	case *array.BooleanBuilder:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		b.Append(v)

	case *array.Date32Builder:
		v, ok := value.(models.Date)
		if !ok {
			return fmt.Errorf("expected date, got %T", value)
		}
		b.Append(arrow.Date32(v.Days()))

	case *array.StructBuilder:
		rec, ok := value.(*models.Record)
		if !ok {
			return fmt.Errorf("expected record, got %T", value)
		}
		b.Append(true)
		for i, f := range rec.Fields() {
			if err := appendValue(b.FieldBuilder(i), f.Value); err != nil {
				return fmt.Errorf("%s: %w", f.Name, err)
			}
		}

	default:
		return fmt.Errorf("unsupported builder type: %T", builder)
	}
	return nil
}

// ReadParquet decodes a Parquet payload back into records, preserving
// column order.
func ReadParquet(ctx context.Context, data []byte) ([]*models.Record, *models.Schema, error) {
	pf, err := file.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrorTypeSerialization, "open parquet")
	}
	defer pf.Close()

	mem := memory.NewGoAllocator()
	fr, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrorTypeSerialization, "create arrow reader")
	}
	tbl, err := fr.ReadTable(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrorTypeSerialization, "read parquet table")
	}
	defer tbl.Release()

	schema := &models.Schema{Name: "parquet", Fields: fromArrowFields(tbl.Schema().Fields())}
	records := make([]*models.Record, 0, tbl.NumRows())

	tr := array.NewTableReader(tbl, 4096)
	defer tr.Release()
	for tr.Next() {
		batch := tr.Record()
		for row := 0; row < int(batch.NumRows()); row++ {
			r := models.NewRecord(int(batch.NumCols()))
			for col := 0; col < int(batch.NumCols()); col++ {
				r.Set(batch.ColumnName(col), columnValue(batch.Column(col), row))
			}
			records = append(records, r)
		}
	}
	if err := tr.Err(); err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrorTypeSerialization, "scan parquet table")
	}
	return records, schema, nil
}

func fromArrowFields(in []arrow.Field) []models.SchemaField {
	out := make([]models.SchemaField, 0, len(in))
	for _, f := range in {
		sf := models.SchemaField{Name: f.Name, Type: fromArrowType(f.Type)}
		if st, ok := f.Type.(*arrow.StructType); ok {
			sf.Fields = fromArrowFields(st.Fields())
		}
		out = append(out, sf)
	}
	return out
}

func fromArrowType(dt arrow.DataType) models.FieldType {
	switch dt.ID() {
	case arrow.BOOL:
		return models.FieldTypeBool
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return models.FieldTypeInt
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return models.FieldTypeFloat
	case arrow.DATE32, arrow.DATE64:
		return models.FieldTypeDate
	case arrow.STRUCT:
		return models.FieldTypeRecord
	default:
		return models.FieldTypeString
	}
}

func columnValue(col arrow.Array, row int) interface{} {
	if col.IsNull(row) {
		return nil
	}
	switch c := col.(type) {
	case *array.Boolean:
		return c.Value(row)
	case *array.Int64:
		return int(c.Value(row))
	case *array.Float64:
		return c.Value(row)
	case *array.String:
		return c.Value(row)
	case *array.Date32:
		return models.DateFromDays(int32(c.Value(row)))
	case *array.Struct:
		st := c.DataType().(*arrow.StructType)
		r := models.NewRecord(c.NumField())
		for i := 0; i < c.NumField(); i++ {
			r.Set(st.Field(i).Name, columnValue(c.Field(i), row))
		}
		return r
	default:
		return col.ValueStr(row)
	}
}
