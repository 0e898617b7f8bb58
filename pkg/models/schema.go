package models

import (
	"fmt"
	"strconv"
)

// FieldType is the logical type of a record field
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeInt    FieldType = "integer"
	FieldTypeFloat  FieldType = "float"
	FieldTypeBool   FieldType = "boolean"
	FieldTypeDate   FieldType = "date"
	FieldTypeRecord FieldType = "record"
)

// Schema describes the field set shared by every record of a run.
type Schema struct {
	// Name identifies the schema (the zone id for generated sets)
	Name string `json:"name"`

	// Fields in record order
	Fields []SchemaField `json:"fields"`
}

// SchemaField represents a single field in the schema.
// Nested groups carry their own Fields.
type SchemaField struct {
	Name   string        `json:"name"`
	Type   FieldType     `json:"type"`
	Fields []SchemaField `json:"fields,omitempty"`
}

// TypeOf maps a record value to its logical type
func TypeOf(v interface{}) (FieldType, error) {
	switch v.(type) {
	case string:
		return FieldTypeString, nil
	case int, int32, int64:
		return FieldTypeInt, nil
	case float32, float64:
		return FieldTypeFloat, nil
	case bool:
		return FieldTypeBool, nil
	case Date:
		return FieldTypeDate, nil
	case *Record:
		return FieldTypeRecord, nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

// SchemaOf derives the schema of a single record
func SchemaOf(name string, r *Record) (*Schema, error) {
	fields, err := schemaFields(r)
	if err != nil {
		return nil, err
	}
	return &Schema{Name: name, Fields: fields}, nil
}

func schemaFields(r *Record) ([]SchemaField, error) {
	fields := make([]SchemaField, 0, r.Len())
	for _, f := range r.Fields() {
		ft, err := TypeOf(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		sf := SchemaField{Name: f.Name, Type: ft}
		if ft == FieldTypeRecord {
			nested, err := schemaFields(f.Value.(*Record))
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Name, err)
			}
			sf.Fields = nested
		}
		fields = append(fields, sf)
	}
	return fields, nil
}

// Equal reports whether two schemas describe the same fields with the same
// types in the same order.
func (s *Schema) Equal(o *Schema) bool {
	return s.Diff(o) == nil
}

// Mismatch locates the first field where two schemas differ.
type Mismatch struct {
	// Path names the enclosing groups, dot separated; empty at top level
	Path string

	// Position is the field index within the group at Path
	Position int

	// Expected and Actual are "name:type", or "none" for a missing field
	Expected string
	Actual   string
}

func (m *Mismatch) String() string {
	where := strconv.Itoa(m.Position)
	if m.Path != "" {
		where = m.Path + "." + where
	}
	return fmt.Sprintf("field %s: expected %s, got %s", where, m.Expected, m.Actual)
}

// Diff returns the first positional difference between s and o, or nil
// when they are equal.
func (s *Schema) Diff(o *Schema) *Mismatch {
	return diffFields(s.Fields, o.Fields, "")
}

func diffFields(a, b []SchemaField, path string) *Mismatch {
	for i := 0; i < max(len(a), len(b)); i++ {
		if i >= len(a) || i >= len(b) || a[i].Name != b[i].Name || a[i].Type != b[i].Type {
			return &Mismatch{Path: path, Position: i, Expected: describeField(a, i), Actual: describeField(b, i)}
		}
		if a[i].Type != FieldTypeRecord {
			continue
		}
		nested := a[i].Name
		if path != "" {
			nested = path + "." + nested
		}
		if m := diffFields(a[i].Fields, b[i].Fields, nested); m != nil {
			return m
		}
	}
	return nil
}

func describeField(fields []SchemaField, i int) string {
	if i >= len(fields) {
		return "none"
	}
	return fields[i].Name + ":" + string(fields[i].Type)
}
