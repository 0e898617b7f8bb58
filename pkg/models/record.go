// Package models provides the record and schema types shared by the
// generators, serializers and the run orchestrator.
//
// A Record is an ordered mapping: field order is the order in which fields
// were set, and that order is carried into JSON objects, CSV headers and
// columnar schemas. Values are limited to string, int, float64, bool, Date
// and nested *Record.
package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// Field is a single named value inside a Record
type Field struct {
	Name  string
	Value interface{}
}

// Record is an ordered set of fields
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord creates an empty record with room for capacity fields
func NewRecord(capacity int) *Record {
	return &Record{
		fields: make([]Field, 0, capacity),
		index:  make(map[string]int, capacity),
	}
}

// Set assigns value to name. New names are appended, existing names keep
// their position.
func (r *Record) Set(name string, value interface{}) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[name]; ok {
		r.fields[i].Value = value
		return
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: value})
}

// Get returns the value stored under name
func (r *Record) Get(name string) (interface{}, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Group returns the nested record stored under name
func (r *Record) Group(name string) (*Record, bool) {
	v, ok := r.Get(name)
	if !ok {
		return nil, false
	}
	g, ok := v.(*Record)
	return g, ok
}

// Fields returns the fields in insertion order. The slice must not be modified.
func (r *Record) Fields() []Field {
	return r.fields
}

// Names returns the field names in insertion order
func (r *Record) Names() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of top-level fields
func (r *Record) Len() int {
	return len(r.fields)
}

// IsFlat reports whether no field holds a nested record
func (r *Record) IsFlat() bool {
	for _, f := range r.fields {
		if _, ok := f.Value.(*Record); ok {
			return false
		}
	}
	return true
}

// Shape returns a canonical description of the record's field set,
// including nested groups, e.g. "id,endereco{cep,cidade},nome". Two records
// have the same field set iff their shapes are equal. Order is ignored.
func (r *Record) Shape() string {
	parts := make([]string, len(r.fields))
	for i, f := range r.fields {
		if g, ok := f.Value.(*Record); ok {
			parts[i] = f.Name + "{" + g.Shape() + "}"
			continue
		}
		parts[i] = f.Name
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

// ToMap converts the record into plain maps, recursively
func (r *Record) ToMap() map[string]interface{} {
	m := make(map[string]interface{}, len(r.fields))
	for _, f := range r.fields {
		if g, ok := f.Value.(*Record); ok {
			m[f.Name] = g.ToMap()
			continue
		}
		m[f.Name] = f.Value
	}
	return m
}

// MarshalJSON encodes the record as a compact JSON object keeping field
// order. HTML characters and non-ASCII text are written literally.
//
// goccy/go-json HTML-escapes whatever a Marshaler returns, so callers that
// need the literal text must use AppendJSON directly instead of passing the
// record to an encoder.
func (r *Record) MarshalJSON() ([]byte, error) {
	return r.AppendJSON(nil, "", "")
}

// AppendJSON appends the record as a JSON object to dst. With an empty
// indent the output is compact; otherwise every field goes on its own line
// prefixed by prefix plus one indent per nesting level, and keys are
// followed by ": ".
func (r *Record) AppendJSON(dst []byte, prefix, indent string) ([]byte, error) {
	if r == nil {
		return append(dst, "null"...), nil
	}
	if len(r.fields) == 0 {
		return append(dst, "{}"...), nil
	}
	pretty := indent != ""
	inner := prefix + indent
	dst = append(dst, '{')
	for i, f := range r.fields {
		if i > 0 {
			dst = append(dst, ',')
		}
		if pretty {
			dst = append(dst, '\n')
			dst = append(dst, inner...)
		}
		key, err := gojson.MarshalNoEscape(f.Name)
		if err != nil {
			return nil, err
		}
		dst = append(dst, key...)
		dst = append(dst, ':')
		if pretty {
			dst = append(dst, ' ')
		}
		if dst, err = appendJSONValue(dst, f.Value, inner, indent); err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
	}
	if pretty {
		dst = append(dst, '\n')
		dst = append(dst, prefix...)
	}
	return append(dst, '}'), nil
}

func appendJSONValue(dst []byte, v interface{}, prefix, indent string) ([]byte, error) {
	switch x := v.(type) {
	case *Record:
		return x.AppendJSON(dst, prefix, indent)
	case Date:
		return strconv.AppendQuote(dst, x.String()), nil
	}
	val, err := gojson.MarshalNoEscape(v)
	if err != nil {
		return nil, err
	}
	return append(dst, val...), nil
}
