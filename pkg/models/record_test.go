package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordKeepsInsertionOrder(t *testing.T) {
	r := NewRecord(3)
	r.Set("zeta", 1)
	r.Set("alpha", "a")
	r.Set("mid", 2.5)
	r.Set("alpha", "b")

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Names())
	v, ok := r.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "b", v)
}

func markupRecord() *Record {
	addr := NewRecord(2)
	addr.Set("cidade", "São Paulo")
	addr.Set("pais", "Brasil")

	r := NewRecord(4)
	r.Set("nome", "João & Filhos <Ltda>")
	r.Set("endereco", addr)
	r.Set("salario", 1234.5)
	r.Set("nascimento", NewDate(time.Date(1990, 3, 7, 15, 4, 5, 0, time.UTC)))
	return r
}

func TestRecordMarshalJSON(t *testing.T) {
	b, err := markupRecord().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"nome":"João & Filhos <Ltda>","endereco":{"cidade":"São Paulo","pais":"Brasil"},"salario":1234.5,"nascimento":"1990-03-07"}`,
		string(b))
}

func TestRecordAppendJSON(t *testing.T) {
	tests := []struct {
		name   string
		record *Record
		prefix string
		indent string
		want   string
	}{
		{
			name:   "nil",
			record: nil,
			indent: "  ",
			want:   "null",
		},
		{
			name:   "empty",
			record: NewRecord(0),
			indent: "  ",
			want:   "{}",
		},
		{
			name:   "indented",
			record: markupRecord(),
			indent: "  ",
			want: `{
  "nome": "João & Filhos <Ltda>",
  "endereco": {
    "cidade": "São Paulo",
    "pais": "Brasil"
  },
  "salario": 1234.5,
  "nascimento": "1990-03-07"
}`,
		},
		{
			name: "prefixed",
			record: func() *Record {
				r := NewRecord(1)
				r.Set("ativo", true)
				return r
			}(),
			prefix: "  ",
			indent: "  ",
			want:   "{\n    \"ativo\": true\n  }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.record.AppendJSON([]byte("x"), tt.prefix, tt.indent)
			require.NoError(t, err)
			assert.Equal(t, "x"+tt.want, string(b))
		})
	}
}

func TestRecordShape(t *testing.T) {
	a := NewRecord(2)
	a.Set("b", 1)
	g := NewRecord(1)
	g.Set("x", "y")
	a.Set("g", g)

	b := NewRecord(2)
	b.Set("g", g)
	b.Set("b", 2)

	assert.Equal(t, a.Shape(), b.Shape())
	assert.Equal(t, "b,g{x}", a.Shape())
	assert.False(t, a.IsFlat())
}

func TestDateDays(t *testing.T) {
	d := NewDate(time.Date(1970, 1, 11, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, int32(10), d.Days())
	assert.Equal(t, d, DateFromDays(10))

	before := NewDate(time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, int32(-1), before.Days())
}

func TestDateJSON(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalJSON([]byte(`"2024-02-29"`)))
	assert.Equal(t, "2024-02-29", d.String())
	assert.Error(t, d.UnmarshalJSON([]byte(`2024`)))
}

func TestSchemaOf(t *testing.T) {
	g := NewRecord(1)
	g.Set("ok", true)
	r := NewRecord(3)
	r.Set("id", "x")
	r.Set("n", 3)
	r.Set("grp", g)

	s, err := SchemaOf("test", r)
	require.NoError(t, err)
	require.Len(t, s.Fields, 3)
	assert.Equal(t, FieldTypeString, s.Fields[0].Type)
	assert.Equal(t, FieldTypeInt, s.Fields[1].Type)
	assert.Equal(t, FieldTypeRecord, s.Fields[2].Type)
	assert.Equal(t, FieldTypeBool, s.Fields[2].Fields[0].Type)

	bad := NewRecord(1)
	bad.Set("x", []int{1})
	_, err = SchemaOf("bad", bad)
	assert.Error(t, err)
}

func TestSchemaDiff(t *testing.T) {
	schema := func(fields ...SchemaField) *Schema { return &Schema{Name: "s", Fields: fields} }
	str := func(name string) SchemaField { return SchemaField{Name: name, Type: FieldTypeString} }
	group := func(name string, fields ...SchemaField) SchemaField {
		return SchemaField{Name: name, Type: FieldTypeRecord, Fields: fields}
	}

	tests := []struct {
		name string
		a, b *Schema
		want *Mismatch
	}{
		{
			name: "equal",
			a:    schema(str("id"), group("g", str("x"))),
			b:    schema(str("id"), group("g", str("x"))),
		},
		{
			name: "same fields reordered",
			a:    schema(str("id"), str("nome")),
			b:    schema(str("nome"), str("id")),
			want: &Mismatch{Position: 0, Expected: "id:string", Actual: "nome:string"},
		},
		{
			name: "type changed",
			a:    schema(str("id"), str("idade")),
			b:    schema(str("id"), SchemaField{Name: "idade", Type: FieldTypeInt}),
			want: &Mismatch{Position: 1, Expected: "idade:string", Actual: "idade:integer"},
		},
		{
			name: "missing field",
			a:    schema(str("id"), str("nome")),
			b:    schema(str("id")),
			want: &Mismatch{Position: 1, Expected: "nome:string", Actual: "none"},
		},
		{
			name: "nested reordered",
			a:    schema(str("id"), group("endereco", group("geo", str("lat"), str("lon")))),
			b:    schema(str("id"), group("endereco", group("geo", str("lon"), str("lat")))),
			want: &Mismatch{Path: "endereco.geo", Position: 0, Expected: "lat:string", Actual: "lon:string"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Diff(tt.b))
			assert.Equal(t, tt.want == nil, tt.a.Equal(tt.b))
		})
	}
}

func TestMismatchString(t *testing.T) {
	m := &Mismatch{Path: "endereco", Position: 2, Expected: "cep:string", Actual: "none"}
	assert.Equal(t, "field endereco.2: expected cep:string, got none", m.String())
}
