// Package json is the project's JSON codec, backed by goccy/go-json with
// pooled buffers. Output never HTML-escapes and never ASCII-escapes, so
// accented pt-BR text is written as-is.
package json

import (
	"bytes"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/ajitpratap0/medallion/pkg/pool"
)

// Indent is the indentation of pretty output
const Indent = "  "

// GetBuffer gets an empty buffer from the shared pool
func GetBuffer() *bytes.Buffer {
	return pool.Buffers.Get()
}

// PutBuffer returns a buffer to the shared pool
func PutBuffer(buf *bytes.Buffer) {
	pool.Buffers.Put(buf)
}

// Marshal encodes v compactly without HTML escaping
func Marshal(v interface{}) ([]byte, error) {
	return gojson.MarshalNoEscape(v)
}

// Unmarshal decodes data into v
func Unmarshal(data []byte, v interface{}) error {
	return gojson.Unmarshal(data, v)
}

// NewPrettyEncoder returns an encoder writing 2-space indented,
// unescaped output to w
func NewPrettyEncoder(w io.Writer) *gojson.Encoder {
	enc := gojson.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	return enc
}

// MarshalPretty encodes v with NewPrettyEncoder into a fresh slice
func MarshalPretty(v interface{}) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)
	if err := NewPrettyEncoder(buf).Encode(v); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// DecodeNumbers decodes data into v keeping numbers as Number
func DecodeNumbers(r io.Reader, v interface{}) error {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	return dec.Decode(v)
}

// Number is a JSON number literal
type Number = gojson.Number
