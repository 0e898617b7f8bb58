// Package compression wraps the payload codecs medallion can apply to row
// formats (JSON and CSV) before upload.
//
// Each algorithm knows the key suffix and the Content-Encoding value that
// go with it, so callers only pick an Algorithm from configuration:
//
//	comp, err := compression.NewCompressor(compression.Zstd)
//	body, err := comp.Compress(payload)
//	key += comp.Extension()
//
// Parquet and Avro carry their own internal compression and are never
// wrapped.
package compression

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm represents a compression algorithm.
type Algorithm string

const (
	// None leaves payloads untouched
	None Algorithm = "none"
	// Gzip represents gzip compression
	Gzip Algorithm = "gzip"
	// Snappy represents framed snappy compression
	Snappy Algorithm = "snappy"
	// LZ4 represents lz4 frame compression
	LZ4 Algorithm = "lz4"
	// Zstd represents zstandard compression
	Zstd Algorithm = "zstd"
)

// Algorithms lists every supported algorithm
var Algorithms = []Algorithm{None, Gzip, Snappy, LZ4, Zstd}

// Parse converts a configuration value. The empty string means None.
func Parse(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	if a == "" {
		return None, nil
	}
	for _, known := range Algorithms {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("unsupported compression algorithm: %s", s)
}

// Compressor compresses whole payloads. Implementations are safe for
// concurrent use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Algorithm() Algorithm
	// Extension is appended to object keys, e.g. ".gz"
	Extension() string
	// ContentEncoding is the HTTP Content-Encoding value, empty for none
	ContentEncoding() string
}

// NewCompressor returns the compressor for algorithm
func NewCompressor(algorithm Algorithm) (Compressor, error) {
	switch algorithm {
	case None, "":
		return noneCompressor{}, nil
	case Gzip:
		return &streamCompressor{
			algorithm: Gzip,
			ext:       ".gz",
			encoding:  "gzip",
			writer: func(w io.Writer) (io.WriteCloser, error) {
				return gzip.NewWriterLevel(w, gzip.DefaultCompression)
			},
			reader: func(r io.Reader) (io.Reader, error) { return gzip.NewReader(r) },
		}, nil
	case Snappy:
		return &streamCompressor{
			algorithm: Snappy,
			ext:       ".snappy",
			encoding:  "x-snappy-framed",
			writer: func(w io.Writer) (io.WriteCloser, error) {
				return snappy.NewBufferedWriter(w), nil
			},
			reader: func(r io.Reader) (io.Reader, error) { return snappy.NewReader(r), nil },
		}, nil
	case LZ4:
		return &streamCompressor{
			algorithm: LZ4,
			ext:       ".lz4",
			encoding:  "x-lz4",
			writer: func(w io.Writer) (io.WriteCloser, error) {
				zw := lz4.NewWriter(w)
				if err := zw.Apply(lz4.CompressionLevelOption(lz4.Level5)); err != nil {
					return nil, err
				}
				return zw, nil
			},
			reader: func(r io.Reader) (io.Reader, error) { return lz4.NewReader(r), nil },
		}, nil
	case Zstd:
		return newZstdCompressor()
	default:
		return nil, fmt.Errorf("unsupported compression algorithm: %s", algorithm)
	}
}

type noneCompressor struct{}

func (noneCompressor) Compress(data []byte) ([]byte, error)   { return data, nil }
func (noneCompressor) Decompress(data []byte) ([]byte, error) { return data, nil }
func (noneCompressor) Algorithm() Algorithm                   { return None }
func (noneCompressor) Extension() string                      { return "" }
func (noneCompressor) ContentEncoding() string                { return "" }

// streamCompressor adapts a streaming codec to whole-payload calls
type streamCompressor struct {
	algorithm Algorithm
	ext       string
	encoding  string
	writer    func(io.Writer) (io.WriteCloser, error)
	reader    func(io.Reader) (io.Reader, error)
}

func (sc *streamCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := sc.writer(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (sc *streamCompressor) Decompress(data []byte) ([]byte, error) {
	r, err := sc.reader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

func (sc *streamCompressor) Algorithm() Algorithm    { return sc.algorithm }
func (sc *streamCompressor) Extension() string       { return sc.ext }
func (sc *streamCompressor) ContentEncoding() string { return sc.encoding }

// zstdCompressor pools encoders and decoders
type zstdCompressor struct {
	encoderPool sync.Pool
	decoderPool sync.Pool
}

func newZstdCompressor() (*zstdCompressor, error) {
	zc := &zstdCompressor{}
	zc.encoderPool.New = func() interface{} {
		enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		return enc
	}
	zc.decoderPool.New = func() interface{} {
		dec, _ := zstd.NewReader(nil)
		return dec
	}
	return zc, nil
}

func (zc *zstdCompressor) Compress(data []byte) ([]byte, error) {
	enc := zc.encoderPool.Get().(*zstd.Encoder)
	defer zc.encoderPool.Put(enc)
	return enc.EncodeAll(data, nil), nil
}

func (zc *zstdCompressor) Decompress(data []byte) ([]byte, error) {
	dec := zc.decoderPool.Get().(*zstd.Decoder)
	defer zc.decoderPool.Put(dec)
	return dec.DecodeAll(data, nil)
}

func (zc *zstdCompressor) Algorithm() Algorithm    { return Zstd }
func (zc *zstdCompressor) Extension() string       { return ".zst" }
func (zc *zstdCompressor) ContentEncoding() string { return "zstd" }
