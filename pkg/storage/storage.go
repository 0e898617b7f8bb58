// Package storage puts serialized payloads into the lake's object store
// and provisions its buckets.
//
// Four backends share one contract: S3 (AWS or any S3-compatible endpoint
// such as MinIO), Google Cloud Storage, a local directory tree through
// gocloud's fileblob driver and an in-memory store for tests. Writes are
// synchronous and at-most-once; a failed Put is reported, never retried.
package storage

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/ajitpratap0/medallion/pkg/errors"
)

// Backend selects a store implementation
type Backend string

const (
	BackendS3     Backend = "s3"
	BackendGCS    Backend = "gcs"
	BackendFile   Backend = "file"
	BackendMemory Backend = "memory"
)

// ParseBackend converts a configuration value
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendS3, BackendGCS, BackendFile, BackendMemory:
		return b, nil
	case "minio":
		return BackendS3, nil
	default:
		return "", fmt.Errorf("unsupported storage backend %q", s)
	}
}

// BucketStatus is the outcome of provisioning one bucket
type BucketStatus int

const (
	BucketCreated BucketStatus = iota
	BucketAlreadyExists
)

func (s BucketStatus) String() string {
	switch s {
	case BucketCreated:
		return "created"
	case BucketAlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}

// Metadata keys attached to every uploaded object
const (
	MetaRecords     = "records"
	MetaZone        = "zone"
	MetaFormat      = "format"
	MetaGeneratedAt = "generated-at"
)

// ErrNotFound is wrapped by Get when the object or bucket is missing
var ErrNotFound = stderrors.New("object not found")

// Object is a stored payload and its attributes
type Object struct {
	Bucket          string
	Key             string
	Body            []byte
	ContentType     string
	ContentEncoding string
	Metadata        map[string]string
}

// PutOptions are the optional attributes of a Put
type PutOptions struct {
	ContentEncoding string
	Metadata        map[string]string
}

// PutOption customizes a Put
type PutOption func(*PutOptions)

// WithMetadata attaches user metadata to the object
func WithMetadata(m map[string]string) PutOption {
	return func(o *PutOptions) { o.Metadata = m }
}

// WithContentEncoding sets the Content-Encoding of the object
func WithContentEncoding(enc string) PutOption {
	return func(o *PutOptions) { o.ContentEncoding = enc }
}

func applyPutOptions(opts []PutOption) PutOptions {
	var o PutOptions
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Sink writes one object
type Sink interface {
	Put(ctx context.Context, bucket, key string, body []byte, contentType string, opts ...PutOption) error
}

// BucketProvisioner creates buckets idempotently. An existing bucket is
// reported as BucketAlreadyExists, never as an error.
type BucketProvisioner interface {
	CreateBucketIfAbsent(ctx context.Context, name string) (BucketStatus, error)
}

// Getter reads one object back
type Getter interface {
	Get(ctx context.Context, bucket, key string) (*Object, error)
}

// Store is a full backend
type Store interface {
	Sink
	BucketProvisioner
	Getter
	Backend() Backend
	Close() error
}

// Config selects and configures a backend
type Config struct {
	Backend Backend

	// S3
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool

	// GCS
	GCSProject         string
	GCSCredentialsFile string
	GCSEndpoint        string

	// File
	Root string
}

// New opens the backend selected by cfg
func New(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendS3:
		return NewS3Store(ctx, cfg)
	case BackendGCS:
		return NewGCSStore(ctx, cfg)
	case BackendFile:
		return NewFileStore(cfg.Root)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errors.Newf(errors.ErrorTypeConfig, "unsupported storage backend %q", cfg.Backend)
	}
}

func putError(err error, bucket, key string) *errors.Error {
	return errors.Wrap(err, errors.ErrorTypeStorage, "put object").
		WithDetail("bucket", bucket).
		WithDetail("key", key)
}

func getError(err error, bucket, key string) *errors.Error {
	return errors.Wrap(err, errors.ErrorTypeStorage, "get object").
		WithDetail("bucket", bucket).
		WithDetail("key", key)
}

func bucketError(err error, bucket string) *errors.Error {
	return errors.Wrap(err, errors.ErrorTypeStorage, "create bucket").
		WithDetail("bucket", bucket)
}
