package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	"github.com/ajitpratap0/medallion/pkg/errors"
)

// FileStore keeps the lake on local disk: every bucket is a directory
// under Root and every key a file below it.
type FileStore struct {
	root string

	mu      sync.Mutex
	buckets map[string]*blob.Bucket
}

// NewFileStore opens a store rooted at root, creating it if needed
func NewFileStore(root string) (*FileStore, error) {
	if root == "" {
		return nil, errors.New(errors.ErrorTypeConfig, "file storage root is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "resolve file storage root")
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeStorage, "create file storage root").
			WithDetail("root", abs)
	}
	return &FileStore{root: abs, buckets: make(map[string]*blob.Bucket)}, nil
}

func (s *FileStore) Backend() Backend { return BackendFile }

// Root returns the absolute lake directory
func (s *FileStore) Root() string { return s.root }

func (s *FileStore) CreateBucketIfAbsent(ctx context.Context, name string) (BucketStatus, error) {
	dir := filepath.Join(s.root, name)
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return 0, bucketError(os.ErrExist, name)
		}
		return BucketAlreadyExists, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, bucketError(err, name)
	}
	return BucketCreated, nil
}

// bucket opens the blob bucket for an existing directory
func (s *FileStore) bucket(name string) (*blob.Bucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.buckets[name]; ok {
		return b, nil
	}
	dir := filepath.Join(s.root, name)
	if _, err := os.Stat(dir); err != nil {
		return nil, ErrNotFound
	}
	b, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, err
	}
	s.buckets[name] = b
	return b, nil
}

func (s *FileStore) Put(ctx context.Context, bucket, key string, body []byte, contentType string, opts ...PutOption) error {
	o := applyPutOptions(opts)
	b, err := s.bucket(bucket)
	if err != nil {
		return putError(err, bucket, key)
	}
	err = b.WriteAll(ctx, key, body, &blob.WriterOptions{
		ContentType:     contentType,
		ContentEncoding: o.ContentEncoding,
		Metadata:        o.Metadata,
	})
	if err != nil {
		return putError(err, bucket, key)
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, bucket, key string) (*Object, error) {
	b, err := s.bucket(bucket)
	if err != nil {
		return nil, getError(err, bucket, key)
	}
	attrs, err := b.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, getError(ErrNotFound, bucket, key)
		}
		return nil, getError(err, bucket, key)
	}
	body, err := b.ReadAll(ctx, key)
	if err != nil {
		return nil, getError(err, bucket, key)
	}
	return &Object{
		Bucket:          bucket,
		Key:             key,
		Body:            body,
		ContentType:     attrs.ContentType,
		ContentEncoding: attrs.ContentEncoding,
		Metadata:        attrs.Metadata,
	}, nil
}

// Close releases every opened bucket
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var first error
	for name, b := range s.buckets {
		if err := b.Close(); err != nil && first == nil {
			first = err
		}
		delete(s.buckets, name)
	}
	return first
}
