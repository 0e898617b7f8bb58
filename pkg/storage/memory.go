package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/ajitpratap0/medallion/pkg/errors"
)

// MemoryStore keeps objects in process memory. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string]map[string]*Object
	puts    int
}

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string]map[string]*Object)}
}

func (s *MemoryStore) Backend() Backend { return BackendMemory }

func (s *MemoryStore) CreateBucketIfAbsent(_ context.Context, name string) (BucketStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buckets[name]; ok {
		return BucketAlreadyExists, nil
	}
	s.buckets[name] = make(map[string]*Object)
	return BucketCreated, nil
}

func (s *MemoryStore) Put(ctx context.Context, bucket, key string, body []byte, contentType string, opts ...PutOption) error {
	if err := ctx.Err(); err != nil {
		return putError(err, bucket, key)
	}
	o := applyPutOptions(opts)

	s.mu.Lock()
	defer s.mu.Unlock()
	objects, ok := s.buckets[bucket]
	if !ok {
		return errors.New(errors.ErrorTypeStorage, "no such bucket").
			WithDetail("bucket", bucket).
			WithDetail("key", key)
	}
	meta := make(map[string]string, len(o.Metadata))
	for k, v := range o.Metadata {
		meta[k] = v
	}
	objects[key] = &Object{
		Bucket:          bucket,
		Key:             key,
		Body:            append([]byte(nil), body...),
		ContentType:     contentType,
		ContentEncoding: o.ContentEncoding,
		Metadata:        meta,
	}
	s.puts++
	return nil
}

func (s *MemoryStore) Get(_ context.Context, bucket, key string) (*Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.buckets[bucket][key]
	if !ok {
		return nil, getError(ErrNotFound, bucket, key)
	}
	out := *obj
	return &out, nil
}

// Keys lists the keys of bucket in lexical order
func (s *MemoryStore) Keys(bucket string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.buckets[bucket]))
	for k := range s.buckets[bucket] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Buckets lists the provisioned buckets in lexical order
func (s *MemoryStore) Buckets() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.buckets))
	for name := range s.buckets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Puts returns the number of successful Put calls
func (s *MemoryStore) Puts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.puts
}

func (s *MemoryStore) Close() error { return nil }
