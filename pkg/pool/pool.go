// Package pool provides typed object pooling for the serializers.
//
// Serializing a record set builds one large payload in memory; pooling the
// scratch buffers keeps repeated runs from re-growing them every time.
//
// Example usage:
//
//	buf := pool.Buffers.Get()
//	defer pool.Buffers.Put(buf)
//
//	rows := pool.New(
//	    func() []string { return make([]string, 0, 32) },
//	    func(s []string) {},
//	)
package pool

import (
	"bytes"
	"sync"
	"sync/atomic"
)

// Pool is a typed wrapper around sync.Pool with usage statistics. It is
// safe for concurrent use.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T)
	keep  func(T) bool
	stats struct {
		allocated int64
		inUse     int64
		gets      int64
	}
}

// New creates a pool. reset, if not nil, runs on every object returned
// with Put.
func New[T any](new func() T, reset func(T)) *Pool[T] {
	p := &Pool[T]{reset: reset}
	p.pool.New = func() interface{} {
		atomic.AddInt64(&p.stats.allocated, 1)
		return new()
	}
	return p
}

// WithLimit drops objects for which keep returns false instead of pooling
// them
func (p *Pool[T]) WithLimit(keep func(T) bool) *Pool[T] {
	p.keep = keep
	return p
}

// Get retrieves an object, allocating one when the pool is empty
func (p *Pool[T]) Get() T {
	atomic.AddInt64(&p.stats.inUse, 1)
	atomic.AddInt64(&p.stats.gets, 1)
	return p.pool.Get().(T)
}

// Put returns an object to the pool
func (p *Pool[T]) Put(obj T) {
	atomic.AddInt64(&p.stats.inUse, -1)
	if p.keep != nil && !p.keep(obj) {
		return
	}
	if p.reset != nil {
		p.reset(obj)
	}
	p.pool.Put(obj)
}

// Stats returns how many objects were allocated, how many are checked out
// and how many Get calls were served from the pool
func (p *Pool[T]) Stats() (allocated, inUse, reused int64) {
	allocated = atomic.LoadInt64(&p.stats.allocated)
	gets := atomic.LoadInt64(&p.stats.gets)
	return allocated, atomic.LoadInt64(&p.stats.inUse), gets - allocated
}

// MaxBufferSize is the largest buffer Buffers keeps
const MaxBufferSize = 16 * 1024 * 1024

// Buffers pools payload buffers. Buffers that grew past MaxBufferSize are
// dropped on Put.
var Buffers = New(
	func() *bytes.Buffer { return bytes.NewBuffer(make([]byte, 0, 64*1024)) },
	func(b *bytes.Buffer) { b.Reset() },
).WithLimit(func(b *bytes.Buffer) bool { return b.Cap() <= MaxBufferSize })
