package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolStats(t *testing.T) {
	p := New(
		func() []string { return make([]string, 0, 4) },
		nil,
	)
	s := p.Get()
	assert.Equal(t, 0, len(s))
	p.Put(s)

	allocated, inUse, _ := p.Stats()
	assert.Equal(t, int64(1), allocated)
	assert.Equal(t, int64(0), inUse)
}

func TestBuffersAreReset(t *testing.T) {
	b := Buffers.Get()
	b.WriteString("medallion")
	Buffers.Put(b)

	b = Buffers.Get()
	defer Buffers.Put(b)
	assert.Equal(t, 0, b.Len())
}

func TestWithLimitDropsLargeObjects(t *testing.T) {
	var resets int
	p := New(
		func() *bytes.Buffer { return new(bytes.Buffer) },
		func(b *bytes.Buffer) { resets++; b.Reset() },
	).WithLimit(func(b *bytes.Buffer) bool { return b.Len() < 8 })

	small := p.Get()
	small.WriteString("abc")
	p.Put(small)

	big := p.Get()
	big.WriteString("0123456789")
	p.Put(big)

	assert.Equal(t, 1, resets)
	_, inUse, _ := p.Stats()
	assert.Equal(t, int64(0), inUse)
}
