package generic

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolResetsOnPut(t *testing.T) {
	p := NewPool(func() *bytes.Buffer { return new(bytes.Buffer) }, func(b *bytes.Buffer) { b.Reset() })

	b := p.Get()
	b.WriteString("dirty")
	p.Put(b)
	assert.Zero(t, b.Len())

	n := With(p, func(b *bytes.Buffer) int {
		b.WriteString("abc")
		return b.Len()
	})
	assert.Equal(t, 3, n)
}

func TestPoolWithoutReset(t *testing.T) {
	calls := 0
	p := NewPool(func() int { calls++; return 7 }, nil)
	assert.Equal(t, 7, p.Get())
	assert.Equal(t, 1, calls)
	p.Put(7)
}
