package pool

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(256)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 256, bb.Cap())
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte("_p~iF"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	bb.B = append(bb.B, "~ps|U"...)
	require.Equal(t, "_p~iF~ps|U", bb.String())
	require.Equal(t, []byte("_p~iF~ps|U"), bb.Bytes())

	capBefore := bb.Cap()
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap(), "reset keeps capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.Grow(50)
		require.Equal(t, 100, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(10)
		bb.B = append(bb.B, "0123456789"...)
		bb.Grow(1)
		require.Equal(t, 10+EncodeBufferDefaultSize, bb.Cap())
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * EncodeBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		require.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("grows at least by required bytes", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(3 * EncodeBufferDefaultSize)
		require.GreaterOrEqual(t, bb.Cap(), 3*EncodeBufferDefaultSize)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(4)
		bb.B = append(bb.B, "abcd"...)
		bb.Grow(100)
		require.Equal(t, "abcd", bb.String())
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.B = append(bb.B, "??"...)

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
	require.Equal(t, "??", out.String())

	_, err = bb.WriteTo(failingWriter{})
	require.Error(t, err)
}

func TestByteBufferPool(t *testing.T) {
	t.Run("get returns empty buffer", func(t *testing.T) {
		p := NewByteBufferPool(64, 0)
		bb := p.Get()
		require.NotNil(t, bb)
		require.Equal(t, 0, bb.Len())
		require.Equal(t, 64, bb.Cap())
	})

	t.Run("put resets buffer", func(t *testing.T) {
		p := NewByteBufferPool(64, 0)
		bb := p.Get()
		bb.B = append(bb.B, "data"...)
		p.Put(bb)
		require.Equal(t, 0, bb.Len())
	})

	t.Run("put nil is ignored", func(t *testing.T) {
		p := NewByteBufferPool(64, 0)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("oversized buffer is not reset", func(t *testing.T) {
		p := NewByteBufferPool(16, 32)
		bb := p.Get()
		bb.Grow(1024)
		bb.B = append(bb.B, "kept"...)
		p.Put(bb)
		require.Equal(t, "kept", bb.String(), "discarded buffers are left untouched")
	})
}

func TestEncodeBufferPool_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range 100 {
				bb := GetEncodeBuffer()
				bb.B = append(bb.B, byte('?'+id))
				assert.Equal(t, 1, bb.Len())
				PutEncodeBuffer(bb)
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkEncodeBuffer_GetPut(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		bb := GetEncodeBuffer()
		bb.B = append(bb.B, "_p~iF~ps|U_ulLnnqC_mqNvxq`@"...)
		PutEncodeBuffer(bb)
	}
}
