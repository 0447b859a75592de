package encoding

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khooz/polyline/errs"
	"github.com/khooz/polyline/format"
)

func TestReader_Next(t *testing.T) {
	r := NewReader("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	expected := []int64{3850000, -12020000, 220000, -75000, 255200, -550300}

	decoded := make([]int64, 0, len(expected))
	for r.Len() > 0 {
		v, err := r.Next()
		require.NoError(t, err)
		decoded = append(decoded, v)
	}

	require.Equal(t, expected, decoded)
	require.Equal(t, 27, r.Pos())
	require.Empty(t, r.Remaining())
}

func TestReader_NextCoord(t *testing.T) {
	r := NewReader("`~oia@")

	v, err := r.NextCoord(format.DefaultPrecision)
	require.NoError(t, err)
	require.InDelta(t, -179.98321, v, 1e-9)
	require.Equal(t, 0, r.Len())
}

func TestReader_RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 16, -16, 17998321, -17998321, math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64}

	var buf []byte
	for _, v := range values {
		buf = AppendValue(buf, v)
	}

	r := NewReader(string(buf))
	for _, want := range values {
		got, err := r.Next()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.Equal(t, 0, r.Len())
}

func TestReader_Errors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := NewReader("").Next()
		require.ErrorIs(t, err, errs.ErrLength)
	})

	t.Run("truncated value", func(t *testing.T) {
		r := NewReader("_p~i")
		_, err := r.Next()
		require.ErrorIs(t, err, errs.ErrLength)
		require.Equal(t, 0, r.Pos())
	})

	t.Run("truncated second value keeps first", func(t *testing.T) {
		r := NewReader("_p~iF~ps")
		_, err := r.Next()
		require.NoError(t, err)

		_, err = r.Next()
		require.ErrorIs(t, err, errs.ErrLength)
		require.Contains(t, err.Error(), "offset 5")
		require.Equal(t, 5, r.Pos())
	})

	t.Run("character below range", func(t *testing.T) {
		_, err := NewReader("_p iF").Next()
		require.ErrorIs(t, err, errs.ErrInvalidCharacter)
	})

	t.Run("character above range", func(t *testing.T) {
		_, err := NewReader("\x7f").Next()
		require.ErrorIs(t, err, errs.ErrInvalidCharacter)
	})

	t.Run("overflow past 13 chunks", func(t *testing.T) {
		_, err := NewReader(strings.Repeat("~", 13) + "?").Next()
		require.ErrorIs(t, err, errs.ErrOverflow)
	})

	t.Run("overflow in last chunk", func(t *testing.T) {
		_, err := NewReader(strings.Repeat("~", 12) + "O").Next()
		require.ErrorIs(t, err, errs.ErrOverflow)
	})
}

func TestReader_Reset(t *testing.T) {
	r := NewReader("?")
	_, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, 0, r.Len())

	r.Reset("A@")
	require.Equal(t, 2, r.Len())

	v, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	v, err = r.Next()
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)
}
