package point

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khooz/polyline/encoding"
	"github.com/khooz/polyline/errs"
	"github.com/khooz/polyline/format"
)

func TestEncodeAttr(t *testing.T) {
	require.Equal(t, "`~oia@", EncodeAttr(-179.9832104))
	require.Equal(t, "?", EncodeAttr(0))
	require.Equal(t, "_p~iF", EncodeAttr(38.5))
	require.Equal(t, "~ps|U", EncodeAttr(-120.2))
}

func TestPoint_Encode(t *testing.T) {
	require.Equal(t, "_p~iF~ps|U", New(38.5, -120.2).Encode())
	require.Equal(t, "??", Point{}.Encode())
}

func TestPoint_AppendEncoded(t *testing.T) {
	p := New(38.5, -120.2)

	require.Equal(t, "_p~iF~ps|U", string(p.AppendEncoded(nil, format.OrderLatLng, format.DefaultPrecision)))
	require.Equal(t, "~ps|U_p~iF", string(p.AppendEncoded(nil, format.OrderLngLat, format.DefaultPrecision)))

	prefix := []byte("xx")
	require.Equal(t, "xx_p~iF~ps|U", string(p.AppendEncoded(prefix, format.OrderLatLng, format.DefaultPrecision)))
}

func TestDecode(t *testing.T) {
	t.Run("lat lng", func(t *testing.T) {
		p, n, err := Decode("_p~iF~ps|U", format.OrderLatLng)
		require.NoError(t, err)
		require.Equal(t, 10, n)
		require.True(t, p.Equal(New(38.5, -120.2)))
	})

	t.Run("lng lat", func(t *testing.T) {
		p, n, err := Decode("~ps|U_p~iF", format.OrderLngLat)
		require.NoError(t, err)
		require.Equal(t, 10, n)
		require.True(t, p.Equal(New(38.5, -120.2)))
	})

	t.Run("stops after one point", func(t *testing.T) {
		p, n, err := Decode("_p~iF~ps|U_ulLnnqC", format.OrderLatLng)
		require.NoError(t, err)
		require.Equal(t, 10, n)
		require.True(t, p.Equal(New(38.5, -120.2)))
	})

	t.Run("single coordinate", func(t *testing.T) {
		_, n, err := Decode("_p~iF", format.OrderLatLng)
		require.ErrorIs(t, err, errs.ErrLength)
		require.Contains(t, err.Error(), "got 1")
		require.Equal(t, 0, n)
	})

	t.Run("truncated coordinate", func(t *testing.T) {
		_, _, err := Decode("_p~iF~ps", format.OrderLatLng)
		require.ErrorIs(t, err, errs.ErrLength)
	})

	t.Run("empty", func(t *testing.T) {
		_, _, err := Decode("", format.OrderLatLng)
		require.ErrorIs(t, err, errs.ErrLength)
		require.Contains(t, err.Error(), "got 0")
	})

	t.Run("invalid character", func(t *testing.T) {
		_, _, err := Decode("_p~iF ps|U", format.OrderLatLng)
		require.ErrorIs(t, err, errs.ErrInvalidCharacter)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, _, err := Decode("_p~iF~ps|U", format.CoordOrder(9))
		require.ErrorIs(t, err, errs.ErrInvalidOrder)
	})
}

func TestRead_Sequence(t *testing.T) {
	r := encoding.NewReader("_p~iF~ps|U_ulLnnqC")

	first, err := Read(r, format.OrderLatLng, format.DefaultPrecision)
	require.NoError(t, err)
	require.True(t, first.Equal(New(38.5, -120.2)))

	delta, err := Read(r, format.OrderLatLng, format.DefaultPrecision)
	require.NoError(t, err)
	require.InDelta(t, 2.2, delta.Lat(), 1e-12)
	require.InDelta(t, -0.75, delta.Lng(), 1e-12)
	require.Equal(t, 0, r.Len())
}

func TestPoint_EncodeDecode_Precision(t *testing.T) {
	p := New(38.123456, -120.654321)
	encoded := p.AppendEncoded(nil, format.OrderLatLng, 6)

	got, err := Read(encoding.NewReader(string(encoded)), format.OrderLatLng, 6)
	require.NoError(t, err)
	require.True(t, got.ApproxEqual(p, 1e-9))
}
