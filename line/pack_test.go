package line

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khooz/polyline/errs"
	"github.com/khooz/polyline/format"
	"github.com/khooz/polyline/point"
)

func TestPolyline_Pack(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pl, err := New(point.Pairs(randomWalk(rng, 2000)))
	require.NoError(t, err)

	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			packed, err := pl.Pack(ct)
			require.NoError(t, err)
			require.NotEmpty(t, packed)

			unpacked, err := Unpack(packed, ct)
			require.NoError(t, err)
			require.Equal(t, pl.Encode(), unpacked.Encode())
			require.Equal(t, pl.Fingerprint(), unpacked.Fingerprint())
		})
	}
}

func TestPolyline_Pack_None(t *testing.T) {
	packed, err := samplePolyline(t).Pack(format.CompressionNone)
	require.NoError(t, err)
	require.Equal(t, sampleEncoded, string(packed))
}

func TestPolyline_Pack_Unsupported(t *testing.T) {
	_, err := samplePolyline(t).Pack(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)

	_, err = Unpack([]byte(sampleEncoded), format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestUnpack_Corrupted(t *testing.T) {
	_, err := Unpack([]byte{0xde, 0xad, 0xbe, 0xef}, format.CompressionZstd)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unpack polyline with Zstd")
}

func TestUnpack_MalformedPolyline(t *testing.T) {
	_, err := Unpack([]byte("_p~iF~ps"), format.CompressionNone)
	require.ErrorIs(t, err, errs.ErrLength)
}

func TestPolyline_Fingerprint(t *testing.T) {
	a := samplePolyline(t)

	decoded, err := Decode(sampleEncoded)
	require.NoError(t, err)
	require.Equal(t, a.Fingerprint(), decoded.Fingerprint())

	other, err := New(point.Pairs([][]float64{{38.5, -120.2}}))
	require.NoError(t, err)
	require.NotEqual(t, a.Fingerprint(), other.Fingerprint())
}
