package format

type (
	CoordOrder      uint8
	CompressionType uint8
)

const (
	OrderLatLng CoordOrder = 0x1 // OrderLatLng reads and writes pairs as [latitude, longitude].
	OrderLngLat CoordOrder = 0x2 // OrderLngLat reads and writes pairs as [longitude, latitude].

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Fixed-point precision bounds, in decimal places.
//
// DefaultPrecision is the precision of Google's Encoded Polyline Algorithm Format (1e-5 degrees).
// Some routing engines emit polylines with 6 decimals; anything up to MaxPrecision keeps the
// scaled deltas well inside the int64 range.
const (
	MinPrecision     = 0
	DefaultPrecision = 5
	MaxPrecision     = 9
)

func (o CoordOrder) String() string {
	switch o {
	case OrderLatLng:
		return "LatLng"
	case OrderLngLat:
		return "LngLat"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
