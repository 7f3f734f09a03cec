package shape

import (
	"github.com/gear6io/geosql/pkg/errors"
)

// Element and codec error codes
var (
	ErrDecodeFailed   = errors.MustNewCode("shape.decode_failed")
	ErrEncodeFailed   = errors.MustNewCode("shape.encode_failed")
	ErrInvalidHex     = errors.MustNewCode("shape.invalid_hex")
	ErrInvalidGeoJSON = errors.MustNewCode("shape.invalid_geojson")
	ErrInvalidScan    = errors.MustNewCode("shape.invalid_scan")
)
