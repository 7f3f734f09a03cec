package shape

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"

	"github.com/gear6io/geosql/pkg/errors"
	"github.com/gear6io/geosql/spatial"
)

// WKTElement is a geometry value held as (extended) well-known text plus
// an SRID. It binds as EWKT, so the column's from-text constructor
// function receives the SRID along with the shape.
type WKTElement struct {
	Data string
	SRID int
}

// NewWKT builds a WKT element. Pass spatial.UnknownSRID when the text
// already carries an SRID= prefix or none applies.
func NewWKT(data string, srid int) WKTElement {
	return WKTElement{Data: data, SRID: srid}
}

// EWKT returns the extended well-known text form, prefixing SRID=<n>;
// when an SRID is set.
func (e WKTElement) EWKT() string {
	if e.SRID == spatial.UnknownSRID {
		return e.Data
	}
	return fmt.Sprintf("SRID=%d;%s", e.SRID, e.Data)
}

// Value implements driver.Valuer.
func (e WKTElement) Value() (driver.Value, error) {
	return e.EWKT(), nil
}

func (e WKTElement) String() string { return e.EWKT() }

// WKBElement is a geometry value held as (extended) well-known binary.
// Result columns serialized through AsEWKB scan into it, and it binds
// back out as a hex-encoded EWKB string.
type WKBElement struct {
	Data []byte
	SRID int
}

// NewWKB builds a WKB element from raw EWKB/WKB bytes.
func NewWKB(data []byte, srid int) WKBElement {
	return WKBElement{Data: data, SRID: srid}
}

// Value implements driver.Valuer, yielding the hex form understood by the
// from-WKB constructor functions.
func (e WKBElement) Value() (driver.Value, error) {
	return hex.EncodeToString(e.Data), nil
}

// Scan implements sql.Scanner. Raw bytes are kept as-is; strings are
// treated as hex-encoded EWKB.
func (e *WKBElement) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		e.Data = nil
		return nil
	case []byte:
		data := make([]byte, len(v))
		copy(data, v)
		e.Data = data
		return nil
	case string:
		data, err := hex.DecodeString(v)
		if err != nil {
			return errors.Wrap(ErrInvalidHex, err, "malformed hex geometry value")
		}
		e.Data = data
		return nil
	default:
		return errors.Newf(ErrInvalidScan, "cannot scan %T into WKBElement", src)
	}
}

// RasterElement is a raster value. Rasters travel as raw bytes in both
// directions with no SQL wrapping.
type RasterElement []byte

// Value implements driver.Valuer.
func (e RasterElement) Value() (driver.Value, error) {
	return []byte(e), nil
}

// Scan implements sql.Scanner.
func (e *RasterElement) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*e = nil
		return nil
	case []byte:
		data := make([]byte, len(v))
		copy(data, v)
		*e = data
		return nil
	default:
		return errors.Newf(ErrInvalidScan, "cannot scan %T into RasterElement", src)
	}
}
