package shape

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/gear6io/geosql/pkg/errors"
	"github.com/gear6io/geosql/spatial"
)

// DecodeEWKB parses EWKB bytes, falling back to plain WKB for values
// produced without an SRID.
func DecodeEWKB(data []byte) (geom.T, error) {
	g, err := ewkb.Unmarshal(data)
	if err == nil {
		return g, nil
	}
	g, wkbErr := wkb.Unmarshal(data)
	if wkbErr != nil {
		return nil, errors.Wrap(ErrDecodeFailed, err, "cannot decode geometry bytes")
	}
	return g, nil
}

// EncodeEWKB serializes a geometry as little-endian EWKB.
func EncodeEWKB(g geom.T) ([]byte, error) {
	data, err := ewkb.Marshal(g, ewkb.NDR)
	if err != nil {
		return nil, errors.Wrap(ErrEncodeFailed, err, "cannot encode geometry")
	}
	return data, nil
}

// Geometry decodes the element's bytes into a geometry value.
func (e WKBElement) Geometry() (geom.T, error) {
	return DecodeEWKB(e.Data)
}

// ToWKT renders a geometry as a WKT element carrying the geometry's SRID.
func ToWKT(g geom.T) (WKTElement, error) {
	text, err := wkt.Marshal(g)
	if err != nil {
		return WKTElement{}, errors.Wrap(ErrEncodeFailed, err, "cannot render geometry as WKT")
	}
	srid := g.SRID()
	if srid == 0 {
		srid = spatial.UnknownSRID
	}
	return NewWKT(text, srid), nil
}

// FromGeom encodes a geometry value into a WKB element.
func FromGeom(g geom.T) (WKBElement, error) {
	data, err := EncodeEWKB(g)
	if err != nil {
		return WKBElement{}, err
	}
	srid := g.SRID()
	if srid == 0 {
		srid = spatial.UnknownSRID
	}
	return NewWKB(data, srid), nil
}
