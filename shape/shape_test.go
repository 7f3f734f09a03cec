package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/gear6io/geosql/pkg/errors"
	"github.com/gear6io/geosql/spatial"
)

func TestWKTElementEWKT(t *testing.T) {
	e := NewWKT("POINT(1 2)", 4326)
	assert.Equal(t, "SRID=4326;POINT(1 2)", e.EWKT())

	v, err := e.Value()
	require.NoError(t, err)
	assert.Equal(t, "SRID=4326;POINT(1 2)", v)

	bare := NewWKT("POINT(1 2)", spatial.UnknownSRID)
	assert.Equal(t, "POINT(1 2)", bare.EWKT())
}

func TestWKBElementValueIsHex(t *testing.T) {
	e := NewWKB([]byte{0x01, 0xab}, spatial.UnknownSRID)
	v, err := e.Value()
	require.NoError(t, err)
	assert.Equal(t, "01ab", v)
}

func TestWKBElementScan(t *testing.T) {
	var e WKBElement
	require.NoError(t, e.Scan([]byte{0x01, 0x02}))
	assert.Equal(t, []byte{0x01, 0x02}, e.Data)

	require.NoError(t, e.Scan("01ab"))
	assert.Equal(t, []byte{0x01, 0xab}, e.Data)

	err := e.Scan("zz")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, ErrInvalidHex))

	err = e.Scan(42)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, ErrInvalidScan))
}

func TestRasterElementScan(t *testing.T) {
	var e RasterElement
	require.NoError(t, e.Scan([]byte{0x01, 0x02}))
	assert.Equal(t, RasterElement{0x01, 0x02}, e)

	v, err := e.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, v)

	err = e.Scan("nope")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, ErrInvalidScan))
}

func TestEWKBRoundTrip(t *testing.T) {
	point := geom.NewPointFlat(geom.XY, []float64{1, 2})
	point.SetSRID(4326)

	data, err := EncodeEWKB(point)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := DecodeEWKB(data)
	require.NoError(t, err)
	assert.Equal(t, 4326, decoded.SRID())
	assert.Equal(t, []float64{1, 2}, decoded.FlatCoords())
}

func TestDecodeEWKBRejectsGarbage(t *testing.T) {
	_, err := DecodeEWKB([]byte{0xde, 0xad})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, ErrDecodeFailed))
}

func TestToWKT(t *testing.T) {
	point := geom.NewPointFlat(geom.XY, []float64{1, 2})
	point.SetSRID(4326)

	e, err := ToWKT(point)
	require.NoError(t, err)
	assert.Equal(t, 4326, e.SRID)
	assert.Equal(t, "POINT (1 2)", e.Data)
}

func TestFromGeom(t *testing.T) {
	point := geom.NewPointFlat(geom.XY, []float64{1, 2})
	point.SetSRID(4326)

	e, err := FromGeom(point)
	require.NoError(t, err)
	assert.Equal(t, 4326, e.SRID)

	decoded, err := e.Geometry()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, decoded.FlatCoords())
}

func TestFromGeoJSON(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"point", `{"type":"Point","coordinates":[1,2]}`, "POINT(1 2)"},
		{"point with fraction", `{"type":"Point","coordinates":[1.5,-2.25]}`, "POINT(1.5 -2.25)"},
		{"multipoint", `{"type":"MultiPoint","coordinates":[[1,2],[3,4]]}`, "MULTIPOINT(1 2, 3 4)"},
		{"linestring", `{"type":"LineString","coordinates":[[0,0],[1,1]]}`, "LINESTRING(0 0, 1 1)"},
		{"multilinestring", `{"type":"MultiLineString","coordinates":[[[0,0],[1,1]],[[2,2],[3,3]]]}`,
			"MULTILINESTRING((0 0, 1 1), (2 2, 3 3))"},
		{"polygon", `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}`,
			"POLYGON((0 0, 1 0, 1 1, 0 0))"},
		{"multipolygon", `{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,0]]]]}`,
			"MULTIPOLYGON(((0 0, 1 0, 1 1, 0 0)))"},
		{"feature", `{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"properties":{}}`,
			"POINT(1 2)"},
		{"collection", `{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[1,2]}]}`,
			"GEOMETRYCOLLECTION(POINT(1 2))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := FromGeoJSON(tt.doc, 4326)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Data)
			assert.Equal(t, 4326, e.SRID)
		})
	}
}

func TestFromGeoJSONRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "not json"},
		{"no type", `{"coordinates":[1,2]}`},
		{"unsupported type", `{"type":"Circle","coordinates":[1,2]}`},
		{"short position", `{"type":"Point","coordinates":[1]}`},
		{"empty linestring", `{"type":"LineString","coordinates":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromGeoJSON(tt.doc, 4326)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, ErrInvalidGeoJSON))
		})
	}
}
