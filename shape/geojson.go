package shape

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/gear6io/geosql/pkg/errors"
)

// FromGeoJSON parses a GeoJSON geometry or feature document into a WKT
// element with the given SRID.
func FromGeoJSON(doc string, srid int) (WKTElement, error) {
	if !gjson.Valid(doc) {
		return WKTElement{}, errors.New(ErrInvalidGeoJSON, "document is not valid JSON")
	}
	root := gjson.Parse(doc)
	wkt, err := geoJSONToWKT(root)
	if err != nil {
		return WKTElement{}, err
	}
	return NewWKT(wkt, srid), nil
}

func geoJSONToWKT(node gjson.Result) (string, error) {
	typ := node.Get("type").String()
	coords := node.Get("coordinates")

	switch typ {
	case "Feature":
		return geoJSONToWKT(node.Get("geometry"))
	case "Point":
		pos, err := position(coords)
		if err != nil {
			return "", err
		}
		return "POINT(" + pos + ")", nil
	case "MultiPoint":
		line, err := positionList(coords)
		if err != nil {
			return "", err
		}
		return "MULTIPOINT(" + line + ")", nil
	case "LineString":
		line, err := positionList(coords)
		if err != nil {
			return "", err
		}
		return "LINESTRING(" + line + ")", nil
	case "MultiLineString":
		rings, err := ringList(coords)
		if err != nil {
			return "", err
		}
		return "MULTILINESTRING(" + rings + ")", nil
	case "Polygon":
		rings, err := ringList(coords)
		if err != nil {
			return "", err
		}
		return "POLYGON(" + rings + ")", nil
	case "MultiPolygon":
		var polys []string
		for _, polyNode := range coords.Array() {
			rings, err := ringList(polyNode)
			if err != nil {
				return "", err
			}
			polys = append(polys, "("+rings+")")
		}
		if len(polys) == 0 {
			return "", errors.New(ErrInvalidGeoJSON, "MultiPolygon has no polygons")
		}
		return "MULTIPOLYGON(" + strings.Join(polys, ", ") + ")", nil
	case "GeometryCollection":
		var members []string
		for _, geomNode := range node.Get("geometries").Array() {
			wkt, err := geoJSONToWKT(geomNode)
			if err != nil {
				return "", err
			}
			members = append(members, wkt)
		}
		if len(members) == 0 {
			return "", errors.New(ErrInvalidGeoJSON, "GeometryCollection has no geometries")
		}
		return "GEOMETRYCOLLECTION(" + strings.Join(members, ", ") + ")", nil
	case "":
		return "", errors.New(ErrInvalidGeoJSON, "document has no geometry type")
	default:
		return "", errors.Newf(ErrInvalidGeoJSON, "unsupported geometry type %q", typ)
	}
}

// position renders one coordinate pair/triple as space-separated ordinates.
func position(node gjson.Result) (string, error) {
	ordinates := node.Array()
	if len(ordinates) < 2 {
		return "", errors.New(ErrInvalidGeoJSON, "position needs at least two ordinates")
	}
	parts := make([]string, len(ordinates))
	for i, ordinate := range ordinates {
		parts[i] = strconv.FormatFloat(ordinate.Float(), 'f', -1, 64)
	}
	return strings.Join(parts, " "), nil
}

func positionList(node gjson.Result) (string, error) {
	positions := node.Array()
	if len(positions) == 0 {
		return "", errors.New(ErrInvalidGeoJSON, "empty coordinate list")
	}
	parts := make([]string, len(positions))
	for i, posNode := range positions {
		pos, err := position(posNode)
		if err != nil {
			return "", err
		}
		parts[i] = pos
	}
	return strings.Join(parts, ", "), nil
}

func ringList(node gjson.Result) (string, error) {
	rings := node.Array()
	if len(rings) == 0 {
		return "", errors.New(ErrInvalidGeoJSON, "empty ring list")
	}
	parts := make([]string, len(rings))
	for i, ringNode := range rings {
		line, err := positionList(ringNode)
		if err != nil {
			return "", err
		}
		parts[i] = "(" + line + ")"
	}
	return strings.Join(parts, ", "), nil
}
