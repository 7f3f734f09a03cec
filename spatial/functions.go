package spatial

import (
	"github.com/gear6io/geosql/sqlgen"
)

// geometryResult is the declared return type of geometry-producing
// functions: a default geometry descriptor, so chained calls serialize
// through ST_AsEWKB when selected.
var geometryResult = MustGeometry()

// dumpResult is the composite row returned by the dump functions.
var dumpResult = sqlgen.Composite(map[string]sqlgen.ColumnType{
	"path": sqlgen.Plain("integer[]"),
	"geom": geometryResult,
})

func init() {
	register(geometryFunctions, geometryResult)
	register(plainFunctions, nil)
	register(compositeFunctions, dumpResult)
}

func register(names []string, returns sqlgen.ColumnType) {
	for _, name := range names {
		sqlgen.MustRegister(sqlgen.FuncDef{Name: name, Returns: returns})
	}
}

// geometryFunctions return a geometry and re-wrap on selection.
var geometryFunctions = []string{
	"ST_Buffer",
	"ST_Centroid",
	"ST_Collect",
	"ST_ConvexHull",
	"ST_Difference",
	"ST_EndPoint",
	"ST_Envelope",
	"ST_ExteriorRing",
	"ST_Force2D",
	"ST_GeomFromEWKB",
	"ST_GeomFromEWKT",
	"ST_GeomFromText",
	"ST_GeomFromWKB",
	"ST_Intersection",
	"ST_LineMerge",
	"ST_MakeValid",
	"ST_PointN",
	"ST_PointOnSurface",
	"ST_SetSRID",
	"ST_Simplify",
	"ST_Snap",
	"ST_StartPoint",
	"ST_SymDifference",
	"ST_Transform",
	"ST_Translate",
	"ST_Union",
}

// plainFunctions return scalars, text or bytes and never re-wrap.
var plainFunctions = []string{
	"ST_Area",
	"ST_AsBinary",
	"ST_AsEWKB",
	"ST_AsEWKT",
	"ST_AsGeoJSON",
	"ST_AsText",
	"ST_Contains",
	"ST_CoveredBy",
	"ST_Covers",
	"ST_Crosses",
	"ST_DWithin",
	"ST_Disjoint",
	"ST_Distance",
	"ST_DistanceSphere",
	"ST_Equals",
	"ST_GeometryType",
	"ST_Height",
	"ST_Intersects",
	"ST_IsClosed",
	"ST_IsEmpty",
	"ST_IsSimple",
	"ST_IsValid",
	"ST_Length",
	"ST_M",
	"ST_NPoints",
	"ST_NumBands",
	"ST_NumGeometries",
	"ST_Overlaps",
	"ST_Perimeter",
	"ST_SRID",
	"ST_ScaleX",
	"ST_ScaleY",
	"ST_Touches",
	"ST_Value",
	"ST_Width",
	"ST_Within",
	"ST_X",
	"ST_Y",
	"ST_Z",
}

// compositeFunctions return a (path, geom) row per element.
var compositeFunctions = []string{
	"ST_Dump",
	"ST_DumpPoints",
}
