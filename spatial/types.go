package spatial

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gear6io/geosql/pkg/errors"
)

// GeometryType is a WKT geometry type name used in typmod column definitions.
// Z/M/ZM suffixed variants (e.g. "POINTZ", "GEOMETRYZM") are accepted for
// columns of dimension 3 and 4.
type GeometryType string

const (
	// GeometryAny is the default typmod type accepting any geometry.
	GeometryAny GeometryType = "GEOMETRY"
	// GeometryNone disables the typmod clause entirely; the column is
	// declared as a bare "geometry" / "geography".
	GeometryNone GeometryType = ""

	Point              GeometryType = "POINT"
	LineString         GeometryType = "LINESTRING"
	Polygon            GeometryType = "POLYGON"
	MultiPoint         GeometryType = "MULTIPOINT"
	MultiLineString    GeometryType = "MULTILINESTRING"
	MultiPolygon       GeometryType = "MULTIPOLYGON"
	GeometryCollection GeometryType = "GEOMETRYCOLLECTION"
	Curve              GeometryType = "CURVE"
)

// UnknownSRID is the sentinel for an unspecified spatial reference system.
// It is rendered as-is once a geometry type is present in the typmod clause.
const UnknownSRID = -1

// config collects constructor arguments before validation.
type config struct {
	geometryType GeometryType
	typeSet      bool
	srid         int
	sridSet      bool
	dimension    int
	useTypmod    *bool
	managed      bool
	stPrefix     bool
	spatialIndex bool
}

// Option configures a spatial column descriptor.
type Option func(*config)

// WithGeometryType sets the typmod geometry type. Pass GeometryNone to
// declare the column without a typmod clause.
func WithGeometryType(t GeometryType) Option {
	return func(c *config) {
		c.geometryType = GeometryType(strings.ToUpper(string(t)))
		c.typeSet = true
	}
}

// WithSRID sets the spatial reference system identifier.
func WithSRID(srid int) Option {
	return func(c *config) {
		c.srid = srid
		c.sridSet = true
	}
}

// WithDimension sets the coordinate dimension (2, 3 or 4).
func WithDimension(d int) Option {
	return func(c *config) { c.dimension = d }
}

// WithTypmod controls whether a managed column is added through the typmod
// syntax or through AddGeometryColumn. Only meaningful together with
// WithManagement.
func WithTypmod(use bool) Option {
	return func(c *config) { c.useTypmod = &use }
}

// WithManagement marks the column as managed through the geometry_columns
// management functions.
func WithManagement() Option {
	return func(c *config) { c.managed = true }
}

// WithoutSTPrefix switches generated serialization and construction
// functions to their legacy unprefixed names (AsEWKB, GeomFromEWKT, ...).
func WithoutSTPrefix() Option {
	return func(c *config) { c.stPrefix = false }
}

// WithoutSpatialIndex suppresses GIST index creation in emitted DDL.
func WithoutSpatialIndex() Option {
	return func(c *config) { c.spatialIndex = false }
}

// descriptor is the validated, immutable configuration shared by Geometry
// and Geography columns.
type descriptor struct {
	geometryType GeometryType
	srid         int
	dimension    int
	useTypmod    *bool
	managed      bool
	stPrefix     bool
	spatialIndex bool
}

func newDescriptor(kind string, opts []Option) (descriptor, error) {
	cfg := config{
		geometryType: GeometryAny,
		srid:         UnknownSRID,
		dimension:    2,
		stPrefix:     true,
		spatialIndex: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.dimension < 2 || cfg.dimension > 4 {
		return descriptor{}, errors.Newf(ErrInvalidDimension,
			"%s dimension must be 2, 3 or 4, got %d", kind, cfg.dimension)
	}

	if cfg.geometryType == GeometryNone {
		if cfg.sridSet {
			warnLog.Warn().Int("srid", cfg.srid).
				Msg("srid is accepted but not enforced without a geometry type")
		}
		if cfg.useTypmod != nil {
			warnLog.Warn().Msg("use_typmod is ignored without a geometry type")
		}
		if cfg.managed {
			return descriptor{}, errors.Newf(ErrManagementRequiresType,
				"managed %s columns require a geometry type", kind)
		}
	} else {
		if err := checkDimension(cfg.geometryType, cfg.dimension); err != nil {
			return descriptor{}, err
		}
		if cfg.useTypmod != nil && !cfg.managed {
			warnLog.Warn().Msg("use_typmod is ignored without management")
		}
	}

	return descriptor{
		geometryType: cfg.geometryType,
		srid:         cfg.srid,
		dimension:    cfg.dimension,
		useTypmod:    cfg.useTypmod,
		managed:      cfg.managed,
		stPrefix:     cfg.stPrefix,
		spatialIndex: cfg.spatialIndex,
	}, nil
}

// checkDimension enforces the Z/M/ZM suffix rules: 4D types must carry the
// ZM suffix, 3D types exactly one of Z or M, 2D types none.
func checkDimension(t GeometryType, dimension int) error {
	name := string(t)
	zm := strings.HasSuffix(name, "ZM")
	z := !zm && strings.HasSuffix(name, "Z")
	m := !zm && strings.HasSuffix(name, "M")

	switch dimension {
	case 2:
		if zm || z || m {
			return errors.Newf(ErrDimensionMismatch,
				"geometry type %s requires a dimension greater than 2", name)
		}
	case 3:
		if zm {
			return errors.Newf(ErrDimensionMismatch,
				"geometry type %s requires dimension 4", name)
		}
		if !z && !m {
			return errors.Newf(ErrDimensionMismatch,
				"dimension 3 requires a Z or M suffixed geometry type, got %s", name)
		}
	case 4:
		if !zm {
			return errors.Newf(ErrDimensionMismatch,
				"dimension 4 requires a ZM suffixed geometry type, got %s", name)
		}
	}
	return nil
}

func (d descriptor) colSpec(kind string) string {
	if d.geometryType == GeometryNone {
		return kind
	}
	return fmt.Sprintf("%s(%s,%d)", kind, d.geometryType, d.srid)
}

// Accessors used by the DDL emitter.

func (d descriptor) GeometryTypeName() GeometryType { return d.geometryType }
func (d descriptor) SRID() int                      { return d.srid }
func (d descriptor) Dimension() int                 { return d.dimension }
func (d descriptor) Managed() bool                  { return d.managed }
func (d descriptor) SpatialIndex() bool             { return d.spatialIndex }
func (d descriptor) STPrefix() bool                 { return d.stPrefix }

// UseTypmod reports whether a managed column goes through the typmod
// syntax. Unset defaults to true.
func (d descriptor) UseTypmod() bool {
	if d.useTypmod == nil {
		return true
	}
	return *d.useTypmod
}

func (d descriptor) fn(name string) string {
	if d.stPrefix {
		return "ST_" + name
	}
	return name
}

// Geometry is the column descriptor for PostGIS geometry columns.
type Geometry struct {
	descriptor
}

// NewGeometry validates the options and builds an immutable geometry column
// descriptor.
func NewGeometry(opts ...Option) (*Geometry, error) {
	d, err := newDescriptor("geometry", opts)
	if err != nil {
		return nil, err
	}
	return &Geometry{descriptor: d}, nil
}

// MustGeometry is NewGeometry that panics on invalid options. Intended for
// schema definitions evaluated at program start.
func MustGeometry(opts ...Option) *Geometry {
	g, err := NewGeometry(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// ColSpec returns the literal DDL type string.
func (g *Geometry) ColSpec() string { return g.colSpec("geometry") }

// BindWrap names the SQL function wrapping bound values.
func (g *Geometry) BindWrap() string { return g.fn("GeomFromEWKT") }

// ResultWrap names the SQL function wrapping selected columns.
func (g *Geometry) ResultWrap() string { return g.fn("AsEWKB") }

// Geography is the column descriptor for PostGIS geography columns.
type Geography struct {
	descriptor
}

// NewGeography validates the options and builds an immutable geography
// column descriptor.
func NewGeography(opts ...Option) (*Geography, error) {
	d, err := newDescriptor("geography", opts)
	if err != nil {
		return nil, err
	}
	return &Geography{descriptor: d}, nil
}

// MustGeography is NewGeography that panics on invalid options.
func MustGeography(opts ...Option) *Geography {
	g, err := NewGeography(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Geography) ColSpec() string    { return g.colSpec("geography") }
func (g *Geography) BindWrap() string   { return g.fn("GeogFromText") }
func (g *Geography) ResultWrap() string { return g.fn("AsBinary") }

// Raster is the column descriptor for PostGIS raster columns. Raster values
// travel as raw bytes in both directions.
type Raster struct{}

// NewRaster builds a raster column descriptor.
func NewRaster() *Raster { return &Raster{} }

func (r *Raster) ColSpec() string    { return "raster" }
func (r *Raster) BindWrap() string   { return "" }
func (r *Raster) ResultWrap() string { return "" }

// ParseSRID parses an SRID arriving as text, e.g. from a schema file.
func ParseSRID(s string) (int, error) {
	srid, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Newf(ErrInvalidSRID, "srid must be an integer, got %q", s)
	}
	return srid, nil
}
