package cli

import (
	"os"
	"strings"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/gear6io/geosql/spatial"
	"github.com/gear6io/geosql/sqlgen"
)

// Schema is the declarative YAML description of a spatial database schema.
type Schema struct {
	Tables []TableSpec `yaml:"tables"`
}

// TableSpec describes one table.
type TableSpec struct {
	Name    string       `yaml:"name"`
	Columns []ColumnSpec `yaml:"columns"`
}

// ColumnSpec describes one column. Type is "geometry", "geography",
// "raster" or any plain SQL type spec. SRID is textual so schema files
// surface non-integer values as descriptor validation failures.
type ColumnSpec struct {
	Name         string `yaml:"name"`
	Type         string `yaml:"type"`
	GeometryType string `yaml:"geometry_type"`
	SRID         string `yaml:"srid"`
	Dimension    int    `yaml:"dimension"`
	Management   bool   `yaml:"management"`
	UseTypmod    *bool  `yaml:"use_typmod"`
	STPrefix     *bool  `yaml:"st_prefix"`
	SpatialIndex *bool  `yaml:"spatial_index"`
}

// LoadSchema reads and parses a schema file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read schema file")
	}
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, errors.Wrap(err, "parse schema file")
	}
	return &schema, nil
}

// BuildTables turns the schema into table descriptions.
func (s *Schema) BuildTables() ([]*sqlgen.Table, error) {
	tables := make([]*sqlgen.Table, 0, len(s.Tables))
	for _, spec := range s.Tables {
		table, err := buildTable(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "table %q", spec.Name)
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func buildTable(spec TableSpec) (*sqlgen.Table, error) {
	defs := make([]sqlgen.ColumnDef, 0, len(spec.Columns))
	for _, col := range spec.Columns {
		typ, err := buildColumnType(col)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q", col.Name)
		}
		defs = append(defs, sqlgen.Col(col.Name, typ))
	}
	return sqlgen.NewTable(spec.Name, defs...), nil
}

func buildColumnType(col ColumnSpec) (sqlgen.ColumnType, error) {
	switch strings.ToLower(col.Type) {
	case "geometry":
		opts, err := spatialOptions(col)
		if err != nil {
			return nil, err
		}
		return spatial.NewGeometry(opts...)
	case "geography":
		opts, err := spatialOptions(col)
		if err != nil {
			return nil, err
		}
		return spatial.NewGeography(opts...)
	case "raster":
		return spatial.NewRaster(), nil
	case "":
		return nil, errors.New("missing column type")
	default:
		return sqlgen.Plain(col.Type), nil
	}
}

func spatialOptions(col ColumnSpec) ([]spatial.Option, error) {
	var opts []spatial.Option

	switch typ := strings.ToUpper(strings.TrimSpace(col.GeometryType)); typ {
	case "":
	case "NONE":
		opts = append(opts, spatial.WithGeometryType(spatial.GeometryNone))
	default:
		opts = append(opts, spatial.WithGeometryType(spatial.GeometryType(typ)))
	}

	if col.SRID != "" {
		srid, err := spatial.ParseSRID(col.SRID)
		if err != nil {
			return nil, err
		}
		opts = append(opts, spatial.WithSRID(srid))
	}
	if col.Dimension != 0 {
		opts = append(opts, spatial.WithDimension(col.Dimension))
	}
	if col.Management {
		opts = append(opts, spatial.WithManagement())
	}
	if col.UseTypmod != nil {
		opts = append(opts, spatial.WithTypmod(*col.UseTypmod))
	}
	if col.STPrefix != nil && !*col.STPrefix {
		opts = append(opts, spatial.WithoutSTPrefix())
	}
	if col.SpatialIndex != nil && !*col.SpatialIndex {
		opts = append(opts, spatial.WithoutSpatialIndex())
	}
	return opts, nil
}
