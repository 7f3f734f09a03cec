// Package ddl renders schema statements for tables carrying spatial
// columns: typmod column definitions, AddGeometryColumn management calls
// and GIST index creation.
package ddl

import (
	"fmt"
	"strings"

	"github.com/gear6io/geosql/pkg/errors"
	"github.com/gear6io/geosql/spatial"
	"github.com/gear6io/geosql/sqlgen"
)

// DDL emission error codes
var (
	ErrMissingType = errors.MustNewCode("ddl.missing_type")
)

// geometryColumn is the descriptor surface the emitter needs beyond the
// plain ColumnType contract. Geometry and geography descriptors satisfy
// it; other types render through ColSpec alone.
type geometryColumn interface {
	GeometryTypeName() spatial.GeometryType
	SRID() int
	Dimension() int
	Managed() bool
	UseTypmod() bool
	SpatialIndex() bool
}

// CreateTable renders the statements bringing a table into existence:
// CREATE TABLE, one AddGeometryColumn call per managed non-typmod
// geometry column, and one GIST index per indexed spatial column.
func CreateTable(t *sqlgen.Table) ([]*sqlgen.Statement, error) {
	var specs []string
	var managed []*sqlgen.Column
	var indexed []*sqlgen.Column

	for _, col := range t.Columns() {
		typ := col.Type()
		if typ == nil {
			return nil, errors.Newf(ErrMissingType,
				"column %q of table %q has no type", col.Name(), t.Name())
		}

		if g, ok := typ.(geometryColumn); ok {
			if g.SpatialIndex() {
				indexed = append(indexed, col)
			}
			if g.Managed() && !g.UseTypmod() {
				managed = append(managed, col)
				continue
			}
		}
		specs = append(specs, sqlgen.QuoteIdent(col.Name())+" "+typ.ColSpec())
	}

	stmts := []*sqlgen.Statement{
		sqlgen.Raw("CREATE TABLE " + sqlgen.QuoteIdent(t.Name()) +
			" (" + strings.Join(specs, ", ") + ")"),
	}

	for _, col := range managed {
		g := col.Type().(geometryColumn)
		stmts = append(stmts, sqlgen.Raw(fmt.Sprintf(
			"SELECT AddGeometryColumn('%s', '%s', %d, '%s', %d)",
			t.Name(), col.Name(), g.SRID(), g.GeometryTypeName(), g.Dimension())))
	}

	for _, col := range indexed {
		stmts = append(stmts, sqlgen.Raw(fmt.Sprintf(
			"CREATE INDEX %s ON %s USING GIST (%s)",
			sqlgen.QuoteIdent(indexName(t.Name(), col.Name())),
			sqlgen.QuoteIdent(t.Name()),
			sqlgen.QuoteIdent(col.Name()))))
	}
	return stmts, nil
}

// DropTable renders the statements tearing a table down, unregistering
// managed geometry columns first.
func DropTable(t *sqlgen.Table) ([]*sqlgen.Statement, error) {
	var stmts []*sqlgen.Statement
	for _, col := range t.Columns() {
		if g, ok := col.Type().(geometryColumn); ok && g.Managed() {
			stmts = append(stmts, sqlgen.Raw(fmt.Sprintf(
				"SELECT DropGeometryColumn('%s', '%s')",
				t.Name(), col.Name())))
		}
	}
	stmts = append(stmts, sqlgen.Raw("DROP TABLE "+sqlgen.QuoteIdent(t.Name())))
	return stmts, nil
}

func indexName(table, column string) string {
	return "idx_" + table + "_" + column
}
