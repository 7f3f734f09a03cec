package sqlgen

import (
	"strings"

	"github.com/gear6io/geosql/pkg/errors"
)

// InsertStmt builds an INSERT statement.
type InsertStmt struct {
	table *Table
	cols  []string
	vals  []any
}

// Insert starts an INSERT into the given table.
func Insert(t *Table) *InsertStmt {
	return &InsertStmt{table: t}
}

// Value binds a column value. Literal values become a parameter named
// after the column, wrapped by the column type's bind transform; an Expr
// is spliced in as-is.
func (i *InsertStmt) Value(col string, v any) *InsertStmt {
	i.cols = append(i.cols, col)
	i.vals = append(i.vals, v)
	return i
}

// Compile renders the statement and its bound parameters.
func (i *InsertStmt) Compile() (*Statement, error) {
	if len(i.cols) == 0 {
		return nil, errors.New(ErrNoValues, "insert needs at least one value")
	}

	c := newCompiler()
	names := make([]string, 0, len(i.cols))
	rendered := make([]string, 0, len(i.cols))

	for idx, name := range i.cols {
		col, ok := i.table.byName[name]
		if !ok {
			return nil, errors.Newf(ErrUnknownColumn,
				"table %q has no column %q", i.table.name, name)
		}
		names = append(names, quoteIdent(name))

		sql, err := compileAssignedValue(c, col, i.vals[idx])
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, sql)
	}

	sql := "INSERT INTO " + quoteIdent(i.table.name) +
		" (" + strings.Join(names, ", ") + ") VALUES (" +
		strings.Join(rendered, ", ") + ")"
	return newStatement(sql, c), nil
}

// compileAssignedValue renders a value assigned to a column in INSERT and
// UPDATE statements. The parameter takes the bare column name.
func compileAssignedValue(c *compiler, col *Column, v any) (string, error) {
	if expr, ok := v.(Expr); ok {
		return expr.compileExpr(c)
	}
	c.addParam(col.name, v)
	sql := ":" + col.name
	if typ := col.typ; typ != nil && typ.BindWrap() != "" {
		sql = typ.BindWrap() + "(" + sql + ")"
	}
	return sql, nil
}
