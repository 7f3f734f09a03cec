package sqlgen

import (
	"strings"

	"github.com/gear6io/geosql/pkg/errors"
)

// UpdateStmt builds an UPDATE statement.
type UpdateStmt struct {
	table *Table
	cols  []string
	vals  []any
	where []Expr
}

// Update starts an UPDATE of the given table.
func Update(t *Table) *UpdateStmt {
	return &UpdateStmt{table: t}
}

// Set binds a column assignment, with the same value handling as
// InsertStmt.Value.
func (u *UpdateStmt) Set(col string, v any) *UpdateStmt {
	u.cols = append(u.cols, col)
	u.vals = append(u.vals, v)
	return u
}

// Where adds conditions, joined with AND.
func (u *UpdateStmt) Where(conds ...Expr) *UpdateStmt {
	u.where = append(u.where, conds...)
	return u
}

// Compile renders the statement and its bound parameters.
func (u *UpdateStmt) Compile() (*Statement, error) {
	if len(u.cols) == 0 {
		return nil, errors.New(ErrNoValues, "update needs at least one assignment")
	}

	c := newCompiler()
	sets := make([]string, 0, len(u.cols))

	for idx, name := range u.cols {
		col, ok := u.table.byName[name]
		if !ok {
			return nil, errors.Newf(ErrUnknownColumn,
				"table %q has no column %q", u.table.name, name)
		}
		sql, err := compileAssignedValue(c, col, u.vals[idx])
		if err != nil {
			return nil, err
		}
		sets = append(sets, quoteIdent(name)+" = "+sql)
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(quoteIdent(u.table.name))
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(sets, ", "))

	if len(u.where) > 0 {
		conds := make([]string, 0, len(u.where))
		for _, cond := range u.where {
			sql, err := cond.compileExpr(c)
			if err != nil {
				return nil, err
			}
			conds = append(conds, sql)
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	return newStatement(sb.String(), c), nil
}
