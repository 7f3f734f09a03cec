package sqlgen

import (
	"fmt"
	"strings"
)

// SelectStmt builds a SELECT statement.
type SelectStmt struct {
	items []Expr
	rels  []Relation
	where []Expr
}

// Select starts a SELECT over the given items. An item is either an Expr
// or a Relation, which expands to all of its columns. Anything else is a
// programming error and panics.
func Select(items ...any) *SelectStmt {
	s := &SelectStmt{}
	for _, item := range items {
		switch v := item.(type) {
		case Relation:
			s.items = append(s.items, columnsAsExprs(v)...)
		case Expr:
			s.items = append(s.items, v)
		default:
			panic(fmt.Sprintf("sqlgen: cannot select %T", item))
		}
	}
	return s
}

func columnsAsExprs(rel Relation) []Expr {
	cols := rel.columns()
	exprs := make([]Expr, len(cols))
	for i, col := range cols {
		exprs[i] = col
	}
	return exprs
}

// From adds explicit FROM sources. Without it, sources are inferred from
// the selected items and WHERE conditions.
func (s *SelectStmt) From(rels ...Relation) *SelectStmt {
	s.rels = append(s.rels, rels...)
	return s
}

// Where adds conditions, joined with AND.
func (s *SelectStmt) Where(conds ...Expr) *SelectStmt {
	s.where = append(s.where, conds...)
	return s
}

// Alias turns the select into a named subquery usable as a FROM source.
// Column typing travels through the alias, so spatial columns re-selected
// from it still serialize at the outer level.
func (s *SelectStmt) Alias(name string) *Alias {
	a := &Alias{sel: s, name: name}
	for _, item := range s.items {
		switch v := item.(type) {
		case *Column:
			a.cols = append(a.cols, &Column{rel: a, name: v.name, typ: v.typ})
		case *FieldAccess:
			a.cols = append(a.cols, &Column{rel: a, name: v.field, typ: v.typ})
		}
	}
	return a
}

// Compile renders the statement and its bound parameters.
func (s *SelectStmt) Compile() (*Statement, error) {
	c := newCompiler()
	sql, err := s.compile(c, false)
	if err != nil {
		return nil, err
	}
	return newStatement(sql, c), nil
}

// compile renders the SELECT. In subquery position every item is labeled
// with its plain name and no result transforms apply; at the top level the
// transform of each spatial item wraps the projection exactly once.
func (s *SelectStmt) compile(c *compiler, subquery bool) (string, error) {
	if len(s.items) == 0 {
		return "", newEmptySelect()
	}

	parts := make([]string, 0, len(s.items))
	for _, item := range s.items {
		sql, err := compileSelectItem(c, item, subquery)
		if err != nil {
			return "", err
		}
		parts = append(parts, sql)
	}

	froms, err := s.fromClause(c)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(parts, ", "))
	if froms != "" {
		sb.WriteString(" FROM ")
		sb.WriteString(froms)
	}
	if len(s.where) > 0 {
		conds := make([]string, 0, len(s.where))
		for _, cond := range s.where {
			sql, err := cond.compileExpr(c)
			if err != nil {
				return "", err
			}
			conds = append(conds, sql)
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	return sb.String(), nil
}

func compileSelectItem(c *compiler, item Expr, subquery bool) (string, error) {
	switch v := item.(type) {
	case *Column:
		sql, err := v.compileExpr(c)
		if err != nil {
			return "", err
		}
		if subquery {
			return sql + " AS " + quoteIdent(v.name), nil
		}
		if typ := v.typ; typ != nil && typ.ResultWrap() != "" {
			return typ.ResultWrap() + "(" + sql + ") AS " + quoteIdent(v.name), nil
		}
		return sql, nil

	case *FuncCall:
		// The label is allocated before the arguments compile, so its
		// anonymous counter precedes any parameter counters inside.
		label := c.nextName(v.name)
		sql, err := v.compileExpr(c)
		if err != nil {
			return "", err
		}
		if !subquery {
			if typ := v.typ; typ != nil && typ.ResultWrap() != "" {
				sql = typ.ResultWrap() + "(" + sql + ")"
			}
		}
		return sql + " AS " + quoteIdent(label), nil

	case *FieldAccess:
		sql, err := v.compileExpr(c)
		if err != nil {
			return "", err
		}
		if !subquery {
			if typ := v.typ; typ != nil && typ.ResultWrap() != "" {
				sql = typ.ResultWrap() + "(" + sql + ")"
			}
		}
		return sql + " AS " + quoteIdent(v.field), nil

	default:
		return item.compileExpr(c)
	}
}

// fromClause renders explicit sources plus any relations referenced by the
// items and conditions, in first-seen order.
func (s *SelectStmt) fromClause(c *compiler) (string, error) {
	seen := make(map[Relation]struct{})
	var rels []Relation
	for _, rel := range s.rels {
		if _, ok := seen[rel]; !ok {
			seen[rel] = struct{}{}
			rels = append(rels, rel)
		}
	}
	for _, item := range s.items {
		collectRelations(item, seen, &rels)
	}
	for _, cond := range s.where {
		collectRelations(cond, seen, &rels)
	}

	parts := make([]string, 0, len(rels))
	for _, rel := range rels {
		sql, err := rel.compileFrom(c)
		if err != nil {
			return "", err
		}
		parts = append(parts, sql)
	}
	return strings.Join(parts, ", "), nil
}

// Alias is a named subquery. Its columns proxy the underlying select's
// columns, carrying their types.
type Alias struct {
	sel  *SelectStmt
	name string
	cols []*Column
}

// Name returns the alias name.
func (a *Alias) Name() string { return a.name }

// C returns the named proxied column.
func (a *Alias) C(name string) *Column {
	for _, col := range a.cols {
		if col.name == name {
			return col
		}
	}
	panic(fmt.Sprintf("sqlgen: alias %q has no column %q", a.name, name))
}

// Select starts a SELECT of all the alias's columns.
func (a *Alias) Select() *SelectStmt {
	return Select(Relation(a))
}

func (a *Alias) refName() string { return a.name }

func (a *Alias) compileFrom(c *compiler) (string, error) {
	inner, err := a.sel.compile(c, true)
	if err != nil {
		return "", err
	}
	return "(" + inner + ") AS " + quoteIdent(a.name), nil
}

func (a *Alias) columns() []*Column { return a.cols }
