package sqlgen

import (
	"strings"

	"github.com/gear6io/geosql/pkg/errors"
)

// Expr is a compilable SQL expression.
type Expr interface {
	// Type returns the expression's column type, nil for plain values.
	Type() ColumnType

	compileExpr(c *compiler) (string, error)
}

// Relation is a named source of columns: a table or a subquery alias.
// Implementations live in this package; callers obtain them from NewTable
// and SelectStmt.Alias.
type Relation interface {
	refName() string
	compileFrom(c *compiler) (string, error)
	columns() []*Column
}

// Column is a reference to a typed column of a relation.
type Column struct {
	rel  Relation
	name string
	typ  ColumnType
}

// Name returns the column name.
func (col *Column) Name() string { return col.name }

// Type returns the column's declared type.
func (col *Column) Type() ColumnType { return col.typ }

func (col *Column) compileExpr(c *compiler) (string, error) {
	return quoteIdent(col.rel.refName()) + "." + quoteIdent(col.name), nil
}

// Eq builds an equality comparison. A non-Expr right side becomes a bound
// parameter, wrapped by the column type's bind transform.
func (col *Column) Eq(right any) *Comparison { return col.Op("=", right) }

// Ne builds an inequality comparison.
func (col *Column) Ne(right any) *Comparison { return col.Op("!=", right) }

// Op builds a comparison with an arbitrary operator.
func (col *Column) Op(op string, right any) *Comparison {
	return &Comparison{left: col, op: op, right: right}
}

// Call dispatches a spatial function with the column as first argument.
// The function name is resolved in the registry; unregistered names fail
// with ErrUnknownFunction.
func (col *Column) Call(name string, args ...any) (*FuncCall, error) {
	return Call(name, prependArg(col, args)...)
}

// CallAs is Call with an explicit return type overriding the registered
// one, e.g. to serialize a chained result through legacy function names.
func (col *Column) CallAs(name string, typ ColumnType, args ...any) (*FuncCall, error) {
	return CallAs(name, typ, prependArg(col, args)...)
}

func prependArg(col *Column, args []any) []any {
	out := make([]any, 0, len(args)+1)
	out = append(out, col)
	return append(out, args...)
}

// FuncCall is a SQL function call expression.
type FuncCall struct {
	name string
	args []any
	typ  ColumnType
}

// Call builds a function call from the registry. Literal arguments become
// bound parameters named after the function.
func Call(name string, args ...any) (*FuncCall, error) {
	def, err := lookupFunc(name)
	if err != nil {
		return nil, err
	}
	return &FuncCall{name: name, args: args, typ: def.Returns}, nil
}

// CallAs builds a registered function call with an overridden return type.
func CallAs(name string, typ ColumnType, args ...any) (*FuncCall, error) {
	if _, err := lookupFunc(name); err != nil {
		return nil, err
	}
	return &FuncCall{name: name, args: args, typ: typ}, nil
}

// Name returns the SQL function name.
func (f *FuncCall) Name() string { return f.name }

// Type returns the call's declared return type.
func (f *FuncCall) Type() ColumnType { return f.typ }

func (f *FuncCall) compileExpr(c *compiler) (string, error) {
	parts := make([]string, 0, len(f.args))
	for _, arg := range f.args {
		if expr, ok := arg.(Expr); ok {
			sql, err := expr.compileExpr(c)
			if err != nil {
				return "", err
			}
			parts = append(parts, sql)
			continue
		}
		name := c.nextName(f.name)
		c.addParam(name, arg)
		parts = append(parts, ":"+name)
	}
	return f.name + "(" + strings.Join(parts, ", ") + ")", nil
}

// Field resolves a named field of a composite-returning call, e.g. the
// geom field of a dump. The resulting expression carries the field's
// declared type, so spatial fields serialize like plain spatial columns.
func (f *FuncCall) Field(name string) (*FieldAccess, error) {
	composite, ok := f.typ.(*CompositeType)
	if !ok {
		return nil, errors.Newf(ErrNotComposite,
			"%s does not return a composite row", f.name)
	}
	typ, ok := composite.FieldType(name)
	if !ok {
		return nil, errors.Newf(ErrUnknownField,
			"%s has no field %q", f.name, name)
	}
	return &FieldAccess{recv: f, field: name, typ: typ}, nil
}

// FieldAccess renders (<call>).<field> on a composite function result.
type FieldAccess struct {
	recv  *FuncCall
	field string
	typ   ColumnType
}

// Type returns the field's declared type.
func (fa *FieldAccess) Type() ColumnType { return fa.typ }

func (fa *FieldAccess) compileExpr(c *compiler) (string, error) {
	inner, err := fa.recv.compileExpr(c)
	if err != nil {
		return "", err
	}
	return "(" + inner + ")." + quoteIdent(fa.field), nil
}

// TextClause is a literal SQL fragment spliced in verbatim.
type TextClause struct {
	text string
}

// Text builds a literal SQL fragment.
func Text(sql string) *TextClause { return &TextClause{text: sql} }

func (t *TextClause) Type() ColumnType { return nil }

func (t *TextClause) compileExpr(c *compiler) (string, error) {
	return t.text, nil
}

// Comparison is a binary comparison expression.
type Comparison struct {
	left  Expr
	op    string
	right any
}

func (cmp *Comparison) Type() ColumnType { return nil }

func (cmp *Comparison) compileExpr(c *compiler) (string, error) {
	left, err := cmp.left.compileExpr(c)
	if err != nil {
		return "", err
	}

	var right string
	if expr, ok := cmp.right.(Expr); ok {
		right, err = expr.compileExpr(c)
		if err != nil {
			return "", err
		}
	} else {
		name := c.nextName(bindPrefix(cmp.left))
		c.addParam(name, cmp.right)
		right = ":" + name
		if typ := cmp.left.Type(); typ != nil && typ.BindWrap() != "" {
			right = typ.BindWrap() + "(" + right + ")"
		}
	}

	return left + " " + cmp.op + " " + right, nil
}

// bindPrefix picks the anonymous parameter prefix for a literal compared
// against an expression.
func bindPrefix(e Expr) string {
	switch expr := e.(type) {
	case *Column:
		return expr.name
	case *FuncCall:
		return expr.name
	case *FieldAccess:
		return expr.field
	default:
		return "param"
	}
}

// collectRelations walks an expression tree appending every referenced
// relation, preserving first-seen order.
func collectRelations(e Expr, seen map[Relation]struct{}, out *[]Relation) {
	switch expr := e.(type) {
	case *Column:
		if _, ok := seen[expr.rel]; !ok {
			seen[expr.rel] = struct{}{}
			*out = append(*out, expr.rel)
		}
	case *FuncCall:
		for _, arg := range expr.args {
			if sub, ok := arg.(Expr); ok {
				collectRelations(sub, seen, out)
			}
		}
	case *FieldAccess:
		collectRelations(expr.recv, seen, out)
	case *Comparison:
		collectRelations(expr.left, seen, out)
		if sub, ok := expr.right.(Expr); ok {
			collectRelations(sub, seen, out)
		}
	}
}
