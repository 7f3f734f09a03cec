package sqlgen

import "fmt"

// ColumnDef declares one column of a table.
type ColumnDef struct {
	Name string
	Type ColumnType
}

// Col is shorthand for a column definition.
func Col(name string, typ ColumnType) ColumnDef {
	return ColumnDef{Name: name, Type: typ}
}

// Table is an immutable table description built once at schema-definition
// time.
type Table struct {
	name   string
	cols   []*Column
	byName map[string]*Column
}

// NewTable builds a table description from its column definitions.
func NewTable(name string, defs ...ColumnDef) *Table {
	t := &Table{
		name:   name,
		byName: make(map[string]*Column, len(defs)),
	}
	for _, def := range defs {
		col := &Column{rel: t, name: def.Name, typ: def.Type}
		t.cols = append(t.cols, col)
		t.byName[def.Name] = col
	}
	return t
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// C returns the named column. Referencing a column that was never declared
// is a schema-definition bug, so C panics rather than returning an error.
func (t *Table) C(name string) *Column {
	col, ok := t.byName[name]
	if !ok {
		panic(fmt.Sprintf("sqlgen: table %q has no column %q", t.name, name))
	}
	return col
}

// Columns returns the declared columns in definition order.
func (t *Table) Columns() []*Column {
	cols := make([]*Column, len(t.cols))
	copy(cols, t.cols)
	return cols
}

func (t *Table) refName() string { return t.name }

func (t *Table) compileFrom(c *compiler) (string, error) {
	return quoteIdent(t.name), nil
}

func (t *Table) columns() []*Column { return t.cols }
