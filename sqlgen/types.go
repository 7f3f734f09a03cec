package sqlgen

// ColumnType describes how values of a column type travel through generated
// SQL. Spatial descriptors implement it; plain SQL types use Plain.
type ColumnType interface {
	// ColSpec returns the literal DDL type string.
	ColSpec() string
	// BindWrap names the SQL function wrapping bound values on INSERT,
	// UPDATE and comparisons, or "" for pass-through.
	BindWrap() string
	// ResultWrap names the SQL function wrapping the column in the
	// outermost SELECT projection, or "" for pass-through.
	ResultWrap() string
}

// PlainType is an ordinary SQL column type with no bind or result
// transforms.
type PlainType string

// Plain declares a column type from its DDL spec, e.g. Plain("bigint").
func Plain(spec string) PlainType { return PlainType(spec) }

func (p PlainType) ColSpec() string    { return string(p) }
func (p PlainType) BindWrap() string   { return "" }
func (p PlainType) ResultWrap() string { return "" }

// CompositeType describes the record returned by a composite or
// set-returning function. Each field carries its own column type; a nil
// field type means plain.
type CompositeType struct {
	fields map[string]ColumnType
}

// Composite builds a composite return type from its field types.
func Composite(fields map[string]ColumnType) *CompositeType {
	copied := make(map[string]ColumnType, len(fields))
	for name, typ := range fields {
		copied[name] = typ
	}
	return &CompositeType{fields: copied}
}

// FieldType returns the declared type of a field.
func (c *CompositeType) FieldType(name string) (ColumnType, bool) {
	typ, ok := c.fields[name]
	return typ, ok
}

func (c *CompositeType) ColSpec() string    { return "record" }
func (c *CompositeType) BindWrap() string   { return "" }
func (c *CompositeType) ResultWrap() string { return "" }
