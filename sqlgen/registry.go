package sqlgen

import (
	"sort"

	"github.com/gear6io/geosql/pkg/errors"
)

// FuncDef declares one SQL function known to the dispatcher.
type FuncDef struct {
	// Name is the exact SQL function name, e.g. "ST_Buffer".
	Name string
	// Returns is the declared return type. Spatial return types cause the
	// serialization wrap to be applied when the call is selected. nil
	// means a plain return value.
	Returns ColumnType
}

// funcRegistry is the explicit lookup table behind function dispatch.
// Lookups of unregistered names fail closed: that is the gate keeping
// arbitrary method names from becoming malformed SQL. Registration happens
// at program start; the map is read-only afterwards.
var funcRegistry = map[string]FuncDef{}

// Register adds or replaces a function definition.
func Register(def FuncDef) error {
	if def.Name == "" {
		return errors.New(ErrInvalidFunction, "function name cannot be empty")
	}
	funcRegistry[def.Name] = def
	return nil
}

// MustRegister registers a definition or panics. Intended for package
// init blocks seeding the registry.
func MustRegister(defs ...FuncDef) {
	for _, def := range defs {
		if err := Register(def); err != nil {
			panic(err)
		}
	}
}

// Functions returns the sorted names of all registered functions.
func Functions() []string {
	names := make([]string, 0, len(funcRegistry))
	for name := range funcRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupFunc(name string) (FuncDef, error) {
	def, ok := funcRegistry[name]
	if !ok {
		return FuncDef{}, errors.Newf(ErrUnknownFunction,
			"unknown spatial function %q", name)
	}
	return def, nil
}
