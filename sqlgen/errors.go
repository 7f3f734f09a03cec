package sqlgen

import (
	"github.com/gear6io/geosql/pkg/errors"
)

// Compilation and dispatch error codes
var (
	ErrUnknownFunction  = errors.MustNewCode("sqlgen.unknown_function")
	ErrUnknownColumn    = errors.MustNewCode("sqlgen.unknown_column")
	ErrUnknownField     = errors.MustNewCode("sqlgen.unknown_field")
	ErrNotComposite     = errors.MustNewCode("sqlgen.not_composite")
	ErrEmptySelect      = errors.MustNewCode("sqlgen.empty_select")
	ErrNoValues         = errors.MustNewCode("sqlgen.no_values")
	ErrInvalidFunction  = errors.MustNewCode("sqlgen.invalid_function")
	ErrUnboundParameter = errors.MustNewCode("sqlgen.unbound_parameter")
)

func newEmptySelect() error {
	return errors.New(ErrEmptySelect, "select needs at least one item")
}
