package spatial

import (
	"github.com/gear6io/geosql/pkg/errors"
)

// Descriptor validation error codes
var (
	ErrInvalidSRID            = errors.MustNewCode("spatial.invalid_srid")
	ErrInvalidDimension       = errors.MustNewCode("spatial.invalid_dimension")
	ErrDimensionMismatch      = errors.MustNewCode("spatial.dimension_mismatch")
	ErrManagementRequiresType = errors.MustNewCode("spatial.management_requires_type")
)
