package session

import (
	"github.com/gear6io/geosql/pkg/errors"
)

// Execution error codes
var (
	ErrQueryFailed = errors.MustNewCode("session.query_failed")
	ErrExecFailed  = errors.MustNewCode("session.exec_failed")
	ErrScanFailed  = errors.MustNewCode("session.scan_failed")
)
