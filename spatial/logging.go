package spatial

import (
	"os"

	"github.com/rs/zerolog"
)

// warnLog receives non-fatal descriptor construction warnings. Inert
// constructor arguments are accepted but reported here, matching the
// behavior contract of the column types.
var warnLog = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)

// SetLogger replaces the package warning logger.
func SetLogger(l zerolog.Logger) {
	warnLog = l
}
