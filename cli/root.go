package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "geosql",
	Short: "Spatial SQL tooling for PostGIS schemas",
	Long: `geosql renders PostGIS schema DDL from declarative YAML schema files
and inspects the registered spatial function surface.

Geometry and geography columns compile to typmod-qualified column
definitions or AddGeometryColumn management calls, with GIST indexes
emitted per indexed column.`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newLogger builds the CLI logger honoring the verbosity flag.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)
}
