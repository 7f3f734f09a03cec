package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gear6io/geosql/ddl"
	"github.com/gear6io/geosql/sqlgen"
)

var dropTables bool

var ddlCmd = &cobra.Command{
	Use:   "ddl [schema.yaml]",
	Short: "Render schema DDL for a YAML schema file",
	Long: `Render the CREATE TABLE, AddGeometryColumn and GIST index statements
for every table in a YAML schema file.

Examples:
  geosql ddl schema.yaml
  geosql ddl --drop schema.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runDDL,
}

func init() {
	ddlCmd.Flags().BoolVar(&dropTables, "drop", false, "render DROP statements instead")
	rootCmd.AddCommand(ddlCmd)
}

func runDDL(cmd *cobra.Command, args []string) error {
	log := newLogger()

	schema, err := LoadSchema(args[0])
	if err != nil {
		return err
	}
	log.Debug().Str("path", args[0]).Int("tables", len(schema.Tables)).Msg("schema loaded")

	tables, err := schema.BuildTables()
	if err != nil {
		return err
	}

	for _, table := range tables {
		var stmts []*sqlgen.Statement
		if dropTables {
			stmts, err = ddl.DropTable(table)
		} else {
			stmts, err = ddl.CreateTable(table)
		}
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println(table.Name())
		for _, stmt := range stmts {
			pterm.Printf("%s;\n", stmt.SQL)
		}
	}
	return nil
}
