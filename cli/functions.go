package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gear6io/geosql/sqlgen"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the registered spatial functions",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := sqlgen.Functions()
		items := make([]pterm.BulletListItem, len(names))
		for i, name := range names {
			items[i] = pterm.BulletListItem{Level: 0, Text: name}
		}
		return pterm.DefaultBulletList.WithItems(items).Render()
	},
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}
