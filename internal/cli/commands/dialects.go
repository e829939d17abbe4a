package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sqlshift/sqlshift/pkg/dialect"
)

// NewDialectsCommand creates the dialects command, which lists the
// registered dialects and their capabilities.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported dialects",
		Long:  `List the registered SQL dialects with their placeholder style, returning-clause support, and auto-increment keyword.`,
		Run: func(cmd *cobra.Command, _ []string) {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Dialect", "Placeholders", "Returning", "Auto increment"})

			for _, name := range dialect.List() {
				d, ok := dialect.Get(name)
				if !ok {
					continue
				}
				t.AppendRow(table.Row{
					d.Name,
					d.Placeholder.String(),
					d.Returning.String(),
					d.AutoIncrement(),
				})
			}
			t.Render()
		},
	}
}
