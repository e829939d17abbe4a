// Package cli provides the command-line interface for sqlshift.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sqlshift/sqlshift/internal/cli/commands"
	"github.com/sqlshift/sqlshift/internal/cli/config"

	// Register the built-in dialects.
	_ "github.com/sqlshift/sqlshift/pkg/dialects/mysql"
	_ "github.com/sqlshift/sqlshift/pkg/dialects/postgres"
	_ "github.com/sqlshift/sqlshift/pkg/dialects/sqlite"
	_ "github.com/sqlshift/sqlshift/pkg/dialects/tsql"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sqlshift",
		Short: "sqlshift - SQL dialect transpiler",
		Long: `sqlshift translates SQL statements and their parameter payloads
between dialects: sqlite, tsql, postgres, and mysql.

Statements are parsed into a dialect-neutral form, placeholder styles and
parameter payload shapes are reconciled, and RETURNING/OUTPUT clauses and
column types are rewritten for the target.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cmd.SetContext(config.IntoContext(cmd.Context(), cfg))

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
SQL dialect transpiler
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./sqlshift.yaml)")
	rootCmd.PersistentFlags().StringP("source", "s", config.DefaultSource, "Source dialect of the input SQL")
	rootCmd.PersistentFlags().StringP("target", "t", "", "Target dialect to transpile into")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (text|json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	// Register completion for the dialect flags
	dialectCompletion := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"sqlite", "tsql", "postgres", "mysql"}, cobra.ShellCompDirectiveNoFileComp
	}
	_ = rootCmd.RegisterFlagCompletionFunc("source", dialectCompletion)
	_ = rootCmd.RegisterFlagCompletionFunc("target", dialectCompletion)
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewTranspileCommand())
	rootCmd.AddCommand(commands.NewDialectsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
