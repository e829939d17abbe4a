package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sqlshift/sqlshift/internal/cli/config"
	"github.com/sqlshift/sqlshift/pkg/params"
	"github.com/sqlshift/sqlshift/pkg/transpile"
)

// NewTranspileCommand creates the transpile command.
func NewTranspileCommand() *cobra.Command {
	var (
		sqlFile    string
		paramsFile string
	)

	cmd := &cobra.Command{
		Use:   "transpile [sql]",
		Short: "Translate a SQL statement between dialects",
		Long: `Translate a SQL statement and its parameter payload from the source
dialect into the target dialect.

The statement is taken from the argument, from --file, or from stdin.
Parameters are read from a YAML file: a mapping for named placeholders,
a sequence for positional ones.`,
		Example: `  sqlshift transpile -s sqlite -t tsql "DELETE FROM users WHERE id = :id RETURNING id"
  sqlshift transpile -s tsql -t postgres --file query.sql --params params.yaml
  echo "SELECT * FROM users" | sqlshift transpile -t mysql`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			if cfg.Target == "" {
				return fmt.Errorf("no target dialect: set --target or the config file's target key")
			}

			sql, err := readStatement(cmd, args, sqlFile)
			if err != nil {
				return err
			}

			payload, err := loadParams(paramsFile)
			if err != nil {
				return err
			}

			res, err := transpile.Transpile(sql, payload, cfg.Source, cfg.Target)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), res, cfg.Output)
		},
	}

	cmd.Flags().StringVarP(&sqlFile, "file", "f", "", "Read the SQL statement from a file")
	cmd.Flags().StringVarP(&paramsFile, "params", "p", "", "Read the parameter payload from a YAML file")

	return cmd
}

// readStatement resolves the input SQL: argument, file, or stdin.
func readStatement(cmd *cobra.Command, args []string, sqlFile string) (string, error) {
	if len(args) == 1 && sqlFile != "" {
		return "", fmt.Errorf("pass the statement as an argument or via --file, not both")
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if sqlFile != "" {
		data, err := os.ReadFile(sqlFile)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", sqlFile, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// loadParams reads a parameter payload from a YAML file. A mapping decodes
// to a named payload, a sequence to a positional one.
func loadParams(path string) (params.Payload, error) {
	if path == "" {
		return params.Payload{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return params.Payload{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return params.Payload{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	switch v := raw.(type) {
	case nil:
		return params.Payload{}, nil
	case map[string]any:
		return params.Payload{Named: v}, nil
	case []any:
		return params.Payload{Positional: v}, nil
	default:
		return params.Payload{}, fmt.Errorf("%s: parameters must be a mapping or a sequence", path)
	}
}

// writeResult prints the transpiled statement and payload.
func writeResult(w io.Writer, res *transpile.Result, output string) error {
	if output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		out := map[string]any{"sql": res.SQL}
		if res.Payload.IsNamed() {
			out["parameters"] = res.Payload.Named
		} else if res.Payload.Positional != nil {
			out["parameters"] = res.Payload.Positional
		}
		return enc.Encode(out)
	}

	if _, err := fmt.Fprintln(w, res.SQL); err != nil {
		return err
	}

	var payload any
	switch {
	case res.Payload.IsNamed() && len(res.Payload.Named) > 0:
		payload = res.Payload.Named
	case len(res.Payload.Positional) > 0:
		payload = res.Payload.Positional
	default:
		return nil
	}

	if _, err := fmt.Fprintln(w, "-- parameters:"); err != nil {
		return err
	}
	data, err := yaml.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
