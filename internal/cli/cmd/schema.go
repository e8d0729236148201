package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tinyguard/internal/infrastructure/ruleset"
)

var schemaOutput string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the rule table",
	Long: `Print the JSON Schema describing the compiled rule table, for validating
the output of 'tinyguard compile' in other tooling.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "Write the schema to a file instead of stdout")
}

func runSchema(_ *cobra.Command, _ []string) error {
	data, err := ruleset.Schema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	if schemaOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(schemaOutput, data, 0o644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	fmt.Printf("Schema written to %s\n", schemaOutput)
	return nil
}
