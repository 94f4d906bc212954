package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/cardkit/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a variant deck definition",
	Long: `Validate checks that a TOML variant deck definition can be built.
It verifies the ranks and suits, the attribute template, the special card and the sentinel.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		definitionPath := args[0]
		out := cmd.OutOrStdout()

		// Check if path exists
		if _, err := os.Stat(definitionPath); os.IsNotExist(err) {
			return fmt.Errorf("deck definition not found: %s", definitionPath)
		}

		v := validator.NewValidator(definitionPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Definition '%s' is valid.\n", definitionPath)
		} else {
			fmt.Fprintf(out, "❌ Definition '%s' has %d validation errors:\n", definitionPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
