package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardkit/internal/logging"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardkit",
	Short: "Tool for building, shuffling and drawing from card decks",
	Long: `Cardkit builds standard 52-card decks and Super Trunfo style variant decks,
prints, shuffles and draws from them, and validates variant deck definitions
written in TOML.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logging.SetVerbose(verbose)
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	RootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug logs")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
