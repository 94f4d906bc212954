package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardkit/internal/card"
	"github.com/arcanaland/cardkit/internal/config"
	"github.com/arcanaland/cardkit/internal/deck"
	"github.com/arcanaland/cardkit/internal/logging"
	"github.com/arcanaland/cardkit/internal/render"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Build, print and draw from decks",
	Long: `Commands for working with decks. A deck is named "standard", "variant",
a definition in your deck library, or a path to a definition file.`,
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show [deck]",
	Short: "Print every card of a deck, top first",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := deckName(args)
		if err != nil {
			return err
		}

		return withDeck(name,
			func(d *deck.Deck[card.Card]) error { return showDeck(cmd, d) },
			func(d *deck.Deck[*card.VariantCard]) error { return showDeck(cmd, d) },
		)
	},
}

func showDeck[C card.Item](cmd *cobra.Command, d *deck.Deck[C]) error {
	shuffle(cmd, d)

	r := newRenderer(cmd)
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return render.Debug(r, d)
	}
	return render.Deck(r, d)
}

// deckDrawCmd represents the deck draw command
var deckDrawCmd = &cobra.Command{
	Use:   "draw [deck]",
	Short: "Draw cards from the top of a deck",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := deckName(args)
		if err != nil {
			return err
		}

		return withDeck(name,
			func(d *deck.Deck[card.Card]) error { return drawCards(cmd, d) },
			func(d *deck.Deck[*card.VariantCard]) error { return drawCards(cmd, d) },
		)
	},
}

func drawCards[C card.Item](cmd *cobra.Command, d *deck.Deck[C]) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 0 {
		return fmt.Errorf("count must not be negative: %d", count)
	}
	shuffle(cmd, d)

	r := newRenderer(cmd)
	for i := 0; i < count; i++ {
		c, ok := d.Draw()
		if !ok {
			logging.GetLogger().Warnf("deck is empty after %d cards", i)
			break
		}
		if err := r.Card(c); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d cards left\n", d.Len())
	return nil
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the built-in decks and the definitions in your deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return fmt.Errorf("error getting default deck: %w", err)
		}

		printEntry := func(name, title string) {
			if name == defaultDeck {
				fmt.Fprintf(out, "* %s (%s) [DEFAULT]\n", name, title)
			} else {
				fmt.Fprintf(out, "  %s (%s)\n", name, title)
			}
		}
		printEntry(config.DeckStandard, "Standard 52-card deck")
		printEntry(config.DeckVariant, deck.TrunfoDefinition().Name)

		libraryPath := config.GetDefinitionLibraryPath()
		entries, err := os.ReadDir(libraryPath)
		if os.IsNotExist(err) {
			logging.GetLogger().Debugf("deck library %s does not exist", libraryPath)
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading deck library: %w", err)
		}

		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}

			def, err := deck.LoadDefinition(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid definition, skip
				logging.GetLogger().Debugf("skipping %s: %v", entry.Name(), err)
				continue
			}
			printEntry(strings.TrimSuffix(entry.Name(), ".toml"), def.Name)
		}
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		// Make sure the deck can be built before saving it
		if !config.IsBuiltin(name) {
			if _, err := definitionFor(name); err != nil {
				return fmt.Errorf("not a valid deck: %w", err)
			}
		}

		if err := config.SetDefaultDeck(name); err != nil {
			return fmt.Errorf("error setting default deck: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default deck set to: %s\n", name)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library with an example definition",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDefinitionLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %w", err)
		}
		fmt.Fprintln(out, "Deck library initialized at:", libraryPath)

		examplePath := filepath.Join(libraryPath, "trunfo.toml")
		if _, err := os.Stat(examplePath); os.IsNotExist(err) {
			if err := writeDefinitionFile(examplePath, deck.TrunfoDefinition()); err != nil {
				return err
			}
			fmt.Fprintln(out, "Example definition written to:", examplePath)
		}

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func writeDefinitionFile(path string, def *deck.Definition) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating definition file: %w", err)
	}
	defer file.Close()

	return deck.WriteDefinition(file, def)
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckDrawCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)

	for _, c := range []*cobra.Command{deckShowCmd, deckDrawCmd} {
		c.Flags().Bool("shuffle", false, "Shuffle the deck first")
		c.Flags().Uint64("seed", 0, "Seed for a repeatable shuffle (implies --shuffle)")
	}
	deckShowCmd.Flags().Bool("debug", false, "Print the debug form of every card")
	deckDrawCmd.Flags().IntP("count", "n", 1, "Number of cards to draw")
}
