package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardkit/internal/card"
	"github.com/arcanaland/cardkit/internal/config"
	"github.com/arcanaland/cardkit/internal/deck"
	"github.com/arcanaland/cardkit/internal/logging"
	"github.com/arcanaland/cardkit/internal/render"
)

// deckName returns the deck named on the command line or the configured default
func deckName(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	defaultDeck, err := config.GetDefaultDeck()
	if err != nil {
		return "", fmt.Errorf("error getting default deck: %w", err)
	}
	logging.GetLogger().Debugf("using default deck %s", defaultDeck)
	return defaultDeck, nil
}

// definitionFor returns the variant deck definition for name. The built-in
// standard deck has none.
func definitionFor(name string) (*deck.Definition, error) {
	if name == config.DeckVariant {
		return deck.TrunfoDefinition(), nil
	}

	definitionPath, err := config.GetDefinitionPath(name)
	if err != nil {
		return nil, err
	}
	logging.GetLogger().Debugf("loading deck definition %s", definitionPath)

	def, err := deck.LoadDefinition(definitionPath)
	if err != nil {
		return nil, fmt.Errorf("error loading deck: %w", err)
	}
	return def, nil
}

// withDeck builds the deck called name and hands it to the matching callback
func withDeck(name string, standard func(*deck.Deck[card.Card]) error, variant func(*deck.Deck[*card.VariantCard]) error) error {
	if name == config.DeckStandard {
		return standard(deck.NewStandardDeck())
	}

	def, err := definitionFor(name)
	if err != nil {
		return err
	}
	d := deck.Build(def)
	logging.GetLogger().Debugf("built deck %q with %d cards", def.Name, d.Len())
	return variant(d)
}

// shuffle reorders d when --shuffle or --seed is given. A seed makes the
// order repeatable.
func shuffle[C card.Item](cmd *cobra.Command, d *deck.Deck[C]) {
	seeded := cmd.Flags().Changed("seed")
	if on, _ := cmd.Flags().GetBool("shuffle"); !on && !seeded {
		return
	}

	if seeded {
		seed, _ := cmd.Flags().GetUint64("seed")
		d.ShuffleWith(rand.New(rand.NewPCG(seed, seed)))
		return
	}
	d.Shuffle()
}

func newRenderer(cmd *cobra.Command) *render.Renderer {
	noColor, _ := cmd.Flags().GetBool("no-color")
	if !noColor {
		if cfg, err := config.LoadConfig(); err != nil {
			logging.GetLogger().Warnf("error loading config: %v", err)
		} else {
			noColor = cfg.NoColor
		}
	}
	return render.New(cmd.OutOrStdout(), !noColor && os.Getenv("NO_COLOR") == "")
}
