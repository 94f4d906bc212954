package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardkit/internal/card"
	"github.com/arcanaland/cardkit/internal/deck"
)

var errCardNotFound = errors.New("card not found")

var cardCmd = &cobra.Command{
	Use:   "card [card]",
	Short: "Display a single card and its attributes",
	Long: `Card displays one card by its short form, the value followed by the suit.
Variant cards are shown with their name and attributes.

You can specify a deck using the --deck flag, which will look for a definition
in your deck library (XDG_DATA_HOME/cardkit/decks) or as a relative path.
If no deck is specified, the default deck from your config will be used.

Examples:
  cardkit card A♠
  cardkit card --deck variant 1A
  cardkit card --deck ./cars.toml 3B`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckFlag, _ := cmd.Flags().GetString("deck")

		name, err := deckName([]string{deckFlag})
		if err != nil {
			return err
		}

		return withDeck(name,
			func(d *deck.Deck[card.Card]) error {
				err := showCard(cmd, d, args[0])
				if errors.Is(err, errCardNotFound) {
					return fmt.Errorf("%w; a standard card is a rank (%s) followed by a suit (%s)", err,
						strings.Join(deck.StandardRanks(), " "), strings.Join(deck.StandardSuits(), " "))
				}
				return err
			},
			func(d *deck.Deck[*card.VariantCard]) error { return showCard(cmd, d, args[0]) },
		)
	},
}

func showCard[C card.Item](cmd *cobra.Command, d *deck.Deck[C], short string) error {
	c, ok := findCard(d, short)
	if !ok {
		return fmt.Errorf("%w: %s", errCardNotFound, short)
	}
	return newRenderer(cmd).Card(c)
}

// findCard returns the card nearest the top whose short form is short
func findCard[C card.Item](d *deck.Deck[C], short string) (C, bool) {
	for c := range d.Cards() {
		if c.String() == short {
			return c, true
		}
	}
	var zero C
	return zero, false
}

func init() {
	RootCmd.AddCommand(cardCmd)

	cardCmd.Flags().StringP("deck", "d", "", "Specify a deck from your deck library or a path to a definition")
}
