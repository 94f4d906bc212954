package deck

import "github.com/arcanaland/cardkit/internal/card"

var (
	standardRanks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	standardSuits = []string{"♠", "♥", "♣", "♦"}
)

// StandardRanks returns the ranks of a standard deck, ace first
func StandardRanks() []string {
	return append([]string(nil), standardRanks...)
}

// StandardSuits returns the suits of a standard deck in deck order
func StandardSuits() []string {
	return append([]string(nil), standardSuits...)
}

// NewStandardDeck returns the 52 cards of a standard deck, suit by suit:
// A♠ 2♠ ... K♠ A♥ ... K♦
func NewStandardDeck() *Deck[card.Card] {
	cards := make([]card.Card, 0, len(standardRanks)*len(standardSuits))
	for _, suit := range standardSuits {
		for _, rank := range standardRanks {
			cards = append(cards, card.NewCard(rank, suit))
		}
	}

	d := New[card.Card]()
	d.AppendAll(cards)
	return d
}
