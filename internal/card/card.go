package card

import "fmt"

// Item is anything a Deck can hold. String is the short form used when a
// whole deck is printed, GoString the bracketed debug form.
type Item interface {
	fmt.Stringer
	fmt.GoStringer
}

// Card represents a standard playing card, defined by a value and a suit
type Card struct {
	Value string // Rank or face (e.g., A, 10, K)
	Suit  string // Suit or category (e.g., ♠, ♥)
}

// NewCard creates a card. Any values are accepted.
func NewCard(value, suit string) Card {
	return Card{Value: value, Suit: suit}
}

// String returns the short form, e.g. "4♣"
func (c Card) String() string {
	return c.Value + c.Suit
}

// GoString returns the debug form, e.g. "<4♣>"
func (c Card) GoString() string {
	return "<" + c.Value + c.Suit + ">"
}
