package deck

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/arcanaland/cardkit/internal/card"
)

// ErrIndexOutOfRange is returned when a position does not address a held card
var ErrIndexOutOfRange = errors.New("index out of range")

// Deck is an ordered collection of cards. Position 0 is the top of the deck.
//
// A Deck is not safe for concurrent use.
type Deck[C card.Item] struct {
	cards []C
}

// New returns an empty deck
func New[C card.Item]() *Deck[C] {
	return &Deck[C]{}
}

// Len returns the number of cards in the deck
func (d *Deck[C]) Len() int {
	return len(d.cards)
}

// Get returns the card at pos
func (d *Deck[C]) Get(pos int) (C, error) {
	if err := d.check(pos); err != nil {
		var zero C
		return zero, err
	}
	return d.cards[pos], nil
}

// Set replaces the card at pos
func (d *Deck[C]) Set(pos int, c C) error {
	if err := d.check(pos); err != nil {
		return err
	}
	d.cards[pos] = c
	return nil
}

// Swap exchanges the cards at i and j
func (d *Deck[C]) Swap(i, j int) error {
	a, err := d.Get(i)
	if err != nil {
		return err
	}
	b, err := d.Get(j)
	if err != nil {
		return err
	}
	d.cards[i], d.cards[j] = b, a
	return nil
}

// Append adds a card to the bottom of the deck
func (d *Deck[C]) Append(c C) {
	d.cards = append(d.cards, c)
}

// AppendAll adds cards to the bottom of the deck, keeping their order
func (d *Deck[C]) AppendAll(cards []C) {
	d.cards = append(d.cards, cards...)
}

// AppendDeck adds every card of other to the bottom of the deck. other is
// left unchanged.
func (d *Deck[C]) AppendDeck(other *Deck[C]) {
	d.AppendAll(other.cards)
}

// Draw removes and returns the top card. ok is false when the deck is empty.
func (d *Deck[C]) Draw() (c C, ok bool) {
	c, ok, _ = d.DrawAt(0)
	return c, ok
}

// DrawAt removes and returns the card at pos. Drawing from an empty deck is
// not an error: ok is false whatever pos is. On a non-empty deck a pos
// outside it returns ErrIndexOutOfRange.
func (d *Deck[C]) DrawAt(pos int) (c C, ok bool, err error) {
	if len(d.cards) == 0 {
		return c, false, nil
	}
	if err := d.check(pos); err != nil {
		return c, false, err
	}
	c = d.cards[pos]
	d.cards = slices.Delete(d.cards, pos, pos+1)
	return c, true, nil
}

// Shuffle puts the cards in a uniformly random order
func (d *Deck[C]) Shuffle() {
	rand.Shuffle(len(d.cards), d.swap)
}

// ShuffleWith shuffles using r, so a seeded source gives a repeatable order
func (d *Deck[C]) ShuffleWith(r *rand.Rand) {
	r.Shuffle(len(d.cards), d.swap)
}

// Slice returns a copy of the cards in [from, to)
func (d *Deck[C]) Slice(from, to int) ([]C, error) {
	if from < 0 || to > len(d.cards) || from > to {
		return nil, fmt.Errorf("slice [%d:%d] of deck with %d cards: %w", from, to, len(d.cards), ErrIndexOutOfRange)
	}
	out := make([]C, to-from)
	copy(out, d.cards[from:to])
	return out, nil
}

// All iterates over positions and cards, top first
func (d *Deck[C]) All() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		for i, c := range d.cards {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Cards iterates over the cards, top first
func (d *Deck[C]) Cards() iter.Seq[C] {
	return func(yield func(C) bool) {
		for _, c := range d.cards {
			if !yield(c) {
				return
			}
		}
	}
}

// String returns every card's short form separated by a space
func (d *Deck[C]) String() string {
	parts := make([]string, len(d.cards))
	for i, c := range d.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// GoString lists every card's debug form, e.g. "[<A♠>, <2♠>]"
func (d *Deck[C]) GoString() string {
	return GoStrings(d.cards)
}

// GoStrings formats cards the way GoString formats a deck
func GoStrings[C card.Item](cards []C) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.GoString()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (d *Deck[C]) swap(i, j int) {
	d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
}

func (d *Deck[C]) check(pos int) error {
	if pos < 0 || pos >= len(d.cards) {
		return fmt.Errorf("position %d of deck with %d cards: %w", pos, len(d.cards), ErrIndexOutOfRange)
	}
	return nil
}
