package render

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardkit/internal/card"
	"github.com/arcanaland/cardkit/internal/deck"
)

func TestNew_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true)

	assert.False(t, r.Color)
	assert.Equal(t, DefaultWidth, r.Width)
}

func TestDeck_WrapsToWidth(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf, Width: 20}

	require.NoError(t, Deck(r, deck.NewStandardDeck()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, "A♠ 2♠ 3♠ 4♠ 5♠ 6♠ 7♠", lines[0])
	for _, line := range lines {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), 20, line)
	}
	assert.Equal(t, deck.NewStandardDeck().String(), strings.Join(strings.Fields(buf.String()), " "))
}

func TestDeck_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf, Width: 20}

	require.NoError(t, Deck(r, deck.New[card.Card]()))
	assert.Empty(t, buf.String())
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf, Width: 80}
	d := deck.New[card.Card]()
	d.AppendAll([]card.Card{card.NewCard("A", "♠"), card.NewCard("2", "♠")})

	require.NoError(t, Debug(r, d))
	assert.Equal(t, "[<A♠>, <2♠>]\n", buf.String())
}

func TestCard_Standard(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf, Width: 80}

	require.NoError(t, r.Card(card.NewCard("Q", "♥")))
	assert.Equal(t, "Card: Q♥\n", buf.String())
}

func TestCard_Variant(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf, Width: 80}
	fusca, err := deck.NewVariantDeck().Get(0)
	require.NoError(t, err)

	require.NoError(t, r.Card(fusca))

	want := strings.Join([]string{
		"Card: Fusca",
		"ID:   1A",
		"Suit: A",
		"",
		"Attributes:",
		"  gears  4",
		"  mph    120",
		"  speed  90",
		"  year   1922",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestCard_VariantWithoutAttributes(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf, Width: 80}

	require.NoError(t, r.Card(card.NewVariantCard("SuperTrunfo", "0", "0", nil)))
	assert.Equal(t, "Card: SuperTrunfo\nID:   00\nSuit: 0\n", buf.String())
}

func TestPaintCard_Colors(t *testing.T) {
	r := &Renderer{Color: true, Width: 80}

	assert.Contains(t, r.paintCard(card.NewCard("9", "♥")), "\x1b[31m")
	assert.Contains(t, r.paintCard(card.NewCard("9", "♠")), "\x1b[97m")

	variant := r.paintCard(card.NewVariantCard("x", "1", "A", nil))
	assert.True(t, strings.HasPrefix(variant, "\x1b[38;2;"), variant)
	assert.True(t, strings.HasSuffix(variant, "1A\x1b[0m"), variant)

	// The same suit always gets the same colour
	assert.Equal(t, variant, r.paintCard(card.NewVariantCard("y", "1", "A", nil)))
}

func TestPaintCard_NoColor(t *testing.T) {
	r := &Renderer{Width: 80}
	assert.Equal(t, "9♥", r.paintCard(card.NewCard("9", "♥")))
}

func TestWrapWords(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		width int
		want  [][]string
	}{
		{"empty", nil, 20, nil},
		{"fits", []string{"aa", "bb"}, 20, [][]string{{"aa", "bb"}}},
		{"breaks", []string{"aaaaa", "bbbbb", "ccccc"}, 11, [][]string{{"aaaaa", "bbbbb"}, {"ccccc"}}},
		{"narrow width uses default", []string{"aaaaa", "bbbbb"}, 3, [][]string{{"aaaaa", "bbbbb"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapWords(tt.words, tt.width))
		})
	}
}
