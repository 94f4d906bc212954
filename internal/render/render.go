package render

import (
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"sort"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/cardkit/internal/card"
	"github.com/arcanaland/cardkit/internal/deck"
)

// DefaultWidth is used when the output is not a terminal
const DefaultWidth = 80

// Renderer writes decks and cards for a terminal
type Renderer struct {
	Out   io.Writer
	Color bool
	Width int
}

// New returns a renderer for out. Colour is only used when out is a terminal.
func New(out io.Writer, useColor bool) *Renderer {
	r := &Renderer{Out: out, Width: DefaultWidth}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			r.Width = width
		}
		r.Color = useColor
	}
	return r
}

// Deck prints the text form of d wrapped to the renderer width
func Deck[C card.Item](r *Renderer, d *deck.Deck[C]) error {
	var words []string
	var painted []string
	for c := range d.Cards() {
		words = append(words, c.String())
		painted = append(painted, r.paintCard(c))
	}

	start := 0
	for _, line := range wrapWords(words, r.Width) {
		if _, err := fmt.Fprintln(r.Out, strings.Join(painted[start:start+len(line)], " ")); err != nil {
			return err
		}
		start += len(line)
	}
	return nil
}

// Debug prints the debug form of d
func Debug[C card.Item](r *Renderer, d *deck.Deck[C]) error {
	_, err := fmt.Fprintln(r.Out, d.GoString())
	return err
}

// Card prints a single card
func (r *Renderer) Card(c card.Item) error {
	if vc, ok := c.(*card.VariantCard); ok {
		return r.VariantCard(vc)
	}
	_, err := fmt.Fprintln(r.Out, r.label("Card: ")+r.paintCard(c))
	return err
}

// VariantCard prints a variant card with its attributes, sorted by name
func (r *Renderer) VariantCard(c *card.VariantCard) error {
	lines := []string{
		r.label("Card: ") + r.value(c.Name),
		r.label("ID:   ") + r.paintCard(c),
		r.label("Suit: ") + r.value(c.Suit),
	}

	if len(c.Attributes) > 0 {
		keys := make([]string, 0, len(c.Attributes))
		width := 0
		for k := range c.Attributes {
			keys = append(keys, k)
			if len(k) > width {
				width = len(k)
			}
		}
		sort.Strings(keys)

		lines = append(lines, "", r.label("Attributes:"))
		for _, k := range keys {
			text, _ := c.Attributes.Text(k)
			lines = append(lines, fmt.Sprintf("  %-*s  %s", width, k, r.value(text)))
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(r.Out, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) label(s string) string {
	return r.paint(colorize.FgCyan, s)
}

func (r *Renderer) value(s string) string {
	return r.paint(colorize.FgHiWhite, s)
}

// paint colours s when colour is on, whatever fatih/color detected for stdout
func (r *Renderer) paint(attr colorize.Attribute, s string) string {
	if !r.Color {
		return s
	}
	c := colorize.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}

// paintCard colours a card's short form by its suit
func (r *Renderer) paintCard(c card.Item) string {
	text := c.String()
	if !r.Color {
		return text
	}

	var suit string
	switch v := c.(type) {
	case card.Card:
		suit = v.Suit
	case *card.VariantCard:
		suit = v.Suit
	default:
		return text
	}

	switch suit {
	case "♥", "♦":
		return r.paint(colorize.FgRed, text)
	case "♠", "♣":
		return r.paint(colorize.FgHiWhite, text)
	}
	return ansiColorString(text, suitColor(suit))
}

// suitColor picks a stable hue for a suit that has no conventional colour
func suitColor(suit string) colorful.Color {
	h := fnv.New32a()
	h.Write([]byte(suit))
	return colorful.Hsv(float64(h.Sum32()%360), 0.55, 0.95)
}

// ansiColorString wraps text in a 24-bit foreground colour
func ansiColorString(text string, c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}

// wrapWords groups words into lines no wider than width
func wrapWords(words []string, width int) [][]string {
	// Ensure width is reasonable
	if width < 10 {
		width = DefaultWidth
	}

	var lines [][]string
	var current []string
	currentWidth := 0

	for _, word := range words {
		w := len([]rune(word))
		switch {
		case len(current) == 0:
			current = []string{word}
			currentWidth = w
		case currentWidth+1+w <= width:
			current = append(current, word)
			currentWidth += 1 + w
		default:
			lines = append(lines, current)
			current = []string{word}
			currentWidth = w
		}
	}

	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}
