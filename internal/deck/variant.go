package deck

import (
	"fmt"
	"io"
	"maps"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardkit/internal/card"
)

// DefaultNameFormat names generated cards from their value and suit
const DefaultNameFormat = "Carta %s%s"

// Definition describes a variant deck: the cross product of Ranks and Suits,
// every card sharing one attribute template, an optional special card and an
// optional sentinel appended last.
type Definition struct {
	Name       string           `toml:"name"`
	Ranks      []string         `toml:"ranks"`
	Suits      []string         `toml:"suits"`
	NameFormat string           `toml:"name_format,omitempty"`
	Attributes map[string]any   `toml:"attributes"`
	Special    *SpecialCard     `toml:"special,omitempty"`
	Sentinel   *SentinelSection `toml:"sentinel,omitempty"`
}

// SpecialCard renames one generated card and writes its attributes into the
// shared template
type SpecialCard struct {
	Value      string         `toml:"value"`
	Suit       string         `toml:"suit"`
	Name       string         `toml:"name"`
	Attributes map[string]any `toml:"attributes"`
}

// SentinelSection is the marker card appended after the generated cards
type SentinelSection struct {
	Value string `toml:"value"`
	Suit  string `toml:"suit"`
	Name  string `toml:"name"`
}

// TrunfoDefinition returns the built-in Super Trunfo deck
func TrunfoDefinition() *Definition {
	return &Definition{
		Name:       "Super Trunfo",
		Ranks:      []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		Suits:      []string{"A", "B", "C", "D"},
		NameFormat: DefaultNameFormat,
		Attributes: map[string]any{
			"speed": 0,
			"mph":   0,
			"year":  1990,
			"gears": 0,
		},
		Special: &SpecialCard{
			Value: "1",
			Suit:  "A",
			Name:  "Fusca",
			Attributes: map[string]any{
				"speed": 90,
				"mph":   120,
				"year":  1922,
				"gears": 4,
			},
		},
		Sentinel: &SentinelSection{Value: "0", Suit: "0", Name: "SuperTrunfo"},
	}
}

// NewVariantDeck returns the built-in Super Trunfo deck: 32 cards 1A..8D, the
// sentinel SuperTrunfo card last.
//
// The generated cards share a single Attributes map, so the values written
// for the special card 1A (Fusca) are reported by all 32 of them.
func NewVariantDeck() *Deck[*card.VariantCard] {
	return Build(TrunfoDefinition())
}

// CheckNameFormat reports whether format names a card from its value and
// suit, in that order, with nothing left over
func CheckNameFormat(format string) error {
	if name := fmt.Sprintf(format, "1", "A"); strings.Contains(name, "%!") {
		return fmt.Errorf("name format %q does not take a value and a suit: %q", format, name)
	}
	return nil
}

// Build creates the deck described by def. The definition itself is not
// modified.
func Build(def *Definition) *Deck[*card.VariantCard] {
	format := def.NameFormat
	if format == "" {
		format = DefaultNameFormat
	}

	cards := make([]*card.VariantCard, 0, len(def.Ranks)*len(def.Suits))
	for _, suit := range def.Suits {
		for _, value := range def.Ranks {
			cards = append(cards, card.NewVariantCard(fmt.Sprintf(format, value, suit), value, suit, nil))
		}
	}

	d := New[*card.VariantCard]()
	d.AppendAll(cards)

	shared := card.Attributes(maps.Clone(def.Attributes))
	if shared == nil {
		shared = card.Attributes{}
	}
	for c := range d.Cards() {
		c.Attributes = shared
		if def.Special != nil && c.Value == def.Special.Value && c.Suit == def.Special.Suit {
			c.Name = def.Special.Name
			maps.Copy(c.Attributes, def.Special.Attributes)
		}
	}

	if def.Sentinel != nil {
		d.Append(card.NewVariantCard(def.Sentinel.Name, def.Sentinel.Value, def.Sentinel.Suit, nil))
	}
	return d
}

// DecodeDefinition reads a TOML deck definition. Keys that do not belong to a
// definition are an error.
func DecodeDefinition(r io.Reader) (*Definition, error) {
	var def Definition
	md, err := toml.NewDecoder(r).Decode(&def)
	if err != nil {
		return nil, fmt.Errorf("error parsing deck definition: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown keys in deck definition: %s", strings.Join(keys, ", "))
	}
	return &def, nil
}

// LoadDefinition reads a TOML deck definition from path
func LoadDefinition(path string) (*Definition, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening deck definition: %w", err)
	}
	defer file.Close()

	def, err := DecodeDefinition(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// WriteDefinition encodes def as TOML
func WriteDefinition(w io.Writer, def *Definition) error {
	if err := toml.NewEncoder(w).Encode(def); err != nil {
		return fmt.Errorf("error encoding deck definition: %w", err)
	}
	return nil
}
