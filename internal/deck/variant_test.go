package deck

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardkit/internal/card"
)

func TestNewVariantDeck(t *testing.T) {
	d := NewVariantDeck()

	require.Equal(t, 33, d.Len())
	assert.True(t, strings.HasPrefix(d.String(), "1A 2A 3A 4A 5A 6A 7A 8A 1B "))

	second, err := d.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Carta 2A", second.Name)

	sentinel, err := d.Get(32)
	require.NoError(t, err)
	assert.Equal(t, "0", sentinel.Value)
	assert.Equal(t, "0", sentinel.Suit)
	assert.Equal(t, "SuperTrunfo", sentinel.Name)
	assert.Empty(t, sentinel.Attributes)
}

func TestNewVariantDeck_Fusca(t *testing.T) {
	d := NewVariantDeck()

	fusca, ok := find(d, "1", "A")
	require.True(t, ok)
	assert.Equal(t, "Fusca", fusca.Name)

	for key, want := range map[string]int{"speed": 90, "mph": 120, "year": 1922, "gears": 4} {
		got, ok := fusca.Attributes.Int(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
}

// The 32 generated cards share one attribute map, so the values written for
// Fusca are reported by every one of them.
func TestNewVariantDeck_AttributesAreShared(t *testing.T) {
	d := NewVariantDeck()

	for i := 0; i < 32; i++ {
		c, err := d.Get(i)
		require.NoError(t, err)
		speed, ok := c.Attributes.Int("speed")
		assert.True(t, ok, c.GoString())
		assert.Equal(t, 90, speed, c.GoString())
	}

	// A write through one card is seen through another
	a, _ := d.Get(5)
	b, _ := d.Get(20)
	a.Attributes["speed"] = 1
	speed, _ := b.Attributes.Int("speed")
	assert.Equal(t, 1, speed)

	// The sentinel has its own map
	sentinel, _ := d.Get(32)
	assert.NotContains(t, sentinel.Attributes, "speed")
}

func TestNewVariantDeck_OnlyFuscaIsRenamed(t *testing.T) {
	d := NewVariantDeck()

	for i := 0; i < 32; i++ {
		c, _ := d.Get(i)
		if c.Value == "1" && c.Suit == "A" {
			continue
		}
		assert.Equal(t, "Carta "+c.Value+c.Suit, c.Name)
	}
}

func TestNewVariantDeck_IndependentDecks(t *testing.T) {
	a := NewVariantDeck()
	b := NewVariantDeck()

	ca, _ := a.Get(3)
	ca.Attributes["speed"] = 7

	cb, _ := b.Get(3)
	speed, _ := cb.Attributes.Int("speed")
	assert.Equal(t, 90, speed)
}

func TestBuild_DoesNotModifyDefinition(t *testing.T) {
	def := TrunfoDefinition()

	Build(def)

	assert.Equal(t, 0, def.Attributes["speed"])
	assert.Equal(t, 1990, def.Attributes["year"])
}

func TestBuild_WithoutOptionalSections(t *testing.T) {
	d := Build(&Definition{
		Name:  "Plain",
		Ranks: []string{"1", "2"},
		Suits: []string{"X"},
	})

	require.Equal(t, 2, d.Len())
	first, _ := d.Get(0)
	assert.Equal(t, "Carta 1X", first.Name)
	assert.NotNil(t, first.Attributes)
}

const carsDefinition = `
name = "Cars"
ranks = ["1", "2"]
suits = ["X", "Y"]
name_format = "Car %s-%s"

[attributes]
speed = 0
origin = "unknown"

[special]
value = "2"
suit = "Y"
name = "Beetle"

[special.attributes]
speed = 100

[sentinel]
value = "0"
suit = "0"
name = "Joker"
`

func TestDecodeDefinition(t *testing.T) {
	def, err := DecodeDefinition(strings.NewReader(carsDefinition))
	require.NoError(t, err)

	d := Build(def)
	require.Equal(t, 5, d.Len())
	assert.Equal(t, "[<Trunfo:Car 1-X,1X>, <Trunfo:Car 2-X,2X>, <Trunfo:Car 1-Y,1Y>, <Trunfo:Beetle,2Y>, <Trunfo:Joker,00>]", d.GoString())

	first, _ := d.Get(0)
	speed, ok := first.Attributes.Int("speed")
	assert.True(t, ok)
	assert.Equal(t, 100, speed)

	origin, _ := first.Attributes.Text("origin")
	assert.Equal(t, "unknown", origin)
}

func TestDecodeDefinition_UnknownKeys(t *testing.T) {
	_, err := DecodeDefinition(strings.NewReader(carsDefinition + "\ncolour = \"red\"\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestDecodeDefinition_Malformed(t *testing.T) {
	_, err := DecodeDefinition(strings.NewReader("name = "))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing deck definition")
}

func TestWriteDefinition_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDefinition(&buf, TrunfoDefinition()))

	def, err := DecodeDefinition(&buf)
	require.NoError(t, err)

	got := Build(def)
	want := NewVariantDeck()
	assert.Equal(t, want.GoString(), got.GoString())

	c, _ := got.Get(10)
	year, _ := c.Attributes.Int("year")
	assert.Equal(t, 1922, year)
}

func TestLoadDefinition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cars.toml")
	require.NoError(t, os.WriteFile(path, []byte(carsDefinition), 0644))

	def, err := LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "Cars", def.Name)
	assert.Equal(t, []string{"X", "Y"}, def.Suits)

	_, err = LoadDefinition(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "error opening deck definition")
}

func TestLoadDefinition_SharesDecodeChecks(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte(carsDefinition+"\ncolour = \"red\"\nsize = 3\n"), 0644))
	_, err := LoadDefinition(unknown)
	assert.ErrorContains(t, err, unknown)
	assert.ErrorContains(t, err, "unknown keys in deck definition: sentinel.colour, sentinel.size")

	malformed := filepath.Join(dir, "malformed.toml")
	require.NoError(t, os.WriteFile(malformed, []byte("name = "), 0644))
	_, err = LoadDefinition(malformed)
	assert.ErrorContains(t, err, "error parsing deck definition")
}

func TestCheckNameFormat(t *testing.T) {
	assert.NoError(t, CheckNameFormat(DefaultNameFormat))
	assert.NoError(t, CheckNameFormat("%s of %s"))

	err := CheckNameFormat("Car %d")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Car %!d(string=1)")
	assert.Error(t, CheckNameFormat("Car %s"))
}

func find(d *Deck[*card.VariantCard], value, suit string) (*card.VariantCard, bool) {
	for c := range d.Cards() {
		if c.Value == value && c.Suit == suit {
			return c, true
		}
	}
	return nil, false
}
