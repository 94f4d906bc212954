package card

import (
	"fmt"
	"strconv"
)

// Attributes holds the named characteristics of a variant card. Values are
// numbers or text.
//
// A map is a reference value: assigning one Attributes to several cards makes
// them share it, and a write through any card is seen by all of them.
type Attributes map[string]any

// Int returns the attribute as an int. Integer kinds and floats without a
// fractional part convert; anything else reports false.
func (a Attributes) Int(key string) (int, bool) {
	switch v := a[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

// Text returns the attribute formatted as text.
func (a Attributes) Text(key string) (string, bool) {
	v, ok := a[key]
	if !ok {
		return "", false
	}
	switch v := v.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return fmt.Sprint(v), true
	}
}

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// VariantCard is a card from a Super Trunfo style game: a named card that
// compares on several attributes instead of a single value.
type VariantCard struct {
	Card
	Name       string
	Attributes Attributes
}

// NewVariantCard creates a variant card. A nil attrs becomes an empty map.
func NewVariantCard(name, value, suit string, attrs Attributes) *VariantCard {
	if attrs == nil {
		attrs = Attributes{}
	}
	return &VariantCard{
		Card:       NewCard(value, suit),
		Name:       name,
		Attributes: attrs,
	}
}

// GoString returns the debug form, e.g. "<Trunfo:Fusca,1A>"
func (c *VariantCard) GoString() string {
	return fmt.Sprintf("<Trunfo:%s,%s>", c.Name, c.Card.String())
}
