package validator

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardkit/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DefinitionPath string
	Results        ValidationResults

	def *deck.Definition
	md  toml.MetaData
}

func NewValidator(definitionPath string) *Validator {
	return &Validator{
		DefinitionPath: definitionPath,
		Results:        ValidationResults{},
	}
}

// Validate checks a variant deck definition file. An error is returned only
// when the file cannot be read as TOML at all; problems with its contents are
// collected in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.decode(); err != nil {
		return v.Results, err
	}

	v.validateIdentity()
	v.validateAxes()
	v.validateAttributes()
	v.validateSpecial()
	v.validateSentinel()
	v.validateKeys()

	return v.Results, nil
}

func (v *Validator) decode() error {
	if _, err := os.Stat(v.DefinitionPath); os.IsNotExist(err) {
		return fmt.Errorf("deck definition not found: %s", v.DefinitionPath)
	}

	var def deck.Definition
	md, err := toml.DecodeFile(v.DefinitionPath, &def)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", v.DefinitionPath, err)
	}
	v.def = &def
	v.md = md
	return nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateIdentity() {
	if v.def.Name == "" {
		v.errorf("name is required")
	}
	if v.def.NameFormat != "" {
		if err := deck.CheckNameFormat(v.def.NameFormat); err != nil {
			v.errorf("%v", err)
		}
	}
}

// validateAxes checks ranks and suits are present and unique
func (v *Validator) validateAxes() {
	if len(v.def.Ranks) == 0 {
		v.errorf("ranks must list at least one value")
	}
	if len(v.def.Suits) == 0 {
		v.errorf("suits must list at least one value")
	}

	for _, dup := range duplicates(v.def.Ranks) {
		v.errorf("duplicate rank: %s", dup)
	}
	for _, dup := range duplicates(v.def.Suits) {
		v.errorf("duplicate suit: %s", dup)
	}
}

func (v *Validator) validateAttributes() {
	if !v.md.IsDefined("attributes") {
		v.warnf("no [attributes] template; cards will have no attributes")
	}
	checkValues(v, "attributes", v.def.Attributes)
}

// validateSpecial checks the special card is one of the generated cards
func (v *Validator) validateSpecial() {
	sp := v.def.Special
	if sp == nil {
		return
	}
	if sp.Name == "" {
		v.errorf("special.name is required")
	}
	if !contains(v.def.Ranks, sp.Value) || !contains(v.def.Suits, sp.Suit) {
		v.errorf("special card %s%s is not in the deck", sp.Value, sp.Suit)
	}
	checkValues(v, "special.attributes", sp.Attributes)

	for key := range sp.Attributes {
		if _, ok := v.def.Attributes[key]; !ok {
			v.warnf("special.attributes.%s is not in the [attributes] template", key)
		}
	}
}

func (v *Validator) validateSentinel() {
	s := v.def.Sentinel
	if s == nil {
		v.warnf("no [sentinel] card")
		return
	}
	if s.Name == "" {
		v.errorf("sentinel.name is required")
	}
	if contains(v.def.Ranks, s.Value) && contains(v.def.Suits, s.Suit) {
		v.warnf("sentinel %s%s has the same identity as a generated card", s.Value, s.Suit)
	}
}

func (v *Validator) validateKeys() {
	for _, key := range v.md.Undecoded() {
		v.warnf("unknown key: %s", key)
	}
}

// checkValues reports attribute values that are neither numbers nor text
func checkValues(v *Validator, section string, attrs map[string]any) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch attrs[k].(type) {
		case string, int64, float64:
		default:
			v.errorf("%s.%s must be a number or text", section, k)
		}
	}
}

// duplicates returns values that occur more than once, in first-seen order
func duplicates(values []string) []string {
	seen := make(map[string]int, len(values))
	var dups []string
	for _, val := range values {
		seen[val]++
		if seen[val] == 2 {
			dups = append(dups, val)
		}
	}
	return dups
}

// contains checks if a string is in a slice
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
