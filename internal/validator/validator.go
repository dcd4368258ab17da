package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arcanaland/cardrarity/internal/card"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found. Warnings do not count.
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

// Validator checks a collection payload against the wire format. Decoding
// itself is lenient; the validator reports every place where the decoder
// would have fallen back to a default.
type Validator struct {
	Source  io.Reader
	Results ValidationResults
}

func NewValidator(source io.Reader) *Validator {
	return &Validator{
		Source:  source,
		Results: ValidationResults{},
	}
}

// Validate returns an error only when the payload cannot be read at all.
func (v *Validator) Validate() (ValidationResults, error) {
	data, err := io.ReadAll(v.Source)
	if err != nil {
		return v.Results, fmt.Errorf("error reading payload: %w", err)
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		v.errorf("payload is not valid JSON: %v", err)
		return v.Results, nil
	}

	root, ok := payload.(map[string]any)
	if !ok {
		v.errorf("payload must be a JSON object, got %s", jsonType(payload))
		return v.Results, nil
	}

	v.validateRootKeys(root)
	cards := v.validateCards(root)
	v.validatePairs(cards)

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateRootKeys(root map[string]any) {
	for _, key := range unknownKeys(root, card.FieldCards) {
		v.warnf("unknown key %q is ignored", key)
	}
}

// validateCards checks every card entry and returns the cards as the
// decoder would produce them
func (v *Validator) validateCards(root map[string]any) []card.Card {
	raw, present := root[card.FieldCards]
	if !present {
		v.warnf("%q is missing, collection is empty", card.FieldCards)
		return nil
	}

	items, ok := raw.([]any)
	if !ok {
		v.errorf("%q must be an array, got %s", card.FieldCards, jsonType(raw))
		return nil
	}
	if len(items) == 0 {
		v.warnf("collection has no cards")
	}

	cards := make([]card.Card, 0, len(items))
	for i, item := range items {
		cards = append(cards, v.validateCard(i, item))
	}
	return cards
}

func (v *Validator) validateCard(i int, item any) card.Card {
	var c card.Card

	entry, ok := item.(map[string]any)
	if !ok {
		v.errorf("cards[%d] must be an object, got %s", i, jsonType(item))
		return c
	}

	switch image := entry[card.FieldImageURL].(type) {
	case nil:
		if _, present := entry[card.FieldImageURL]; present {
			v.errorf("cards[%d].%s must be a string, got null", i, card.FieldImageURL)
		} else {
			v.warnf("cards[%d].%s is missing, defaults to an empty string", i, card.FieldImageURL)
		}
	case string:
		c.Image = image
		if image == "" {
			v.warnf("cards[%d].%s is empty", i, card.FieldImageURL)
		}
	default:
		v.errorf("cards[%d].%s must be a string, got %s", i, card.FieldImageURL, jsonType(image))
	}

	switch rarity := entry[card.FieldRarity].(type) {
	case nil:
		if _, present := entry[card.FieldRarity]; present {
			v.errorf("cards[%d].%s must be a string, got null", i, card.FieldRarity)
		} else {
			v.warnf("cards[%d].%s is missing, defaults to %s", i, card.FieldRarity, card.Common)
		}
	case string:
		r, ok := card.ParseRarity(rarity)
		if !ok {
			v.errorf("cards[%d].%s %q is not one of %s", i, card.FieldRarity, rarity, rarityList())
		}
		c.Rarity = r
	default:
		v.errorf("cards[%d].%s must be a string, got %s", i, card.FieldRarity, jsonType(rarity))
	}

	for _, key := range unknownKeys(entry, card.FieldImageURL, card.FieldRarity) {
		v.warnf("cards[%d]: unknown key %q is ignored", i, key)
	}

	return c
}

// validatePairs warns about collections that cannot produce a round
func (v *Validator) validatePairs(cards []card.Card) {
	if len(cards) == 0 {
		return
	}

	rarities := make(map[card.Rarity]bool)
	byImage := make(map[string]map[card.Rarity]bool)
	for _, c := range cards {
		rarities[c.Rarity] = true
		if c.Image == "" {
			continue
		}
		if byImage[c.Image] == nil {
			byImage[c.Image] = make(map[card.Rarity]bool)
		}
		byImage[c.Image][c.Rarity] = true
	}

	if len(rarities) == 1 {
		v.warnf("all cards are %s, no round can be drawn", cards[0].Rarity)
	}

	images := make([]string, 0, len(byImage))
	for image, rs := range byImage {
		if len(rs) > 1 {
			images = append(images, image)
		}
	}
	sort.Strings(images)
	for _, image := range images {
		v.warnf("image %s appears with %d rarities; those cards are never drawn together", image, len(byImage[image]))
	}
}

func unknownKeys(m map[string]any, known ...string) []string {
	var keys []string
	for key := range m {
		isKnown := false
		for _, k := range known {
			if key == k {
				isKnown = true
				break
			}
		}
		if !isKnown {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func rarityList() string {
	names := make([]string, 0, len(card.Rarities()))
	for _, r := range card.Rarities() {
		names = append(names, r.String())
	}
	return strings.Join(names, ", ")
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
