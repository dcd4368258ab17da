package card

import (
	"encoding/json"
	"fmt"
	"io"
)

// External field names of the wire format.
const (
	FieldCards    = "cards"
	FieldImageURL = "imageUrl"
	FieldRarity   = "rarity"
)

// FromMap builds a Collection from a decoded JSON object. It never fails:
// unknown keys are ignored and every missing or malformed field takes its
// default (no cards, empty image, Common rarity).
func FromMap(m map[string]any) Collection {
	raw, _ := m[FieldCards].([]any)
	cards := make([]Card, 0, len(raw))
	for _, item := range raw {
		cards = append(cards, cardFromValue(item))
	}
	return Collection{Cards: cards}
}

// Decode reads a single JSON value from r. The only error is input that is
// not exactly one JSON value; any JSON value yields a usable Collection.
func Decode(r io.Reader) (Collection, error) {
	dec := json.NewDecoder(r)
	var v any
	if err := dec.Decode(&v); err != nil {
		return Collection{Cards: []Card{}}, fmt.Errorf("decoding card payload: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Collection{Cards: []Card{}}, fmt.Errorf("decoding card payload: unexpected data after the top-level value")
	}
	return fromValue(v), nil
}

// Unmarshal is Decode for an in-memory payload.
func Unmarshal(data []byte) (Collection, error) {
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return Collection{Cards: []Card{}}, fmt.Errorf("decoding card payload: %w", err)
	}
	return c, nil
}

// Encode writes c in the wire format followed by a newline.
func Encode(w io.Writer, c Collection) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(c)
}

func fromValue(v any) Collection {
	m, _ := v.(map[string]any)
	return FromMap(m)
}

func cardFromValue(v any) Card {
	m, ok := v.(map[string]any)
	if !ok {
		return Card{}
	}
	var c Card
	if image, ok := m[FieldImageURL].(string); ok {
		c.Image = image
	}
	if name, ok := m[FieldRarity].(string); ok {
		c.Rarity = RarityOf(name)
	}
	return c
}
