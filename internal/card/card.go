package card

import "encoding/json"

// Card is a single collectible with its artwork and rarity
type Card struct {
	Image  string `json:"imageUrl"` // URL of the card artwork
	Rarity Rarity `json:"rarity"`
}

// Collection is the top-level payload: an ordered list of cards in the
// order the source listed them.
type Collection struct {
	Cards []Card `json:"cards"`
}

// UnmarshalJSON accepts any JSON value. Fields that are missing or of the
// wrong type fall back to their defaults.
func (c *Card) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = cardFromValue(v)
	return nil
}

// UnmarshalJSON accepts any JSON value, see FromMap.
func (c *Collection) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = fromValue(v)
	return nil
}

// MarshalJSON always writes cards as an array, never null.
func (c Collection) MarshalJSON() ([]byte, error) {
	type wire Collection
	w := wire(c)
	if w.Cards == nil {
		w.Cards = []Card{}
	}
	return json.Marshal(w)
}

func (c Collection) Len() int {
	return len(c.Cards)
}

// CountByRarity tallies the cards per rarity. Rarities with no cards are
// absent from the map.
func (c Collection) CountByRarity() map[Rarity]int {
	counts := make(map[Rarity]int)
	for _, cd := range c.Cards {
		counts[cd.Rarity]++
	}
	return counts
}
