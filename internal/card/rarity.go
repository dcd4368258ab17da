package card

// Rarity is how scarce a card is. The set is closed and ordered from the
// most common tier to the scarcest.
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	RareHolo
	RareUltra
	RareSecret
)

var rarityNames = [...]string{
	Common:     "Common",
	Uncommon:   "Uncommon",
	Rare:       "Rare",
	RareHolo:   "RareHolo",
	RareUltra:  "RareUltra",
	RareSecret: "RareSecret",
}

// Rarities returns every rarity in declaration order
func Rarities() []Rarity {
	out := make([]Rarity, len(rarityNames))
	for i := range rarityNames {
		out[i] = Rarity(i)
	}
	return out
}

// ParseRarity looks up the rarity with the given wire name. Names are
// matched exactly.
func ParseRarity(name string) (Rarity, bool) {
	for i, n := range rarityNames {
		if n == name {
			return Rarity(i), true
		}
	}
	return Common, false
}

// RarityOf is ParseRarity with unknown names mapped to Common.
func RarityOf(name string) Rarity {
	r, _ := ParseRarity(name)
	return r
}

// Valid reports whether r is one of the six declared rarities
func (r Rarity) Valid() bool {
	return r >= Common && int(r) < len(rarityNames)
}

func (r Rarity) String() string {
	if !r.Valid() {
		return rarityNames[Common]
	}
	return rarityNames[r]
}

// Compare orders rarities by declaration order.
func (r Rarity) Compare(other Rarity) int {
	switch {
	case r < other:
		return -1
	case r > other:
		return 1
	}
	return 0
}

func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText never fails: an unrecognized name decodes to Common.
func (r *Rarity) UnmarshalText(text []byte) error {
	*r = RarityOf(string(text))
	return nil
}
