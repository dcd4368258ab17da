package round

import (
	"log/slog"
	"math/rand/v2"

	"github.com/arcanaland/cardrarity/internal/card"
)

// cardsPerRound is how many cards the player chooses between
const cardsPerRound = 2

// Randomiser picks an index in [0, n).
type Randomiser interface {
	IntN(n int) int
}

// NewRandomiser returns a Randomiser seeded with seed
func NewRandomiser(seed uint64) Randomiser {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Round is a pair of cards of different rarity. The zero Round is empty:
// no round could be drawn.
type Round struct {
	Cards  []card.Card
	Winner card.Card
}

func (r Round) IsEmpty() bool {
	return len(r.Cards) == 0
}

// IsWinner reports whether c is the rarer card of the round
func (r Round) IsWinner(c card.Card) bool {
	return !r.IsEmpty() && c == r.Winner
}

// Factory draws rounds from a collection.
type Factory struct {
	rand   Randomiser
	logger *slog.Logger
}

func NewFactory(r Randomiser) *Factory {
	return &Factory{rand: r, logger: slog.Default()}
}

// Build draws a first card, then keeps drawing until it finds a card with a
// different rarity and different artwork. Rejected cards are dropped for the
// rest of this round. A first card that has no such partner is set aside and
// another first card is drawn. The input slice is not modified.
//
// An empty Round is returned only when no pair exists: fewer than two cards,
// all cards of one rarity, or every card of another rarity reusing the
// artwork of its would-be partner.
func (f *Factory) Build(cards []card.Card) Round {
	if len(cards) < cardsPerRound || sameRarity(cards) {
		return Round{}
	}

	firsts := make([]card.Card, len(cards))
	copy(firsts, cards)

	for len(firsts) > 0 {
		fi := f.rand.IntN(len(firsts))
		first := firsts[fi]
		if !hasPartner(first, cards) {
			f.logger.Debug("no card pairs with the first draw",
				slog.String("image", first.Image),
				slog.String("rarity", first.Rarity.String()))
			firsts = append(firsts[:fi], firsts[fi+1:]...)
			continue
		}

		pool := make([]card.Card, len(cards))
		copy(pool, cards)
		for len(pool) > 0 {
			i := f.rand.IntN(len(pool))
			candidate := pool[i]
			if pairs(first, candidate) {
				winner := first
				if candidate.Rarity.Compare(first.Rarity) > 0 {
					winner = candidate
				}
				return Round{Cards: []card.Card{first, candidate}, Winner: winner}
			}
			pool = append(pool[:i], pool[i+1:]...)
		}
	}

	return Round{}
}

// Play draws n rounds. It returns fewer only when no pair exists at all, in
// which case no round is returned.
func (f *Factory) Play(cards []card.Card, n int) []Round {
	rounds := make([]Round, 0, n)
	for i := 0; i < n; i++ {
		r := f.Build(cards)
		if r.IsEmpty() {
			break
		}
		rounds = append(rounds, r)
	}
	return rounds
}

// pairs reports whether a and b can share a round
func pairs(a, b card.Card) bool {
	return a.Rarity != b.Rarity && a.Image != b.Image
}

func hasPartner(first card.Card, cards []card.Card) bool {
	for _, c := range cards {
		if pairs(first, c) {
			return true
		}
	}
	return false
}

func sameRarity(cards []card.Card) bool {
	for _, c := range cards[1:] {
		if c.Rarity != cards[0].Rarity {
			return false
		}
	}
	return true
}
