package cards

import (
	"math/bits"

	errorsmod "cosmossdk.io/errors"
)

// Hand is a player's two hole cards. The two cards are always distinct.
type Hand struct {
	First  Card
	Second Card
}

// NewHand builds a hand from two cards, rejecting a card paired with itself
func NewHand(first, second Card) (Hand, error) {
	if !first.Rank.Valid() || !first.Suit.Valid() || !second.Rank.Valid() || !second.Suit.Valid() {
		return Hand{}, errorsmod.Wrapf(ErrMalformedCard, "hand %s%s has an out of range card", first, second)
	}
	if first == second {
		return Hand{}, errorsmod.Wrapf(ErrMalformedCard, "hand %s%s repeats a card", first, second)
	}
	return Hand{First: first, Second: second}, nil
}

// ParseHand parses a pinned two-card hand such as "KhQc"
func ParseHand(s string) (Hand, error) {
	cs, err := ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	if len(cs) != 2 {
		return Hand{}, errorsmod.Wrapf(ErrMalformedCard, "hand %q must have exactly 2 cards", s)
	}
	return NewHand(cs[0], cs[1])
}

// String returns the hand in standard notation (e.g., "AsKh")
func (h Hand) String() string {
	return h.First.String() + h.Second.String()
}

// Cards returns the hand's cards in order
func (h Hand) Cards() [2]Card {
	return [2]Card{h.First, h.Second}
}

// Set returns the hand as a CardSet
func (h Hand) Set() CardSet {
	return CardSet(0).Add(h.First).Add(h.Second)
}

// CardSet is a set of cards stored as a 52-bit mask
type CardSet uint64

// NewCardSet builds a set from a list of cards
func NewCardSet(cs ...Card) CardSet {
	var s CardSet
	for _, c := range cs {
		s = s.Add(c)
	}
	return s
}

// Add returns the set with c included
func (s CardSet) Add(c Card) CardSet {
	return s | 1<<uint(c.Index())
}

// Has reports whether c is in the set
func (s CardSet) Has(c Card) bool {
	return s&(1<<uint(c.Index())) != 0
}

// Overlaps reports whether the two sets share a card
func (s CardSet) Overlaps(o CardSet) bool {
	return s&o != 0
}

// Union returns the cards in either set
func (s CardSet) Union(o CardSet) CardSet {
	return s | o
}

// Len returns the number of cards in the set
func (s CardSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Cards returns the set's cards ordered by index
func (s CardSet) Cards() []Card {
	out := make([]Card, 0, s.Len())
	for m := uint64(s); m != 0; m &= m - 1 {
		out = append(out, FromIndex(bits.TrailingZeros64(m)))
	}
	return out
}
