package cards

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// Codespace is the error codespace of the cards package
const Codespace = "cards"

// ErrMalformedCard is returned when a card encoding is not a valid rank-suit pair
var ErrMalformedCard = errorsmod.Register(Codespace, 1100, "malformed card")

// Rank represents a card rank (2-A)
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks in a deck
const NumRanks = 13

// Suit represents a card suit
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the number of distinct suits in a deck
const NumSuits = 4

// DeckSize is the number of cards in a standard deck
const DeckSize = NumRanks * NumSuits

// AllSuits lists the suits in canonical order
var AllSuits = [NumSuits]Suit{Spades, Hearts, Diamonds, Clubs}

// Valid reports whether r is one of the thirteen deck ranks
func (r Rank) Valid() bool {
	return r <= Ace
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s <= Clubs
}

// Card represents a single playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Index returns a dense 0..51 index for the card (rank-major)
func (c Card) Index() int {
	return int(c.Rank)*NumSuits + int(c.Suit)
}

// FromIndex is the inverse of Card.Index
func FromIndex(i int) Card {
	return Card{Rank: Rank(i / NumSuits), Suit: Suit(i % NumSuits)}
}

// ParseCard parses a card from string notation (e.g., "As", "Kh", "Td")
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Card{}, errorsmod.Wrapf(ErrMalformedCard, "%q must be 2 characters", s)
	}

	rank, err := ParseRank(s[0])
	if err != nil {
		return Card{}, err
	}

	suit, err := ParseSuit(s[1])
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseRank converts a character to a Rank
func ParseRank(b byte) (Rank, error) {
	switch b {
	case '2':
		return Two, nil
	case '3':
		return Three, nil
	case '4':
		return Four, nil
	case '5':
		return Five, nil
	case '6':
		return Six, nil
	case '7':
		return Seven, nil
	case '8':
		return Eight, nil
	case '9':
		return Nine, nil
	case 'T', 't':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	default:
		return 0, errorsmod.Wrapf(ErrMalformedCard, "invalid rank %q", b)
	}
}

// ParseSuit converts a character to a Suit
func ParseSuit(b byte) (Suit, error) {
	switch b {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, errorsmod.Wrapf(ErrMalformedCard, "invalid suit %q", b)
	}
}

// String returns the card in standard notation (e.g., "As", "Kh")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

const rankSymbols = "23456789TJQKA"

// String returns the rank as a single character
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankSymbols[r : r+1]
}

// String returns the suit as a single character
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// ParseCards parses multiple cards from a string (e.g., "AsKhQd").
// Spaces and commas between cards are ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.NewReplacer(" ", "", ",", "").Replace(s)
	if len(s)%2 != 0 {
		return nil, errorsmod.Wrapf(ErrMalformedCard, "cards string %q must have even length", s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, errorsmod.Wrapf(err, "card at position %d", i)
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// FormatCards joins cards into concatenated notation (e.g., "AsKhQd")
func FormatCards(cs []Card) string {
	var b strings.Builder
	b.Grow(2 * len(cs))
	for _, c := range cs {
		b.WriteString(c.String())
	}
	return b.String()
}
