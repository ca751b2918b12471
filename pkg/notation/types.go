package notation

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/behrlich/poker-equity/pkg/cards"
)

// Codespace is the error codespace of the notation package
const Codespace = "notation"

var (
	// ErrMalformedRangeToken is returned for a range token outside the grammar
	ErrMalformedRangeToken = errorsmod.Register(Codespace, 1200, "malformed range token")
	// ErrEmptyRange is returned when a player's range expands to no hands
	ErrEmptyRange = errorsmod.Register(Codespace, 1201, "empty range")
	// ErrMalformedMatchup is returned when a matchup string has the wrong layout
	ErrMalformedMatchup = errorsmod.Register(Codespace, 1202, "malformed matchup")
)

// HandShape selects the suit-isomorphism set used to instantiate a HandSpec
type HandShape uint8

const (
	Pair HandShape = iota
	Suited
	Offsuited
	FixedPair
)

// String returns the shape name
func (s HandShape) String() string {
	switch s {
	case Pair:
		return "pair"
	case Suited:
		return "suited"
	case Offsuited:
		return "offsuited"
	case FixedPair:
		return "fixed"
	default:
		return "unknown"
	}
}

// TokenKind tags the variant held by a Token
type TokenKind uint8

const (
	ExactPair      TokenKind = iota // "88"
	ExactTwoCard                    // "AKs", "AKo", "KhQc"
	PairRange                       // "JJ+", "66-33"
	SuitedRange                     // "A5s+", "J5s-J3s"
	OffsuitedRange                  // "A5o+", "J5o-J3o"
)

// String returns the token kind name
func (k TokenKind) String() string {
	switch k {
	case ExactPair:
		return "exact-pair"
	case ExactTwoCard:
		return "exact-two-card"
	case PairRange:
		return "pair-range"
	case SuitedRange:
		return "suited-range"
	case OffsuitedRange:
		return "offsuited-range"
	default:
		return "unknown"
	}
}

// HandSpec is a two-rank hand specification such as "88", "AKs" or a pinned "KhQc".
// High >= Low. Fixed is only meaningful for the FixedPair shape.
type HandSpec struct {
	High  cards.Rank
	Low   cards.Rank
	Shape HandShape
	Fixed cards.Hand
}

// String returns the spec in range notation
func (h HandSpec) String() string {
	switch h.Shape {
	case Pair:
		return h.High.String() + h.Low.String()
	case Suited:
		return h.High.String() + h.Low.String() + "s"
	case Offsuited:
		return h.High.String() + h.Low.String() + "o"
	default:
		return h.Fixed.String()
	}
}

// RangeSpec is the ordered list of range tokens for one player
type RangeSpec []string

// Matchup is a parsed multi-player equity question
type Matchup struct {
	Ranges []RangeSpec
	Board  []cards.Card
	Dead   []cards.Card
}
