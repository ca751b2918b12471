package notation

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/behrlich/poker-equity/pkg/cards"
)

// Token is one parsed unit of range notation.
//
// For pair kinds Low..High is the pair-rank interval. For kicker kinds
// (ExactTwoCard with a suited/offsuited shape, SuitedRange, OffsuitedRange)
// Pivot is the fixed higher rank and Low..High the kicker interval.
// A pinned ExactTwoCard ("KhQc") carries its cards in Hand and has Shape FixedPair.
type Token struct {
	Kind  TokenKind
	Pivot cards.Rank
	Low   cards.Rank
	High  cards.Rank
	Shape HandShape
	Hand  cards.Hand
}

// ParseToken parses a single range token.
// Supported forms:
//   - "88"              exact pair
//   - "JJ+"             pairs from JJ up to AA
//   - "AKs", "AKo"      one suited/offsuited hand
//   - "A5s+", "K9o+"    kickers from 5 up to the rank just below the pivot
//   - "KhQc"            pinned two-card hand
//   - "66-33"           bounded pair range, inclusive
//   - "J5o-J3o"         bounded kicker range, inclusive
func ParseToken(s string) (Token, error) {
	s = strings.TrimSpace(s)

	switch len(s) {
	case 2:
		r1, r2, err := parseRankPair(s, s[0], s[1])
		if err != nil {
			return Token{}, err
		}
		if r1 != r2 {
			return Token{}, errorsmod.Wrapf(ErrMalformedRangeToken, "ambiguous hand %q (use 's' for suited or 'o' for offsuit)", s)
		}
		return Token{Kind: ExactPair, Low: r1, High: r1, Shape: Pair}, nil

	case 3:
		r1, r2, err := parseRankPair(s, s[0], s[1])
		if err != nil {
			return Token{}, err
		}
		if s[2] == '+' {
			if r1 != r2 {
				return Token{}, errorsmod.Wrapf(ErrMalformedRangeToken, "%q: open range needs a pair or a kicker qualifier", s)
			}
			return Token{Kind: PairRange, Low: r1, High: cards.Ace, Shape: Pair}, nil
		}
		shape, err := parseQualifier(s, s[2])
		if err != nil {
			return Token{}, err
		}
		if r1 == r2 {
			return Token{}, errorsmod.Wrapf(ErrMalformedRangeToken, "pair %q cannot have suited/offsuit indicator", s)
		}
		if r1 < r2 {
			r1, r2 = r2, r1
		}
		return Token{Kind: ExactTwoCard, Pivot: r1, Low: r2, High: r2, Shape: shape}, nil

	case 4:
		if s[3] != '+' {
			hand, err := cards.ParseHand(s)
			if err != nil {
				return Token{}, errorsmod.Wrapf(ErrMalformedRangeToken, "pinned hand %q: %v", s, err)
			}
			return Token{Kind: ExactTwoCard, Shape: FixedPair, Hand: hand}, nil
		}
		pivot, kicker, shape, err := parseKickerHand(s, s[:3])
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: kickerKind(shape), Pivot: pivot, Low: kicker, High: pivot - 1, Shape: shape}, nil

	case 5:
		if s[2] != '-' {
			return Token{}, errorsmod.Wrapf(ErrMalformedRangeToken, "%q: expected pair range like 66-33", s)
		}
		a, err := parsePair(s, s[:2])
		if err != nil {
			return Token{}, err
		}
		b, err := parsePair(s, s[3:])
		if err != nil {
			return Token{}, err
		}
		lo, hi := ordered(a, b)
		return Token{Kind: PairRange, Low: lo, High: hi, Shape: Pair}, nil

	case 7:
		if s[3] != '-' {
			return Token{}, errorsmod.Wrapf(ErrMalformedRangeToken, "%q: expected kicker range like J5o-J3o", s)
		}
		p1, k1, sh1, err := parseKickerHand(s, s[:3])
		if err != nil {
			return Token{}, err
		}
		p2, k2, sh2, err := parseKickerHand(s, s[4:])
		if err != nil {
			return Token{}, err
		}
		if p1 != p2 {
			return Token{}, errorsmod.Wrapf(ErrMalformedRangeToken, "%q: first rank must match", s)
		}
		if sh1 != sh2 {
			return Token{}, errorsmod.Wrapf(ErrMalformedRangeToken, "%q: mismatched suited/offsuit", s)
		}
		lo, hi := ordered(k1, k2)
		return Token{Kind: kickerKind(sh1), Pivot: p1, Low: lo, High: hi, Shape: sh1}, nil

	default:
		return Token{}, errorsmod.Wrapf(ErrMalformedRangeToken, "%q has unsupported length %d", s, len(s))
	}
}

// String returns the token in canonical range notation
func (t Token) String() string {
	switch t.Kind {
	case ExactPair:
		return t.Low.String() + t.Low.String()
	case ExactTwoCard:
		return HandSpec{High: t.Pivot, Low: t.Low, Shape: t.Shape, Fixed: t.Hand}.String()
	case PairRange:
		if t.High == cards.Ace {
			return t.Low.String() + t.Low.String() + "+"
		}
		return t.High.String() + t.High.String() + "-" + t.Low.String() + t.Low.String()
	case SuitedRange, OffsuitedRange:
		lo := HandSpec{High: t.Pivot, Low: t.Low, Shape: t.Shape}.String()
		if t.High == t.Pivot-1 {
			return lo + "+"
		}
		return HandSpec{High: t.Pivot, Low: t.High, Shape: t.Shape}.String() + "-" + lo
	default:
		return "?"
	}
}

func kickerKind(shape HandShape) TokenKind {
	if shape == Suited {
		return SuitedRange
	}
	return OffsuitedRange
}

func ordered(a, b cards.Rank) (cards.Rank, cards.Rank) {
	if a > b {
		return b, a
	}
	return a, b
}

func parseRankPair(token string, a, b byte) (cards.Rank, cards.Rank, error) {
	r1, err := cards.ParseRank(a)
	if err != nil {
		return 0, 0, errorsmod.Wrapf(ErrMalformedRangeToken, "%q: invalid rank %q", token, a)
	}
	r2, err := cards.ParseRank(b)
	if err != nil {
		return 0, 0, errorsmod.Wrapf(ErrMalformedRangeToken, "%q: invalid rank %q", token, b)
	}
	return r1, r2, nil
}

// parsePair parses a two-character pair such as "66"
func parsePair(token, part string) (cards.Rank, error) {
	r1, r2, err := parseRankPair(token, part[0], part[1])
	if err != nil {
		return 0, err
	}
	if r1 != r2 {
		return 0, errorsmod.Wrapf(ErrMalformedRangeToken, "%q: %q is not a pair", token, part)
	}
	return r1, nil
}

// parseKickerHand parses a three-character hand such as "A5s" into pivot, kicker and shape
func parseKickerHand(token, part string) (cards.Rank, cards.Rank, HandShape, error) {
	pivot, kicker, err := parseRankPair(token, part[0], part[1])
	if err != nil {
		return 0, 0, 0, err
	}
	shape, err := parseQualifier(token, part[2])
	if err != nil {
		return 0, 0, 0, err
	}
	if kicker >= pivot {
		return 0, 0, 0, errorsmod.Wrapf(ErrMalformedRangeToken, "%q: kicker %s must be below %s", token, kicker, pivot)
	}
	return pivot, kicker, shape, nil
}

func parseQualifier(token string, b byte) (HandShape, error) {
	switch b {
	case 's', 'S':
		return Suited, nil
	case 'o', 'O':
		return Offsuited, nil
	default:
		return 0, errorsmod.Wrapf(ErrMalformedRangeToken, "%q: invalid suited/offsuit indicator %q (expected 's' or 'o')", token, b)
	}
}
