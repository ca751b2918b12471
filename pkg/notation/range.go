package notation

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/behrlich/poker-equity/pkg/cards"
)

// ParseRange splits a comma-separated range string into a RangeSpec,
// validating every token. Examples:
//   - "AA,KK,AKs" → ["AA", "KK", "AKs"]
//   - "JJ+, A5s+" → ["JJ+", "A5s+"]
func ParseRange(rangeStr string) (RangeSpec, error) {
	var spec RangeSpec
	for _, part := range strings.Split(rangeStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := ParseToken(part); err != nil {
			return nil, err
		}
		spec = append(spec, part)
	}
	if len(spec) == 0 {
		return nil, errorsmod.Wrapf(ErrEmptyRange, "range %q has no tokens", rangeStr)
	}
	return spec, nil
}

// Expand returns the hand specifications a token denotes, lowest rank first.
//   - "JJ+"     → JJ, QQ, KK, AA
//   - "66-33"   → 33, 44, 55, 66
//   - "A5s+"    → A5s, A6s, ..., AKs
//   - "J5o-J3o" → J3o, J4o, J5o
func Expand(t Token) []HandSpec {
	switch t.Kind {
	case ExactPair:
		return []HandSpec{{High: t.Low, Low: t.Low, Shape: Pair}}
	case PairRange:
		specs := make([]HandSpec, 0, int(t.High-t.Low)+1)
		for r := int(t.Low); r <= int(t.High); r++ {
			rank := cards.Rank(r)
			specs = append(specs, HandSpec{High: rank, Low: rank, Shape: Pair})
		}
		return specs
	case ExactTwoCard:
		if t.Shape == FixedPair {
			return []HandSpec{fixedSpec(t.Hand)}
		}
		return []HandSpec{{High: t.Pivot, Low: t.Low, Shape: t.Shape}}
	case SuitedRange, OffsuitedRange:
		specs := make([]HandSpec, 0, int(t.High-t.Low)+1)
		for r := int(t.Low); r <= int(t.High); r++ {
			specs = append(specs, HandSpec{High: t.Pivot, Low: cards.Rank(r), Shape: t.Shape})
		}
		return specs
	default:
		return nil
	}
}

func fixedSpec(h cards.Hand) HandSpec {
	hi, lo := h.First.Rank, h.Second.Rank
	if hi < lo {
		hi, lo = lo, hi
	}
	return HandSpec{High: hi, Low: lo, Shape: FixedPair, Fixed: h}
}

// ExpandSpec parses and expands every token of a range spec.
// The result is the concatenation of the per-token expansions in token order;
// duplicates across tokens are kept.
func ExpandSpec(spec RangeSpec) ([]HandSpec, error) {
	var out []HandSpec
	for _, s := range spec {
		t, err := ParseToken(s)
		if err != nil {
			return nil, err
		}
		out = append(out, Expand(t)...)
	}
	return out, nil
}

// Instantiate generates every concrete suit assignment for a hand spec
//   - pair:      6 hands (one per unordered pair of suits)
//   - suited:    4 hands (one per suit)
//   - offsuited: 12 hands (every ordered pair of distinct suits)
//   - fixed:     the pinned hand itself
func Instantiate(spec HandSpec) []cards.Hand {
	suits := cards.AllSuits

	switch spec.Shape {
	case FixedPair:
		return []cards.Hand{spec.Fixed}
	case Pair:
		hands := make([]cards.Hand, 0, 6)
		for i := 0; i < len(suits); i++ {
			for j := i + 1; j < len(suits); j++ {
				hands = append(hands, cards.Hand{
					First:  cards.NewCard(spec.High, suits[i]),
					Second: cards.NewCard(spec.High, suits[j]),
				})
			}
		}
		return hands
	case Suited:
		hands := make([]cards.Hand, 0, 4)
		for _, suit := range suits {
			hands = append(hands, cards.Hand{
				First:  cards.NewCard(spec.High, suit),
				Second: cards.NewCard(spec.Low, suit),
			})
		}
		return hands
	case Offsuited:
		hands := make([]cards.Hand, 0, 12)
		for _, s1 := range suits {
			for _, s2 := range suits {
				if s1 != s2 {
					hands = append(hands, cards.Hand{
						First:  cards.NewCard(spec.High, s1),
						Second: cards.NewCard(spec.Low, s2),
					})
				}
			}
		}
		return hands
	default:
		return nil
	}
}

// InstantiateSpec expands a range spec all the way to concrete hands.
// It fails with ErrEmptyRange when the spec yields no hands.
func InstantiateSpec(spec RangeSpec) ([]cards.Hand, error) {
	specs, err := ExpandSpec(spec)
	if err != nil {
		return nil, err
	}

	var hands []cards.Hand
	for _, hs := range specs {
		hands = append(hands, Instantiate(hs)...)
	}
	if len(hands) == 0 {
		return nil, errorsmod.Wrapf(ErrEmptyRange, "range %v has no hands", []string(spec))
	}
	return hands, nil
}
