// Package combo enumerates collision-free assignments of hands to players.
package combo

import (
	"iter"
	"math"
	"strings"

	"github.com/behrlich/poker-equity/pkg/cards"
)

// Combination is one concrete hand per player, indexed by player position
type Combination struct {
	// Seq is the 0-based position of this combination among the surviving tuples
	Seq   int64
	Hands []cards.Hand
}

// Cards returns every card held by any player
func (c Combination) Cards() cards.CardSet {
	var s cards.CardSet
	for _, h := range c.Hands {
		s = s.Union(h.Set())
	}
	return s
}

// String returns the hands joined by " vs "
func (c Combination) String() string {
	parts := make([]string, len(c.Hands))
	for i, h := range c.Hands {
		parts[i] = h.String()
	}
	return strings.Join(parts, " vs ")
}

// Variants returns the size of the raw Cartesian product of the hand lists,
// saturating at math.MaxInt64
func Variants(lists [][]cards.Hand) int64 {
	if len(lists) == 0 {
		return 0
	}
	total := int64(1)
	for _, l := range lists {
		n := int64(len(l))
		if n == 0 {
			return 0
		}
		if total > math.MaxInt64/n {
			return math.MaxInt64
		}
		total *= n
	}
	return total
}

// Filter drops every hand that uses a card in exclude. The input lists are not modified.
func Filter(lists [][]cards.Hand, exclude cards.CardSet) [][]cards.Hand {
	out := make([][]cards.Hand, len(lists))
	for i, l := range lists {
		kept := make([]cards.Hand, 0, len(l))
		for _, h := range l {
			if !h.Set().Overlaps(exclude) {
				kept = append(kept, h)
			}
		}
		out[i] = kept
	}
	return out
}

// Enumerate yields every assignment of one hand per player such that no card is
// used twice and no card from exclude is used. Player 0 varies slowest.
// The sequence is lazy and can be ranged over any number of times.
func Enumerate(lists [][]cards.Hand, exclude cards.CardSet) iter.Seq[Combination] {
	return func(yield func(Combination) bool) {
		if len(lists) == 0 {
			return
		}
		filtered := Filter(lists, exclude)
		for _, l := range filtered {
			if len(l) == 0 {
				return
			}
		}

		n := len(filtered)
		current := make([]cards.Hand, n)
		var seq int64

		// Depth-first over players; a branch is cut as soon as a card repeats,
		// which yields the same order as filtering the full product.
		var walk func(depth int, used cards.CardSet) bool
		walk = func(depth int, used cards.CardSet) bool {
			if depth == n {
				hands := make([]cards.Hand, n)
				copy(hands, current)
				c := Combination{Seq: seq, Hands: hands}
				seq++
				return yield(c)
			}
			for _, h := range filtered[depth] {
				hs := h.Set()
				if used.Overlaps(hs) {
					continue
				}
				current[depth] = h
				if !walk(depth+1, used.Union(hs)) {
					return false
				}
			}
			return true
		}
		walk(0, 0)
	}
}

// Count returns the number of combinations Enumerate would yield
func Count(lists [][]cards.Hand, exclude cards.CardSet) int64 {
	var n int64
	for range Enumerate(lists, exclude) {
		n++
	}
	return n
}
