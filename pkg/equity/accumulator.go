package equity

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/behrlich/poker-equity/pkg/oracle"
)

// Accumulator folds evaluator results into per-player totals.
// All totals are integers, so merging partial accumulators is exact in any order.
type Accumulator struct {
	players      []oracle.PlayerStats
	deals        int64
	combinations int64
}

// NewAccumulator returns an empty accumulator for n players
func NewAccumulator(n int) *Accumulator {
	return &Accumulator{players: make([]oracle.PlayerStats, n)}
}

// Add folds one combination's result. A player's weighted contribution is its
// per-deal pot share times the deals evaluated, i.e. its raw share count.
func (a *Accumulator) Add(res oracle.Result) error {
	if len(res.Players) != len(a.players) {
		return fmt.Errorf("evaluator returned %d player results for %d players", len(res.Players), len(a.players))
	}
	if res.Deals < 0 {
		return fmt.Errorf("evaluator returned negative deal count %d", res.Deals)
	}
	for i, p := range res.Players {
		a.players[i].Wins += p.Wins
		a.players[i].Ties += p.Ties
		a.players[i].Shares += p.Shares
	}
	a.deals += res.Deals
	a.combinations++
	return nil
}

// Merge adds another accumulator's totals into a
func (a *Accumulator) Merge(o *Accumulator) {
	for i, p := range o.players {
		a.players[i].Wins += p.Wins
		a.players[i].Ties += p.Ties
		a.players[i].Shares += p.Shares
	}
	a.deals += o.deals
	a.combinations += o.combinations
}

// Combinations returns the number of results folded so far
func (a *Accumulator) Combinations() int64 {
	return a.combinations
}

// Result normalizes the totals into percentages
func (a *Accumulator) Result() (*Result, error) {
	if a.combinations == 0 {
		return nil, errorsmod.Wrap(ErrNoValidCombination, "no combination was evaluated")
	}

	var total int64
	for _, p := range a.players {
		total += p.Shares
	}
	if total <= 0 {
		return nil, errorsmod.Wrapf(ErrNoValidCombination, "%d combinations produced no pot shares", a.combinations)
	}

	res := &Result{
		Equity:       make([]float64, len(a.players)),
		Win:          make([]float64, len(a.players)),
		Tie:          make([]float64, len(a.players)),
		Combinations: a.combinations,
		Deals:        a.deals,
	}
	for i, p := range a.players {
		res.Equity[i] = 100.0 * float64(p.Shares) / float64(total)
		res.Win[i] = 100.0 * p.WinFraction(a.deals)
		res.Tie[i] = 100.0 * p.TieFraction(a.deals)
	}
	return res, nil
}

// Result is the aggregated outcome of an equity computation
type Result struct {
	// Equity is each player's share of the pot in percent; the values sum to 100
	Equity []float64
	// Win and Tie are the percentages of all evaluated deals a player won outright or split
	Win []float64
	Tie []float64

	Combinations int64
	Deals        int64
}
