// Package equity aggregates per-combination evaluator results into range-vs-range equity.
package equity

import (
	"context"
	"iter"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"golang.org/x/sync/errgroup"

	"github.com/behrlich/poker-equity/pkg/cards"
	"github.com/behrlich/poker-equity/pkg/combo"
	"github.com/behrlich/poker-equity/pkg/notation"
	"github.com/behrlich/poker-equity/pkg/oracle"
)

// Calculator computes equity for players holding hand ranges
type Calculator struct {
	evaluator  oracle.Evaluator
	workers    int
	iterations int
	logger     log.Logger
}

// Option configures a Calculator
type Option func(*Calculator)

// WithWorkers sets how many combinations are evaluated concurrently.
// Values below 1 mean a single worker.
func WithWorkers(n int) Option {
	return func(c *Calculator) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithIterations sets a global Monte Carlo budget shared by all combinations.
// 0 asks the evaluator for exhaustive enumeration.
func WithIterations(budget int) Option {
	return func(c *Calculator) {
		if budget < 0 {
			budget = 0
		}
		c.iterations = budget
	}
}

// WithLogger sets the structured logger
func WithLogger(logger log.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger.With("module", "equity")
		}
	}
}

// NewCalculator creates a calculator backed by evaluator.
// A nil evaluator selects the Hold'em evaluator.
func NewCalculator(evaluator oracle.Evaluator, opts ...Option) *Calculator {
	if evaluator == nil {
		evaluator = oracle.NewHoldem(0)
	}
	c := &Calculator{
		evaluator: evaluator,
		workers:   1,
		logger:    log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ComputeEquity returns each player's equity in percent, summing to 100
func (c *Calculator) ComputeEquity(ctx context.Context, ranges []notation.RangeSpec, dead, board []cards.Card) ([]float64, error) {
	res, err := c.Compute(ctx, ranges, dead, board)
	if err != nil {
		return nil, err
	}
	return res.Equity, nil
}

// ComputeMatchup computes equity for a parsed matchup
func (c *Calculator) ComputeMatchup(ctx context.Context, m *notation.Matchup) (*Result, error) {
	return c.Compute(ctx, m.Ranges, m.Dead, m.Board)
}

// Compute expands every range, evaluates each collision-free combination of hands
// and aggregates the results weighted by the deals behind each combination.
// All ranges are parsed before the evaluator is called.
func (c *Calculator) Compute(ctx context.Context, ranges []notation.RangeSpec, dead, board []cards.Card) (*Result, error) {
	if len(ranges) == 0 {
		return nil, errorsmod.Wrap(ErrEmptyRange, "no players")
	}

	lists := make([][]cards.Hand, len(ranges))
	for i, r := range ranges {
		hands, err := notation.InstantiateSpec(r)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "player %d", i)
		}
		lists[i] = hands
		c.logger.Debug("expanded range", "player", i, "range", []string(r), "hands", len(hands))
	}

	variants := combo.Variants(lists)
	exclude := cards.NewCardSet(dead...).Union(cards.NewCardSet(board...))
	job := evalJob{
		evaluator:  c.evaluator,
		dead:       dead,
		board:      board,
		iterations: perCombination(c.iterations, variants),
	}

	start := time.Now()
	acc, err := c.run(ctx, job, combo.Enumerate(lists, exclude), len(ranges))
	if err != nil {
		return nil, err
	}

	res, err := acc.Result()
	if err != nil {
		return nil, errorsmod.Wrapf(err, "%d candidate combinations", variants)
	}

	c.logger.Info("equity computed",
		"players", len(ranges),
		"variants", variants,
		"combinations", res.Combinations,
		"deals", res.Deals,
		"workers", c.workers,
		"elapsed", time.Since(start).String(),
	)
	return res, nil
}

// perCombination splits a global iteration budget evenly over the candidate combinations
func perCombination(budget int, variants int64) int {
	if budget <= 0 || variants <= 0 {
		return 0
	}
	n := int64(budget) / variants
	if n < 1 {
		n = 1
	}
	return int(n)
}

// evalJob carries what is shared by every evaluator call of one computation
type evalJob struct {
	evaluator  oracle.Evaluator
	dead       []cards.Card
	board      []cards.Card
	iterations int
}

// evaluate scores one combination and folds it into acc
func (j evalJob) evaluate(ctx context.Context, cmb combo.Combination, acc *Accumulator) error {
	res, err := j.evaluator.Evaluate(ctx, oracle.Request{
		Game:       oracle.Holdem,
		Hands:      cmb.Hands,
		Board:      j.board,
		Dead:       j.dead,
		Iterations: j.iterations,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &EvaluatorError{Combination: cmb, Err: err}
	}
	if err := acc.Add(res); err != nil {
		return &EvaluatorError{Combination: cmb, Err: err}
	}
	return nil
}

func (c *Calculator) run(ctx context.Context, job evalJob, seq iter.Seq[combo.Combination], players int) (*Accumulator, error) {
	if c.workers <= 1 {
		acc := NewAccumulator(players)
		for cmb := range seq {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := job.evaluate(ctx, cmb, acc); err != nil {
				return nil, err
			}
		}
		return acc, nil
	}

	// One producer feeds the combinations to the workers; every combination is
	// received by exactly one worker, which folds it into its own accumulator.
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan combo.Combination, c.workers)
	partials := make([]*Accumulator, c.workers)

	g.Go(func() error {
		defer close(jobs)
		for cmb := range seq {
			select {
			case jobs <- cmb:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := range partials {
		acc := NewAccumulator(players)
		partials[w] = acc
		g.Go(func() error {
			for cmb := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := job.evaluate(gctx, cmb, acc); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := NewAccumulator(players)
	for _, p := range partials {
		total.Merge(p)
	}
	return total, nil
}

// ComputeEquity computes equity percentages with the Hold'em evaluator.
// iterations is the global Monte Carlo budget; 0 enumerates every board.
func ComputeEquity(ctx context.Context, ranges [][]string, dead, board []cards.Card, iterations int) ([]float64, error) {
	specs := make([]notation.RangeSpec, len(ranges))
	for i, r := range ranges {
		specs[i] = notation.RangeSpec(r)
	}
	return NewCalculator(oracle.NewHoldem(0), WithIterations(iterations)).ComputeEquity(ctx, specs, dead, board)
}
