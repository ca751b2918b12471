package oracle

import (
	"context"
	"math/rand/v2"

	errorsmod "cosmossdk.io/errors"
	poker "github.com/paulhankin/poker"

	"github.com/behrlich/poker-equity/pkg/cards"
)

// boardSize is the number of community cards in a complete Hold'em board
const boardSize = 5

// ctxCheckInterval is how many deals are scored between context checks
const ctxCheckInterval = 4096

// phCards maps a card index to its evaluator-library card
var phCards [cards.DeckSize]poker.Card

func init() {
	for i := 0; i < cards.DeckSize; i++ {
		c, err := toPH(cards.FromIndex(i))
		if err != nil {
			panic(err)
		}
		phCards[i] = c
	}
}

// toPH converts a card to the library representation.
// Library ranks run 1..13 with the ace as 1.
func toPH(c cards.Card) (poker.Card, error) {
	var s poker.Suit
	switch c.Suit {
	case cards.Clubs:
		s = poker.Club
	case cards.Diamonds:
		s = poker.Diamond
	case cards.Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}
	r := poker.Rank(c.Rank) + 2
	if c.Rank == cards.Ace {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}

// HoldemEvaluator scores Texas Hold'em hands with the 7-card evaluator of
// github.com/paulhankin/poker.
type HoldemEvaluator struct {
	seed uint64
}

// NewHoldem returns a Hold'em evaluator. The seed drives Monte Carlo sampling;
// identical requests with the same seed sample identical boards.
func NewHoldem(seed uint64) *HoldemEvaluator {
	return &HoldemEvaluator{seed: seed}
}

// Evaluate deals out the rest of the board and counts wins, ties and pot shares
func (e *HoldemEvaluator) Evaluate(ctx context.Context, req Request) (Result, error) {
	if req.Game != Holdem {
		return Result{}, errorsmod.Wrapf(ErrUnsupportedGame, "game %s", req.Game)
	}
	used, err := validate(req)
	if err != nil {
		return Result{}, err
	}

	var remaining []cards.Card
	for i := 0; i < cards.DeckSize; i++ {
		if c := cards.FromIndex(i); !used.Has(c) {
			remaining = append(remaining, c)
		}
	}
	need := boardSize - len(req.Board)
	if need > len(remaining) {
		return Result{}, errorsmod.Wrapf(ErrInvalidRequest, "%d cards left, board needs %d", len(remaining), need)
	}

	t := newTally(req)
	if req.Iterations > 0 {
		err = t.sample(ctx, remaining, need, req.Iterations, rand.New(rand.NewPCG(e.seed, uint64(used))))
	} else {
		err = t.enumerate(ctx, remaining, need)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Deals: t.deals, Players: t.players}, nil
}

// validate checks the request layout and returns every card it uses
func validate(req Request) (cards.CardSet, error) {
	if len(req.Hands) == 0 || len(req.Hands) > MaxPlayers {
		return 0, errorsmod.Wrapf(ErrInvalidRequest, "%d players (want 1..%d)", len(req.Hands), MaxPlayers)
	}
	if len(req.Board) > boardSize {
		return 0, errorsmod.Wrapf(ErrInvalidRequest, "board has %d cards (max %d)", len(req.Board), boardSize)
	}
	if req.Iterations < 0 {
		return 0, errorsmod.Wrapf(ErrInvalidRequest, "negative iteration count %d", req.Iterations)
	}

	var used cards.CardSet
	add := func(where string, c cards.Card) error {
		if !c.Rank.Valid() || !c.Suit.Valid() {
			return errorsmod.Wrapf(ErrInvalidRequest, "%s card %v out of range", where, c)
		}
		if used.Has(c) {
			return errorsmod.Wrapf(ErrInvalidRequest, "duplicate card %s in %s", c, where)
		}
		used = used.Add(c)
		return nil
	}
	for _, h := range req.Hands {
		if err := add("hands", h.First); err != nil {
			return 0, err
		}
		if err := add("hands", h.Second); err != nil {
			return 0, err
		}
	}
	for _, c := range req.Board {
		if err := add("board", c); err != nil {
			return 0, err
		}
	}
	for _, c := range req.Dead {
		if err := add("dead", c); err != nil {
			return 0, err
		}
	}
	return used, nil
}

// tally scores deals for a fixed set of hands
type tally struct {
	holes   [][2]poker.Card
	board   [boardSize]poker.Card
	known   int
	scores  []int16
	players []PlayerStats
	deals   int64
}

func newTally(req Request) *tally {
	t := &tally{
		holes:   make([][2]poker.Card, len(req.Hands)),
		known:   len(req.Board),
		scores:  make([]int16, len(req.Hands)),
		players: make([]PlayerStats, len(req.Hands)),
	}
	for i, h := range req.Hands {
		t.holes[i] = [2]poker.Card{phCards[h.First.Index()], phCards[h.Second.Index()]}
	}
	for i, c := range req.Board {
		t.board[i] = phCards[c.Index()]
	}
	return t
}

// score evaluates the current board; higher library scores are stronger
func (t *tally) score() {
	var seven [7]poker.Card
	copy(seven[:boardSize], t.board[:])

	best := int16(-1 << 15)
	winners := 0
	for i, hole := range t.holes {
		seven[5], seven[6] = hole[0], hole[1]
		s := poker.Eval7(&seven)
		t.scores[i] = s
		switch {
		case s > best:
			best, winners = s, 1
		case s == best:
			winners++
		}
	}

	share := int64(ShareScale / winners)
	for i, s := range t.scores {
		if s != best {
			continue
		}
		if winners == 1 {
			t.players[i].Wins++
		} else {
			t.players[i].Ties++
		}
		t.players[i].Shares += share
	}
	t.deals++
}

// enumerate scores every completion of the board from the remaining cards
func (t *tally) enumerate(ctx context.Context, remaining []cards.Card, need int) error {
	if need == 0 {
		t.score()
		return nil
	}

	idx := make([]int, need)
	for i := range idx {
		idx[i] = i
	}
	m := len(remaining)
	for {
		for i, j := range idx {
			t.board[t.known+i] = phCards[remaining[j].Index()]
		}
		t.score()
		if t.deals%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		// Advance to the next k-subset in lexicographic order
		i := need - 1
		for i >= 0 && idx[i] == m-need+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < need; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// sample scores n random completions of the board
func (t *tally) sample(ctx context.Context, remaining []cards.Card, need, n int, rng *rand.Rand) error {
	deck := make([]cards.Card, len(remaining))
	copy(deck, remaining)

	for iter := 0; iter < n; iter++ {
		// Partial Fisher-Yates: the first need cards become the runout
		for i := 0; i < need; i++ {
			j := i + rng.IntN(len(deck)-i)
			deck[i], deck[j] = deck[j], deck[i]
			t.board[t.known+i] = phCards[deck[i].Index()]
		}
		t.score()
		if t.deals%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Describe names the best five-card hand a player makes on a complete board
func Describe(hand cards.Hand, board []cards.Card) (string, error) {
	if len(board) != boardSize {
		return "", errorsmod.Wrapf(ErrInvalidRequest, "describe needs a %d card board, got %d", boardSize, len(board))
	}
	all := make([]poker.Card, 0, 7)
	for _, c := range board {
		all = append(all, phCards[c.Index()])
	}
	all = append(all, phCards[hand.First.Index()], phCards[hand.Second.Index()])
	return poker.Describe(all)
}
