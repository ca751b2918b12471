// Package oracle defines the hand-evaluation capability consumed by the equity
// aggregator, and a Texas Hold'em implementation of it.
//
// An evaluator receives one concrete hand per player together with the board and
// dead cards, deals out the rest of the board (exhaustively or by sampling), and
// reports per-player outcome counts over the deals it evaluated.
package oracle

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/behrlich/poker-equity/pkg/cards"
)

// Codespace is the error codespace of the oracle package
const Codespace = "oracle"

var (
	// ErrInvalidRequest is returned for a malformed board, dead-card set or hand list
	ErrInvalidRequest = errorsmod.Register(Codespace, 1300, "invalid evaluation request")
	// ErrUnsupportedGame is returned for a game variant the evaluator cannot score
	ErrUnsupportedGame = errorsmod.Register(Codespace, 1301, "unsupported game")
)

// ShareScale is the number of pot-share units per deal. A k-way split awards each
// tied player ShareScale/k units, which is integral for every k up to MaxPlayers.
const ShareScale = 2520

// MaxPlayers is the largest table an evaluator has to support
const MaxPlayers = 10

// Game tags the poker variant of a request
type Game uint8

const (
	Holdem Game = iota
)

// String returns the game tag
func (g Game) String() string {
	switch g {
	case Holdem:
		return "holdem"
	default:
		return "unknown"
	}
}

// Request is one evaluator call
type Request struct {
	Game  Game
	Hands []cards.Hand
	Board []cards.Card
	Dead  []cards.Card
	// Iterations is the number of sampled deals; 0 asks for exhaustive enumeration
	Iterations int
}

// PlayerStats are one player's outcome counts over the deals of a Result
type PlayerStats struct {
	Wins   int64 // deals won outright
	Ties   int64 // deals split with at least one other player
	Shares int64 // pot shares won, in ShareScale units per deal
}

// WinFraction returns the fraction of deals won outright
func (p PlayerStats) WinFraction(deals int64) float64 {
	if deals == 0 {
		return 0
	}
	return float64(p.Wins) / float64(deals)
}

// TieFraction returns the fraction of deals tied
func (p PlayerStats) TieFraction(deals int64) float64 {
	if deals == 0 {
		return 0
	}
	return float64(p.Ties) / float64(deals)
}

// EV returns the expected fraction of the pot per deal
func (p PlayerStats) EV(deals int64) float64 {
	if deals == 0 {
		return 0
	}
	return float64(p.Shares) / (float64(deals) * ShareScale)
}

// Result is the outcome of one evaluator call
type Result struct {
	Deals   int64
	Players []PlayerStats
}

// Evaluator scores a fixed assignment of hands
type Evaluator interface {
	Evaluate(ctx context.Context, req Request) (Result, error)
}

// EvaluatorFunc adapts a function to the Evaluator interface
type EvaluatorFunc func(ctx context.Context, req Request) (Result, error)

// Evaluate calls f(ctx, req)
func (f EvaluatorFunc) Evaluate(ctx context.Context, req Request) (Result, error) {
	return f(ctx, req)
}
