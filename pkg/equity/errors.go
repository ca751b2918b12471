package equity

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/behrlich/poker-equity/pkg/combo"
	"github.com/behrlich/poker-equity/pkg/notation"
)

// Codespace is the error codespace of the equity package
const Codespace = "equity"

var (
	// ErrEmptyRange is returned when there are no players or a player's range has no hands
	ErrEmptyRange = notation.ErrEmptyRange
	// ErrNoValidCombination is returned when every assignment of hands collides
	ErrNoValidCombination = errorsmod.Register(Codespace, 1400, "no valid combination")
	// ErrEvaluator matches every EvaluatorError
	ErrEvaluator = errorsmod.Register(Codespace, 1401, "evaluator failure")
)

// EvaluatorError reports a failure of the evaluator on one combination.
// The evaluator's own error stays reachable through errors.Is and errors.As.
type EvaluatorError struct {
	Combination combo.Combination
	Err         error
}

func (e *EvaluatorError) Error() string {
	return fmt.Sprintf("%s on combination %d (%s): %v", ErrEvaluator.Error(), e.Combination.Seq, e.Combination, e.Err)
}

func (e *EvaluatorError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrEvaluator) hold for every EvaluatorError
func (e *EvaluatorError) Is(target error) bool {
	return target == ErrEvaluator
}
