package budget

import (
	"errors"
	"fmt"
)

var (
	// ErrBudgetExceeded indicates a scope's cost cap was crossed.
	ErrBudgetExceeded = errors.New("budget exceeded")

	// ErrTokenLimit indicates a scope's token cap was crossed.
	ErrTokenLimit = errors.New("token limit reached")
)

// BudgetExceededError reports a cost cap breach with the amounts involved.
type BudgetExceededError struct {
	// CurrentCostUSD is the cost accumulated within the scope.
	CurrentCostUSD float64

	// MaxCostUSD is the scope's cost cap.
	MaxCostUSD float64
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("budget exceeded: $%.4f > $%.4f", e.CurrentCostUSD, e.MaxCostUSD)
}

func (e *BudgetExceededError) Unwrap() error {
	return ErrBudgetExceeded
}

// TokenLimitError reports a token cap breach with the counts involved.
type TokenLimitError struct {
	// CurrentTokens is the token count accumulated within the scope.
	CurrentTokens int

	// MaxTokens is the scope's token cap.
	MaxTokens int
}

func (e *TokenLimitError) Error() string {
	return fmt.Sprintf("token limit exceeded: %d > %d", e.CurrentTokens, e.MaxTokens)
}

func (e *TokenLimitError) Unwrap() error {
	return ErrTokenLimit
}
