package domain

import "github.com/shopspring/decimal"

// Limits holds the lending bounds enforced when a loan is created.
type Limits struct {
	MinLoanAmount   decimal.Decimal
	MaxLoanAmount   decimal.Decimal
	MaxInterestRate decimal.Decimal
}

// Default lending bounds. Overridable via config or by constructing
// Limits directly.
var (
	DefaultMinLoanAmount   = decimal.NewFromInt(100)
	DefaultMaxLoanAmount   = decimal.NewFromInt(1_000_000)
	DefaultMaxInterestRate = decimal.NewFromInt(1) // 1.0 = 100% flat
)

// DefaultLimits returns the default lending bounds.
func DefaultLimits() Limits {
	return Limits{
		MinLoanAmount:   DefaultMinLoanAmount,
		MaxLoanAmount:   DefaultMaxLoanAmount,
		MaxInterestRate: DefaultMaxInterestRate,
	}
}
