package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Loan is a single lending agreement. Interest is flat simple
// interest, charged once on the principal at creation; it does not
// accrue over time or compound.
type Loan struct {
	ID           uuid.UUID       `json:"id"`
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	AmountRepaid decimal.Decimal `json:"amount_repaid"`
}

// NewLoan validates principal and rate against the given limits and
// returns a loan with no repayments.
func NewLoan(principal, rate decimal.Decimal, limits Limits) (*Loan, error) {
	if err := ValidateAmount(principal); err != nil {
		return nil, err
	}
	if err := ValidateLoanAmount(principal, limits.MinLoanAmount, limits.MaxLoanAmount); err != nil {
		return nil, err
	}
	if err := ValidateInterestRate(rate, limits.MaxInterestRate); err != nil {
		return nil, err
	}

	return &Loan{
		ID:           uuid.New(),
		Principal:    principal,
		InterestRate: rate,
		AmountRepaid: decimal.Zero,
	}, nil
}

// TotalOwed returns principal plus flat interest.
func (l *Loan) TotalOwed() decimal.Decimal {
	return l.Principal.Add(l.Principal.Mul(l.InterestRate))
}

// OutstandingDebt returns the remaining debt, floored at zero.
func (l *Loan) OutstandingDebt() decimal.Decimal {
	debt := l.TotalOwed().Sub(l.AmountRepaid)
	if debt.IsNegative() {
		return decimal.Zero
	}
	return debt
}

// ApplyRepayment validates amount against the current outstanding
// debt and, only if valid, adds it to the repaid total. Returns the
// new outstanding debt. On failure the loan is left untouched.
func (l *Loan) ApplyRepayment(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	if err := ValidateRepayment(amount, l.OutstandingDebt()); err != nil {
		return decimal.Zero, err
	}

	l.AmountRepaid = l.AmountRepaid.Add(amount)
	return l.OutstandingDebt(), nil
}
