package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvalidAmountError reports an amount that must be strictly positive
// but is not (zero or negative).
type InvalidAmountError struct {
	Amount decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %s: only positive values are allowed", e.Amount)
}

// InvalidLoanAmountError reports a principal outside the configured
// inclusive [Min, Max] bounds.
type InvalidLoanAmountError struct {
	Amount decimal.Decimal
	Min    decimal.Decimal
	Max    decimal.Decimal
}

func (e *InvalidLoanAmountError) Error() string {
	return fmt.Sprintf("invalid loan amount %s: must be between %s and %s", e.Amount, e.Min, e.Max)
}

// InvalidInterestRateError reports a rate that is negative or above
// the configured ceiling.
type InvalidInterestRateError struct {
	Rate decimal.Decimal
	Max  decimal.Decimal
}

func (e *InvalidInterestRateError) Error() string {
	return fmt.Sprintf("invalid interest rate %s: must be between 0 and %s", e.Rate, e.Max)
}

// OverpaymentError reports a repayment larger than the outstanding
// debt on the targeted loan.
type OverpaymentError struct {
	Amount      decimal.Decimal
	Outstanding decimal.Decimal
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("repayment %s exceeds outstanding debt %s", e.Amount, e.Outstanding)
}

// CustomerNotFoundError reports a lookup by an unknown customer id.
type CustomerNotFoundError struct {
	ID string
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer with ID %s does not exist", e.ID)
}

// LoanNotFoundError reports a lookup by an unknown loan id.
type LoanNotFoundError struct {
	ID string
}

func (e *LoanNotFoundError) Error() string {
	return fmt.Sprintf("loan with ID %s does not exist", e.ID)
}

// DuplicateCustomerError reports a registration collision.
type DuplicateCustomerError struct {
	ID string
}

func (e *DuplicateCustomerError) Error() string {
	return fmt.Sprintf("customer with ID %s already exists", e.ID)
}
