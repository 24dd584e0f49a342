package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer owns an append-only sequence of loans in issuance order.
// Loans are never removed or reordered; a fully repaid loan stays in
// the ledger with zero outstanding debt.
type Customer struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Loans []*Loan `json:"loans"`
}

// NewCustomer returns a customer with no loans.
func NewCustomer(id, name string) *Customer {
	return &Customer{ID: id, Name: name}
}

// AddLoan creates a loan via NewLoan and appends it to the
// customer's ledger. Validation failures propagate unchanged and
// leave the ledger untouched.
func (c *Customer) AddLoan(principal, rate decimal.Decimal, limits Limits) (*Loan, error) {
	loan, err := NewLoan(principal, rate, limits)
	if err != nil {
		return nil, err
	}
	c.Loans = append(c.Loans, loan)
	return loan, nil
}

// Loan returns the owned loan with the given id.
func (c *Customer) Loan(id uuid.UUID) (*Loan, error) {
	for _, l := range c.Loans {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, &LoanNotFoundError{ID: id.String()}
}

// Repay applies a repayment to the identified loan and returns its
// new outstanding debt.
func (c *Customer) Repay(loanID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	loan, err := c.Loan(loanID)
	if err != nil {
		return decimal.Zero, err
	}
	return loan.ApplyRepayment(amount)
}

// TotalOutstandingDebt sums outstanding debt across all loans.
func (c *Customer) TotalOutstandingDebt() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Loans {
		total = total.Add(l.OutstandingDebt())
	}
	return total
}

// TotalRepaid sums repayments across all loans.
func (c *Customer) TotalRepaid() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Loans {
		total = total.Add(l.AmountRepaid)
	}
	return total
}
