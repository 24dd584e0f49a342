package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanInfo is a point-in-time view of a single loan.
type LoanInfo struct {
	ID              uuid.UUID       `json:"id"`
	Principal       decimal.Decimal `json:"principal"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	AmountRepaid    decimal.Decimal `json:"amount_repaid"`
	OutstandingDebt decimal.Decimal `json:"outstanding_debt"`
}

// CustomerInfo is a point-in-time view of a customer and their
// loans, safe to serialize and cache.
type CustomerInfo struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Loans                []LoanInfo      `json:"loans"`
	TotalOutstandingDebt decimal.Decimal `json:"total_outstanding_debt"`
	TotalRepaid          decimal.Decimal `json:"total_repaid"`
}

// Info snapshots the customer's current state.
func (c *Customer) Info() CustomerInfo {
	info := CustomerInfo{
		ID:                   c.ID,
		Name:                 c.Name,
		Loans:                make([]LoanInfo, 0, len(c.Loans)),
		TotalOutstandingDebt: c.TotalOutstandingDebt(),
		TotalRepaid:          c.TotalRepaid(),
	}
	for _, l := range c.Loans {
		info.Loans = append(info.Loans, LoanInfo{
			ID:              l.ID,
			Principal:       l.Principal,
			InterestRate:    l.InterestRate,
			AmountRepaid:    l.AmountRepaid,
			OutstandingDebt: l.OutstandingDebt(),
		})
	}
	return info
}
