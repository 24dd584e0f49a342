package service

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/muniu/numibank/domain"
	"github.com/muniu/numibank/repository"
)

const customerInfoKeyPrefix = "customer_info:"

// BankService is the public facade over the customer registry:
// registering customers, issuing loans, processing repayments and
// answering debt queries. Lending requires prior registration; a
// lend against an unknown id fails with CustomerNotFoundError.
//
// A single mutex serializes every operation that reads or writes
// customer state, so two concurrent repayments against the same loan
// can never both pass the overpayment check.
type BankService struct {
	mu     sync.Mutex
	repo   repository.CustomerRepository
	cache  repository.CacheRepository
	logger logrus.FieldLogger
	limits domain.Limits
}

// NewBankService creates a BankService with the given registry,
// cache, logger and lending limits.
func NewBankService(
	repo repository.CustomerRepository,
	cache repository.CacheRepository,
	logger logrus.FieldLogger,
	limits domain.Limits,
) *BankService {
	return &BankService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		limits: limits,
	}
}

// CreateCustomer registers a new customer under the given id.
func (s *BankService) CreateCustomer(id, name string) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := domain.NewCustomer(id, name)
	if err := s.repo.Create(customer); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"customer_id": id,
		"name":        name,
	}).Info("customer registered")

	return customer, nil
}

// Lend issues a new loan to a registered customer. The principal
// must be within the configured bounds and the rate within [0, max].
// Validation failures leave the customer's ledger untouched.
func (s *BankService) Lend(customerID string, principal, rate decimal.Decimal) (*domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.repo.FindByID(customerID)
	if err != nil {
		return nil, err
	}

	loan, err := customer.AddLoan(principal, rate, s.limits)
	if err != nil {
		return nil, err
	}
	s.invalidateInfo(customerID)

	s.logger.WithFields(logrus.Fields{
		"customer_id":   customerID,
		"loan_id":       loan.ID,
		"principal":     principal,
		"interest_rate": rate,
	}).Info("loan granted")

	return loan, nil
}

// Repay applies a repayment to one identified loan and returns its
// new outstanding debt. Overpayments are rejected with no mutation.
func (s *BankService) Repay(customerID string, loanID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.repo.FindByID(customerID)
	if err != nil {
		return decimal.Zero, err
	}

	remaining, err := customer.Repay(loanID, amount)
	if err != nil {
		return decimal.Zero, err
	}
	s.invalidateInfo(customerID)

	s.logger.WithFields(logrus.Fields{
		"customer_id": customerID,
		"loan_id":     loanID,
		"amount":      amount,
		"outstanding": remaining,
	}).Info("repayment processed")

	return remaining, nil
}

// OutstandingDebt returns the customer's total outstanding debt
// across all loans.
func (s *BankService) OutstandingDebt(customerID string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.repo.FindByID(customerID)
	if err != nil {
		return decimal.Zero, err
	}
	return customer.TotalOutstandingDebt(), nil
}

// TotalRepaid returns the customer's total repayments across all
// loans.
func (s *BankService) TotalRepaid(customerID string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.repo.FindByID(customerID)
	if err != nil {
		return decimal.Zero, err
	}
	return customer.TotalRepaid(), nil
}

// CustomerInfo returns a snapshot of the customer and their loans.
// Snapshots are served from the cache when present; Lend and Repay
// invalidate the cached entry.
func (s *BankService) CustomerInfo(customerID string) (domain.CustomerInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := customerInfoKeyPrefix + customerID
	if cached, ok := s.cache.Get(key); ok {
		var info domain.CustomerInfo
		if err := json.Unmarshal([]byte(cached), &info); err == nil {
			return info, nil
		}
		// Unreadable entry, fall through and recompute.
		s.invalidateInfo(customerID)
	}

	customer, err := s.repo.FindByID(customerID)
	if err != nil {
		return domain.CustomerInfo{}, err
	}

	info := customer.Info()
	if encoded, err := json.Marshal(info); err == nil {
		if err := s.cache.Set(key, string(encoded)); err != nil {
			s.logger.WithError(err).Warn("failed to cache customer info")
		}
	}
	return info, nil
}

func (s *BankService) invalidateInfo(customerID string) {
	if err := s.cache.Delete(customerInfoKeyPrefix + customerID); err != nil {
		s.logger.WithError(err).Warn("failed to invalidate customer info cache")
	}
}
