package repository

import (
	"sync"

	"github.com/muniu/numibank/domain"
)

// CustomerRepositoryMemory is an in-memory implementation of
// CustomerRepository. State lives for the lifetime of the process.
type CustomerRepositoryMemory struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer
}

// NewCustomerRepositoryMemory creates an empty in-memory registry.
func NewCustomerRepositoryMemory() *CustomerRepositoryMemory {
	return &CustomerRepositoryMemory{
		customers: make(map[string]*domain.Customer),
	}
}

// Create stores the customer, enforcing id uniqueness.
func (r *CustomerRepositoryMemory) Create(customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.customers[customer.ID]; exists {
		return &domain.DuplicateCustomerError{ID: customer.ID}
	}
	r.customers[customer.ID] = customer
	return nil
}

// FindByID returns the stored customer for the given id.
func (r *CustomerRepositoryMemory) FindByID(id string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.customers[id]
	if !ok {
		return nil, &domain.CustomerNotFoundError{ID: id}
	}
	return customer, nil
}
