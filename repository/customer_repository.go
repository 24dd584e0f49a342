package repository

import "github.com/muniu/numibank/domain"

// CustomerRepository is the bank's customer registry.
type CustomerRepository interface {
	// Create stores a new customer. Fails with
	// *domain.DuplicateCustomerError when the id is taken.
	Create(customer *domain.Customer) error
	// FindByID returns the customer for the given id. Fails with
	// *domain.CustomerNotFoundError when absent.
	FindByID(id string) (*domain.Customer, error)
}
