package repositories

import (
	"fmt"
	"sync"

	"clinicdesk/internal/models"
)

// MockCustomerRepository is an in-memory implementation of CustomerRepository.
type MockCustomerRepository struct {
	mu        sync.RWMutex
	customers map[uint]models.Customer
	nextID    uint
}

// NewMockCustomerRepository creates a new instance of MockCustomerRepository.
func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[uint]models.Customer),
	}
}

// Create adds a new customer, assigning an id when absent.
func (r *MockCustomerRepository) Create(customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if customer.UserID == 0 {
		r.nextID++
		customer.UserID = r.nextID
	} else if customer.UserID > r.nextID {
		r.nextID = customer.UserID
	}
	r.customers[customer.UserID] = *customer
	return nil
}

// GetAll returns all customers.
func (r *MockCustomerRepository) GetAll() ([]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		customers = append(customers, c)
	}
	return customers, nil
}

// GetByID returns a customer by id.
func (r *MockCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %d: %w", id, models.ErrNotFound)
	}
	return &customer, nil
}

// GetByPhone returns a customer by phone number.
func (r *MockCustomerRepository) GetByPhone(phone string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.PhoneNo == phone {
			customer := c
			return &customer, nil
		}
	}
	return nil, fmt.Errorf("customer with phone %s: %w", phone, models.ErrNotFound)
}

// Update replaces a stored customer.
func (r *MockCustomerRepository) Update(customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[customer.UserID]; !ok {
		return fmt.Errorf("customer %d: %w", customer.UserID, models.ErrNotFound)
	}
	r.customers[customer.UserID] = *customer
	return nil
}

// Delete removes a customer; deleting an absent id succeeds.
func (r *MockCustomerRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.customers, id)
	return nil
}
