package services

import (
	"clinicdesk/internal/models"
	"clinicdesk/internal/repositories"
)

// CustomerService handles business logic related to customers.
type CustomerService struct {
	repo repositories.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{
		repo: repo,
	}
}

// GetAllCustomers retrieves all customers.
func (s *CustomerService) GetAllCustomers() ([]models.Customer, error) {
	return s.repo.GetAll()
}

// GetCustomerByID retrieves a single customer by id.
func (s *CustomerService) GetCustomerByID(id uint) (*models.Customer, error) {
	return s.repo.GetByID(id)
}

// FindCustomerByPhone resolves a phone number to a customer record.
func (s *CustomerService) FindCustomerByPhone(phone string) (*models.Customer, error) {
	return s.repo.GetByPhone(phone)
}

// CreateCustomer creates a new customer.
func (s *CustomerService) CreateCustomer(customer *models.Customer) error {
	return s.repo.Create(customer)
}

// UpdateCustomer updates an existing customer.
func (s *CustomerService) UpdateCustomer(customer *models.Customer) error {
	return s.repo.Update(customer)
}

// DeleteCustomer deletes a customer and, by explicit cascade, their orders.
func (s *CustomerService) DeleteCustomer(id uint) error {
	return s.repo.Delete(id)
}
