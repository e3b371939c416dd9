package repositories

import "clinicdesk/internal/models"

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetAll() ([]models.Customer, error)
	GetByID(id uint) (*models.Customer, error)
	GetByPhone(phone string) (*models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id uint) error
}
