package repositories

import "clinicdesk/internal/models"

// ServiceRepository defines the interface for catalog service data access.
type ServiceRepository interface {
	Create(service *models.Service) error
	GetAll() ([]models.Service, error)
	Update(service *models.Service) error
	Delete(id uint) error
}

// ProductRepository defines the interface for catalog product data access.
type ProductRepository interface {
	Create(product *models.Product) error
	GetAll() ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
}
