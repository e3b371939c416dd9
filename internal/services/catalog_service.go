package services

import (
	"clinicdesk/internal/models"
	"clinicdesk/internal/repositories"
)

// CatalogService handles business logic for the service and product catalog.
type CatalogService struct {
	serviceRepo repositories.ServiceRepository
	productRepo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(serviceRepo repositories.ServiceRepository, productRepo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		serviceRepo: serviceRepo,
		productRepo: productRepo,
	}
}

// GetAllServices retrieves all catalog services.
func (s *CatalogService) GetAllServices() ([]models.Service, error) {
	return s.serviceRepo.GetAll()
}

// CreateService creates a new catalog service.
func (s *CatalogService) CreateService(service *models.Service) error {
	return s.serviceRepo.Create(service)
}

// UpdateService updates an existing catalog service.
func (s *CatalogService) UpdateService(service *models.Service) error {
	return s.serviceRepo.Update(service)
}

// DeleteService deletes a catalog service by id.
func (s *CatalogService) DeleteService(id uint) error {
	return s.serviceRepo.Delete(id)
}

// GetAllProducts retrieves all catalog products.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// CreateProduct creates a new catalog product.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	return s.productRepo.Create(product)
}

// UpdateProduct updates an existing catalog product.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	return s.productRepo.Update(product)
}

// DeleteProduct deletes a catalog product by id.
func (s *CatalogService) DeleteProduct(id uint) error {
	return s.productRepo.Delete(id)
}
