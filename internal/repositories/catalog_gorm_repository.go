package repositories

import (
	"fmt"

	"clinicdesk/internal/models"

	"gorm.io/gorm"
)

// GORMServiceRepository is a GORM implementation of ServiceRepository.
type GORMServiceRepository struct {
	db *gorm.DB
}

// NewGORMServiceRepository creates a new instance of GORMServiceRepository.
func NewGORMServiceRepository(db *gorm.DB) *GORMServiceRepository {
	return &GORMServiceRepository{
		db: db,
	}
}

// Create inserts a new catalog service. GORM fills the generated id.
func (r *GORMServiceRepository) Create(service *models.Service) error {
	if err := r.db.Create(service).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// GetAll retrieves all catalog services.
func (r *GORMServiceRepository) GetAll() ([]models.Service, error) {
	var services []models.Service
	if err := r.db.Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to get all services: %w", err)
	}
	return services, nil
}

// Update saves name and price.
func (r *GORMServiceRepository) Update(service *models.Service) error {
	result := r.db.Model(&models.Service{}).Where("service_id = ?", service.ServiceID).Updates(map[string]interface{}{
		"service_name":  service.ServiceName,
		"service_price": service.ServicePrice,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update service %d: %w", service.ServiceID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("service %d: %w", service.ServiceID, models.ErrNotFound)
	}
	return nil
}

// Delete removes a catalog service by id.
func (r *GORMServiceRepository) Delete(id uint) error {
	if err := r.db.Where("service_id = ?", id).Delete(&models.Service{}).Error; err != nil {
		return fmt.Errorf("failed to delete service %d: %w", id, err)
	}
	return nil
}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new catalog product.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetAll retrieves all catalog products.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// Update saves name, price and stock.
func (r *GORMProductRepository) Update(product *models.Product) error {
	result := r.db.Model(&models.Product{}).Where("product_id = ?", product.ProductID).Updates(map[string]interface{}{
		"product_name":  product.ProductName,
		"product_price": product.ProductPrice,
		"stock":         product.Stock,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ProductID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", product.ProductID, models.ErrNotFound)
	}
	return nil
}

// Delete removes a catalog product by id.
func (r *GORMProductRepository) Delete(id uint) error {
	if err := r.db.Where("product_id = ?", id).Delete(&models.Product{}).Error; err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}
