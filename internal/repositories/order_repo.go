package repositories

import "clinicdesk/internal/models"

// OrderRepository defines the interface for order aggregate data access.
// Create and Update treat the order row and its line-items as one atomic
// unit; Delete cascades over both child tables.
type OrderRepository interface {
	Create(order *models.Order, services []models.OrderServiceLine, products []models.OrderProductLine) error
	Update(order *models.Order, services []models.OrderServiceLine, products []models.OrderProductLine) error
	GetAll() ([]models.OrderSummary, error)
	GetByID(id uint) (*models.OrderDetails, error)
	GetByUserID(userID uint) ([]models.OrderSummary, error)
	Delete(id uint) error
	AddServiceLine(line *models.OrderServiceLine) error
	AddProductLine(line *models.OrderProductLine) error
	DeleteServiceLine(lineID uint) error
	DeleteProductLine(lineID uint) error
	SalesSummary() (*models.SalesSummary, error)
}
