package repositories

import (
	"errors"
	"fmt"
	"time"

	"clinicdesk/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create inserts the order row and both line collections in one transaction.
// Line ordering follows the submitted sequence. Any failure rolls the whole
// aggregate back; no partial order is ever visible.
func (r *GORMOrderRepository) Create(order *models.Order, services []models.OrderServiceLine, products []models.OrderProductLine) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range services {
			services[i].OrderServiceID = 0
			services[i].OrderID = order.OrderID
		}
		for i := range products {
			products[i].OrderProductID = 0
			products[i].OrderID = order.OrderID
		}
		if len(services) > 0 {
			if err := tx.Create(&services).Error; err != nil {
				return err
			}
		}
		if len(products) > 0 {
			if err := tx.Create(&products).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create order for user %d: %w", order.UserID, err)
	}
	return nil
}

// Update saves the order row's mutable fields and every supplied line inside
// one transaction. Each line must carry its own id; a line without one, or
// referencing a row that does not exist, aborts the whole call.
func (r *GORMOrderRepository) Update(order *models.Order, services []models.OrderServiceLine, products []models.OrderProductLine) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Order
		if err := tx.First(&existing, "order_id = ?", order.OrderID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Order{}).Where("order_id = ?", order.OrderID).Updates(map[string]interface{}{
			"fname":             order.Fname,
			"email":             order.Email,
			"phone_no":          order.PhoneNo,
			"total_order_price": order.TotalOrderPrice,
			"payment_method":    order.PaymentMethod,
			"paid_date":         order.PaidDate,
			"order_status":      order.OrderStatus,
			"order_remark":      order.OrderRemark,
		}).Error; err != nil {
			return err
		}

		for _, line := range services {
			if line.OrderServiceID == 0 {
				return fmt.Errorf("service line id missing: %w", models.ErrValidation)
			}
			result := tx.Model(&models.OrderServiceLine{}).Where("order_service_id = ?", line.OrderServiceID).Updates(map[string]interface{}{
				"service_name":        line.ServiceName,
				"service_price":       line.ServicePrice,
				"service_disc":        line.ServiceDisc,
				"total_service_price": line.TotalServicePrice,
			})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("service line %d: %w", line.OrderServiceID, models.ErrNotFound)
			}
		}

		for _, line := range products {
			if line.OrderProductID == 0 {
				return fmt.Errorf("product line id missing: %w", models.ErrValidation)
			}
			result := tx.Model(&models.OrderProductLine{}).Where("order_product_id = ?", line.OrderProductID).Updates(map[string]interface{}{
				"product_name":        line.ProductName,
				"product_price":       line.ProductPrice,
				"quantity":            line.Quantity,
				"product_disc":        line.ProductDisc,
				"total_product_price": line.TotalProductPrice,
			})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("product line %d: %w", line.OrderProductID, models.ErrNotFound)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("order %d: %w", order.OrderID, models.ErrNotFound)
		}
		if errors.Is(err, models.ErrValidation) || errors.Is(err, models.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update order %d: %w", order.OrderID, err)
	}
	return nil
}

// GetAll lists order summaries, most recent first.
func (r *GORMOrderRepository) GetAll() ([]models.OrderSummary, error) {
	summaries := make([]models.OrderSummary, 0)
	err := r.db.Model(&models.Order{}).
		Select("order_id, order_created_date, user_id, fname, phone_no, total_order_price, paid_date, order_status").
		Order("order_created_date DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return summaries, nil
}

// GetByID fetches the order row, then both line collections, and composes
// the aggregate. An order with zero lines is valid and returns empty
// collections.
func (r *GORMOrderRepository) GetByID(id uint) (*models.OrderDetails, error) {
	var order models.Order
	if err := r.db.First(&order, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}

	services := make([]models.OrderServiceLine, 0)
	if err := r.db.Where("order_id = ?", id).Order("order_service_id").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to get service lines for order %d: %w", id, err)
	}

	products := make([]models.OrderProductLine, 0)
	if err := r.db.Where("order_id = ?", id).Order("order_product_id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get product lines for order %d: %w", id, err)
	}

	return &models.OrderDetails{
		Order:    order,
		Services: services,
		Products: products,
	}, nil
}

// GetByUserID lists one customer's order summaries, most recent first.
func (r *GORMOrderRepository) GetByUserID(userID uint) ([]models.OrderSummary, error) {
	summaries := make([]models.OrderSummary, 0)
	err := r.db.Model(&models.Order{}).
		Select("order_id, order_created_date, user_id, fname, phone_no, total_order_price, paid_date, order_status").
		Where("user_id = ?", userID).
		Order("order_created_date DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for user %d: %w", userID, err)
	}
	return summaries, nil
}

// Delete removes the order row and both child collections in one
// transaction. Idempotent: deleting an absent order affects zero rows and
// succeeds.
func (r *GORMOrderRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderServiceLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderProductLine{}).Error; err != nil {
			return err
		}
		return tx.Where("order_id = ?", id).Delete(&models.Order{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	return nil
}

// AddServiceLine inserts a single service line.
func (r *GORMOrderRepository) AddServiceLine(line *models.OrderServiceLine) error {
	if err := r.db.Create(line).Error; err != nil {
		return fmt.Errorf("failed to add service line to order %d: %w", line.OrderID, err)
	}
	return nil
}

// AddProductLine inserts a single product line.
func (r *GORMOrderRepository) AddProductLine(line *models.OrderProductLine) error {
	if err := r.db.Create(line).Error; err != nil {
		return fmt.Errorf("failed to add product line to order %d: %w", line.OrderID, err)
	}
	return nil
}

// DeleteServiceLine removes one service line by its own id.
func (r *GORMOrderRepository) DeleteServiceLine(lineID uint) error {
	if err := r.db.Where("order_service_id = ?", lineID).Delete(&models.OrderServiceLine{}).Error; err != nil {
		return fmt.Errorf("failed to delete service line %d: %w", lineID, err)
	}
	return nil
}

// DeleteProductLine removes one product line by its own id.
func (r *GORMOrderRepository) DeleteProductLine(lineID uint) error {
	if err := r.db.Where("order_product_id = ?", lineID).Delete(&models.OrderProductLine{}).Error; err != nil {
		return fmt.Errorf("failed to delete product line %d: %w", lineID, err)
	}
	return nil
}

// SalesSummary aggregates revenue and order counts for the sales view.
func (r *GORMOrderRepository) SalesSummary() (*models.SalesSummary, error) {
	var summary models.SalesSummary

	if err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_order_price), 0)").
		Scan(&summary.TotalRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum order revenue: %w", err)
	}
	if err := r.db.Model(&models.Order{}).Count(&summary.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	if err := r.db.Model(&models.Order{}).
		Where("paid_date IS NOT NULL").
		Count(&summary.PaidOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count paid orders: %w", err)
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_order_price), 0)").
		Where("order_created_date >= ?", firstOfMonth).
		Scan(&summary.MonthRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum month revenue: %w", err)
	}

	return &summary, nil
}
