package services

import (
	"fmt"
	"log"
	"math"

	"clinicdesk/internal/models"
	"clinicdesk/internal/repositories"
)

// EventPublisher publishes domain events to the message queue. Satisfied by
// *rabbitmq.Client; nil-able so the backend runs without a broker.
type EventPublisher interface {
	Publish(eventType string, data interface{}) error
}

// OrderService handles business logic for the order aggregate: validation,
// customer resolution, total reconciliation and event publishing. All
// multi-row writes are delegated to the repository as one atomic unit.
type OrderService struct {
	orderRepo    repositories.OrderRepository
	customerRepo repositories.CustomerRepository
	publisher    EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, customerRepo repositories.CustomerRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		publisher:    publisher,
	}
}

// Create validates the input, resolves the owning customer, writes the
// aggregate in one transaction and returns the full resolved order.
// Line totals are authoritative: the order total is recomputed from them,
// and a client-supplied total that disagrees is rejected before any write.
func (s *OrderService) Create(input *models.OrderInput) (*models.OrderDetails, error) {
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}

	for i := range input.Services {
		if input.Services[i].TotalServicePrice == 0 {
			input.Services[i].TotalServicePrice = input.Services[i].ServicePrice - input.Services[i].ServiceDisc
		}
	}
	for i := range input.Products {
		if input.Products[i].Quantity < 1 {
			return nil, fmt.Errorf("product line quantity must be at least 1: %w", models.ErrValidation)
		}
		if input.Products[i].TotalProductPrice == 0 {
			input.Products[i].TotalProductPrice = input.Products[i].ProductPrice*float64(input.Products[i].Quantity) - input.Products[i].ProductDisc
		}
	}

	var lineTotal float64
	for _, line := range input.Services {
		lineTotal += line.TotalServicePrice
	}
	for _, line := range input.Products {
		lineTotal += line.TotalProductPrice
	}
	if math.Abs(lineTotal-input.TotalOrderPrice) > 0.01 {
		return nil, fmt.Errorf("total_order_price %.2f does not match line totals %.2f: %w",
			input.TotalOrderPrice, lineTotal, models.ErrValidation)
	}

	userID := input.UserID
	if userID == 0 {
		customer, err := s.customerRepo.GetByPhone(input.PhoneNo)
		if err != nil {
			return nil, err
		}
		userID = customer.UserID
	}

	order := models.Order{
		UserID:          userID,
		Fname:           input.Fname,
		Email:           input.Email,
		PhoneNo:         input.PhoneNo,
		TotalOrderPrice: lineTotal,
		PaymentMethod:   input.PaymentMethod,
		PaidDate:        input.PaidDate,
		OrderStatus:     input.OrderStatus,
		OrderRemark:     input.OrderRemark,
		Photos:          input.Photos,
	}
	if err := s.orderRepo.Create(&order, input.Services, input.Products); err != nil {
		return nil, err
	}

	s.publish("order.created", map[string]interface{}{
		"order_id":          order.OrderID,
		"user_id":           order.UserID,
		"order_status":      order.OrderStatus,
		"total_order_price": order.TotalOrderPrice,
	})

	return &models.OrderDetails{
		Order:    order,
		Services: input.Services,
		Products: input.Products,
	}, nil
}

// Update rewrites the order row and the supplied lines as one transaction.
// Every line must carry its own id; this path never creates new lines.
func (s *OrderService) Update(orderID uint, input *models.OrderInput) error {
	for _, line := range input.Services {
		if line.OrderServiceID == 0 {
			return fmt.Errorf("service line id missing: %w", models.ErrValidation)
		}
	}
	for _, line := range input.Products {
		if line.OrderProductID == 0 {
			return fmt.Errorf("product line id missing: %w", models.ErrValidation)
		}
	}

	order := models.Order{
		OrderID:         orderID,
		Fname:           input.Fname,
		Email:           input.Email,
		PhoneNo:         input.PhoneNo,
		TotalOrderPrice: input.TotalOrderPrice,
		PaymentMethod:   input.PaymentMethod,
		PaidDate:        input.PaidDate,
		OrderStatus:     input.OrderStatus,
		OrderRemark:     input.OrderRemark,
	}
	return s.orderRepo.Update(&order, input.Services, input.Products)
}

// List returns all order summaries, most recent first.
func (s *OrderService) List() ([]models.OrderSummary, error) {
	return s.orderRepo.GetAll()
}

// Get returns one composed order aggregate.
func (s *OrderService) Get(orderID uint) (*models.OrderDetails, error) {
	return s.orderRepo.GetByID(orderID)
}

// ListByUser returns one customer's order summaries.
func (s *OrderService) ListByUser(userID uint) ([]models.OrderSummary, error) {
	return s.orderRepo.GetByUserID(userID)
}

// Delete removes the order with its line-items. Idempotent.
func (s *OrderService) Delete(orderID uint) error {
	if err := s.orderRepo.Delete(orderID); err != nil {
		return err
	}
	s.publish("order.deleted", map[string]interface{}{"order_id": orderID})
	return nil
}

// AddServiceLine inserts one service line into an existing order.
func (s *OrderService) AddServiceLine(line *models.OrderServiceLine) error {
	if line.OrderID == 0 || line.ServiceName == "" || line.ServicePrice == 0 {
		return fmt.Errorf("missing required service line fields: %w", models.ErrValidation)
	}
	if line.TotalServicePrice == 0 {
		line.TotalServicePrice = line.ServicePrice - line.ServiceDisc
	}
	return s.orderRepo.AddServiceLine(line)
}

// AddProductLine inserts one product line into an existing order, deriving
// the line total as price x quantity minus discount when not supplied.
func (s *OrderService) AddProductLine(line *models.OrderProductLine) error {
	if line.OrderID == 0 || line.ProductID == 0 {
		return fmt.Errorf("missing required product line fields: %w", models.ErrValidation)
	}
	if line.Quantity < 1 {
		return fmt.Errorf("product line quantity must be at least 1: %w", models.ErrValidation)
	}
	if line.TotalProductPrice == 0 {
		line.TotalProductPrice = line.ProductPrice*float64(line.Quantity) - line.ProductDisc
	}
	return s.orderRepo.AddProductLine(line)
}

// DeleteServiceLine removes one service line by its own id.
func (s *OrderService) DeleteServiceLine(lineID uint) error {
	return s.orderRepo.DeleteServiceLine(lineID)
}

// DeleteProductLine removes one product line by its own id.
func (s *OrderService) DeleteProductLine(lineID uint) error {
	return s.orderRepo.DeleteProductLine(lineID)
}

// SalesSummary aggregates revenue and order counts.
func (s *OrderService) SalesSummary() (*models.SalesSummary, error) {
	return s.orderRepo.SalesSummary()
}

// publish sends an event best effort; a broker failure never fails the
// request that triggered it.
func (s *OrderService) publish(eventType string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(eventType, data); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}

func validateOrderInput(input *models.OrderInput) error {
	if input.UserID == 0 && input.PhoneNo == "" {
		return fmt.Errorf("missing required order data: user_id or phone_no: %w", models.ErrValidation)
	}
	if input.Fname == "" {
		return fmt.Errorf("missing required order data: fname: %w", models.ErrValidation)
	}
	if input.Email == "" {
		return fmt.Errorf("missing required order data: email: %w", models.ErrValidation)
	}
	if input.PhoneNo == "" {
		return fmt.Errorf("missing required order data: phone_no: %w", models.ErrValidation)
	}
	if input.TotalOrderPrice == 0 {
		return fmt.Errorf("missing required order data: total_order_price: %w", models.ErrValidation)
	}
	if input.PaymentMethod == "" {
		return fmt.Errorf("missing required order data: payment_method: %w", models.ErrValidation)
	}
	if input.OrderStatus == "" {
		return fmt.Errorf("missing required order data: order_status: %w", models.ErrValidation)
	}
	if len(input.Services) == 0 {
		return fmt.Errorf("order requires at least one service line: %w", models.ErrValidation)
	}
	if len(input.Products) == 0 {
		return fmt.Errorf("order requires at least one product line: %w", models.ErrValidation)
	}
	return nil
}
