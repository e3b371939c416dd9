package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"clinicdesk/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// ForcedErr, when set, makes every mutating call fail without touching state,
// which lets tests assert that a failed write leaves nothing behind.
type MockOrderRepository struct {
	mu        sync.RWMutex
	orders    map[uint]models.Order
	services  map[uint]models.OrderServiceLine
	products  map[uint]models.OrderProductLine
	nextOrder uint
	nextSvc   uint
	nextProd  uint

	ForcedErr error
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders:   make(map[uint]models.Order),
		services: make(map[uint]models.OrderServiceLine),
		products: make(map[uint]models.OrderProductLine),
	}
}

// Create stores the order and its lines atomically.
func (r *MockOrderRepository) Create(order *models.Order, services []models.OrderServiceLine, products []models.OrderProductLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ForcedErr != nil {
		return r.ForcedErr
	}

	r.nextOrder++
	order.OrderID = r.nextOrder
	if order.OrderCreatedDate.IsZero() {
		order.OrderCreatedDate = time.Now()
	}
	r.orders[order.OrderID] = *order

	for i := range services {
		r.nextSvc++
		services[i].OrderServiceID = r.nextSvc
		services[i].OrderID = order.OrderID
		r.services[r.nextSvc] = services[i]
	}
	for i := range products {
		r.nextProd++
		products[i].OrderProductID = r.nextProd
		products[i].OrderID = order.OrderID
		r.products[r.nextProd] = products[i]
	}
	return nil
}

// Update rewrites the order row and each supplied line, failing the whole
// call when a line lacks its id.
func (r *MockOrderRepository) Update(order *models.Order, services []models.OrderServiceLine, products []models.OrderProductLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ForcedErr != nil {
		return r.ForcedErr
	}

	existing, ok := r.orders[order.OrderID]
	if !ok {
		return fmt.Errorf("order %d: %w", order.OrderID, models.ErrNotFound)
	}
	for _, line := range services {
		if line.OrderServiceID == 0 {
			return fmt.Errorf("service line id missing: %w", models.ErrValidation)
		}
		if _, ok := r.services[line.OrderServiceID]; !ok {
			return fmt.Errorf("service line %d: %w", line.OrderServiceID, models.ErrNotFound)
		}
	}
	for _, line := range products {
		if line.OrderProductID == 0 {
			return fmt.Errorf("product line id missing: %w", models.ErrValidation)
		}
		if _, ok := r.products[line.OrderProductID]; !ok {
			return fmt.Errorf("product line %d: %w", line.OrderProductID, models.ErrNotFound)
		}
	}

	order.OrderCreatedDate = existing.OrderCreatedDate
	order.UserID = existing.UserID
	r.orders[order.OrderID] = *order
	for _, line := range services {
		stored := r.services[line.OrderServiceID]
		line.OrderID = stored.OrderID
		r.services[line.OrderServiceID] = line
	}
	for _, line := range products {
		stored := r.products[line.OrderProductID]
		line.OrderID = stored.OrderID
		r.products[line.OrderProductID] = line
	}
	return nil
}

// GetAll returns order summaries sorted by creation date descending.
func (r *MockOrderRepository) GetAll() ([]models.OrderSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]models.OrderSummary, 0, len(r.orders))
	for _, o := range r.orders {
		summaries = append(summaries, summaryOf(o))
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].OrderCreatedDate.After(summaries[j].OrderCreatedDate)
	})
	return summaries, nil
}

// GetByID composes the aggregate with lines ordered by line id.
func (r *MockOrderRepository) GetByID(id uint) (*models.OrderDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, models.ErrNotFound)
	}

	services := make([]models.OrderServiceLine, 0)
	for _, line := range r.services {
		if line.OrderID == id {
			services = append(services, line)
		}
	}
	sort.Slice(services, func(i, j int) bool {
		return services[i].OrderServiceID < services[j].OrderServiceID
	})

	products := make([]models.OrderProductLine, 0)
	for _, line := range r.products {
		if line.OrderID == id {
			products = append(products, line)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].OrderProductID < products[j].OrderProductID
	})

	return &models.OrderDetails{Order: order, Services: services, Products: products}, nil
}

// GetByUserID returns one customer's summaries, most recent first.
func (r *MockOrderRepository) GetByUserID(userID uint) ([]models.OrderSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]models.OrderSummary, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			summaries = append(summaries, summaryOf(o))
		}
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].OrderCreatedDate.After(summaries[j].OrderCreatedDate)
	})
	return summaries, nil
}

// Delete removes the order and its lines; deleting an absent id succeeds.
func (r *MockOrderRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ForcedErr != nil {
		return r.ForcedErr
	}

	delete(r.orders, id)
	for lineID, line := range r.services {
		if line.OrderID == id {
			delete(r.services, lineID)
		}
	}
	for lineID, line := range r.products {
		if line.OrderID == id {
			delete(r.products, lineID)
		}
	}
	return nil
}

// AddServiceLine inserts one service line.
func (r *MockOrderRepository) AddServiceLine(line *models.OrderServiceLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ForcedErr != nil {
		return r.ForcedErr
	}
	r.nextSvc++
	line.OrderServiceID = r.nextSvc
	r.services[r.nextSvc] = *line
	return nil
}

// AddProductLine inserts one product line.
func (r *MockOrderRepository) AddProductLine(line *models.OrderProductLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ForcedErr != nil {
		return r.ForcedErr
	}
	r.nextProd++
	line.OrderProductID = r.nextProd
	r.products[r.nextProd] = *line
	return nil
}

// DeleteServiceLine removes one service line by line id.
func (r *MockOrderRepository) DeleteServiceLine(lineID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ForcedErr != nil {
		return r.ForcedErr
	}
	delete(r.services, lineID)
	return nil
}

// DeleteProductLine removes one product line by line id.
func (r *MockOrderRepository) DeleteProductLine(lineID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ForcedErr != nil {
		return r.ForcedErr
	}
	delete(r.products, lineID)
	return nil
}

// SalesSummary aggregates over the stored orders.
func (r *MockOrderRepository) SalesSummary() (*models.SalesSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var summary models.SalesSummary
	for _, o := range r.orders {
		summary.TotalOrders++
		summary.TotalRevenue += o.TotalOrderPrice
		if o.PaidDate != nil {
			summary.PaidOrders++
		}
		if !o.OrderCreatedDate.Before(firstOfMonth) {
			summary.MonthRevenue += o.TotalOrderPrice
		}
	}
	return &summary, nil
}

func summaryOf(o models.Order) models.OrderSummary {
	return models.OrderSummary{
		OrderID:          o.OrderID,
		OrderCreatedDate: o.OrderCreatedDate,
		UserID:           o.UserID,
		Fname:            o.Fname,
		PhoneNo:          o.PhoneNo,
		TotalOrderPrice:  o.TotalOrderPrice,
		PaidDate:         o.PaidDate,
		OrderStatus:      o.OrderStatus,
	}
}
