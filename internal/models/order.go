package models

import (
	"time"

	"gorm.io/datatypes"
)

// Order is the aggregate root. Contact fields are snapshots copied from the
// customer at order time, not live joins.
type Order struct {
	OrderID          uint           `json:"order_id" gorm:"column:order_id;primaryKey"`
	OrderCreatedDate time.Time      `json:"order_created_date" gorm:"column:order_created_date;autoCreateTime"`
	UserID           uint           `json:"user_id" gorm:"column:user_id;index"`
	Fname            string         `json:"fname"`
	Email            string         `json:"email"`
	PhoneNo          string         `json:"phone_no"`
	TotalOrderPrice  float64        `json:"total_order_price" gorm:"type:decimal(10,2)"`
	PaymentMethod    string         `json:"payment_method"`
	PaidDate         *time.Time     `json:"paid_date" gorm:"column:paid_date"`
	OrderStatus      string         `json:"order_status"`
	OrderRemark      string         `json:"order_remark"`
	Photos           datatypes.JSON `json:"photos,omitempty" gorm:"column:photos"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderServiceLine is a service line-item. Name and price are snapshots of
// the catalog service at order time.
type OrderServiceLine struct {
	OrderServiceID    uint    `json:"order_service_id" gorm:"column:order_service_id;primaryKey"`
	OrderID           uint    `json:"order_id" gorm:"column:order_id;index"`
	ServiceID         uint    `json:"service_id"`
	ServiceName       string  `json:"service_name"`
	ServicePrice      float64 `json:"service_price" gorm:"type:decimal(10,2)"`
	ServiceDisc       float64 `json:"service_disc" gorm:"type:decimal(10,2)"`
	TotalServicePrice float64 `json:"total_service_price" gorm:"type:decimal(10,2)"`
}

func (OrderServiceLine) TableName() string {
	return "orderservices"
}

// OrderProductLine is a product line-item with a quantity.
type OrderProductLine struct {
	OrderProductID    uint    `json:"order_product_id" gorm:"column:order_product_id;primaryKey"`
	OrderID           uint    `json:"order_id" gorm:"column:order_id;index"`
	ProductID         uint    `json:"product_id"`
	ProductName       string  `json:"product_name"`
	ProductPrice      float64 `json:"product_price" gorm:"type:decimal(10,2)"`
	Quantity          int     `json:"quantity" gorm:"check:quantity >= 1"`
	ProductDisc       float64 `json:"product_disc" gorm:"type:decimal(10,2)"`
	TotalProductPrice float64 `json:"total_product_price" gorm:"type:decimal(10,2)"`
}

func (OrderProductLine) TableName() string {
	return "orderproducts"
}

// OrderDetails is the composed aggregate returned by the order-detail view.
type OrderDetails struct {
	Order
	Services []OrderServiceLine `json:"services"`
	Products []OrderProductLine `json:"products"`
}

// OrderSummary is the row shape for the order list views.
type OrderSummary struct {
	OrderID          uint       `json:"order_id" gorm:"column:order_id"`
	OrderCreatedDate time.Time  `json:"order_created_date" gorm:"column:order_created_date"`
	UserID           uint       `json:"user_id" gorm:"column:user_id"`
	Fname            string     `json:"fname"`
	PhoneNo          string     `json:"phone_no"`
	TotalOrderPrice  float64    `json:"total_order_price"`
	PaidDate         *time.Time `json:"paid_date" gorm:"column:paid_date"`
	OrderStatus      string     `json:"order_status"`
}

// OrderInput is the request body for creating or updating an order. The
// owning customer is identified by user_id, or by phone_no when user_id is
// absent.
type OrderInput struct {
	UserID          uint               `json:"user_id"`
	Fname           string             `json:"fname"`
	Email           string             `json:"email"`
	PhoneNo         string             `json:"phone_no"`
	TotalOrderPrice float64            `json:"total_order_price"`
	PaymentMethod   string             `json:"payment_method"`
	PaidDate        *time.Time         `json:"paid_date"`
	OrderStatus     string             `json:"order_status"`
	OrderRemark     string             `json:"order_remark"`
	Photos          datatypes.JSON     `json:"photos,omitempty"`
	Services        []OrderServiceLine `json:"services"`
	Products        []OrderProductLine `json:"products"`
}

// SalesSummary aggregates order totals for the sales view.
type SalesSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalOrders  int64   `json:"total_orders"`
	PaidOrders   int64   `json:"paid_orders"`
	MonthRevenue float64 `json:"month_revenue"`
}
