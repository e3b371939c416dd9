package models

// Service is a catalog entry for a treatment the clinic offers. Order lines
// snapshot its name and price, so editing the catalog never rewrites
// existing orders.
type Service struct {
	ServiceID    uint    `json:"service_id" gorm:"column:service_id;primaryKey"`
	ServiceName  string  `json:"service_name" validate:"required,max=100"`
	ServicePrice float64 `json:"service_price" gorm:"type:decimal(10,2)" validate:"required,gt=0"`
}

func (Service) TableName() string {
	return "services"
}

// Product is a catalog entry for retail stock.
type Product struct {
	ProductID    uint    `json:"product_id" gorm:"column:product_id;primaryKey"`
	ProductName  string  `json:"product_name" validate:"required,max=100"`
	ProductPrice float64 `json:"product_price" gorm:"type:decimal(10,2)" validate:"required,gt=0"`
	Stock        int     `json:"stock" validate:"gte=0"`
}

func (Product) TableName() string {
	return "products"
}
