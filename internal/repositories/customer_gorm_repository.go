package repositories

import (
	"errors"
	"fmt"

	"clinicdesk/internal/models"

	"gorm.io/gorm"
)

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	db *gorm.DB
}

// NewGORMCustomerRepository creates a new instance of GORMCustomerRepository.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{
		db: db,
	}
}

// Create inserts a new customer.
func (r *GORMCustomerRepository) Create(customer *models.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// GetAll retrieves all customers.
func (r *GORMCustomerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all customers: %w", err)
	}
	return customers, nil
}

// GetByID retrieves a single customer by id.
func (r *GORMCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get customer %d: %w", id, err)
	}
	return &customer, nil
}

// GetByPhone retrieves a single customer by phone number. Exactly one round
// trip; no caching.
func (r *GORMCustomerRepository) GetByPhone(phone string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "phone_no = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer with phone %s: %w", phone, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get customer by phone %s: %w", phone, err)
	}
	return &customer, nil
}

// Update saves all customer fields.
func (r *GORMCustomerRepository) Update(customer *models.Customer) error {
	result := r.db.Model(&models.Customer{}).Where("user_id = ?", customer.UserID).Updates(map[string]interface{}{
		"fname":            customer.Fname,
		"lname":            customer.Lname,
		"date_of_birth":    customer.DateOfBirth,
		"phone_no":         customer.PhoneNo,
		"email":            customer.Email,
		"address":          customer.Address,
		"city":             customer.City,
		"postcode":         customer.Postcode,
		"country":          customer.Country,
		"sickness":         customer.Sickness,
		"sex":              customer.Sex,
		"pregnant":         customer.Pregnant,
		"remark":           customer.Remark,
		"stratum_corneum":  customer.StratumCorneum,
		"skin_type":        customer.SkinType,
		"skincare_program": customer.SkincareProgram,
		"micro_surgery":    customer.MicroSurgery,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update customer %d: %w", customer.UserID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("customer %d: %w", customer.UserID, models.ErrNotFound)
	}
	return nil
}

// Delete removes the customer together with their orders and order lines.
// The cascade is explicit rather than a database constraint.
func (r *GORMCustomerRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var orderIDs []uint
		if err := tx.Model(&models.Order{}).Where("user_id = ?", id).Pluck("order_id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.OrderServiceLine{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.OrderProductLine{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", id).Delete(&models.Order{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("user_id = ?", id).Delete(&models.Customer{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, err)
	}
	return nil
}
