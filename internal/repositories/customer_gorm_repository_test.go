package repositories_test

import (
	"testing"

	"clinicdesk/internal/models"
	"clinicdesk/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestGORMCustomerRepository_GetByPhone(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMCustomerRepository(db)

	customer := models.Customer{Fname: "Ann", Lname: "Lee", PhoneNo: "555", Email: "a@x.com"}
	assert.NoError(t, repo.Create(&customer))

	found, err := repo.GetByPhone("555")
	assert.NoError(t, err)
	assert.Equal(t, customer.UserID, found.UserID)

	_, err = repo.GetByPhone("000")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGORMCustomerRepository_Update_NotFound(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMCustomerRepository(db)

	err := repo.Update(&models.Customer{UserID: 42, Fname: "Ghost"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGORMCustomerRepository_Delete_CascadesOrders(t *testing.T) {
	db := setupDB(t)
	customerRepo := repositories.NewGORMCustomerRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	customer := models.Customer{Fname: "Ann", PhoneNo: "555"}
	assert.NoError(t, customerRepo.Create(&customer))
	keep := models.Customer{Fname: "Bea", PhoneNo: "666"}
	assert.NoError(t, customerRepo.Create(&keep))

	order, services, products := sampleOrder()
	order.UserID = customer.UserID
	assert.NoError(t, orderRepo.Create(&order, services, products))

	other, otherServices, otherProducts := sampleOrder()
	other.UserID = keep.UserID
	assert.NoError(t, orderRepo.Create(&other, otherServices, otherProducts))

	assert.NoError(t, customerRepo.Delete(customer.UserID))

	_, err := customerRepo.GetByID(customer.UserID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = orderRepo.GetByID(order.OrderID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	var lineCount int64
	db.Model(&models.OrderServiceLine{}).Where("order_id = ?", order.OrderID).Count(&lineCount)
	assert.Zero(t, lineCount)

	// The other customer's aggregate is untouched.
	details, err := orderRepo.GetByID(other.OrderID)
	assert.NoError(t, err)
	assert.Len(t, details.Services, 1)

	// Deleting again is a no-op.
	assert.NoError(t, customerRepo.Delete(customer.UserID))
}
