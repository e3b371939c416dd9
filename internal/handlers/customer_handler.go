package handlers

import (
	"fmt"
	"log"

	"clinicdesk/internal/models"
	"clinicdesk/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	service  *services.CustomerService
	validate *validator.Validate
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the customer routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/customers", h.HandleCreateCustomer)
	router.Get("/customers", h.HandleGetCustomers)
	router.Get("/customers/id/:id", h.HandleGetCustomerByID)
	router.Get("/customers/:phoneNo", h.HandleGetCustomerByPhone)
	router.Put("/customers/:id", h.HandleUpdateCustomer)
	router.Delete("/customers/:id", h.HandleDeleteCustomer)
}

// HandleCreateCustomer creates a new customer record.
func (h *CustomerHandler) HandleCreateCustomer(c *fiber.Ctx) error {
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		log.Printf("Error parsing create customer body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(customer); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.CreateCustomer(&customer); err != nil {
		log.Printf("Error creating customer: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Customer created successfully",
		"customer": customer,
	})
}

// HandleGetCustomers lists all customers.
func (h *CustomerHandler) HandleGetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers()
	if err != nil {
		log.Printf("Error getting all customers: %v", err)
		return respondError(c, err)
	}
	return c.JSON(customers)
}

// HandleGetCustomerByID returns one customer by id.
func (h *CustomerHandler) HandleGetCustomerByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid customer id",
		})
	}

	customer, err := h.service.GetCustomerByID(uint(id))
	if err != nil {
		log.Printf("Error getting customer %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// HandleGetCustomerByPhone resolves a customer by phone number.
func (h *CustomerHandler) HandleGetCustomerByPhone(c *fiber.Ctx) error {
	phone := c.Params("phoneNo")
	customer, err := h.service.FindCustomerByPhone(phone)
	if err != nil {
		log.Printf("Error getting customer by phone %s: %v", phone, err)
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// HandleUpdateCustomer updates an existing customer.
func (h *CustomerHandler) HandleUpdateCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid customer id",
		})
	}

	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		log.Printf("Error parsing update customer body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	customer.UserID = uint(id)

	if err := h.service.UpdateCustomer(&customer); err != nil {
		log.Printf("Error updating customer %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Customer updated successfully",
	})
}

// HandleDeleteCustomer deletes a customer and their orders.
func (h *CustomerHandler) HandleDeleteCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid customer id",
		})
	}

	if err := h.service.DeleteCustomer(uint(id)); err != nil {
		log.Printf("Error deleting customer %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Customer deleted successfully",
	})
}
