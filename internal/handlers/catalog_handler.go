package handlers

import (
	"fmt"
	"log"

	"clinicdesk/internal/models"
	"clinicdesk/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for the service and product catalog.
type CatalogHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/services", h.HandleCreateService)
	router.Get("/services", h.HandleGetServices)
	router.Put("/services/:id", h.HandleUpdateService)
	router.Delete("/services/:id", h.HandleDeleteService)

	router.Post("/products", h.HandleCreateProduct)
	router.Get("/products", h.HandleGetProducts)
	router.Put("/products/:id", h.HandleUpdateProduct)
	router.Delete("/products/:id", h.HandleDeleteProduct)
}

func (h *CatalogHandler) validationResponse(c *fiber.Ctx, err error) error {
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

// HandleCreateService creates a catalog service and returns the created row.
func (h *CatalogHandler) HandleCreateService(c *fiber.Ctx) error {
	var service models.Service
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.validate.Struct(service); err != nil {
		return h.validationResponse(c, err)
	}

	if err := h.service.CreateService(&service); err != nil {
		log.Printf("Error creating service: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Service created successfully",
		"service": service,
	})
}

// HandleGetServices lists all catalog services.
func (h *CatalogHandler) HandleGetServices(c *fiber.Ctx) error {
	servicesList, err := h.service.GetAllServices()
	if err != nil {
		log.Printf("Error getting all services: %v", err)
		return respondError(c, err)
	}
	return c.JSON(servicesList)
}

// HandleUpdateService updates a catalog service and returns the updated row.
func (h *CatalogHandler) HandleUpdateService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service id",
		})
	}

	var service models.Service
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	service.ServiceID = uint(id)

	if err := h.service.UpdateService(&service); err != nil {
		log.Printf("Error updating service %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Service updated successfully",
		"service": service,
	})
}

// HandleDeleteService deletes a catalog service.
func (h *CatalogHandler) HandleDeleteService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service id",
		})
	}

	if err := h.service.DeleteService(uint(id)); err != nil {
		log.Printf("Error deleting service %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Service deleted successfully",
	})
}

// HandleCreateProduct creates a catalog product.
func (h *CatalogHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.validate.Struct(product); err != nil {
		return h.validationResponse(c, err)
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created successfully",
		"product": product,
	})
}

// HandleGetProducts lists all catalog products.
func (h *CatalogHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleUpdateProduct updates a catalog product and returns the updated row.
func (h *CatalogHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product id",
		})
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	product.ProductID = uint(id)

	if err := h.service.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"product": product,
	})
}

// HandleDeleteProduct deletes a catalog product.
func (h *CatalogHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product id",
		})
	}

	if err := h.service.DeleteProduct(uint(id)); err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
