package handlers

import (
	"log"

	"clinicdesk/internal/models"
	"clinicdesk/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for the order aggregate.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/orders", h.HandleCreateOrder)
	router.Get("/orders", h.HandleGetOrders)
	router.Get("/orders/user/:userId", h.HandleGetOrdersByUser)
	router.Get("/orders/:orderId", h.HandleGetOrderByID)
	router.Put("/orders/:orderId", h.HandleUpdateOrder)
	router.Delete("/orders/:orderId", h.HandleDeleteOrder)

	router.Post("/orders/:orderId/services", h.HandleAddServiceLine)
	router.Post("/orders/:orderId/products", h.HandleAddProductLine)
	router.Post("/orderservices", h.HandleAddServiceLineFlat)
	router.Post("/orderproducts", h.HandleAddProductLineFlat)
	router.Delete("/orders/:orderId/service/:serviceId", h.HandleDeleteServiceLine)
	router.Delete("/orders/:orderId/product/:productId", h.HandleDeleteProductLine)
}

// HandleCreateOrder creates an order with its service and product lines as
// one atomic unit.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var input models.OrderInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing create order body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	details, err := h.service.Create(&input)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Order created successfully",
		"order_id": details.OrderID,
		"order":    details,
	})
}

// HandleGetOrders lists order summaries, most recent first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.List()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID returns the composed order aggregate.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("orderId")
	if err != nil || orderID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order id",
		})
	}

	details, err := h.service.Get(uint(orderID))
	if err != nil {
		log.Printf("Error getting order %d: %v", orderID, err)
		return respondError(c, err)
	}
	return c.JSON(details)
}

// HandleGetOrdersByUser lists one customer's orders.
func (h *OrderHandler) HandleGetOrdersByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	orders, err := h.service.ListByUser(uint(userID))
	if err != nil {
		log.Printf("Error getting orders for user %d: %v", userID, err)
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleUpdateOrder updates the order row and its existing lines in one
// transaction.
func (h *OrderHandler) HandleUpdateOrder(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("orderId")
	if err != nil || orderID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order id",
		})
	}

	var input models.OrderInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing update order body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.Update(uint(orderID), &input); err != nil {
		log.Printf("Error updating order %d: %v", orderID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Order updated successfully",
	})
}

// HandleDeleteOrder deletes the order and both child collections.
// Idempotent: a repeat delete succeeds with nothing to remove.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("orderId")
	if err != nil || orderID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order id",
		})
	}

	if err := h.service.Delete(uint(orderID)); err != nil {
		log.Printf("Error deleting order %d: %v", orderID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Order and associated services/products deleted successfully",
	})
}

// HandleAddServiceLine adds one service line to the order in the path.
func (h *OrderHandler) HandleAddServiceLine(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("orderId")
	if err != nil || orderID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order id",
		})
	}

	var line models.OrderServiceLine
	if err := c.BodyParser(&line); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	line.OrderID = uint(orderID)

	if err := h.service.AddServiceLine(&line); err != nil {
		log.Printf("Error adding service line to order %d: %v", orderID, err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(line)
}

// HandleAddServiceLineFlat adds one service line carrying its order_id in
// the body.
func (h *OrderHandler) HandleAddServiceLineFlat(c *fiber.Ctx) error {
	var line models.OrderServiceLine
	if err := c.BodyParser(&line); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.AddServiceLine(&line); err != nil {
		log.Printf("Error adding service line to order %d: %v", line.OrderID, err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(line)
}

// HandleAddProductLine adds one product line to the order in the path.
func (h *OrderHandler) HandleAddProductLine(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("orderId")
	if err != nil || orderID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order id",
		})
	}

	var line models.OrderProductLine
	if err := c.BodyParser(&line); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	line.OrderID = uint(orderID)

	if err := h.service.AddProductLine(&line); err != nil {
		log.Printf("Error adding product line to order %d: %v", orderID, err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(line)
}

// HandleAddProductLineFlat adds one product line carrying its order_id in
// the body.
func (h *OrderHandler) HandleAddProductLineFlat(c *fiber.Ctx) error {
	var line models.OrderProductLine
	if err := c.BodyParser(&line); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.AddProductLine(&line); err != nil {
		log.Printf("Error adding product line to order %d: %v", line.OrderID, err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(line)
}

// HandleDeleteServiceLine removes one service line by its own id.
func (h *OrderHandler) HandleDeleteServiceLine(c *fiber.Ctx) error {
	lineID, err := c.ParamsInt("serviceId")
	if err != nil || lineID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service line id",
		})
	}

	if err := h.service.DeleteServiceLine(uint(lineID)); err != nil {
		log.Printf("Error deleting service line %d: %v", lineID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Service deleted successfully",
	})
}

// HandleDeleteProductLine removes one product line by its own id.
func (h *OrderHandler) HandleDeleteProductLine(c *fiber.Ctx) error {
	lineID, err := c.ParamsInt("productId")
	if err != nil || lineID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product line id",
		})
	}

	if err := h.service.DeleteProductLine(uint(lineID)); err != nil {
		log.Printf("Error deleting product line %d: %v", lineID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
