package handlers

import (
	"log"

	"clinicdesk/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler serves the back-office sales summary and the invoice stub.
type ReportHandler struct {
	orderService   *services.OrderService
	invoiceService *services.InvoiceService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(orderService *services.OrderService, invoiceService *services.InvoiceService) *ReportHandler {
	return &ReportHandler{
		orderService:   orderService,
		invoiceService: invoiceService,
	}
}

// RegisterRoutes registers the report routes with the Fiber app. These sit
// behind the auth middleware.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/sales", h.HandleGetSales)
	router.Post("/invoices", h.HandleGenerateInvoice)
}

// HandleGetSales returns aggregated revenue and order counts.
func (h *ReportHandler) HandleGetSales(c *fiber.Ctx) error {
	summary, err := h.orderService.SalesSummary()
	if err != nil {
		log.Printf("Error building sales summary: %v", err)
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// HandleGenerateInvoice writes a placeholder invoice document and returns
// its path.
func (h *ReportHandler) HandleGenerateInvoice(c *fiber.Ctx) error {
	var body struct {
		InvoiceData map[string]interface{} `json:"invoiceData"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	filePath, err := h.invoiceService.Generate(body.InvoiceData)
	if err != nil {
		log.Printf("Error generating invoice: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":   "Invoice generated",
		"file_path": filePath,
	})
}
