package handlers

import (
	"fmt"
	"log"

	"clinicdesk/internal/models"
	"clinicdesk/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AppointmentHandler handles HTTP requests for appointments.
type AppointmentHandler struct {
	service  *services.AppointmentService
	validate *validator.Validate
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the appointment routes with the Fiber app.
func (h *AppointmentHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/appointments", h.HandleCreateAppointment)
	router.Get("/appointments", h.HandleGetAppointments)
	router.Put("/appointments/:id", h.HandleUpdateAppointment)
	router.Delete("/appointments/:id", h.HandleDeleteAppointment)
}

// HandleCreateAppointment creates an appointment. The owning customer is
// resolved from the phone number; an unknown phone is a 404 with no side
// effect.
func (h *AppointmentHandler) HandleCreateAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		log.Printf("Error parsing create appointment body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(appointment); err != nil {
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

	if err := h.service.Create(&appointment); err != nil {
		log.Printf("Error creating appointment: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Appointment created successfully",
		"appointment": appointment,
	})
}

// HandleGetAppointments lists all appointments.
func (h *AppointmentHandler) HandleGetAppointments(c *fiber.Ctx) error {
	appointments, err := h.service.GetAll()
	if err != nil {
		log.Printf("Error getting all appointments: %v", err)
		return respondError(c, err)
	}
	return c.JSON(appointments)
}

// HandleUpdateAppointment updates an appointment's date, time, status and
// remark.
func (h *AppointmentHandler) HandleUpdateAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment id",
		})
	}

	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		log.Printf("Error parsing update appointment body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	appointment.AppID = uint(id)

	if err := h.service.Update(&appointment); err != nil {
		log.Printf("Error updating appointment %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Appointment updated successfully",
	})
}

// HandleDeleteAppointment deletes an appointment by id.
func (h *AppointmentHandler) HandleDeleteAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment id",
		})
	}

	if err := h.service.Delete(uint(id)); err != nil {
		log.Printf("Error deleting appointment %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Appointment deleted successfully",
	})
}
