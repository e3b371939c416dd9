package repositories

import "clinicdesk/internal/models"

// AppointmentRepository defines the interface for appointment data access.
type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	GetAll() ([]models.Appointment, error)
	GetByDate(date string) ([]models.Appointment, error)
	Update(appointment *models.Appointment) error
	Delete(id uint) error
}
