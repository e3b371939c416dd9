package services

import (
	"clinicdesk/internal/models"
	"clinicdesk/internal/repositories"
)

// AppointmentService handles business logic for appointments.
type AppointmentService struct {
	appointmentRepo repositories.AppointmentRepository
	customerRepo    repositories.CustomerRepository
}

// NewAppointmentService creates a new AppointmentService.
func NewAppointmentService(appointmentRepo repositories.AppointmentRepository, customerRepo repositories.CustomerRepository) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
	}
}

// Create resolves the owning customer from the appointment's phone number
// and inserts the appointment. An unknown phone fails with no side effect.
func (s *AppointmentService) Create(appointment *models.Appointment) error {
	customer, err := s.customerRepo.GetByPhone(appointment.PhoneNo)
	if err != nil {
		return err
	}
	appointment.UserID = customer.UserID
	return s.appointmentRepo.Create(appointment)
}

// GetAll retrieves all appointments.
func (s *AppointmentService) GetAll() ([]models.Appointment, error) {
	return s.appointmentRepo.GetAll()
}

// Update saves the mutable appointment fields.
func (s *AppointmentService) Update(appointment *models.Appointment) error {
	return s.appointmentRepo.Update(appointment)
}

// Delete removes an appointment by id.
func (s *AppointmentService) Delete(id uint) error {
	return s.appointmentRepo.Delete(id)
}
