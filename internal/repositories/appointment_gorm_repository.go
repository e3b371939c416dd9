package repositories

import (
	"fmt"

	"clinicdesk/internal/models"

	"gorm.io/gorm"
)

// GORMAppointmentRepository is a GORM implementation of AppointmentRepository.
type GORMAppointmentRepository struct {
	db *gorm.DB
}

// NewGORMAppointmentRepository creates a new instance of GORMAppointmentRepository.
func NewGORMAppointmentRepository(db *gorm.DB) *GORMAppointmentRepository {
	return &GORMAppointmentRepository{
		db: db,
	}
}

// Create inserts a new appointment.
func (r *GORMAppointmentRepository) Create(appointment *models.Appointment) error {
	if err := r.db.Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetAll retrieves all appointments.
func (r *GORMAppointmentRepository) GetAll() ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all appointments: %w", err)
	}
	return appointments, nil
}

// GetByDate retrieves all appointments scheduled for the given date
// (YYYY-MM-DD). Used by the reminder job.
func (r *GORMAppointmentRepository) GetByDate(date string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.Where("app_date = ?", date).Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to get appointments for %s: %w", date, err)
	}
	return appointments, nil
}

// Update saves the mutable appointment fields.
func (r *GORMAppointmentRepository) Update(appointment *models.Appointment) error {
	result := r.db.Model(&models.Appointment{}).Where("app_id = ?", appointment.AppID).Updates(map[string]interface{}{
		"app_date":   appointment.AppDate,
		"app_time":   appointment.AppTime,
		"app_status": appointment.AppStatus,
		"remark":     appointment.Remark,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update appointment %d: %w", appointment.AppID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("appointment %d: %w", appointment.AppID, models.ErrNotFound)
	}
	return nil
}

// Delete removes an appointment by id.
func (r *GORMAppointmentRepository) Delete(id uint) error {
	if err := r.db.Where("app_id = ?", id).Delete(&models.Appointment{}).Error; err != nil {
		return fmt.Errorf("failed to delete appointment %d: %w", id, err)
	}
	return nil
}
