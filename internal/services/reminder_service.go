package services

import (
	"log"
	"strings"
	"time"

	"clinicdesk/internal/repositories"

	"github.com/robfig/cron/v3"
)

// ReminderService publishes appointment.reminder events for next-day
// appointments. Delivery (SMS, email) is the consumer's concern.
type ReminderService struct {
	appointmentRepo repositories.AppointmentRepository
	publisher       EventPublisher
}

// NewReminderService creates a new ReminderService.
func NewReminderService(appointmentRepo repositories.AppointmentRepository, publisher EventPublisher) *ReminderService {
	return &ReminderService{
		appointmentRepo: appointmentRepo,
		publisher:       publisher,
	}
}

// StartScheduler runs SendReminders on the given cron spec and returns the
// scheduler so the caller can stop it on shutdown.
func (s *ReminderService) StartScheduler(spec string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, s.SendReminders); err != nil {
		return nil, err
	}
	c.Start()
	log.Println("Reminder scheduler started")
	return c, nil
}

// SendReminders publishes a reminder event for every non-cancelled
// appointment scheduled for tomorrow. Failures are logged and skipped.
func (s *ReminderService) SendReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	appointments, err := s.appointmentRepo.GetByDate(tomorrow)
	if err != nil {
		log.Printf("Reminder run failed to fetch appointments for %s: %v", tomorrow, err)
		return
	}

	sent := 0
	for _, appt := range appointments {
		if strings.EqualFold(appt.AppStatus, "cancelled") {
			continue
		}
		if s.publisher == nil {
			continue
		}
		err := s.publisher.Publish("appointment.reminder", map[string]interface{}{
			"app_id":   appt.AppID,
			"user_id":  appt.UserID,
			"fname":    appt.Fname,
			"phone_no": appt.PhoneNo,
			"app_date": appt.AppDate,
			"app_time": appt.AppTime,
		})
		if err != nil {
			log.Printf("Warning: failed to publish reminder for appointment %d: %v", appt.AppID, err)
			continue
		}
		sent++
	}
	log.Printf("Reminder run for %s: %d appointments, %d reminders sent", tomorrow, len(appointments), sent)
}
