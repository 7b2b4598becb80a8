package contracts

import (
	"context"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	SaveAppointment(ctx context.Context, request *requests.SaveAppointment) (*responses.SaveAppointment, error)
	GetAppointmentDetails(ctx context.Context, appointmentID string) (*models.Appointment, error)
	// GetAppointments returns the doctor's latest appointments, capped at limit.
	GetAppointments(ctx context.Context, doctorID string, limit int) ([]models.Appointment, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAppointmentsByDoctorID(ctx context.Context, doctorID string, limit int) ([]models.Appointment, error)
}
