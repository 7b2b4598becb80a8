package appointments

import (
	"context"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	EventPublisher        contracts.EventPublisher
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			EventPublisher:        eventPublisher,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) SaveAppointment(ctx context.Context, request *requests.SaveAppointment) (*responses.SaveAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.SaveAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	appointment := &models.Appointment{
		PatientID: request.PatientID,
		DoctorID:  request.DoctorID,
		Date:      request.Date,
		Name:      request.Name,
		Sex:       request.Sex,
		Age:       request.Age,
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	if uc.EventPublisher != nil {
		if publishErr := uc.EventPublisher.PublishRecordEvent(ctx, constvars.EventAppointmentSaved, appointment); publishErr != nil {
			uc.Log.Warn("appointmentUsecase.SaveAppointment event publish failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(publishErr),
			)
		}
	}

	return &responses.SaveAppointment{AppointmentID: appointmentID}, nil
}

func (uc *appointmentUsecase) GetAppointmentDetails(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointmentDetails called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) GetAppointments(ctx context.Context, doctorID string, limit int) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.Int("limit", limit),
	)

	if limit <= 0 {
		limit = constvars.DefaultAppointmentFetchLimit
	}

	appointments, err := uc.AppointmentRepository.FindAppointmentsByDoctorID(ctx, doctorID, limit)
	if err != nil {
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, exceptions.ErrAppointmentsNotFound(nil)
	}
	return appointments, nil
}
