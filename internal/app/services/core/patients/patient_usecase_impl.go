package patients

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
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	EventPublisher    contracts.EventPublisher
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository: patientRepository,
			EventPublisher:    eventPublisher,
			Log:               logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) SavePatient(ctx context.Context, request *requests.SavePatient) (*responses.SavePatient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.SavePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patient := &models.Patient{
		Name:        request.Name,
		DateOfBirth: request.DateOfBirth,
		Gender:      request.Gender,
		BloodGroup:  request.BloodGroup,
		ContactInfo: request.ContactInfo,
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	// Event delivery must never fail the save.
	if uc.EventPublisher != nil {
		if publishErr := uc.EventPublisher.PublishRecordEvent(ctx, constvars.EventPatientSaved, patient); publishErr != nil {
			uc.Log.Warn("patientUsecase.SavePatient event publish failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(publishErr),
			)
		}
	}

	return &responses.SavePatient{PatientID: patientID}, nil
}

func (uc *patientUsecase) GetPatientDetails(ctx context.Context, patientID string) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetPatientDetails called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}
