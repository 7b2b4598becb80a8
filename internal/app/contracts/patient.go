package contracts

import (
	"context"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	SavePatient(ctx context.Context, request *requests.SavePatient) (*responses.SavePatient, error)
	GetPatientDetails(ctx context.Context, patientID string) (*models.Patient, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	// FindPatientByID returns (nil, nil) when no patient matches; absent is
	// distinct from a store failure.
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
}
