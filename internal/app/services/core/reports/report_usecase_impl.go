package reports

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
	reportUsecaseInstance contracts.ReportUsecase
	onceReportUsecase     sync.Once
)

type reportUsecase struct {
	ReportRepository  contracts.ReportRepository
	PatientRepository contracts.PatientRepository
	EventPublisher    contracts.EventPublisher
	Log               *zap.Logger
}

func NewReportUsecase(
	reportRepository contracts.ReportRepository,
	patientRepository contracts.PatientRepository,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.ReportUsecase {
	onceReportUsecase.Do(func() {
		reportUsecaseInstance = &reportUsecase{
			ReportRepository:  reportRepository,
			PatientRepository: patientRepository,
			EventPublisher:    eventPublisher,
			Log:               logger,
		}
	})
	return reportUsecaseInstance
}

func (uc *reportUsecase) SaveDetailedReport(ctx context.Context, request *requests.SaveDetailedReport) (*responses.SaveDetailedReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.SaveDetailedReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	// Reports may only be attached to an existing patient.
	patient, err := uc.PatientRepository.FindPatientByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrReportPatientNotFound(nil)
	}

	report := &models.DetailedReport{
		PatientID:            request.PatientID,
		DoctorID:             request.DoctorID,
		Date:                 request.Date,
		PatientName:          request.PatientName,
		DateOfBirth:          request.DateOfBirth,
		Gender:               request.Gender,
		BloodGroup:           request.BloodGroup,
		ContactInfo:          request.ContactInfo,
		DoctorName:           request.DoctorName,
		Conclusion:           request.Conclusion,
		Summary:              request.Summary,
		DetailedHistory:      request.DetailedHistory,
		MedicalHistory:       request.MedicalHistory,
		MedicalCondition:     request.MedicalCondition,
		CurrentMedication:    request.CurrentMedication,
		TestResults:          request.TestResults,
		LifestyleRiskFactors: request.LifestyleRiskFactors,
		TestsID:              request.TestsID,
		PrescriptionsID:      request.PrescriptionsID,
	}

	reportID, err := uc.ReportRepository.CreateDetailedReport(ctx, report)
	if err != nil {
		return nil, err
	}

	if uc.EventPublisher != nil {
		if publishErr := uc.EventPublisher.PublishRecordEvent(ctx, constvars.EventReportSaved, report); publishErr != nil {
			uc.Log.Warn("reportUsecase.SaveDetailedReport event publish failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(publishErr),
			)
		}
	}

	return &responses.SaveDetailedReport{ReportID: reportID}, nil
}

func (uc *reportUsecase) GetDetailedReport(ctx context.Context, patientID string) (*models.DetailedReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.GetDetailedReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	report, err := uc.ReportRepository.FindDetailedReportByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrReportNotFound(nil)
	}
	return report, nil
}

func (uc *reportUsecase) GetReports(ctx context.Context, patientID string, limit int) ([]models.ReportSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.GetReports called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int("limit", limit),
	)

	summaries, err := uc.ReportRepository.FindReportSummariesByPatientID(ctx, patientID, limit)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, exceptions.ErrReportsNotFound(nil)
	}

	for i := range summaries {
		summaries[i].ReportFile = constvars.ReportFileSentinel
	}
	return summaries, nil
}
