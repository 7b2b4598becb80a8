package contracts

import (
	"context"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
)

type ReportUsecase interface {
	SaveDetailedReport(ctx context.Context, request *requests.SaveDetailedReport) (*responses.SaveDetailedReport, error)
	GetDetailedReport(ctx context.Context, patientID string) (*models.DetailedReport, error)
	// GetReports returns summaries most-recent-first; limit <= 0 means all.
	GetReports(ctx context.Context, patientID string, limit int) ([]models.ReportSummary, error)
}

type ReportRepository interface {
	CreateDetailedReport(ctx context.Context, report *models.DetailedReport) (string, error)
	FindDetailedReportByPatientID(ctx context.Context, patientID string) (*models.DetailedReport, error)
	FindReportSummariesByPatientID(ctx context.Context, patientID string, limit int) ([]models.ReportSummary, error)
}
