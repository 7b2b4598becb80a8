package controllers

import (
	"context"
	"errors"
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReportController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	ReportUsecase  contracts.ReportUsecase
}

func NewReportController(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	reportUsecase contracts.ReportUsecase,
) *ReportController {
	return &ReportController{
		Log:            logger,
		InternalConfig: internalConfig,
		ReportUsecase:  reportUsecase,
	}
}

func (c *ReportController) SaveDetailedReport(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SaveDetailedReport)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(c.InternalConfig.App.StoreTimeoutInSeconds)*time.Second)
	defer cancel()

	result, err := c.ReportUsecase.SaveDetailedReport(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SaveDetailedReportSuccessMessage, result)
}

func (c *ReportController) GetDetailedReport(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(c.InternalConfig.App.StoreTimeoutInSeconds)*time.Second)
	defer cancel()

	report, err := c.ReportUsecase.GetDetailedReport(ctx, patientID)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, report)
}

func (c *ReportController) GetReports(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	// n is optional here; when absent every report is returned.
	limit := 0
	if rawLimit := r.URL.Query().Get(constvars.URLQueryParamN); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 1 {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrInvalidFetchLimit(err))
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(c.InternalConfig.App.StoreTimeoutInSeconds)*time.Second)
	defer cancel()

	summaries, err := c.ReportUsecase.GetReports(ctx, patientID, limit)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, summaries)
}
