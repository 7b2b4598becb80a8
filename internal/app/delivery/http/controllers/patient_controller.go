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
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	PatientUsecase contracts.PatientUsecase
}

func NewPatientController(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	patientUsecase contracts.PatientUsecase,
) *PatientController {
	return &PatientController{
		Log:            logger,
		InternalConfig: internalConfig,
		PatientUsecase: patientUsecase,
	}
}

func (c *PatientController) SavePatient(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SavePatient)
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

	result, err := c.PatientUsecase.SavePatient(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SavePatientSuccessMessage, result)
}

func (c *PatientController) GetPatientDetails(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(c.InternalConfig.App.StoreTimeoutInSeconds)*time.Second)
	defer cancel()

	patient, err := c.PatientUsecase.GetPatientDetails(ctx, patientID)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, patient)
}
