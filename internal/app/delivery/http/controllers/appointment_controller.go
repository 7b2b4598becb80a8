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

type AppointmentController struct {
	Log                *zap.Logger
	InternalConfig     *config.InternalConfig
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	appointmentUsecase contracts.AppointmentUsecase,
) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		InternalConfig:     internalConfig,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (c *AppointmentController) SaveAppointment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SaveAppointment)
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

	result, err := c.AppointmentUsecase.SaveAppointment(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SaveAppointmentSuccessMessage, result)
}

func (c *AppointmentController) GetAppointmentDetails(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(c.InternalConfig.App.StoreTimeoutInSeconds)*time.Second)
	defer cancel()

	appointment, err := c.AppointmentUsecase.GetAppointmentDetails(ctx, appointmentID)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, appointment)
}

func (c *AppointmentController) GetAppointments(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)

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

	appointments, err := c.AppointmentUsecase.GetAppointments(ctx, doctorID, limit)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, appointments)
}
