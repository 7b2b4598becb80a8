package controllers

import (
	"context"
	"errors"
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type QuestionnaireController struct {
	Log                  *zap.Logger
	InternalConfig       *config.InternalConfig
	QuestionnaireUsecase contracts.QuestionnaireUsecase
}

func NewQuestionnaireController(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	questionnaireUsecase contracts.QuestionnaireUsecase,
) *QuestionnaireController {
	return &QuestionnaireController{
		Log:                  logger,
		InternalConfig:       internalConfig,
		QuestionnaireUsecase: questionnaireUsecase,
	}
}

func (c *QuestionnaireController) GetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Questionnaire{
		Questions: c.QuestionnaireUsecase.FirstStageQuestions(),
	})
}

func (c *QuestionnaireController) SubmitResponses(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitResponses)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(c.InternalConfig.App.ModelTimeoutInSeconds)*time.Second)
	defer cancel()

	derived, err := c.QuestionnaireUsecase.SubmitFirstStage(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, responses.NextQuestions{NextQuestions: derived})
}

func (c *QuestionnaireController) SubmitSecondResponses(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitResponses)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(c.InternalConfig.App.ModelTimeoutInSeconds)*time.Second)
	defer cancel()

	report, err := c.QuestionnaireUsecase.SubmitSecondStage(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, responses.FinalReport{FinalReport: report})
}
