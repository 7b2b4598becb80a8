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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ChatController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	ChatUsecase    contracts.ChatUsecase
}

func NewChatController(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	chatUsecase contracts.ChatUsecase,
) *ChatController {
	return &ChatController{
		Log:            logger,
		InternalConfig: internalConfig,
		ChatUsecase:    chatUsecase,
	}
}

func (c *ChatController) Converse(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Chat)
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

	result, err := c.ChatUsecase.Converse(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
