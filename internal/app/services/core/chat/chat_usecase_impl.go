package chat

import (
	"context"
	"fmt"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

var (
	chatUsecaseInstance contracts.ChatUsecase
	onceChatUsecase     sync.Once
)

// chatUsecase is the doctor-facing assistant: it grounds the chat model in
// the supplied patient context and returns the extended conversation so the
// client can feed it straight back on the next turn.
type chatUsecase struct {
	ModelClient contracts.ModelClient
	Log         *zap.Logger
}

func NewChatUsecase(modelClient contracts.ModelClient, logger *zap.Logger) contracts.ChatUsecase {
	onceChatUsecase.Do(func() {
		chatUsecaseInstance = &chatUsecase{
			ModelClient: modelClient,
			Log:         logger,
		}
	})
	return chatUsecaseInstance
}

func (uc *chatUsecase) Converse(ctx context.Context, request *requests.Chat) (*responses.Chat, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatUsecase.Converse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("conversation_length", len(request.Conversation)),
	)

	messages := make([]models.ChatMessage, 0, len(request.Conversation)+1)
	messages = append(messages, models.ChatMessage{
		Role:    constvars.ChatRoleSystem,
		Content: fmt.Sprintf(constvars.DoctorChatSystemPromptFormat, request.Context),
	})
	messages = append(messages, request.Conversation...)

	reply, err := uc.ModelClient.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}

	conversation := append(request.Conversation, models.ChatMessage{
		Role:    constvars.ChatRoleAssistant,
		Content: reply,
	})

	return &responses.Chat{
		Response:     reply,
		Conversation: conversation,
	}, nil
}
