package contracts

import (
	"context"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
)

type ChatUsecase interface {
	Converse(ctx context.Context, request *requests.Chat) (*responses.Chat, error)
}
