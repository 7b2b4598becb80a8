package contracts

import (
	"context"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
)

type QuestionnaireUsecase interface {
	FirstStageQuestions() []models.Question
	SubmitFirstStage(ctx context.Context, request *requests.SubmitResponses) ([]models.DerivedQuestion, error)
	SubmitSecondStage(ctx context.Context, request *requests.SubmitResponses) (string, error)
}
