package questionnaires

import (
	"context"
	"fmt"
	"hash/fnv"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const sessionLockStripes = 64

var (
	questionnaireUsecaseInstance contracts.QuestionnaireUsecase
	onceQuestionnaireUsecase     sync.Once
)

// questionnaireUsecase drives the two-stage intake flow. Stage transitions
// for one session are serialized through striped locks so a session can never
// be finalized twice, while sessions on different stripes proceed in
// parallel. The model call itself runs outside the lock; the stage is
// re-checked before the final write.
type questionnaireUsecase struct {
	SessionRepository contracts.SessionRepository
	ModelClient       contracts.ModelClient
	Log               *zap.Logger

	sessionLocks [sessionLockStripes]sync.Mutex
}

func NewQuestionnaireUsecase(
	sessionRepository contracts.SessionRepository,
	modelClient contracts.ModelClient,
	logger *zap.Logger,
) contracts.QuestionnaireUsecase {
	onceQuestionnaireUsecase.Do(func() {
		questionnaireUsecaseInstance = &questionnaireUsecase{
			SessionRepository: sessionRepository,
			ModelClient:       modelClient,
			Log:               logger,
		}
	})
	return questionnaireUsecaseInstance
}

func (uc *questionnaireUsecase) lockSession(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	lock := &uc.sessionLocks[h.Sum32()%sessionLockStripes]
	lock.Lock()
	return lock
}

func (uc *questionnaireUsecase) FirstStageQuestions() []models.Question {
	return models.FirstStageQuestionnaire()
}

func (uc *questionnaireUsecase) SubmitFirstStage(ctx context.Context, request *requests.SubmitResponses) ([]models.DerivedQuestion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireUsecase.SubmitFirstStage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, request.UserID),
	)

	lock := uc.lockSession(request.UserID)
	existing, err := uc.SessionRepository.FindSession(ctx, request.UserID)
	if err != nil {
		lock.Unlock()
		return nil, err
	}
	if existing != nil && existing.Stage == models.SessionStageSecondSubmitted {
		lock.Unlock()
		return nil, exceptions.ErrSessionAlreadyCompleted(nil)
	}
	lock.Unlock()

	derived, err := uc.deriveFollowupQuestions(ctx, request.Responses)
	if err != nil {
		return nil, err
	}

	lock = uc.lockSession(request.UserID)
	defer lock.Unlock()

	// Re-check: another submission may have finalized the session while the
	// model call was in flight.
	existing, err = uc.SessionRepository.FindSession(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Stage == models.SessionStageSecondSubmitted {
		return nil, exceptions.ErrSessionAlreadyCompleted(nil)
	}

	now := time.Now().UTC()
	session := &models.QuestionnaireSession{
		ID:                  request.UserID,
		Stage:               models.SessionStageFirstSubmitted,
		FirstStageResponses: request.Responses,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if existing != nil {
		session.CreatedAt = existing.CreatedAt
	}
	if err := uc.SessionRepository.SaveSession(ctx, session); err != nil {
		return nil, exceptions.ErrSessionStoreWrite(err)
	}

	return derived, nil
}

func (uc *questionnaireUsecase) SubmitSecondStage(ctx context.Context, request *requests.SubmitResponses) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireUsecase.SubmitSecondStage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, request.UserID),
	)

	lock := uc.lockSession(request.UserID)
	session, err := uc.SessionRepository.FindSession(ctx, request.UserID)
	if err != nil {
		lock.Unlock()
		return "", err
	}
	if session == nil {
		lock.Unlock()
		return "", exceptions.ErrSessionNotFound(nil)
	}
	if session.Stage == models.SessionStageSecondSubmitted {
		lock.Unlock()
		return "", exceptions.ErrSessionAlreadyCompleted(nil)
	}
	firstStageResponses := session.FirstStageResponses
	lock.Unlock()

	report, err := uc.composeFinalReport(ctx, firstStageResponses, request.Responses)
	if err != nil {
		return "", err
	}

	lock = uc.lockSession(request.UserID)
	defer lock.Unlock()

	session, err = uc.SessionRepository.FindSession(ctx, request.UserID)
	if err != nil {
		return "", err
	}
	if session == nil {
		// Evicted while the model call was running; the report is still valid
		// but the session can no longer transition.
		return "", exceptions.ErrSessionNotFound(nil)
	}
	if session.Stage == models.SessionStageSecondSubmitted {
		return "", exceptions.ErrSessionAlreadyCompleted(nil)
	}

	session.Stage = models.SessionStageSecondSubmitted
	session.SecondStageResponses = request.Responses
	session.UpdatedAt = time.Now().UTC()
	if err := uc.SessionRepository.SaveSession(ctx, session); err != nil {
		return "", exceptions.ErrSessionStoreWrite(err)
	}

	return report, nil
}

func (uc *questionnaireUsecase) deriveFollowupQuestions(ctx context.Context, responses map[string]string) ([]models.DerivedQuestion, error) {
	serialized, err := json.Marshal(responses)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	prompt := fmt.Sprintf(constvars.FollowupQuestionsPromptFormat, string(serialized))
	rawOutput, err := uc.ModelClient.Complete(ctx, []models.ChatMessage{
		{Role: constvars.ChatRoleUser, Content: prompt},
	})
	if err != nil {
		return nil, err
	}

	derived := make([]models.DerivedQuestion, 0)
	if err := utils.ExtractJSONArray(rawOutput, &derived); err != nil {
		return nil, exceptions.ErrModelMalformedOutput(err)
	}
	if len(derived) == 0 {
		return nil, exceptions.ErrModelMalformedOutput(fmt.Errorf("model returned no follow-up questions"))
	}
	for _, question := range derived {
		if question.Question == "" {
			return nil, exceptions.ErrModelMalformedOutput(fmt.Errorf("model returned a follow-up question without text"))
		}
	}
	return derived, nil
}

func (uc *questionnaireUsecase) composeFinalReport(ctx context.Context, firstStage, secondStage map[string]string) (string, error) {
	firstSerialized, err := json.Marshal(firstStage)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}
	secondSerialized, err := json.Marshal(secondStage)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	prompt := fmt.Sprintf(constvars.FinalReportPromptFormat, string(firstSerialized), string(secondSerialized))
	report, err := uc.ModelClient.Complete(ctx, []models.ChatMessage{
		{Role: constvars.ChatRoleUser, Content: prompt},
	})
	if err != nil {
		return "", err
	}
	return report, nil
}
