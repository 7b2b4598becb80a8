package questionnaires

import (
	"context"
	"fmt"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/app/services/shared/sessionstore"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubModelClient struct {
	output string
	err    error
}

func (s *stubModelClient) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	return s.output, s.err
}

func (s *stubModelClient) CompleteWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	return s.output, s.err
}

func newTestQuestionnaireUsecase(client *stubModelClient) *questionnaireUsecase {
	return &questionnaireUsecase{
		SessionRepository: sessionstore.NewMemorySessionStore(100, time.Minute),
		ModelClient:       client,
		Log:               zap.NewNop(),
	}
}

func firstStageRequest(userID string) *requests.SubmitResponses {
	return &requests.SubmitResponses{
		UserID: userID,
		Responses: map[string]string{
			"What brings you in today? (Chief Complaint)": "persistent cough",
		},
	}
}

func TestFirstStageQuestions_Fixed(t *testing.T) {
	uc := newTestQuestionnaireUsecase(&stubModelClient{})

	questions := uc.FirstStageQuestions()
	require.Len(t, questions, 13)
	assert.Equal(t, uc.FirstStageQuestions(), questions)
}

func TestSubmitFirstStage_ReturnsDerivedQuestions(t *testing.T) {
	client := &stubModelClient{
		output: `[{"category": "Medical History", "question": "How long has the cough lasted?"}]`,
	}
	uc := newTestQuestionnaireUsecase(client)

	derived, err := uc.SubmitFirstStage(context.Background(), firstStageRequest("user-1"))
	require.NoError(t, err)
	require.Len(t, derived, 1)
	assert.Equal(t, "How long has the cough lasted?", derived[0].Question)

	session, err := uc.SessionRepository.FindSession(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, models.SessionStageFirstSubmitted, session.Stage)
}

func TestSubmitFirstStage_MalformedModelOutput(t *testing.T) {
	client := &stubModelClient{output: "let me think about that"}
	uc := newTestQuestionnaireUsecase(client)

	_, err := uc.SubmitFirstStage(context.Background(), firstStageRequest("user-1"))
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)

	// A failed first stage must not leave a session behind.
	session, findErr := uc.SessionRepository.FindSession(context.Background(), "user-1")
	require.NoError(t, findErr)
	assert.Nil(t, session)
}

func TestSubmitSecondStage_UnknownSession(t *testing.T) {
	uc := newTestQuestionnaireUsecase(&stubModelClient{output: "report"})

	_, err := uc.SubmitSecondStage(context.Background(), firstStageRequest("ghost"))
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestSubmitSecondStage_HappyPath(t *testing.T) {
	client := &stubModelClient{
		output: `[{"category": "Medical History", "question": "Any fever?"}]`,
	}
	uc := newTestQuestionnaireUsecase(client)

	_, err := uc.SubmitFirstStage(context.Background(), firstStageRequest("user-1"))
	require.NoError(t, err)

	client.output = "Comprehensive medical report for the patient."
	report, err := uc.SubmitSecondStage(context.Background(), &requests.SubmitResponses{
		UserID:    "user-1",
		Responses: map[string]string{"Any fever?": "no"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Comprehensive medical report for the patient.", report)

	session, err := uc.SessionRepository.FindSession(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, models.SessionStageSecondSubmitted, session.Stage)
}

func TestSubmitSecondStage_RejectsRepeat(t *testing.T) {
	client := &stubModelClient{
		output: `[{"category": "Medical History", "question": "Any fever?"}]`,
	}
	uc := newTestQuestionnaireUsecase(client)

	_, err := uc.SubmitFirstStage(context.Background(), firstStageRequest("user-1"))
	require.NoError(t, err)

	client.output = "final report"
	secondStage := &requests.SubmitResponses{
		UserID:    "user-1",
		Responses: map[string]string{"Any fever?": "no"},
	}
	_, err = uc.SubmitSecondStage(context.Background(), secondStage)
	require.NoError(t, err)

	_, err = uc.SubmitSecondStage(context.Background(), secondStage)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
}

func TestSubmitFirstStage_RejectsCompletedSession(t *testing.T) {
	client := &stubModelClient{
		output: `[{"category": "Medical History", "question": "Any fever?"}]`,
	}
	uc := newTestQuestionnaireUsecase(client)

	_, err := uc.SubmitFirstStage(context.Background(), firstStageRequest("user-1"))
	require.NoError(t, err)

	client.output = "final report"
	_, err = uc.SubmitSecondStage(context.Background(), &requests.SubmitResponses{
		UserID:    "user-1",
		Responses: map[string]string{"Any fever?": "no"},
	})
	require.NoError(t, err)

	client.output = `[{"category": "Lifestyle", "question": "Do you smoke?"}]`
	_, err = uc.SubmitFirstStage(context.Background(), firstStageRequest("user-1"))
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
}

func TestQuestionnaire_IndependentSessions(t *testing.T) {
	client := &stubModelClient{
		output: `[{"category": "Medical History", "question": "Any fever?"}]`,
	}
	uc := newTestQuestionnaireUsecase(client)

	_, err := uc.SubmitFirstStage(context.Background(), firstStageRequest("user-a"))
	require.NoError(t, err)
	_, err = uc.SubmitFirstStage(context.Background(), firstStageRequest("user-b"))
	require.NoError(t, err)

	client.output = "report for a"
	_, err = uc.SubmitSecondStage(context.Background(), &requests.SubmitResponses{
		UserID:    "user-a",
		Responses: map[string]string{"Any fever?": "yes"},
	})
	require.NoError(t, err)

	// Finishing user-a leaves user-b free to finish too.
	client.output = "report for b"
	report, err := uc.SubmitSecondStage(context.Background(), &requests.SubmitResponses{
		UserID:    "user-b",
		Responses: map[string]string{"Any fever?": "no"},
	})
	require.NoError(t, err)
	assert.Equal(t, "report for b", report)
}

func TestSubmitSecondStage_ConcurrentSubmissionsSingleSuccess(t *testing.T) {
	client := &stubModelClient{
		output: `[{"category": "Medical History", "question": "Any fever?"}]`,
	}
	uc := newTestQuestionnaireUsecase(client)

	_, err := uc.SubmitFirstStage(context.Background(), firstStageRequest("user-1"))
	require.NoError(t, err)

	client.output = "final report"

	const workers = 8
	var wg sync.WaitGroup
	results := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = uc.SubmitSecondStage(context.Background(), &requests.SubmitResponses{
				UserID:    "user-1",
				Responses: map[string]string{"Any fever?": "no"},
			})
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, submitErr := range results {
		if submitErr == nil {
			successes++
			continue
		}
		var customErr *exceptions.CustomError
		require.ErrorAs(t, submitErr, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	}
	assert.Equal(t, 1, successes)

	session, err := uc.SessionRepository.FindSession(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, models.SessionStageSecondSubmitted, session.Stage)
}

func TestSubmitFirstStage_ConcurrentDistinctSessions(t *testing.T) {
	client := &stubModelClient{
		output: `[{"category": "Medical History", "question": "Any fever?"}]`,
	}
	uc := newTestQuestionnaireUsecase(client)

	const workers = 16
	var wg sync.WaitGroup
	results := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = uc.SubmitFirstStage(context.Background(), firstStageRequest(fmt.Sprintf("user-%d", i)))
		}(i)
	}
	wg.Wait()

	for i, submitErr := range results {
		require.NoError(t, submitErr, "user-%d", i)

		session, err := uc.SessionRepository.FindSession(context.Background(), fmt.Sprintf("user-%d", i))
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, models.SessionStageFirstSubmitted, session.Stage)
	}
}
