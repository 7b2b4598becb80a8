package chat

import (
	"context"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubModelClient struct {
	seenMessages []models.ChatMessage
	output       string
	err          error
}

func (s *stubModelClient) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	s.seenMessages = messages
	return s.output, s.err
}

func (s *stubModelClient) CompleteWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	return s.output, s.err
}

func TestConverse_GroundsSystemPromptInContext(t *testing.T) {
	client := &stubModelClient{output: "The patient is on metformin."}
	uc := &chatUsecase{ModelClient: client, Log: zap.NewNop()}

	result, err := uc.Converse(context.Background(), &requests.Chat{
		Context: "Patient takes metformin 500mg daily.",
		Conversation: []models.ChatMessage{
			{Role: constvars.ChatRoleUser, Content: "What medication is the patient on?"},
		},
	})
	require.NoError(t, err)

	require.Len(t, client.seenMessages, 2)
	assert.Equal(t, constvars.ChatRoleSystem, client.seenMessages[0].Role)
	assert.True(t, strings.Contains(client.seenMessages[0].Content, "metformin 500mg"))

	assert.Equal(t, "The patient is on metformin.", result.Response)
	require.Len(t, result.Conversation, 2)
	assert.Equal(t, constvars.ChatRoleAssistant, result.Conversation[1].Role)
}
