package contracts

import (
	"context"
	"medrecord-service/internal/app/models"
)

// ModelClient talks to the external OpenAI-compatible model endpoint. Both
// methods return the model's raw text; callers own parsing and timeouts.
type ModelClient interface {
	Complete(ctx context.Context, messages []models.ChatMessage) (string, error)
	CompleteWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}
