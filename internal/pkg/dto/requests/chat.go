package requests

import "medrecord-service/internal/app/models"

// Chat is the doctor-assistant request: free-form patient context plus the
// running conversation, latest doctor query last.
type Chat struct {
	Context      string               `json:"context"`
	Conversation []models.ChatMessage `json:"conversation" validate:"required,min=1"`
}
