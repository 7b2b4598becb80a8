package responses

import "medrecord-service/internal/app/models"

type Chat struct {
	Response     string               `json:"response"`
	Conversation []models.ChatMessage `json:"conversation"`
}
