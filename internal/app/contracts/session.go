package contracts

import (
	"context"
	"medrecord-service/internal/app/models"
)

// SessionRepository stores questionnaire sessions. Implementations must be
// safe for concurrent use and must bound growth (capacity and/or TTL).
type SessionRepository interface {
	// FindSession returns (nil, nil) when the session does not exist.
	FindSession(ctx context.Context, sessionID string) (*models.QuestionnaireSession, error)
	SaveSession(ctx context.Context, session *models.QuestionnaireSession) error
	DeleteSession(ctx context.Context, sessionID string) error
}
