package sessionstore

import (
	"context"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// redisSessionStore keeps questionnaire sessions in Redis with a native TTL,
// so eviction needs no bookkeeping on our side.
type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) contracts.SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *redisSessionStore) FindSession(ctx context.Context, sessionID string) (*models.QuestionnaireSession, error) {
	data, err := s.client.Get(ctx, constvars.SessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}

	session := new(models.QuestionnaireSession)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *redisSessionStore) SaveSession(ctx context.Context, session *models.QuestionnaireSession) error {
	jsonValue, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := s.client.Set(ctx, constvars.SessionKeyPrefix+session.ID, jsonValue, s.ttl).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (s *redisSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, constvars.SessionKeyPrefix+sessionID).Err(); err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
