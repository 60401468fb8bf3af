package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"hirelens/internal/model"
)

type SessionCache interface {
	Set(ctx context.Context, session *model.InterviewSession) error
	Get(ctx context.Context, id string) (*model.InterviewSession, error)
	Delete(ctx context.Context, id string) error
}

const sessionTTL = 30 * time.Minute

type sessionCache struct {
	client *redis.Client
}

func NewSessionCache(client *redis.Client) SessionCache {
	return &sessionCache{client: client}
}

func (c *sessionCache) Set(ctx context.Context, session *model.InterviewSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "session:"+session.ID, data, sessionTTL).Err()
}

func (c *sessionCache) Get(ctx context.Context, id string) (*model.InterviewSession, error) {
	data, err := c.client.Get(ctx, "session:"+id).Result()
	if err != nil {
		return nil, err
	}
	var session model.InterviewSession
	err = json.Unmarshal([]byte(data), &session)
	return &session, err
}

func (c *sessionCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, "session:"+id).Err()
}
