package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"hirelens/internal/model"
)

// ReportCache keeps finished evaluations hot so the HR dashboard does
// not hit Mongo on every poll.
type ReportCache interface {
	Set(ctx context.Context, rec *model.FinalRecommendation) error
	Get(ctx context.Context, sessionID string) (*model.FinalRecommendation, error)
}

const reportTTL = 2 * time.Hour

type reportCache struct {
	client *redis.Client
}

func NewReportCache(client *redis.Client) ReportCache {
	return &reportCache{client: client}
}

func (c *reportCache) Set(ctx context.Context, rec *model.FinalRecommendation) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "report:"+rec.SessionID, data, reportTTL).Err()
}

func (c *reportCache) Get(ctx context.Context, sessionID string) (*model.FinalRecommendation, error) {
	data, err := c.client.Get(ctx, "report:"+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var rec model.FinalRecommendation
	err = json.Unmarshal([]byte(data), &rec)
	return &rec, err
}
