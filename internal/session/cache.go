package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"talentreq-client/internal/common/database"
	"talentreq-client/internal/models"
)

const (
	screeningKey = "talentreq:screening:current"
	defaultTTL   = 30 * time.Minute
)

// Cache mirrors the active screening session (session id + roster) into
// redis so a restarted or sibling process picks up where the last one left
// off. The store works fine without one.
type Cache struct {
	client *database.RedisClient
	ttl    time.Duration
}

func NewCache(client *database.RedisClient) *Cache {
	return &Cache{client: client, ttl: defaultTTL}
}

// Save stores the screening slice of the snapshot under the fixed key.
func (c *Cache) Save(ctx context.Context, snap models.SessionSnapshot) error {
	payload, err := json.Marshal(cachedScreening{
		SessionID:   snap.SessionID,
		JobResponse: snap.JobResponse,
	})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, screeningKey, payload, c.ttl)
}

// Load returns the cached screening state, or nil when nothing is cached.
func (c *Cache) Load(ctx context.Context) (*models.SessionSnapshot, error) {
	raw, err := c.client.Get(ctx, screeningKey)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var cached cachedScreening
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, err
	}

	return &models.SessionSnapshot{
		SessionID:   cached.SessionID,
		JobResponse: cached.JobResponse,
	}, nil
}

// Clear drops the cached screening state.
func (c *Cache) Clear(ctx context.Context) error {
	return c.client.Del(ctx, screeningKey)
}

type cachedScreening struct {
	SessionID   string                 `json:"session_id"`
	JobResponse *models.TalentResponse `json:"job_response,omitempty"`
}
