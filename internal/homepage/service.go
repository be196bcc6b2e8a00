package homepage

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"photomarket/internal/moderation"
)

const cacheKey = "homepage:feed"

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// feed is the public homepage payload: approved content the admin chose to
// feature. Nothing else may ever appear here.
type feed struct {
	Galleries []moderation.Content `json:"galleries"`
	Stories   []moderation.Content `json:"stories"`
}

type Service struct {
	galleries moderation.Store
	stories   moderation.Store
	cache     Cache
	ttl       time.Duration
}

func NewService(galleries, stories moderation.Store, cache Cache) *Service {
	return &Service{galleries: galleries, stories: stories, ttl: time.Minute, cache: cache}
}

// Feed returns the serialized homepage payload. The cache holds the final
// JSON, so a hit costs nothing but the Redis round trip.
func (s *Service) Feed(ctx context.Context) (json.RawMessage, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			return json.RawMessage(cached), nil
		}
	}

	visible := true
	filter := moderation.Filter{
		Status:     moderation.StatusApproved,
		ShowOnHome: &visible,
		Limit:      20,
	}
	galleries, err := s.galleries.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	stories, err := s.stories.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if galleries == nil {
		galleries = []moderation.Content{}
	}
	if stories == nil {
		stories = []moderation.Content{}
	}

	b, err := json.Marshal(feed{Galleries: galleries, Stories: stories})
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, string(b), s.ttl); err != nil {
			log.Printf("[homepage] cache set failed: %v", err)
		}
	}
	return b, nil
}

// Invalidate drops the cached feed after a homepage-affecting transition.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKey); err != nil {
		log.Printf("[homepage] cache invalidate failed: %v", err)
	}
}
