package notification

import (
	"context"
	"encoding/json"
	"log"

	"photomarket/internal/moderation"
	"photomarket/pkg/kafka"
)

// ConsumerHandler feeds events from the moderation topic into the recent
// cache and the live stream. The durable row was already written by the
// engine before the event was published.
func ConsumerHandler(cache *Cache, hub *Hub) kafka.Handler {
	return func(ctx context.Context, topic string, key, value []byte) error {
		var e moderation.Event
		if err := json.Unmarshal(value, &e); err != nil {
			log.Printf("[notifier] bad event payload (key=%s): %v", string(key), err)
			return nil // poison message, do not redeliver
		}
		n := Notification{
			ID:             e.NotificationID,
			Type:           e.Type,
			Title:          e.Title,
			Message:        e.Message,
			UserID:         e.UserID,
			RelatedID:      e.RelatedID,
			ActionRequired: e.ActionRequired,
			CreatedAt:      e.CreatedAt,
		}
		if cache != nil {
			if err := cache.Push(ctx, n); err != nil {
				log.Printf("[notifier] cache push failed user=%s: %v", n.UserID, err)
			}
		}
		if hub != nil {
			hub.Broadcast(n)
		}
		return nil
	}
}
