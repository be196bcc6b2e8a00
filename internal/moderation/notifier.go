package moderation

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

// Event is one notification produced by a state transition. It is both the
// durable row handed to the sink and the payload published to Kafka for
// downstream delivery (recent-cache, live stream).
type Event struct {
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	RelatedID      string    `json:"related_id"`
	ActionRequired bool      `json:"action_required"`
	CreatedAt      time.Time `json:"created_at"`
}

// NotificationSink is the durable notification store.
type NotificationSink interface {
	Create(ctx context.Context, e Event) error
	// Resolve flips action_required off on every notification pointing at
	// relatedID and appends suffix to their message as an audit trail.
	Resolve(ctx context.Context, relatedID, suffix string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type IdempotencyStore interface {
	PutNX(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Notifier fans a transition out to the sink and the event bus. Emission is
// best-effort: by the time it runs, the content write has already committed,
// so failures are logged and swallowed rather than failing the transition.
type Notifier struct {
	sink    NotificationSink
	events  EventPublisher
	idem    IdempotencyStore
	idemTTL time.Duration
}

func NewNotifier(sink NotificationSink, events EventPublisher, idem IdempotencyStore) *Notifier {
	return &Notifier{sink: sink, events: events, idem: idem, idemTTL: 24 * time.Hour}
}

// Emit fires one notification. A non-empty idemKey dedupes retried calls so
// a replayed decide does not double-fire.
func (n *Notifier) Emit(ctx context.Context, idemKey string, e Event) {
	if n.idem != nil && idemKey != "" {
		ok, err := n.idem.PutNX(ctx, idemKey, n.idemTTL)
		if err != nil {
			log.Printf("[notify] idempotency check failed, emitting anyway: %v", err)
		} else if !ok {
			log.Printf("[notify] duplicate emission suppressed key=%s", idemKey)
			return
		}
	}

	e.NotificationID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()

	if err := n.sink.Create(ctx, e); err != nil {
		log.Printf("[notify] store write failed type=%s user=%s: %v", e.Type, e.UserID, err)
		return
	}
	if n.events != nil {
		b, _ := json.Marshal(e)
		if err := n.events.Publish(ctx, e.UserID, b); err != nil {
			log.Printf("[notify] publish failed type=%s user=%s: %v", e.Type, e.UserID, err)
		}
	}
}

// Resolve marks the admin request notifications for relatedID as handled.
func (n *Notifier) Resolve(ctx context.Context, relatedID, suffix string) {
	if err := n.sink.Resolve(ctx, relatedID, suffix); err != nil {
		log.Printf("[notify] resolve failed related=%s: %v", relatedID, err)
	}
}
