package notification

import (
	"context"

	"photomarket/internal/moderation"
)

// Service adapts the repository to the engine's sink contract and backs
// the notification endpoints.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, e moderation.Event) error {
	n := &Notification{
		ID:             e.NotificationID,
		Type:           e.Type,
		Title:          e.Title,
		Message:        e.Message,
		UserID:         e.UserID,
		RelatedID:      e.RelatedID,
		ActionRequired: e.ActionRequired,
		CreatedAt:      e.CreatedAt,
	}
	return s.repo.Insert(ctx, n)
}

func (s *Service) Resolve(ctx context.Context, relatedID, suffix string) error {
	return s.repo.ResolveActionRequired(ctx, relatedID, suffix)
}

func (s *Service) List(ctx context.Context, userID string, limit int) ([]Notification, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *Service) ListActionRequired(ctx context.Context, userID string) ([]Notification, error) {
	return s.repo.ListActionRequired(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, userID, id string) error {
	return s.repo.MarkRead(ctx, userID, id)
}
