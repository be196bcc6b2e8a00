package moderation

import "context"

// Filter narrows a List call. Zero values mean "any".
type Filter struct {
	OwnerID    string
	Status     Status
	ShowOnHome *bool
	Limit      int
}

// Store is the per-kind persistence contract. Update is a compare-and-swap
// on the entity's Version: it fails with ConflictError when the stored
// version no longer matches expectedVersion, and with NotFoundError when
// the row is gone.
type Store interface {
	Find(ctx context.Context, id string) (Content, error)
	List(ctx context.Context, f Filter) ([]Content, error)
	Insert(ctx context.Context, c Content) error
	Update(ctx context.Context, c Content, expectedVersion int64) error
}
