package taxonomy

import (
	"context"
	"errors"
	"testing"

	"photomarket/internal/moderation"
)

type memStore struct {
	items map[string]moderation.Content
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string]moderation.Content)}
}

func (s *memStore) Find(_ context.Context, id string) (moderation.Content, error) {
	c, ok := s.items[id]
	if !ok {
		return nil, &moderation.NotFoundError{ID: id}
	}
	return c, nil
}

func (s *memStore) List(_ context.Context, _ moderation.Filter) ([]moderation.Content, error) {
	var out []moderation.Content
	for _, c := range s.items {
		out = append(out, c)
	}
	return out, nil
}

func (s *memStore) Insert(_ context.Context, c moderation.Content) error {
	s.items[c.Moderation().ID] = c
	return nil
}

func (s *memStore) Update(_ context.Context, c moderation.Content, expectedVersion int64) error {
	if _, ok := s.items[c.Moderation().ID]; !ok {
		return &moderation.NotFoundError{ID: c.Moderation().ID}
	}
	c.Moderation().Version = expectedVersion + 1
	s.items[c.Moderation().ID] = c
	return nil
}

type nopSink struct{}

func (nopSink) Create(context.Context, moderation.Event) error { return nil }
func (nopSink) Resolve(context.Context, string, string) error  { return nil }

type fakeCategories struct{ names []string }

func (f *fakeCategories) Ensure(_ context.Context, name string) error {
	f.names = append(f.names, name)
	return nil
}
func (f *fakeCategories) List(context.Context) ([]Category, error) { return nil, nil }

type fakeCities struct{ cities [][2]string }

func (f *fakeCities) Ensure(_ context.Context, name, region string) error {
	f.cities = append(f.cities, [2]string{name, region})
	return nil
}
func (f *fakeCities) List(context.Context) ([]City, error) { return nil, nil }

func newTestService() (*Service, *moderation.Engine, *fakeCategories, *fakeCities) {
	engine := moderation.NewEngine(moderation.NewNotifier(nopSink{}, nil, nil))
	engine.Register(moderation.KindCategorySuggestion, newMemStore())
	engine.Register(moderation.KindCitySuggestion, newMemStore())
	categories := &fakeCategories{}
	cities := &fakeCities{}
	svc := NewService(engine, categories, cities)
	return svc, engine, categories, cities
}

func TestSuggestStartsPending(t *testing.T) {
	svc, _, _, _ := newTestService()

	sug, err := svc.Suggest(context.Background(), "p1", "Priya", SuggestCity, "Pune", "Maharashtra")
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if sug.Status != moderation.StatusPending {
		t.Fatalf("expected pending, got %s", sug.Status)
	}
	if sug.DisplayTitle() != "Pune, Maharashtra" {
		t.Fatalf("unexpected display title %q", sug.DisplayTitle())
	}
}

func TestSuggestRejectsUnknownKind(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.Suggest(context.Background(), "p1", "Priya", "venue", "Somewhere", "")
	var ve *moderation.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestApprovedCitySuggestionBecomesCity(t *testing.T) {
	svc, engine, _, cities := newTestService()
	ctx := context.Background()

	sug, err := svc.Suggest(ctx, "p1", "Priya", SuggestCity, "Pune", "Maharashtra")
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if _, err := engine.Decide(ctx, sug.ID, moderation.ActionApprove, moderation.AdminID, "Admin", false); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if len(cities.cities) != 1 || cities.cities[0] != [2]string{"Pune", "Maharashtra"} {
		t.Fatalf("city not promoted: %v", cities.cities)
	}
}

func TestApprovedCategorySuggestionBecomesCategory(t *testing.T) {
	svc, engine, categories, _ := newTestService()
	ctx := context.Background()

	sug, err := svc.Suggest(ctx, "p1", "Priya", SuggestCategory, "Astrophotography", "")
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if _, err := engine.Decide(ctx, sug.ID, moderation.ActionApprove, moderation.AdminID, "Admin", false); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if len(categories.names) != 1 || categories.names[0] != "Astrophotography" {
		t.Fatalf("category not promoted: %v", categories.names)
	}
}

func TestRejectedSuggestionIsNotPromoted(t *testing.T) {
	svc, engine, categories, cities := newTestService()
	ctx := context.Background()

	sug, err := svc.Suggest(ctx, "p1", "Priya", SuggestCategory, "Drone", "")
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if _, err := engine.Decide(ctx, sug.ID, moderation.ActionReject, moderation.AdminID, "Admin", false); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if len(categories.names) != 0 || len(cities.cities) != 0 {
		t.Fatal("rejected suggestion must not be promoted")
	}
}
