package moderation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeContent struct {
	Moderated
	kind  Kind
	title string
}

func (f *fakeContent) Moderation() *Moderated { return &f.Moderated }
func (f *fakeContent) ContentKind() Kind      { return f.kind }
func (f *fakeContent) DisplayTitle() string   { return f.title }

type memStore struct {
	items      map[string]*fakeContent
	updateErr  error
	updateErrN int // fail this many updates, then succeed
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string]*fakeContent)}
}

func (s *memStore) Find(_ context.Context, id string) (Content, error) {
	c, ok := s.items[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	cp := *c
	return &cp, nil
}

func (s *memStore) List(_ context.Context, f Filter) ([]Content, error) {
	var out []Content
	for _, c := range s.items {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.ShowOnHome != nil && c.ShowOnHome != *f.ShowOnHome {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (s *memStore) Insert(_ context.Context, c Content) error {
	fc := c.(*fakeContent)
	cp := *fc
	s.items[fc.ID] = &cp
	return nil
}

func (s *memStore) Update(_ context.Context, c Content, expectedVersion int64) error {
	if s.updateErrN > 0 {
		s.updateErrN--
		return s.updateErr
	}
	fc := c.(*fakeContent)
	cur, ok := s.items[fc.ID]
	if !ok {
		return &NotFoundError{ID: fc.ID}
	}
	if cur.Version != expectedVersion {
		return &ConflictError{ID: fc.ID}
	}
	fc.Version = expectedVersion + 1
	cp := *fc
	s.items[fc.ID] = &cp
	return nil
}

type memSink struct {
	events    []Event
	resolved  []string
	createErr error
}

func (s *memSink) Create(_ context.Context, e Event) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.events = append(s.events, e)
	return nil
}

func (s *memSink) Resolve(_ context.Context, relatedID, suffix string) error {
	s.resolved = append(s.resolved, relatedID+suffix)
	return nil
}

func (s *memSink) byType(t string) []Event {
	var out []Event
	for _, e := range s.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type memIdem struct{ keys map[string]bool }

func (m *memIdem) PutNX(_ context.Context, key string, _ time.Duration) (bool, error) {
	if m.keys == nil {
		m.keys = make(map[string]bool)
	}
	if m.keys[key] {
		return false, nil
	}
	m.keys[key] = true
	return true, nil
}

func newTestEngine() (*Engine, *memStore, *memStore, *memSink) {
	sink := &memSink{}
	engine := NewEngine(NewNotifier(sink, nil, &memIdem{}))
	galleries := newMemStore()
	suggestions := newMemStore()
	engine.Register(KindGallery, galleries)
	engine.Register(KindCitySuggestion, suggestions)
	return engine, galleries, suggestions, sink
}

func mustSubmit(t *testing.T, e *Engine, c *fakeContent) *fakeContent {
	t.Helper()
	if err := e.Submit(context.Background(), c); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	return c
}

func checkInvariant(t *testing.T, c Content) {
	t.Helper()
	m := c.Moderation()
	if m.ShowOnHome && m.Status != StatusApproved {
		t.Fatalf("invariant violated: show_on_home=true with status=%s", m.Status)
	}
}

func TestSubmitInitialStates(t *testing.T) {
	engine, _, _, sink := newTestEngine()

	g := mustSubmit(t, engine, &fakeContent{
		Moderated: Moderated{OwnerID: "p1", OwnerName: "Priya"},
		kind:      KindGallery, title: "Summer Wedding",
	})
	if g.Status != StatusDraft {
		t.Fatalf("photographer gallery: expected draft, got %s", g.Status)
	}
	if g.ShowOnHome {
		t.Fatal("draft content must not be homepage-visible")
	}
	if g.ID == "" || g.Version != 1 {
		t.Fatalf("expected assigned id and version 1, got id=%q version=%d", g.ID, g.Version)
	}

	a := mustSubmit(t, engine, &fakeContent{
		Moderated: Moderated{OwnerID: AdminID, OwnerName: "Admin"},
		kind:      KindGallery, title: "Editorial Picks",
	})
	if a.Status != StatusApproved {
		t.Fatalf("admin gallery: expected approved, got %s", a.Status)
	}
	if a.ApprovedBy != AdminID || a.ApprovedAt == nil {
		t.Fatal("admin gallery must carry approval attribution")
	}

	// no admin notification for draft or auto-approved submissions
	if len(sink.events) != 0 {
		t.Fatalf("expected no notifications, got %d", len(sink.events))
	}

	s := mustSubmit(t, engine, &fakeContent{
		Moderated: Moderated{OwnerID: "p2", OwnerName: "Arjun"},
		kind:      KindCitySuggestion, title: "Pune, Maharashtra",
	})
	if s.Status != StatusPending {
		t.Fatalf("suggestion: expected pending immediately, got %s", s.Status)
	}
	admin := sink.byType("city_suggestion")
	if len(admin) != 1 {
		t.Fatalf("expected one admin suggestion notification, got %d", len(admin))
	}
	if admin[0].UserID != AdminID || !admin[0].ActionRequired || admin[0].RelatedID != s.ID {
		t.Fatalf("admin notification misaddressed: %+v", admin[0])
	}
}

func TestSubmitRequiresTitle(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	err := engine.Submit(context.Background(), &fakeContent{
		Moderated: Moderated{OwnerID: "p1", OwnerName: "Priya"},
		kind:      KindGallery, title: "   ",
	})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRequestHomepage(t *testing.T) {
	engine, galleries, _, sink := newTestEngine()
	ctx := context.Background()

	g := mustSubmit(t, engine, &fakeContent{
		Moderated: Moderated{OwnerID: "p1", OwnerName: "Priya"},
		kind:      KindGallery, title: "Summer Wedding",
	})

	updated, err := engine.RequestHomepage(ctx, g.ID)
	if err != nil {
		t.Fatalf("request homepage failed: %v", err)
	}
	if updated.Moderation().Status != StatusPending {
		t.Fatalf("expected pending, got %s", updated.Moderation().Status)
	}
	stored, _ := galleries.Find(ctx, g.ID)
	if stored.Moderation().Status != StatusPending {
		t.Fatal("pending state not persisted")
	}

	reqs := sink.byType("gallery_homepage_request")
	if len(reqs) != 1 {
		t.Fatalf("expected one homepage request notification, got %d", len(reqs))
	}
	if reqs[0].UserID != AdminID || !reqs[0].ActionRequired || reqs[0].RelatedID != g.ID {
		t.Fatalf("homepage request misaddressed: %+v", reqs[0])
	}
}

func TestDecideApproveWithHomepage(t *testing.T) {
	engine, galleries, _, sink := newTestEngine()
	ctx := context.Background()

	g := mustSubmit(t, engine, &fakeContent{
		Moderated: Moderated{OwnerID: "p1", OwnerName: "Priya"},
		kind:      KindGallery, title: "Summer Wedding",
	})
	if _, err := engine.RequestHomepage(ctx, g.ID); err != nil {
		t.Fatalf("request homepage failed: %v", err)
	}

	decided, err := engine.Decide(ctx, g.ID, ActionApprove, AdminID, "Admin", true)
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}
	m := decided.Moderation()
	if m.Status != StatusApproved || !m.ShowOnHome {
		t.Fatalf("expected approved+homepage, got status=%s show=%v", m.Status, m.ShowOnHome)
	}
	if m.ApprovedBy != AdminID || m.ApprovedByName != "Admin" || m.ApprovedAt == nil {
		t.Fatal("approval attribution missing")
	}
	checkInvariant(t, decided)

	stored, _ := galleries.Find(ctx, g.ID)
	checkInvariant(t, stored)

	owner := sink.byType("gallery_approved")
	if len(owner) != 1 {
		t.Fatalf("expected exactly one owner notification, got %d", len(owner))
	}
	if owner[0].UserID != "p1" {
		t.Fatalf("owner notification sent to %q", owner[0].UserID)
	}
	if owner[0].Title != "Gallery Approved for Homepage!" {
		t.Fatalf("unexpected title %q", owner[0].Title)
	}

	if len(sink.resolved) != 1 || !strings.Contains(sink.resolved[0], "APPROVED by Admin") {
		t.Fatalf("admin request not resolved: %v", sink.resolved)
	}
}

func TestDecideApproveWithoutHomepage(t *testing.T) {
	engine, _, _, sink := newTestEngine()
	ctx := context.Background()

	g := mustSubmit(t, engine, &fakeContent{
		Moderated: Moderated{OwnerID: "p1", OwnerName: "Priya"},
		kind:      KindGallery, title: "Summer Wedding",
	})

	decided, err := engine.Decide(ctx, g.ID, ActionApprove, AdminID, "Admin", false)
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}
	if decided.Moderation().ShowOnHome {
		t.Fatal("approval must not imply homepage placement")
	}
	if len(sink.byType("gallery_approved")) != 1 {
		t.Fatal("expected owner approval notification")
	}
}

func TestDecideReject(t *testing.T) {
	engine, galleries, _, sink := newTestEngine()
	ctx := context.Background()

	g := mustSubmit(t, engine, &fakeContent{
		Moderated: Moderated{OwnerID: "p1", OwnerName: "Priya"},
		kind:      KindGallery, title: "Summer Wedding",
	})
	// approve onto the homepage first, then reject: showOnHome must drop
	if _, err := engine.Decide(ctx, g.ID, ActionApprove, AdminID, "Admin", true); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	decided, err := engine.Decide(ctx, g.ID, ActionReject, AdminID, "Admin", false)
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	m := decided.Moderation()
	if m.Status != StatusRejected {
		t.Fatalf("expected rejected, got %s", m.Status)
	}
	if m.ShowOnHome {
		t.Fatal("reject must force show_on_home off")
	}
	if m.ApprovedBy != "" || m.ApprovedAt != nil {
		t.Fatal("rejection must clear approval attribution")
	}
	stored, _ := galleries.Find(ctx, g.ID)
	checkInvariant(t, stored)

	if len(sink.byType("gallery_rejected")) != 1 {
		t.Fatal("expected owner rejection notification")
	}
}

func TestDecideUnknownContent(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	_, err := engine.Decide(context.Background(), "nope", ActionApprove, AdminID, "Admin", false)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDecideInvalidAction(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	_, err := engine.Decide(context.Background(), "x", "publish", AdminID, "Admin", false)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDecideIsKindAgnostic(t *testing.T) {
	engine, _, suggestions, sink := newTestEngine()
	ctx := context.Background()

	s := mustSubmit(t, engine, &fakeContent{
		Moderated: Moderated{OwnerID: "p2", OwnerName: "Arjun"},
		kind:      KindCitySuggestion, title: "Pune, Maharashtra",
	})

	// engine must locate the suggestion by bare id, no kind given
	decided, err := engine.Decide(ctx, s.ID, ActionApprove, AdminID, "Admin", false)
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}
	if decided.ContentKind() != KindCitySuggestion {
		t.Fatalf("resolved wrong kind: %s", decided.ContentKind())
	}
	stored, _ := suggestions.Find(ctx, s.ID)
	if stored.Moderation().Status != StatusApproved {
		t.Fatal("approval not persisted")
	}
	if len(sink.byType("city_suggestion_approved")) != 1 {
		t.Fatal("expected owner notification for suggestion approval")
	}
}

func TestDuplicateDecideNotificationSuppressed(t *testing.T) {
	engine, _, _, sink := newTestEngine()
	ctx := context.Background()

	g := mustSubmit(t, engine, &fakeContent{
		Moderated: Moderated{OwnerID: "p1", OwnerName: "Priya"},
		kind:      KindGallery, title: "Summer Wedding",
	})

	// permissive re-approval re-stamps the transition, but the owner must
	// not be notified twice for the same (content, action)
	for i := 0; i < 2; i++ {
		if _, err := engine.Decide(ctx, g.ID, ActionApprove, AdminID, "Admin", false); err != nil {
			t.Fatalf("decide %d failed: %v", i, err)
		}
	}
	if n := len(sink.byType("gallery_approved")); n != 1 {
		t.Fatalf("expected one owner notification, got %d", n)
	}
}

func TestDecideSucceedsWhenNotificationWriteFails(t *testing.T) {
	sink := &memSink{createErr: errors.New("sink down")}
	engine := NewEngine(NewNotifier(sink, nil, nil))
	galleries := newMemStore()
	engine.Register(KindGallery, galleries)
	ctx := context.Background()

	g := mustSubmit(t, engine, &fakeContent{
		Moderated: Moderated{OwnerID: "p1", OwnerName: "Priya"},
		kind:      KindGallery, title: "Summer Wedding",
	})
	decided, err := engine.Decide(ctx, g.ID, ActionApprove, AdminID, "Admin", false)
	if err != nil {
		t.Fatalf("decide must not fail on notification errors: %v", err)
	}
	if decided.Moderation().Status != StatusApproved {
		t.Fatal("transition must commit regardless of notification outcome")
	}
}

func TestDecideConflict(t *testing.T) {
	engine, galleries, _, _ := newTestEngine()
	ctx := context.Background()

	g := mustSubmit(t, engine, &fakeContent{
		Moderated: Moderated{OwnerID: "p1", OwnerName: "Priya"},
		kind:      KindGallery, title: "Summer Wedding",
	})
	galleries.updateErr = &ConflictError{ID: g.ID}
	galleries.updateErrN = 1

	_, err := engine.Decide(ctx, g.ID, ActionApprove, AdminID, "Admin", false)
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestSetHomepageVisibility(t *testing.T) {
	engine, galleries, _, _ := newTestEngine()
	ctx := context.Background()

	g := mustSubmit(t, engine, &fakeContent{
		Moderated: Moderated{OwnerID: "p1", OwnerName: "Priya"},
		kind:      KindGallery, title: "Summer Wedding",
	})

	// not approved yet: turning it on must fail and change nothing
	_, err := engine.SetHomepageVisibility(ctx, g.ID, true)
	var pe *PreconditionError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
	stored, _ := galleries.Find(ctx, g.ID)
	if stored.Moderation().ShowOnHome {
		t.Fatal("failed precondition must leave show_on_home unchanged")
	}

	// hiding already-hidden content is a successful no-op
	if _, err := engine.SetHomepageVisibility(ctx, g.ID, false); err != nil {
		t.Fatalf("hiding hidden content must succeed: %v", err)
	}

	if _, err := engine.Decide(ctx, g.ID, ActionApprove, AdminID, "Admin", false); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	shown, err := engine.SetHomepageVisibility(ctx, g.ID, true)
	if err != nil {
		t.Fatalf("showing approved content failed: %v", err)
	}
	if !shown.Moderation().ShowOnHome {
		t.Fatal("expected show_on_home on")
	}
	checkInvariant(t, shown)

	hidden, err := engine.SetHomepageVisibility(ctx, g.ID, false)
	if err != nil {
		t.Fatalf("hiding failed: %v", err)
	}
	if hidden.Moderation().ShowOnHome {
		t.Fatal("expected show_on_home off")
	}
}

func TestAdminOwnedContentGetsNoOwnerNotification(t *testing.T) {
	engine, _, _, sink := newTestEngine()
	ctx := context.Background()

	g := mustSubmit(t, engine, &fakeContent{
		Moderated: Moderated{OwnerID: AdminID, OwnerName: "Admin"},
		kind:      KindGallery, title: "Editorial Picks",
	})
	if _, err := engine.Decide(ctx, g.ID, ActionApprove, AdminID, "Admin", true); err != nil {
		t.Fatalf("decide failed: %v", err)
	}
	if len(sink.events) != 0 {
		t.Fatalf("admin-owned content must not notify an owner, got %d events", len(sink.events))
	}
}

func TestApproveHookRuns(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	ctx := context.Background()

	var promoted []string
	engine.OnApprove(KindCitySuggestion, func(_ context.Context, c Content) error {
		promoted = append(promoted, c.DisplayTitle())
		return nil
	})

	s := mustSubmit(t, engine, &fakeContent{
		Moderated: Moderated{OwnerID: "p2", OwnerName: "Arjun"},
		kind:      KindCitySuggestion, title: "Pune, Maharashtra",
	})
	if _, err := engine.Decide(ctx, s.ID, ActionReject, AdminID, "Admin", false); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if len(promoted) != 0 {
		t.Fatal("hook must not run on rejection")
	}

	s2 := mustSubmit(t, engine, &fakeContent{
		Moderated: Moderated{OwnerID: "p2", OwnerName: "Arjun"},
		kind:      KindCitySuggestion, title: "Indore, Madhya Pradesh",
	})
	if _, err := engine.Decide(ctx, s2.ID, ActionApprove, AdminID, "Admin", false); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if len(promoted) != 1 || promoted[0] != "Indore, Madhya Pradesh" {
		t.Fatalf("hook did not run on approval: %v", promoted)
	}
}
