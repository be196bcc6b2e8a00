package moderation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// ApproveHook runs after a content item of its kind transitions into
// approved. Used for taxonomy promotion. Hook failures do not undo the
// transition; they are surfaced to the caller's log only.
type ApproveHook func(ctx context.Context, c Content) error

// Engine enforces the moderation state machine for every registered kind
// and emits notifications as transition side effects. It is kind-agnostic
// at the call site: lookups by bare id search the stores in registration
// order.
type Engine struct {
	order    []Kind
	stores   map[Kind]Store
	notifier *Notifier
	hooks    map[Kind][]ApproveHook
	now      func() time.Time
}

func NewEngine(notifier *Notifier) *Engine {
	return &Engine{
		stores:   make(map[Kind]Store),
		hooks:    make(map[Kind][]ApproveHook),
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (e *Engine) Register(kind Kind, s Store) {
	if _, ok := e.stores[kind]; !ok {
		e.order = append(e.order, kind)
	}
	e.stores[kind] = s
}

func (e *Engine) OnApprove(kind Kind, h ApproveHook) {
	e.hooks[kind] = append(e.hooks[kind], h)
}

// Find resolves a bare content id across every registered kind.
func (e *Engine) Find(ctx context.Context, id string) (Content, error) {
	for _, kind := range e.order {
		c, err := e.stores[kind].Find(ctx, id)
		if err == nil {
			return c, nil
		}
		if _, missing := err.(*NotFoundError); !missing {
			return nil, err
		}
	}
	return nil, &NotFoundError{ID: id}
}

// Submit persists new content with its initial state. Admin-authored
// content is auto-approved; taxonomy suggestions skip draft and go straight
// to pending, which synchronously notifies the admin. Duplicate submissions
// create duplicate entities; submit is deliberately not idempotent.
func (e *Engine) Submit(ctx context.Context, c Content) error {
	m := c.Moderation()
	kind := c.ContentKind()

	if strings.TrimSpace(c.DisplayTitle()) == "" {
		return &ValidationError{Reason: "title is required"}
	}
	store, ok := e.stores[kind]
	if !ok {
		return &ValidationError{Reason: "unknown content kind: " + string(kind)}
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	now := e.now()
	m.CreatedAt = now
	m.UpdatedAt = now
	m.Version = 1

	switch {
	case m.OwnerID == AdminID:
		m.Status = StatusApproved
		m.ApprovedBy = AdminID
		m.ApprovedByName = m.OwnerName
		m.ApprovedAt = &now
	case kind == KindCategorySuggestion || kind == KindCitySuggestion:
		m.Status = StatusPending
	default:
		m.Status = StatusDraft
	}
	if m.Status != StatusApproved {
		m.ShowOnHome = false
	}

	if err := store.Insert(ctx, c); err != nil {
		return err
	}
	transitionsTotal.WithLabelValues(string(kind), "submit").Inc()

	if m.Status == StatusPending {
		e.notifier.Emit(ctx, "", Event{
			UserID:         AdminID,
			Type:           string(kind),
			Title:          "New " + kind.Label(),
			Message:        fmt.Sprintf("%s suggested %q", m.OwnerName, c.DisplayTitle()),
			RelatedID:      m.ID,
			ActionRequired: true,
		})
	}
	return nil
}

// RequestHomepage moves owner content into pending and asks the admin for a
// homepage decision. Mirrors submit's laxness about repeats: requesting
// twice files two admin notifications.
func (e *Engine) RequestHomepage(ctx context.Context, id string) (Content, error) {
	c, err := e.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	m := c.Moderation()
	kind := c.ContentKind()

	expected := m.Version
	m.Status = StatusPending
	m.ShowOnHome = false
	m.UpdatedAt = e.now()
	if err := e.stores[kind].Update(ctx, c, expected); err != nil {
		return nil, err
	}
	transitionsTotal.WithLabelValues(string(kind), "homepage_request").Inc()

	e.notifier.Emit(ctx, "", Event{
		UserID:         AdminID,
		Type:           string(kind) + "_homepage_request",
		Title:          kind.Label() + " Homepage Request",
		Message:        fmt.Sprintf("%s wants %q featured on the homepage", m.OwnerName, c.DisplayTitle()),
		RelatedID:      m.ID,
		ActionRequired: true,
	})
	return c, nil
}

// Decide applies an admin approve/reject to any moderated item. The current
// state is deliberately not checked first: re-approving an approved item
// re-stamps its approval, matching the permissive behavior callers rely on.
func (e *Engine) Decide(ctx context.Context, id string, action Action, adminID, adminName string, homepageRequested bool) (Content, error) {
	if action != ActionApprove && action != ActionReject {
		return nil, &ValidationError{Reason: "action must be approve or reject"}
	}

	c, err := e.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	m := c.Moderation()
	kind := c.ContentKind()
	now := e.now()
	expected := m.Version

	switch action {
	case ActionApprove:
		m.Status = StatusApproved
		m.ApprovedBy = adminID
		m.ApprovedByName = adminName
		m.ApprovedAt = &now
		if homepageRequested {
			m.ShowOnHome = true
		}
	case ActionReject:
		m.Status = StatusRejected
		m.ShowOnHome = false
		m.ApprovedBy = ""
		m.ApprovedByName = ""
		m.ApprovedAt = nil
	}
	m.UpdatedAt = now

	if err := e.stores[kind].Update(ctx, c, expected); err != nil {
		return nil, err
	}
	transitionsTotal.WithLabelValues(string(kind), string(action)).Inc()

	if action == ActionApprove {
		e.notifier.Resolve(ctx, m.ID, " — APPROVED by "+adminName)
		for _, hook := range e.hooks[kind] {
			if herr := hook(ctx, c); herr != nil {
				logHookErr(kind, m.ID, herr)
			}
		}
	}

	if m.OwnerID != "" && m.OwnerID != AdminID {
		e.notifier.Emit(ctx, fmt.Sprintf("decide:%s:%s", m.ID, action), e.ownerEvent(c, action))
	}
	return c, nil
}

func (e *Engine) ownerEvent(c Content, action Action) Event {
	m := c.Moderation()
	kind := c.ContentKind()
	ev := Event{
		UserID:    m.OwnerID,
		RelatedID: m.ID,
	}
	if action == ActionApprove {
		ev.Type = string(kind) + "_approved"
		if m.ShowOnHome {
			ev.Title = kind.Label() + " Approved for Homepage!"
			ev.Message = fmt.Sprintf("%q was approved and is now featured on the homepage", c.DisplayTitle())
		} else {
			ev.Title = kind.Label() + " Approved"
			ev.Message = fmt.Sprintf("%q was approved by %s", c.DisplayTitle(), m.ApprovedByName)
		}
	} else {
		ev.Type = string(kind) + "_rejected"
		ev.Title = kind.Label() + " Rejected"
		ev.Message = fmt.Sprintf("%q was not approved", c.DisplayTitle())
	}
	return ev
}

// SetHomepageVisibility toggles homepage placement independently of decide.
// Turning it on requires approved status; turning it off always succeeds,
// including when it is already off.
func (e *Engine) SetHomepageVisibility(ctx context.Context, id string, visible bool) (Content, error) {
	c, err := e.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	m := c.Moderation()

	if visible && m.Status != StatusApproved {
		return nil, &PreconditionError{Reason: "only approved content can be shown on the homepage"}
	}
	if m.ShowOnHome == visible {
		return c, nil
	}

	expected := m.Version
	m.ShowOnHome = visible
	m.UpdatedAt = e.now()
	if err := e.stores[c.ContentKind()].Update(ctx, c, expected); err != nil {
		return nil, err
	}
	transitionsTotal.WithLabelValues(string(c.ContentKind()), "homepage_visibility").Inc()
	return c, nil
}
