// Package controller keeps the locally known notes in step with the remote
// note store. It is the single owner of the note collection and the loading
// flag; presentation surfaces raise intents and subscribe to events.
package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Paintersrp/notes/internal/api"
	"github.com/Paintersrp/notes/internal/note"
)

// Store is the remote note store as seen by the controller.
type Store interface {
	List(ctx context.Context) ([]note.Note, error)
	ListArchived(ctx context.Context) ([]note.Note, error)
	Create(ctx context.Context, d note.Draft) (note.Note, error)
	Delete(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) (*note.Note, error)
	Unarchive(ctx context.Context, id string) (*note.Note, error)
}

// Scope selects which listing the collection mirrors.
type Scope int

const (
	ScopeActive Scope = iota
	ScopeArchived
)

func (s Scope) String() string {
	if s == ScopeArchived {
		return "archived"
	}
	return "active"
}

// ValidationError reports an intent rejected before any request was sent.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// Controller mediates every note intent to the store and reconciles the
// local collection from the responses.
//
// Operations may run concurrently. Overlapping operations on different
// notes are independent and the last response for a note wins. Identical
// concurrent operations (same kind and target) are coalesced: the store is
// called once and every caller gets the same result.
type Controller struct {
	store  Store
	logger *slog.Logger
	flight singleflight.Group

	mu        sync.Mutex
	notes     note.Collection
	inflight  int
	scope     Scope
	listeners map[int]Listener
	nextSub   int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger failures are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithScope sets the initial listing scope.
func WithScope(scope Scope) Option {
	return func(c *Controller) {
		c.scope = scope
	}
}

// New creates a controller with an empty collection.
func New(store Store, opts ...Option) *Controller {
	c := &Controller{
		store:     store,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		listeners: make(map[int]Listener),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Subscribe registers l for every future event and returns a function that
// removes it.
func (c *Controller) Subscribe(l Listener) (cancel func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.listeners[id] = l
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// Notes returns a snapshot of the collection.
func (c *Controller) Notes() []note.Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notes.Snapshot()
}

// Note returns the locally known note with the given id.
func (c *Controller) Note(id string) (note.Note, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notes.Get(id)
}

// Loading reports whether any operation is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight > 0
}

// Scope returns the listing the collection mirrors.
func (c *Controller) Scope() Scope {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scope
}

// SetScope switches the listing. The collection is emptied until the next
// Load so a surface never shows notes from the other listing.
func (c *Controller) SetScope(scope Scope) {
	c.mu.Lock()
	if c.scope == scope {
		c.mu.Unlock()
		return
	}
	c.scope = scope
	c.notes.Replace(nil)
	c.mu.Unlock()

	c.publishNotes()
}

// Load replaces the collection with the store's listing for the current
// scope. On failure the collection is left untouched.
func (c *Controller) Load(ctx context.Context) error {
	scope := c.Scope()
	op, list := api.OpList, c.store.List
	if scope == ScopeArchived {
		op, list = api.OpListArchived, c.store.ListArchived
	}

	return c.run(ctx, "load:"+scope.String(), op, func(ctx context.Context) error {
		notes, err := list(ctx)
		if err != nil {
			return err
		}

		c.mu.Lock()
		stale := c.scope != scope
		if !stale {
			c.notes.Replace(notes)
		}
		c.mu.Unlock()

		if stale {
			c.logger.Debug("dropping listing for previous scope", "scope", scope)
			return nil
		}

		c.publishNotes()
		return nil
	})
}

// Create stores a new note and prepends the store's representation. Blank
// titles or bodies are rejected with a *ValidationError before any request
// is sent and without publishing any event.
func (c *Controller) Create(ctx context.Context, title, body string) (note.Note, error) {
	d := note.NewDraft(title, body)
	if d.Title == "" {
		return note.Note{}, &ValidationError{Field: "title"}
	}
	if d.Body == "" {
		return note.Note{}, &ValidationError{Field: "body"}
	}

	v, err := c.do(ctx, "create:"+d.Title+"\x00"+d.Body, api.OpCreate, func(ctx context.Context) (any, error) {
		n, err := c.store.Create(ctx, d)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.notes.Prepend(n)
		c.mu.Unlock()

		c.publishNotes()
		c.publish(Event{Kind: NoteCreated, Note: n})
		return n, nil
	})
	if err != nil {
		return note.Note{}, err
	}

	return v.(note.Note), nil
}

// Delete removes the note from the store and then from the collection.
// Confirming the deletion is the caller's responsibility.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &ValidationError{Field: "id"}
	}

	return c.run(ctx, "delete:"+id, api.OpDelete, func(ctx context.Context) error {
		if err := c.store.Delete(ctx, id); err != nil {
			return err
		}

		c.mu.Lock()
		removed := c.notes.Remove(id)
		c.mu.Unlock()

		if !removed {
			c.logger.Debug("deleted note was not in the collection", "id", id)
		}

		c.publishNotes()
		return nil
	})
}

// Archive marks the note archived and replaces the local entry with the
// store's representation.
func (c *Controller) Archive(ctx context.Context, id string) error {
	return c.setArchived(ctx, id, true)
}

// Unarchive restores an archived note.
func (c *Controller) Unarchive(ctx context.Context, id string) error {
	return c.setArchived(ctx, id, false)
}

func (c *Controller) setArchived(ctx context.Context, id string, archived bool) error {
	if id == "" {
		return &ValidationError{Field: "id"}
	}

	op, call := api.OpArchive, c.store.Archive
	if !archived {
		op, call = api.OpUnarchive, c.store.Unarchive
	}

	return c.run(ctx, string(op)+":"+id, op, func(ctx context.Context) error {
		updated, err := call(ctx, id)
		if err != nil {
			return err
		}

		c.mu.Lock()
		var found bool
		if updated != nil && updated.ID == id {
			found = c.notes.ReplaceByID(*updated)
		} else {
			_, found = c.notes.SetArchived(id, archived)
		}
		c.mu.Unlock()

		if found {
			c.publishNotes()
		}
		return nil
	})
}

func (c *Controller) run(ctx context.Context, key string, op api.Op, fn func(ctx context.Context) error) error {
	_, err := c.do(ctx, key, op, func(ctx context.Context) (any, error) {
		return nil, fn(ctx)
	})
	return err
}

// do executes one store round trip with the loading flag raised for its
// whole duration, coalescing identical concurrent calls by key. Coalesced
// callers share the first caller's context and result.
func (c *Controller) do(
	ctx context.Context,
	key string,
	op api.Op,
	fn func(ctx context.Context) (any, error),
) (any, error) {
	v, err, shared := c.flight.Do(key, func() (any, error) {
		c.setInflight(+1)
		defer c.setInflight(-1)

		v, err := fn(ctx)
		if err != nil {
			c.logger.Error("note operation failed", "op", op, "err", err)
			c.publish(Event{Kind: OperationFailed, Op: op, Err: err})
			return nil, err
		}
		return v, nil
	})

	if shared {
		c.logger.Debug("coalesced duplicate operation", "op", op, "key", key)
	}

	return v, err
}

func (c *Controller) setInflight(delta int) {
	c.mu.Lock()
	c.inflight += delta
	loading := c.inflight > 0
	c.mu.Unlock()

	c.publish(Event{Kind: LoadingChanged, Loading: loading})
}

func (c *Controller) publishNotes() {
	c.publish(Event{Kind: NotesChanged, Notes: c.Notes()})
}

func (c *Controller) publish(ev Event) {
	c.mu.Lock()
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, c.listeners[id])
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(ev)
	}
}
