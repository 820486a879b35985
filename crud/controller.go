package crud

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Backend is the REST surface a controller needs. *client.Client satisfies it.
type Backend interface {
	List(ctx context.Context, path string, out any) error
	Create(ctx context.Context, path string, payload any) error
	Update(ctx context.Context, path string, id uint, payload any) error
	Delete(ctx context.Context, path string, id uint) error
}

// Refresher re-fetches a collection without touching the banner.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Confirmer answers a blocking delete prompt.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Entity describes one managed record type: where it lives on the backend and
// how its text form maps to records and write payloads.
type Entity[T any, F any] struct {
	Name   string // singular, e.g. "store"
	Plural string // e.g. "stores"
	Path   string // collection endpoint, e.g. "/stores"

	ID     func(T) uint
	ToForm func(T) F
	// Ready reports whether every required field is filled in.
	Ready func(F) bool
	// Payload builds the write body. A *ValidationError aborts the submission.
	Payload func(F) (any, error)
}

// DeletePrompt is the question asked before deleting a record.
func (e Entity[T, F]) DeletePrompt() string {
	return fmt.Sprintf("Are you sure you want to delete this %s?", e.Name)
}

// State is a point-in-time copy of a controller for rendering.
type State[T any, F any] struct {
	Items      []T
	Loaded     bool
	Loading    bool
	Submitting bool
	Form       F
	Mode       Mode[T]
	Ready      bool
}

// Editing reports whether the form is bound to an existing record.
func (s State[T, F]) Editing() bool {
	_, ok := EditingID[T](s.Mode)
	return ok
}

// Controller drives list, create, update and delete for one entity. Its mutex
// is never held across backend calls, so different controllers and list
// refreshes may overlap. Submitting is an advisory lock for the form only.
type Controller[T any, F any] struct {
	entity     Entity[T, F]
	backend    Backend
	banner     *Banner
	log        *zap.SugaredLogger
	dependents []Refresher

	mu         sync.Mutex
	items      []T
	loaded     bool
	inflight   int
	submitting bool
	form       F
	mode       Mode[T]
	gen        uint64 // bumped on every mode change
}

func NewController[T any, F any](entity Entity[T, F], backend Backend, banner *Banner, log *zap.SugaredLogger) *Controller[T, F] {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Controller[T, F]{
		entity:  entity,
		backend: backend,
		banner:  banner,
		log:     log.With("entity", entity.Name),
		mode:    Creating[T]{},
	}
}

// RefreshAfterDelete registers collections to re-fetch after a successful delete.
func (c *Controller[T, F]) RefreshAfterDelete(r ...Refresher) {
	c.mu.Lock()
	c.dependents = append(c.dependents, r...)
	c.mu.Unlock()
}

// State returns a copy of the current state.
func (c *Controller[T, F]) State() State[T, F] {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)
	return State[T, F]{
		Items:      items,
		Loaded:     c.loaded,
		Loading:    c.inflight > 0,
		Submitting: c.submitting,
		Form:       c.form,
		Mode:       c.mode,
		Ready:      c.entity.Ready(c.form),
	}
}

// Items returns a copy of the last fetched collection.
func (c *Controller[T, F]) Items() []T {
	return c.State().Items
}

// List is the user-triggered fetch: the banner is cleared first.
func (c *Controller[T, F]) List(ctx context.Context) error {
	c.banner.Clear()
	return c.Refresh(ctx)
}

// Refresh re-fetches the whole collection. On failure the banner is set and
// the previous collection stays in place.
func (c *Controller[T, F]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.inflight++
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.inflight--
		c.mu.Unlock()
	}()

	var items []T
	if err := c.backend.List(ctx, c.entity.Path, &items); err != nil {
		c.fail(err, "Failed to fetch "+c.entity.Plural)
		return err
	}
	if items == nil {
		items = []T{}
	}

	c.mu.Lock()
	c.items = items
	c.loaded = true
	c.mu.Unlock()
	return nil
}

// Select copies the record with the given id into the form and enters edit mode.
func (c *Controller[T, F]) Select(id uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if c.entity.ID(item) == id {
			c.form = c.entity.ToForm(item)
			c.mode = Editing[T]{ID: id, Snapshot: item}
			c.gen++
			return nil
		}
	}
	return ErrNotFound
}

// Cancel leaves edit mode and clears the form without any request.
func (c *Controller[T, F]) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitting {
		return ErrBusy
	}
	c.resetLocked()
	return nil
}

// SetForm replaces the form values with user input. The mode is unchanged.
func (c *Controller[T, F]) SetForm(form F) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitting {
		return ErrBusy
	}
	c.form = form
	return nil
}

// Submit creates a record in create mode or updates the bound record in edit
// mode. On success the collection is re-fetched and the form reset; on failure
// the form and mode are kept so the user can retry.
func (c *Controller[T, F]) Submit(ctx context.Context) error {
	return c.submit(ctx, nil)
}

// SubmitForm stores form and submits it under the same lock, so a concurrent
// SetForm cannot swap the values between the two steps.
func (c *Controller[T, F]) SubmitForm(ctx context.Context, form F) error {
	return c.submit(ctx, &form)
}

func (c *Controller[T, F]) submit(ctx context.Context, input *F) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrBusy
	}
	if input != nil {
		c.form = *input
	}
	form, mode, gen := c.form, c.mode, c.gen
	c.submitting = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	c.banner.Clear()

	if !c.entity.Ready(form) {
		err := &ValidationError{Message: "Please fill in all required fields"}
		c.banner.Set(err.Message)
		return err
	}

	payload, err := c.entity.Payload(form)
	if err != nil {
		c.banner.Set(err.Error())
		return err
	}

	verb := "create"
	if id, editing := EditingID[T](mode); editing {
		verb = "update"
		err = c.backend.Update(ctx, c.entity.Path, id, payload)
	} else {
		err = c.backend.Create(ctx, c.entity.Path, payload)
	}
	if err != nil {
		c.fail(err, fmt.Sprintf("Failed to %s %s", verb, c.entity.Name))
		return err
	}

	_ = c.Refresh(ctx)

	c.mu.Lock()
	// A record picked while the request was in flight wins over the reset.
	if c.gen == gen {
		c.resetLocked()
	}
	c.mu.Unlock()
	return nil
}

// Delete removes a record once confirm agrees. A declined prompt issues no
// request. Registered dependents are refreshed after a successful delete.
func (c *Controller[T, F]) Delete(ctx context.Context, id uint, confirm Confirmer) error {
	if confirm == nil || !confirm.Confirm(c.entity.DeletePrompt()) {
		return ErrNotConfirmed
	}

	c.banner.Clear()

	if err := c.backend.Delete(ctx, c.entity.Path, id); err != nil {
		c.fail(err, "Failed to delete "+c.entity.Name)
		return err
	}

	c.mu.Lock()
	if editingID, ok := EditingID[T](c.mode); ok && editingID == id && !c.submitting {
		c.resetLocked()
	}
	dependents := append([]Refresher(nil), c.dependents...)
	c.mu.Unlock()

	_ = c.Refresh(ctx)
	for _, d := range dependents {
		_ = d.Refresh(ctx)
	}
	return nil
}

func (c *Controller[T, F]) resetLocked() {
	var empty F
	c.form = empty
	c.mode = Creating[T]{}
	c.gen++
}

func (c *Controller[T, F]) fail(err error, msg string) {
	c.log.Warnw(msg, "error", err)
	c.banner.Set(msg)
}
