// Package linksync keeps the link store and the displayed table consistent
// with the server.
//
// Every operation runs in two phases. The request phase (FetchLinks,
// SubmitCreate, SubmitEdit, SubmitDelete) only talks to the API and may run
// on any goroutine. The apply phase (Apply) must run on the goroutine that
// owns the store and table; it reduces the result to commands and executes
// them, store first and view second. Nothing is mutated before the server
// has confirmed, and a failure only produces a notification.
//
// Operations are not serialized against each other. Results are applied in
// the order they arrive, so concurrent edits of the same link are
// last-write-wins.
package linksync

import (
	"context"

	"link-admin/pkg/cli/logger"
	"link-admin/pkg/models"
	"link-admin/pkg/store"
	"link-admin/pkg/view"
)

//go:generate mockgen -source=controller.go -destination=mocks/api_mock.go -package=mocks

// API is the subset of the link client the controller needs.
type API interface {
	ListLinks(ctx context.Context) ([]models.Link, error)
	CreateLink(ctx context.Context, link models.LinkCreate) (*models.Link, error)
	UpdateLink(ctx context.Context, id models.LinkID, patch models.LinkPatch) error
	DeleteLink(ctx context.Context, id models.LinkID) error
}

// Phase is the state of an operation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseCommitted
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseCommitted:
		return "committed"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome reports how Apply finished an operation.
type Outcome struct {
	Op           Op
	Phase        Phase
	Notification *view.Notification

	// Created is the server's record of a committed create.
	Created *models.Link
}

// Committed reports whether the server confirmed the operation.
func (o Outcome) Committed() bool {
	return o.Phase == PhaseCommitted
}

// Controller owns the link store and table for one panel session.
type Controller struct {
	api   API
	store *store.Store
	table *view.Table

	inflight map[Op]int
	last     map[Op]Phase
}

// New creates a controller over an empty store and table
func New(api API) *Controller {
	return &Controller{
		api:      api,
		store:    store.New(),
		table:    view.NewTable(),
		inflight: make(map[Op]int),
		last:     make(map[Op]Phase),
	}
}

// Store returns the link store
func (c *Controller) Store() *store.Store {
	return c.store
}

// Table returns the displayed table
func (c *Controller) Table() *view.Table {
	return c.table
}

// Phase returns Pending while a request of the given kind is in flight,
// otherwise the outcome of the last one applied.
func (c *Controller) Phase(op Op) Phase {
	if c.inflight[op] > 0 {
		return PhasePending
	}
	return c.last[op]
}

// Begin moves an operation to Pending. A pending refresh shows the loading
// indicator.
func (c *Controller) Begin(op Op) {
	c.inflight[op]++
	if op == OpRefresh {
		c.table.Loading = true
	}
}

// FetchLinks runs the request phase of a refresh
func (c *Controller) FetchLinks(ctx context.Context) Result {
	links, err := c.api.ListLinks(ctx)
	return Result{Op: OpRefresh, Links: links, Err: err}
}

// SubmitCreate runs the request phase of a create
func (c *Controller) SubmitCreate(ctx context.Context, in CreateInput) Result {
	created, err := c.api.CreateLink(ctx, in.Request())
	return Result{Op: OpCreate, Created: created, Err: err}
}

// SubmitEdit runs the request phase of an edit of the given link
func (c *Controller) SubmitEdit(ctx context.Context, id models.LinkID, in EditInput) Result {
	patch := in.Patch()
	err := c.api.UpdateLink(ctx, id, patch)
	return Result{Op: OpEdit, ID: id, Patch: patch, Err: err}
}

// SubmitDelete runs the request phase of a delete of the given link
func (c *Controller) SubmitDelete(ctx context.Context, id models.LinkID) Result {
	err := c.api.DeleteLink(ctx, id)
	return Result{Op: OpDelete, ID: id, Err: err}
}

// Apply runs the apply phase of an operation.
func (c *Controller) Apply(res Result) Outcome {
	if c.inflight[res.Op] > 0 {
		c.inflight[res.Op]--
	}

	out := Outcome{Op: res.Op, Phase: PhaseCommitted}
	for _, cmd := range Reduce(res, c.store) {
		if n := c.execute(res.Op, cmd); n != nil {
			out.Phase = PhaseFailed
			out.Notification = n
		}
	}

	if res.Op == OpCreate && out.Phase == PhaseCommitted {
		out.Created = res.Created
	}
	if res.Op == OpRefresh {
		c.table.Loading = c.inflight[OpRefresh] > 0
	}
	c.last[res.Op] = out.Phase
	return out
}

func (c *Controller) execute(op Op, cmd Command) *view.Notification {
	log := logger.WithFields(map[string]interface{}{"op": op.String()})

	switch cmd := cmd.(type) {
	case ReplaceAll:
		if err := c.store.ReplaceAll(cmd.Links); err != nil {
			log.WithError(err).Error("refusing server list")
			return c.notify(op.FailureTitle(), err.Error())
		}
		c.table.RenderAll(c.store.All())
		log.WithField("count", c.store.Len()).Info("links loaded")

	case InsertLink:
		if err := c.store.Insert(cmd.Link); err != nil {
			log.WithError(err).Error("store insert failed")
			return nil
		}
		if err := c.table.InsertRow(cmd.Link); err != nil {
			log.WithError(err).Error("row insert failed")
		}
		log.WithField("id", cmd.Link.ID).Info("link created")

	case PatchLink:
		if _, err := c.store.Patch(cmd.ID, cmd.Patch); err != nil {
			log.WithError(err).Error("store patch failed")
			return nil
		}
		if _, err := c.table.PatchRow(cmd.ID, cmd.Patch); err != nil {
			log.WithError(err).Error("row patch failed")
		}
		log.WithField("id", cmd.ID).Info("link updated")

	case RemoveLink:
		if err := c.store.Remove(cmd.ID); err != nil {
			log.WithError(err).Error("store remove failed")
			return nil
		}
		if err := c.table.RemoveRow(cmd.ID); err != nil {
			log.WithError(err).Error("row remove failed")
		}
		log.WithField("id", cmd.ID).Info("link deleted")

	case Notify:
		log.WithField("title", cmd.Title).Warn(cmd.Message)
		return c.notify(cmd.Title, cmd.Message)

	case Discard:
		log.WithField("id", cmd.ID).Warn(cmd.Reason)
	}
	return nil
}

func (c *Controller) notify(title, message string) *view.Notification {
	c.table.Notifications.Push(title, message)
	return &view.Notification{Title: title, Message: message}
}

// Refresh runs a full refresh on the calling goroutine.
func (c *Controller) Refresh(ctx context.Context) Outcome {
	c.Begin(OpRefresh)
	return c.Apply(c.FetchLinks(ctx))
}

// Create runs a create on the calling goroutine.
func (c *Controller) Create(ctx context.Context, in CreateInput) Outcome {
	c.Begin(OpCreate)
	return c.Apply(c.SubmitCreate(ctx, in))
}

// Edit runs an edit on the calling goroutine.
func (c *Controller) Edit(ctx context.Context, id models.LinkID, in EditInput) Outcome {
	c.Begin(OpEdit)
	return c.Apply(c.SubmitEdit(ctx, id, in))
}

// Delete runs a delete on the calling goroutine.
func (c *Controller) Delete(ctx context.Context, id models.LinkID) Outcome {
	c.Begin(OpDelete)
	return c.Apply(c.SubmitDelete(ctx, id))
}
