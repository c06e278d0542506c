package linksync

import (
	"errors"
	"fmt"

	"link-admin/pkg/cli/client"
	"link-admin/pkg/models"
)

// Op is one of the four synchronized operations.
type Op int

const (
	OpRefresh Op = iota
	OpCreate
	OpEdit
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpRefresh:
		return "refresh"
	case OpCreate:
		return "create"
	case OpEdit:
		return "edit"
	case OpDelete:
		return "delete"
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Notification titles, one per operation.
const (
	TitleLoadFailed   = "Failed to load links"
	TitleCreateFailed = "Failed to add link"
	TitleUpdateFailed = "Unable to update link"
	TitleDeleteFailed = "Unable to delete link"
)

// FailureTitle is the notification title used when the operation fails.
func (o Op) FailureTitle() string {
	switch o {
	case OpRefresh:
		return TitleLoadFailed
	case OpCreate:
		return TitleCreateFailed
	case OpEdit:
		return TitleUpdateFailed
	case OpDelete:
		return TitleDeleteFailed
	}
	return "Request failed"
}

// Result is the outcome of an operation's request phase. It carries
// everything the apply phase needs; the target id is captured before the
// request is sent.
type Result struct {
	Op      Op
	ID      models.LinkID
	Links   []models.Link
	Created *models.Link
	Patch   models.LinkPatch
	Err     error
}

// Command is a single store/view instruction produced by Reduce.
type Command interface {
	command()
}

// ReplaceAll replaces the store and fully re-renders the table.
type ReplaceAll struct{ Links []models.Link }

// InsertLink appends a confirmed new link.
type InsertLink struct{ Link models.Link }

// PatchLink applies a confirmed partial update.
type PatchLink struct {
	ID    models.LinkID
	Patch models.LinkPatch
}

// RemoveLink removes a confirmed deletion.
type RemoveLink struct{ ID models.LinkID }

// Notify shows a dismissable notification.
type Notify struct {
	Title   string
	Message string
}

// Discard records a confirmed result that no longer has a target.
type Discard struct {
	ID     models.LinkID
	Reason string
}

func (ReplaceAll) command() {}
func (InsertLink) command() {}
func (PatchLink) command()  {}
func (RemoveLink) command() {}
func (Notify) command()     {}
func (Discard) command()    {}

// Reader is the read side of the link store.
type Reader interface {
	Get(id models.LinkID) (models.Link, bool)
}

// Reduce turns a request result into the commands that bring the store and
// view in line with it. It has no side effects. A failed result only ever
// yields a notification.
func Reduce(res Result, current Reader) []Command {
	if res.Err != nil {
		return []Command{Notify{Title: res.Op.FailureTitle(), Message: Message(res.Err)}}
	}

	switch res.Op {
	case OpRefresh:
		return []Command{ReplaceAll{Links: res.Links}}
	case OpCreate:
		if res.Created == nil {
			return []Command{Notify{Title: TitleCreateFailed, Message: "server returned no link"}}
		}
		if _, exists := current.Get(res.Created.ID); exists {
			return []Command{Discard{ID: res.Created.ID, Reason: "created link already present"}}
		}
		return []Command{InsertLink{Link: *res.Created}}
	case OpEdit:
		if _, ok := current.Get(res.ID); !ok {
			return []Command{Discard{ID: res.ID, Reason: "updated link no longer present"}}
		}
		return []Command{PatchLink{ID: res.ID, Patch: res.Patch}}
	case OpDelete:
		if _, ok := current.Get(res.ID); !ok {
			return []Command{Discard{ID: res.ID, Reason: "deleted link no longer present"}}
		}
		return []Command{RemoveLink{ID: res.ID}}
	}
	return nil
}

// Message extracts the notification body from an operation error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var appErr *client.ApplicationError
	if errors.As(err, &appErr) {
		return appErr.UserMessage()
	}
	var transportErr *client.TransportError
	if errors.As(err, &transportErr) {
		return transportErr.UserMessage()
	}
	return err.Error()
}
