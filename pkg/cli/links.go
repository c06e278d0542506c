package cli

import (
	"context"
	"errors"
	"fmt"

	"link-admin/pkg/cli/links"
	"link-admin/pkg/linksync"
	"link-admin/pkg/models"
)

// controller returns a sync controller that has loaded the current links
func (a *App) controller(ctx context.Context) (*linksync.Controller, error) {
	apiClient, err := a.getClient()
	if err != nil {
		return nil, err
	}

	ctrl := linksync.New(apiClient)
	if out := ctrl.Refresh(ctx); !out.Committed() {
		return nil, outcomeError(out)
	}
	return ctrl, nil
}

// outcomeError turns a failed outcome into the error shown to the user
func outcomeError(out linksync.Outcome) error {
	if out.Notification == nil {
		return fmt.Errorf("%s failed", out.Op)
	}
	return errors.New(out.Notification.Title + ": " + out.Notification.Message)
}

// ListLinks prints every link in server order
func (a *App) ListLinks(ctx context.Context) error {
	ctrl, err := a.controller(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(a.stdout, links.FormatTableOutput(ctrl.Store().All()))
	return nil
}

// AddLink creates a link
func (a *App) AddLink(ctx context.Context, name, link string) error {
	ctrl, err := a.controller(ctx)
	if err != nil {
		return err
	}

	out := ctrl.Create(ctx, linksync.CreateInput{Name: name, Link: link})
	if !out.Committed() {
		return outcomeError(out)
	}

	if out.Created == nil {
		return fmt.Errorf("%s: link was not added", linksync.TitleCreateFailed)
	}
	fmt.Fprint(a.stdout, links.FormatSuccessMessage("Link created successfully!", *out.Created))
	return nil
}

// EditLink sends an edit of the link with the given id. Blank name and link
// keep their current value. A nil enabled keeps the link's current state,
// which is read from the refreshed list; enabled is always sent.
func (a *App) EditLink(ctx context.Context, id models.LinkID, name, link string, enabled *bool) error {
	ctrl, err := a.controller(ctx)
	if err != nil {
		return err
	}

	in := linksync.EditInput{Name: name, Link: link}
	if enabled != nil {
		in.Enabled = *enabled
	} else {
		current, ok := ctrl.Store().Get(id)
		if !ok {
			return fmt.Errorf("%s: link %s is not listed", linksync.TitleUpdateFailed, id)
		}
		in.Enabled = current.Enabled
	}

	out := ctrl.Edit(ctx, id, in)
	if !out.Committed() {
		return outcomeError(out)
	}

	if updated, ok := ctrl.Store().Get(id); ok {
		fmt.Fprint(a.stdout, links.FormatSuccessMessage("Link updated successfully!", updated))
	} else {
		fmt.Fprintf(a.stdout, "✓ Link %s updated\n", id)
	}
	return nil
}

// DeleteLink deletes the link with the given id
func (a *App) DeleteLink(ctx context.Context, id models.LinkID) error {
	apiClient, err := a.getClient()
	if err != nil {
		return err
	}

	// A delete does not need the current list.
	ctrl := linksync.New(apiClient)
	out := ctrl.Delete(ctx, id)
	if !out.Committed() {
		return outcomeError(out)
	}

	fmt.Fprintf(a.stdout, "✓ Link %s deleted\n", id)
	return nil
}
