package linksync

import (
	"strings"

	"link-admin/pkg/models"
)

// CreateInput is the raw content of the create form.
type CreateInput struct {
	Name string
	Link string
}

// Request normalizes the form into the create payload. Both fields are
// trimmed and the name is lower-cased; uniqueness and validity are left to
// the server.
func (in CreateInput) Request() models.LinkCreate {
	return models.LinkCreate{
		Name: normalizeName(in.Name),
		Link: strings.TrimSpace(in.Link),
	}
}

// EditInput is the raw content of the edit form.
type EditInput struct {
	Name    string
	Link    string
	Enabled bool
}

// Patch builds the outgoing partial update. A blank field means "leave
// unchanged" and is omitted, so a field cannot be cleared through an edit.
// Enabled is always included. Sent fields are normalized the way the
// server stores them, so the confirmed patch can be applied locally as is.
func (in EditInput) Patch() models.LinkPatch {
	patch := models.LinkPatch{Enabled: in.Enabled}
	if name := normalizeName(in.Name); name != "" {
		patch.Name = &name
	}
	if link := strings.TrimSpace(in.Link); link != "" {
		patch.Link = &link
	}
	return patch
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
