package models

import "strconv"

// LinkID is the server-assigned identity of a link. It is immutable once
// assigned and is the only key used to address a link on the client.
type LinkID int64

func (id LinkID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseLinkID parses a decimal link id as typed on the command line.
func ParseLinkID(s string) (LinkID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return LinkID(n), nil
}

type Link struct {
	ID        LinkID `json:"id"`
	Name      string `json:"name"`
	Link      string `json:"link"`
	Enabled   bool   `json:"enabled"`
	TimesUsed int64  `json:"times_used"`
}

// LinkCreate represents data for creating a new link
type LinkCreate struct {
	Name string `json:"name" binding:"required"`
	Link string `json:"link" binding:"required"`
}

// LinkPatch is a partial update. Enabled is always sent because the
// server requires it on every update, even when unchanged.
type LinkPatch struct {
	Name    *string `json:"name,omitempty"`
	Link    *string `json:"link,omitempty"`
	Enabled bool    `json:"enabled"`
}

// Apply copies the fields carried by the patch onto l. ID and TimesUsed
// are never touched.
func (p LinkPatch) Apply(l *Link) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Link != nil {
		l.Link = *p.Link
	}
	l.Enabled = p.Enabled
}

// Envelope is the body shape of list and create responses, and of every
// error response.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}
