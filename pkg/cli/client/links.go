package client

import (
	"context"
	"net/http"

	"link-admin/pkg/models"
)

// ListLinks retrieves all links in server order
func (c *Client) ListLinks(ctx context.Context) ([]models.Link, error) {
	resp, err := c.do(ctx, OpList, http.MethodGet, c.linksPath, nil)
	if err != nil {
		return nil, err
	}
	links, err := decodeEnvelope[[]models.Link](OpList, resp)
	if err != nil {
		return nil, err
	}
	if links == nil {
		links = []models.Link{}
	}
	return links, nil
}

// CreateLink creates a new link. The name is submitted as given; callers
// normalize it first.
func (c *Client) CreateLink(ctx context.Context, link models.LinkCreate) (*models.Link, error) {
	resp, err := c.do(ctx, OpCreate, http.MethodPost, c.linksPath, link)
	if err != nil {
		return nil, err
	}
	created, err := decodeEnvelope[*models.Link](OpCreate, resp)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, newTransportError(OpCreate, "response carried no link")
	}
	return created, nil
}

// UpdateLink applies a partial update to an existing link
func (c *Client) UpdateLink(ctx context.Context, id models.LinkID, patch models.LinkPatch) error {
	resp, err := c.do(ctx, OpUpdate, http.MethodPut, c.linkPath(id), patch)
	if err != nil {
		return err
	}
	return expectNoContent(OpUpdate, resp)
}

// DeleteLink deletes a link by ID
func (c *Client) DeleteLink(ctx context.Context, id models.LinkID) error {
	resp, err := c.do(ctx, OpDelete, http.MethodDelete, c.linkPath(id), nil)
	if err != nil {
		return err
	}
	return expectNoContent(OpDelete, resp)
}

func (c *Client) linkPath(id models.LinkID) string {
	return c.linksPath + "/" + id.String()
}
