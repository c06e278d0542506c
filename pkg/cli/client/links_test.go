package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"link-admin/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", "/ui/api", 0)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestListLinks(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/ui/api", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"id": 4, "name": "docs", "link": "https://docs.example.com", "enabled": true, "times_used": 9},
				{"id": 2, "name": "wiki", "link": "https://wiki.example.com", "enabled": false, "times_used": 0},
			},
		})
	})

	links, err := c.ListLinks(context.Background())
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, models.Link{ID: 4, Name: "docs", Link: "https://docs.example.com", Enabled: true, TimesUsed: 9}, links[0])
	assert.Equal(t, models.LinkID(2), links[1].ID)
}

func TestListLinksEmptyData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": []interface{}{}})
	})

	links, err := c.ListLinks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}

func TestListLinksApplicationFailureOn200(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "message": "database unavailable"})
	})

	_, err := c.ListLinks(context.Background())
	var appErr *ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "database unavailable", appErr.Message)
	assert.Equal(t, OpList, appErr.Op)
}

func TestListLinksNonJSONIsTransportError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	})

	_, err := c.ListLinks(context.Background())
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Contains(t, transportErr.UserMessage(), "failed to parse response")
}

func TestListLinksConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, "", 0)
	_, err := c.ListLinks(context.Background())

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, OpList, transportErr.Op)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCreateLink(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{"name": "example", "link": "https://example.com"}, body)

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": 11, "name": "example", "link": "https://example.com", "enabled": true, "times_used": 0},
		})
	})

	created, err := c.CreateLink(context.Background(), models.LinkCreate{Name: "example", Link: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, models.LinkID(11), created.ID)
	assert.True(t, created.Enabled)
}

func TestCreateLinkDuplicateKeepsServerMessage(t *testing.T) {
	const msg = "duplicate key value violates unique constraint \"links_name_key\""
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]interface{}{"success": false, "message": msg})
	})

	_, err := c.CreateLink(context.Background(), models.LinkCreate{Name: "docs", Link: "https://example.com"})
	var appErr *ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, msg, appErr.UserMessage())
	assert.Equal(t, http.StatusConflict, appErr.Status)
}

func TestUpdateLinkAlwaysSendsEnabled(t *testing.T) {
	var got map[string]interface{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/ui/api/7", r.URL.Path)
		got = nil
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.UpdateLink(context.Background(), 7, models.LinkPatch{Enabled: false})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"enabled": false}, got)

	name := "docs"
	require.NoError(t, c.UpdateLink(context.Background(), 7, models.LinkPatch{Name: &name, Enabled: true}))
	assert.Equal(t, map[string]interface{}{"enabled": true, "name": "docs"}, got)
}

func TestUpdateLinkRequiresNoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// A 200 is not a confirmation for update.
		writeJSON(w, http.StatusOK, map[string]interface{}{"message": "unexpected"})
	})

	err := c.UpdateLink(context.Background(), 1, models.LinkPatch{Enabled: true})
	var appErr *ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "unexpected", appErr.Message)
}

func TestDeleteLink(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/ui/api/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.DeleteLink(context.Background(), 3))
}

func TestDeleteLinkNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"success": false, "message": "not found"})
	})

	err := c.DeleteLink(context.Background(), 3)
	var appErr *ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "not found", appErr.Message)
	assert.Equal(t, OpDelete, appErr.Op)
}

func TestDeleteLinkNonJSONErrorIsTransportError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.DeleteLink(context.Background(), 3)
	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestNewClientNormalizesPaths(t *testing.T) {
	c := NewClient("http://localhost:3030/", "links/", 0)
	assert.Equal(t, "http://localhost:3030", c.baseURL)
	assert.Equal(t, "/links", c.linksPath)
	assert.Equal(t, "/links/5", c.linkPath(5))

	c = NewClient("http://localhost:3030", "", 0)
	assert.Equal(t, DefaultLinksPath, c.linksPath)
}
