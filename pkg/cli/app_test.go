package cli

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"link-admin/pkg/api"
	"link-admin/pkg/config"
	"link-admin/pkg/db"
	"link-admin/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	srv := httptest.NewServer(api.NewRouter(db.New(), "/ui/api", log))
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.CLI.BaseURL = srv.URL

	var out bytes.Buffer
	app := NewApp(cfg)
	app.stdout = &out
	app.stderr = io.Discard
	return app, &out
}

func TestAddListEditDelete(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t)

	require.NoError(t, app.ListLinks(ctx))
	assert.Contains(t, out.String(), "No links found.")

	out.Reset()
	require.NoError(t, app.AddLink(ctx, "Docs", "https://docs.example.com"))
	assert.Contains(t, out.String(), "Link created successfully!")
	assert.Contains(t, out.String(), "docs")

	out.Reset()
	require.NoError(t, app.EditLink(ctx, 1, "", "", boolPtr(false)))
	assert.Contains(t, out.String(), "Enabled:    ✗")

	out.Reset()
	require.NoError(t, app.ListLinks(ctx))
	assert.Contains(t, out.String(), "https://docs.example.com")
	assert.Contains(t, out.String(), "Total: 1 link(s)")

	out.Reset()
	require.NoError(t, app.DeleteLink(ctx, 1))
	assert.Contains(t, out.String(), "Link 1 deleted")
}

func TestFailuresCarryNotificationText(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApp(t)

	err := app.AddLink(ctx, "docs", "docs.example.com")
	require.Error(t, err)
	assert.Equal(t, "Failed to add link: the link scheme must be http or https", err.Error())

	err = app.DeleteLink(ctx, 9)
	require.Error(t, err)
	assert.Equal(t, "Unable to delete link: record not found", err.Error())

	err = app.EditLink(ctx, 9, "", "", boolPtr(true))
	require.Error(t, err)
	assert.Equal(t, "Unable to update link: record not found", err.Error())

	err = app.EditLink(ctx, 9, "renamed", "", nil)
	require.Error(t, err)
	assert.Equal(t, "Unable to update link: link 9 is not listed", err.Error())
}

func boolPtr(b bool) *bool { return &b }

// serverLinks reads the links straight from the server, bypassing the app.
func serverLinks(t *testing.T, app *App) []models.Link {
	t.Helper()
	c, err := app.getClient()
	require.NoError(t, err)
	all, err := c.ListLinks(context.Background())
	require.NoError(t, err)
	return all
}

func TestEditWithoutEnabledKeepsCurrentState(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t)

	require.NoError(t, app.AddLink(ctx, "docs", "https://docs.example.com"))
	require.NoError(t, app.EditLink(ctx, 1, "", "", boolPtr(false)))

	out.Reset()
	require.NoError(t, app.EditLink(ctx, 1, "renamed", "", nil))
	assert.Contains(t, out.String(), "Enabled:    ✗")

	all := serverLinks(t, app)
	require.Len(t, all, 1)
	assert.Equal(t, "renamed", all[0].Name)
	assert.False(t, all[0].Enabled)

	require.NoError(t, app.EditLink(ctx, 1, "", "", nil))
	assert.False(t, serverLinks(t, app)[0].Enabled)

	require.NoError(t, app.EditLink(ctx, 1, "", "", boolPtr(true)))
	assert.True(t, serverLinks(t, app)[0].Enabled)
}

func TestUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	cfg := config.DefaultConfig()
	cfg.CLI.BaseURL = url
	app := NewApp(cfg)
	app.stdout = io.Discard

	err := app.ListLinks(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load links: ")
}

func TestSetConfig(t *testing.T) {
	t.Setenv("LINK_ADMIN_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	app := NewApp(config.DefaultConfig())

	require.NoError(t, app.SetConfig("cli.base_url=http://links.internal"))
	require.NoError(t, app.SetConfig("api.port=8080"))
	require.NoError(t, app.SetConfig("cli.request_timeout=10"))

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://links.internal", loaded.CLI.BaseURL)
	assert.Equal(t, 8080, loaded.API.Port)
	assert.Equal(t, 10, loaded.CLI.RequestTimeout)

	assert.Error(t, app.SetConfig("cli.base_url"))
	assert.Error(t, app.SetConfig("cli=value"))
	assert.Error(t, app.SetConfig("database.url=postgres://"))
	assert.Error(t, app.SetConfig("api.port=eighty"))
	assert.Error(t, app.SetConfig("cli.request_timeout=-1"))
}
