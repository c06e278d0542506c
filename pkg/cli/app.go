package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"link-admin/pkg/cli/client"
	"link-admin/pkg/cli/tui"
	"link-admin/pkg/config"

	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	cfg    *config.Config
	client *client.Client

	stdout io.Writer
	stderr io.Writer
}

func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// getClient returns the HTTP client, creating it if necessary
func (a *App) getClient() (*client.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	if a.cfg.CLI.BaseURL == "" {
		return nil, fmt.Errorf("base URL not configured")
	}

	a.client = client.NewClient(a.cfg.CLI.BaseURL, a.cfg.CLI.LinksPath, a.cfg.Timeout())
	return a.client, nil
}

// Run starts the interactive link panel
func (a *App) Run(ctx context.Context) error {
	apiClient, err := a.getClient()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewManageLinksModel(ctx, apiClient), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running link panel: %w", err)
	}
	return nil
}
