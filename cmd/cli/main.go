package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"link-admin/pkg/cli"
	"link-admin/pkg/cli/links"
	"link-admin/pkg/cli/logger"
	"link-admin/pkg/config"
	"link-admin/pkg/models"
)

func main() {
	var (
		listMode   = flag.Bool("list", false, "List all links")
		addMode    = flag.Bool("add", false, "Add a new link (with --name and --url)")
		editID     = flag.String("edit", "", "Edit the link with this ID (with --enabled, optional --name and --url)")
		deleteID   = flag.String("delete", "", "Delete the link with this ID")
		name       = flag.String("name", "", "Link name")
		url        = flag.String("url", "", "Link target URL")
		enabled    = flag.Bool("enabled", true, "Whether the link is enabled (edit; unset keeps the current state)")
		configShow = flag.Bool("config-show", false, "Show current configuration")
		configSet  = flag.String("config-set", "", "Set a config value (format: section.key=value)")
	)
	flag.Parse()

	// --enabled only applies to an edit when given explicitly
	var editEnabled *bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "enabled" {
			editEnabled = enabled
		}
	})

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.CLI.LogDir, cfg.CLI.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	defer logger.CloseLog()

	app := cli.NewApp(cfg)

	// Handle config commands first (don't need the server)
	if *configShow {
		app.ShowConfig()
		return
	}
	if *configSet != "" {
		if err := app.SetConfig(*configSet); err != nil {
			exit(fmt.Errorf("failed to set config: %w", err))
		}
		fmt.Println("Configuration updated successfully")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *listMode:
		err = app.ListLinks(ctx)
	case *addMode:
		err = app.AddLink(ctx, *name, *url)
	case *editID != "":
		var id models.LinkID
		if id, err = models.ParseLinkID(*editID); err == nil {
			err = app.EditLink(ctx, id, *name, *url, editEnabled)
		}
	case *deleteID != "":
		var id models.LinkID
		if id, err = models.ParseLinkID(*deleteID); err == nil {
			err = app.DeleteLink(ctx, id)
		}
	default:
		// Interactive panel
		err = app.Run(ctx)
	}

	if err != nil {
		stop()
		logger.CloseLog()
		exit(err)
	}
}

func exit(err error) {
	fmt.Fprint(os.Stderr, links.FormatErrorMessage(err))
	os.Exit(1)
}
