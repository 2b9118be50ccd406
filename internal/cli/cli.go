package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmuir/todomark/internal/api"
	"github.com/tmuir/todomark/internal/config"
	"github.com/tmuir/todomark/internal/importer"
	"github.com/tmuir/todomark/internal/models"
)

// CLI bundles the configuration and service clients a command needs
type CLI struct {
	Config   *config.Config
	Client   *api.Client
	Importer *importer.Service
	ctx      context.Context
}

// NewCLI loads configuration and wires up the API client and importer.
// Fails fast when no API token is available from the config file or the
// environment.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.APIToken == "" {
		return nil, models.ErrMissingToken
	}

	client := api.NewClient(ctx, cfg.BaseURL, cfg.APIToken)

	return &CLI{
		Config:   cfg,
		Client:   client,
		Importer: importer.NewService(client),
		ctx:      ctx,
	}, nil
}

// RootCmd assembles the todomark command tree
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "todomark",
		Short:         "Import tasks from a Todoist-compatible service into Markdown notes",
		Long:          `Todomark fetches your tasks, projects, and comments and renders them as Markdown checkbox blocks inserted at a cursor marker in a note file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(ImportCmd())
	root.AddCommand(PreviewCmd())
	root.AddCommand(ProjectsCmd())
	root.AddCommand(DoneCmd())
	root.AddCommand(ReopenCmd())
	root.AddCommand(ConfigCmd())

	return root
}
