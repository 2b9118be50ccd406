package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	projectNameStyle = lipgloss.NewStyle().Bold(true)
	projectIDStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func ProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List the projects on your account",
		RunE:  runProjects,
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&quietMode, "quiet", false, "Minimal output")

	return cmd
}

func runProjects(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cli, err := NewCLI(ctx)
	if err != nil {
		exitWith(formatter, err)
	}

	projects, err := cli.Client.ListProjects(ctx)
	if err != nil {
		exitWith(formatter, err)
	}

	if jsonOutput || quietMode {
		return formatter.Success("", projects)
	}

	for _, p := range projects {
		fmt.Fprintf(os.Stdout, "%s %s\n",
			projectNameStyle.Render(p.Name),
			projectIDStyle.Render("("+p.ID+")"))
	}
	return nil
}
