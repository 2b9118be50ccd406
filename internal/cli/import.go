package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmuir/todomark/internal/api"
	"github.com/tmuir/todomark/internal/models"
	"github.com/tmuir/todomark/internal/note"
	"github.com/tmuir/todomark/internal/render"
	"github.com/tmuir/todomark/internal/tui"
)

var (
	importNote   string
	importMarker string
	importStdout bool
	importPick   bool

	// Agent-friendly flags (shared across commands)
	jsonOutput bool
	quietMode  bool
)

func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Fetch all tasks and insert them into your note",
		Long: `Fetch projects, tasks, and comments, render them as Markdown
checkbox blocks, and insert the result at the cursor marker of your note file.

Examples:
  # Import into the note configured in config.yaml
  todomark import

  # Import into a specific note
  todomark import --note ~/notes/inbox.md

  # Pick tasks interactively before inserting
  todomark import --pick

  # Print the rendered Markdown instead of writing a file
  todomark import --stdout
`,
		RunE: runImport,
	}

	cmd.Flags().StringVar(&importNote, "note", "", "Note file to insert into (overrides config)")
	cmd.Flags().StringVar(&importMarker, "marker", "", "Cursor marker line (overrides config)")
	cmd.Flags().BoolVar(&importStdout, "stdout", false, "Print rendered Markdown to stdout instead of writing the note")
	cmd.Flags().BoolVar(&importPick, "pick", false, "Interactively select which tasks to import")

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&quietMode, "quiet", false, "Minimal output")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cli, err := NewCLI(ctx)
	if err != nil {
		exitWith(formatter, err)
	}

	snapshot, err := cli.Importer.FetchAll(ctx)
	if err != nil {
		exitWith(formatter, err)
	}

	tasks := snapshot.Tasks
	if importPick {
		chosen, canceled, err := tui.Run(tasks, snapshot.Projects)
		if err != nil {
			exitWith(formatter, err)
		}
		if canceled {
			return formatter.Success("Import canceled; nothing written.", map[string]any{
				"canceled": true,
			})
		}
		tasks = chosen
	}

	// Render everything before touching the note: a task with an unknown
	// project aborts here and nothing is inserted
	text, err := render.Tasks(tasks, snapshot.Projects, cli.Config.Separator)
	if err != nil {
		exitWith(formatter, err)
	}

	notePath := cli.Config.NoteFile
	if importNote != "" {
		notePath = importNote
	}
	marker := cli.Config.CursorMarker
	if importMarker != "" {
		marker = importMarker
	}

	if importStdout || notePath == "" {
		fmt.Fprint(os.Stdout, text)
		return nil
	}

	if err := note.Insert(notePath, marker, text); err != nil {
		exitWith(formatter, err)
	}

	return formatter.Success(
		fmt.Sprintf("Imported %d tasks into %s", len(tasks), notePath),
		map[string]any{
			"tasks": len(tasks),
			"note":  notePath,
		},
	)
}

// exitWith prints the error in the active output mode and terminates with
// the matching exit code
func exitWith(formatter *OutputFormatter, err error) {
	code, errCode, suggestion := classify(err)
	_ = formatter.ErrorWithSuggestion(errCode, err.Error(), suggestion)
	os.Exit(code)
}

// classify maps an error to its exit code, machine-readable code, and an
// optional suggestion for the user
func classify(err error) (int, string, string) {
	var statusErr *api.StatusError

	switch {
	case errors.Is(err, models.ErrMissingToken):
		return ExitConfig, "CONFIG_ERROR",
			"Set a token with 'todomark config set-token <token>' or the TODOMARK_API_TOKEN environment variable."
	case errors.Is(err, models.ErrUnknownProject):
		return ExitNotFound, "PROJECT_NOT_FOUND", ""
	case errors.As(err, &statusErr):
		if statusErr.StatusCode == 401 || statusErr.StatusCode == 403 {
			return ExitConfig, "AUTH_ERROR", "Check that your API token is valid."
		}
		if statusErr.StatusCode == 404 {
			return ExitNotFound, "NOT_FOUND", ""
		}
		return ExitError, "API_ERROR", ""
	default:
		return ExitError, "ERROR", ""
	}
}
