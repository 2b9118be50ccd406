package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/tmuir/todomark/internal/render"
)

var previewWidth int

func PreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Fetch tasks and render them in the terminal",
		Long:  `Fetch everything the import would insert and display it styled in the terminal, without writing to any note.`,
		RunE:  runPreview,
	}

	cmd.Flags().IntVar(&previewWidth, "width", 100, "Word-wrap width")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&quietMode, "quiet", false, "Minimal output")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
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

	text, err := render.Tasks(snapshot.Tasks, snapshot.Projects, cli.Config.Separator)
	if err != nil {
		exitWith(formatter, err)
	}

	if jsonOutput {
		return formatter.Success("", map[string]any{
			"tasks":    len(snapshot.Tasks),
			"markdown": text,
		})
	}

	fmt.Fprint(os.Stdout, renderTerminal(text, previewWidth))
	return nil
}

// renderTerminal styles Markdown for the terminal, falling back to the
// plain text when the renderer cannot be built
func renderTerminal(text string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return out
}
