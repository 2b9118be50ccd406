package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task as completed on the service",
		Args:  cobra.ExactArgs(1),
		RunE:  runDone,
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&quietMode, "quiet", false, "Minimal output")

	return cmd
}

func ReopenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reopen <task-id>",
		Short: "Reopen a completed task on the service",
		Args:  cobra.ExactArgs(1),
		RunE:  runReopen,
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&quietMode, "quiet", false, "Minimal output")

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cli, err := NewCLI(ctx)
	if err != nil {
		exitWith(formatter, err)
	}

	taskID := args[0]
	if err := cli.Client.CloseTask(ctx, taskID); err != nil {
		exitWith(formatter, err)
	}

	return formatter.Success(
		fmt.Sprintf("Task %s completed", taskID),
		map[string]any{"id": taskID, "is_completed": true},
	)
}

func runReopen(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cli, err := NewCLI(ctx)
	if err != nil {
		exitWith(formatter, err)
	}

	taskID := args[0]
	if err := cli.Client.ReopenTask(ctx, taskID); err != nil {
		exitWith(formatter, err)
	}

	return formatter.Success(
		fmt.Sprintf("Task %s reopened", taskID),
		map[string]any{"id": taskID, "is_completed": false},
	)
}
