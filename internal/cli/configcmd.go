package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmuir/todomark/internal/config"
)

func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage todomark configuration",
	}

	cmd.AddCommand(configSetTokenCmd())
	cmd.AddCommand(configPathCmd())

	return cmd
}

func configSetTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token <token>",
		Short: "Store the API token in the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
				os.Exit(ExitConfig)
			}

			cfg.APIToken = args[0]
			if err := cfg.Save(); err != nil {
				fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
				os.Exit(ExitConfig)
			}

			fmt.Println("API token saved.")
			return nil
		},
	}
}

func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(ExitConfig)
			}
			fmt.Println(path)
			return nil
		},
	}
}
