package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version   = "dev"
	commitSHA = "unknown"
)

type rootOptions struct {
	configPath string
	strategy   string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:          "errorviews",
		Short:        "Error Views: exception-to-view resolution demo server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: config.yaml in ./config, . or /etc/errorviews/)")
	rootCmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "override profile.strategy: controller, global or table")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show Error Views version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Error Views Version: %s\n", version)
			fmt.Printf("Commit: %s\n", commitSHA)
		},
	}
}
