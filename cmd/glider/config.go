package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-glider/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the built-in default configuration.

Save it and pass the edited file back with --config:

  glider config > my-glider.yaml
  glider play --config ./my-glider.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
