package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Print the built-in default configuration in YAML.

Redirect it to a file to customize the game rules:

  blockfall config > ~/.blockfall/config.yaml

The loader picks up (in order): --config <path>, ~/.blockfall/config.yaml,
./configs/blockfall.yaml, then the built-in defaults.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	//nolint:errcheck // Writing to stdout
	os.Stdout.Write(config.DefaultYAML())
}
