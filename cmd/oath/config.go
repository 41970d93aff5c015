package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/survivors-oath/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning config",
	Long: `Print the tuning config that 'oath play' would use, as YAML.

The output is a complete file: save it to ~/.oath/configs/oath.yaml
or ./configs/oath.yaml and edit the values you want to change.

Examples:
  oath config
  oath config --config ./my-oath.yaml
  oath config > ~/.oath/configs/oath.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
