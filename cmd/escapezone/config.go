package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/escapezone/internal/config"
)

var (
	flagConfigDefault bool
	flagConfigVariant string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game config",
	Long: `Print the config a game would start with, as YAML.

The config is searched for in this order:
  --config path
  ~/.escapezone/configs/escapezone.yaml
  ./configs/escapezone.yaml
  built-in defaults

Save the output to one of those paths to customise the road.

Examples:
  escapezone config > ~/.escapezone/configs/escapezone.yaml
  escapezone config --default
  escapezone config --variant escapezone_edge --difficulty hard`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default config")
	configCmd.Flags().StringVar(&flagConfigVariant, "variant", "", "Apply a variant's rules")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefault {
		os.Stdout.Write(config.GetDefaultYAML("escapezone"))
		return
	}

	cfg, err := config.LoadEscapeZone(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyEscapeZonePreset(&cfg, config.ParsePreset(flagDifficulty))

	if flagConfigVariant != "" {
		v, ok := config.LookupVariant(flagConfigVariant)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", flagConfigVariant)
			os.Exit(1)
		}
		config.ApplyVariant(&cfg, v)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
