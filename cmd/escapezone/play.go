package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/escapezone/internal/audio"
	"github.com/vovakirdan/escapezone/internal/config"
	"github.com/vovakirdan/escapezone/internal/core"
	"github.com/vovakirdan/escapezone/internal/games/escapezone"
	"github.com/vovakirdan/escapezone/internal/platform/tui"
	"github.com/vovakirdan/escapezone/internal/registry"
	"github.com/vovakirdan/escapezone/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: escapezone).

Controls:
  Left/A, Right/D  - Tilt left / right
  Space/Up/W       - Boost (start the run, burn the turbo meter)
  Enter            - Start / restart
  P                - Pause
  R                - Restart (after a crash)
  B/Esc            - Leave (when paused or after a crash)
  Ctrl+S           - Screenshot to ~/.escapezone/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at the widest road, narrows as you score
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Sound cues are synthesized unless --assets names a directory holding the
files listed under audio: in the config.

Examples:
  escapezone play
  escapezone play escapezone_meter --difficulty easy
  escapezone play --config ./my-road.yaml
  escapezone play --assets ./sounds
  escapezone play --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by every command that starts games.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with crash/turbo sound files")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := config.Variants()[0].ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'escapezone list' to see available variants.")
		os.Exit(1)
	}

	gameCfg, err := prepareGames()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	player := newAudioPlayer(gameCfg)

	runErr := tui.Run(game, tui.Deps{Store: store, Audio: player, Logger: log.Default()}, runtimeConfig())

	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// prepareGames validates the game flags and hands them to the variants.
// A broken custom config is fatal here so the player sees why, instead of
// silently driving on defaults.
func prepareGames() (config.EscapeZoneConfig, error) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return config.EscapeZoneConfig{}, fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", flagDifficulty)
	}

	cfg, err := config.LoadEscapeZone(flagConfig)
	if err != nil {
		return cfg, err
	}

	escapezone.SetConfigPath(flagConfig)
	escapezone.SetDifficultyPreset(flagDifficulty)
	return cfg, nil
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// newAudioPlayer starts the speaker, falling back to silence on failure.
func newAudioPlayer(cfg config.EscapeZoneConfig) audio.Player {
	if flagMute {
		return audio.Nop{}
	}

	m := audio.NewManager(flagAssets, cfg.Audio, log.Default())
	if err := m.Initialize(); err != nil {
		log.Warn("sound disabled", "err", err)
		return audio.Nop{}
	}
	return m
}
