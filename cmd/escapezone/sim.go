package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/escapezone/internal/config"
	"github.com/vovakirdan/escapezone/internal/core"
	"github.com/vovakirdan/escapezone/internal/games/escapezone"
	"github.com/vovakirdan/escapezone/internal/storage"
)

var (
	flagSimTicks   int
	flagSimVariant string
	flagSimSave    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the autopilot drive headless",
	Long: `Run one round without a terminal UI. The autopilot steers toward the
middle of the road and around obstacles until it crashes or the tick
budget runs out, then prints the run summary.

Useful for checking a custom config or comparing seeds.

Examples:
  escapezone sim
  escapezone sim --ticks 10000 --seed 7
  escapezone sim --variant escapezone_edge --config ./tight.yaml
  escapezone sim --save`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum ticks to simulate")
	simCmd.Flags().StringVar(&flagSimVariant, "variant", "escapezone", "Variant to drive")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the scores database")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(_ *cobra.Command, _ []string) {
	v, ok := config.LookupVariant(flagSimVariant)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", flagSimVariant)
		os.Exit(1)
	}

	if _, err := prepareGames(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	game := escapezone.New(v)
	game.Reset(rt)
	pilot := escapezone.NewAutopilot()

	start := time.Now()
	for i := 0; i < flagSimTicks; i++ {
		res := game.Step(pilot.Input(game))
		if res.State.GameOver {
			break
		}
	}
	elapsed := time.Since(start)

	summary := game.Summary()
	if summary.EndReason == core.EndNone {
		summary.EndReason = core.EndQuit
	}
	log.Debug("simulation finished", "variant", v.ID, "seed", rt.Seed, "elapsed", elapsed)

	fmt.Printf("Variant:  %s (%s)\n", v.Title, v.ID)
	fmt.Printf("Seed:     %d\n", rt.Seed)
	fmt.Printf("Score:    %d\n", summary.Score)
	fmt.Printf("Ticks:    %d (%.1fs of play)\n", summary.Ticks, float64(summary.Ticks)/float64(max(rt.TickRate, 1)))
	fmt.Printf("Distance: %.0f\n", summary.Distance)
	fmt.Printf("Pickups:  %d\n", summary.Pickups)
	fmt.Printf("Ended:    %s\n", summary.EndReason)

	if !flagSimSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.RunRecord{
		GameID:    v.ID,
		Score:     summary.Score,
		Ticks:     summary.Ticks,
		Distance:  summary.Distance,
		Pickups:   summary.Pickups,
		EndReason: string(summary.EndReason),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Run saved.")
}
