// emberwood is a 2D tile-based adventure game.
//
// Usage:
//
//	emberwood run                 - Start the game
//	emberwood maps                - List the maps in the data directory
//
// Global flags:
//
//	--data <dir>      - Game data directory (default: ./data)
//	--settings <path> - Settings YAML file (default: ./settings.yaml)
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidegate/emberwood/internal/application/game"
	"github.com/tidegate/emberwood/internal/application/scene/playing"
	"github.com/tidegate/emberwood/internal/application/system"
	"github.com/tidegate/emberwood/internal/domain/progress"
	"github.com/tidegate/emberwood/internal/infrastructure/config"
	"github.com/tidegate/emberwood/internal/infrastructure/logger"
)

var (
	flagDataDir  string
	flagSettings string
	flagMap      string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "emberwood",
	Short: "Emberwood - a 2D tile adventure",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List the maps in the data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := config.NewLoader(flagDataDir)
		bundles, err := loader.LoadAllMaps()
		if err != nil {
			return err
		}
		for _, b := range bundles {
			fmt.Printf("%-16s %3dx%-3d  %s\n", b.ID, b.Size.Width, b.Size.Height, b.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data", "data", "Game data directory")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "settings.yaml", "Settings YAML file")
	runCmd.Flags().StringVar(&flagMap, "map", "", "Override the starting map")
	runCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Override the log level")
	rootCmd.AddCommand(runCmd, mapsCmd)
}

func run() error {
	settings, err := config.LoadSettings(flagSettings)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		settings.Logging.Level = flagLogLevel
	}
	if flagMap != "" {
		settings.Game.StartMap = flagMap
	}

	log := logger.New(settings.Logging.Level, settings.Logging.LogFile)
	defer func() { _ = log.Sync() }()

	loader := config.NewLoader(flagDataDir)
	bundles, err := loader.LoadAllMaps()
	if err != nil {
		return err
	}

	gs := progress.NewState()
	manager := system.NewManager(gs, log)
	for _, bundle := range bundles {
		manager.Register(system.BuildMap(bundle))
		log.Info("map registered", zap.String("map", bundle.ID))
	}

	screenW := settings.Window.Width
	screenH := settings.Window.Height
	p := playing.New(manager, gs, screenW, screenH, log)
	if err := p.Start(settings.Game.StartMap); err != nil {
		return fmt.Errorf("starting on map %s: %w", settings.Game.StartMap, err)
	}

	ebiten.SetWindowSize(screenW*settings.Window.Scale, screenH*settings.Window.Scale)
	ebiten.SetWindowTitle("Emberwood")

	log.Info("game starting", zap.String("map", settings.Game.StartMap))
	return ebiten.RunGame(game.New(p, screenW, screenH))
}
