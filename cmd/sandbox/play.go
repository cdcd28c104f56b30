package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sandbox/internal/config"
	"github.com/vovakirdan/tui-sandbox/internal/platform/tui"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
	"github.com/vovakirdan/tui-sandbox/internal/sandbox"
)

var flagBoundary string

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Open a scene",
	Long: `Open the specified scene, or an empty box when none is given.

Controls:
  Arrows/WASD       - Move cursor
  Space             - Place selected element
  X/Backspace       - Erase
  Tab/], Shift+Tab/[ - Next/previous element
  1-7               - Select element by palette slot
  +/-               - Grow/shrink brush
  T/B/L/R           - Toggle top/bottom/left/right wall
  N                 - Toggle pinned placement
  C                 - Clear all particles
  P                 - Pause, . steps one tick while paused
  Mouse             - Left drag places, right drag erases
  Ctrl+S            - Save screenshot
  Esc/Q/Ctrl+C      - Quit (the session is saved to history)

Boundary presets:
  ` + presetNames() + `

Examples:
  sandbox play
  sandbox play beach
  sandbox play bonfire --boundary boxed
  sandbox play lab --config ./my-sandbox.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBoundary, "boundary", "", "Boundary preset: "+presetNames())
}

func presetNames() string {
	presets := config.BoundaryPresets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

func runPlay(_ *cobra.Command, args []string) {
	sceneID := "empty"
	if len(args) > 0 {
		sceneID = args[0]
	}

	if !registry.Exists(sceneID) {
		fail("unknown scene %q\nRun 'sandbox scenes' to see available scenes.", sceneID)
	}

	sandboxCfg, rules := loadSandbox(flagBoundary)

	logger, logFile := fileLogger()
	defer logFile.Close()

	scene, err := registry.Create(sceneID)
	if err != nil {
		fail("creating scene: %v", err)
	}

	store := openStore(logger)

	game := sandbox.New(sandboxCfg, rules, scene, logger)
	runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logFile.Close()
		fail("running sandbox: %v", runErr)
	}
}
