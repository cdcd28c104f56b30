package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sandbox/internal/config"
	"github.com/vovakirdan/tui-sandbox/internal/platform/tui"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
	"github.com/vovakirdan/tui-sandbox/internal/sandbox"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the sandbox with a scene picker menu",
	Long: `Start the sandbox in interactive menu mode.

Use arrow keys or j/k to pick a scene, left/right to pick the walls and
Enter to start. Leaving a scene returns to the menu; Tab opens the
session history.

Examples:
  sandbox menu
  sandbox menu --fps 60
  sandbox menu --db ./sessions.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	sandboxCfg, rules := loadSandbox("")

	logger, logFile := fileLogger()
	defer logFile.Close()

	store := openStore(logger)

	cfg := runtimeConfig()
	preset := config.BoundaryDefault

	for {
		menuResult, err := tui.RunMenu(cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config
		preset = menuResult.Preset

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, hErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if hErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", hErr)
			}
			if goBack {
				continue
			}
			break
		}

		scene, err := registry.Create(menuResult.SceneID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
			continue
		}

		runCfg := sandboxCfg
		if err := config.ApplyBoundaryPreset(&runCfg, preset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		// Fresh seed for each run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		game := sandbox.New(runCfg, rules, scene, logger)
		if err := tui.Run(game, store, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running sandbox: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
