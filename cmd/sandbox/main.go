// sandbox is a terminal falling-sand playground: place elements, watch them
// fall, flow and drift, and see them react on contact.
//
// Usage:
//
//	sandbox scenes               - List available scenes
//	sandbox elements             - List elements and their properties
//	sandbox reactions [a b]      - List reaction rules or check a pair
//	sandbox play [scene]         - Open a scene (default: empty)
//	sandbox menu                 - Pick scenes interactively
//	sandbox history [session-id] - Show saved sessions
//	sandbox serve                - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.sandbox/sessions.db)
//	--config <path>      - Use a custom sandbox.yaml
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Log destination while the TUI runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/tui-sandbox/internal/scenes"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "TUI Sandbox - a falling-sand playground in your terminal",
	Long: `TUI Sandbox is a terminal particle playground. Elements such as sand,
water, oil and fire fall, flow and drift, and react when they touch.

Available commands:
  scenes     - Show all available scenes
  elements   - Show the element catalog
  reactions  - Show reaction rules
  play       - Open a scene directly
  menu       - Interactive scene picker
  history    - Browse saved sessions
  serve      - Start SSH server for remote play

Examples:
  sandbox scenes
  sandbox play bonfire
  sandbox play --boundary boxed
  sandbox reactions water fire
  sandbox serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sandbox/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom sandbox config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.sandbox/sandbox.log", "Log file used while the TUI is running")

	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(elementsCmd)
	rootCmd.AddCommand(reactionsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
