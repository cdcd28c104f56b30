package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sandbox/internal/platform/tui"
	"github.com/vovakirdan/tui-sandbox/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "Show saved sessions",
	Long: `Without arguments, lists recent sessions and the reaction totals over
all of them. With a session id, shows that session's reactions and a plot
of its population.

Examples:
  sandbox history
  sandbox history --limit 5
  sandbox history 6f1c2d3e-...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to list")
}

func runHistory(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening session database: %v", err)
	}
	defer store.Close()

	if len(args) == 1 {
		if err := showSession(store, args[0]); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	if err := listSessions(store); err != nil {
		store.Close()
		fail("%v", err)
	}
}

func listSessions(store *storage.Store) error {
	sessions, err := store.RecentSessions(flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'sandbox play' and quit to save one!")
		return nil
	}

	fmt.Printf("  %-36s  %-10s  %-16s  %8s  %6s  %9s\n", "ID", "Scene", "When", "Ticks", "Peak", "Reactions")
	fmt.Printf("  %-36s  %-10s  %-16s  %8s  %6s  %9s\n", "--", "-----", "----", "-----", "----", "---------")
	for _, s := range sessions {
		fmt.Printf("  %-36s  %-10s  %-16s  %8s  %6s  %9s\n",
			s.ID, s.Scene, humanize.Time(s.StartedAt),
			humanize.Comma(int64(s.Ticks)), humanize.Comma(int64(s.Peak)), humanize.Comma(int64(s.Reactions)))
	}

	totals, err := store.TotalsByProduct()
	if err != nil {
		return err
	}
	if len(totals) > 0 {
		fmt.Println()
		fmt.Println("Products over all sessions:")
		for _, t := range totals {
			fmt.Printf("  %-8s  %8s  in %s\n", t.Product, humanize.Comma(int64(t.Count)), sessionsWord(t.Sessions))
		}
	}
	return nil
}

func showSession(store *storage.Store, id string) error {
	rec, err := store.SessionByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no session %q", id)
	}

	fmt.Printf("Session %s\n", rec.ID)
	fmt.Println()
	fmt.Printf("  Scene:     %s (walls %s, seed %d)\n", rec.Scene, rec.Boundary, rec.Seed)
	fmt.Printf("  Started:   %s (%s)\n", rec.StartedAt.Local().Format("2006-01-02 15:04"), humanize.Time(rec.StartedAt))
	fmt.Printf("  Duration:  %s\n", rec.Duration().Round(time.Second))
	fmt.Printf("  Ticks:     %s\n", humanize.Comma(int64(rec.Ticks)))
	fmt.Printf("  Spawned:   %s (peak %s alive)\n", humanize.Comma(int64(rec.Spawned)), humanize.Comma(int64(rec.Peak)))
	fmt.Printf("  Reactions: %s\n", humanize.Comma(int64(rec.Reactions)))

	tallies, err := store.ReactionTallies(rec.ID)
	if err != nil {
		return err
	}
	if len(tallies) > 0 {
		fmt.Println()
		for _, t := range tallies {
			fmt.Printf("  %-6s + %-6s -> %-6s %8s\n", t.A, t.B, t.Product, humanize.Comma(int64(t.Count)))
		}
	}

	samples, err := store.PopulationSamples(rec.ID)
	if err != nil {
		return err
	}
	if plot := tui.PopulationPlot(samples, 60, 10); plot != "" {
		fmt.Println()
		fmt.Println(plot)
	}
	return nil
}

func sessionsWord(n int) string {
	if n == 1 {
		return "1 session"
	}
	return fmt.Sprintf("%d sessions", n)
}
