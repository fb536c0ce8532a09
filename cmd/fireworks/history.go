package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fireworks/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show statistics of past shows",
	Long: `Display the most recent shows with their statistics, a plot of
fireworks launched per show and totals over all recorded shows.

Examples:
  fireworks history
  fireworks history --limit 50
  fireworks history --clear`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent shows to list")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded shows")
}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.History.DBPath)
	if err != nil {
		return fmt.Errorf("cannot open history database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearHistory(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	shows, err := store.RecentShows(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Recent shows"))
	fmt.Println()

	if len(shows) == 0 {
		fmt.Println("No shows recorded yet.")
		fmt.Println()
		fmt.Println("Run 'fireworks' to start the first one!")
		return nil
	}

	fmt.Println(historyTable(shows).View())
	fmt.Println()

	if plot := launchPlot(shows); plot != "" {
		fmt.Println(plot)
		fmt.Println()
	}

	totals, err := store.Totals()
	if err != nil {
		return err
	}
	fmt.Println(formatTotals(totals))
	return nil
}

// formatTotals summarises every recorded show on two lines.
func formatTotals(t *storage.Totals) string {
	last := "never"
	if !t.LastShow.IsZero() {
		last = t.LastShow.Format("2006-01-02 15:04")
	}
	return fmt.Sprintf("Shows: %d  Time: %s  Ticks: %d  Last show: %s\n"+
		"Launched: %d  Explosions: %d  Secondary: %d  Peak particles: %d",
		t.Shows, t.Duration.Round(time.Second), t.Ticks, last,
		t.Launched, t.Explosions, t.SecondaryBursts, t.PeakParticles)
}

// historyTable builds a static table of recent shows, newest first.
func historyTable(shows []storage.ShowRecord) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Started", Width: 16},
		{Title: "Backend", Width: 7},
		{Title: "Seed", Width: 20},
		{Title: "Time", Width: 9},
		{Title: "Launched", Width: 8},
		{Title: "Bursts", Width: 7},
		{Title: "Peak", Width: 6},
	}

	rows := make([]table.Row, 0, len(shows))
	for _, s := range shows {
		rows = append(rows, table.Row{
			strconv.FormatInt(s.ID, 10),
			s.StartedAt.Format("2006-01-02 15:04"),
			s.Backend,
			strconv.FormatInt(s.Seed, 10),
			s.Duration.Round(time.Second).String(),
			strconv.Itoa(s.Stats.Launched),
			strconv.Itoa(s.Stats.Explosions + s.Stats.SecondaryBursts),
			strconv.Itoa(s.Stats.PeakParticles),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Not interactive, so nothing is highlighted
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// launchPlot charts fireworks launched per show, oldest on the left.
// Returns "" when there are too few shows to draw a line.
func launchPlot(shows []storage.ShowRecord) string {
	if len(shows) < 2 {
		return ""
	}

	data := make([]float64, len(shows))
	for i, s := range shows {
		data[len(shows)-1-i] = float64(s.Stats.Launched)
	}

	return asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("fireworks launched per show"),
	)
}
