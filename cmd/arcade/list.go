package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-trio/internal/registry"
	"github.com/vovakirdan/arcade-trio/internal/storage"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("154")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every registered game with its best recorded score.

The scores database is optional; without it the Best column is empty.`,
	RunE: runList,
}

// newTable returns a bordered table with the shared arcade styling.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	// Scores are decoration here, so a missing database is not an error
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Debug("listing without scores", "path", flagDBPath, "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	t := newTable("ID", "Title", "Best")
	for _, g := range games {
		best := "-"
		if store != nil {
			if hs, err := store.HighScore(g.ID); err == nil && hs > 0 {
				best = strconv.Itoa(hs)
			}
		}
		t.Row(g.ID, g.Title, best)
	}

	fmt.Println(t.Render())
	fmt.Println("Run 'arcade play <id>' to play a game.")
	return nil
}
