package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board presets",
	Long:  `Shows every board preset, smallest board first, with the best tile reached so far.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No presets available.")
		return
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	t := newTable("ID", "Title", "Size", "Best")
	for _, g := range games {
		best := "-"
		if store != nil {
			if tile, err := store.BestTile(g.ID); err != nil {
				logger.Debug("best tile unavailable", "preset", g.ID, "error", err)
			} else if tile > 0 {
				best = strconv.Itoa(tile)
			}
		}
		t.Row(g.ID, g.Title, fmt.Sprintf("%dx%d", g.Rows, g.Cols), best)
	}

	fmt.Println(t)
	fmt.Println("Run 't2048 play <id>' to play a board.")
}
