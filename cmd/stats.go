package cmd

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/pixverse/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show journey statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		res := e.progress.Load(cmd.Context())
		p := e.progress.State()
		s := p.Stats()

		label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(12)
		row := func(k string, v any) {
			fmt.Println(label.Render(k) + fmt.Sprint(v))
		}

		fmt.Println(theme.Title.Render("✦ PIXVERSE"))
		if !res.Found {
			fmt.Println(theme.Muted.Render("No saved journey yet."))
		}
		row("Birthday", s.Birthday.Format("Jan 2, 2006"))
		if left := time.Until(s.Birthday); left > 0 {
			row("Days left", int(left.Hours()/24))
		}
		row("Started", s.Started)
		row("Screen", p.CurrentScreen)
		row("Keys", s.Keys)
		row("Tokens", s.Tokens)
		row("Cards seen", fmt.Sprintf("%d/%d", s.Viewed, len(e.pack.Cards)))
		row("Puzzles", s.Puzzles)
		row("Pinned", s.Pinned)
		row("Messages", s.Messages)
		row("Awards", s.Awards)
		for _, name := range p.UnlockedAwards {
			aw := e.pack.Award(name)
			fmt.Println(strings.Repeat(" ", 12) + aw.Icon + " " + aw.Name)
		}
		return nil
	},
}
