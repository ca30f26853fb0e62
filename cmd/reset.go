package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pixverse/internal/screen"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restart the journey from the countdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		e.progress.Load(cmd.Context())
		e.progress.Reset()
		e.progress.State().CurrentScreen = string(screen.Countdown)
		if err := e.progress.Save(cmd.Context()); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		fmt.Println("Progress reset. The journey starts again at the countdown.")
		return nil
	},
}
