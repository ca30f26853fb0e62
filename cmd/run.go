package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/pixverse/internal/app"
)

// runApp resolves the environment and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	return app.Run(app.Options{
		Progress: e.progress,
		Content:  e.pack,
		Logger:   e.logger,
		Rand:     e.rng,
		Shuffle:  e.shuffle,
	})
}
