package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/coursely/internal/app"
	"github.com/abhisek/coursely/internal/attempt"
	"github.com/abhisek/coursely/internal/certificate"
	"github.com/abhisek/coursely/internal/progress"
	"github.com/abhisek/coursely/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Store:     st,
		UserID:    resolveUserID(cmd),
		Tracker:   progress.NewTracker(st.ProgressRepo()),
		Evaluator: certificate.NewEvaluator(st.CertificateRepo()),
		Manager:   attempt.NewManager(st.AttemptRepo()),
	}

	return app.Run(opts)
}
