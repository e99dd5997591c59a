package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollisv/caresim/internal/analytics"
	"github.com/hollisv/caresim/internal/app"
	"github.com/hollisv/caresim/internal/engine"
	"github.com/hollisv/caresim/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if err := loadPacks(cmd); err != nil {
		return fmt.Errorf("load scenario packs: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	org, _ := cmd.Flags().GetString("org")
	opts := app.Options{
		LearnerRepo:  st.LearnerRepo(),
		Engine:       engine.NewService(st.AttemptRepo(), st.DecisionRepo()),
		Analytics:    analytics.NewService(st.LearnerRepo(), st.AttemptRepo(), st.DecisionRepo()),
		Organization: org,
	}

	if name, _ := cmd.Flags().GetString("learner"); name != "" {
		l, err := st.LearnerRepo().Ensure(ctx, name, org, store.RoleLearner)
		if err != nil {
			return fmt.Errorf("sign in %q: %w", name, err)
		}
		opts.Learner = l
	}

	return app.Run(opts)
}
