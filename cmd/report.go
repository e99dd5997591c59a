package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollisv/caresim/internal/analytics"
	"github.com/hollisv/caresim/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report <learner-name>",
	Short: "Print a learner's training report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		l, err := st.LearnerRepo().GetByName(ctx, args[0])
		if err != nil {
			return fmt.Errorf("learner %q: %w", args[0], err)
		}

		svc := analytics.NewService(st.LearnerRepo(), st.AttemptRepo(), st.DecisionRepo())
		r, err := svc.LearnerReport(ctx, l.ID)
		if err != nil {
			return err
		}

		fmt.Printf("Report for %s\n\n", r.Name)
		fmt.Printf("  Scenarios completed   %d\n", r.ScenariosCompleted)
		fmt.Printf("  Decisions made        %d\n", r.TotalDecisions)
		fmt.Printf("  Best practice         %d\n", r.BestPracticeCount)
		fmt.Printf("  Valid alternative     %d\n", r.ValidAlternativeCount)
		fmt.Printf("  Suboptimal            %d\n", r.SuboptimalCount)
		if r.ScenariosCompleted > 0 {
			fmt.Printf("  Avg client status     %.1f\n", r.AvgClientStatus)
			fmt.Printf("  Avg wellbeing         %.1f\n", r.AvgWellbeing)
		}
		return nil
	},
}
