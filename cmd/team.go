package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hollisv/caresim/internal/analytics"
	"github.com/hollisv/caresim/internal/store"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Print the organization's team performance rollup",
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

		org, _ := cmd.Flags().GetString("org")
		svc := analytics.NewService(st.LearnerRepo(), st.AttemptRepo(), st.DecisionRepo())

		overview, err := svc.OrganizationOverview(ctx, org)
		if err != nil {
			return err
		}
		fmt.Printf("Organization: %s\n", overview.Organization)
		fmt.Printf("  Learners            %d\n", overview.LearnerCount)
		fmt.Printf("  Managers            %d\n", overview.ManagerCount)
		fmt.Printf("  Completed attempts  %d\n", overview.CompletedAttempts)
		if overview.TopScenarioID != 0 {
			fmt.Printf("  Most completed      %s (#%d)\n", overview.TopScenarioTitle, overview.TopScenarioID)
		}

		perf, err := svc.TeamPerformance(ctx, org)
		if err != nil {
			return err
		}
		if len(perf.Learners) == 0 {
			return nil
		}

		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LEARNER\tCOMPLETED\tDECISIONS\tBEST\tVALID\tSUBOPT\tAVG STATUS\tAVG WELLBEING")
		for _, r := range perf.Learners {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%.1f\t%.1f\n",
				r.Name, r.ScenariosCompleted, r.TotalDecisions,
				r.BestPracticeCount, r.ValidAlternativeCount, r.SuboptimalCount,
				r.AvgClientStatus, r.AvgWellbeing)
		}
		return w.Flush()
	},
}
