package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hollisv/caresim/internal/scenario"
	"github.com/hollisv/caresim/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "caresim",
	Short: "Branching-scenario trainer for care workers",
	Long:  "Caresim — a terminal trainer that walks care workers through branching client scenarios and scores the decisions they make.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CARESIM_DB env var)")
	rootCmd.PersistentFlags().String("org", "default", "Organization the session belongs to")
	rootCmd.PersistentFlags().StringSlice("pack", nil, "Scenario pack file(s) to load alongside the built-in library")

	rootCmd.Flags().String("learner", "", "Sign in as this learner, skipping the prompt")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CARESIM_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadPacks registers any --pack files on top of the built-in library.
func loadPacks(cmd *cobra.Command) error {
	packs, _ := cmd.Flags().GetStringSlice("pack")
	if len(packs) == 0 {
		return nil
	}
	return scenario.LoadAndRegister(packs...)
}
