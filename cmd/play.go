package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a training session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	playCmd.Flags().String("learner", "", "Sign in as this learner, skipping the prompt")
}
