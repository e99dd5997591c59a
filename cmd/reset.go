package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all attempt and decision data",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("This deletes %s and every attempt, decision, and learner in it.\n", dbPath)
			fmt.Print("Run again with --force to confirm.\n")
			return nil
		}

		if err := os.Remove(dbPath); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Println("Nothing to reset.")
				return nil
			}
			return fmt.Errorf("remove database: %w", err)
		}
		fmt.Println("Removed", dbPath)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete the database")
}
