package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hollisv/caresim/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the scenario library",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadPacks(cmd); err != nil {
			return fmt.Errorf("load scenario packs: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tDIFFICULTY\tNODES")
		for _, sc := range scenario.All() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n",
				sc.ID, sc.Title, sc.Category,
				scenario.DifficultyDisplayName(sc.Difficulty), len(sc.Nodes))
		}
		return w.Flush()
	},
}
