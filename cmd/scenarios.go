package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/prompted365/scamdetect/internal/scenario"
	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the built-in training scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		var repo *scenario.Repository
		var err error
		if file != "" {
			raw, rerr := os.ReadFile(file)
			if rerr != nil {
				return fmt.Errorf("read %s: %w", file, rerr)
			}
			repo, err = scenario.Load(raw)
			if err != nil {
				return fmt.Errorf("validate %s: %w", file, err)
			}
			fmt.Printf("%s: %d scenarios, all valid\n\n", file, repo.Len())
		} else {
			repo, err = scenario.Default()
			if err != nil {
				return fmt.Errorf("load scenarios: %w", err)
			}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDIFFICULTY\tCATEGORY\tKIND\tTITLE")
		for _, sc := range repo.All() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				sc.ID, sc.Difficulty, sc.Category, sc.Kind, sc.Title)
		}
		return w.Flush()
	},
}

func init() {
	scenariosCmd.Flags().String("file", "", "Validate and list an external scenario JSON file instead of the built-in set")
}
