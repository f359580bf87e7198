package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/webdev100/internal/curriculum"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the days of the curriculum",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg.Content.Dir)
		if err != nil {
			return fmt.Errorf("load curriculum: %w", err)
		}

		lessons := cat.All()
		if category != "" {
			c, err := curriculum.ParseCategory(category)
			if err != nil {
				return err
			}
			lessons = cat.ByCategory(c)
		}

		out := cmd.OutOrStdout()
		if len(lessons) == 0 {
			fmt.Fprintln(out, "No lessons found.")
			return nil
		}

		fmt.Fprintf(out, "%-4s  %-18s  %-9s  %s\n", "Day", "Category", "Exercises", "Title")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, l := range lessons {
			cw, hw := curriculum.Partition(l.Exercises)
			fmt.Fprintf(out, "%-4d  %-18s  %-9s  %s\n",
				l.Day,
				l.Category.DisplayName(),
				fmt.Sprintf("%d + %d", len(cw), len(hw)),
				l.Title,
			)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().String("category", "", "Only list one category (html, css, javascript, dom, tooling, project)")
}
