package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/aimarketcap/internal/catalog"
	"github.com/abhisek/aimarketcap/internal/profile"
	"github.com/abhisek/aimarketcap/internal/recommend"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List recommended tools (optionally filtered by search text or category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		category, _ := cmd.Flags().GetString("category")

		view := recommend.NewView(profile.UserProfile{}, catalog.Tools())
		if strings.EqualFold(category, recommend.AllCategories) {
			category = recommend.AllCategories
		} else {
			known := view.DistinctCategories()
			c := canonical(known, category)
			if c == "" {
				return fmt.Errorf("unknown category %q (choose from: %s)", category, strings.Join(known, ", "))
			}
			category = c
		}
		view.SetSearchText(search)
		view.SetCategoryFilter(category)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-16s  %-18s  %5s  %-14s  %s\n",
			"Name", "Category", "Match", "Pricing", "Why")
		fmt.Fprintln(out, strings.Repeat("─", 96))

		visible := view.VisibleTools()
		for _, t := range visible {
			fmt.Fprintf(out, "%-16s  %-18s  %4d%%  %-14s  %s\n",
				t.Name, t.Category, t.MatchScore, t.Pricing, t.MatchReason)
		}

		sum := view.Summary()
		fmt.Fprintf(out, "\n%d of %d tools shown · avg match %d%% · %d categories\n",
			len(visible), sum.MatchedCount, sum.AverageMatch, sum.CategoryCount)
		return nil
	},
}

func init() {
	toolsCmd.Flags().String("search", "", "Case-insensitive text matched against name and description")
	toolsCmd.Flags().String("category", recommend.AllCategories, "Exact category to show, or \"all\"")
}

// canonical returns the entry of list equal to s ignoring case, or "".
func canonical(list []string, s string) string {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return v
		}
	}
	return ""
}
