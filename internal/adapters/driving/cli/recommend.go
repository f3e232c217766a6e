package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var (
	recommendPrefer   []string
	recommendRestrict []string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [goal]",
	Short: "Recommend foods for a nutrition goal",
	Long: `Suggests foods for a goal such as "muscle building" or "weight loss",
grouped by food category.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringSliceVar(&recommendPrefer, "preferences", nil, "food preferences")
	recommendCmd.Flags().StringSliceVar(&recommendRestrict, "restrictions", nil, "dietary restrictions")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := ensureCoach(ctx); err != nil {
		return err
	}

	recs, err := coach.Recommend(ctx, args[0], recommendPrefer, recommendRestrict)
	if err != nil {
		return requireIndexed(err)
	}

	if recs.TotalFoods == 0 {
		cmd.Println("No matching foods found.")
		return nil
	}

	cmd.Println(titleStyle.Render(fmt.Sprintf("Foods for %s:", recs.Goal)))
	cmd.Println()

	categories := make([]string, 0, len(recs.ByCategory))
	for category := range recs.ByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		cmd.Println(promptStyle.Render(category))
		for _, food := range recs.ByCategory[category] {
			line := "  " + food.Name
			if food.Calories != "" {
				line += mutedStyle.Render(fmt.Sprintf("  %s kcal", food.Calories))
			}
			if food.Protein != "" {
				line += mutedStyle.Render(fmt.Sprintf("  %sg protein", food.Protein))
			}
			cmd.Println(line)
			if food.Benefits != "" {
				cmd.Println(mutedStyle.Render("    " + food.Benefits))
			}
		}
		cmd.Println()
	}
	return nil
}
