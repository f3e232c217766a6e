package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nutricoach/nutricoach/internal/core/domain"
)

var (
	searchLimit int
	searchType  string
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the knowledge base directly",
	Long: `Runs a similarity search against the indexed documents and prints
the matches without generating an answer.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 5, "maximum number of results")
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "", "restrict to one document type (food_item, nutrition_knowledge, recipe_combination, meal_template)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := ensureCoach(ctx); err != nil {
		return err
	}

	opts := domain.SearchOptions{Limit: searchLimit}
	if searchType != "" {
		docType := domain.DocType(searchType)
		if !docType.IsValid() {
			return fmt.Errorf("unknown document type %q", searchType)
		}
		opts.TypeFilter = docType
	}

	results, err := coach.Search(ctx, args[0], opts)
	if err != nil {
		return requireIndexed(err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchList(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchList(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println(titleStyle.Render("Results:"))
	cmd.Println()
	for i, result := range results {
		cmd.Printf("  [%d] %s %s\n", i+1, sourceName(result.Metadata),
			scoreStyle.Render(fmt.Sprintf("(%.2f)", result.Similarity)))
		cmd.Printf("      %s\n", mutedStyle.Render(snippet(result.Content, 120)))
		cmd.Println()
	}
	return nil
}

// snippet truncates content for list display.
func snippet(content string, limit int) string {
	if len(content) <= limit {
		return content
	}
	return content[:limit] + "..."
}
