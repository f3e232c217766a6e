package cli

import (
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := ensureIndex(); err != nil {
		return err
	}

	total, err := vectorIndex.Count(ctx)
	if err != nil {
		return err
	}
	byType, err := vectorIndex.CountByType(ctx)
	if err != nil {
		return err
	}

	cmd.Printf("Documents: %d\n", total)
	if dims := vectorIndex.Dimensions(); dims > 0 {
		cmd.Printf("Dimensions: %d\n", dims)
	}

	types := make([]string, 0, len(byType))
	for docType := range byType {
		types = append(types, docType)
	}
	sort.Strings(types)
	for _, docType := range types {
		cmd.Printf("  %s: %d\n", docType, byType[docType])
	}
	return nil
}
