package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	feedfile "github.com/nutricoach/nutricoach/internal/adapters/driven/feed/file"
	"github.com/nutricoach/nutricoach/internal/logger"
)

var ingestWatch bool

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Build the search index from the document feed",
	Long: `Embeds the configured knowledge file (or the built-in seed corpus)
and replaces the index contents. With --watch, the index is rebuilt
whenever the knowledge file changes.`,
	Args: cobra.NoArgs,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVarP(&ingestWatch, "watch", "w", false, "rebuild when the knowledge file changes")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := ensureIngest(); err != nil {
		return err
	}

	count, err := ingestService.Reindex(ctx)
	if err != nil {
		return err
	}
	cmd.Printf("Indexed %d documents from %s\n", count, docFeed.Describe())

	if !ingestWatch {
		return nil
	}
	return watchFeed(ctx, cmd)
}

// watchFeed blocks, rebuilding the index on every knowledge-file
// change. Only a file-backed feed can be watched.
func watchFeed(ctx context.Context, cmd *cobra.Command) error {
	path := appSettings.Feed.Path
	if path == "" {
		return errors.New("--watch needs a knowledge file, set the [feed] path in your config")
	}

	cmd.Println("Watching for changes. Ctrl-C to stop.")
	err := feedfile.New(path).Watch(ctx, func() {
		count, err := ingestService.Reindex(ctx)
		if err != nil {
			logger.Warn("Reindex failed: %v", err)
			return
		}
		cmd.Printf("Reindexed %d documents\n", count)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("watching feed: %w", err)
	}
	return nil
}
