// Package cli provides the cobra command tree. Commands wire the core
// services lazily so cheap commands (version, config) never touch the
// AI backends.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nutricoach/nutricoach/internal/adapters/driven/ai"
	configfile "github.com/nutricoach/nutricoach/internal/adapters/driven/config/file"
	"github.com/nutricoach/nutricoach/internal/adapters/driven/embedcache"
	feedfile "github.com/nutricoach/nutricoach/internal/adapters/driven/feed/file"
	"github.com/nutricoach/nutricoach/internal/adapters/driven/feed/seed"
	"github.com/nutricoach/nutricoach/internal/adapters/driven/index/memory"
	"github.com/nutricoach/nutricoach/internal/adapters/driven/index/sqlite"
	"github.com/nutricoach/nutricoach/internal/core/domain"
	"github.com/nutricoach/nutricoach/internal/core/ports/driven"
	"github.com/nutricoach/nutricoach/internal/core/services"
	"github.com/nutricoach/nutricoach/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Wired services, populated on first use.
var (
	settingsStore driven.SettingsStore
	appSettings   domain.AppSettings
	embedder      driven.Embedder
	chatModel     driven.ChatModel
	vectorIndex   driven.VectorIndex
	docFeed       driven.DocumentFeed
	coach         *services.Coach
	ingestService *services.Ingest
)

var rootCmd = &cobra.Command{
	Use:   "nutricoach",
	Short: "AI nutrition coaching over a local knowledge base",
	Long: `nutricoach answers nutrition questions from an embedded knowledge base
of foods, guidelines, recipes and meal templates. Retrieval runs locally;
answer generation uses a configured model backend (Ollama by default).`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.nutricoach)")
}

// ExecuteContext runs the command tree. The context cancels long
// operations (chat sessions, feed watches) on interrupt.
func ExecuteContext(ctx context.Context) error {
	defer closeServices()
	return rootCmd.ExecuteContext(ctx)
}

// ensureSettings loads settings from the config store once.
func ensureSettings() error {
	if settingsStore != nil {
		return nil
	}

	store, err := configfile.NewSettingsStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settings, err := store.Load()
	if err != nil {
		return err
	}

	settingsStore = store
	appSettings = settings
	return nil
}

// ensureEmbedder creates and validates the embedding backend.
func ensureEmbedder() error {
	if embedder != nil {
		return nil
	}
	if err := ensureSettings(); err != nil {
		return err
	}

	e, err := ai.CreateAndValidateEmbedder(appSettings.Embedding)
	if err != nil {
		return err
	}

	cache := appSettings.Cache
	if cache.Enabled {
		e = embedcache.Wrap(e, cache.Size, time.Duration(cache.TTLSeconds)*time.Second)
	}
	embedder = e
	return nil
}

// ensureIndex opens the configured index backend. The embedder must be
// wired first so a persisted index can be checked against the model's
// vector size.
func ensureIndex() error {
	if vectorIndex != nil {
		return nil
	}
	if err := ensureSettings(); err != nil {
		return err
	}

	switch appSettings.Index.Backend {
	case domain.IndexBackendSQLite:
		idx, err := sqlite.New(appSettings.Index.Path)
		if err != nil {
			return fmt.Errorf("opening index: %w", err)
		}
		if embedder != nil {
			if stored := idx.Dimensions(); stored != 0 && stored != embedder.Dimensions() {
				idx.Close()
				return fmt.Errorf("%w: index has %d dimensions, embedding model %s produces %d; run 'nutricoach ingest' to rebuild",
					domain.ErrDimensionMismatch, stored, embedder.ModelName(), embedder.Dimensions())
			}
		}
		vectorIndex = idx
	case domain.IndexBackendMemory:
		vectorIndex = memory.New(0)
	default:
		return fmt.Errorf("unknown index backend %q, check the [index] section of your config", appSettings.Index.Backend)
	}
	return nil
}

// ensureFeed selects the document feed: the configured knowledge file
// with seed fallback, or the seed corpus alone.
func ensureFeed() error {
	if docFeed != nil {
		return nil
	}
	if err := ensureSettings(); err != nil {
		return err
	}

	if path := appSettings.Feed.Path; path != "" {
		docFeed = seed.Fallback(feedfile.New(path))
	} else {
		docFeed = seed.New()
	}
	return nil
}

// ensureIngest wires the ingestion pipeline.
func ensureIngest() error {
	if ingestService != nil {
		return nil
	}
	if err := ensureEmbedder(); err != nil {
		return err
	}
	if err := ensureIndex(); err != nil {
		return err
	}
	if err := ensureFeed(); err != nil {
		return err
	}

	ingestService = services.NewIngest(docFeed, embedder, vectorIndex)
	return nil
}

// ensureCoach wires the full question-answering pipeline. A memory
// index starts empty, so it is filled from the feed before first use.
func ensureCoach(ctx context.Context) error {
	if coach != nil {
		return nil
	}
	if err := ensureEmbedder(); err != nil {
		return err
	}
	if err := ensureIndex(); err != nil {
		return err
	}

	m, err := ai.CreateAndValidateChatModel(appSettings.Model)
	if err != nil {
		return err
	}
	chatModel = m

	coach = services.NewCoach(vectorIndex, embedder, services.NewResponder(chatModel))
	return fillMemoryIndex(ctx)
}

// fillMemoryIndex reindexes when the index has no persisted documents.
func fillMemoryIndex(ctx context.Context) error {
	count, err := vectorIndex.Count(ctx)
	if err != nil || count > 0 {
		return err
	}
	if err := ensureFeed(); err != nil {
		return err
	}
	if err := ensureIngest(); err != nil {
		return err
	}
	_, err = ingestService.Reindex(ctx)
	return err
}

func closeServices() {
	if embedder != nil {
		_ = embedder.Close()
	}
	if chatModel != nil {
		_ = chatModel.Close()
	}
	if vectorIndex != nil {
		_ = vectorIndex.Close()
	}
}

// requireIndexed maps an empty-index error to actionable advice.
func requireIndexed(err error) error {
	if errors.Is(err, domain.ErrIndexEmpty) {
		return errors.New("the knowledge base is empty, run 'nutricoach ingest' first")
	}
	return err
}
