// Package file provides a TOML-backed settings store. Settings live in
// a single file within the nutricoach config directory and are written
// with restricted permissions because they may carry API keys.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/nutricoach/nutricoach/internal/core/domain"
	"github.com/nutricoach/nutricoach/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is a file-based implementation of driven.SettingsStore
// using TOML.
type SettingsStore struct {
	mu       sync.Mutex
	filePath string
}

// NewSettingsStore creates a TOML settings store.
// If configDir is empty, defaults to ~/.nutricoach/config.toml.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".nutricoach")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SettingsStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// fileSettings is the on-disk TOML shape. Domain types stay free of
// serialisation tags; conversion happens here.
type fileSettings struct {
	Embedding fileEmbedding `toml:"embedding"`
	Model     fileModel     `toml:"model"`
	Index     fileIndex     `toml:"index"`
	Feed      fileFeed      `toml:"feed"`
	Cache     fileCache     `toml:"cache"`
	Chat      fileChat      `toml:"chat"`
}

type fileEmbedding struct {
	Provider   string `toml:"provider"`
	Model      string `toml:"model"`
	BaseURL    string `toml:"base_url,omitempty"`
	APIKey     string `toml:"api_key,omitempty"`
	Dimensions int    `toml:"dimensions,omitempty"`
}

type fileModel struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	BaseURL  string `toml:"base_url,omitempty"`
	APIKey   string `toml:"api_key,omitempty"`
}

type fileIndex struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path,omitempty"`
}

type fileFeed struct {
	Path string `toml:"path,omitempty"`
}

type fileCache struct {
	Enabled    bool `toml:"enabled"`
	Size       int  `toml:"size"`
	TTLSeconds int  `toml:"ttl_seconds"`
}

type fileChat struct {
	Style string `toml:"style"`
}

// Load reads settings from the TOML file. A missing file yields the
// defaults so a fresh install works without a config step.
func (s *SettingsStore) Load() (domain.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultAppSettings(), nil
	}
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("reading %s: %w", s.filePath, err)
	}

	var raw fileSettings
	if err := toml.Unmarshal(data, &raw); err != nil {
		return domain.AppSettings{}, fmt.Errorf("parsing %s: %w", s.filePath, err)
	}
	return fromFile(raw), nil
}

// Save persists settings to the TOML file.
func (s *SettingsStore) Save(settings domain.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(toFile(settings))
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}

func fromFile(raw fileSettings) domain.AppSettings {
	defaults := domain.DefaultAppSettings()

	settings := domain.AppSettings{
		Embedding: domain.EmbeddingSettings{
			Provider:   domain.AIProvider(raw.Embedding.Provider),
			Model:      raw.Embedding.Model,
			BaseURL:    raw.Embedding.BaseURL,
			APIKey:     raw.Embedding.APIKey,
			Dimensions: raw.Embedding.Dimensions,
		},
		Model: domain.ModelSettings{
			Provider: domain.AIProvider(raw.Model.Provider),
			Model:    raw.Model.Model,
			BaseURL:  raw.Model.BaseURL,
			APIKey:   raw.Model.APIKey,
		},
		Index: domain.IndexSettings{
			Backend: domain.IndexBackend(raw.Index.Backend),
			Path:    raw.Index.Path,
		},
		Feed: domain.FeedSettings{
			Path: raw.Feed.Path,
		},
		Cache: domain.CacheSettings{
			Enabled:    raw.Cache.Enabled,
			Size:       raw.Cache.Size,
			TTLSeconds: raw.Cache.TTLSeconds,
		},
		Chat: domain.ChatSettings{
			Style: domain.ResponseStyle(raw.Chat.Style),
		},
	}

	// Fill gaps with defaults so a partial file stays usable.
	if settings.Embedding.Provider == "" {
		settings.Embedding = defaults.Embedding
	} else if settings.Embedding.Model == "" {
		settings.Embedding.Model = domain.DefaultEmbeddingModels()[settings.Embedding.Provider]
	}
	if settings.Model.Provider == "" {
		settings.Model = defaults.Model
	} else if settings.Model.Model == "" {
		settings.Model.Model = domain.DefaultChatModels()[settings.Model.Provider]
	}
	if settings.Index.Backend == "" {
		settings.Index.Backend = defaults.Index.Backend
	}
	if settings.Cache.Size == 0 {
		settings.Cache.Size = defaults.Cache.Size
	}
	if settings.Cache.TTLSeconds == 0 {
		settings.Cache.TTLSeconds = defaults.Cache.TTLSeconds
	}
	if settings.Chat.Style == "" {
		settings.Chat.Style = defaults.Chat.Style
	}
	return settings
}

func toFile(settings domain.AppSettings) fileSettings {
	return fileSettings{
		Embedding: fileEmbedding{
			Provider:   settings.Embedding.Provider.String(),
			Model:      settings.Embedding.Model,
			BaseURL:    settings.Embedding.BaseURL,
			APIKey:     settings.Embedding.APIKey,
			Dimensions: settings.Embedding.Dimensions,
		},
		Model: fileModel{
			Provider: settings.Model.Provider.String(),
			Model:    settings.Model.Model,
			BaseURL:  settings.Model.BaseURL,
			APIKey:   settings.Model.APIKey,
		},
		Index: fileIndex{
			Backend: settings.Index.Backend.String(),
			Path:    settings.Index.Path,
		},
		Feed: fileFeed{
			Path: settings.Feed.Path,
		},
		Cache: fileCache{
			Enabled:    settings.Cache.Enabled,
			Size:       settings.Cache.Size,
			TTLSeconds: settings.Cache.TTLSeconds,
		},
		Chat: fileChat{
			Style: settings.Chat.Style.String(),
		},
	}
}
