// Package file provides a document feed backed by a JSON file on disk.
// The file holds an array of documents in the shape produced by the
// knowledge pipeline: id, type, content and a free-form metadata object.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nutricoach/nutricoach/internal/core/domain"
	"github.com/nutricoach/nutricoach/internal/core/ports/driven"
	"github.com/nutricoach/nutricoach/internal/logger"
)

// Ensure Feed implements the interface.
var _ driven.DocumentFeed = (*Feed)(nil)

// debounceDelay coalesces the burst of filesystem events an editor
// emits when saving a file into a single change notification.
const debounceDelay = 500 * time.Millisecond

// Feed reads documents from a JSON knowledge file.
type Feed struct {
	path string
}

// New creates a feed for the given JSON file path.
func New(path string) *Feed {
	return &Feed{path: path}
}

// Path returns the knowledge file path.
func (f *Feed) Path() string {
	return f.path
}

// feedDocument is the on-disk document shape.
type feedDocument struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

// Documents reads and decodes the full document set, in file order.
func (f *Feed) Documents(_ context.Context) ([]domain.Document, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}

	var raw []feedDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.path, err)
	}

	docs := make([]domain.Document, len(raw))
	for i, doc := range raw {
		docs[i] = domain.Document{
			ID:       doc.ID,
			Type:     domain.DocType(doc.Type),
			Content:  doc.Content,
			Metadata: doc.Metadata,
		}
	}
	return docs, nil
}

// Describe names the feed for logs.
func (f *Feed) Describe() string {
	return "file:" + filepath.Base(f.path)
}

// Watch blocks until ctx is cancelled, invoking onChange after the
// knowledge file is modified. It watches the parent directory because
// most editors save by writing a temp file and renaming it over the
// original, which would silently drop a watch on the file itself.
func (f *Feed) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(f.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Debug("Watching %s for changes", f.path)

	target := filepath.Clean(f.path)
	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(debounceDelay)

		case <-debounce.C:
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}
