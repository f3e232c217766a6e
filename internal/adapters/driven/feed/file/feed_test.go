package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutricoach/nutricoach/internal/core/domain"
)

const sampleJSON = `[
  {
    "id": "food_001",
    "type": "food_item",
    "content": "Chicken breast, skinless, contains 165 calories and 31g protein per 100g.",
    "metadata": {"food_name": "Chicken Breast", "calories": 165, "tags": ["protein", "poultry"]}
  },
  {
    "id": "knowledge_001",
    "type": "nutrition_knowledge",
    "content": "Adults need 0.8-2.2g protein per kg body weight daily.",
    "metadata": {"topic": "Protein Requirements"}
  }
]`

func writeFeedFile(t *testing.T, content string) *Feed {
	t.Helper()

	path := filepath.Join(t.TempDir(), "knowledge.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return New(path)
}

func TestFeed_Documents(t *testing.T) {
	feed := writeFeedFile(t, sampleJSON)

	docs, err := feed.Documents(context.Background())
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, "food_001", docs[0].ID)
	assert.Equal(t, domain.DocTypeFoodItem, docs[0].Type)
	assert.Equal(t, "Chicken Breast", docs[0].Metadata["food_name"])
	assert.Equal(t, float64(165), docs[0].Metadata["calories"])
	assert.Equal(t, "knowledge_001", docs[1].ID)
	assert.Equal(t, domain.DocTypeKnowledge, docs[1].Type)
}

func TestFeed_MissingFile(t *testing.T) {
	feed := New(filepath.Join(t.TempDir(), "nope.json"))

	_, err := feed.Documents(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFeed_MalformedJSON(t *testing.T) {
	feed := writeFeedFile(t, `{"not": "an array"}`)

	_, err := feed.Documents(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestFeed_Describe(t *testing.T) {
	feed := New("/some/dir/knowledge.json")
	assert.Equal(t, "file:knowledge.json", feed.Describe())
}

func TestFeed_WatchNotifiesOnWrite(t *testing.T) {
	feed := writeFeedFile(t, sampleJSON)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- feed.Watch(ctx, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher a moment to register before touching the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(feed.Path(), []byte(sampleJSON), 0600))

	select {
	case <-changed:
	case <-ctx.Done():
		t.Fatal("watch did not report the file change")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestFeed_WatchIgnoresSiblingFiles(t *testing.T) {
	feed := writeFeedFile(t, sampleJSON)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	go func() {
		_ = feed.Watch(ctx, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	time.Sleep(100 * time.Millisecond)
	sibling := filepath.Join(filepath.Dir(feed.Path()), "other.json")
	require.NoError(t, os.WriteFile(sibling, []byte("{}"), 0600))

	select {
	case <-changed:
		t.Fatal("watch reported a change for an unrelated file")
	case <-time.After(2 * debounceDelay):
	}
}
