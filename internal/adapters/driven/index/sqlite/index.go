// Package sqlite provides a persisted vector index backed by SQLite.
// Vectors are stored as little-endian float32 blobs and scored in
// process, so the index needs no extension and survives restarts.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nutricoach/nutricoach/internal/adapters/driven/index/sqlite/migrations"
	"github.com/nutricoach/nutricoach/internal/core/domain"
	"github.com/nutricoach/nutricoach/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index is a SQLite-backed vector index.
type Index struct {
	db   *sql.DB
	path string
}

// New opens (or creates) the index database at the given path. If path
// is empty, it defaults to ~/.nutricoach/data/index.db.
func New(path string) (*Index, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".nutricoach", "data", "index.db")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	idx := &Index{db: db, path: path}
	if err := idx.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return idx, nil
}

// Path returns the database file path.
func (idx *Index) Path() string {
	return idx.path
}

// Upsert inserts or replaces documents by id. Every vector must match
// the dimension already stored in the index.
func (idx *Index) Upsert(ctx context.Context, docs []domain.EmbeddedDocument) error {
	if len(docs) == 0 {
		return nil
	}

	stored, err := idx.storedDimensions(ctx)
	if err != nil {
		return err
	}

	tx, err := idx.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (id, doc_type, content, metadata, vector, dimensions, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			doc_type = excluded.doc_type,
			content = excluded.content,
			metadata = excluded.metadata,
			vector = excluded.vector,
			dimensions = excluded.dimensions,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	for _, doc := range docs {
		if stored == 0 {
			stored = len(doc.Vector)
		}
		if len(doc.Vector) != stored {
			return fmt.Errorf("%w: document %s has %d dimensions, index has %d",
				domain.ErrDimensionMismatch, doc.ID, len(doc.Vector), stored)
		}

		metadataJSON, err := json.Marshal(domain.FlattenMetadata(&doc.Document))
		if err != nil {
			return fmt.Errorf("marshalling metadata for %s: %w", doc.ID, err)
		}

		if _, err := stmt.ExecContext(ctx,
			doc.ID, doc.Type.String(), doc.Content, string(metadataJSON),
			float32SliceToBytes(doc.Vector), len(doc.Vector),
		); err != nil {
			return fmt.Errorf("upserting document %s: %w", doc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing upsert: %w", err)
	}
	return nil
}

// Query returns the k most similar documents, sorted by descending
// cosine similarity. A doc_type filter is pushed into SQL; any other
// filter keys are applied against the flattened metadata in process.
func (idx *Index) Query(ctx context.Context, vector []float32, k int, filter map[string]string) ([]domain.SearchResult, error) {
	if k <= 0 {
		return []domain.SearchResult{}, nil
	}

	stored, err := idx.storedDimensions(ctx)
	if err != nil {
		return nil, err
	}
	if stored != 0 && len(vector) != stored {
		return nil, fmt.Errorf("%w: query has %d dimensions, index has %d",
			domain.ErrDimensionMismatch, len(vector), stored)
	}

	query := "SELECT id, content, metadata, vector FROM documents"
	var args []any
	if docType, ok := filter[domain.MetaDocType]; ok {
		query += " WHERE doc_type = ?"
		args = append(args, docType)
	}

	rows, err := idx.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var results []domain.SearchResult
	for rows.Next() {
		var (
			id, content, metadataJSON string
			blob                      []byte
		)
		if err := rows.Scan(&id, &content, &metadataJSON, &blob); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}

		metadata := make(map[string]string)
		if err := json.Unmarshal([]byte(metadataJSON), &metadata); err != nil {
			return nil, fmt.Errorf("unmarshalling metadata for %s: %w", id, err)
		}
		if !matchesFilter(metadata, filter) {
			continue
		}

		results = append(results, domain.SearchResult{
			ID:         id,
			Content:    content,
			Metadata:   metadata,
			Similarity: cosineSimilarity(vector, bytesToFloat32Slice(blob)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// Count returns the number of indexed documents.
func (idx *Index) Count(ctx context.Context) (int, error) {
	var count int
	row := idx.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return count, nil
}

// CountByType returns document counts grouped by doc_type.
func (idx *Index) CountByType(ctx context.Context) (map[string]int, error) {
	rows, err := idx.db.QueryContext(ctx, "SELECT doc_type, COUNT(*) FROM documents GROUP BY doc_type")
	if err != nil {
		return nil, fmt.Errorf("counting by type: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			docType string
			count   int
		)
		if err := rows.Scan(&docType, &count); err != nil {
			return nil, fmt.Errorf("scanning type count: %w", err)
		}
		counts[docType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating type counts: %w", err)
	}
	return counts, nil
}

// Clear removes every document.
func (idx *Index) Clear(ctx context.Context) error {
	if _, err := idx.db.ExecContext(ctx, "DELETE FROM documents"); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}
	return nil
}

// Dimensions returns the stored vector size, or zero when empty.
func (idx *Index) Dimensions() int {
	dims, err := idx.storedDimensions(context.Background())
	if err != nil {
		return 0
	}
	return dims
}

// Close closes the database connection.
func (idx *Index) Close() error {
	return idx.db.Close()
}

func (idx *Index) storedDimensions(ctx context.Context) (int, error) {
	var dims int
	row := idx.db.QueryRowContext(ctx, "SELECT dimensions FROM documents LIMIT 1")
	if err := row.Scan(&dims); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading stored dimensions: %w", err)
	}
	return dims, nil
}

// migrate runs all pending migrations.
func (idx *Index) migrate(fsys fs.FS) error {
	// Ensure schema_migrations table exists
	_, err := idx.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := idx.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := idx.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func matchesFilter(metadata, filter map[string]string) bool {
	for key, want := range filter {
		if key == domain.MetaDocType {
			continue // Already applied in SQL.
		}
		if metadata[key] != want {
			return false
		}
	}
	return true
}

// float32SliceToBytes converts a []float32 to a byte slice for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}

// cosineSimilarity computes the cosine of the angle between two
// vectors. A zero vector scores 0 against everything.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
