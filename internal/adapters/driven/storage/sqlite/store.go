package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/contentgen-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driven"
)

// jsonNull is the JSON representation of null.
const jsonNull = "null"

// Store is a unified SQLite-based storage that provides access to all
// metadata store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.contentgen/data/metadata.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".contentgen", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "metadata.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ProfileStore returns a ProfileStore interface backed by this store.
func (s *Store) ProfileStore() driven.ProfileStore {
	return &profileStore{store: s}
}

// DocumentStore returns a DocumentStore interface backed by this store.
func (s *Store) DocumentStore() driven.DocumentStore {
	return &documentStore{store: s}
}

// HistoryStore returns a HistoryStore interface backed by this store.
func (s *Store) HistoryStore() driven.HistoryStore {
	return &historyStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Profile Store ====================

// profileStore implements driven.ProfileStore.
type profileStore struct {
	store *Store
}

var _ driven.ProfileStore = (*profileStore)(nil)

// Save stores or replaces the singleton profile.
func (s *profileStore) Save(ctx context.Context, profile *domain.CompanyProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshalling profile: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO profile (id, data, uploaded_at, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			data = excluded.data,
			uploaded_at = excluded.uploaded_at,
			updated_at = excluded.updated_at
	`, string(data), profile.UploadedAt.UTC(), profile.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// Get returns the current profile.
func (s *profileStore) Get(ctx context.Context) (*domain.CompanyProfile, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT data FROM profile WHERE id = 1")

	var data string
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoProfile
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	var profile domain.CompanyProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, fmt.Errorf("unmarshaling profile: %w", err)
	}
	return &profile, nil
}

// Delete removes the profile.
func (s *profileStore) Delete(ctx context.Context) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM profile WHERE id = 1")
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	if affected == 0 {
		return domain.ErrNoProfile
	}
	return nil
}

// ==================== Document Store ====================

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// Add appends document records.
func (s *documentStore) Add(ctx context.Context, docs []domain.ExtractedDocument) error {
	if len(docs) == 0 {
		return nil
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, doc := range docs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO documents (source, type, title, content, word_count, extracted_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, doc.Source, doc.Type, doc.Title, doc.Content, doc.WordCount, doc.Timestamp.UTC())
		if err != nil {
			return fmt.Errorf("inserting document %s: %w", doc.Source, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing documents: %w", err)
	}
	return nil
}

// List returns all document records in insertion order.
func (s *documentStore) List(ctx context.Context) ([]domain.ExtractedDocument, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT source, type, title, content, word_count, extracted_at
		FROM documents ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.ExtractedDocument
	for rows.Next() {
		var doc domain.ExtractedDocument
		var extractedAt sql.NullTime
		if err := rows.Scan(&doc.Source, &doc.Type, &doc.Title, &doc.Content,
			&doc.WordCount, &extractedAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		if extractedAt.Valid {
			doc.Timestamp = extractedAt.Time
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Delete removes the earliest record whose source matches.
func (s *documentStore) Delete(ctx context.Context, source string) error {
	result, err := s.store.db.ExecContext(ctx, `
		DELETE FROM documents
		WHERE seq = (SELECT MIN(seq) FROM documents WHERE source = ?)
	`, source)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count returns the number of document records.
func (s *documentStore) Count(ctx context.Context) (int, error) {
	var count int
	row := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return count, nil
}

// ==================== History Store ====================

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Append stores a history entry.
func (s *historyStore) Append(ctx context.Context, entry domain.HistoryEntry) error {
	detail := jsonNull
	if entry.Detail != nil {
		data, err := json.Marshal(entry.Detail)
		if err != nil {
			return fmt.Errorf("marshalling detail: %w", err)
		}
		detail = string(data)
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO history (id, type, timestamp, detail)
		VALUES (?, ?, ?, ?)
	`, entry.ID, entry.Type, entry.Timestamp.UTC(), detail)
	if err != nil {
		return fmt.Errorf("appending history entry: %w", err)
	}
	return nil
}

// List returns entries newest first, optionally filtered by type.
func (s *historyStore) List(ctx context.Context, entryType string, limit, offset int) ([]domain.HistoryEntry, error) {
	query := "SELECT id, type, timestamp, detail FROM history"
	args := []any{}
	if entryType != "" {
		query += " WHERE type = ?"
		args = append(args, entryType)
	}
	query += " ORDER BY seq DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	} else {
		query += " LIMIT -1"
	}
	if offset > 0 {
		query += " OFFSET ?"
		args = append(args, offset)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var entry domain.HistoryEntry
		var ts sql.NullTime
		var detail string
		if err := rows.Scan(&entry.ID, &entry.Type, &ts, &detail); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		if ts.Valid {
			entry.Timestamp = ts.Time
		}
		if detail != jsonNull {
			if err := json.Unmarshal([]byte(detail), &entry.Detail); err != nil {
				return nil, fmt.Errorf("unmarshaling detail: %w", err)
			}
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
