package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lexibase/cefrlex-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/lexibase/cefrlex-cli/internal/core/domain"
	"github.com/lexibase/cefrlex-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.LevelStore = (*Store)(nil)

// Store is a SQLite-backed level store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the level database under dataDir.
// If dataDir is empty, defaults to ~/.cefrlex/data/levels.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".cefrlex", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "levels.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
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

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
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
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
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

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Point lookups ====================

// Exists reports whether at least one entry has this word, any POS.
func (s *Store) Exists(ctx context.Context, word string) (bool, error) {
	query, args, err := squirrel.Select("1").
		From("word_levels").
		Where(squirrel.Eq{"word": word}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("building query: %w", err)
	}

	var one int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying word existence: %w", err)
	}
	return true, nil
}

// ExistsPOS reports whether an exact (word, pos) entry exists.
func (s *Store) ExistsPOS(ctx context.Context, word string, pos domain.POSTag) (bool, error) {
	_, ok, err := s.Get(ctx, word, pos)
	return ok, err
}

// Get returns the level of the exact (word, pos) entry.
func (s *Store) Get(ctx context.Context, word string, pos domain.POSTag) (int, bool, error) {
	query, args, err := squirrel.Select("level").
		From("word_levels").
		Where(squirrel.Eq{"word": word, "pos_id": pos.ID()}).
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("building query: %w", err)
	}

	var level int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&level)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("querying level: %w", err)
	}
	return level, true, nil
}

// AllPOS returns every POS the word is recorded under, in id order.
func (s *Store) AllPOS(ctx context.Context, word string) ([]domain.POSTag, error) {
	levels, err := s.POSLevels(ctx, word)
	if err != nil {
		return nil, err
	}

	tags := make([]domain.POSTag, 0, len(levels))
	for pos := range levels {
		tags = append(tags, pos)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags, nil
}

// POSLevels returns the word's exact entries as a POS -> level map.
func (s *Store) POSLevels(ctx context.Context, word string) (map[domain.POSTag]int, error) {
	query, args, err := squirrel.Select("pos_id", "level").
		From("word_levels").
		Where(squirrel.Eq{"word": word}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying POS levels: %w", err)
	}
	defer rows.Close()

	result := make(map[domain.POSTag]int)
	for rows.Next() {
		var posID, level int
		if err := rows.Scan(&posID, &level); err != nil {
			return nil, fmt.Errorf("scanning POS level: %w", err)
		}
		pos, err := domain.POSTagFromID(posID)
		if err != nil {
			return nil, fmt.Errorf("stored pos_id %d: %w", posID, err)
		}
		result[pos] = level
	}
	return result, rows.Err()
}

// ==================== Iteration ====================

// direction maps a sort order onto SQL.
func direction(order domain.SortOrder) string {
	if order == domain.OrderDescending {
		return "DESC"
	}
	return "ASC"
}

// pairOrderBy builds the ORDER BY keys of a word-POS iteration: length
// first when a length priority is set, then word, then POS id.
func pairOrderBy(order domain.SortOrder, lengthPriority domain.LengthPriority) []string {
	var keys []string
	switch lengthPriority {
	case domain.LengthPriorityAscending:
		keys = append(keys, "length(word) ASC")
	case domain.LengthPriorityDescending:
		keys = append(keys, "length(word) DESC")
	}
	return append(keys, "word "+direction(order), "pos_id ASC")
}

// Words iterates distinct words lexicographically. Each returned
// sequence runs its own query, so sequences are independent and
// restartable.
func (s *Store) Words(ctx context.Context, length int, order domain.SortOrder) iter.Seq2[string, error] {
	builder := squirrel.Select("DISTINCT word").
		From("word_levels").
		OrderBy("word " + direction(order))
	if length > 0 {
		builder = builder.Where(squirrel.Expr("length(word) = ?", length))
	}

	return func(yield func(string, error) bool) {
		query, args, err := builder.ToSql()
		if err != nil {
			yield("", fmt.Errorf("building query: %w", err))
			return
		}

		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			yield("", fmt.Errorf("querying words: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var word string
			if err := rows.Scan(&word); err != nil {
				yield("", fmt.Errorf("scanning word: %w", err))
				return
			}
			if !yield(word, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield("", fmt.Errorf("iterating words: %w", err))
		}
	}
}

// WordPOS iterates (word, POS) pairs under the dual-key ordering
// contract.
func (s *Store) WordPOS(ctx context.Context, order domain.SortOrder, lengthPriority domain.LengthPriority) iter.Seq2[domain.WordPOS, error] {
	builder := squirrel.Select("word", "pos_id").
		From("word_levels").
		OrderBy(pairOrderBy(order, lengthPriority)...)

	return func(yield func(domain.WordPOS, error) bool) {
		query, args, err := builder.ToSql()
		if err != nil {
			yield(domain.WordPOS{}, fmt.Errorf("building query: %w", err))
			return
		}

		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			yield(domain.WordPOS{}, fmt.Errorf("querying word-POS pairs: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var word string
			var posID int
			if err := rows.Scan(&word, &posID); err != nil {
				yield(domain.WordPOS{}, fmt.Errorf("scanning word-POS pair: %w", err))
				return
			}
			pos, err := domain.POSTagFromID(posID)
			if err != nil {
				yield(domain.WordPOS{}, fmt.Errorf("stored pos_id %d: %w", posID, err))
				return
			}
			if !yield(domain.WordPOS{Word: word, POS: pos}, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.WordPOS{}, fmt.Errorf("iterating word-POS pairs: %w", err))
		}
	}
}

// WordPOSLevel iterates like WordPOS with the level of each pair.
func (s *Store) WordPOSLevel(ctx context.Context, order domain.SortOrder, lengthPriority domain.LengthPriority) iter.Seq2[domain.WordPOSLevel, error] {
	builder := squirrel.Select("word", "pos_id", "level").
		From("word_levels").
		OrderBy(pairOrderBy(order, lengthPriority)...)

	return func(yield func(domain.WordPOSLevel, error) bool) {
		query, args, err := builder.ToSql()
		if err != nil {
			yield(domain.WordPOSLevel{}, fmt.Errorf("building query: %w", err))
			return
		}

		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			yield(domain.WordPOSLevel{}, fmt.Errorf("querying word-POS levels: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var word string
			var posID, level int
			if err := rows.Scan(&word, &posID, &level); err != nil {
				yield(domain.WordPOSLevel{}, fmt.Errorf("scanning word-POS level: %w", err))
				return
			}
			pos, err := domain.POSTagFromID(posID)
			if err != nil {
				yield(domain.WordPOSLevel{}, fmt.Errorf("stored pos_id %d: %w", posID, err))
				return
			}
			if !yield(domain.WordPOSLevel{Word: word, POS: pos, Level: level}, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.WordPOSLevel{}, fmt.Errorf("iterating word-POS levels: %w", err))
		}
	}
}

// ==================== Statistics ====================

// WordCountForLength counts distinct words of the given length.
func (s *Store) WordCountForLength(ctx context.Context, length int) (int, error) {
	query, args, err := squirrel.Select("COUNT(DISTINCT word)").
		From("word_levels").
		Where(squirrel.Expr("length(word) = ?", length)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building query: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting words: %w", err)
	}
	return count, nil
}

// EntryCountForLength counts (word, POS) entries whose word has the
// given length.
func (s *Store) EntryCountForLength(ctx context.Context, length int) (int, error) {
	query, args, err := squirrel.Select("COUNT(*)").
		From("word_levels").
		Where(squirrel.Expr("length(word) = ?", length)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building query: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return count, nil
}

// Stats summarises the dataset.
func (s *Store) Stats(ctx context.Context) (domain.StoreStats, error) {
	var stats domain.StoreStats
	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT word),
		       COUNT(*),
		       COALESCE(MAX(length(word)), 0)
		FROM word_levels
	`)
	if err := row.Scan(&stats.TotalWords, &stats.TotalEntries, &stats.MaxWordLength); err != nil {
		return domain.StoreStats{}, fmt.Errorf("querying stats: %w", err)
	}
	return stats, nil
}
