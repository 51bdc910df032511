package sqlite

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
	"github.com/lexibase/cefrlex-cli/internal/logger"
)

// ImportResult summarises a dataset import.
type ImportResult struct {
	Inserted   int
	Duplicates int
}

// Import builds the level table from a TSV stream of
// word<TAB>pos<TAB>level rows. Levels are accepted as ordinals ("3") or
// band labels ("B1"). Words are case-folded; on a duplicate (word, POS)
// the first row wins and the collision is logged. Lines starting with
// '#' and blank lines are ignored.
//
// Import is the one-time build step of the dataset: once it completes,
// the store is treated as read-only reference data.
func (s *Store) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportResult{}, fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO word_levels (word, pos_id, level) VALUES (?, ?, ?)")
	if err != nil {
		return ImportResult{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	var result ImportResult
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseEntry(line)
		if err != nil {
			return ImportResult{}, fmt.Errorf("line %d: %w", lineNo, err)
		}

		res, err := stmt.ExecContext(ctx, entry.Word, entry.POS.ID(), entry.Level)
		if err != nil {
			return ImportResult{}, fmt.Errorf("line %d: inserting entry: %w", lineNo, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return ImportResult{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if affected == 0 {
			logger.Warn("Duplicate entry %q/%s at line %d, keeping first", entry.Word, entry.POS, lineNo)
			result.Duplicates++
			continue
		}
		result.Inserted++
	}
	if err := scanner.Err(); err != nil {
		return ImportResult{}, fmt.Errorf("reading dataset: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return ImportResult{}, fmt.Errorf("committing import: %w", err)
	}

	logger.Info("Imported %d entries (%d duplicates ignored)", result.Inserted, result.Duplicates)
	return result, nil
}

// parseEntry parses one word<TAB>pos<TAB>level dataset row.
func parseEntry(line string) (domain.LevelEntry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return domain.LevelEntry{}, fmt.Errorf("%w: expected word<TAB>pos<TAB>level, got %d fields",
			domain.ErrInvalidInput, len(fields))
	}

	word := strings.ToLower(strings.TrimSpace(fields[0]))
	if word == "" {
		return domain.LevelEntry{}, fmt.Errorf("%w: empty word", domain.ErrInvalidInput)
	}

	pos, err := domain.POSTagFromCode(strings.TrimSpace(fields[1]))
	if err != nil {
		return domain.LevelEntry{}, err
	}

	level, err := parseLevel(strings.TrimSpace(fields[2]))
	if err != nil {
		return domain.LevelEntry{}, err
	}

	return domain.LevelEntry{Word: word, POS: pos, Level: level.Int()}, nil
}

// parseLevel accepts either an ordinal or a band label.
func parseLevel(field string) (domain.CEFRLevel, error) {
	if ordinal, err := strconv.Atoi(field); err == nil {
		return domain.LevelFromInt(ordinal)
	}
	return domain.LevelFromString(field)
}
