package search

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/snipdeck/snipdeck/pkg/models"
)

// Index is a disposable sqlite search index over the command snapshot.
// It is derived data: rebuilt wholesale from the current configuration,
// never the owner of the command list.
type Index struct {
	db     *sql.DB
	useFTS bool
}

// NewIndex opens (or creates) an index at dbPath. Use ":memory:" for a
// throwaway in-process index.
func NewIndex(dbPath string) (*Index, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	idx := &Index{db: db}
	if err := idx.init(); err != nil {
		return nil, err
	}

	return idx, nil
}

// init creates the database schema
func (idx *Index) init() error {
	// First, check if FTS5 is available
	idx.useFTS = idx.checkFTS5Support()

	schema := `
	CREATE TABLE IF NOT EXISTS commands (
		pos INTEGER PRIMARY KEY,
		label TEXT NOT NULL,
		description TEXT,
		insert_text TEXT NOT NULL,
		group_path TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_commands_label ON commands(label);
	CREATE INDEX IF NOT EXISTS idx_commands_group ON commands(group_path);
	`
	if _, err := idx.db.Exec(schema); err != nil {
		return err
	}

	if idx.useFTS {
		ftsSchema := `
		CREATE VIRTUAL TABLE IF NOT EXISTS commands_fts USING fts5(
			pos UNINDEXED,
			label,
			description,
			insert_text,
			tokenize = 'porter unicode61'
		);
		`
		if _, err := idx.db.Exec(ftsSchema); err != nil {
			// If FTS creation fails, disable FTS and continue
			idx.useFTS = false
		}
	}

	return nil
}

// checkFTS5Support checks if the FTS5 module is available
func (idx *Index) checkFTS5Support() bool {
	_, err := idx.db.Exec("CREATE VIRTUAL TABLE IF NOT EXISTS fts5_test USING fts5(content)")
	if err != nil {
		return false
	}
	_, _ = idx.db.Exec("DROP TABLE IF EXISTS fts5_test")
	return true
}

// Reindex replaces the whole index with the given snapshot. Positions keep
// input order so results come back in a stable order.
func (idx *Index) Reindex(cmds []models.Command) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec("DELETE FROM commands"); err != nil {
		return err
	}
	if idx.useFTS {
		if _, err := tx.Exec("DELETE FROM commands_fts"); err != nil {
			return err
		}
	}

	for i, c := range cmds {
		_, err = tx.Exec(`
			INSERT INTO commands (pos, label, description, insert_text, group_path)
			VALUES (?, ?, ?, ?, ?)
		`, i, c.Label, c.Description, c.Insert, c.Group)
		if err != nil {
			return err
		}

		if idx.useFTS {
			_, err = tx.Exec(`
				INSERT INTO commands_fts (pos, label, description, insert_text)
				VALUES (?, ?, ?, ?)
			`, i, c.Label, c.Description, c.Insert)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// Search finds commands whose label, description or payload match the query,
// best match first. Limit <= 0 means a default of 50.
func (idx *Index) Search(query string, limit int) ([]models.Command, error) {
	if limit <= 0 {
		limit = 50
	}

	if idx.useFTS {
		return idx.searchWithFTS(query, limit)
	}
	return idx.searchWithLike(query, limit)
}

// searchWithFTS performs search using FTS5
func (idx *Index) searchWithFTS(query string, limit int) ([]models.Command, error) {
	// Quote each term so user input never reaches the FTS query parser raw.
	terms := strings.Fields(query)
	for i, term := range terms {
		terms[i] = `"` + strings.ReplaceAll(term, `"`, `""`) + `"`
	}

	rows, err := idx.db.Query(`
		SELECT c.label, c.description, c.insert_text, c.group_path
		FROM commands_fts f
		JOIN commands c ON c.pos = f.pos
		WHERE commands_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, strings.Join(terms, " "), limit)
	if err != nil {
		return nil, fmt.Errorf("fts query: %w", err)
	}
	defer rows.Close()

	return scanCommands(rows)
}

// searchWithLike is the LIKE-based fallback when FTS5 is unavailable
func (idx *Index) searchWithLike(query string, limit int) ([]models.Command, error) {
	pattern := "%" + query + "%"
	rows, err := idx.db.Query(`
		SELECT label, description, insert_text, group_path
		FROM commands
		WHERE label LIKE ? OR description LIKE ? OR insert_text LIKE ?
		ORDER BY pos
		LIMIT ?
	`, pattern, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("like query: %w", err)
	}
	defer rows.Close()

	return scanCommands(rows)
}

func scanCommands(rows *sql.Rows) ([]models.Command, error) {
	var out []models.Command
	for rows.Next() {
		var c models.Command
		var desc, group sql.NullString
		if err := rows.Scan(&c.Label, &desc, &c.Insert, &group); err != nil {
			return nil, err
		}
		c.Description = desc.String
		c.Group = group.String
		out = append(out, c)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (idx *Index) Close() error {
	return idx.db.Close()
}
