package lawref

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	pkgstrings "codecheck/pkg/platform/strings"
)

// PostgresStore backs law references with PostgreSQL.
//
// Schema:
//
//	CREATE TABLE law_refs (
//	    code    TEXT PRIMARY KEY,
//	    title   TEXT NOT NULL,
//	    article TEXT NOT NULL DEFAULT '',
//	    summary TEXT NOT NULL DEFAULT '',
//	    url     TEXT NOT NULL DEFAULT ''
//	);
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed law reference store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByCodes(ctx context.Context, codes []string) (map[string]LawDoc, []string, error) {
	wanted := pkgstrings.DedupeAndTrim(codes)
	found := make(map[string]LawDoc, len(wanted))
	if len(wanted) == 0 {
		return found, nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT code, title, article, summary, url FROM law_refs WHERE code = ANY($1)`,
		pq.Array(wanted),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("query law refs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var doc LawDoc
		if err := rows.Scan(&doc.Code, &doc.Title, &doc.Article, &doc.Summary, &doc.URL); err != nil {
			return nil, nil, fmt.Errorf("scan law ref: %w", err)
		}
		found[doc.Code] = doc
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate law refs: %w", err)
	}

	var missing []string
	for _, code := range wanted {
		if _, ok := found[code]; !ok {
			missing = append(missing, code)
		}
	}
	return found, missing, nil
}

// Save upserts one document. Used by seed tooling and integration tests.
func (s *PostgresStore) Save(ctx context.Context, doc LawDoc) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO law_refs (code, title, article, summary, url)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (code) DO UPDATE SET
		   title = EXCLUDED.title,
		   article = EXCLUDED.article,
		   summary = EXCLUDED.summary,
		   url = EXCLUDED.url`,
		doc.Code, doc.Title, doc.Article, doc.Summary, doc.URL,
	)
	if err != nil {
		return fmt.Errorf("save law ref %s: %w", doc.Code, err)
	}
	return nil
}
