package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/prasetyo-dev/boolsearch/internal/analyzer"
	"github.com/prasetyo-dev/boolsearch/pkg/postgres"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
    id         TEXT PRIMARY KEY,
    contents   TEXT NOT NULL,
    normalized TEXT NOT NULL,
    terms      TEXT[] NOT NULL DEFAULT '{}'
)`

// PostgresEngine stores documents and their precomputed term vectors in
// PostgreSQL. Term extraction happens with the shared Analyzer at store
// time; reads are plain lookups.
type PostgresEngine struct {
	client   *postgres.Client
	analyzer *analyzer.Analyzer
}

// NewPostgresEngine wraps a connected postgres client and ensures the
// documents table exists.
func NewPostgresEngine(ctx context.Context, client *postgres.Client, a *analyzer.Analyzer) (*PostgresEngine, error) {
	if _, err := client.DB.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("creating documents table: %w", err)
	}
	return &PostgresEngine{client: client, analyzer: a}, nil
}

func (p *PostgresEngine) Store(ctx context.Context, docs []Document) error {
	return p.client.InTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO documents (id, contents, normalized, terms)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE
			SET contents = EXCLUDED.contents,
			    normalized = EXCLUDED.normalized,
			    terms = EXCLUDED.terms`)
		if err != nil {
			return fmt.Errorf("preparing insert: %w", err)
		}
		defer stmt.Close()

		for _, doc := range docs {
			terms := make([]string, 0)
			for t := range p.analyzer.TermSet(doc.Contents) {
				terms = append(terms, t)
			}
			normalized := p.analyzer.NormalizedText(doc.Contents)
			if _, err := stmt.ExecContext(ctx, doc.ID, doc.Contents, normalized, pq.Array(terms)); err != nil {
				return fmt.Errorf("storing document %s: %w", doc.ID, err)
			}
		}
		return nil
	})
}

func (p *PostgresEngine) Content(ctx context.Context, id string) (string, error) {
	var contents string
	err := p.client.DB.QueryRowContext(ctx,
		`SELECT contents FROM documents WHERE id = $1`, id).Scan(&contents)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading document %s: %w", id, err)
	}
	return contents, nil
}

func (p *PostgresEngine) TermSet(ctx context.Context, id string) (map[string]struct{}, error) {
	var terms pq.StringArray
	err := p.client.DB.QueryRowContext(ctx,
		`SELECT terms FROM documents WHERE id = $1`, id).Scan(&terms)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading term set for %s: %w", id, err)
	}
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[t] = struct{}{}
	}
	return set, nil
}

func (p *PostgresEngine) Count(ctx context.Context) (int, error) {
	var count int
	if err := p.client.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return count, nil
}

func (p *PostgresEngine) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := p.client.DB.QueryContext(ctx,
		`SELECT id FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing document ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning document id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating document ids: %w", err)
	}
	return ids, nil
}

func (p *PostgresEngine) Close() error {
	return p.client.Close()
}
