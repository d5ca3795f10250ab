package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/brand-styleguide/internal/types"
)

// SaveStyleguide stores the artifact record and its document in one
// transaction. A nil ID gets a fresh one; the artifact's HTMLStorageKey,
// GeneratedAt and Version are filled in when empty.
func (db *DB) SaveStyleguide(ctx context.Context, in *StyleguideInput) (uuid.UUID, error) {
	if in == nil || in.Artifact == nil {
		return uuid.Nil, fmt.Errorf("styleguide artifact is required")
	}
	id := in.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	artifact := *in.Artifact
	if artifact.HTMLStorageKey == "" {
		artifact.HTMLStorageKey = HTMLStorageKey(id)
	}
	if artifact.GeneratedAt.IsZero() {
		artifact.GeneratedAt = time.Now().UTC()
	}
	if artifact.Version == "" {
		artifact.Version = types.ArtifactVersion
	}

	tokensJSON, err := json.Marshal(artifact.DesignTokens)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal design tokens: %w", err)
	}
	analysisJSON, err := json.Marshal(artifact.BrandAnalysis)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal brand analysis: %w", err)
	}
	var reportJSON []byte
	score := 0
	if in.Report != nil {
		if reportJSON, err = json.Marshal(in.Report); err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal quality report: %w", err)
		}
		score = in.Report.Score
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO styleguides (id, domain, source_url, design_tokens, brand_analysis, quality_report,
		                          quality_score, html_storage_key, version, generated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, in.Domain, in.SourceURL, tokensJSON, analysisJSON, reportJSON,
		score, artifact.HTMLStorageKey, artifact.Version, artifact.GeneratedAt,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save styleguide: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO styleguide_documents (storage_key, html, byte_size) VALUES ($1, $2, $3)`,
		artifact.HTMLStorageKey, in.Document, len(in.Document),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save styleguide document: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit styleguide: %w", err)
	}
	return id, nil
}

// GetStyleguide retrieves a styleguide by ID. Returns nil, nil when absent.
func (db *DB) GetStyleguide(ctx context.Context, id uuid.UUID) (*Styleguide, error) {
	var sg Styleguide
	var tokensJSON, analysisJSON, reportJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, domain, source_url, design_tokens, brand_analysis, quality_report,
		        html_storage_key, version, generated_at, created_at
		 FROM styleguides WHERE id = $1`,
		id,
	).Scan(&sg.ID, &sg.Domain, &sg.SourceURL, &tokensJSON, &analysisJSON, &reportJSON,
		&sg.Artifact.HTMLStorageKey, &sg.Artifact.Version, &sg.Artifact.GeneratedAt, &sg.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get styleguide: %w", err)
	}

	if err := json.Unmarshal(tokensJSON, &sg.Artifact.DesignTokens); err != nil {
		return nil, fmt.Errorf("failed to unmarshal design tokens: %w", err)
	}
	if err := json.Unmarshal(analysisJSON, &sg.Artifact.BrandAnalysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal brand analysis: %w", err)
	}
	if len(reportJSON) > 0 {
		if err := json.Unmarshal(reportJSON, &sg.Report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal quality report: %w", err)
		}
	}
	return &sg, nil
}

// GetStyleguideDocument returns the assembled HTML document for a styleguide.
// Returns "", nil when absent.
func (db *DB) GetStyleguideDocument(ctx context.Context, id uuid.UUID) (string, error) {
	var html string
	err := db.pool.QueryRow(ctx,
		`SELECT d.html FROM styleguide_documents d
		 JOIN styleguides s ON s.html_storage_key = d.storage_key
		 WHERE s.id = $1`,
		id,
	).Scan(&html)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get styleguide document: %w", err)
	}
	return html, nil
}

// ListStyleguides retrieves recent styleguides, newest first
func (db *DB) ListStyleguides(ctx context.Context, filters StyleguideFilters) ([]StyleguideSummary, error) {
	query, args := listQuery(filters)
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list styleguides: %w", err)
	}
	defer rows.Close()

	var out []StyleguideSummary
	for rows.Next() {
		var s StyleguideSummary
		if err := rows.Scan(&s.ID, &s.Domain, &s.QualityScore, &s.Version, &s.GeneratedAt); err != nil {
			return nil, fmt.Errorf("failed to scan styleguide: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// DeleteStyleguide removes a styleguide and its document (via cascade)
func (db *DB) DeleteStyleguide(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM styleguides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete styleguide: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrStyleguideNotFound, id)
	}
	return nil
}

func listQuery(filters StyleguideFilters) (string, []any) {
	limit := filters.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	query := `SELECT id, domain, quality_score, version, generated_at FROM styleguides WHERE 1=1`
	args := []any{}
	argNum := 1
	if filters.Domain != "" {
		query += fmt.Sprintf(" AND domain = $%d", argNum)
		args = append(args, filters.Domain)
		argNum++
	}
	query += fmt.Sprintf(" ORDER BY generated_at DESC LIMIT $%d", argNum)
	args = append(args, limit)
	return query, args
}
