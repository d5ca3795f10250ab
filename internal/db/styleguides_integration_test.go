package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/brand-styleguide/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
	}
	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestStyleguideCRUD_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	domain := "acme-" + uuid.NewString()[:8] + ".example"
	in := &StyleguideInput{
		Domain:    domain,
		SourceURL: "https://" + domain,
		Artifact: &types.StyleguideArtifact{
			DesignTokens:  &types.DesignTokenSet{Prefix: "ac"},
			BrandAnalysis: &types.BrandAnalysis{BrandName: "Acme", Domain: domain, Confidence: 0.8},
		},
		Report:   &types.QualityReport{Score: 92, Issues: []string{}},
		Document: "<!DOCTYPE html><html><body>Acme</body></html>",
	}

	id, err := db.SaveStyleguide(ctx, in)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	got, err := db.GetStyleguide(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain, got.Domain)
	assert.Equal(t, "ac", got.Artifact.DesignTokens.Prefix)
	assert.Equal(t, "Acme", got.Artifact.BrandAnalysis.BrandName)
	assert.Equal(t, HTMLStorageKey(id), got.Artifact.HTMLStorageKey)
	assert.Equal(t, types.ArtifactVersion, got.Artifact.Version)
	require.NotNil(t, got.Report)
	assert.Equal(t, 92, got.Report.Score)

	doc, err := db.GetStyleguideDocument(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, in.Document, doc)

	list, err := db.ListStyleguides(ctx, StyleguideFilters{Domain: domain})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 92, list[0].QualityScore)

	require.NoError(t, db.DeleteStyleguide(ctx, id))
	gone, err := db.GetStyleguide(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.Error(t, db.DeleteStyleguide(ctx, id))
}

func TestSaveStyleguide_RequiresArtifact(t *testing.T) {
	var db DB
	_, err := db.SaveStyleguide(context.Background(), &StyleguideInput{Domain: "acme.com"})
	assert.Error(t, err)
}
