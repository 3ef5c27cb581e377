package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time — should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	// Third time for good measure.
	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"claims", "claim_dates", "claim_comments", "claim_messages",
		"claim_attachments", "contractors", "templates",
		"template_settings", "claim_sequence",
	}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_claims_status",
		"idx_claim_comments_claim",
		"idx_claim_messages_claim",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_SeedsClaimSequence(t *testing.T) {
	db := openTestDB(t)

	var next int
	err := db.QueryRow(`SELECT next FROM claim_sequence WHERE id = 1`).Scan(&next)
	require.NoError(t, err)
	assert.Equal(t, 1001, next)

	// Re-running migrations must not reset the counter.
	_, err = db.Exec(`UPDATE claim_sequence SET next = 1042 WHERE id = 1`)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	err = db.QueryRow(`SELECT next FROM claim_sequence WHERE id = 1`).Scan(&next)
	require.NoError(t, err)
	assert.Equal(t, 1042, next)
}

func TestMigrate_SeedsEmptyDefaultTemplate(t *testing.T) {
	db := openTestDB(t)

	var def sql.NullString
	err := db.QueryRow(`SELECT default_template_id FROM template_settings WHERE id = 1`).Scan(&def)
	require.NoError(t, err)
	assert.False(t, def.Valid, "no default template out of the box")
}

func TestMigrate_ClaimStatusConstraint(t *testing.T) {
	db := openTestDB(t)

	var createSQL string
	err := db.QueryRow(`SELECT sql FROM sqlite_master WHERE type='table' AND name='claims'`).Scan(&createSQL)
	require.NoError(t, err)
	assert.Contains(t, createSQL, "'SCHEDULING'", "claims status CHECK should include 'SCHEDULING'")
}
