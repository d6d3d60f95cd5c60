package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dryRunDB opens a gorm handle that builds SQL without touching a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=inventory dbname=inventory",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return db
}

// The ledger's concurrency guarantee rests on LockByID taking a pessimistic
// row lock; two concurrent exits must serialize on the product row instead
// of both reading the same stale quantity.
func TestLockByIDTakesRowLock(t *testing.T) {
	db := dryRunDB(t)

	var captured string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		captured = tx.Statement.SQL.String()
	}))

	repo := &productRepo{db}
	_, err := repo.LockByID(db, uuid.New())
	require.NoError(t, err)

	require.NotEmpty(t, captured)
	assert.Contains(t, captured, "FOR UPDATE")
}
