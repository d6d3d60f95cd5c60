package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// The distribution is consumed ordered; the chart legend relies on the
// biggest category coming first.
func TestCategoryDistributionOrdering(t *testing.T) {
	db := dryRunDB(t)

	var captured string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		captured = tx.Statement.SQL.String()
	}))

	repo := &transactionRepo{db}
	_, err := repo.CategoryDistribution()
	require.NoError(t, err)

	require.NotEmpty(t, captured)
	assert.Contains(t, captured, "GROUP BY")
	assert.Contains(t, captured, "ORDER BY count DESC")
}

// Recent listings break timestamp ties by insertion order, so two
// movements committed in the same instant keep their recorded sequence.
func TestFindLatestTieBreakOrdering(t *testing.T) {
	db := dryRunDB(t)

	var captured string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		captured = tx.Statement.SQL.String()
	}))

	repo := &transactionRepo{db}
	_, err := repo.FindLatest(5)
	require.NoError(t, err)

	require.NotEmpty(t, captured)
	assert.Contains(t, captured, "ORDER BY created_at DESC, id ASC")
	assert.Contains(t, captured, "LIMIT")
}
