package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPostgres(t *testing.T) {
	assert.True(t, IsPostgres("postgres://u:p@localhost/handygo"))
	assert.True(t, IsPostgres("host=localhost user=u dbname=handygo"))
	assert.False(t, IsPostgres("handygo-session.db"))
	assert.False(t, IsPostgres(":memory:"))
}

func TestOpenSqliteMigrateAndPing(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	assert.NoError(t, Ping(db))
	assert.True(t, db.Migrator().HasTable("maintenance_requests"))
}
