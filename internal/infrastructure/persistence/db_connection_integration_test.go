//go:build integration
// +build integration

package persistence

import (
	"testing"

	"github.com/Tsilavina4274/odyssea/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBConnection_Sqlite(t *testing.T) {
	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType, DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, CloseDB(db))
}

func TestNewDBConnection_UnsupportedType(t *testing.T) {
	_, err := NewDBConnection(config.DatabaseSettings{Type: "oracle", DSN: "x"})
	assert.Error(t, err)
}

func TestDropDatabase_ReportsConnectionFailure(t *testing.T) {
	err := DropDatabase("user=postgres password=postgres host=127.0.0.1 port=1 dbname=postgres sslmode=disable connect_timeout=2", "test_unreachable")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to PostgreSQL")
}
