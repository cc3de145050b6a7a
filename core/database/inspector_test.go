package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE leaderboard_players (player_id INTEGER PRIMARY KEY, player_name TEXT NOT NULL, rating INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "leaderboard_players")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "integer", colMap["player_id"].Type)
	assert.Equal(t, "text", colMap["player_name"].Type)
	assert.Equal(t, "NO", colMap["player_name"].Null)
	assert.Equal(t, "YES", colMap["rating"].Null)

	// PRAGMA table_info returns no rows for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_Postgres(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"column_name", "data_type", "is_nullable", "column_default"}).
		AddRow("civ_id", "TEXT", "NO", nil).
		AddRow("win_rate", "double precision", "YES", nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM information_schema.columns")).
		WithArgs("civilization_meta_stats").
		WillReturnRows(rows)

	columns, err := GetTableColumns(db, "civilization_meta_stats")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "civ_id", columns[0].Field)
	assert.Equal(t, "text", columns[0].Type)
	assert.Equal(t, "double precision", columns[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
