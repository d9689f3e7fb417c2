package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestTableColumns_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE exports (id INTEGER PRIMARY KEY, Entity VARCHAR(64) NOT NULL, bytes INTEGER)").Error)

	columns, err := TableColumns(db, "exports")
	require.NoError(t, err)
	assert.Equal(t, []Column{
		{Name: "id", Type: "integer", PrimaryKey: true},
		{Name: "entity", Type: "varchar(64)"},
		{Name: "bytes", Type: "integer", Nullable: true},
	}, columns)

	columns, err = TableColumns(db, "missing")
	require.NoError(t, err)
	assert.Empty(t, columns)
}

func TestTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "bigint(20) unsigned", "NO", "PRI", nil, "auto_increment").
		AddRow("Entity", "VARCHAR(64)", "YES", "MUL", nil, "")
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `wiki_exports`")).WillReturnRows(rows)

	columns, err := TableColumns(db, "wiki_exports")
	require.NoError(t, err)
	assert.Equal(t, []Column{
		{Name: "id", Type: "bigint(20) unsigned", PrimaryKey: true},
		{Name: "entity", Type: "varchar(64)", Nullable: true},
	}, columns)

	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `gone`")).WillReturnError(assert.AnError)
	_, err = TableColumns(db, "gone")
	assert.ErrorContains(t, err, "failed to get columns for table gone")
	assert.NoError(t, mock.ExpectationsWereMet())
}
