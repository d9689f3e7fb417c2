package checks

import (
	"regexp"
	"testing"
	"time"

	"pss-assistant/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type exportRow struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Entity    string    `gorm:"column:entity;size:64"`
	Records   int       `gorm:"column:records"`
	Checksum  string    `gorm:"column:checksum;type:char(40)"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (exportRow) TableName() string {
	return "exports"
}

func setupSQLite(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestCheckSchema_Matched(t *testing.T) {
	db := setupSQLite(t)
	require.NoError(t, db.AutoMigrate(&exportRow{}))

	report, err := CheckSchema(db, &exportRow{})
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "ok", report.Tables["exports"].Status)
	assert.Empty(t, report.Errors)
}

func TestCheckSchema_Mismatches(t *testing.T) {
	db := setupSQLite(t)
	require.NoError(t, db.Exec("CREATE TABLE exports (id INTEGER PRIMARY KEY, entity TEXT, records TEXT, checksum TEXT)").Error)

	report, err := CheckSchema(db, &exportRow{})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["exports"]
	assert.Equal(t, "error", tbl.Status)
	assert.False(t, tbl.MissingTable)
	assert.Equal(t, []string{"created_at"}, tbl.MissingColumns)
	assert.Equal(t, []string{
		"records: expected int, got text",
		"checksum: expected char(40), got text",
	}, tbl.TypeMismatches)
}

func TestCheckSchema_MissingTable(t *testing.T) {
	report, err := CheckSchema(setupSQLite(t), &exportRow{})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.True(t, report.Tables["exports"].MissingTable)
}

func TestCheckSchema_InspectError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `exports`")).WillReturnError(assert.AnError)

	report, err := CheckSchema(db, &exportRow{})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Errors, 1)
	assert.Empty(t, report.Tables)
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, &exportRow{})
	assert.Error(t, err)
	assert.Nil(t, report)
}
