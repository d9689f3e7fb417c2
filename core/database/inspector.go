package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Column is one live table column. Name and Type are lower case.
type Column struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Nullable   bool   `json:"nullable"`
	PrimaryKey bool   `json:"primary_key"`
}

// sqliteColumn is a row of PRAGMA table_info.
type sqliteColumn struct {
	Cid       int
	Name      string
	Type      string
	Notnull   int
	DfltValue *string
	Pk        int
}

// mysqlColumn is a row of SHOW COLUMNS.
type mysqlColumn struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

// TableColumns reads the live columns of table. A table that does not
// exist yields no columns on sqlite and an error on mysql.
func TableColumns(db *gorm.DB, table string) ([]Column, error) {
	var columns []Column

	switch db.Dialector.Name() {
	case DriverSQLite:
		var rows []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", table)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
		}
		for _, r := range rows {
			columns = append(columns, Column{
				Name:       strings.ToLower(r.Name),
				Type:       strings.ToLower(r.Type),
				Nullable:   r.Notnull == 0 && r.Pk == 0,
				PrimaryKey: r.Pk > 0,
			})
		}
	case DriverMySQL:
		var rows []mysqlColumn
		if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", table)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
		}
		for _, r := range rows {
			columns = append(columns, Column{
				Name:       strings.ToLower(r.Field),
				Type:       strings.ToLower(r.Type),
				Nullable:   strings.EqualFold(r.Null, "YES"),
				PrimaryKey: strings.EqualFold(r.Key, "PRI"),
			})
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", db.Dialector.Name())
	}
	return columns, nil
}
