package checks

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"pss-assistant/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// SchemaReport is the result of comparing gorm models with the live tables.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport lists what one table lacks compared with its model.
type TableReport struct {
	MissingTable   bool     `json:"missing_table"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// liveTypes maps gorm data types to fragments any matching column type contains.
var liveTypes = map[schema.DataType][]string{
	schema.Bool:   {"bool", "tinyint"},
	schema.Int:    {"int"},
	schema.Uint:   {"int"},
	schema.Float:  {"real", "float", "double", "decimal", "numeric"},
	schema.String: {"char", "text", "clob"},
	schema.Time:   {"date", "time"},
	schema.Bytes:  {"blob", "binary"},
}

// CheckSchema verifies that every model's table and columns exist with a
// compatible type. An explicit `type:` tag must appear in the column type.
func CheckSchema(db *gorm.DB, models ...interface{}) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}
	cache := &sync.Map{}

	for _, model := range models {
		sch, err := schema.Parse(model, cache, db.NamingStrategy)
		if err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}

		actual, err := database.TableColumns(db, sch.Table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", sch.Table, err))
			report.Matched = false
			continue
		}

		tbl := checkTable(sch, actual)
		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[sch.Table] = tbl
	}
	return report, nil
}

func checkTable(sch *schema.Schema, actual []database.Column) TableReport {
	tbl := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}
	if len(actual) == 0 {
		tbl.MissingTable = true
		tbl.Status = "error"
		return tbl
	}

	columns := make(map[string]database.Column, len(actual))
	for _, col := range actual {
		columns[col.Name] = col
	}

	for _, field := range sch.Fields {
		if field.DBName == "" {
			continue
		}
		name := strings.ToLower(field.DBName)
		col, ok := columns[name]
		if !ok {
			tbl.MissingColumns = append(tbl.MissingColumns, name)
			continue
		}
		if expected, ok := typeMatches(field, col.Type); !ok {
			tbl.TypeMismatches = append(tbl.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", name, expected, col.Type))
		}
	}

	sort.Strings(tbl.MissingColumns)
	if len(tbl.MissingColumns) > 0 || len(tbl.TypeMismatches) > 0 {
		tbl.Status = "error"
	}
	return tbl
}

// typeMatches reports whether the live column type fits the field, and the
// type it expected.
func typeMatches(field *schema.Field, live string) (string, bool) {
	if explicit := strings.ToLower(field.TagSettings["TYPE"]); explicit != "" {
		return explicit, strings.Contains(live, explicit)
	}
	fragments, ok := liveTypes[field.DataType]
	if !ok {
		return string(field.DataType), true
	}
	for _, f := range fragments {
		if strings.Contains(live, f) {
			return string(field.DataType), true
		}
	}
	return string(field.DataType), false
}
