package checks

import (
	"fmt"
	"sort"
	"strings"
	stdsync "sync"

	"aoe4-sync/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// SchemaReport is the result of comparing models against the live database.
type SchemaReport struct {
	Dialect string                 `json:"dialect"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport lists the differences found for one table.
type TableReport struct {
	Missing        bool     `json:"missing"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "missing", "error"
}

// MismatchedTables returns the names of tables that are not ok, sorted.
func (r *SchemaReport) MismatchedTables() []string {
	var out []string
	for name, t := range r.Tables {
		if t.Status != "ok" {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// CheckSchema verifies the database schema using gorm models as the source of truth.
// Column types are compared by family, so int and bigint match but text and integer do not.
func CheckSchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Dialect: db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	cache := &stdsync.Map{}
	for _, model := range models {
		s, err := schema.Parse(model, cache, db.NamingStrategy)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to parse model %T: %v", model, err))
			report.Matched = false
			continue
		}

		actualCols, err := database.GetTableColumns(db, s.Table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", s.Table, err))
			report.Matched = false
			continue
		}

		tbl := compareTable(s, actualCols)
		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[s.Table] = tbl
	}

	return report, nil
}

func compareTable(s *schema.Schema, actualCols []database.ColumnInfo) TableReport {
	tbl := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}
	if len(actualCols) == 0 {
		tbl.Missing = true
		tbl.Status = "missing"
		return tbl
	}

	actual := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actual[col.Field] = col
	}

	for _, field := range s.Fields {
		if field.DBName == "" || field.IgnoreMigration {
			continue
		}
		col, ok := actual[strings.ToLower(field.DBName)]
		if !ok {
			tbl.MissingColumns = append(tbl.MissingColumns, field.DBName)
			tbl.Status = "error"
			continue
		}
		expected := string(field.DataType)
		if !compatible(expected, col.Type) {
			tbl.TypeMismatches = append(tbl.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", field.DBName, expected, col.Type))
			tbl.Status = "error"
		}
	}
	return tbl
}

type family string

const (
	familyString family = "string"
	familyInt    family = "int"
	familyFloat  family = "float"
	familyBool   family = "bool"
	familyTime   family = "time"
	familyBytes  family = "bytes"
)

// familyOf classifies both gorm data types and SQL column types. It returns "" for unknown types.
func familyOf(t string) family {
	t = strings.ToLower(t)
	switch {
	case t == "":
		return ""
	case strings.HasPrefix(t, "bool"), strings.HasPrefix(t, "tinyint(1)"):
		return familyBool
	case strings.Contains(t, "int"), strings.Contains(t, "serial"):
		return familyInt
	case strings.Contains(t, "char"), strings.Contains(t, "text"), strings.Contains(t, "string"),
		strings.Contains(t, "clob"), strings.HasPrefix(t, "enum"), t == "uuid":
		return familyString
	case strings.Contains(t, "float"), strings.Contains(t, "double"), strings.Contains(t, "real"),
		strings.Contains(t, "numeric"), strings.Contains(t, "decimal"):
		return familyFloat
	case strings.Contains(t, "time"), strings.Contains(t, "date"):
		return familyTime
	case strings.Contains(t, "blob"), strings.Contains(t, "bytea"), strings.Contains(t, "binary"), t == "bytes":
		return familyBytes
	}
	return ""
}

func compatible(expected, actual string) bool {
	exp, act := familyOf(expected), familyOf(actual)
	if exp == "" || act == "" || exp == act {
		return true
	}
	// sqlite declares booleans as numeric, mysql as tinyint.
	return exp == familyBool && (act == familyFloat || act == familyInt)
}
