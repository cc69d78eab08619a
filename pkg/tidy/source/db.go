package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnsupportedDriver is returned for drivers other than sqlite.
var ErrUnsupportedDriver = errors.New("unsupported db driver")

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DBSource loads one column of a table, ordered by its id primary key.
type DBSource struct {
	DSN    string
	Driver string
	Table  string
	Column string
}

// Load accepts an optional DSN string spec that overrides s.DSN.
func (s *DBSource) Load(ctx context.Context, spec any) ([]string, error) {
	dsn := s.DSN
	if v, ok := spec.(string); ok && strings.TrimSpace(v) != "" {
		dsn = v
	}
	if dsn == "" {
		return nil, fmt.Errorf("db source requires a dsn: %w", ErrInvalidSpec)
	}
	table, column := s.Table, s.Column
	if table == "" {
		table = "records"
	}
	if column == "" {
		column = "value"
	}
	if !identRe.MatchString(table) || !identRe.MatchString(column) {
		return nil, fmt.Errorf("db source: bad identifier %q.%q: %w", table, column, ErrInvalidSpec)
	}

	db, err := openDB(s.Driver, dsn)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	defer sqlDB.Close()

	rows, err := db.WithContext(ctx).Table(table).Select(column).Order("id").Rows()
	if err != nil {
		return nil, fmt.Errorf("query %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s.%s: %w", table, column, err)
		}
		out = append(out, v.String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query %s.%s: %w", table, column, err)
	}
	return out, nil
}

func openDB(driver, dsn string) (*gorm.DB, error) {
	switch strings.ToLower(driver) {
	case "", "sqlite", "sqlite3":
	default:
		return nil, fmt.Errorf("%s: %w", driver, ErrUnsupportedDriver)
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	return db, nil
}
