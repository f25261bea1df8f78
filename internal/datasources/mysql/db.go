package mysql

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const driverParamStr string = "?parseTime=true"

const (
	// erDupEntry is the MySQL server error for a duplicate key on a unique index.
	erDupEntry = 1062
	// erLockDeadlock is raised when InnoDB rolls back a transaction to break a deadlock.
	erLockDeadlock = 1213
)

//go:embed schema.sql
var schema string

func Connect(ctx context.Context, uri string) (*sql.DB, error) {
	db, err := sql.Open("mysql", uri+driverParamStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking MySQL DB connection: %w", err)
	}

	return db, nil
}

// ApplySchema creates any missing tables. Every statement is idempotent.
func ApplySchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying MySQL schema: %w", err)
		}
	}
	return nil
}

// IsUniqueViolation reports whether err is a duplicate key error raised by the named
// index. index is qualified by table, e.g. "reactions.uq_reactions_subject_user".
// Servers before 8.0.19 report the key name without the table.
func IsUniqueViolation(err error, index string) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != erDupEntry {
		return false
	}

	if strings.HasSuffix(mysqlErr.Message, "for key '"+index+"'") {
		return true
	}
	_, key, ok := strings.Cut(index, ".")
	return ok && key != "PRIMARY" && strings.HasSuffix(mysqlErr.Message, "for key '"+key+"'")
}

// IsDeadlock reports whether err is an InnoDB deadlock. Two transactions taking
// gap locks for the same missing row with SELECT ... FOR UPDATE end this way.
func IsDeadlock(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == erLockDeadlock
}
