package database

import (
	"strings"
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "sqlite3" {
			t.Errorf("DriverName() = %v, want sqlite3", got)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "sqlite" {
			t.Errorf("MigrationsSubdir() = %v, want sqlite", got)
		}
	})

	t.Run("RowLockSuffix", func(t *testing.T) {
		if got := dialect.RowLockSuffix(); got != "" {
			t.Errorf("RowLockSuffix() = %q, want empty", got)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT * FROM themes WHERE id = ?"
		if got := dialect.RewriteQuery(query); got != query {
			t.Errorf("RewriteQuery() = %v, want unchanged", got)
		}
	})

	t.Run("DSN enables foreign keys on every connection", func(t *testing.T) {
		dsn := dialect.DSN(DialectConfig{Path: "game.db"})
		if !strings.Contains(dsn, "_foreign_keys=on") {
			t.Errorf("DSN() = %q, missing _foreign_keys=on", dsn)
		}
	})
}

func TestDialectPostgres(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "postgres" {
			t.Errorf("DriverName() = %v, want postgres", got)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "postgres" {
			t.Errorf("MigrationsSubdir() = %v, want postgres", got)
		}
	})

	t.Run("RowLockSuffix", func(t *testing.T) {
		if got := dialect.RowLockSuffix(); got != " FOR UPDATE" {
			t.Errorf("RowLockSuffix() = %q, want \" FOR UPDATE\"", got)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		tests := []struct {
			name     string
			query    string
			expected string
		}{
			{
				name:     "single placeholder",
				query:    "SELECT * FROM themes WHERE id = ?",
				expected: "SELECT * FROM themes WHERE id = $1",
			},
			{
				name:     "multiple placeholders",
				query:    "INSERT INTO hint_usages (session_id, hint_id, used_at) VALUES (?, ?, ?)",
				expected: "INSERT INTO hint_usages (session_id, hint_id, used_at) VALUES ($1, $2, $3)",
			},
			{
				name:     "no placeholders",
				query:    "SELECT COUNT(*) FROM themes",
				expected: "SELECT COUNT(*) FROM themes",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if got := dialect.RewriteQuery(tt.query); got != tt.expected {
					t.Errorf("RewriteQuery() = %v, want %v", got, tt.expected)
				}
			})
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "mysql" {
			t.Errorf("DriverName() = %v, want mysql", got)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "mysql" {
			t.Errorf("MigrationsSubdir() = %v, want mysql", got)
		}
	})

	t.Run("RowLockSuffix", func(t *testing.T) {
		if got := dialect.RowLockSuffix(); got != " FOR UPDATE" {
			t.Errorf("RowLockSuffix() = %q, want \" FOR UPDATE\"", got)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT * FROM hints WHERE theme_id = ? AND code = ?"
		if got := dialect.RewriteQuery(query); got != query {
			t.Errorf("RewriteQuery() = %v, want unchanged", got)
		}
	})
}
