package database

import (
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "sqlite3" {
			t.Errorf("DriverName() = %v, want sqlite3", got)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT id FROM kids WHERE name = ? AND parent_email = ?"
		if got := dialect.RewriteQuery(query); got != query {
			t.Errorf("RewriteQuery() changed the query: %v", got)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "sqlite" {
			t.Errorf("MigrationsSubdir() = %v, want sqlite", got)
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "postgres" {
			t.Errorf("DriverName() = %v, want postgres", got)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT id FROM kids WHERE name = ? AND parent_email = ?"
		want := "SELECT id FROM kids WHERE name = $1 AND parent_email = $2"
		if got := dialect.RewriteQuery(query); got != want {
			t.Errorf("RewriteQuery() = %v, want %v", got, want)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "postgres" {
			t.Errorf("MigrationsSubdir() = %v, want postgres", got)
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

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT id FROM kids WHERE name = ?"
		if got := dialect.RewriteQuery(query); got != query {
			t.Errorf("RewriteQuery() changed the query: %v", got)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "mysql" {
			t.Errorf("MigrationsSubdir() = %v, want mysql", got)
		}
	})
}
