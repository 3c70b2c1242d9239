package sqlite

import (
	"context"
	"strings"
	"testing"

	"github.com/myrjola/planfit/internal/testhelpers"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := NewDatabase(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})
	return db
}

func tableNames(t *testing.T, db *Database) map[string]bool {
	t.Helper()
	rows, err := db.ReadOnly.QueryContext(t.Context(),
		`SELECT name FROM sqlite_schema WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`)
	if err != nil {
		t.Fatalf("query tables: %v", err)
	}
	defer rows.Close()

	names := make(map[string]bool)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			t.Fatalf("scan table name: %v", err)
		}
		names[name] = true
	}
	if err = rows.Err(); err != nil {
		t.Fatalf("rows error: %v", err)
	}
	return names
}

func TestMigrateCreatesSchema(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t)

	names := tableNames(t, db)
	for _, want := range []string{
		"users", "profiles", "goals", "evolution_records",
		"workout_log", "exercise_log",
		"macrocycles", "mesocycles", "weekly_plan",
		"workout_templates", "exercise_plan_rows", "sessions",
	} {
		if !names[want] {
			t.Errorf("expected table %q to exist after migration", want)
		}
	}
}

func TestMigrateAddsAndDropsTables(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t)
	ctx := context.Background()

	// Migrating to an extended schema creates the new table.
	extended := schemaDefinition + "\nCREATE TABLE scratch (id INTEGER PRIMARY KEY, note TEXT);\n"
	if err := db.migrateTo(ctx, extended); err != nil {
		t.Fatalf("migrate to extended schema: %v", err)
	}
	if !tableNames(t, db)["scratch"] {
		t.Fatal("expected scratch table after migration")
	}

	// Migrating back to the original schema drops it again.
	if err := db.migrateTo(ctx, schemaDefinition); err != nil {
		t.Fatalf("migrate back to original schema: %v", err)
	}
	if tableNames(t, db)["scratch"] {
		t.Fatal("expected scratch table to be dropped")
	}
}

func TestMigrateAltersTable(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t)
	ctx := context.Background()

	// Add a column to the users table and migrate.
	altered := strings.Replace(schemaDefinition,
		"name       TEXT NOT NULL UNIQUE,",
		"name       TEXT NOT NULL UNIQUE,\n    nickname   TEXT NOT NULL DEFAULT '',", 1)
	if altered == schemaDefinition {
		t.Fatal("failed to modify schema definition for test")
	}
	if err := db.migrateTo(ctx, altered); err != nil {
		t.Fatalf("migrate to altered schema: %v", err)
	}

	row := db.ReadOnly.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM PRAGMA_TABLE_INFO('users') WHERE name = 'nickname'`)
	var count int
	if err := row.Scan(&count); err != nil {
		t.Fatalf("scan column count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected nickname column after migration, got count %d", count)
	}

	// Seeded fixture data must survive the 12-step table migration.
	row = db.ReadOnly.QueryRowContext(ctx, `SELECT name FROM users WHERE id = 1`)
	var name string
	if err := row.Scan(&name); err != nil {
		t.Fatalf("scan user name: %v", err)
	}
	if name != "default" {
		t.Fatalf("expected default user to survive migration, got %q", name)
	}
}
