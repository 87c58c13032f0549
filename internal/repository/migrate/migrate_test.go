package migrate

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestApply_RecordsAndSkipsApplied(t *testing.T) {
	ctx := context.Background()
	db := openInMemoryDB(t)
	files := fstest.MapFS{
		"002_seed.sql":   &fstest.MapFile{Data: []byte("INSERT INTO items (id) VALUES ('a');")},
		"001_create.sql": &fstest.MapFile{Data: []byte("CREATE TABLE items (id TEXT PRIMARY KEY);")},
		"README.md":      &fstest.MapFile{Data: []byte("not a migration")},
		"003_empty.sql":  &fstest.MapFile{Data: []byte("  \n")},
	}

	require.NoError(t, Apply(ctx, db, files, "?"))
	require.NoError(t, Apply(ctx, db, files, "?"), "re-applying must be idempotent")

	var applied, items int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied))
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM items").Scan(&items))
	require.Equal(t, 2, applied)
	require.Equal(t, 1, items)
}

func TestApply_FailedMigrationRollsBack(t *testing.T) {
	ctx := context.Background()
	db := openInMemoryDB(t)
	files := fstest.MapFS{
		"001_broken.sql": &fstest.MapFile{Data: []byte("CREATE TABLE (;")},
	}

	err := Apply(ctx, db, files, "?")
	require.Error(t, err)
	require.Contains(t, err.Error(), "exec migration 001_broken.sql")

	var applied int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied))
	require.Zero(t, applied)
}

func TestApply_PostgresPlaceholders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	files := fstest.MapFS{
		"001_create.sql": &fstest.MapFile{Data: []byte("CREATE TABLE events (id BIGSERIAL PRIMARY KEY);")},
	}
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT 1 FROM schema_migrations WHERE name = \$1`).
		WithArgs("001_create.sql").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE events`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO schema_migrations \(name\) VALUES \(\$1\)`).
		WithArgs("001_create.sql").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, Apply(context.Background(), db, files, "$1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_NilDB(t *testing.T) {
	require.Error(t, Apply(context.Background(), nil, fstest.MapFS{}, "?"))
}
