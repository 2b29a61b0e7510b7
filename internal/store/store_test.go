package store_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/leighmacdonald/folio/internal/store"
	"github.com/stretchr/testify/require"
)

func TestSubmissions(t *testing.T) {
	conn, errOpen := store.Open(t.Context(), filepath.Join(t.TempDir(), "test.db"), true)
	require.NoError(t, errOpen)
	t.Cleanup(func() { require.NoError(t, conn.Close()) })

	queries := store.New(conn)

	_, found, errLast := queries.LastSuccess(t.Context())
	require.NoError(t, errLast)
	require.False(t, found)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	inputs := []store.Submission{
		{Name: "A", Email: "a@b.com", Message: "hi", Status: "success", CreatedOn: base},
		{Name: "B", Email: "b@b.com", Message: "yo", Status: "error", Error: "boom", HTTPStatus: 500, CreatedOn: base.Add(time.Minute)},
	}

	for _, input := range inputs {
		submissionID, err := queries.AddSubmission(t.Context(), input)
		require.NoError(t, err)
		require.Positive(t, submissionID)
	}

	items, errItems := queries.Submissions(t.Context(), 10)
	require.NoError(t, errItems)
	require.Len(t, items, 2)
	require.Equal(t, "B", items[0].Name)
	require.Equal(t, 500, items[0].HTTPStatus)
	require.Equal(t, "boom", items[0].Error)
	require.True(t, base.Add(time.Minute).Equal(items[0].CreatedOn))

	limited, errLimited := queries.Submissions(t.Context(), 1)
	require.NoError(t, errLimited)
	require.Len(t, limited, 1)

	last, found, errLast := queries.LastSuccess(t.Context())
	require.NoError(t, errLast)
	require.True(t, found)
	require.True(t, base.Equal(last))
}

func TestOpenInMemory(t *testing.T) {
	conn, errOpen := store.Open(t.Context(), "", true)
	require.NoError(t, errOpen)
	defer conn.Close()

	_, err := store.New(conn).AddSubmission(t.Context(), store.Submission{Name: "x", Status: "success", CreatedOn: time.Now()})
	require.NoError(t, err)

	require.NoError(t, store.Migrate(conn, store.MigrateUp))
}

func hasSubmissionTable(t *testing.T, conn *sql.DB) bool {
	t.Helper()

	var count int
	require.NoError(t, conn.QueryRowContext(t.Context(),
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'submission'").Scan(&count))

	return count == 1
}

func TestMigrateActions(t *testing.T) {
	conn, errOpen := store.Open(t.Context(), filepath.Join(t.TempDir(), "migrate.db"), false)
	require.NoError(t, errOpen)
	t.Cleanup(func() { require.NoError(t, conn.Close()) })

	require.False(t, hasSubmissionTable(t, conn))

	steps := []struct {
		action store.MigrationAction
		exists bool
	}{
		{store.MigrateUpOne, true},
		{store.MigrateDownOne, false},
		{store.MigrateUp, true},
		{store.MigrateUp, true},
		{store.MigrateDn, false},
	}

	for _, step := range steps {
		require.NoError(t, store.Migrate(conn, step.action))
		require.Equal(t, step.exists, hasSubmissionTable(t, conn))
	}
}

func TestParseMigrationAction(t *testing.T) {
	expected := []store.MigrationAction{store.MigrateUp, store.MigrateDn, store.MigrateUpOne, store.MigrateDownOne}
	for idx, name := range store.MigrationActionNames() {
		action, err := store.ParseMigrationAction(name)
		require.NoError(t, err)
		require.Equal(t, expected[idx], action)
	}

	action, err := store.ParseMigrationAction(" Down-One ")
	require.NoError(t, err)
	require.Equal(t, store.MigrateDownOne, action)

	_, err = store.ParseMigrationAction("sideways")
	require.ErrorIs(t, err, store.ErrMigrationAction)
}
