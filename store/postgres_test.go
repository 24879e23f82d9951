package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogokodo/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestPostgresGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	kv := NewPostgres(db)

	mock.ExpectQuery("SELECT value FROM kv_entries WHERE namespace = \\$1 AND key = \\$2").
		WithArgs(NamespaceTemplates, "1").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"structure":"<p>{{content}}</p>"}`)))

	value, err := kv.Get(context.Background(), NamespaceTemplates, "1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"structure":"<p>{{content}}</p>"}`, string(value))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	kv := NewPostgres(db)

	mock.ExpectQuery("SELECT value FROM kv_entries").
		WithArgs(NamespaceContent, "missing").
		WillReturnError(sql.ErrNoRows)

	_, err = kv.Get(context.Background(), NamespaceContent, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPutUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	kv := NewPostgres(db)
	value := []byte(`{"structure":"<div>{{content}}</div>"}`)

	mock.ExpectExec("INSERT INTO kv_entries .* ON CONFLICT \\(namespace, key\\) DO UPDATE").
		WithArgs(NamespaceTemplates, "1", value).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kv.Put(context.Background(), NamespaceTemplates, "1", value))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPutError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	kv := NewPostgres(db)
	boom := errors.New("connection reset")

	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs(NamespaceContent, "x", []byte(`{}`)).
		WillReturnError(boom)

	err = kv.Put(context.Background(), NamespaceContent, "x", []byte(`{}`))
	assert.ErrorIs(t, err, boom)
}

func TestPostgresEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	kv := NewPostgres(db)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv_entries").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, kv.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryLastWriteWins(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	_, err := kv.Get(ctx, NamespaceContent, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Put(ctx, NamespaceContent, "k", []byte(`{"v":1}`)))
	require.NoError(t, kv.Put(ctx, NamespaceContent, "k", []byte(`{"v":2}`)))

	value, err := kv.Get(ctx, NamespaceContent, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(value))

	// Namespaces do not share keys.
	_, err = kv.Get(ctx, NamespaceTemplates, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}
