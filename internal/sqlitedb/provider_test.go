package sqlitedb

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-typegen/pkg/schema"
)

func TestLoadDecodesCollectionRows(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"name", "schema"}).
		AddRow("posts", `[{"name":"title","type":"text","required":true}]`).
		AddRow("tags", nil)
	mock.ExpectQuery("SELECT name, schema FROM _collections").WillReturnRows(rows)

	collections, err := NewWithDB(db).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, collections, 2)

	assert.Equal(t, "posts", collections[0].Name)
	require.Len(t, collections[0].Fields, 1)
	assert.Equal(t, schema.FieldTypeText, collections[0].Fields[0].Type)

	assert.Equal(t, "tags", collections[1].Name)
	assert.Empty(t, collections[1].Fields)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadMalformedNestedSchema(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"name", "schema"}).
		AddRow("posts", `{"broken"`)
	mock.ExpectQuery("SELECT name, schema FROM _collections").WillReturnRows(rows)

	_, err = NewWithDB(db).Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, `collection "posts"`)
}

func TestLoadQueryFailure(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name, schema FROM _collections").
		WillReturnError(errors.New("no such table: _collections"))

	_, err = NewWithDB(db).Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "query collections")
}

func TestLoadMissingDatabaseFile(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "absent.db")).Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "database file")
}
