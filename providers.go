package typegen

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-typegen/internal/jsonfile"
	"github.com/goliatone/go-typegen/internal/remote"
	"github.com/goliatone/go-typegen/internal/sqlitedb"
	"github.com/goliatone/go-typegen/pkg/schema"
)

// Credentials identify the admin account used by the remote provider.
type Credentials = remote.Credentials

// NewJSONFileProvider constructs the JSON-export provider while keeping the
// concrete type hidden from consumers.
func NewJSONFileProvider(path string) schema.Provider {
	return jsonfile.New(path)
}

// NewDatabaseProvider constructs the embedded-database provider backed by the
// internal implementation.
func NewDatabaseProvider(path string) schema.Provider {
	return sqlitedb.New(path)
}

// NewRemoteProvider constructs the authenticated admin API provider. A nil
// httpClient falls back to a default client with a request timeout.
func NewRemoteProvider(baseURL string, httpClient *http.Client, logger zerolog.Logger, creds Credentials) schema.Provider {
	return remote.NewProvider(remote.NewClient(baseURL, httpClient, logger), creds)
}
