package schema

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// Source identifies where a schema model originates so providers can operate
// on JSON exports, embedded database files, or live endpoints without leaking
// implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the acquisition modalities.
type SourceKind string

const (
	SourceKindFile     SourceKind = "file"
	SourceKindDatabase SourceKind = "database"
	SourceKindURL      SourceKind = "url"
)

// fileSource identifies an on-disk JSON schema export.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a JSON export file.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// databaseSource identifies the record service's embedded database file.
type databaseSource struct {
	path string
}

func (s databaseSource) Location() string {
	return s.path
}

func (s databaseSource) Kind() SourceKind {
	return SourceKindDatabase
}

// SourceFromDatabase returns a Source pointing to an embedded database file.
func SourceFromDatabase(path string) Source {
	return databaseSource{path: filepath.Clean(path)}
}

// urlSource references a running record service over HTTP/HTTPS.
type urlSource struct {
	raw string
}

func (s urlSource) Location() string {
	return s.raw
}

func (s urlSource) Kind() SourceKind {
	return SourceKindURL
}

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("schema: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("schema: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}
