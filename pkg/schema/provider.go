package schema

import "context"

// Provider produces the schema model from one acquisition path. All three
// paths (JSON export, embedded database, remote API) normalize into the same
// []Collection before the generator runs; the generator never learns which
// implementation produced it.
type Provider interface {
	Load(ctx context.Context) ([]Collection, error)
}
