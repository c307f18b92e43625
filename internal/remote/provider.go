package remote

import (
	"context"
	"errors"

	"github.com/goliatone/go-typegen/pkg/schema"
)

// Provider authenticates against the admin API and pulls the collection
// listing. Authentication failures surface before any schema data is
// requested.
type Provider struct {
	client *Client
	creds  Credentials
}

var _ schema.Provider = (*Provider)(nil)

// NewProvider constructs a Provider from a configured Client and admin
// credentials.
func NewProvider(client *Client, creds Credentials) *Provider {
	return &Provider{client: client, creds: creds}
}

// Load performs the auth and listing round trips and returns the schema
// model.
func (p *Provider) Load(ctx context.Context) ([]schema.Collection, error) {
	if p.client == nil {
		return nil, errors.New("remote: client is required")
	}

	token, err := p.client.Authenticate(ctx, p.creds)
	if err != nil {
		return nil, err
	}
	return p.client.ListCollections(ctx, token)
}
