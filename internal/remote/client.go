// Package remote loads a schema model from a running record service's
// authenticated admin API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-typegen/pkg/schema"
)

const (
	authPath        = "/api/admins/auth-with-password"
	collectionsPath = "/api/collections?page=1&perPage=200"

	defaultTimeout = 30 * time.Second
)

// Credentials identify the admin account used to read the schema.
type Credentials struct {
	Email    string
	Password string
}

// Client talks to the record service's admin endpoints. Every Load performs
// exactly one auth call and one listing call; failures are terminal, never
// retried.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient constructs a Client for the service at baseURL. A nil httpClient
// falls back to a default client with a request timeout.
func NewClient(baseURL string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

type authRequest struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

// Authenticate exchanges admin credentials for an API token.
func (c *Client) Authenticate(ctx context.Context, creds Credentials) (string, error) {
	if creds.Email == "" || creds.Password == "" {
		return "", errors.New("remote: admin email and password are required")
	}

	payload, err := json.Marshal(authRequest{Identity: creds.Email, Password: creds.Password})
	if err != nil {
		return "", fmt.Errorf("remote: encode auth request: %w", err)
	}

	url := c.baseURL + authPath
	c.logger.Debug().Str("url", url).Msg("authenticating admin")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("remote: build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("remote: authenticate: %w", err)
	}

	var auth authResponse
	if err := json.Unmarshal(body, &auth); err != nil {
		return "", fmt.Errorf("remote: decode auth response: %w", err)
	}
	if auth.Token == "" {
		return "", errors.New("remote: auth response carried no token")
	}
	return auth.Token, nil
}

type listResponse struct {
	Items []schema.Collection `json:"items"`
}

// ListCollections fetches the first page of the collection listing. A single
// page of up to 200 items covers every schema this tool targets.
func (c *Client) ListCollections(ctx context.Context, token string) ([]schema.Collection, error) {
	url := c.baseURL + collectionsPath
	c.logger.Debug().Str("url", url).Msg("fetching collections")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("remote: build listing request: %w", err)
	}
	req.Header.Set("Authorization", token)

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("remote: list collections: %w", err)
	}

	var listing listResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("remote: decode collection listing: %w", err)
	}
	return listing.Items, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("unexpected status " + resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return body, nil
}
