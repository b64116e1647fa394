// Package registry is a read-only client for the MCP package index. It
// supplies the runtime metadata the installer needs when no explicit runtime
// override is given.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

// DefaultBaseURL is the package index queried when no override is configured.
const DefaultBaseURL = "https://registry.mcp-get.dev"

// EnvBaseURL names the environment variable that overrides the registry URL.
const EnvBaseURL = "MCP_REGISTRY_URL"

// ErrNotFound signals the registry has no package under the requested name.
var ErrNotFound = errors.New("package not found in registry")

// Package is one entry of the registry's package index.
type Package struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Vendor      string `json:"vendor,omitempty"`
	SourceURL   string `json:"sourceUrl,omitempty"`
	Runtime     string `json:"runtime,omitempty"`
}

// Client fetches package metadata from the registry index. The index is
// fetched at most once per Client; CLI invocations are short-lived so there is
// no expiry.
type Client struct {
	baseURL  string
	http     *http.Client
	packages []Package
}

// NewClient builds a registry client. An empty baseURL selects the
// MCP_REGISTRY_URL environment override, then DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv(EnvBaseURL)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Resolve looks up a package by exact name. Returns ErrNotFound when the index
// has no such package.
func (c *Client) Resolve(ctx context.Context, name string) (*Package, error) {
	pkgs, err := c.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range pkgs {
		if pkgs[i].Name == name {
			return &pkgs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (c *Client) list(ctx context.Context) ([]Package, error) {
	if c.packages != nil {
		return c.packages, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/packages.json", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build registry request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch package index: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned status %d", resp.StatusCode)
	}
	var pkgs []Package
	if err := json.NewDecoder(resp.Body).Decode(&pkgs); err != nil {
		return nil, fmt.Errorf("failed to parse package index: %w", err)
	}
	if pkgs == nil {
		pkgs = []Package{}
	}
	c.packages = pkgs
	return pkgs, nil
}
