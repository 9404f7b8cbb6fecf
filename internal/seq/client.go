package seq

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/dc-tec/seq-operator/internal/constants"
)

const (
	// DefaultConnectionTimeout is the default timeout for establishing connections.
	DefaultConnectionTimeout = 5 * time.Second
	// DefaultRequestTimeout is the default timeout for individual API requests.
	DefaultRequestTimeout = 10 * time.Second
)

// Client talks to the management API of one Seq server.
// A Client authenticates either with an API key (sent on every request) or with the
// session cookie obtained by Login.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientConfig holds configuration for creating a new Client.
type ClientConfig struct {
	// BaseURL is the Seq server URL (e.g., "https://seq.observability.svc:443").
	BaseURL string
	// APIKey authenticates every request when set.
	APIKey string
	// CACert is the PEM-encoded CA bundle for TLS verification.
	// If empty, the system certificate pool is used.
	CACert []byte
	// ConnectionTimeout defaults to DefaultConnectionTimeout if zero.
	ConnectionTimeout time.Duration
	// RequestTimeout defaults to DefaultRequestTimeout if zero.
	RequestTimeout time.Duration
	// Limiter throttles requests. Clients of the same instance share one limiter.
	Limiter *rate.Limiter
}

// NewClient creates a new Seq API client with the given configuration.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("baseURL is required")
	}

	connectionTimeout := config.ConnectionTimeout
	if connectionTimeout == 0 {
		connectionTimeout = DefaultConnectionTimeout
	}

	requestTimeout := config.RequestTimeout
	if requestTimeout == 0 {
		requestTimeout = DefaultRequestTimeout
	}

	parsedURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid baseURL %q: %w", config.BaseURL, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid baseURL %q: scheme must be http or https", config.BaseURL)
	}

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
	if parsedURL.Hostname() != "" {
		tlsConfig.ServerName = parsedURL.Hostname()
	}
	if len(config.CACert) > 0 {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(config.CACert) {
			return nil, fmt.Errorf("failed to parse CA certificate")
		}
		tlsConfig.RootCAs = pool
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		TLSClientConfig:     tlsConfig,
		TLSHandshakeTimeout: connectionTimeout,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
	}

	// The jar holds the session cookie set by Login.
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		apiKey:  config.APIKey,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   requestTimeout,
			Jar:       jar,
		},
		limiter: config.Limiter,
	}, nil
}

// BaseURL returns the base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Root is the response of GET /api.
type Root struct {
	Product      string `json:"Product,omitempty"`
	Version      string `json:"Version,omitempty"`
	InstanceName string `json:"InstanceName,omitempty"`
}

// Root returns server metadata. It does not require authentication.
func (c *Client) Root(ctx context.Context) (*Root, error) {
	var root Root
	if err := c.getJSON(ctx, constants.APIPathRoot, &root); err != nil {
		return nil, err
	}
	return &root, nil
}

// Login starts a cookie session for the given user.
// A rejected password surfaces as an *APIError with status 401.
func (c *Client) Login(ctx context.Context, username, password string) error {
	if username == "" {
		return fmt.Errorf("username is required for login")
	}
	body := map[string]string{
		"Username": username,
		"Password": password,
	}
	return c.sendJSON(ctx, http.MethodPost, constants.APIPathLogin, body, nil)
}

// CurrentUser returns the authenticated user. It is also the liveness probe: it fails
// unless the server is reachable and the credentials are accepted.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, constants.APIPathCurrentUser, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Probe verifies that the connection is usable.
func (c *Client) Probe(ctx context.Context) error {
	_, err := c.CurrentUser(ctx)
	return err
}

// ChangePassword sets a new password for the authenticated user. The full user document
// is written back so that fields unknown to this client are preserved.
func (c *Client) ChangePassword(ctx context.Context, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password must not be empty")
	}

	var doc map[string]json.RawMessage
	if err := c.getJSON(ctx, constants.APIPathCurrentUser, &doc); err != nil {
		return fmt.Errorf("failed to read current user: %w", err)
	}

	var id string
	if raw, ok := doc["Id"]; !ok || json.Unmarshal(raw, &id) != nil || id == "" {
		return fmt.Errorf("current user document has no Id")
	}

	encoded, err := json.Marshal(newPassword)
	if err != nil {
		return fmt.Errorf("failed to encode password: %w", err)
	}
	doc["NewPassword"] = encoded
	doc["MustChangePassword"] = json.RawMessage("false")

	return c.sendJSON(ctx, http.MethodPut, constants.APIPathUsers+"/"+url.PathEscape(id), doc, nil)
}

// Setting is a named server setting.
type Setting struct {
	ID    string          `json:"Id,omitempty"`
	Name  string          `json:"Name"`
	Value json.RawMessage `json:"Value"`
}

// GetSetting reads a server setting by name.
func (c *Client) GetSetting(ctx context.Context, name string) (*Setting, error) {
	var s Setting
	if err := c.getJSON(ctx, constants.APIPathSettings+"/"+url.PathEscape(name), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// PutSetting writes a server setting.
func (c *Client) PutSetting(ctx context.Context, name string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting %s: %w", name, err)
	}
	s := Setting{ID: name, Name: name, Value: encoded}
	return c.sendJSON(ctx, http.MethodPut, constants.APIPathSettings+"/"+url.PathEscape(name), s, nil)
}
