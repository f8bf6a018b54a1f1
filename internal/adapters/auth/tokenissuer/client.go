package tokenissuer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dairy-records/internal/platform/httpclient"
	"dairy-records/internal/ports/auth"

	"github.com/go-resty/resty/v2"
)

var (
	ErrNotConfigured = errors.New("token issuer not configured")
	ErrUnauthorized  = errors.New("token issuer unauthorized")
	ErrUpstream      = errors.New("token issuer upstream error")
)

const verifyPath = "/v1/tokens/verify"

// Config del cliente. BaseURL y APIKey vienen de AUTH_BASE_URL / AUTH_API_KEY.
type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: header de la API key. Vacío => "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration

	// Solo tests.
	Transport http.RoundTripper
}

type Client struct {
	http *resty.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	key := strings.TrimSpace(cfg.APIKey)
	if base == "" || key == "" {
		return nil, ErrNotConfigured
	}

	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	rc, err := httpclient.NewWithTransport(base, timeout, cfg.Transport)
	if err != nil {
		return nil, err
	}
	rc.SetHeader(h, key)

	return &Client{http: rc}, nil
}

type verifyResponse struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	TenantID string `json:"tenant_id"`
}

// VerifyToken manda el token en el body y en Authorization (algunos issuers leen uno u otro).
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if c == nil || c.http == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out verifyResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(map[string]string{"token": token}).
		SetResult(&out).
		Post(verifyPath)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return auth.Claims{}, ErrUnauthorized
	default:
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, httpclient.Check(resp))
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user_id", ErrUpstream)
	}

	return auth.Claims{
		UserID:   out.UserID,
		Name:     strings.TrimSpace(out.Name),
		Email:    strings.TrimSpace(out.Email),
		TenantID: strings.TrimSpace(out.TenantID),
	}, nil
}
