package httpclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultTimeout = 10 * time.Second
)

// New crea un cliente resty con BaseURL + timeout y JSON por defecto.
// baseURL vacío se permite (requests con URL absoluta).
func New(baseURL string, timeout time.Duration) (*resty.Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return c, nil
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	return c.SetBaseURL(strings.TrimRight(baseURL, "/")), nil
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(baseURL string, timeout time.Duration, tr http.RoundTripper) (*resty.Client, error) {
	c, err := New(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	if tr != nil {
		c.SetTransport(tr)
	}
	return c, nil
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// Check devuelve *HTTPError si la respuesta no es 2xx. El body se recorta a 1KB.
func Check(resp *resty.Response) error {
	if resp == nil {
		return &HTTPError{}
	}
	if resp.IsSuccess() {
		return nil
	}
	body := strings.TrimSpace(resp.String())
	if len(body) > 1024 {
		body = body[:1024]
	}
	return &HTTPError{StatusCode: resp.StatusCode(), Body: body}
}
