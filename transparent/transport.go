package transparent

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Poster is the transport collaborator: it posts a form body to the gateway
// and returns the raw response text. Connection pooling, TLS, retries and
// timeouts all live behind this interface.
type Poster interface {
	Post(ctx context.Context, postURL string, form url.Values) (string, error)
}

// TransportError is returned by the default poster when the gateway answers
// with a non-2xx status. The body is kept because the gateway sometimes
// puts a decodable response record inside its error pages.
type TransportError struct {
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.Status, strings.TrimSpace(e.Body))
}

type httpPoster struct {
	client *http.Client
}

func newHTTPPoster(timeout time.Duration) *httpPoster {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpPoster{client: &http.Client{Timeout: timeout}}
}

func (p *httpPoster) Post(ctx context.Context, postURL string, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, postURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("post to gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gateway response: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return "", &TransportError{Status: resp.StatusCode, Body: string(body)}
	}
	return string(body), nil
}
