package sprites

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// HTTPSource fetches frames relative to a base URL.
type HTTPSource struct {
	BaseURL string
	// Client is used for requests. Nil means http.DefaultClient.
	Client *http.Client
}

var _ Source = (*HTTPSource)(nil)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}

// Fetch issues a GET for name under BaseURL and returns the body as text.
func (s *HTTPSource) Fetch(ctx context.Context, name string) (string, error) {
	u, err := url.JoinPath(s.BaseURL, name)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: u, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
