package videoapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const maxResponseBytes = 1 << 20

// Client talks to the upstream video metadata API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for baseURL. A zero timeout leaves the
// underlying http.Client without a deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Video issues GET /videos/{id} with the token as a bearer credential.
func (c *Client) Video(ctx context.Context, token, id string) (Detail, error) {
	endpoint := c.baseURL + "/videos/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Detail{}, fmt.Errorf("%w: create request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.authorized(token).Do(req)
	if err != nil {
		return Detail{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Detail{}, fmt.Errorf("%w: read response: %v", ErrFetchFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Detail{}, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	var payload videoResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return Detail{}, fmt.Errorf("%w: decode response: %v", ErrFetchFailed, err)
	}

	return payload.detail(), nil
}

// authorized wraps the base client so every request carries
// "Authorization: Bearer <token>".
func (c *Client) authorized(token string) *http.Client {
	return &http.Client{
		Transport: &oauth2.Transport{
			Base:   c.httpClient.Transport,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		},
		Timeout: c.httpClient.Timeout,
	}
}
