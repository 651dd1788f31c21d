package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultTimeout bounds the whole upstream call. Generation is minutes-slow
// by nature, so this is deliberately generous.
const defaultTimeout = 15 * time.Minute

// ErrUpstream marks a transport-level failure of the outbound call itself
// (network error, timeout, non-200 status).
var ErrUpstream = errors.New("generation request failed")

// Generator is the contract the HTTP surface consumes; satisfied by Client
// and by Mock in tests.
type Generator interface {
	Request(ctx context.Context, keyword, level, mode string, learner Learner) (*Result, error)
}

// Client calls the external generation service.
type Client struct {
	baseURL string
	signer  *TokenSigner
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (tests use a short-timeout one).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a generation client for the given service base URL.
func NewClient(baseURL string, signer *TokenSigner, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		signer:  signer,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	Keyword string `json:"keyword"`
}

// Request issues a single POST /generate/{level}?type={mode} call and
// returns the validated result. The keyword must already have passed
// moderation.
//
// There is no retry here: generation is expensive, and when the upstream
// failure is deterministic a re-issue would only duplicate the cost.
// Retries, if wanted, belong to the caller.
func (c *Client) Request(ctx context.Context, keyword, level, mode string, learner Learner) (*Result, error) {
	body, err := json.Marshal(generateRequest{Keyword: keyword})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/generate/%s?type=%s",
		c.baseURL, url.PathEscape(level), url.QueryEscape(mode))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := c.signer.Sign(learner)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, string(raw))
	}

	if err := ValidateShape(raw); err != nil {
		return nil, err
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}

	return &result, nil
}
