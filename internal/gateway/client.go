// Package gateway is the HTTP client for the ForeSky API. It attaches
// the bearer credential to every call, classifies remote failures into
// domain errors, and rate-limits outbound traffic.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/foreskyapp/foresky-cli/internal/errors"
	"github.com/foreskyapp/foresky-cli/internal/ratelimit"
)

const (
	defaultTimeout = 30 * time.Second
	defaultRPS     = 5.0
	defaultBurst   = 10

	userAgent = "ForeSky-CLI/1.0"
)

// TokenSource yields the current bearer token, or "" when the session
// is anonymous. Implemented by session.Manager.
type TokenSource interface {
	Token() string
}

// Config holds gateway settings.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	RPS      float64
	Burst    int
	ClientID string // stable install id sent as X-Client-ID
}

// Client is a rate-limited ForeSky API client.
type Client struct {
	base     *url.URL
	http     *http.Client
	limiter  *ratelimit.KeyedLimiter
	logger   *slog.Logger
	tokens   TokenSource
	clientID string

	// onAuthFailure fires after any call fails with an expired or
	// invalid token. The session manager hooks in here to force the
	// sign-out; the failing call itself is never retried.
	onAuthFailure func(error)
}

// New creates a new ForeSky API client.
func New(cfg Config, tokens TokenSource, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RPS <= 0 {
		cfg.RPS = defaultRPS
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}

	return &Client{
		base:     base,
		http:     &http.Client{Timeout: cfg.Timeout},
		limiter:  ratelimit.New(cfg.RPS, cfg.Burst),
		logger:   logger,
		tokens:   tokens,
		clientID: cfg.ClientID,
	}, nil
}

// SetAuthFailureHook registers fn to run when a call fails because the
// token expired or became invalid.
func (c *Client) SetAuthFailureHook(fn func(error)) {
	c.onAuthFailure = fn
}

// detailResponse is the error envelope the API uses on failures.
type detailResponse struct {
	Detail string `json:"detail"`
}

// do executes one API call. body is either url.Values (form-encoded,
// used by login) or any JSON-marshalable value; out, when non-nil,
// receives the decoded success response.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx, c.base.Host); err != nil {
		return errors.Unavailable("rate limit wait canceled").WithCause(err)
	}

	u := c.base.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case url.Values:
		reader = strings.NewReader(b.Encode())
		contentType = "application/x-www-form-urlencoded"
	default:
		payload, err := json.Marshal(b)
		if err != nil {
			return errors.Internal("encode request body").WithCause(err)
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return errors.Internal("create request").WithCause(err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	requestID, _ := gonanoid.New()
	req.Header.Set("X-Request-ID", requestID)
	if c.clientID != "" {
		req.Header.Set("X-Client-ID", c.clientID)
	}

	token := ""
	if c.tokens != nil {
		token = c.tokens.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("api request",
		"op", op,
		"method", method,
		"path", path,
		"request_id", requestID,
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Unavailablef("could not reach %s", c.base.Host).WithCause(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Unavailable("read response").WithCause(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return errors.Internal("decode response").WithCause(err)
		}
		return nil
	}

	domainErr := c.classify(resp.StatusCode, respBody, token != "")
	c.logger.Debug("api request failed",
		"op", op,
		"status", resp.StatusCode,
		"code", domainErr.Code,
		"request_id", requestID,
	)

	if domainErr.Code == errors.CodeTokenExpired && c.onAuthFailure != nil {
		c.onAuthFailure(domainErr)
	}
	return domainErr
}

// classify maps a failure response to a domain error, keeping the
// server's detail string verbatim as the message.
func (c *Client) classify(status int, body []byte, hadToken bool) *errors.Error {
	var envelope detailResponse
	_ = json.Unmarshal(body, &envelope)
	detail := envelope.Detail

	switch {
	case status == http.StatusUnauthorized:
		if strings.Contains(strings.ToLower(detail), "not verified") {
			return errors.Unverified(orDefault(detail, "account not verified"))
		}
		if hadToken {
			// The call carried a bearer token and the server refused it:
			// the credential is expired or invalid.
			return errors.TokenExpired(orDefault(detail, "session expired"))
		}
		return errors.Unauthorized(orDefault(detail, "unauthorized"))
	case status == http.StatusNotFound:
		return errors.NotFound(orDefault(detail, "not found"))
	case status == http.StatusConflict:
		return errors.Conflict(orDefault(detail, "conflict"))
	case status == http.StatusBadRequest:
		// The API reports uniqueness and referential violations as 400
		// with an explanatory detail ("Email already registered",
		// "Tag is in use by existing notes").
		return errors.Conflict(orDefault(detail, "request rejected"))
	case status == http.StatusUnprocessableEntity:
		return errors.Validation(orDefault(detail, "invalid request"))
	case status >= 500:
		return errors.Unavailable(orDefault(detail, "server error"))
	default:
		return errors.Unavailablef("unexpected status %d", status)
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
