// Package restapi implements the candidate, details, magic-link and login ports
// over the TalentHub REST API.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	apperrors "github.com/mrraghuvarun/talent/internal/errors"
	"github.com/mrraghuvarun/talent/internal/ports"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "talenthub"
	maxErrorBody     = 4 << 10

	// RequestIDHeader carries a fresh UUID on every outbound request.
	RequestIDHeader = "X-Request-ID"
)

var (
	_ ports.CandidateAPI  = (*Client)(nil)
	_ ports.DetailsAPI    = (*Client)(nil)
	_ ports.MagicLinkAPI  = (*Client)(nil)
	_ ports.Authenticator = (*Client)(nil)
)

// Config captures what the client needs to reach the API.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// Token is the bearer token attached to every request. Empty for login.
	Token string
	// Transport is the base round tripper. Defaults to http.DefaultTransport.
	Transport http.RoundTripper
	// Instrument optionally wraps the base transport (metrics).
	Instrument func(http.RoundTripper) http.RoundTripper
	Logger     *slog.Logger
}

// Client talks to the REST API. It is safe for concurrent use.
type Client struct {
	base   *url.URL
	client *http.Client
	logger *slog.Logger
}

// NewClient builds a client from cfg. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if raw == "" {
		return nil, errors.New("api base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("api base url %q must be http or https", raw)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var rt http.RoundTripper = cfg.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	if cfg.Instrument != nil {
		rt = cfg.Instrument(rt)
	}
	rt = &headerTransport{
		next:      rt,
		userAgent: fallbackString(strings.TrimSpace(cfg.UserAgent), defaultUserAgent),
	}
	if token := strings.TrimSpace(cfg.Token); token != "" {
		rt = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   rt,
		}
	}

	return &Client{
		base:   base,
		client: &http.Client{Timeout: timeout, Transport: rt},
		logger: cfg.Logger,
	}, nil
}

// headerTransport stamps the User-Agent and a request id on each request.
type headerTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	if r.Header.Get(RequestIDHeader) == "" {
		r.Header.Set(RequestIDHeader, uuid.NewString())
	}
	if r.Header.Get("User-Agent") == "" {
		r.Header.Set("User-Agent", t.userAgent)
	}
	return t.next.RoundTrip(r)
}

func fallbackString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// endpoint joins escaped path segments onto the base URL.
func (c *Client) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.base.JoinPath(escaped...).String()
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (c *Client) newJSONRequest(ctx context.Context, method, target string, body any) (*http.Request, error) {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		rdr = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// doJSON sends a JSON request and decodes a JSON response into out when out
// is non-nil.
func (c *Client) doJSON(ctx context.Context, method, target string, body, out any) error {
	req, err := c.newJSONRequest(ctx, method, target, body)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	if out == nil {
		return drainAndClose(resp)
	}
	return decodeAndClose(resp, out)
}

// send executes req and returns the response only for 2xx statuses. The
// caller owns the body.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); errors.Is(ctxErr, context.Canceled) {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeCanceled, "request canceled")
		}
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	if c.logger != nil {
		c.logger.Debug("api call",
			"method", req.Method,
			"path", req.URL.Path,
			"status", resp.StatusCode,
			"request_id", req.Header.Get(RequestIDHeader),
			"duration", time.Since(start))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.handleErrorResponse(req, resp)
	}
	return resp, nil
}

func decodeAndClose(resp *http.Response, out any) error {
	decodeErr := json.NewDecoder(resp.Body).Decode(out)
	closeErr := resp.Body.Close()
	if decodeErr != nil {
		if closeErr != nil {
			return errors.Join(
				fmt.Errorf("decode response body: %w", decodeErr),
				fmt.Errorf("close response body: %w", closeErr),
			)
		}
		return fmt.Errorf("decode response body: %w", decodeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close response body: %w", closeErr)
	}
	return nil
}

func drainAndClose(resp *http.Response) error {
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			return errors.Join(
				fmt.Errorf("drain response body: %w", err),
				fmt.Errorf("close response body: %w", closeErr),
			)
		}
		return fmt.Errorf("drain response body: %w", err)
	}
	if err := resp.Body.Close(); err != nil {
		return fmt.Errorf("close response body: %w", err)
	}
	return nil
}

// handleErrorResponse maps the status onto an application error code so the
// services and the CLI can branch on it.
func (c *Client) handleErrorResponse(req *http.Request, resp *http.Response) error {
	respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if closeErr := resp.Body.Close(); closeErr != nil {
		readErr = errors.Join(readErr, closeErr)
	}
	if readErr != nil {
		return fmt.Errorf("read error response: %w", readErr)
	}

	statusErr := &StatusError{
		Method:     req.Method,
		URL:        req.URL.Path,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       errorMessage(respBody),
	}
	switch resp.StatusCode {
	case http.StatusNotFound:
		return apperrors.Wrap(statusErr, apperrors.ErrCodeNotFound, "not found")
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.Wrap(statusErr, apperrors.ErrCodeUnauthorized, "not authorized")
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperrors.Wrap(statusErr, apperrors.ErrCodeValidation, "rejected by api")
	default:
		return statusErr
	}
}

// errorMessage prefers the API's {"message": "..."} or {"error": "..."} body.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(body))
}
