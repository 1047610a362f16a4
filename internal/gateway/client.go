// Package gateway implements the typed HTTP operations against the TalentReq
// backend: job listing and search, the job-detail/talent-roster fetch, auth,
// and chat. Every operation surfaces transport and non-2xx failures to the
// caller unchanged; nothing here retries.
package gateway

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"talentreq-client/internal/common/errors"
	commonhttp "talentreq-client/internal/common/http"
	"talentreq-client/internal/common/logger"
	"talentreq-client/internal/common/metrics"
)

// TokenSource yields the persisted access token for authorized calls. An
// empty token with a nil error means no credential is stored; authorized
// requests are still attempted in that case, matching the backend contract
// (the session layer enforces the precondition before calling in).
type TokenSource interface {
	AccessToken() (string, error)
}

// StaticToken is a TokenSource over a fixed string, used by tests and the
// CLI's one-shot mode.
type StaticToken string

func (s StaticToken) AccessToken() (string, error) { return string(s), nil }

// Client is the API gateway client. The job, auth, and chat backends are
// deployed separately, so each gets its own base URL.
type Client struct {
	jobsBaseURL string
	authBaseURL string
	chatBaseURL string
	httpClient  *commonhttp.Client
	tokens      TokenSource
	logger      logger.Logger
}

// Options configures a Client.
type Options struct {
	JobsBaseURL string
	AuthBaseURL string
	ChatBaseURL string
	Timeout     time.Duration
	Tokens      TokenSource
	Logger      logger.Logger
}

// New creates a gateway client. AuthBaseURL and ChatBaseURL default to
// JobsBaseURL when empty.
func New(opts Options) *Client {
	if opts.AuthBaseURL == "" {
		opts.AuthBaseURL = opts.JobsBaseURL
	}
	if opts.ChatBaseURL == "" {
		opts.ChatBaseURL = opts.JobsBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Tokens == nil {
		opts.Tokens = StaticToken("")
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNoOpLogger()
	}

	return &Client{
		jobsBaseURL: strings.TrimSuffix(opts.JobsBaseURL, "/"),
		authBaseURL: strings.TrimSuffix(opts.AuthBaseURL, "/"),
		chatBaseURL: strings.TrimSuffix(opts.ChatBaseURL, "/"),
		httpClient:  commonhttp.NewClient(opts.Timeout),
		tokens:      opts.Tokens,
		logger:      opts.Logger,
	}
}

// get issues a GET and returns the response body for 2xx, or a
// StandardError otherwise. When authorized is set, the stored access token
// is attached as a Bearer header; a missing token does not abort the call.
func (c *Client) get(ctx context.Context, op, rawURL string, authorized bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.NewRequestBuildFailedError(op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	if authorized {
		token, err := c.tokens.AccessToken()
		if err != nil {
			return nil, errors.NewCredentialStoreError(op, err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		} else {
			c.logger.Warn("issuing authorized request without stored token", map[string]interface{}{
				"op": op,
			})
		}
	}

	return c.do(op, req)
}

// post issues a POST with a JSON body; auth handling matches get.
func (c *Client) post(ctx context.Context, op, rawURL string, body io.Reader, authorized bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, body)
	if err != nil {
		return nil, errors.NewRequestBuildFailedError(op, err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	if authorized {
		token, err := c.tokens.AccessToken()
		if err != nil {
			return nil, errors.NewCredentialStoreError(op, err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return c.do(op, req)
}

func (c *Client) do(op string, req *http.Request) ([]byte, error) {
	metrics.GatewayRequestsTotal.WithLabelValues(op).Inc()
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.GatewayRequestsFailed.WithLabelValues(op, string(errors.ErrCodeNetworkError)).Inc()
		return nil, errors.NewNetworkError(op, err)
	}
	defer resp.Body.Close()

	metrics.GatewayRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.GatewayRequestsFailed.WithLabelValues(op, string(errors.ErrCodeNetworkError)).Inc()
		return nil, errors.NewNetworkError(op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.GatewayRequestsFailed.WithLabelValues(op, string(errors.ErrCodeGatewayStatus)).Inc()
		c.logger.Error("gateway request failed", map[string]interface{}{
			"op":     op,
			"status": resp.StatusCode,
		})
		return nil, errors.NewGatewayStatusError(op, resp.StatusCode, string(body))
	}

	return body, nil
}

func (c *Client) jobsURL(path string) string {
	return c.jobsBaseURL + path
}

func (c *Client) queryURL(path string, params url.Values) string {
	u := c.jobsBaseURL + path
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}
