// Package backend is the single choke point for all calls to the job-portal
// REST API. It owns base-URL configuration, header construction, bearer
// injection, and error normalization; every endpoint method in this package
// is a thin wrapper over do.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobhive/portal-client/internal/core/domain"
	"github.com/jobhive/portal-client/internal/core/ports"
	"github.com/jobhive/portal-client/internal/metrics"
)

const defaultTimeout = 30 * time.Second

// Config captures the settings for constructing a Client.
type Config struct {
	// BaseURL is the backend origin; request paths are appended verbatim.
	BaseURL string
	// Storage is where the bearer token lives. It is read on every request
	// and cleared when the backend rejects the credential.
	Storage ports.SessionStorage
	// Timeout bounds each request end-to-end. Defaults to 30s.
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Client issues requests against the portal backend. It performs no retries
// and no deduplication: every failure is surfaced to the caller, normalized
// into a *domain.APIError or *domain.TransportError.
type Client struct {
	baseURL string
	http    *http.Client
	storage ports.SessionStorage
	log     zerolog.Logger
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		storage: cfg.Storage,
		log:     cfg.Logger,
	}
}

// do builds, sends, and settles one request. Exactly one of (raw body, error)
// is returned. body may be nil, a *Multipart, or any JSON-serializable value;
// hdr entries override the defaults key-by-key.
func (c *Client) do(ctx context.Context, method, path string, body any, hdr map[string]string) (json.RawMessage, error) {
	reader, contentType, err := encodeBody(body)
	if err != nil {
		metrics.RequestErrorsTotal.WithLabelValues("encode").Inc()
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		metrics.RequestErrorsTotal.WithLabelValues("build").Inc()
		return nil, err
	}

	// Multipart bodies carry their own boundary; never force a static
	// content type over them.
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.currentToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RequestErrorsTotal.WithLabelValues("transport").Inc()
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("transport failure")
		return nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	metrics.RequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	if err != nil {
		metrics.RequestErrorsTotal.WithLabelValues("read").Inc()
		return nil, &domain.TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := normalize(resp.StatusCode, raw)
		c.settleAuthFailure(ctx, apiErr)
		c.log.Debug().
			Int("status", apiErr.Status).
			Str("method", method).
			Str("path", path).
			Msg(apiErr.Message)
		return nil, apiErr
	}

	return json.RawMessage(raw), nil
}

// settleAuthFailure tears the local session down when the backend rejects
// the credential. This is the only write path into session storage that
// does not originate from explicit login/logout, and for a 401 the message
// is rewritten to a fixed text regardless of what the backend sent.
func (c *Client) settleAuthFailure(ctx context.Context, apiErr *domain.APIError) {
	if apiErr.Status != http.StatusUnauthorized && apiErr.Status != http.StatusForbidden {
		return
	}
	if err := c.storage.Delete(ctx, domain.TokenKey); err != nil {
		c.log.Warn().Err(err).Msg("cannot clear stored token after auth rejection")
	}
	if err := c.storage.Delete(ctx, domain.UserKey); err != nil {
		c.log.Warn().Err(err).Msg("cannot clear identity mirror after auth rejection")
	}
	metrics.SessionTeardownsTotal.Inc()

	if apiErr.Status == http.StatusUnauthorized {
		apiErr.Message = domain.SessionExpiredMessage
	}
}

// currentToken reads the bearer credential from durable storage at call
// time. Absence is normal (anonymous endpoints); other storage errors are
// logged and treated as absence.
func (c *Client) currentToken(ctx context.Context) string {
	token, err := c.storage.Get(ctx, domain.TokenKey)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			c.log.Warn().Err(err).Msg("session storage unreadable, sending unauthenticated request")
		}
		return ""
	}
	return token
}

func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "application/json", nil
	case *Multipart:
		if err := b.Close(); err != nil {
			return nil, "", err
		}
		return b.Reader(), b.ContentType(), nil
	default:
		buf, err := json.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(buf), "application/json", nil
	}
}

// call issues a request and decodes the success body into out. Pass a nil
// out to discard the body.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.do(ctx, method, path, body, nil)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
