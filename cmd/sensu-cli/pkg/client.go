// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sensucli

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrTimeout is returned when the API did not answer within the configured timeouts.
var ErrTimeout = errors.New("HTTP connection timed out")

// Response is the raw result of a request.
type Response struct {
	StatusCode int
	Body       []byte
}

// Doer executes a resolved request.
type Doer interface {
	Do(ctx context.Context, d Descriptor) (*Response, error)
}

// Client sends requests to the Sensu API. It holds a single connection for
// the one request an invocation makes.
type Client struct {
	rc  *resty.Client
	log zerolog.Logger
}

// NewClient creates a client for the given settings.
func NewClient(s Settings, log zerolog.Logger) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: s.ConnectTimeout,
		}).DialContext,
		TLSHandshakeTimeout:   s.ConnectTimeout,
		ResponseHeaderTimeout: s.ReadTimeout,
		DisableKeepAlives:     true,
	}

	rc := resty.New().
		SetLogger(restyLogger{log: log}).
		SetTransport(transport).
		SetBaseURL(s.BaseURL()).
		SetTimeout(s.ConnectTimeout+s.ReadTimeout).
		SetHeader("Accept", "application/json")

	if s.SSL {
		log.Warn().Str("host", s.Host).Msg("TLS certificate verification is disabled")
		rc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec
	}

	rc.OnAfterResponse(func(_ *resty.Client, r *resty.Response) error {
		log.Debug().
			Str("method", r.Request.Method).
			Str("url", r.Request.URL).
			Int("status", r.StatusCode()).
			Dur("elapsed", r.Time()).
			Bytes("body", r.Body()).
			Msg("api response")
		return nil
	})

	return &Client{rc: rc, log: log}
}

// Do executes the request described by d. Non-2xx statuses are not errors;
// the caller classifies them.
func (c *Client) Do(ctx context.Context, d Descriptor) (*Response, error) {
	req := c.rc.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if len(d.Query) > 0 {
		req.SetQueryParamsFromValues(d.Query)
	}
	if d.Payload != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(d.Payload)
	}

	c.log.Debug().
		Str("command", d.Command).
		Str("method", string(d.Method)).
		Str("uri", d.URI()).
		Bytes("payload", d.Payload).
		Msg("api request")

	resp, err := req.Execute(string(d.Method), d.Path)
	if err != nil {
		if isTimeout(err) {
			return nil, errors.Wrapf(ErrTimeout, "%s %s", d.Method, d.URI())
		}
		return nil, errors.Wrapf(err, "executing %s %s", d.Method, d.URI())
	}

	return &Response{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// restyLogger routes resty's internal messages to zerolog at debug level;
// failures reach the user through returned errors instead.
type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...interface{})  { l.log.Debug().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }
