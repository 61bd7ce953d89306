/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package client talks to the vaccine reservation service.
package client

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	// ErrServerError is returned when the service keeps answering 5xx.
	ErrServerError = errors.New("server error")

	// ErrUnexpectedBody is returned when a body cannot be decoded, including
	// reservations echoing a malformed citizen ID.
	ErrUnexpectedBody = errors.New("unexpected response body")

	// ErrContractViolation is returned when a response does not match the contract.
	ErrContractViolation = errors.New("contract violation")

	// ErrInvalidBaseURL is returned when the base URL lacks a scheme or host.
	ErrInvalidBaseURL = errors.New("invalid base URL")
)

type Client struct {
	baseURL       string
	client        *http.Client
	endpoints     *Endpoints
	retries       uint64
	retryInterval time.Duration
	validator     *openapi.Validator
	logRequests   bool
	logResponses  bool
}

func New(options *Options) (*Client, error) {
	u, err := url.Parse(options.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q must include a scheme and host", ErrInvalidBaseURL, options.BaseURL)
	}

	c := &Client{
		baseURL: strings.TrimSuffix(options.BaseURL, "/"),
		client: &http.Client{
			Timeout: options.Timeout,
		},
		endpoints:     NewEndpoints(options.Revision),
		retries:       options.Retries,
		retryInterval: options.RetryInterval,
		logRequests:   options.LogRequests,
		logResponses:  options.LogResponses,
	}

	if c.retryInterval <= 0 {
		c.retryInterval = 100 * time.Millisecond
	}

	if options.ValidateContract {
		validator, err := openapi.NewValidator()
		if err != nil {
			return nil, err
		}

		c.validator = validator
	}

	return c, nil
}

func (c *Client) Register(ctx context.Context, params openapi.RegistrationParams) (*Response, error) {
	return c.Do(ctx, http.MethodPost, c.endpoints.Registration(), params.Values())
}

func (c *Client) Reserve(ctx context.Context, params openapi.ReservationParams) (*Response, error) {
	return c.Do(ctx, http.MethodPost, c.endpoints.Reservation(), params.Values())
}

func (c *Client) ListReservations(ctx context.Context) (*Response, error) {
	return c.Do(ctx, http.MethodGet, c.endpoints.ListReservations(), nil)
}

func (c *Client) GetReservation(ctx context.Context, citizenID string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, c.endpoints.GetReservation(citizenID), nil)
}

func (c *Client) Cancel(ctx context.Context, citizenID string) (*Response, error) {
	path, query := c.endpoints.CancelReservation(citizenID)

	return c.Do(ctx, http.MethodDelete, path, query)
}

// newTraceContext starts a fresh W3C trace per call so a failure can be
// found in the service's logs.
func newTraceContext(ctx context.Context) (context.Context, trace.SpanContext) {
	var (
		traceID trace.TraceID
		spanID  trace.SpanID
	)

	_, _ = rand.Read(traceID[:])
	_, _ = rand.Read(spanID[:])

	spanContext := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})

	return trace.ContextWithRemoteSpanContext(ctx, spanContext), spanContext
}

// replayable is true for methods that leave the service unchanged. Only these
// are retried after the service may have seen the request.
func replayable(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

// notSent is true when the connection could not be made, so the service
// cannot have acted on the request.
func notSent(err error) bool {
	var opErr *net.OpError

	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// Do issues a request and reads the whole response. Any status is returned
// to the caller, only transport errors and 5xx are errors. Reads are retried
// on both, writes only when the connection could not be made.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values) (*Response, error) {
	ctx, spanContext := newTraceContext(ctx)

	traceID := spanContext.TraceID().String()

	log := log.FromContext(ctx).WithValues("method", method, "path", path, "traceID", traceID)

	var response *Response

	backoff := retry.WithMaxRetries(c.retries, retry.NewExponential(c.retryInterval))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, req, err := c.do(ctx, method, path, query)
		if err != nil {
			log.Info("request failed", "error", err.Error())

			if replayable(method) || notSent(err) {
				return retry.RetryableError(err)
			}

			return err
		}

		response = r
		response.TraceID = traceID

		if response.StatusCode >= http.StatusInternalServerError {
			log.Info("server error", "status", response.StatusCode)

			serverErr := fmt.Errorf("%w: status %d", ErrServerError, response.StatusCode)

			if replayable(method) {
				return retry.RetryableError(serverErr)
			}

			return serverErr
		}

		if c.validator != nil {
			if err := c.validator.ValidateResponse(ctx, req, response.StatusCode, response.Header, response.Body); err != nil {
				return fmt.Errorf("%w: %w", ErrContractViolation, err)
			}
		}

		return nil
	})
	if err != nil {
		// The response is still useful for diagnosis.
		if response != nil && (errors.Is(err, ErrServerError) || errors.Is(err, ErrContractViolation)) {
			return response, fmt.Errorf("%s %s (trace ID: %s): %w", method, path, traceID, err)
		}

		return nil, fmt.Errorf("%s %s (trace ID: %s): %w", method, path, traceID, err)
	}

	return response, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values) (*Response, *http.Request, error) {
	fullURL := c.baseURL + path

	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	propagation.TraceContext{}.Inject(ctx, propagation.HeaderCarrier(req.Header))

	log := log.FromContext(ctx)

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.logRequests {
		log.Info("request complete", "method", method, "url", fullURL, "status", resp.StatusCode, "duration", duration.String())
	}

	if c.logResponses && len(body) > 0 {
		log.Info("response body", "method", method, "url", fullURL, "body", string(body))
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}

	return response, req, nil
}
