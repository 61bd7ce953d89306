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

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nscaledev/wcg-reservation/pkg/client"
	"github.com/nscaledev/wcg-reservation/pkg/openapi"
)

// APIClient adds feedback helpers to the service client. Requests are logged
// through the logger in the context, the suites install GinkgoLogr there.
type APIClient struct {
	*client.Client

	revision openapi.Revision
}

// NewAPIClientWithConfig returns a client for the revision at the configured location.
func NewAPIClientWithConfig(config *TestConfig, revision openapi.Revision) (*APIClient, error) {
	baseURL, err := config.BaseURLFor(revision)
	if err != nil {
		return nil, err
	}

	c, err := client.New(config.ClientOptions(baseURL, revision))
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return &APIClient{
		Client:   c,
		revision: revision,
	}, nil
}

func (c *APIClient) Revision() openapi.Revision {
	return c.revision
}

// feedback extracts the feedback literal, the status must be 200.
func feedback(response *client.Response, err error) (string, error) {
	if err != nil {
		return "", err
	}

	f, err := response.Feedback()
	if err != nil {
		return "", fmt.Errorf("status %d (trace ID: %s): %w", response.StatusCode, response.TraceID, err)
	}

	if response.StatusCode != http.StatusOK {
		return f, fmt.Errorf("unexpected status code: expected 200, got %d, feedback: %s (trace ID: %s)", response.StatusCode, f, response.TraceID)
	}

	return f, nil
}

func (c *APIClient) RegisterFeedback(ctx context.Context, params openapi.RegistrationParams) (string, error) {
	return feedback(c.Register(ctx, params))
}

func (c *APIClient) ReserveFeedback(ctx context.Context, params openapi.ReservationParams) (string, error) {
	return feedback(c.Reserve(ctx, params))
}

func (c *APIClient) CancelFeedback(ctx context.Context, citizenID string) (string, error) {
	return feedback(c.Cancel(ctx, citizenID))
}

// GetReservations returns the status code and the decoded list when the
// status is 200.
func (c *APIClient) GetReservations(ctx context.Context, citizenID string) (int, openapi.Reservations, error) {
	response, err := c.GetReservation(ctx, citizenID)
	if err != nil {
		return 0, nil, err
	}

	if response.StatusCode != http.StatusOK {
		return response.StatusCode, nil, nil
	}

	reservations, err := response.Reservations()
	if err != nil {
		return response.StatusCode, nil, err
	}

	return response.StatusCode, reservations, nil
}
