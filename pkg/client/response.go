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

package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"
)

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	// TraceID identifies the request in the service's logs.
	TraceID string
}

// Feedback decodes the feedback envelope.
func (r *Response) Feedback() (string, error) {
	var feedback openapi.Feedback

	if err := json.Unmarshal(r.Body, &feedback); err != nil {
		return "", fmt.Errorf("%w: decoding feedback from %q: %w", ErrUnexpectedBody, r.Body, err)
	}

	return feedback.Feedback, nil
}

// Reservations decodes a reservation list.
func (r *Response) Reservations() (openapi.Reservations, error) {
	var reservations openapi.Reservations

	if err := json.Unmarshal(r.Body, &reservations); err != nil {
		return nil, fmt.Errorf("%w: decoding reservations from %q: %w", ErrUnexpectedBody, r.Body, err)
	}

	return reservations, nil
}
