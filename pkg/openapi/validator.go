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

package openapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

// Validator checks responses from the remote service against the contract.
type Validator struct {
	router routers.Router
}

// NewValidator loads the embedded contract and builds a router over it.
func NewValidator() (*Validator, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("creating openapi router: %w", err)
	}

	return &Validator{
		router: router,
	}, nil
}

// ValidateResponse checks the status and body of a response to the given request.
// Requests that the contract does not describe, for example a blank path
// parameter, are not checked since the service answers them with a bare 404.
func (v *Validator) ValidateResponse(ctx context.Context, req *http.Request, statusCode int, header http.Header, body []byte) error {
	if path := req.URL.Path; len(path) > 1 && strings.HasSuffix(path, "/") {
		return nil
	}

	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		var routeErr *routers.RouteError
		if errors.As(err, &routeErr) {
			return nil
		}

		return fmt.Errorf("finding route: %w", err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: statusCode,
		Header: header,
		Body:   io.NopCloser(bytes.NewReader(body)),
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("response violates contract: %w", err)
	}

	return nil
}
