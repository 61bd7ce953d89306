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
	"time"

	"github.com/spf13/pflag"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"
)

// Options configures a Client.
type Options struct {
	// BaseURL is the scheme and host of the service, without a trailing path.
	BaseURL string

	// Revision selects the endpoint shapes to use.
	Revision openapi.Revision

	// Timeout bounds a single HTTP exchange.
	Timeout time.Duration

	// Retries is how many times a failed read is retried. Writes are only
	// retried when the connection could not be made.
	Retries uint64

	// RetryInterval is the first backoff interval, it doubles on each retry.
	RetryInterval time.Duration

	// ValidateContract checks every response against the embedded OpenAPI document.
	ValidateContract bool

	// LogRequests and LogResponses emit a line per exchange and its body.
	LogRequests  bool
	LogResponses bool
}

// NewOptions returns options with defaults applied.
func NewOptions() *Options {
	return &Options{
		BaseURL:       "http://localhost:6080",
		Revision:      openapi.Revision2,
		Timeout:       30 * time.Second,
		Retries:       2,
		RetryInterval: 200 * time.Millisecond,
	}
}

// AddFlags adds the options to the CLI flags.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.BaseURL, "base-url", o.BaseURL, "Base URL of the reservation service.")
	f.Var(&o.Revision, "revision", "API revision spoken by the service, v1 or v2.")
	f.DurationVar(&o.Timeout, "timeout", o.Timeout, "Timeout of a single request.")
	f.Uint64Var(&o.Retries, "retries", o.Retries, "Retries on transport errors and server errors, writes only retry failed connections.")
	f.DurationVar(&o.RetryInterval, "retry-interval", o.RetryInterval, "Initial retry backoff.")
	f.BoolVar(&o.ValidateContract, "validate-contract", o.ValidateContract, "Validate responses against the OpenAPI contract.")
	f.BoolVar(&o.LogRequests, "log-requests", o.LogRequests, "Log every request.")
	f.BoolVar(&o.LogResponses, "log-responses", o.LogResponses, "Log every response body.")
}
