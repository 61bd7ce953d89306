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

package server

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"
)

// Options allows behaviour to be defined on the CLI.
type Options struct {
	// ListenAddress tells the server what to listen on, you shouldn't
	// need to change this, its already non-privileged and the default
	// should be modified to avoid clashes with other services e.g prometheus.
	ListenAddress string

	// Revision selects which API shape the server mimics.
	Revision openapi.Revision

	// ReadTimeout defines how long before we give up on the client,
	// this should be fairly short.
	ReadTimeout time.Duration

	// ReadHeaderTimeout defines how long before we give up on the client,
	// this should be fairly short.
	ReadHeaderTimeout time.Duration

	// WriteTimeout defines how long we take to respond before we give up.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds how long in flight requests may take to drain.
	ShutdownTimeout time.Duration
}

// NewOptions returns options with defaults applied.
func NewOptions() *Options {
	return &Options{
		ListenAddress:     ":6080",
		Revision:          openapi.Revision2,
		ReadTimeout:       time.Second,
		ReadHeaderTimeout: time.Second,
		WriteTimeout:      10 * time.Second,
		ShutdownTimeout:   5 * time.Second,
	}
}

// AddFlags adds the options to the CLI flags.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "server-listen-address", o.ListenAddress, "API listener address.")
	f.Var(&o.Revision, "server-revision", "API revision to serve, v1 or v2.")
	f.DurationVar(&o.ReadTimeout, "server-read-timeout", o.ReadTimeout, "How long to wait for the client to send the request body.")
	f.DurationVar(&o.ReadHeaderTimeout, "server-read-header-timeout", o.ReadHeaderTimeout, "How long to wait for the client to send headers.")
	f.DurationVar(&o.WriteTimeout, "server-write-timeout", o.WriteTimeout, "How long to wait for the API to respond to the client.")
	f.DurationVar(&o.ShutdownTimeout, "server-shutdown-timeout", o.ShutdownTimeout, "How long to wait for requests to drain on shutdown.")
}
