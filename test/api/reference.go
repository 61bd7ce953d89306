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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"
	"github.com/nscaledev/wcg-reservation/pkg/server"
)

// ReferenceServer is an in-process service speaking one API revision.
type ReferenceServer struct {
	*httptest.Server

	server *server.Server
}

// StartReferenceServer starts a server and closes it when the calling node
// is cleaned up.
func StartReferenceServer(revision openapi.Revision) *ReferenceServer {
	options := server.NewOptions()
	options.Revision = revision

	s := server.New(options)

	reference := &ReferenceServer{
		Server: httptest.NewServer(s.Handler()),
		server: s,
	}

	GinkgoWriter.Printf("Started reference server for API %s at %s\n", revision, reference.URL)

	DeferCleanup(reference.Close)

	return reference
}

// Reset forgets all citizens and reservations.
func (r *ReferenceServer) Reset() {
	r.server.Registry().Reset()
}
