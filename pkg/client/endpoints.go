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
	"net/url"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"
)

// Endpoints maps operations to paths for an API revision.
type Endpoints struct {
	revision openapi.Revision
}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints(revision openapi.Revision) *Endpoints {
	return &Endpoints{
		revision: revision,
	}
}

func (e *Endpoints) Registration() string {
	return "/registration"
}

func (e *Endpoints) Reservation() string {
	return "/reservation"
}

func (e *Endpoints) ListReservations() string {
	if e.revision == openapi.Revision1 {
		return "/reservation"
	}

	return "/reservations"
}

// GetReservation only exists in revision 2. A blank ID yields the bare
// collection path, which the service does not route.
func (e *Endpoints) GetReservation(citizenID string) string {
	return "/reservation/" + url.PathEscape(citizenID)
}

// CancelReservation returns the path and query used to cancel. Revision 1
// takes the citizen as a query parameter, revision 2 in the path.
func (e *Endpoints) CancelReservation(citizenID string) (string, url.Values) {
	if e.revision == openapi.Revision1 {
		return "/reservation", url.Values{"citizen_id": {citizenID}}
	}

	return "/reservation/" + url.PathEscape(citizenID), nil
}
