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

package handler

import (
	"time"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"
	"github.com/nscaledev/wcg-reservation/pkg/registry"
)

// convertReservation never reports a reservation as checked, doses are not
// administered by this service.
func convertReservation(in registry.Reservation) openapi.Reservation {
	return openapi.Reservation{
		CitizenID:   openapi.CitizenID{Value: in.CitizenID},
		SiteName:    in.SiteName,
		VaccineName: in.VaccineName,
		Timestamp:   in.CreatedAt.UTC().Format(time.RFC3339),
		Checked:     false,
	}
}

// convertReservations never returns nil so an empty list encodes as [].
func convertReservations(in []registry.Reservation) openapi.Reservations {
	out := make(openapi.Reservations, len(in))

	for i := range in {
		out[i] = convertReservation(in[i])
	}

	return out
}
