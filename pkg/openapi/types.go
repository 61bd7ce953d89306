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
	"net/url"
	"strconv"
	"strings"
)

// Feedback is the envelope returned by every mutating endpoint.
type Feedback struct {
	Feedback string `json:"feedback"`
}

// Reservation is a single record returned by the listing endpoints. Decoding
// fails when the echoed citizen ID is malformed.
type Reservation struct {
	CitizenID   CitizenID `json:"citizen_id"`
	SiteName    string    `json:"site_name"`
	VaccineName string    `json:"vaccine_name"`
	Timestamp   string    `json:"timestamp,omitempty"`
	Checked     bool      `json:"checked"`
}

// Reservations is a list of reservation records.
type Reservations []Reservation

// RegistrationParams are sent as query parameters to the registration endpoint.
// Every field is sent even when blank, the service decides what is missing.
type RegistrationParams struct {
	CitizenID  string
	Name       string
	Surname    string
	BirthDate  string
	Occupation string
	Address    string

	// PhoneNumber and IsRisk were introduced by the second API revision.
	PhoneNumber *string
	IsRisk      *bool
}

// Values encodes the parameters in the order the service documents them.
func (p RegistrationParams) Values() url.Values {
	values := url.Values{
		"citizen_id": {p.CitizenID},
		"name":       {p.Name},
		"surname":    {p.Surname},
		"birth_date": {p.BirthDate},
		"occupation": {p.Occupation},
		"address":    {p.Address},
	}

	if p.PhoneNumber != nil {
		values.Set("phone_number", *p.PhoneNumber)
	}

	if p.IsRisk != nil {
		values.Set("is_risk", FormatRisk(*p.IsRisk))
	}

	return values
}

// FormatRisk renders a risk flag the way the service expects it.
func FormatRisk(risk bool) string {
	// Python style booleans.
	s := strconv.FormatBool(risk)

	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseRisk is the inverse of FormatRisk, it accepts any case.
func ParseRisk(s string) (bool, error) {
	return strconv.ParseBool(strings.ToLower(s))
}

// ReservationParams are sent as query parameters to the reservation endpoint.
type ReservationParams struct {
	CitizenID   string
	SiteName    string
	VaccineName string
}

func (p ReservationParams) Values() url.Values {
	return url.Values{
		"citizen_id":   {p.CitizenID},
		"site_name":    {p.SiteName},
		"vaccine_name": {p.VaccineName},
	}
}
