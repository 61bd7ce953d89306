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
	"fmt"
	"math/rand/v2"

	"k8s.io/utils/ptr"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"
)

const (
	// CitizenID is the citizen every scenario registers.
	CitizenID = "4444444444444"

	// UnregisteredCitizenID is well formed but never registered.
	UnregisteredCitizenID = "1234567894444"

	SiteName           = "OGYH Site"
	VaccineName        = "Astra"
	UnknownVaccineName = "SINoALICE"
)

// CitizenBuilder builds registration parameters for testing.
type CitizenBuilder struct {
	params openapi.RegistrationParams
}

// NewCitizen returns Tetra Quad, shaped for the revision: revision 1 expects an
// occupation, revision 2 a phone number and a risk flag.
func NewCitizen(revision openapi.Revision) *CitizenBuilder {
	params := openapi.RegistrationParams{
		CitizenID: CitizenID,
		Name:      "Tetra",
		Surname:   "Quad",
		BirthDate: "04/04/2001",
		Address:   "home",
	}

	switch revision {
	case openapi.Revision1:
		params.Occupation = "human"
	case openapi.Revision2:
		params.PhoneNumber = ptr.To("0944444444")
		params.IsRisk = ptr.To(false)
	}

	return &CitizenBuilder{
		params: params,
	}
}

func (b *CitizenBuilder) WithCitizenID(citizenID string) *CitizenBuilder {
	b.params.CitizenID = citizenID
	return b
}

func (b *CitizenBuilder) WithName(name string) *CitizenBuilder {
	b.params.Name = name
	return b
}

func (b *CitizenBuilder) WithBirthDate(birthDate string) *CitizenBuilder {
	b.params.BirthDate = birthDate
	return b
}

func (b *CitizenBuilder) WithOccupation(occupation string) *CitizenBuilder {
	b.params.Occupation = occupation
	return b
}

// Build returns the completed parameters.
func (b *CitizenBuilder) Build() openapi.RegistrationParams {
	return b.params
}

// ReservationBuilder builds reservation parameters for testing.
type ReservationBuilder struct {
	params openapi.ReservationParams
}

// NewReservation returns an Astra reservation at OGYH Site for CitizenID.
func NewReservation() *ReservationBuilder {
	return &ReservationBuilder{
		params: openapi.ReservationParams{
			CitizenID:   CitizenID,
			SiteName:    SiteName,
			VaccineName: VaccineName,
		},
	}
}

func (b *ReservationBuilder) WithCitizenID(citizenID string) *ReservationBuilder {
	b.params.CitizenID = citizenID
	return b
}

func (b *ReservationBuilder) WithSiteName(siteName string) *ReservationBuilder {
	b.params.SiteName = siteName
	return b
}

func (b *ReservationBuilder) WithVaccineName(vaccineName string) *ReservationBuilder {
	b.params.VaccineName = vaccineName
	return b
}

func (b *ReservationBuilder) Build() openapi.ReservationParams {
	return b.params
}

// GenerateCitizenID returns a random well formed citizen ID for tests that
// must not collide with the shared citizen.
func GenerateCitizenID() string {
	//nolint:gosec // not security sensitive
	return fmt.Sprintf("9%012d", rand.Int64N(1_000_000_000_000))
}
