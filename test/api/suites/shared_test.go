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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"
	"github.com/nscaledev/wcg-reservation/test/api"
)

// reservationValidationSpecs holds the reservation rules both revisions share.
func reservationValidationSpecs(client func() *api.APIClient) {
	DescribeTable("should reject the reservation with feedback",
		func(params openapi.ReservationParams, expected string) {
			Expect(client().ReserveFeedback(ctx, params)).To(Equal(expected))
		},
		Entry("citizen ID less than 13 digits", api.NewReservation().WithCitizenID("444444444444").Build(), "reservation failed: invalid citizen ID"),
		Entry("citizen ID more than 13 digits", api.NewReservation().WithCitizenID("44444444444444").Build(), "reservation failed: invalid citizen ID"),
		Entry("alphabetic citizen ID", api.NewReservation().WithCitizenID("fourinthirtee").Build(), "reservation failed: invalid citizen ID"),
		Entry("symbolic citizen ID", api.NewReservation().WithCitizenID("@@@@@@@@@@@@@").Build(), "reservation failed: invalid citizen ID"),
		Entry("non registered citizen ID", api.NewReservation().WithCitizenID(api.UnregisteredCitizenID).Build(), "reservation failed: citizen ID is not registered"),
		Entry("blank citizen ID", api.NewReservation().WithCitizenID("").Build(), "reservation failed: missing some attribute"),
		Entry("blank site name", api.NewReservation().WithSiteName("").Build(), "reservation failed: missing some attribute"),
		// Revision 1 was seen answering "report failed: invalid vaccine name".
		Entry("non existent vaccine", api.NewReservation().WithVaccineName(api.UnknownVaccineName).Build(), "reservation failed: invalid vaccine name"),
		Entry("blank vaccine name", api.NewReservation().WithVaccineName("").Build(), "reservation failed: missing some attribute"),
	)
}

// cancellationValidationSpecs holds the cancellation rules both revisions share.
func cancellationValidationSpecs(client func() *api.APIClient) {
	DescribeTable("should reject the cancellation with feedback",
		func(citizenID, expected string) {
			Expect(client().CancelFeedback(ctx, citizenID)).To(Equal(expected))
		},
		Entry("citizen ID less than 13 digits", "444444444444", "cancel reservation failed: invalid citizen ID"),
		Entry("citizen ID more than 13 digits", "44444444444444", "cancel reservation failed: invalid citizen ID"),
		Entry("alphabetic citizen ID", "fourinthirtee", "cancel reservation failed: invalid citizen ID"),
		Entry("symbolic citizen ID", "@@@@@@@@@@@@@", "cancel reservation failed: invalid citizen ID"),
		// Revision 1 was seen answering "reservation failed: citizen ID is not registered".
		Entry("non registered citizen ID", api.UnregisteredCitizenID, "cancel reservation failed: citizen ID is not registered"),
	)
}

// bookingSpecs covers reserving and double booking for the shared citizen.
func bookingSpecs(client func() *api.APIClient) {
	It("should reserve successfully", func() {
		api.ReserveWithCleanup(client(), ctx, api.NewReservation().Build())
	})

	It("should refuse a second reservation for the same citizen", func() {
		api.ReserveWithCleanup(client(), ctx, api.NewReservation().Build())

		Expect(client().ReserveFeedback(ctx, api.NewReservation().Build())).
			To(Equal("reservation failed: there is already a reservation for this citizen"))
	})
}
