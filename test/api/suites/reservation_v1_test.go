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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"
	"github.com/nscaledev/wcg-reservation/test/api"
)

var _ = Describe("Reservation API revision 1", Label("v1"), func() {
	var client *api.APIClient

	BeforeEach(func() {
		client = newClient(openapi.Revision1)

		api.RegisterCitizen(client, ctx, api.NewCitizen(openapi.Revision1).Build())
		api.ClearReservation(client, ctx, api.CitizenID)
	})

	currentClient := func() *api.APIClient {
		return client
	}

	Context("When listing reservations", func() {
		Describe("Given the collection endpoint", func() {
			It("should answer with a list", func() {
				response, err := client.ListReservations(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusOK))
			})

			It("should include a new reservation", func() {
				api.ReserveWithCleanup(client, ctx, api.NewReservation().Build())

				response, err := client.ListReservations(ctx)
				Expect(err).NotTo(HaveOccurred())

				reservations, err := response.Reservations()
				Expect(err).NotTo(HaveOccurred())

				api.VerifyReservationPresence(reservations, []string{api.CitizenID})
			})
		})
	})

	Context("When reserving a vaccine", func() {
		Describe("Given a registered citizen", func() {
			bookingSpecs(currentClient)
		})

		Describe("Given invalid parameters", func() {
			reservationValidationSpecs(currentClient)
		})
	})

	Context("When cancelling a reservation", func() {
		Describe("Given the citizen holds a reservation", func() {
			It("should cancel successfully", func() {
				api.Reserve(client, ctx, api.NewReservation().Build())

				Expect(client.CancelFeedback(ctx, api.CitizenID)).To(Equal("cancel reservation successfully"))
			})
		})

		Describe("Given the citizen holds no reservation", func() {
			It("should report there is nothing to cancel", func() {
				Expect(client.CancelFeedback(ctx, api.CitizenID)).
					To(Equal("cancel reservation failed: there is no reservation for this citizen"))
			})
		})

		Describe("Given an invalid citizen ID", func() {
			cancellationValidationSpecs(currentClient)

			It("should report a blank citizen ID", func() {
				Expect(client.CancelFeedback(ctx, "")).To(Equal("cancel reservation failed: no citizen id is given"))
			})
		})
	})
})
