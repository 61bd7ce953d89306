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

	"github.com/nscaledev/wcg-reservation/test/api"
)

var _ = Describe("Citizen registration", Label("registration"), func() {
	var client *api.APIClient

	BeforeEach(func() {
		client = newClient(config.Revision)
	})

	Context("When registering a new citizen", func() {
		Describe("Given valid details", func() {
			It("should register the citizen once", func() {
				params := api.NewCitizen(client.Revision()).WithCitizenID(api.GenerateCitizenID()).Build()

				Expect(client.RegisterFeedback(ctx, params)).To(Equal("registration success!"))
				Expect(client.RegisterFeedback(ctx, params)).To(Equal("registration failed: this person already registered"))
			})

			It("should allow the citizen to reserve", func() {
				citizenID := api.GenerateCitizenID()

				Expect(client.RegisterFeedback(ctx, api.NewCitizen(client.Revision()).WithCitizenID(citizenID).Build())).
					To(Equal("registration success!"))

				api.ReserveWithCleanup(client, ctx, api.NewReservation().WithCitizenID(citizenID).Build())
			})

			It("should register a citizen without an occupation", func() {
				params := api.NewCitizen(client.Revision()).WithCitizenID(api.GenerateCitizenID()).WithOccupation("").Build()

				Expect(client.RegisterFeedback(ctx, params)).To(Equal("registration success!"))
			})
		})

		Describe("Given invalid details", func() {
			DescribeTable("should reject the registration with feedback",
				func(build func(*api.CitizenBuilder) *api.CitizenBuilder, expected string) {
					params := build(api.NewCitizen(client.Revision()).WithCitizenID(api.GenerateCitizenID())).Build()

					Expect(client.RegisterFeedback(ctx, params)).To(Equal(expected))
				},
				Entry("blank citizen ID",
					func(b *api.CitizenBuilder) *api.CitizenBuilder { return b.WithCitizenID("") },
					"registration failed: missing some attribute"),
				Entry("blank name",
					func(b *api.CitizenBuilder) *api.CitizenBuilder { return b.WithName("") },
					"registration failed: missing some attribute"),
				Entry("citizen ID less than 13 digits",
					func(b *api.CitizenBuilder) *api.CitizenBuilder { return b.WithCitizenID("444444444444") },
					"registration failed: invalid citizen ID"),
				Entry("birth date in the wrong format",
					func(b *api.CitizenBuilder) *api.CitizenBuilder { return b.WithBirthDate("2001-04-04") },
					"registration failed: invalid birth date format"),
			)
		})
	})
})
