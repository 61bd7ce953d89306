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
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"
)

const (
	registrationSuccess  = "registration success!"
	registrationRepeated = "registration failed: this person already registered"
	reservationSuccess   = "reservation success!"
)

// RegisterCitizen registers a citizen, a citizen left over from an earlier
// run is fine.
func RegisterCitizen(client *APIClient, ctx context.Context, params openapi.RegistrationParams) {
	feedback, err := client.RegisterFeedback(ctx, params)
	Expect(err).NotTo(HaveOccurred())
	Expect(feedback).To(BeElementOf(registrationSuccess, registrationRepeated))
}

// ClearReservation cancels any reservation the citizen holds, the outcome is
// not checked.
func ClearReservation(client *APIClient, ctx context.Context, citizenID string) {
	feedback, err := client.CancelFeedback(ctx, citizenID)
	if err != nil {
		GinkgoWriter.Printf("Clearing reservation for %s failed: %v\n", citizenID, err)
		return
	}

	GinkgoWriter.Printf("Cleared reservation for %s: %s\n", citizenID, feedback)
}

// Reserve reserves and expects success.
func Reserve(client *APIClient, ctx context.Context, params openapi.ReservationParams) {
	Expect(client.ReserveFeedback(ctx, params)).To(Equal(reservationSuccess))
}

// ReserveWithCleanup reserves and schedules cancellation so the shared
// citizen is free for the next spec.
func ReserveWithCleanup(client *APIClient, ctx context.Context, params openapi.ReservationParams) {
	Reserve(client, ctx, params)

	DeferCleanup(func(ctx context.Context) {
		ClearReservation(client, ctx, params.CitizenID)
	})
}

// VerifyReservationPresence verifies that the citizens hold reservations in the list.
func VerifyReservationPresence(reservations openapi.Reservations, expectedCitizenIDs []string) {
	citizenIDs := set.New[string](extractCitizenIDs(reservations)...)

	var missing []string

	for citizenID := range set.New[string](expectedCitizenIDs...).Difference(citizenIDs).All() {
		missing = append(missing, citizenID)
	}

	Expect(missing).To(BeEmpty(), "Expected every citizen to hold a reservation")
}

func extractCitizenIDs(reservations openapi.Reservations) []string {
	citizenIDs := make([]string, len(reservations))

	for i, reservation := range reservations {
		citizenIDs[i] = reservation.CitizenID.String()
	}

	return citizenIDs
}
