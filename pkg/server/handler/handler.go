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
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"
	"github.com/nscaledev/wcg-reservation/pkg/registry"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

type Handler struct {
	// registry holds citizens and their reservations.
	registry *registry.Registry

	// revision selects which API shape is served.
	revision openapi.Revision
}

func New(registry *registry.Registry, revision openapi.Revision) *Handler {
	return &Handler{
		registry: registry,
		revision: revision,
	}
}

// Routes attaches the endpoints of the configured revision to the router.
func (h *Handler) Routes(router chi.Router) {
	router.Post("/registration", h.PostRegistration)
	router.Post("/reservation", h.PostReservation)

	switch h.revision {
	case openapi.Revision1:
		router.Get("/reservation", h.GetReservations)
		router.Delete("/reservation", h.DeleteReservationByQuery)
	case openapi.Revision2:
		router.Get("/reservations", h.GetReservations)
		router.Get("/reservation/{citizen_id}", h.GetReservation)
		router.Delete("/reservation/{citizen_id}", h.DeleteReservation)
	}
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	h.setUncacheable(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.FromContext(r.Context()).Error(err, "failed to write response")
	}
}

// writeFeedback reports the outcome of an operation. The service always
// answers 200 and puts the verdict in the text.
func (h *Handler) writeFeedback(w http.ResponseWriter, r *http.Request, op operation, err error) {
	if err != nil && !isServiceError(err) {
		log.FromContext(r.Context()).Error(err, "unhandled error", "operation", op)

		h.writeJSON(w, r, http.StatusInternalServerError, openapi.Feedback{Feedback: failure(op, err)})

		return
	}

	if err != nil {
		h.writeJSON(w, r, http.StatusOK, openapi.Feedback{Feedback: failure(op, err)})
		return
	}

	h.writeJSON(w, r, http.StatusOK, openapi.Feedback{Feedback: success(h.revision, op)})
}

func (h *Handler) PostRegistration(w http.ResponseWriter, r *http.Request) {
	params, err := bindRegistrationParams(r)
	if err != nil {
		h.writeFeedback(w, r, operationRegistration, err)
		return
	}

	citizen, err := params.citizen()
	if err != nil {
		h.writeFeedback(w, r, operationRegistration, err)
		return
	}

	if err := h.registry.Register(citizen); err != nil {
		h.writeFeedback(w, r, operationRegistration, err)
		return
	}

	log.FromContext(r.Context()).Info("citizen registered", "citizenID", citizen.CitizenID)

	h.writeFeedback(w, r, operationRegistration, nil)
}

func (h *Handler) PostReservation(w http.ResponseWriter, r *http.Request) {
	params, err := bindReservationParams(r)
	if err != nil {
		h.writeFeedback(w, r, operationReservation, err)
		return
	}

	reservation, err := h.registry.Reserve(params.request())
	if err != nil {
		h.writeFeedback(w, r, operationReservation, err)
		return
	}

	log.FromContext(r.Context()).Info("reservation created", "citizenID", reservation.CitizenID, "site", reservation.SiteName, "vaccine", reservation.VaccineName)

	h.writeFeedback(w, r, operationReservation, nil)
}

func (h *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, convertReservations(h.registry.List()))
}

func (h *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	citizenID, err := bindCitizenIDPath(r)
	if err != nil {
		h.writeJSON(w, r, http.StatusNotFound, openapi.Feedback{Feedback: failure(operationReservation, err)})
		return
	}

	reservations, err := h.registry.Get(citizenID)
	if err != nil {
		if !isServiceError(err) {
			h.writeFeedback(w, r, operationReservation, err)
			return
		}

		h.writeJSON(w, r, http.StatusNotFound, openapi.Feedback{Feedback: failure(operationReservation, err)})

		return
	}

	h.writeJSON(w, r, http.StatusOK, convertReservations(reservations))
}

func (h *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	citizenID, err := bindCitizenIDPath(r)
	if err != nil {
		h.writeFeedback(w, r, operationCancel, err)
		return
	}

	h.cancel(w, r, citizenID)
}

func (h *Handler) DeleteReservationByQuery(w http.ResponseWriter, r *http.Request) {
	citizenID, err := bindCitizenIDQuery(r)
	if err != nil {
		h.writeFeedback(w, r, operationCancel, err)
		return
	}

	h.cancel(w, r, citizenID)
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request, citizenID string) {
	if err := h.registry.Cancel(citizenID); err != nil {
		h.writeFeedback(w, r, operationCancel, err)
		return
	}

	log.FromContext(r.Context()).Info("reservation cancelled", "citizenID", citizenID)

	h.writeFeedback(w, r, operationCancel, nil)
}

// isServiceError is true for the validation outcomes the service reports
// as feedback rather than as a failure.
func isServiceError(err error) bool {
	for _, target := range []error{
		registry.ErrMissingAttribute,
		registry.ErrInvalidCitizenID,
		registry.ErrInvalidBirthDate,
		registry.ErrInvalidRiskFlag,
		registry.ErrAlreadyRegistered,
		registry.ErrNotRegistered,
		registry.ErrInvalidVaccine,
		registry.ErrAlreadyReserved,
		registry.ErrNoReservation,
		registry.ErrNoCitizenID,
		ErrParameter,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
