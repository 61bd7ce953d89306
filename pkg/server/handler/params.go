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
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"
	"github.com/nscaledev/wcg-reservation/pkg/registry"

	"k8s.io/utils/ptr"
)

// ErrParameter is returned when a parameter cannot be decoded.
var ErrParameter = errors.New("invalid parameter")

type registrationParams struct {
	CitizenID   *string
	Name        *string
	Surname     *string
	BirthDate   *string
	Occupation  *string
	Address     *string
	PhoneNumber *string
	IsRisk      *string
}

type reservationParams struct {
	CitizenID   *string
	SiteName    *string
	VaccineName *string
}

// bindQuery binds optional form style query parameters.
func bindQuery(r *http.Request, bindings map[string]**string) error {
	query := r.URL.Query()

	for name, dest := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, name, query, dest); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrParameter, name, err)
		}
	}

	return nil
}

func bindRegistrationParams(r *http.Request) (*registrationParams, error) {
	params := &registrationParams{}

	bindings := map[string]**string{
		"citizen_id":   &params.CitizenID,
		"name":         &params.Name,
		"surname":      &params.Surname,
		"birth_date":   &params.BirthDate,
		"occupation":   &params.Occupation,
		"address":      &params.Address,
		"phone_number": &params.PhoneNumber,
		"is_risk":      &params.IsRisk,
	}

	if err := bindQuery(r, bindings); err != nil {
		return nil, err
	}

	return params, nil
}

func (p *registrationParams) citizen() (registry.Citizen, error) {
	citizen := registry.Citizen{
		CitizenID:   ptr.Deref(p.CitizenID, ""),
		Name:        ptr.Deref(p.Name, ""),
		Surname:     ptr.Deref(p.Surname, ""),
		BirthDate:   ptr.Deref(p.BirthDate, ""),
		Occupation:  ptr.Deref(p.Occupation, ""),
		Address:     ptr.Deref(p.Address, ""),
		PhoneNumber: ptr.Deref(p.PhoneNumber, ""),
	}

	if risk := ptr.Deref(p.IsRisk, ""); risk != "" {
		isRisk, err := openapi.ParseRisk(risk)
		if err != nil {
			return citizen, registry.ErrInvalidRiskFlag
		}

		citizen.IsRisk = isRisk
	}

	return citizen, nil
}

func bindReservationParams(r *http.Request) (*reservationParams, error) {
	params := &reservationParams{}

	bindings := map[string]**string{
		"citizen_id":   &params.CitizenID,
		"site_name":    &params.SiteName,
		"vaccine_name": &params.VaccineName,
	}

	if err := bindQuery(r, bindings); err != nil {
		return nil, err
	}

	return params, nil
}

func (p *reservationParams) request() registry.ReservationRequest {
	return registry.ReservationRequest{
		CitizenID:   ptr.Deref(p.CitizenID, ""),
		SiteName:    ptr.Deref(p.SiteName, ""),
		VaccineName: ptr.Deref(p.VaccineName, ""),
	}
}

func bindCitizenIDQuery(r *http.Request) (string, error) {
	var citizenID *string

	if err := bindQuery(r, map[string]**string{"citizen_id": &citizenID}); err != nil {
		return "", err
	}

	return ptr.Deref(citizenID, ""), nil
}

func bindCitizenIDPath(r *http.Request) (string, error) {
	var citizenID string

	err := runtime.BindStyledParameterWithOptions("simple", "citizen_id", chi.URLParam(r, "citizen_id"), &citizenID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", fmt.Errorf("%w: citizen_id: %w", ErrParameter, err)
	}

	return citizenID, nil
}
