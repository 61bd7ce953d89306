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

// Package registry holds the in-memory state of the reference reservation
// service: who is registered and who has reserved which vaccine.
package registry

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Vaccines are the vaccine names the service accepts.
//
//nolint:gochecknoglobals
var Vaccines = []string{"Pfizer", "Astra", "Sinopharm", "Sinovac"}

// Citizen is a registered person.
type Citizen struct {
	CitizenID   string `validate:"required,citizenid"`
	Name        string `validate:"required"`
	Surname     string `validate:"required"`
	BirthDate   string `validate:"required,birthdate"`
	Occupation  string
	Address     string `validate:"required"`
	PhoneNumber string
	IsRisk      bool
}

// ReservationRequest asks for a vaccine at a site.
type ReservationRequest struct {
	CitizenID   string `validate:"required,citizenid"`
	SiteName    string `validate:"required"`
	VaccineName string `validate:"required"`
}

// Reservation is an accepted request.
type Reservation struct {
	CitizenID   string
	SiteName    string
	VaccineName string
	CreatedAt   time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock replaces the time source used to stamp reservations.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// Registry is safe for concurrent use.
type Registry struct {
	lock         sync.Mutex
	validate     *validator.Validate
	now          func() time.Time
	citizens     map[string]Citizen
	reservations map[string]Reservation
}

func New(options ...Option) *Registry {
	r := &Registry{
		validate:     newValidator(),
		now:          time.Now,
		citizens:     map[string]Citizen{},
		reservations: map[string]Reservation{},
	}

	for _, o := range options {
		o(r)
	}

	return r
}

// Register adds a citizen. Registering an existing citizen is an error and
// leaves the original record untouched.
func (r *Registry) Register(citizen Citizen) error {
	if err := classify(r.validate.Struct(citizen)); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.citizens[citizen.CitizenID]; ok {
		return ErrAlreadyRegistered
	}

	r.citizens[citizen.CitizenID] = citizen

	return nil
}

// Reserve records a reservation for a registered citizen.
func (r *Registry) Reserve(request ReservationRequest) (*Reservation, error) {
	if err := classify(r.validate.Struct(request)); err != nil {
		return nil, err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.citizens[request.CitizenID]; !ok {
		return nil, ErrNotRegistered
	}

	if !lo.Contains(Vaccines, request.VaccineName) {
		return nil, ErrInvalidVaccine
	}

	if _, ok := r.reservations[request.CitizenID]; ok {
		return nil, ErrAlreadyReserved
	}

	reservation := Reservation{
		CitizenID:   request.CitizenID,
		SiteName:    request.SiteName,
		VaccineName: request.VaccineName,
		CreatedAt:   r.now(),
	}

	r.reservations[request.CitizenID] = reservation

	return &reservation, nil
}

// lookup checks the citizen ID and returns whether the citizen is registered.
// Must be called with the lock held.
func (r *Registry) lookup(citizenID string) error {
	if err := r.validate.Var(citizenID, "citizenid"); err != nil {
		return ErrInvalidCitizenID
	}

	if _, ok := r.citizens[citizenID]; !ok {
		return ErrNotRegistered
	}

	return nil
}

// Cancel removes the reservation of a citizen.
func (r *Registry) Cancel(citizenID string) error {
	if citizenID == "" {
		return ErrNoCitizenID
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if err := r.lookup(citizenID); err != nil {
		return err
	}

	if _, ok := r.reservations[citizenID]; !ok {
		return ErrNoReservation
	}

	delete(r.reservations, citizenID)

	return nil
}

// Get returns the reservations of a single citizen, which may be empty.
func (r *Registry) Get(citizenID string) ([]Reservation, error) {
	if citizenID == "" {
		return nil, ErrNoCitizenID
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if err := r.lookup(citizenID); err != nil {
		return nil, err
	}

	reservation, ok := r.reservations[citizenID]
	if !ok {
		return []Reservation{}, nil
	}

	return []Reservation{reservation}, nil
}

// List returns every reservation, oldest first.
func (r *Registry) List() []Reservation {
	r.lock.Lock()
	defer r.lock.Unlock()

	reservations := lo.Values(r.reservations)

	slices.SortStableFunc(reservations, func(a, b Reservation) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.CitizenID, b.CitizenID)
	})

	return reservations
}

// Reset forgets all citizens and reservations.
func (r *Registry) Reset() {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.citizens = map[string]Citizen{}
	r.reservations = map[string]Reservation{}
}
