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

package registry

import (
	"errors"
)

// Error text is what the service appends to "<operation> failed: ".
var (
	ErrMissingAttribute  = errors.New("missing some attribute")
	ErrInvalidCitizenID  = errors.New("invalid citizen ID")
	ErrInvalidBirthDate  = errors.New("invalid birth date format")
	ErrInvalidRiskFlag   = errors.New("invalid risk flag")
	ErrAlreadyRegistered = errors.New("this person already registered")
	ErrNotRegistered     = errors.New("citizen ID is not registered")
	ErrInvalidVaccine    = errors.New("invalid vaccine name")
	ErrAlreadyReserved   = errors.New("there is already a reservation for this citizen")
	ErrNoReservation     = errors.New("there is no reservation for this citizen")
	ErrNoCitizenID       = errors.New("no citizen id is given")
)
