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
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"
)

// BirthDateLayout is the DD/MM/YYYY format the service accepts.
const BirthDateLayout = "02/01/2006"

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	//nolint:errcheck // only fails for a blank tag
	validate.RegisterValidation("citizenid", func(fl validator.FieldLevel) bool {
		return openapi.ValidCitizenID(fl.Field().String())
	})

	//nolint:errcheck // only fails for a blank tag
	validate.RegisterValidation("birthdate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(BirthDateLayout, fl.Field().String())

		return err == nil
	})

	return validate
}

// classify reduces validation failures to the single error the service
// reports. A missing attribute wins over a malformed one, and a malformed
// citizen ID wins over any other malformed field.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	var invalidCitizenID, invalidBirthDate bool

	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			return ErrMissingAttribute
		case "citizenid":
			invalidCitizenID = true
		case "birthdate":
			invalidBirthDate = true
		}
	}

	switch {
	case invalidCitizenID:
		return ErrInvalidCitizenID
	case invalidBirthDate:
		return ErrInvalidBirthDate
	}

	return err
}
