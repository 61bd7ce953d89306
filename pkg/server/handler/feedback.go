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
	"github.com/nscaledev/wcg-reservation/pkg/openapi"
)

// operation prefixes every feedback message.
type operation string

const (
	operationRegistration operation = "registration"
	operationReservation  operation = "reservation"
	operationCancel       operation = "cancel reservation"
)

func failure(op operation, err error) string {
	return string(op) + " failed: " + err.Error()
}

func success(revision openapi.Revision, op operation) string {
	// The first revision worded cancellation differently.
	if op == operationCancel && revision == openapi.Revision1 {
		return string(op) + " successfully"
	}

	return string(op) + " success!"
}
