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

package client

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

import (
	"context"

	"github.com/nscaledev/wcg-reservation/pkg/openapi"
)

// Interface is the set of service operations, implemented by Client.
type Interface interface {
	Register(ctx context.Context, params openapi.RegistrationParams) (*Response, error)
	Reserve(ctx context.Context, params openapi.ReservationParams) (*Response, error)
	ListReservations(ctx context.Context) (*Response, error)
	GetReservation(ctx context.Context, citizenID string) (*Response, error)
	Cancel(ctx context.Context, citizenID string) (*Response, error)
}

var _ Interface = &Client{}
