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

// Package probe issues single operations against the service and prints the
// raw outcome, which is how expected feedback literals are captured.
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/pflag"

	"github.com/nscaledev/wcg-reservation/pkg/client"
	"github.com/nscaledev/wcg-reservation/pkg/openapi"
)

// ErrUsage is returned when the command line cannot be understood.
var ErrUsage = errors.New("usage error")

type command func(ctx context.Context, args []string) (*client.Response, error)

type Probe struct {
	client client.Interface
	out    io.Writer
}

func New(client client.Interface, out io.Writer) *Probe {
	return &Probe{
		client: client,
		out:    out,
	}
}

func (p *Probe) commands() map[string]command {
	return map[string]command{
		"register": p.register,
		"reserve":  p.reserve,
		"list":     p.list,
		"get":      p.get,
		"cancel":   p.cancel,
	}
}

// Commands lists the supported operations.
func Commands() []string {
	return []string{"register", "reserve", "list", "get", "cancel"}
}

// Run executes the operation named by the first argument and prints the
// status line and body. A response is printed even when an error is returned.
func (p *Probe) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: expected one of %s", ErrUsage, strings.Join(Commands(), ", "))
	}

	cmd, ok := p.commands()[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown operation %q, expected one of %s", ErrUsage, args[0], strings.Join(Commands(), ", "))
	}

	response, err := cmd(ctx, args[1:])
	if response != nil {
		p.print(response)
	}

	return err
}

func (p *Probe) print(response *client.Response) {
	fmt.Fprintf(p.out, "%d %s\n", response.StatusCode, http.StatusText(response.StatusCode))

	if response.TraceID != "" {
		fmt.Fprintf(p.out, "trace: %s\n", response.TraceID)
	}

	fmt.Fprintf(p.out, "%s\n", strings.TrimSpace(string(response.Body)))
}

func parse(name string, flags *pflag.FlagSet, args []string) error {
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUsage, name, err)
	}

	if flags.NArg() != 0 {
		return fmt.Errorf("%w: %s: unexpected arguments %v", ErrUsage, name, flags.Args())
	}

	return nil
}

func (p *Probe) register(ctx context.Context, args []string) (*client.Response, error) {
	var (
		params      openapi.RegistrationParams
		phoneNumber string
		isRisk      bool
	)

	flags := pflag.NewFlagSet("register", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&params.CitizenID, "citizen-id", "", "Citizen ID.")
	flags.StringVar(&params.Name, "name", "", "Given name.")
	flags.StringVar(&params.Surname, "surname", "", "Family name.")
	flags.StringVar(&params.BirthDate, "birth-date", "", "Birth date as DD/MM/YYYY.")
	flags.StringVar(&params.Occupation, "occupation", "", "Occupation.")
	flags.StringVar(&params.Address, "address", "", "Address.")
	flags.StringVar(&phoneNumber, "phone-number", "", "Phone number, revision 2 only.")
	flags.BoolVar(&isRisk, "is-risk", false, "Risk group flag, revision 2 only.")

	if err := parse("register", flags, args); err != nil {
		return nil, err
	}

	// Only send what was asked for so either revision can be probed.
	if flags.Changed("phone-number") {
		params.PhoneNumber = &phoneNumber
	}

	if flags.Changed("is-risk") {
		params.IsRisk = &isRisk
	}

	return p.client.Register(ctx, params)
}

func (p *Probe) reserve(ctx context.Context, args []string) (*client.Response, error) {
	var params openapi.ReservationParams

	flags := pflag.NewFlagSet("reserve", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&params.CitizenID, "citizen-id", "", "Citizen ID.")
	flags.StringVar(&params.SiteName, "site-name", "", "Vaccination site.")
	flags.StringVar(&params.VaccineName, "vaccine-name", "", "Vaccine.")

	if err := parse("reserve", flags, args); err != nil {
		return nil, err
	}

	return p.client.Reserve(ctx, params)
}

func (p *Probe) list(ctx context.Context, args []string) (*client.Response, error) {
	flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	if err := parse("list", flags, args); err != nil {
		return nil, err
	}

	return p.client.ListReservations(ctx)
}

func citizenIDFlags(name string, args []string) (string, error) {
	var citizenID string

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&citizenID, "citizen-id", "", "Citizen ID, may be blank or malformed on purpose.")

	if err := parse(name, flags, args); err != nil {
		return "", err
	}

	return citizenID, nil
}

func (p *Probe) get(ctx context.Context, args []string) (*client.Response, error) {
	citizenID, err := citizenIDFlags("get", args)
	if err != nil {
		return nil, err
	}

	return p.client.GetReservation(ctx, citizenID)
}

func (p *Probe) cancel(ctx context.Context, args []string) (*client.Response, error) {
	citizenID, err := citizenIDFlags("cancel", args)
	if err != nil {
		return nil, err
	}

	return p.client.Cancel(ctx, citizenID)
}
