package openapi

import (
	"fmt"
)

// Revision identifies which observed shape of the service API is in use.
type Revision string

const (
	// Revision1 lists on GET /reservation and cancels with a query parameter.
	Revision1 Revision = "v1"
	// Revision2 lists on GET /reservations and addresses citizens by path.
	Revision2 Revision = "v2"
)

// Revisions is every known revision, oldest first.
func Revisions() []Revision {
	return []Revision{Revision1, Revision2}
}

// ParseRevision accepts "v1"/"v2" and the bare numbers.
func ParseRevision(s string) (Revision, error) {
	switch s {
	case "v1", "1":
		return Revision1, nil
	case "v2", "2", "":
		return Revision2, nil
	}

	return "", fmt.Errorf("%w: unknown API revision %q", ErrInvalidRevision, s)
}

// String implements pflag.Value.
func (r *Revision) String() string {
	return string(*r)
}

// Set implements pflag.Value.
func (r *Revision) Set(s string) error {
	revision, err := ParseRevision(s)
	if err != nil {
		return err
	}

	*r = revision

	return nil
}

// Type implements pflag.Value.
func (r *Revision) Type() string {
	return "revision"
}
