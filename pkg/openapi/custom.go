package openapi

import (
	"errors"
	"regexp"
)

var ErrInvalidRevision = errors.New("invalid revision")

var ErrInvalidCitizenID = errors.New("invalid citizen ID: must consist of exactly 13 digits")

var citizenIDValidationRegex = regexp.MustCompile("^[0-9]{13}$")

type CitizenID struct {
	Value string
}

// ValidCitizenID reports whether the value would be accepted by the remote service.
func ValidCitizenID(s string) bool {
	return citizenIDValidationRegex.MatchString(s)
}

func (n *CitizenID) UnmarshalText(text []byte) error {
	if !citizenIDValidationRegex.Match(text) {
		return ErrInvalidCitizenID
	}

	*n = CitizenID{
		Value: string(text),
	}

	return nil
}

func (n CitizenID) MarshalText() ([]byte, error) {
	return []byte(n.Value), nil
}

func (n CitizenID) String() string {
	return n.Value
}
