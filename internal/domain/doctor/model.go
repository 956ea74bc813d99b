package doctor

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("doctor not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Doctor maps to the doctors table.
type Doctor struct {
	ID             int64  `json:"doctorId"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Specialization string `json:"specialization"`
	PhoneNumber    string `json:"phoneNumber"`
	Email          string `json:"email"`
}

type Input struct {
	FirstName      string `json:"firstName" form:"firstName"`
	LastName       string `json:"lastName" form:"lastName"`
	Specialization string `json:"specialization" form:"specialization"`
	PhoneNumber    string `json:"phoneNumber" form:"phoneNumber"`
	Email          string `json:"email" form:"email"`
}

func (in *Input) Validate() error {
	if in.FirstName == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	if in.LastName == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}
	if in.Specialization == "" {
		return fmt.Errorf("%w: specialization is required", ErrInvalidInput)
	}
	return nil
}

// PhoneInput is the body of the phone-only edit flow submitted from the
// edit form.
type PhoneInput struct {
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`
}

func (in *PhoneInput) Validate() error {
	if in.PhoneNumber == "" {
		return fmt.Errorf("%w: phoneNumber is required", ErrInvalidInput)
	}
	return nil
}
