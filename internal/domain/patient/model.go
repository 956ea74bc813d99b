package patient

import (
	"errors"
	"fmt"

	"github.com/clinichq/clinic/pkg/dateonly"
)

var (
	ErrNotFound     = errors.New("patient not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Patient maps to the patients table.
type Patient struct {
	ID                int64         `json:"patientId"`
	FirstName         string        `json:"firstName"`
	LastName          string        `json:"lastName"`
	DateOfBirth       dateonly.Date `json:"dateOfBirth"`
	Gender            string        `json:"gender"`
	Address           string        `json:"address"`
	PhoneNumber       string        `json:"phoneNumber"`
	Email             string        `json:"email"`
	InsuranceProvider string        `json:"insuranceProvider"`
}

// Input is the request body for create and full-row update. Updates overwrite
// every column, so omitted optional fields become empty.
type Input struct {
	FirstName         string        `json:"firstName" form:"firstName"`
	LastName          string        `json:"lastName" form:"lastName"`
	DateOfBirth       dateonly.Date `json:"dateOfBirth" form:"dateOfBirth"`
	Gender            string        `json:"gender" form:"gender"`
	Address           string        `json:"address" form:"address"`
	PhoneNumber       string        `json:"phoneNumber" form:"phoneNumber"`
	Email             string        `json:"email" form:"email"`
	InsuranceProvider string        `json:"insuranceProvider" form:"insuranceProvider"`
}

func (in *Input) Validate() error {
	if in.FirstName == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	if in.LastName == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}
	if in.DateOfBirth.IsZero() {
		return fmt.Errorf("%w: dateOfBirth is required", ErrInvalidInput)
	}
	if in.Gender == "" {
		return fmt.Errorf("%w: gender is required", ErrInvalidInput)
	}
	return nil
}

func (in *Input) toPatient() *Patient {
	return &Patient{
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		DateOfBirth:       in.DateOfBirth,
		Gender:            in.Gender,
		Address:           in.Address,
		PhoneNumber:       in.PhoneNumber,
		Email:             in.Email,
		InsuranceProvider: in.InsuranceProvider,
	}
}
