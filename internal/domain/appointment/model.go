package appointment

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound     = errors.New("appointment not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Appointment maps to the appointments table.
type Appointment struct {
	ID        int64     `json:"appointmentId"`
	PatientID int64     `json:"patientId"`
	DoctorID  int64     `json:"doctorId"`
	Date      time.Time `json:"appointmentDate"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
}

// ListEntry is one row of the appointments listing, inner-joined with the
// patient and doctor names. Rows whose references fail to join are excluded
// by the join itself.
type ListEntry struct {
	ID               int64     `json:"appointmentId"`
	Date             time.Time `json:"appointmentDate"`
	Reason           string    `json:"reason"`
	Status           string    `json:"status"`
	PatientFirstName string    `json:"patientFirstName"`
	PatientLastName  string    `json:"patientLastName"`
	DoctorFirstName  string    `json:"doctorFirstName"`
	DoctorLastName   string    `json:"doctorLastName"`
}

// Input carries a new appointment. Status is an opaque string; the store
// does not enforce the value set.
type Input struct {
	PatientID int64     `json:"patientId" form:"patientId"`
	DoctorID  int64     `json:"doctorId" form:"doctorId"`
	Date      time.Time `json:"appointmentDate" form:"appointmentDate"`
	Reason    string    `json:"reason" form:"reason"`
	Status    string    `json:"status" form:"status"`
}

func (in *Input) toAppointment() *Appointment {
	return &Appointment{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Date:      in.Date,
		Reason:    in.Reason,
		Status:    in.Status,
	}
}

func (in *Input) Validate() error {
	if in.PatientID <= 0 {
		return fmt.Errorf("%w: patientId is required", ErrInvalidInput)
	}
	if in.DoctorID <= 0 {
		return fmt.Errorf("%w: doctorId is required", ErrInvalidInput)
	}
	if in.Date.IsZero() {
		return fmt.Errorf("%w: appointmentDate is required", ErrInvalidInput)
	}
	return nil
}
