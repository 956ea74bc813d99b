package billing

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound     = errors.New("bill not found")
	ErrInvalidInput = errors.New("invalid input")
)

// StatusPaid is the payment_status value written on settlement.
const StatusPaid = "Paid"

// Bill is a billing row joined with the patient name for display.
type Bill struct {
	ID               int64     `json:"billingId"`
	TotalAmount      float64   `json:"totalAmount"`
	DateIssued       time.Time `json:"dateIssued"`
	PaymentStatus    string    `json:"paymentStatus"`
	PatientFirstName string    `json:"patientFirstName"`
	PatientLastName  string    `json:"patientLastName"`
}

// PaymentInput carries the bill reference from the payment form.
type PaymentInput struct {
	BillingID int64 `json:"billingId" form:"billingId"`
}

func (in *PaymentInput) Validate() error {
	if in.BillingID <= 0 {
		return fmt.Errorf("%w: billingId is required", ErrInvalidInput)
	}
	return nil
}
