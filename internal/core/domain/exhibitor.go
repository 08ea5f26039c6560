package domain

import "time"

// ExhibitorStatus tracks an exhibitor's participation state.
type ExhibitorStatus string

const (
	ExhibitorRegistered ExhibitorStatus = "registered"
	ExhibitorConfirmed  ExhibitorStatus = "confirmed"
	ExhibitorCheckedIn  ExhibitorStatus = "checked_in"
	ExhibitorCancelled  ExhibitorStatus = "cancelled"
)

// PaymentStatus tracks an exhibitor's booth payment.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Exhibitor is a company with a booth at an event.
type Exhibitor struct {
	ID               string          `json:"id" bson:"_id,omitempty"`
	CompanyName      string          `json:"company_name" bson:"company_name"`
	ContactPerson    string          `json:"contact_person" bson:"contact_person"`
	Email            string          `json:"email" bson:"email"`
	Phone            string          `json:"phone" bson:"phone"`
	Category         string          `json:"category" bson:"category"`
	City             string          `json:"city" bson:"city"`
	Booth            string          `json:"booth" bson:"booth"`
	RegistrationDate time.Time       `json:"registration_date" bson:"registration_date"`
	Status           ExhibitorStatus `json:"status" bson:"status"`
	PaymentStatus    PaymentStatus   `json:"payment_status" bson:"payment_status"`
}
