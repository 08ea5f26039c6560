package domain

import "time"

// Plan is a subscription tier societies sign up for.
type Plan struct {
	ID           string   `json:"id" bson:"_id,omitempty"`
	Name         string   `json:"name" bson:"name"`
	Description  string   `json:"description" bson:"description"`
	Price        float64  `json:"price" bson:"price"`
	Features     []string `json:"features" bson:"features"`
	MaxEvents    int      `json:"max_events" bson:"max_events"`       // -1 = unlimited
	MaxAttendees int      `json:"max_attendees" bson:"max_attendees"` // -1 = unlimited
	Support      string   `json:"support" bson:"support"`
	Popular      bool     `json:"popular,omitempty" bson:"popular,omitempty"`
}

// InvoiceStatus is the collection state of an invoice.
type InvoiceStatus string

const (
	InvoicePaid      InvoiceStatus = "paid"
	InvoicePending   InvoiceStatus = "pending"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice is a bill issued to a society for its plan.
type Invoice struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	InvoiceNumber string        `json:"invoice_number" bson:"invoice_number"`
	SocietyName   string        `json:"society_name" bson:"society_name"`
	PlanName      string        `json:"plan_name" bson:"plan_name"`
	Amount        float64       `json:"amount" bson:"amount"`
	IssueDate     time.Time     `json:"issue_date" bson:"issue_date"`
	DueDate       time.Time     `json:"due_date" bson:"due_date"`
	Status        InvoiceStatus `json:"status" bson:"status"`
	PaymentMethod string        `json:"payment_method,omitempty" bson:"payment_method,omitempty"`
}

// SubscriptionStatus is the lifecycle state of a plan subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription binds a society to a plan for a billing period.
type Subscription struct {
	ID            string             `json:"id" bson:"_id,omitempty"`
	SocietyName   string             `json:"society_name" bson:"society_name"`
	PlanName      string             `json:"plan_name" bson:"plan_name"`
	StartDate     time.Time          `json:"start_date" bson:"start_date"`
	EndDate       time.Time          `json:"end_date" bson:"end_date"`
	Status        SubscriptionStatus `json:"status" bson:"status"`
	AutoRenew     bool               `json:"auto_renew" bson:"auto_renew"`
	MonthlyAmount float64            `json:"monthly_amount" bson:"monthly_amount"`
}
