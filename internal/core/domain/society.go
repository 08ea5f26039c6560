package domain

import "time"

// SocietyStatus is the onboarding state of a housing society.
type SocietyStatus string

const (
	SocietyActive   SocietyStatus = "active"
	SocietyInactive SocietyStatus = "inactive"
	SocietyPending  SocietyStatus = "pending"
)

// Society is a residential community that hosts events on the platform.
type Society struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	Name          string        `json:"name" bson:"name"`
	Location      string        `json:"location" bson:"location"`
	ContactPerson string        `json:"contact_person" bson:"contact_person"`
	Email         string        `json:"email" bson:"email"`
	Phone         string        `json:"phone" bson:"phone"`
	MemberCount   int           `json:"member_count" bson:"member_count"`
	Facilities    []string      `json:"facilities,omitempty" bson:"facilities,omitempty"`
	ActiveEvents  int           `json:"active_events" bson:"active_events"`
	TotalRevenue  float64       `json:"total_revenue" bson:"total_revenue"`
	Status        SocietyStatus `json:"status" bson:"status"`
	JoinedDate    time.Time     `json:"joined_date" bson:"joined_date"`
}
