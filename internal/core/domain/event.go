package domain

import "time"

// EventStatus represents the lifecycle state of an event.
type EventStatus string

const (
	EventDraftStatus EventStatus = "draft"
	EventPublished   EventStatus = "published"
	EventOngoing     EventStatus = "ongoing"
	EventCompleted   EventStatus = "completed"
	EventCancelled   EventStatus = "cancelled"
)

// EventStatuses lists every event status, in filter-bar order.
var EventStatuses = []EventStatus{
	EventDraftStatus,
	EventPublished,
	EventOngoing,
	EventCompleted,
	EventCancelled,
}

// PlanType identifies the subscription tier an event runs under.
type PlanType string

const (
	PlanA      PlanType = "Plan A"
	PlanB      PlanType = "Plan B"
	PlanC      PlanType = "Plan C"
	PlanCustom PlanType = "Custom"
)

// Event is a scheduled society event.
type Event struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	Title        string      `json:"title" bson:"title"`
	Description  string      `json:"description" bson:"description"`
	Date         time.Time   `json:"date" bson:"date"`
	Time         string      `json:"time" bson:"time"`
	EndTime      string      `json:"end_time,omitempty" bson:"end_time,omitempty"`
	Venue        string      `json:"venue" bson:"venue"`
	City         string      `json:"city" bson:"city"`
	Category     string      `json:"category,omitempty" bson:"category,omitempty"`
	Status       EventStatus `json:"status" bson:"status"`
	Attendees    int         `json:"attendees" bson:"attendees"`
	MaxCapacity  int         `json:"max_capacity" bson:"max_capacity"`
	PlanType     PlanType    `json:"plan_type" bson:"plan_type"`
	Tags         []string    `json:"tags,omitempty" bson:"tags,omitempty"`
	Vendors      []string    `json:"vendors,omitempty" bson:"vendors,omitempty"`
	SocietyID    string      `json:"society_id" bson:"society_id"`
	CreatedBy    string      `json:"created_by" bson:"created_by"`
	TotalRevenue float64     `json:"total_revenue" bson:"total_revenue"`
}
