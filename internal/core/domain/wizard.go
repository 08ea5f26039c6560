package domain

// DraftKind identifies which multi-step form a draft belongs to.
type DraftKind string

const (
	DraftKindEvent  DraftKind = "event"
	DraftKindVendor DraftKind = "vendor"
)

// WizardSteps is the number of steps in both creation wizards.
const WizardSteps = 4

// SubmitErrorKey is the reserved error-map key for submit-level failures,
// as opposed to per-field validation messages.
const SubmitErrorKey = "submit"

// EventDraft is the in-progress state of the event creation wizard.
// Step 1 covers basics, step 2 schedule and venue, step 3 contact details,
// step 4 is the review step.
type EventDraft struct {
	ID        string `json:"id"`
	Step      int    `json:"step"`
	CreatedBy string `json:"created_by"`

	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	SocietyID   string      `json:"society_id"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	EndTime     string      `json:"end_time"`
	Venue       string      `json:"venue"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	MaxCapacity int         `json:"max_capacity"`
	TicketPrice float64     `json:"ticket_price"`
	PlanType    PlanType    `json:"plan_type"`
	Status      EventStatus `json:"status"`

	Tags         []string `json:"tags"`
	Requirements []string `json:"requirements"`
	Amenities    []string `json:"amenities"`

	ContactPerson        string `json:"contact_person"`
	ContactEmail         string `json:"contact_email"`
	ContactPhone         string `json:"contact_phone"`
	RegistrationDeadline string `json:"registration_deadline"`

	IsPublic        bool `json:"is_public"`
	AllowWaitlist   bool `json:"allow_waitlist"`
	RequireApproval bool `json:"require_approval"`
	SendReminders   bool `json:"send_reminders"`

	Errors map[string]string `json:"errors,omitempty"`
}

// VendorDraft is the in-progress state of the vendor onboarding wizard.
// Step 1 covers the business, step 2 contact details, step 3 location,
// step 4 services and pricing.
type VendorDraft struct {
	ID        string `json:"id"`
	Step      int    `json:"step"`
	CreatedBy string `json:"created_by"`

	Name            string         `json:"name"`
	Category        VendorCategory `json:"category"`
	Description     string         `json:"description"`
	EstablishedYear string         `json:"established_year"`
	Website         string         `json:"website"`

	ContactPerson  string `json:"contact_person"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AlternatePhone string `json:"alternate_phone"`

	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Pincode      string   `json:"pincode"`
	ServiceAreas []string `json:"service_areas"`
	BusinessType string   `json:"business_type"`
	GSTNumber    string   `json:"gst_number"`

	Services      []string `json:"services"`
	PriceRangeMin string   `json:"price_range_min"`
	PriceRangeMax string   `json:"price_range_max"`
	PriceUnit     string   `json:"price_unit"`

	WorkingHours   string   `json:"working_hours"`
	WorkingDays    []string `json:"working_days"`
	Certifications []string `json:"certifications"`
	Insurance      bool     `json:"insurance"`

	Errors map[string]string `json:"errors,omitempty"`
}
