package domain

// VendorCategory classifies the service a vendor provides.
type VendorCategory string

const (
	CategorySoundLights    VendorCategory = "sound_lights"
	CategoryCatering       VendorCategory = "catering"
	CategoryDecoration     VendorCategory = "decoration"
	CategorySecurity       VendorCategory = "security"
	CategoryTransportation VendorCategory = "transportation"
	CategoryHousekeeping   VendorCategory = "housekeeping"
	CategoryPhotography    VendorCategory = "photography"
	CategoryEntertainment  VendorCategory = "entertainment"
)

// VendorCategories lists every vendor category, in filter-bar order.
var VendorCategories = []VendorCategory{
	CategorySoundLights,
	CategoryCatering,
	CategoryDecoration,
	CategorySecurity,
	CategoryTransportation,
	CategoryHousekeeping,
	CategoryPhotography,
	CategoryEntertainment,
}

// Vendor is a service provider bookable for events.
type Vendor struct {
	ID            string         `json:"id" bson:"_id,omitempty"`
	Name          string         `json:"name" bson:"name"`
	Category      VendorCategory `json:"category" bson:"category"`
	City          string         `json:"city" bson:"city"`
	ContactPerson string         `json:"contact_person" bson:"contact_person"`
	Email         string         `json:"email" bson:"email"`
	Phone         string         `json:"phone" bson:"phone"`
	Rating        float64        `json:"rating" bson:"rating"`
	CompletedJobs int            `json:"completed_jobs" bson:"completed_jobs"`
	Status        AccountStatus  `json:"status" bson:"status"`
	PriceRange    string         `json:"price_range" bson:"price_range"`
	Services      []string       `json:"services,omitempty" bson:"services,omitempty"`
	WorkingDays   []string       `json:"working_days,omitempty" bson:"working_days,omitempty"`
}
