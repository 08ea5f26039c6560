package fixtures

import (
	"time"

	"github.com/eventra/event-console/internal/core/domain"
)

// Seed data for the demo deployment. The operator directory matches the
// accounts the login screen advertises; everything else is representative
// catalogue content across cities and statuses.

func seedUsers() []*domain.User {
	return []*domain.User{
		{ID: "1", Email: "admin@admin.com", Name: "Super Admin", Role: domain.RoleSuperAdmin, Status: domain.AccountActive, CreatedAt: date(2024, time.January, 1), LastLogin: date(2024, time.January, 15)},
		{ID: "2", Email: "city.admin@admin.com", Name: "Mumbai Admin", Role: domain.RoleAdmin, City: "Mumbai", Status: domain.AccountActive, CreatedAt: date(2024, time.January, 2), LastLogin: date(2024, time.January, 15)},
		{ID: "3", Email: "support@admin.com", Name: "Support Tech", Role: domain.RoleSupportTech, Status: domain.AccountActive, CreatedAt: date(2024, time.January, 3), LastLogin: date(2024, time.January, 14)},
		{ID: "4", Email: "sales@admin.com", Name: "Sales Manager", Role: domain.RoleSalesMarketing, City: "Delhi", Status: domain.AccountActive, CreatedAt: date(2024, time.January, 4), LastLogin: date(2024, time.January, 13)},
		{ID: "5", Email: "accounting@admin.com", Name: "Accounting Manager", Role: domain.RoleAccounting, City: "Mumbai", Status: domain.AccountActive, CreatedAt: date(2024, time.January, 5), LastLogin: date(2024, time.January, 12)},
	}
}

func seedSocieties() []*domain.Society {
	return []*domain.Society{
		{ID: "1", Name: "Sunset Heights Society", Location: "Bandra, Mumbai", ContactPerson: "Rajesh Sharma", Email: "contact@sunsetheights.in", Phone: "+91 98200 11001", MemberCount: 450, Facilities: []string{"Clubhouse", "Swimming Pool", "Garden"}, ActiveEvents: 3, TotalRevenue: 185000, Status: domain.SocietyActive, JoinedDate: date(2023, time.March, 12)},
		{ID: "2", Name: "Green Valley Residency", Location: "Gurgaon, Delhi", ContactPerson: "Priya Malhotra", Email: "office@greenvalley.in", Phone: "+91 98100 22002", MemberCount: 620, Facilities: []string{"Community Hall", "Tennis Court", "Gym"}, ActiveEvents: 2, TotalRevenue: 240000, Status: domain.SocietyActive, JoinedDate: date(2023, time.May, 8)},
		{ID: "3", Name: "Royal Gardens Complex", Location: "Whitefield, Bangalore", ContactPerson: "Arun Nair", Email: "admin@royalgardens.in", Phone: "+91 98860 33003", MemberCount: 380, Facilities: []string{"Amphitheatre", "Banquet Hall"}, ActiveEvents: 1, TotalRevenue: 96000, Status: domain.SocietyActive, JoinedDate: date(2023, time.August, 21)},
		{ID: "4", Name: "Paradise Towers", Location: "Andheri, Mumbai", ContactPerson: "Sneha Kulkarni", Email: "info@paradisetowers.in", Phone: "+91 98200 44004", MemberCount: 290, Facilities: []string{"Terrace Garden", "Party Lawn"}, ActiveEvents: 0, TotalRevenue: 54000, Status: domain.SocietyInactive, JoinedDate: date(2023, time.November, 2)},
		{ID: "5", Name: "Silver Oak Apartments", Location: "Koramangala, Bangalore", ContactPerson: "Vikram Hegde", Email: "society@silveroak.in", Phone: "+91 98450 55005", MemberCount: 510, Facilities: []string{"Clubhouse", "Badminton Court", "Library"}, ActiveEvents: 2, TotalRevenue: 131000, Status: domain.SocietyPending, JoinedDate: date(2024, time.January, 9)},
	}
}

func seedEvents() []*domain.Event {
	return []*domain.Event{
		{ID: "1", Title: "Diwali Cultural Night", Description: "Annual Diwali celebration with performances and food stalls", Date: date(2024, time.November, 1), Time: "18:00", EndTime: "23:00", Venue: "Central Lawn", City: "Mumbai", Category: "Cultural Festival", Status: domain.EventPublished, Attendees: 320, MaxCapacity: 500, PlanType: domain.PlanB, Vendors: []string{"1", "3"}, SocietyID: "1", CreatedBy: "2", TotalRevenue: 64000},
		{ID: "2", Title: "Inter-Society Cricket Cup", Description: "Knockout cricket tournament across member societies", Date: date(2024, time.October, 12), Time: "08:00", EndTime: "18:00", Venue: "Sports Ground", City: "Delhi", Category: "Sports Event", Status: domain.EventOngoing, Attendees: 140, MaxCapacity: 200, PlanType: domain.PlanA, Vendors: []string{"4"}, SocietyID: "2", CreatedBy: "1", TotalRevenue: 28000},
		{ID: "3", Title: "Startup Pitch Evening", Description: "Resident founders pitch to an investor panel", Date: date(2024, time.September, 20), Time: "17:30", EndTime: "21:00", Venue: "Banquet Hall", City: "Bangalore", Category: "Corporate Meeting", Status: domain.EventCompleted, Attendees: 85, MaxCapacity: 100, PlanType: domain.PlanC, SocietyID: "3", CreatedBy: "1", TotalRevenue: 42500},
		{ID: "4", Title: "Yoga by the Lake", Description: "Guided morning yoga and wellness session", Date: date(2024, time.October, 26), Time: "06:30", EndTime: "08:30", Venue: "Lakeside Deck", City: "Mumbai", Category: "Health & Wellness", Status: domain.EventPublished, Attendees: 60, MaxCapacity: 80, PlanType: domain.PlanA, SocietyID: "4", CreatedBy: "2", TotalRevenue: 9000},
		{ID: "5", Title: "Monsoon Food Festival", Description: "Regional cuisine stalls and live counters", Date: date(2024, time.July, 14), Time: "12:00", EndTime: "22:00", Venue: "Community Hall", City: "Bangalore", Category: "Food Festival", Status: domain.EventCompleted, Attendees: 410, MaxCapacity: 450, PlanType: domain.PlanB, Vendors: []string{"2", "6"}, SocietyID: "5", CreatedBy: "1", TotalRevenue: 102500},
		{ID: "6", Title: "New Year Gala", Description: "Ticketed gala dinner with live music", Date: date(2024, time.December, 31), Time: "20:00", EndTime: "01:00", Venue: "Grand Ballroom", City: "Mumbai", Category: "Music Concert", Status: domain.EventDraftStatus, Attendees: 0, MaxCapacity: 600, PlanType: domain.PlanCustom, SocietyID: "1", CreatedBy: "2"},
		{ID: "7", Title: "Art in the Park", Description: "Open-air exhibition of resident artists", Date: date(2024, time.August, 3), Time: "10:00", EndTime: "17:00", Venue: "Rose Garden", City: "Delhi", Category: "Art Exhibition", Status: domain.EventCancelled, Attendees: 0, MaxCapacity: 150, PlanType: domain.PlanA, SocietyID: "2", CreatedBy: "4"},
		{ID: "8", Title: "Tech Summit 2024", Description: "Talks and demos from resident engineers", Date: date(2024, time.November, 16), Time: "09:00", EndTime: "18:00", Venue: "Convention Centre", City: "Bangalore", Category: "Technology Summit", Status: domain.EventPublished, Attendees: 210, MaxCapacity: 300, PlanType: domain.PlanC, SocietyID: "3", CreatedBy: "1", TotalRevenue: 157500},
	}
}

func seedVendors() []*domain.Vendor {
	return []*domain.Vendor{
		{ID: "1", Name: "SoundWave Productions", Category: domain.CategorySoundLights, City: "Mumbai", ContactPerson: "Amit Desai", Email: "bookings@soundwave.in", Phone: "+91 98200 10101", Rating: 4.7, CompletedJobs: 132, Status: domain.AccountActive, PriceRange: "₹15,000 - ₹60,000 per event"},
		{ID: "2", Name: "Spice Route Caterers", Category: domain.CategoryCatering, City: "Bangalore", ContactPerson: "Lakshmi Rao", Email: "orders@spiceroute.in", Phone: "+91 98450 20202", Rating: 4.5, CompletedJobs: 208, Status: domain.AccountActive, PriceRange: "₹450 - ₹1,200 per person"},
		{ID: "3", Name: "Bloom & Drape", Category: domain.CategoryDecoration, City: "Mumbai", ContactPerson: "Farah Khan", Email: "hello@bloomdrape.in", Phone: "+91 98200 30303", Rating: 4.8, CompletedJobs: 96, Status: domain.AccountActive, PriceRange: "₹20,000 - ₹85,000 per event"},
		{ID: "4", Name: "Shield Security Services", Category: domain.CategorySecurity, City: "Delhi", ContactPerson: "Gurpreet Singh", Email: "ops@shieldsecurity.in", Phone: "+91 98100 40404", Rating: 4.3, CompletedJobs: 310, Status: domain.AccountActive, PriceRange: "₹1,800 - ₹2,500 per guard/day"},
		{ID: "5", Name: "CityLine Travels", Category: domain.CategoryTransportation, City: "Mumbai", ContactPerson: "Naresh Patil", Email: "fleet@cityline.in", Phone: "+91 98200 50505", Rating: 4.1, CompletedJobs: 174, Status: domain.AccountInactive, PriceRange: "₹3,500 - ₹12,000 per vehicle"},
		{ID: "6", Name: "Sparkle Housekeeping", Category: domain.CategoryHousekeeping, City: "Bangalore", ContactPerson: "Mary D'Souza", Email: "service@sparkle.in", Phone: "+91 98450 60606", Rating: 4.4, CompletedJobs: 251, Status: domain.AccountActive, PriceRange: "₹350 - ₹600 per hour"},
		{ID: "7", Name: "Lens & Light Studio", Category: domain.CategoryPhotography, City: "Delhi", ContactPerson: "Rohit Verma", Email: "studio@lenslight.in", Phone: "+91 98100 70707", Rating: 4.9, CompletedJobs: 88, Status: domain.AccountActive, PriceRange: "₹25,000 - ₹90,000 per event"},
		{ID: "8", Name: "Rhythm Live Entertainment", Category: domain.CategoryEntertainment, City: "Mumbai", ContactPerson: "Ayesha Merchant", Email: "gigs@rhythmlive.in", Phone: "+91 98200 80808", Rating: 4.6, CompletedJobs: 67, Status: domain.AccountActive, PriceRange: "₹30,000 - ₹1,50,000 per performance"},
	}
}

func seedExhibitors() []*domain.Exhibitor {
	return []*domain.Exhibitor{
		{ID: "1", CompanyName: "Craftly Home Decor", ContactPerson: "Meera Iyer", Email: "meera@craftly.in", Phone: "+91 98200 90901", Category: "Home & Living", City: "Mumbai", Booth: "A-12", RegistrationDate: date(2024, time.September, 2), Status: domain.ExhibitorConfirmed, PaymentStatus: domain.PaymentPaid},
		{ID: "2", CompanyName: "GreenLeaf Organics", ContactPerson: "Suresh Kumar", Email: "suresh@greenleaf.in", Phone: "+91 98450 90902", Category: "Food & Beverage", City: "Bangalore", Booth: "B-04", RegistrationDate: date(2024, time.September, 5), Status: domain.ExhibitorRegistered, PaymentStatus: domain.PaymentPending},
		{ID: "3", CompanyName: "Pixel Arcade", ContactPerson: "Tanvi Shah", Email: "tanvi@pixelarcade.in", Phone: "+91 98100 90903", Category: "Gaming", City: "Delhi", Booth: "C-08", RegistrationDate: date(2024, time.September, 9), Status: domain.ExhibitorCheckedIn, PaymentStatus: domain.PaymentPaid},
		{ID: "4", CompanyName: "Urban Threads", ContactPerson: "Kabir Bedi", Email: "kabir@urbanthreads.in", Phone: "+91 98200 90904", Category: "Fashion", City: "Mumbai", Booth: "A-03", RegistrationDate: date(2024, time.September, 12), Status: domain.ExhibitorConfirmed, PaymentStatus: domain.PaymentPaid},
		{ID: "5", CompanyName: "ToyBox Kids", ContactPerson: "Anjali Menon", Email: "anjali@toybox.in", Phone: "+91 98450 90905", Category: "Kids & Toys", City: "Bangalore", Booth: "D-01", RegistrationDate: date(2024, time.September, 15), Status: domain.ExhibitorCancelled, PaymentStatus: domain.PaymentRefunded},
		{ID: "6", CompanyName: "Brew Culture", ContactPerson: "Dev Kapoor", Email: "dev@brewculture.in", Phone: "+91 98100 90906", Category: "Food & Beverage", City: "Delhi", Booth: "B-11", RegistrationDate: date(2024, time.September, 18), Status: domain.ExhibitorRegistered, PaymentStatus: domain.PaymentPending},
		{ID: "7", CompanyName: "Aura Wellness", ContactPerson: "Nisha Reddy", Email: "nisha@aurawellness.in", Phone: "+91 98450 90907", Category: "Health & Wellness", City: "Bangalore", Booth: "E-06", RegistrationDate: date(2024, time.September, 21), Status: domain.ExhibitorConfirmed, PaymentStatus: domain.PaymentPaid},
		{ID: "8", CompanyName: "Inkspire Books", ContactPerson: "Arjun Joshi", Email: "arjun@inkspire.in", Phone: "+91 98200 90908", Category: "Books & Stationery", City: "Mumbai", Booth: "C-02", RegistrationDate: date(2024, time.September, 24), Status: domain.ExhibitorRegistered, PaymentStatus: domain.PaymentPending},
	}
}

func seedPlans() []*domain.Plan {
	return []*domain.Plan{
		{ID: "1", Name: "Basic", Description: "Perfect for small societies", Price: 2999, Features: []string{"Up to 5 events per month", "Basic event management", "Email support", "Standard reporting", "Mobile app access"}, MaxEvents: 5, MaxAttendees: 200, Support: "Email"},
		{ID: "2", Name: "Professional", Description: "Ideal for growing communities", Price: 5999, Features: []string{"Up to 15 events per month", "Advanced event management", "Priority support", "Advanced analytics", "Custom branding", "Vendor management"}, MaxEvents: 15, MaxAttendees: 500, Support: "Phone & Email", Popular: true},
		{ID: "3", Name: "Enterprise", Description: "For large societies and organizations", Price: 12999, Features: []string{"Unlimited events", "Full platform access", "24/7 dedicated support", "Custom integrations", "White-label solution", "Advanced security", "API access"}, MaxEvents: -1, MaxAttendees: -1, Support: "24/7 Dedicated"},
	}
}

func seedInvoices() []*domain.Invoice {
	return []*domain.Invoice{
		{ID: "1", InvoiceNumber: "INV-2024-001", SocietyName: "Sunset Heights Society", PlanName: "Professional", Amount: 5999, IssueDate: date(2024, time.January, 1), DueDate: date(2024, time.January, 15), Status: domain.InvoicePaid, PaymentMethod: "Credit Card"},
		{ID: "2", InvoiceNumber: "INV-2024-002", SocietyName: "Green Valley Residency", PlanName: "Enterprise", Amount: 12999, IssueDate: date(2024, time.January, 5), DueDate: date(2024, time.January, 20), Status: domain.InvoicePending},
		{ID: "3", InvoiceNumber: "INV-2024-003", SocietyName: "Royal Gardens Complex", PlanName: "Basic", Amount: 2999, IssueDate: date(2023, time.December, 15), DueDate: date(2023, time.December, 30), Status: domain.InvoiceOverdue},
	}
}

func seedSubscriptions() []*domain.Subscription {
	return []*domain.Subscription{
		{ID: "1", SocietyName: "Sunset Heights Society", PlanName: "Professional", StartDate: date(2024, time.January, 1), EndDate: date(2024, time.December, 31), Status: domain.SubscriptionActive, AutoRenew: true, MonthlyAmount: 5999},
		{ID: "2", SocietyName: "Green Valley Residency", PlanName: "Enterprise", StartDate: date(2024, time.January, 1), EndDate: date(2024, time.December, 31), Status: domain.SubscriptionActive, AutoRenew: true, MonthlyAmount: 12999},
		{ID: "3", SocietyName: "Royal Gardens Complex", PlanName: "Basic", StartDate: date(2023, time.June, 1), EndDate: date(2023, time.December, 31), Status: domain.SubscriptionExpired, AutoRenew: false, MonthlyAmount: 2999},
	}
}
