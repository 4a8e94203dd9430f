// Package cities holds the catalog of city-level benefit ordinances for
// Senior Citizens and PWDs. The data is static; local ordinances change
// rarely and ship with a release.
package cities

// Benefit is a single city-granted privilege.
type Benefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// City groups the local benefits of one city.
type City struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Benefits []Benefit `json:"benefits"`
}

var catalog = []City{
	{
		ID:   "makati",
		Name: "Makati City",
		Benefits: []Benefit{
			{Title: "Cash Gift", Description: "Annual cash gift ranging from P4,000 to P12,000 depending on age bracket (Ordinance No. 2025-104)."},
			{Title: "Free Medicines", Description: "Free maintenance medicines and vitamins for Seniors and PWDs."},
			{Title: "Free Movies", Description: "Free movies in partner cinemas for Senior Citizens and PWDs."},
			{Title: "Free Parking", Description: "Exemption from parking fees in commercial establishments for the first 3-4 hours."},
			{Title: "Blu Card", Description: "Burial assistance and annual rice subsidy (Ordinance 2025-A-023)."},
		},
	},
	{
		ID:   "quezon_city",
		Name: "Quezon City",
		Benefits: []Benefit{
			{Title: "Indigent Allowance", Description: "P500 monthly allowance for indigent Senior Citizens, PWDs, and Solo Parents (Ordinance SP-3115)."},
			{Title: "Free Parking", Description: "Free initial rate (first 3 hours) parking in malls and commercial establishments (Ordinance SP-3234)."},
			{Title: "Free Movies", Description: "Free movie admission every Monday and Tuesday (first screening)."},
			{Title: "Centenarian Gift", Description: "P100,000 cash gift for residents reaching 100 years old."},
		},
	},
	{
		ID:   "manila",
		Name: "Manila",
		Benefits: []Benefit{
			{Title: "Monthly Allowance", Description: "P500 - P1,000 monthly allowance for qualified Seniors and PWDs (Ordinance 9081/9119)."},
			{Title: "Free Movies", Description: "Free movies in Manila cinemas for Senior Citizens."},
			{Title: "Birthday Cake", Description: "Free birthday cake for Senior Citizens."},
		},
	},
	{
		ID:   "pasig",
		Name: "Pasig City",
		Benefits: []Benefit{
			{Title: "Cash Gift", Description: "Yearly cash gift for Senior Citizens (P3,000 - P5,000 depending on age)."},
			{Title: "Free Movies", Description: "Free movies for Senior Citizens and PWDs."},
			{Title: "Hospice Care", Description: "Free home care services for bedridden seniors."},
		},
	},
	{
		ID:   "taguig",
		Name: "Taguig City",
		Benefits: []Benefit{
			{Title: "Birthday Cash Gift", Description: "Cash gifts ranging from P3,000 to P10,000 depending on age bracket."},
			{Title: "Free Movies", Description: "Free movies on Mondays, Tuesdays, and Wednesdays."},
			{Title: "House-to-House Delivery", Description: "Delivery of maintenance medicines for bedridden seniors."},
		},
	},
	{
		ID:   "cebu",
		Name: "Cebu City",
		Benefits: []Benefit{
			{Title: "Financial Assistance", Description: "P12,000 annual financial assistance, now distributed monthly (P1,000/month)."},
			{Title: "Free Parking", Description: "Free parking for the first 3 hours in malls and commercial areas."},
			{Title: "Hospitalization Aid", Description: "Financial aid for hospitalization expenses."},
		},
	},
	{
		ID:   "davao",
		Name: "Davao City",
		Benefits: []Benefit{
			{Title: "Annual Subsidy", Description: "Annual financial subsidy increased to P3,000 (subject to approval/availability)."},
			{Title: "Free Movies", Description: "Free movies every Monday and Tuesday."},
			{Title: "Free Medicines", Description: "Free maintenance medicines at district health centers."},
		},
	},
}

// All returns the full catalog.
func All() []City {
	return catalog
}

// ByID returns the city with the given id.
func ByID(id string) (City, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return City{}, false
}
