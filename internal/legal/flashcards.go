package legal

// Flashcard is one statutory right in short and long form.
type Flashcard struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ShortDesc string `json:"short_desc"`
	FullText  string `json:"full_text"`
	SourceURL string `json:"source_url,omitempty"`
}

const ncdaRA10754URL = "https://ncda.gov.ph/disability-laws/republic-acts/republic-act-no-10754-an-act-expanding-the-benefits-and-privileges-of-persons-with-disability-pwd/"

var flashcards = []Flashcard{
	{
		ID:        "vat-exempt",
		Title:     "VAT Exemption",
		ShortDesc: "Exempt from 12% VAT on goods & services.",
		FullText: `Republic Act No. 10754, Section 1:

"At least twenty percent (20%) discount and exemption from the value-added tax (VAT), if applicable, on the sale of the following goods and services..."

Explanation:
The 20% discount is applied to the amount AFTER the 12% VAT is removed. You should not be paying VAT on the portion of the bill that you are consuming.`,
		SourceURL: ncdaRA10754URL,
	},
	{
		ID:        "no-service-charge",
		Title:     "No Service Charge",
		ShortDesc: "Fully exempt from service charges.",
		FullText: `DOJ Opinion No. 45, Series of 2024 & Joint Memorandum Circular No. 01-2022:

"PWDs and Senior Citizens are entitled to exemption from service charges on their proportional share of consumption in establishments covered by the discount privilege."

Explanation:
PWDs and Senior Citizens are exempt from paying their proportional share of service charges. In group dining scenarios, the service charge should be prorated based on actual consumption or headcount, and only regular diners pay their share of the service charge. The PWD/Senior portion is fully exempt.`,
		SourceURL: ncdaRA10754URL,
	},
	{
		ID:        "20-percent",
		Title:     "20% Discount",
		ShortDesc: "20% off on VAT-exclusive price.",
		FullText: `Republic Act No. 9994 (Senior Citizens) & RA 10754 (PWDs):

Grants a 20% discount on the purchase of medicines, professional fees of physicians, medical/dental services, diagnostic and laboratory fees, fares for domestic air and sea travel, and public land transportation fares.`,
		SourceURL: ncdaRA10754URL,
	},
	{
		ID:        "express-lane",
		Title:     "Express Lane",
		ShortDesc: "Priority lanes in all establishments.",
		FullText: `Republic Act No. 9994 & RA 10754:

"Provision of express lanes for senior citizens and persons with disability in all commercial and government establishments; in the absence thereof, priority shall be given to them."`,
		SourceURL: ncdaRA10754URL,
	},
	{
		ID:        "city-parking",
		Title:     "Parking Exemption",
		ShortDesc: "Free parking in some cities (check local ordinance).",
		FullText: `Local Ordinances (varies by city):

Many cities like Makati, Quezon City, Manila, and Cebu have ordinances granting free parking for the first 3-4 hours or flat rates for Senior Citizens and PWDs.

Note: This is not a national law but a local privilege. Always check with the specific city ordinance.`,
	},
	{
		ID:        "grocery-cap",
		Title:     "Grocery Cap",
		ShortDesc: "5% off up to P1,300/week (P65 discount).",
		FullText: `DTI-DA-DOE Joint Administrative Order No. 17-02:

"Senior Citizens and PWDs are entitled to a special discount of 5% of the regular retail price of Basic Necessities and Prime Commodities (BNPC), without carryover of the unused amount."

Cap:
The total amount of purchase shall not exceed P1,300 per week. The maximum discount is P65 per week.`,
	},
}

// Flashcards returns the rights reference cards.
func Flashcards() []Flashcard {
	return flashcards
}
