package content

// Section is one block of a guide body.
type Section struct {
	Type  string   `json:"type"` // "p", "h2" or "ul"
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

type Guide struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Date           string    `json:"date"` // ISO date (YYYY-MM-DD)
	ReadingMinutes int       `json:"reading_minutes"`
	Keywords       []string  `json:"keywords"`
	Body           []Section `json:"body,omitempty"`
}

var Guides = []Guide{
	{
		Slug:           "manufactured-home-loan-options",
		Title:          "Manufactured Home Loan Options (Plain-English Overview)",
		Description:    "A simple overview of common manufactured/mobile home financing paths, including leased land vs owned land considerations. Educational only.",
		Date:           "2026-01-01",
		ReadingMinutes: 6,
		Keywords:       []string{"manufactured home loans", "mobile home financing", "loan options"},
		Body: []Section{
			{Type: "p", Text: "Manufactured home financing can feel confusing because it depends on the home, the land situation, and the lender's guidelines. This guide is educational and meant to help you understand the landscape, not to promise approvals or rates."},
			{Type: "h2", Text: "The two questions that change everything"},
			{Type: "ul", Items: []string{
				"Do you own the land, or is it leased land (a park)?",
				"Is the home new or used (and what year is it)?",
			}},
			{Type: "p", Text: "Those details often determine whether the home is treated more like real property (mortgage-style programs) or personal property (often chattel-style programs). Requirements vary by lender and state."},
			{Type: "h2", Text: "Common financing paths (high level)"},
			{Type: "ul", Items: []string{
				"Chattel loans: common for parks/leased land scenarios.",
				"Manufactured home mortgages: more common when land is owned and the home qualifies.",
				"Specialized manufactured home lenders: may offer programs tailored to different scenarios.",
			}},
			{Type: "p", Text: "Because programs change, the best next step is to have a licensed lender/broker review your specific scenario and explain what's currently available in your state."},
		},
	},
	{
		Slug:           "chattel-loan-vs-mortgage",
		Title:          "Chattel Loan vs Mortgage: What's the Difference?",
		Description:    "Learn why leased land often uses chattel loans and why land ownership can open mortgage-style options. Educational only.",
		Date:           "2026-01-02",
		ReadingMinutes: 5,
		Keywords:       []string{"chattel loan", "manufactured home mortgage", "leased land"},
		Body: []Section{
			{Type: "p", Text: "If you're shopping for a manufactured home, you'll often hear \"chattel loan\" and \"mortgage\" used interchangeably, but they're usually different structures. This is educational; requirements vary by lender and state."},
			{Type: "h2", Text: "Chattel loans (common for leased land)"},
			{Type: "p", Text: "A chattel loan is often used when the home is treated like personal property. This can be common in parks where the land is leased."},
			{Type: "h2", Text: "Mortgage-style programs (more common with land)"},
			{Type: "p", Text: "Mortgage-style programs are typically secured by real estate (land + home) when the property qualifies and the lender offers that structure."},
			{Type: "h2", Text: "What this means for you"},
			{Type: "ul", Items: []string{
				"Ask early: land owned or leased?",
				"Confirm the home's year and HUD code status.",
				"Expect different rate/term possibilities depending on the scenario.",
			}},
		},
	},
	{
		Slug:           "documents-needed-manufactured-home-loan",
		Title:          "Documents You May Need for a Manufactured Home Loan",
		Description:    "A practical checklist of documents lenders often request for manufactured/mobile home financing. Varies by lender and state.",
		Date:           "2026-01-03",
		ReadingMinutes: 6,
		Keywords:       []string{"documents", "manufactured home loan", "checklist"},
		Body: []Section{
			{Type: "p", Text: "Lenders typically ask for documentation to verify identity, income, and details about the home/land. Exact requirements vary by lender and state, but this checklist can help you prepare."},
			{Type: "h2", Text: "Identity & basic info"},
			{Type: "ul", Items: []string{"Government ID", "Contact info", "Employment history"}},
			{Type: "h2", Text: "Income verification"},
			{Type: "ul", Items: []string{"Pay stubs", "W-2s and/or tax returns", "Bank statements"}},
			{Type: "h2", Text: "Home & property details"},
			{Type: "ul", Items: []string{
				"Year/make/model (and HUD tags/serial number if available)",
				"Purchase contract (if you're under contract)",
				"Land status (owned vs leased)",
				"Park lease/lot rent details (if applicable)",
			}},
			{Type: "p", Text: "If you're not sure what applies to your situation, a licensed lender can tell you exactly what they'll need for your program and property type."},
		},
	},
}

func GuideBySlug(slug string) (Guide, bool) {
	for _, g := range Guides {
		if g.Slug == slug {
			return g, true
		}
	}
	return Guide{}, false
}
