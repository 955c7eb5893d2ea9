package content

// StateLanding identifies a state-specific landing page.
type StateLanding struct {
	Slug string `json:"slug"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// PriorityStates are the states with dedicated landing pages.
var PriorityStates = []StateLanding{
	{Slug: "california", Code: "CA", Name: "California"},
	{Slug: "florida", Code: "FL", Name: "Florida"},
	{Slug: "georgia", Code: "GA", Name: "Georgia"},
	{Slug: "louisiana", Code: "LA", Name: "Louisiana"},
	{Slug: "michigan", Code: "MI", Name: "Michigan"},
	{Slug: "mississippi", Code: "MS", Name: "Mississippi"},
	{Slug: "missouri", Code: "MO", Name: "Missouri"},
	{Slug: "new-york", Code: "NY", Name: "New York"},
	{Slug: "ohio", Code: "OH", Name: "Ohio"},
	{Slug: "oklahoma", Code: "OK", Name: "Oklahoma"},
	{Slug: "oregon", Code: "OR", Name: "Oregon"},
	{Slug: "pennsylvania", Code: "PA", Name: "Pennsylvania"},
	{Slug: "south-carolina", Code: "SC", Name: "South Carolina"},
	{Slug: "texas", Code: "TX", Name: "Texas"},
	{Slug: "virginia", Code: "VA", Name: "Virginia"},
}

func StateBySlug(slug string) (StateLanding, bool) {
	for _, s := range PriorityStates {
		if s.Slug == slug {
			return s, true
		}
	}
	return StateLanding{}, false
}
