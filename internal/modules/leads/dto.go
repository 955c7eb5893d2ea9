package leads

// SubmitLeadRequest is the inbound form payload. "hp" is the honeypot decoy
// field; legitimate users never populate it.
type SubmitLeadRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	State          string `json:"state"`
	PropertyState  string `json:"property_state"`
	HomeType       string `json:"home_type"`
	CreditRange    string `json:"credit_range"`
	Timeline       string `json:"timeline"`
	AdditionalInfo string `json:"additional_info"`
	SourcePage     string `json:"source_page"`
	Honeypot       string `json:"hp"`
	Consent        bool   `json:"consent"`
}

// RequestMeta is captured from the transport layer, never from the payload.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

type SubmitResult struct {
	State string
}
