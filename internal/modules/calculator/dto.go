package calculator

type QuoteRequest struct {
	HomePrice           float64 `form:"home_price"`
	DownPaymentPercent  float64 `form:"down_payment_percent"`
	InterestRatePercent float64 `form:"interest_rate_percent"`
	LoanTermYears       int     `form:"term_years"`
}

type QuoteResponse struct {
	Inputs    QuoteInputs  `json:"inputs"`
	Figures   QuoteFigures `json:"figures"`
	Formatted QuoteStrings `json:"formatted"`
}

// QuoteInputs echoes the effective (clamped) parameters the quote was
// computed from.
type QuoteInputs struct {
	HomePrice           float64 `json:"home_price"`
	DownPaymentPercent  float64 `json:"down_payment_percent"`
	InterestRatePercent float64 `json:"interest_rate_percent"`
	LoanTermYears       int     `json:"term_years"`
}

type QuoteFigures struct {
	DownPaymentAmount float64 `json:"down_payment_amount"`
	LoanAmount        float64 `json:"loan_amount"`
	MonthlyPayment    float64 `json:"monthly_payment"`
	TotalPaid         float64 `json:"total_paid"`
	TotalInterest     float64 `json:"total_interest"`
	TotalCost         float64 `json:"total_cost"`
}

type QuoteStrings struct {
	DownPaymentAmount string `json:"down_payment_amount"`
	LoanAmount        string `json:"loan_amount"`
	MonthlyPayment    string `json:"monthly_payment"`
	TotalPaid         string `json:"total_paid"`
	TotalInterest     string `json:"total_interest"`
	TotalCost         string `json:"total_cost"`
}
