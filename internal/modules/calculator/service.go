package calculator

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Caller-side input bounds for the public quote endpoint. The calculation
// itself accepts anything and stays total.
const (
	MinHomePrice = 20_000.0
	MaxHomePrice = 300_000.0
	MinDownPct   = 5.0
	MaxDownPct   = 30.0
	MinRatePct   = 6.0
	MaxRatePct   = 12.0
)

// LoanTerms is the enumerated set of supported terms, in years.
var LoanTerms = []int{10, 15, 20, 25}

type Inputs struct {
	HomePrice           float64
	DownPaymentPercent  float64
	InterestRatePercent float64
	LoanTermYears       int
}

type Outputs struct {
	DownPaymentAmount float64
	LoanAmount        float64
	MonthlyPayment    float64
	TotalPaid         float64
	TotalInterest     float64
	TotalCost         float64
}

// Calculate produces the standard fixed-rate amortization figures. It is a
// total function: non-finite or negative inputs are treated as zero and a
// zero rate falls back to straight-line payments, so no input can error.
func Calculate(in Inputs) Outputs {
	homePrice := math.Max(0, finiteOrZero(in.HomePrice))
	downPct := math.Min(100, math.Max(0, finiteOrZero(in.DownPaymentPercent)))
	ratePct := math.Max(0, finiteOrZero(in.InterestRatePercent))
	termYears := in.LoanTermYears
	if termYears < 0 {
		termYears = 0
	}

	downPaymentAmount := homePrice * (downPct / 100)
	loanAmount := math.Max(0, homePrice-downPaymentAmount)

	monthlyRate := ratePct / 100 / 12
	numPayments := float64(termYears * 12)

	var monthlyPayment float64
	switch {
	case loanAmount == 0 || numPayments == 0:
		monthlyPayment = 0
	case monthlyRate == 0:
		monthlyPayment = loanAmount / numPayments
	default:
		pow := math.Pow(1+monthlyRate, numPayments)
		monthlyPayment = loanAmount * (monthlyRate * pow) / (pow - 1)
	}

	totalPaid := monthlyPayment * numPayments
	totalInterest := math.Max(0, totalPaid-loanAmount)
	totalCost := downPaymentAmount + totalPaid

	return Outputs{
		DownPaymentAmount: downPaymentAmount,
		LoanAmount:        loanAmount,
		MonthlyPayment:    monthlyPayment,
		TotalPaid:         totalPaid,
		TotalInterest:     totalInterest,
		TotalCost:         totalCost,
	}
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Clamp bounds a value to the given range.
func Clamp(v, min, max float64) float64 {
	return math.Min(max, math.Max(min, v))
}

// NearestTerm snaps a requested term to the closest supported one.
func NearestTerm(years int) int {
	best := LoanTerms[0]
	for _, t := range LoanTerms {
		if abs(years-t) < abs(years-best) {
			best = t
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a whole-dollar USD amount with locale grouping,
// e.g. 120000 -> "$120,000". Presentation only; not part of the calculation.
func FormatCurrency(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}
	return usd.Sprintf("$%d", int64(math.Round(n)))
}
