package calculator

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loanhelp/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/calculator/quote", h.Quote)
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid calculator parameters")
		return
	}

	// Clamp to the documented UI bounds before invoking the pure function.
	in := Inputs{
		HomePrice:           Clamp(req.HomePrice, MinHomePrice, MaxHomePrice),
		DownPaymentPercent:  Clamp(req.DownPaymentPercent, MinDownPct, MaxDownPct),
		InterestRatePercent: Clamp(req.InterestRatePercent, MinRatePct, MaxRatePct),
		LoanTermYears:       NearestTerm(req.LoanTermYears),
	}

	out := Calculate(in)

	response.Success(c, http.StatusOK, QuoteResponse{
		Inputs: QuoteInputs{
			HomePrice:           in.HomePrice,
			DownPaymentPercent:  in.DownPaymentPercent,
			InterestRatePercent: in.InterestRatePercent,
			LoanTermYears:       in.LoanTermYears,
		},
		Figures: QuoteFigures{
			DownPaymentAmount: out.DownPaymentAmount,
			LoanAmount:        out.LoanAmount,
			MonthlyPayment:    out.MonthlyPayment,
			TotalPaid:         out.TotalPaid,
			TotalInterest:     out.TotalInterest,
			TotalCost:         out.TotalCost,
		},
		Formatted: QuoteStrings{
			DownPaymentAmount: FormatCurrency(out.DownPaymentAmount),
			LoanAmount:        FormatCurrency(out.LoanAmount),
			MonthlyPayment:    FormatCurrency(out.MonthlyPayment),
			TotalPaid:         FormatCurrency(out.TotalPaid),
			TotalInterest:     FormatCurrency(out.TotalInterest),
			TotalCost:         FormatCurrency(out.TotalCost),
		},
	})
}
