package leads

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/leads", h.SubmitLead)
}

// SubmitLead handles the form submission endpoint. Responses follow the
// fixed wire contract: {ok:true,state} on success, {ok:false,message} on
// failure, with the honeypot path indistinguishable from success.
func (h *Handler) SubmitLead(c *gin.Context) {
	var req SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"message": "Please check your info and try again.",
		})
		return
	}

	meta := RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	result, err := h.service.Submit(c.Request.Context(), req, meta)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{
				"ok":      false,
				"message": verr.Message,
			})
		case errors.Is(err, ErrDuplicateSubmission):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"ok":      false,
				"message": "You already submitted recently. Please wait 24 hours and try again.",
			})
		default:
			log.Printf("leads: submit failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"ok":      false,
				"message": "We couldn't submit your request. Please try again.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"state": result.State,
	})
}
