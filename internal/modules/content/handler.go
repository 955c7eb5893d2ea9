package content

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
	rg.GET("/states", h.ListStates)
	rg.GET("/states/:slug", h.GetState)
	rg.GET("/guides", h.ListGuides)
	rg.GET("/guides/:slug", h.GetGuide)
}

func (h *Handler) ListStates(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"states": PriorityStates})
}

func (h *Handler) GetState(c *gin.Context) {
	s, ok := StateBySlug(c.Param("slug"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "State landing page not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"state": s})
}

func (h *Handler) ListGuides(c *gin.Context) {
	// summaries only; the body is served per guide
	summaries := make([]Guide, 0, len(Guides))
	for _, g := range Guides {
		g.Body = nil
		summaries = append(summaries, g)
	}
	response.Success(c, http.StatusOK, gin.H{"guides": summaries})
}

func (h *Handler) GetGuide(c *gin.Context) {
	g, ok := GuideBySlug(c.Param("slug"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guide not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"guide": g})
}
