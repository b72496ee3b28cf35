package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/handykonnect/handykonnect-api/internal/httperr"
	ucAnalytics "github.com/handykonnect/handykonnect-api/internal/usecase/analytics"
)

type AnalyticsHandler struct {
	summarizeUC *ucAnalytics.Summarize
}

func NewAnalyticsHandler(summarizeUC *ucAnalytics.Summarize) *AnalyticsHandler {
	return &AnalyticsHandler{summarizeUC: summarizeUC}
}

func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.summarizeUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_build_summary", "Could not build the dashboard summary.")
		return
	}

	c.JSON(200, summary)
}
