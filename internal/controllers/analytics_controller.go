package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack-be/internal/service"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsController(analyticsService service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// GetAnalytics handles GET /analytics
func (ac *AnalyticsController) GetAnalytics(c *gin.Context) {
	var start, end *time.Time

	if v := c.Query("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		start = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		end = &t
	}

	response, err := ac.analyticsService.GetAnalytics(c.Request.Context(), currentUserID(c), start, end)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
