package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oguzdem/gradekeeper/internal/app/models/dto"
	"github.com/oguzdem/gradekeeper/internal/app/services"
	"github.com/oguzdem/gradekeeper/internal/middleware"
)

// StatsController exposes the derived statistics.
type StatsController struct {
	statsService *services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService *services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// GetOverview retrieves the dashboard statistics
// @Summary Get statistics overview
// @Description Recomputes entity counts, the score aggregate and the categorical distributions from the live collections
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.OverviewResponse} "Overview computed successfully"
// @Router /stats/overview [get]
func (c *StatsController) GetOverview(ctx *gin.Context) {
	overview, err := c.statsService.Overview(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      overview,
		Timestamp: time.Now(),
	})
}
