package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/bistro/app/services"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

// Summary returns the top-line dashboard numbers. Admin only.
func (c *StatsController) Summary(w http.ResponseWriter, r *http.Request) {
	stats, err := c.stats.Summary(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("stats: summary", "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, stats)
}

// OrderStats returns order count and revenue per menu category. Admin only.
func (c *StatsController) OrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.stats.OrderStats(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("stats: orders", "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, stats)
}
