package handler

import (
	"net/http"

	"trip_planner_backend/internal/trips/service"
	"trip_planner_backend/internal/trips/transport"
	"trip_planner_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the trip planning endpoint.
type Handler struct {
	svc *service.PlannerService
}

func New(svc *service.PlannerService) *Handler {
	return &Handler{svc: svc}
}

// Plan handles POST /api/v1/trips/plan.
func (h *Handler) Plan(c *gin.Context) {
	var req transport.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query is required", nil)
		return
	}

	plan, err := h.svc.Plan(c.Request.Context(), req.Query)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, plan)
}
