package maps

import (
	"net/http"

	"trip_planner_backend/platform/apperr"
	"trip_planner_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the place lookup endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// LookupPlace handles GET /api/v1/maps/place-lookup?name=...&location=...
func (h *Handler) LookupPlace(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query params 'name' and 'location' are required (min 2 chars)", nil)
		return
	}

	details, err := h.svc.FindPlace(c.Request.Context(), req.Name, req.Location)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			httpkit.HandleError(c, err)
			return
		}
		httpkit.Error(c, http.StatusBadGateway, "place lookup service unavailable", nil)
		return
	}

	httpkit.OK(c, details)
}
