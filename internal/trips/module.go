// Package trips is the trip planning bounded context: it turns a free-text
// travel query into a validated, mappable list of recommended places.
package trips

import (
	apphttp "trip_planner_backend/internal/http"
	"trip_planner_backend/internal/trips/handler"
	"trip_planner_backend/internal/trips/service"
	"trip_planner_backend/platform/config"
	"trip_planner_backend/platform/logger"
	"trip_planner_backend/platform/validator"
)

// Module wires the trip planning HTTP routes.
type Module struct {
	handler *handler.Handler
	service *service.PlannerService
}

func NewModule(ai service.ContentGenerator, places service.PlacesProvider, cfg config.PlannerConfig, val *validator.Validator, log *logger.Logger) *Module {
	extractor := service.NewExtractor(ai, log)
	generator := service.NewGenerator(ai, val, log)
	svc := service.NewPlannerService(extractor, generator, places, cfg.GetValidateConcurrency(), log)
	h := handler.New(svc)
	return &Module{handler: h, service: svc}
}

func (m *Module) Name() string {
	return "trips"
}

// Service exposes the planner for non-HTTP entry points (the CLI).
func (m *Module) Service() *service.PlannerService {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/trips")
	group.POST("/plan", m.handler.Plan)
}

var _ apphttp.Module = (*Module)(nil)
