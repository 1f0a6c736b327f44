package maps

import (
	apphttp "trip_planner_backend/internal/http"
)

// Module wires the place lookup HTTP routes.
type Module struct {
	handler *Handler
	service *Service
}

func NewModule(svc *Service) *Module {
	h := NewHandler(svc)
	return &Module{handler: h, service: svc}
}

func (m *Module) Name() string {
	return "maps"
}

// Service exposes the Places lookup service for other modules.
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/maps")
	group.GET("/place-lookup", m.handler.LookupPlace)
}

var _ apphttp.Module = (*Module)(nil)
