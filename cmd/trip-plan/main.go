package main

import (
	"context"
	"os"
	"strings"

	"trip_planner_backend/internal/maps"
	"trip_planner_backend/internal/trips"
	"trip_planner_backend/platform/ai/gemini"
	"trip_planner_backend/platform/config"
	"trip_planner_backend/platform/logger"
	"trip_planner_backend/platform/validator"
)

// trip-plan runs the planning flow once for a query given on the command
// line, without the HTTP server. Useful for smoke-testing credentials.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)

	query := strings.TrimSpace(strings.Join(os.Args[1:], " "))
	if query == "" {
		log.Error("usage: trip-plan <travel query>")
		os.Exit(2)
	}

	ctx := context.Background()

	aiClient, err := gemini.NewClient(ctx, gemini.Config{
		APIKey: cfg.GetGeminiAPIKey(),
		Model:  cfg.GetGeminiModel(),
	})
	if err != nil {
		log.Error("failed to initialize gemini client", "error", err)
		os.Exit(1)
	}

	placesService := maps.NewService(cfg, log)
	tripsModule := trips.NewModule(aiClient, placesService, cfg, validator.New(), log)

	log.Info("planning trip", "query", query)

	plan, err := tripsModule.Service().Plan(ctx, query)
	if err != nil {
		log.Error("planning failed", "error", err)
		os.Exit(1)
	}

	log.Info("destination resolved", "location", plan.Location)
	for i, place := range plan.Places {
		log.Info("validated place",
			"n", i+1,
			"name", place.Name,
			"lat", place.Latitude,
			"lng", place.Longitude,
			"address", place.Address,
			"mapsUrl", place.MapsURL,
		)
	}
	for _, name := range plan.Skipped {
		log.Warn("place skipped", "name", name)
	}
	log.Info("overview map", "url", plan.OverviewMapURL)
	log.Info("directions", "url", plan.DirectionsURL)
}
