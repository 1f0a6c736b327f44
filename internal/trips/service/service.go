package service

import (
	"context"
	"fmt"
	"strings"

	"trip_planner_backend/internal/maps"
	"trip_planner_backend/internal/trips/transport"
	"trip_planner_backend/platform/apperr"
	"trip_planner_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// PlacesProvider is the Google Maps surface the planner depends on.
// Satisfied by *maps.Service.
type PlacesProvider interface {
	FindPlace(ctx context.Context, name, location string) (*maps.PlaceDetails, error)
	OverviewMapURL(places []maps.PlaceDetails) string
	DetailMapURL(place maps.PlaceDetails) string
	DirectionsURL(places []maps.PlaceDetails) string
}

// PlannerService orchestrates the end-to-end flow: extract the destination,
// generate candidate places, validate each against the Places API and build
// the map URLs for the survivors.
type PlannerService struct {
	extractor   *Extractor
	generator   *Generator
	places      PlacesProvider
	concurrency int
	log         *logger.Logger
}

func NewPlannerService(extractor *Extractor, generator *Generator, places PlacesProvider, concurrency int, log *logger.Logger) *PlannerService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &PlannerService{
		extractor:   extractor,
		generator:   generator,
		places:      places,
		concurrency: concurrency,
		log:         log,
	}
}

// Plan runs the whole flow for one query. Extraction and generation failures
// abort the request; a single place failing validation only drops that place.
// Zero validated places is reported as NotFound, distinct from an empty query.
func (s *PlannerService) Plan(ctx context.Context, query string) (*transport.PlanResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.Validation("query must not be empty")
	}

	location, err := s.extractor.ExtractLocation(ctx, query)
	if err != nil {
		return nil, err
	}

	candidates, err := s.generator.GenerateCandidates(ctx, query, location)
	if err != nil {
		return nil, err
	}

	results := s.validateAll(ctx, location, candidates)

	return s.buildResponse(location, candidates, results)
}

// validateAll confirms every candidate against the Places API. Lookups fan
// out with a bounded concurrency limit; the returned slice is aligned with
// candidates, a nil slot marking a candidate that failed validation. Each
// candidate's failure is independent.
func (s *PlannerService) validateAll(ctx context.Context, location string, candidates []transport.CandidatePlace) []*maps.PlaceDetails {
	results := make([]*maps.PlaceDetails, len(candidates))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for i, candidate := range candidates {
		g.Go(func() error {
			details, err := s.places.FindPlace(ctx, candidate.Name, location)
			if err != nil {
				s.log.PlaceDropped(candidate.Name, location, err)
				return nil
			}
			results[i] = details
			return nil
		})
	}

	// Goroutines never return errors; failed lookups leave a nil slot.
	_ = g.Wait()

	return results
}

func (s *PlannerService) buildResponse(location string, candidates []transport.CandidatePlace, results []*maps.PlaceDetails) (*transport.PlanResponse, error) {
	details := make([]maps.PlaceDetails, 0, len(candidates))
	places := make([]transport.PlaceResponse, 0, len(candidates))
	skipped := make([]string, 0)

	for i, candidate := range candidates {
		if results[i] == nil {
			skipped = append(skipped, candidate.Name)
			continue
		}
		d := *results[i]

		// Keep the recommended name; the lookup's role is coordinates and
		// canonical identifiers, not renaming.
		d.Name = candidate.Name
		details = append(details, d)

		places = append(places, transport.PlaceResponse{
			Name:         candidate.Name,
			Description:  candidate.Description,
			Address:      d.Address,
			Latitude:     d.Latitude,
			Longitude:    d.Longitude,
			PlaceID:      d.PlaceID,
			MapsURL:      d.MapsURL,
			PhotoURL:     d.PhotoURL,
			DetailMapURL: s.places.DetailMapURL(d),
		})
	}

	if len(places) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("no places could be validated for %q", location)).WithDetails(skipped)
	}

	return &transport.PlanResponse{
		Location:       location,
		Places:         places,
		OverviewMapURL: s.places.OverviewMapURL(details),
		DirectionsURL:  s.places.DirectionsURL(details),
		Skipped:        skipped,
	}, nil
}
