package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"trip_planner_backend/platform/apperr"
	"trip_planner_backend/platform/config"
	"trip_planner_backend/platform/logger"

	"golang.org/x/time/rate"
)

const (
	placesBaseURL = "https://maps.googleapis.com/maps/api/place"
	photoMaxWidth = 800
)

// Service confirms place names against the Google Places API and resolves
// their authoritative coordinates, canonical URL and photo.
type Service struct {
	client  *http.Client
	apiKey  string
	baseURL string
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewService creates the Places lookup service. Outbound calls share a
// politeness rate limiter so a burst of lookups cannot hammer the API.
func NewService(cfg config.MapsConfig, log *logger.Logger) *Service {
	return &Service{
		client:  &http.Client{Timeout: 10 * time.Second},
		apiKey:  cfg.GetMapsAPIKey(),
		baseURL: placesBaseURL,
		limiter: rate.NewLimiter(rate.Limit(cfg.GetPlacesRateLimit()), 1),
		log:     log,
	}
}

// FindPlace confirms that a named place exists in the given location.
// It runs a text search for "<name>, <location>", takes the first match and
// fetches its details. A place that cannot be matched yields a NotFound
// domain error; the coordinates of a matched place always satisfy
// ValidCoordinates.
func (s *Service) FindPlace(ctx context.Context, name, location string) (*PlaceDetails, error) {
	searchQuery := fmt.Sprintf("%s, %s", name, location)

	placeID, err := s.textSearch(ctx, searchQuery)
	if err != nil {
		return nil, err
	}

	return s.placeDetails(ctx, placeID)
}

func (s *Service) textSearch(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Add("query", query)
	params.Add("key", s.apiKey)

	var payload textSearchResponse
	if err := s.get(ctx, s.baseURL+"/textsearch/json", params, &payload); err != nil {
		return "", err
	}

	if payload.Status != "OK" || len(payload.Results) == 0 {
		return "", apperr.NotFound(fmt.Sprintf("no place found for %q", query))
	}

	return payload.Results[0].PlaceID, nil
}

func (s *Service) placeDetails(ctx context.Context, placeID string) (*PlaceDetails, error) {
	params := url.Values{}
	params.Add("place_id", placeID)
	params.Add("fields", "name,formatted_address,geometry,url,photos")
	params.Add("key", s.apiKey)

	var payload placeDetailsResponse
	if err := s.get(ctx, s.baseURL+"/details/json", params, &payload); err != nil {
		return nil, err
	}

	if payload.Status != "OK" {
		return nil, apperr.NotFound(fmt.Sprintf("no details for place %q", placeID))
	}

	result := payload.Result
	lat := result.Geometry.Location.Lat
	lng := result.Geometry.Location.Lng
	if !ValidCoordinates(lat, lng) {
		return nil, apperr.NotFound(fmt.Sprintf("place %q has out-of-bounds coordinates", placeID))
	}

	details := &PlaceDetails{
		Name:      result.Name,
		Address:   result.FormattedAddress,
		Latitude:  lat,
		Longitude: lng,
		PlaceID:   placeID,
		MapsURL:   result.URL,
	}

	if len(result.Photos) > 0 && result.Photos[0].PhotoReference != "" {
		details.PhotoURL = s.photoURL(result.Photos[0].PhotoReference)
	}

	return details, nil
}

// photoURL builds the fetchable photo URL for a photo reference. The photo
// itself is never fetched by this service.
func (s *Service) photoURL(photoReference string) string {
	params := url.Values{}
	params.Add("maxwidth", fmt.Sprintf("%d", photoMaxWidth))
	params.Add("photo_reference", photoReference)
	params.Add("key", s.apiKey)
	return s.baseURL + "/photo?" + params.Encode()
}

func (s *Service) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.UpstreamError("places", endpoint, err)
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		s.log.Error("places upstream error", "status", resp.StatusCode, "endpoint", endpoint)
		return fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		s.log.Error("failed to decode places payload", "error", err, "endpoint", endpoint)
		return err
	}

	return nil
}
