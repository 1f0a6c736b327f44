package maps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trip_planner_backend/platform/apperr"
	"trip_planner_backend/platform/logger"

	"golang.org/x/time/rate"
)

type fakePlaces struct {
	searchStatus  string
	searchResults []string
	detailsStatus string
	detailsBody   string

	searchCalls  int
	detailsCalls int
}

func (f *fakePlaces) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/textsearch/"):
			f.searchCalls++
			results := make([]string, 0, len(f.searchResults))
			for _, id := range f.searchResults {
				results = append(results, fmt.Sprintf(`{"place_id":%q}`, id))
			}
			fmt.Fprintf(w, `{"status":%q,"results":[%s]}`, f.searchStatus, strings.Join(results, ","))
		case strings.HasPrefix(r.URL.Path, "/details/"):
			f.detailsCalls++
			fmt.Fprintf(w, `{"status":%q,"result":%s}`, f.detailsStatus, f.detailsBody)
		default:
			http.NotFound(w, r)
		}
	}
}

func newTestService(t *testing.T, fake *fakePlaces) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	return &Service{
		client:  &http.Client{Timeout: time.Second},
		apiKey:  "test-key",
		baseURL: srv.URL,
		limiter: rate.NewLimiter(rate.Inf, 1),
		log:     logger.New("development"),
	}, srv
}

const eiffelDetails = `{
	"name": "Eiffel Tower",
	"formatted_address": "Champ de Mars, 5 Av. Anatole France, 75007 Paris, France",
	"geometry": {"location": {"lat": 48.8584, "lng": 2.2945}},
	"url": "https://maps.google.com/?cid=123",
	"photos": [{"photo_reference": "photo-ref-1"}, {"photo_reference": "photo-ref-2"}]
}`

func TestFindPlace_ResolvesDetails(t *testing.T) {
	fake := &fakePlaces{
		searchStatus:  "OK",
		searchResults: []string{"pid-eiffel", "pid-other"},
		detailsStatus: "OK",
		detailsBody:   eiffelDetails,
	}
	svc, _ := newTestService(t, fake)

	details, err := svc.FindPlace(context.Background(), "Eiffel Tower", "Paris, France")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if details.PlaceID != "pid-eiffel" {
		t.Fatalf("expected first search result's place id, got %s", details.PlaceID)
	}
	if details.Latitude != 48.8584 || details.Longitude != 2.2945 {
		t.Fatalf("expected authoritative coordinates, got (%v, %v)", details.Latitude, details.Longitude)
	}
	if details.MapsURL != "https://maps.google.com/?cid=123" {
		t.Fatalf("unexpected maps url: %s", details.MapsURL)
	}
	if details.Address == "" {
		t.Fatal("expected formatted address to be set")
	}
	if !strings.Contains(details.PhotoURL, "photo-ref-1") {
		t.Fatalf("expected photo URL to carry first photo reference, got %s", details.PhotoURL)
	}
	if !strings.Contains(details.PhotoURL, "maxwidth=800") {
		t.Fatalf("expected photo URL to carry maxwidth=800, got %s", details.PhotoURL)
	}
}

func TestFindPlace_SearchNotOK_SkipsDetails(t *testing.T) {
	fake := &fakePlaces{searchStatus: "ZERO_RESULTS"}
	svc, _ := newTestService(t, fake)

	_, err := svc.FindPlace(context.Background(), "Atlantis", "Nowhere")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if fake.detailsCalls != 0 {
		t.Fatalf("details endpoint must not be called after failed search, got %d calls", fake.detailsCalls)
	}
}

func TestFindPlace_SearchEmptyResults_SkipsDetails(t *testing.T) {
	fake := &fakePlaces{searchStatus: "OK"}
	svc, _ := newTestService(t, fake)

	_, err := svc.FindPlace(context.Background(), "Atlantis", "Nowhere")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if fake.detailsCalls != 0 {
		t.Fatalf("details endpoint must not be called on empty results, got %d calls", fake.detailsCalls)
	}
}

func TestFindPlace_DetailsNotOK(t *testing.T) {
	fake := &fakePlaces{
		searchStatus:  "OK",
		searchResults: []string{"pid-1"},
		detailsStatus: "NOT_FOUND",
		detailsBody:   `{}`,
	}
	svc, _ := newTestService(t, fake)

	_, err := svc.FindPlace(context.Background(), "Eiffel Tower", "Paris, France")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestFindPlace_NoPhotos(t *testing.T) {
	fake := &fakePlaces{
		searchStatus:  "OK",
		searchResults: []string{"pid-1"},
		detailsStatus: "OK",
		detailsBody: `{
			"name": "Hidden Garden",
			"formatted_address": "Somewhere",
			"geometry": {"location": {"lat": 35.0, "lng": 135.0}},
			"url": "https://maps.google.com/?cid=456"
		}`,
	}
	svc, _ := newTestService(t, fake)

	details, err := svc.FindPlace(context.Background(), "Hidden Garden", "Kyoto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.PhotoURL != "" {
		t.Fatalf("expected absent photo URL, got %s", details.PhotoURL)
	}
}

func TestFindPlace_RejectsOutOfBoundsCoordinates(t *testing.T) {
	fake := &fakePlaces{
		searchStatus:  "OK",
		searchResults: []string{"pid-1"},
		detailsStatus: "OK",
		detailsBody: `{
			"name": "Broken Place",
			"geometry": {"location": {"lat": 91.0, "lng": 0.0}},
			"url": "https://maps.google.com/?cid=789"
		}`,
	}
	svc, _ := newTestService(t, fake)

	_, err := svc.FindPlace(context.Background(), "Broken Place", "Paris")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected NotFound for out-of-bounds coordinates, got %v", err)
	}
}
