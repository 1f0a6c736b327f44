package maps

import (
	"fmt"
	"strings"
	"testing"
)

func testEmbedService() *Service {
	return &Service{apiKey: "test-key"}
}

func TestOverviewMapURL_MarkersNumberedInOrder(t *testing.T) {
	svc := testEmbedService()
	places := []PlaceDetails{
		{Name: "Eiffel Tower", PlaceID: "pid-eiffel", Latitude: 48.8584, Longitude: 2.2945},
		{Name: "Louvre Museum", PlaceID: "pid-louvre", Latitude: 48.8606, Longitude: 2.3376},
		{Name: "Arc de Triomphe", PlaceID: "pid-arc", Latitude: 48.8738, Longitude: 2.295},
	}

	got := svc.OverviewMapURL(places)

	if !strings.HasPrefix(got, "https://www.google.com/maps/embed/v1/place?") {
		t.Fatalf("unexpected base URL: %s", got)
	}
	if !strings.Contains(got, "q=place_id:pid-eiffel") {
		t.Fatalf("expected map centered on first place's placeId, got %s", got)
	}
	if !strings.Contains(got, "zoom=12") {
		t.Fatalf("expected zoom=12, got %s", got)
	}

	if n := strings.Count(got, "&markers="); n != len(places) {
		t.Fatalf("expected %d marker clauses, got %d in %s", len(places), n, got)
	}
	for i, place := range places {
		marker := fmt.Sprintf("&markers=color:red|label:%d|%s,%s", i+1, formatCoord(place.Latitude), formatCoord(place.Longitude))
		if !strings.Contains(got, marker) {
			t.Fatalf("missing marker %q in %s", marker, got)
		}
	}
}

func TestOverviewMapURL_EmptyList(t *testing.T) {
	if got := testEmbedService().OverviewMapURL(nil); got != "" {
		t.Fatalf("expected empty string for empty list, got %s", got)
	}
}

func TestDetailMapURL_CenteredViewWithoutMarkers(t *testing.T) {
	svc := testEmbedService()
	place := PlaceDetails{Name: "Eiffel Tower", Latitude: 48.8584, Longitude: 2.2945}

	got := svc.DetailMapURL(place)

	want := "https://www.google.com/maps/embed/v1/view?key=test-key&center=48.8584,2.2945&zoom=16"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if strings.Contains(got, "markers") {
		t.Fatalf("detail map must not carry markers: %s", got)
	}
}

func TestDirectionsURL_JoinsEncodedStopsInOrder(t *testing.T) {
	svc := testEmbedService()
	places := []PlaceDetails{
		{Name: "Eiffel Tower", Latitude: 48.8584, Longitude: 2.2945},
		{Name: "Louvre Museum", Latitude: 48.8606, Longitude: 2.3376},
	}

	got := svc.DirectionsURL(places)

	if !strings.HasPrefix(got, "https://www.google.com/maps/dir/") {
		t.Fatalf("unexpected base URL: %s", got)
	}

	stops := strings.TrimPrefix(got, "https://www.google.com/maps/dir/")
	parts := strings.Split(stops, "/")
	if len(parts) != 2 {
		t.Fatalf("expected 2 stops, got %d in %s", len(parts), got)
	}
	if !strings.HasPrefix(parts[0], "Eiffel%20Tower@") {
		t.Fatalf("expected first stop percent-encoded with name@ prefix, got %s", parts[0])
	}
	if !strings.Contains(parts[1], "48.8606%2C2.3376") {
		t.Fatalf("expected second stop to carry coordinates, got %s", parts[1])
	}
}

func TestDirectionsURL_EmptyList(t *testing.T) {
	if got := testEmbedService().DirectionsURL(nil); got != "" {
		t.Fatalf("expected empty string for empty list, got %s", got)
	}
}
