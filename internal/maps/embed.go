package maps

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	embedPlaceURL = "https://www.google.com/maps/embed/v1/place"
	embedViewURL  = "https://www.google.com/maps/embed/v1/view"
	directionsURL = "https://www.google.com/maps/dir/"

	overviewZoom = 12
	detailZoom   = 16
)

// OverviewMapURL builds an embeddable map centered on the first place's
// canonical identifier, with one numbered marker per place in list order.
// Returns the empty string for an empty list.
func (s *Service) OverviewMapURL(places []PlaceDetails) string {
	if len(places) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s?key=%s&q=place_id:%s&zoom=%d", embedPlaceURL, url.QueryEscape(s.apiKey), url.QueryEscape(places[0].PlaceID), overviewZoom)

	for i, place := range places {
		fmt.Fprintf(&b, "&markers=color:red|label:%d|%s,%s", i+1, formatCoord(place.Latitude), formatCoord(place.Longitude))
	}

	return b.String()
}

// DetailMapURL builds an embeddable close-up map centered on a single
// place's coordinates. The view has no marker pin.
func (s *Service) DetailMapURL(place PlaceDetails) string {
	return fmt.Sprintf("%s?key=%s&center=%s,%s&zoom=%d", embedViewURL, url.QueryEscape(s.apiKey), formatCoord(place.Latitude), formatCoord(place.Longitude), detailZoom)
}

// DirectionsURL builds a multi-stop directions deep link, one percent-encoded
// "name@lat,lng" stop per place in list order. Returns the empty string for
// an empty list.
func (s *Service) DirectionsURL(places []PlaceDetails) string {
	if len(places) == 0 {
		return ""
	}

	stops := make([]string, 0, len(places))
	for _, place := range places {
		stop := fmt.Sprintf("%s@%s,%s", place.Name, formatCoord(place.Latitude), formatCoord(place.Longitude))
		stops = append(stops, url.PathEscape(stop))
	}

	return directionsURL + strings.Join(stops, "/")
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
