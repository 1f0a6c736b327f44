// Package transport defines the request/response DTOs for the trips module.
package transport

// PlanRequest is the trip planning request body.
type PlanRequest struct {
	Query string `json:"query" binding:"required"`
}

// CandidatePlace is a place recommended by the language model. Coordinates
// are untrusted placeholders (conventionally zero) until the place has been
// confirmed against the Places API.
type CandidatePlace struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// PlaceResponse is a validated place in the plan response. Coordinates are
// authoritative; PhotoURL is omitted when the place has no photo.
type PlaceResponse struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	PlaceID      string  `json:"placeId"`
	MapsURL      string  `json:"mapsUrl"`
	PhotoURL     string  `json:"photoUrl,omitempty"`
	DetailMapURL string  `json:"detailMapUrl"`
}

// PlanResponse is the full trip plan. Skipped lists recommended places that
// could not be validated and were dropped.
type PlanResponse struct {
	Location       string          `json:"location"`
	Places         []PlaceResponse `json:"places"`
	OverviewMapURL string          `json:"overviewMapUrl"`
	DirectionsURL  string          `json:"directionsUrl"`
	Skipped        []string        `json:"skipped,omitempty"`
}
