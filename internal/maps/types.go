package maps

// LookupRequest represents the query parameters for the place lookup endpoint.
type LookupRequest struct {
	Name     string `form:"name" binding:"required,min=2"`
	Location string `form:"location" binding:"required,min=2"`
}

// PlaceDetails is the authoritative record for a place confirmed against the
// Google Places API. PhotoURL is empty when the place has no photos.
type PlaceDetails struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	PlaceID   string  `json:"placeId"`
	MapsURL   string  `json:"mapsUrl"`
	PhotoURL  string  `json:"photoUrl,omitempty"`
}

// textSearchResponse mirrors the relevant parts of the Places Text Search payload.
type textSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID string `json:"place_id"`
	} `json:"results"`
}

type detailsGeometry struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

type detailsPhoto struct {
	PhotoReference string `json:"photo_reference"`
}

// placeDetailsResponse mirrors the relevant parts of the Place Details payload.
type placeDetailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Name             string          `json:"name"`
		FormattedAddress string          `json:"formatted_address"`
		Geometry         detailsGeometry `json:"geometry"`
		URL              string          `json:"url"`
		Photos           []detailsPhoto  `json:"photos"`
	} `json:"result"`
}
