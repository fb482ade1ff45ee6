package http

import (
	"net/http"
	"strconv"

	"github.com/salesops-id/salesops-backend-go/internal/handler/http/response"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/geocode"
)

type GeocodeHandler interface {
	Reverse(w http.ResponseWriter, r *http.Request)
}

type geocodeHandlerImpl struct {
	geocoder geocode.ReverseGeocoder
}

func NewGeocodeHandler(geocoder geocode.ReverseGeocoder) GeocodeHandler {
	return &geocodeHandlerImpl{
		geocoder: geocoder,
	}
}

type reverseGeocodeResponse struct {
	LocationName string `json:"location_name"`
}

// Reverse implements GeocodeHandler. On lookup failure the coordinates
// themselves are returned so the client always gets a usable label.
func (h *geocodeHandlerImpl) Reverse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		response.BadRequest(w, "lat and lon query parameters are required", nil)
		return
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		response.BadRequest(w, "lat and lon are out of range", nil)
		return
	}

	name, err := h.geocoder.ReverseGeocode(r.Context(), lat, lon)
	if err != nil {
		name = geocode.FallbackLabel(lat, lon)
	}

	response.Success(w, reverseGeocodeResponse{LocationName: name})
}
