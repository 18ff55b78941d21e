package tripplanner

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/trip-planner/fare"
	"github.com/theoremus-urban-solutions/trip-planner/geo"
	"github.com/theoremus-urban-solutions/trip-planner/internal"
	"github.com/theoremus-urban-solutions/trip-planner/network"
	"github.com/theoremus-urban-solutions/trip-planner/planner"
)

var validate = validator.New()

type coordinatePayload struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
}

func (c *coordinatePayload) coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: *c.Lat, Longitude: *c.Lon}
}

type planRequest struct {
	Origin        *coordinatePayload `json:"origin" validate:"required"`
	Destination   *coordinatePayload `json:"destination" validate:"required"`
	PassengerType string             `json:"passengerType"`
	PaymentMethod string             `json:"paymentMethod"`
	Balance       *float64           `json:"balance" validate:"omitempty,gte=0"`
	SortBy        string             `json:"sortBy" validate:"omitempty,oneof=fare duration"`
}

type planResponse struct {
	ResponseTimestamp string              `json:"responseTimestamp"`
	Itineraries       []planner.Itinerary `json:"itineraries"`
	SelectedIndex     int                 `json:"selectedIndex"`
}

type balanceErrorResponse struct {
	Error     string  `json:"error"`
	Required  float64 `json:"required"`
	Balance   float64 `json:"balance"`
	Shortfall float64 `json:"shortfall"`
	planResponse
}

func handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pt, err := fare.ParsePassengerType(req.PassengerType)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("passenger type %q: %w", req.PassengerType, err))
		return
	}
	pm, err := fare.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("payment method %q: %w", req.PaymentMethod, err))
		return
	}

	key := responses.memoKey(
		"plan",
		formatCoord(req.Origin), formatCoord(req.Destination),
		string(pt), string(pm),
		formatBalance(req.Balance), req.SortBy,
	)
	if buf, ok := responses.get(key); ok {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(buf)
		return
	}

	origin := req.Origin.coordinate()
	destination := req.Destination.coordinate()
	set, err := trip.PlanTrip(planner.TripRequest{
		Origin:        &origin,
		Destination:   &destination,
		PassengerType: pt,
		PaymentMethod: pm,
		Balance:       req.Balance,
	})
	if err != nil {
		var balErr *planner.InsufficientBalanceError
		switch {
		case errors.As(err, &balErr):
			writeJSON(w, http.StatusConflict, balanceErrorResponse{
				Error:        "insufficient balance",
				Required:     balErr.Required,
				Balance:      balErr.Balance,
				Shortfall:    balErr.Shortfall,
				planResponse: buildPlanResponse(set, req.SortBy),
			})
		case errors.Is(err, network.ErrEmptyGraph):
			writeError(w, http.StatusServiceUnavailable, err)
		case errors.Is(err, planner.ErrMissingInput), errors.Is(err, fare.ErrUnknownCategory):
			writeError(w, http.StatusBadRequest, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	resp := buildPlanResponse(set, req.SortBy)
	buf, err := json.Marshal(resp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	responses.set(key, buf)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf)
}

// buildPlanResponse applies the requested ordering and rounds totals for
// display. Leg fares are already display-rounded by the fare calculator.
func buildPlanResponse(set *planner.ItinerarySet, sortBy string) planResponse {
	if set == nil {
		return planResponse{ResponseTimestamp: internal.Iso8601Now()}
	}
	if sortBy == "duration" {
		set.SortByDuration()
	}
	its := make([]planner.Itinerary, len(set.Itineraries))
	copy(its, set.Itineraries)
	for i := range its {
		its[i].TotalFare = fare.Round2(its[i].TotalFare)
	}
	return planResponse{
		ResponseTimestamp: internal.Iso8601Now(),
		Itineraries:       its,
		SelectedIndex:     set.SelectedIndex,
	}
}

func formatCoord(c *coordinatePayload) string {
	return strconv.FormatFloat(*c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(*c.Lon, 'f', -1, 64)
}

func formatBalance(b *float64) string {
	if b == nil {
		return ""
	}
	return strconv.FormatFloat(*b, 'f', -1, 64)
}
