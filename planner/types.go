package planner

import (
	"errors"
	"sort"

	"github.com/theoremus-urban-solutions/trip-planner/fare"
	"github.com/theoremus-urban-solutions/trip-planner/geo"
	"github.com/theoremus-urban-solutions/trip-planner/network"
)

// Itinerary labels. The label names the shape of the route, not its rank;
// the cheapest transit path can still end up first in the set.
const (
	LabelFastest  = "Fastest"
	LabelCheapest = "Cheapest"
	LabelTaxiOnly = "Taxi-only"
	LabelWalking  = "Walking"
)

// TripRequest describes one trip to plan. Origin and Destination are
// pointers so a missing coordinate is distinguishable from (0,0).
// Balance is required only for TransitCard payment.
type TripRequest struct {
	Origin        *geo.Coordinate
	Destination   *geo.Coordinate
	PassengerType fare.PassengerType
	PaymentMethod fare.PaymentMethod
	Balance       *float64
}

// Leg is one travel segment of an itinerary. DiscountedFare is the
// display value (2 dp); itinerary totals are accumulated from the
// unrounded prices so rounding error never compounds across legs.
type Leg struct {
	From           string         `json:"from"`
	To             string         `json:"to"`
	FromCoord      geo.Coordinate `json:"fromCoord"`
	ToCoord        geo.Coordinate `json:"toCoord"`
	Mode           network.Mode   `json:"mode"`
	DurationMin    float64        `json:"durationMin"`
	DistanceKm     float64        `json:"distanceKm"`
	BaseFare       float64        `json:"baseFare"`
	DiscountedFare float64        `json:"discountedFare"`
}

// Itinerary is a complete door-to-door plan. TotalFare is the unrounded
// sum of discounted leg fares; round with fare.Round2 for display.
type Itinerary struct {
	Label            string  `json:"label"`
	Legs             []Leg   `json:"legs"`
	TotalDurationMin float64 `json:"totalDurationMin"`
	TotalDistanceKm  float64 `json:"totalDistanceKm"`
	TotalFare        float64 `json:"totalFare"`
	Unpayable        bool    `json:"unpayable,omitempty"`
}

// ItinerarySet is the ranked set of alternatives for one request.
type ItinerarySet struct {
	Itineraries   []Itinerary `json:"itineraries"`
	SelectedIndex int         `json:"selectedIndex"`
}

// SortByFare orders itineraries by total fare ascending and resets the
// selection to the first entry. The sort is stable, so equal fares keep
// their generation order.
func (s *ItinerarySet) SortByFare() {
	sort.SliceStable(s.Itineraries, func(i, j int) bool {
		return s.Itineraries[i].TotalFare < s.Itineraries[j].TotalFare
	})
	s.SelectedIndex = 0
}

// SortByDuration orders itineraries by total duration ascending and
// resets the selection to the first entry.
func (s *ItinerarySet) SortByDuration() {
	sort.SliceStable(s.Itineraries, func(i, j int) bool {
		return s.Itineraries[i].TotalDurationMin < s.Itineraries[j].TotalDurationMin
	})
	s.SelectedIndex = 0
}

// Select switches the selected itinerary without recomputing anything.
func (s *ItinerarySet) Select(i int) error {
	if i < 0 || i >= len(s.Itineraries) {
		return errors.New("planner: selection index out of range")
	}
	s.SelectedIndex = i
	return nil
}

// Selected returns the currently selected itinerary, or nil for an empty
// set.
func (s *ItinerarySet) Selected() *Itinerary {
	if len(s.Itineraries) == 0 {
		return nil
	}
	return &s.Itineraries[s.SelectedIndex]
}
