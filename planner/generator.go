package planner

import (
	"errors"
	"fmt"

	"github.com/theoremus-urban-solutions/trip-planner/fare"
	"github.com/theoremus-urban-solutions/trip-planner/geo"
	"github.com/theoremus-urban-solutions/trip-planner/network"
	"github.com/theoremus-urban-solutions/trip-planner/routing"
)

// Default speed assumptions for estimated legs, in km/h.
const (
	DefaultTaxiSpeedKmh    = 40.0
	DefaultWalkingSpeedKmh = 5.0
)

const (
	originName      = "Origin"
	destinationName = "Destination"
)

// Generator builds the fixed catalogue of itinerary shapes for one
// request: time- and fare-optimal transit routes plus the taxi-only and
// walking-only fallbacks.
type Generator struct {
	graph        *network.StopGraph
	tariff       network.TaxiTariff
	taxiSpeed    float64
	walkingSpeed float64
}

// NewGenerator creates a generator over one network snapshot. Zero
// speeds fall back to the package defaults.
func NewGenerator(g *network.StopGraph, tariff network.TaxiTariff, taxiSpeedKmh, walkingSpeedKmh float64) *Generator {
	if taxiSpeedKmh <= 0 {
		taxiSpeedKmh = DefaultTaxiSpeedKmh
	}
	if walkingSpeedKmh <= 0 {
		walkingSpeedKmh = DefaultWalkingSpeedKmh
	}
	return &Generator{graph: g, tariff: tariff, taxiSpeed: taxiSpeedKmh, walkingSpeed: walkingSpeedKmh}
}

// Alternatives builds and prices every itinerary shape for the request.
// Transit shapes are omitted when no path connects the boarding and
// alighting stops; the taxi-only and walking-only alternatives always
// exist, so the result is never empty.
func (gen *Generator) Alternatives(origin, destination geo.Coordinate, boarding, alighting *network.Stop, p fare.PassengerType, m fare.PaymentMethod) ([]Itinerary, error) {
	var out []Itinerary

	fastest, err := gen.transitItinerary(LabelFastest, origin, boarding, alighting, routing.ByTime, p, m)
	if err != nil && !errors.Is(err, routing.ErrNoPath) {
		return nil, err
	}
	if err == nil {
		out = append(out, fastest)
	}

	cheapest, err := gen.transitItinerary(LabelCheapest, origin, boarding, alighting, routing.ByFare, p, m)
	if err != nil && !errors.Is(err, routing.ErrNoPath) {
		return nil, err
	}
	if err == nil {
		out = append(out, cheapest)
	}

	taxi, err := gen.singleLegItinerary(LabelTaxiOnly, origin, destination, network.ModeTaxi, p, m)
	if err != nil {
		return nil, err
	}
	out = append(out, taxi)

	walk, err := gen.singleLegItinerary(LabelWalking, origin, destination, network.ModeWalking, p, m)
	if err != nil {
		return nil, err
	}
	out = append(out, walk)

	return out, nil
}

// transitItinerary is the access-taxi-plus-transit shape: a metered taxi
// leg from the origin to the boarding stop, then the weighted shortest
// path through the graph. The alighting stop is treated as
// destination-adjacent; no egress leg is priced.
func (gen *Generator) transitItinerary(label string, origin geo.Coordinate, boarding, alighting *network.Stop, weight routing.WeightFunc, p fare.PassengerType, m fare.PaymentMethod) (Itinerary, error) {
	path, err := routing.ShortestPath(gen.graph, boarding.ID, alighting.ID, weight)
	if err != nil {
		return Itinerary{}, fmt.Errorf("%s transit path: %w", label, err)
	}

	accessKm := geo.DistanceKm(origin, boarding.Location)
	legs := []Leg{{
		From:        originName,
		To:          boarding.Name,
		FromCoord:   origin,
		ToCoord:     boarding.Location,
		Mode:        network.ModeTaxi,
		DurationMin: estimateMinutes(accessKm, gen.taxiSpeed),
		DistanceKm:  accessKm,
		BaseFare:    gen.tariff.Fare(accessKm),
	}}

	for _, c := range path.Connections {
		from, err := gen.graph.StopByID(c.From)
		if err != nil {
			return Itinerary{}, err
		}
		to, err := gen.graph.StopByID(c.To)
		if err != nil {
			return Itinerary{}, err
		}
		legs = append(legs, Leg{
			From:        from.Name,
			To:          to.Name,
			FromCoord:   from.Location,
			ToCoord:     to.Location,
			Mode:        c.Mode,
			DurationMin: c.TravelTimeMin,
			DistanceKm:  c.DistanceKm,
			BaseFare:    c.BaseFare,
		})
	}

	return priceItinerary(label, legs, p, m)
}

// singleLegItinerary is the door-to-door taxi or walking shape.
func (gen *Generator) singleLegItinerary(label string, origin, destination geo.Coordinate, mode network.Mode, p fare.PassengerType, m fare.PaymentMethod) (Itinerary, error) {
	km := geo.DistanceKm(origin, destination)
	leg := Leg{
		From:       originName,
		To:         destinationName,
		FromCoord:  origin,
		ToCoord:    destination,
		Mode:       mode,
		DistanceKm: km,
	}
	switch mode {
	case network.ModeTaxi:
		leg.DurationMin = estimateMinutes(km, gen.taxiSpeed)
		leg.BaseFare = gen.tariff.Fare(km)
	case network.ModeWalking:
		leg.DurationMin = estimateMinutes(km, gen.walkingSpeed)
	}
	return priceItinerary(label, []Leg{leg}, p, m)
}

// priceItinerary runs every leg through the fare calculator and sums the
// unrounded results into the itinerary totals.
func priceItinerary(label string, legs []Leg, p fare.PassengerType, m fare.PaymentMethod) (Itinerary, error) {
	it := Itinerary{Label: label, Legs: legs}
	for i := range it.Legs {
		priced, err := fare.Price(it.Legs[i].BaseFare, p, m)
		if err != nil {
			return Itinerary{}, err
		}
		it.Legs[i].DiscountedFare = fare.Round2(priced)
		it.TotalFare += priced
		it.TotalDurationMin += it.Legs[i].DurationMin
		it.TotalDistanceKm += it.Legs[i].DistanceKm
	}
	return it, nil
}

func estimateMinutes(distanceKm, speedKmh float64) float64 {
	if speedKmh <= 0 {
		return 0
	}
	return distanceKm / speedKmh * 60
}
