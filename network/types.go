package network

import (
	"github.com/theoremus-urban-solutions/trip-planner/geo"
)

// Mode identifies how a connection or leg is traveled.
type Mode string

const (
	ModeBus     Mode = "bus"
	ModeTaxi    Mode = "taxi"
	ModeWalking Mode = "walking"
)

// Connection is a directed edge between two stops.
type Connection struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	Mode          Mode    `json:"mode"`
	TravelTimeMin float64 `json:"travelTimeMin"`
	DistanceKm    float64 `json:"distanceKm"`
	BaseFare      float64 `json:"baseFare"`
}

// Stop is a fixed transit location in the network.
type Stop struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Location    geo.Coordinate `json:"location"`
	Connections []Connection   `json:"connections"`
}

// TaxiTariff prices taxi legs: opening fee plus a per-kilometer rate.
// It applies to access/egress legs and the taxi-only alternative, never
// to edges inside the graph.
type TaxiTariff struct {
	OpeningFee float64 `json:"openingFee"`
	CostPerKm  float64 `json:"costPerKm"`
}

// Fare returns the metered taxi fare for a trip of the given length.
func (t TaxiTariff) Fare(distanceKm float64) float64 {
	return t.OpeningFee + t.CostPerKm*distanceKm
}
