package network

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/theoremus-urban-solutions/trip-planner/geo"
)

type networkFile struct {
	Stops []stopRecord `json:"stops"`
	Taxi  TaxiTariff   `json:"taxi"`
}

type stopRecord struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Lat         float64            `json:"lat"`
	Lon         float64            `json:"lon"`
	Connections []connectionRecord `json:"connections"`
}

type connectionRecord struct {
	StopID        string  `json:"stopId"`
	Mode          Mode    `json:"mode"`
	TravelTimeMin float64 `json:"travelTimeMin"`
	DistanceKm    float64 `json:"distanceKm"`
	Fare          float64 `json:"fare"`
}

// LoadNetworkFile reads a network data file and builds the stop graph and
// taxi tariff from it. Structural problems in the data surface as
// *InvalidNetworkDataError; the file is read once and never watched.
func LoadNetworkFile(path string) (*StopGraph, TaxiTariff, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, TaxiTariff{}, fmt.Errorf("read network file: %w", err)
	}
	return ParseNetwork(data)
}

// ParseNetwork builds the stop graph and taxi tariff from raw network
// JSON. Callers that fetch the data themselves (HTTP, object storage)
// can use this directly.
func ParseNetwork(data []byte) (*StopGraph, TaxiTariff, error) {
	var nf networkFile
	if err := json.Unmarshal(data, &nf); err != nil {
		return nil, TaxiTariff{}, fmt.Errorf("parse network file: %w", err)
	}
	if nf.Taxi.OpeningFee < 0 || nf.Taxi.CostPerKm < 0 {
		return nil, TaxiTariff{}, &InvalidNetworkDataError{StopID: "taxi", Reason: "tariff must not be negative"}
	}

	stops := make([]Stop, 0, len(nf.Stops))
	for _, r := range nf.Stops {
		s := Stop{
			ID:       r.ID,
			Name:     r.Name,
			Location: geo.Coordinate{Latitude: r.Lat, Longitude: r.Lon},
		}
		for _, c := range r.Connections {
			s.Connections = append(s.Connections, Connection{
				To:            c.StopID,
				Mode:          c.Mode,
				TravelTimeMin: c.TravelTimeMin,
				DistanceKm:    c.DistanceKm,
				BaseFare:      c.Fare,
			})
		}
		stops = append(stops, s)
	}

	g, err := NewStopGraph(stops)
	if err != nil {
		return nil, TaxiTariff{}, err
	}
	return g, nf.Taxi, nil
}
