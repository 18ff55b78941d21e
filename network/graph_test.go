package network

import (
	"errors"
	"testing"

	"github.com/theoremus-urban-solutions/trip-planner/geo"
)

func twoStopNetwork() []Stop {
	return []Stop{
		{
			ID:       "A",
			Name:     "Stop A",
			Location: geo.Coordinate{Latitude: 0, Longitude: 0},
			Connections: []Connection{
				{To: "B", TravelTimeMin: 10, DistanceKm: 1, BaseFare: 5},
			},
		},
		{
			ID:       "B",
			Name:     "Stop B",
			Location: geo.Coordinate{Latitude: 0, Longitude: 0.01},
		},
	}
}

func TestNewStopGraph(t *testing.T) {
	g, err := NewStopGraph(twoStopNetwork())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Len() != 2 {
		t.Fatalf("expected 2 stops, got %d", g.Len())
	}

	s, err := g.StopByID("A")
	if err != nil {
		t.Fatalf("StopByID(A): %v", err)
	}
	if s.Name != "Stop A" {
		t.Errorf("expected Stop A, got %s", s.Name)
	}

	conns := g.ConnectionsFrom("A")
	if len(conns) != 1 {
		t.Fatalf("expected 1 connection from A, got %d", len(conns))
	}
	if conns[0].From != "A" || conns[0].To != "B" {
		t.Errorf("connection endpoints wrong: %+v", conns[0])
	}
	if conns[0].Mode != ModeBus {
		t.Errorf("expected default mode bus, got %s", conns[0].Mode)
	}

	if _, err := g.StopByID("Z"); !errors.Is(err, ErrStopNotFound) {
		t.Errorf("expected ErrStopNotFound, got %v", err)
	}
}

func TestNewStopGraphInvalidData(t *testing.T) {
	tests := []struct {
		name  string
		stops []Stop
	}{
		{
			name: "duplicate stop id",
			stops: []Stop{
				{ID: "A", Name: "one"},
				{ID: "A", Name: "two"},
			},
		},
		{
			name: "dangling connection",
			stops: []Stop{
				{ID: "A", Connections: []Connection{{To: "ghost", TravelTimeMin: 5, DistanceKm: 1}}},
			},
		},
		{
			name: "non-positive travel time",
			stops: []Stop{
				{ID: "A"},
				{ID: "B", Connections: []Connection{{To: "A", TravelTimeMin: 0, DistanceKm: 1}}},
			},
		},
		{
			name: "negative fare",
			stops: []Stop{
				{ID: "A"},
				{ID: "B", Connections: []Connection{{To: "A", TravelTimeMin: 5, DistanceKm: 1, BaseFare: -1}}},
			},
		},
		{
			name:  "missing stop id",
			stops: []Stop{{Name: "anonymous"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStopGraph(tt.stops)
			var invalid *InvalidNetworkDataError
			if !errors.As(err, &invalid) {
				t.Errorf("expected InvalidNetworkDataError, got %v", err)
			}
		})
	}
}

func TestNearestStop(t *testing.T) {
	g, err := NewStopGraph([]Stop{
		{ID: "A", Name: "far", Location: geo.Coordinate{Latitude: 1, Longitude: 1}},
		{ID: "B", Name: "near", Location: geo.Coordinate{Latitude: 0.001, Longitude: 0.001}},
		{ID: "C", Name: "mid", Location: geo.Coordinate{Latitude: 0.5, Longitude: 0.5}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	point := geo.Coordinate{Latitude: 0, Longitude: 0}
	first, err := NearestStop(point, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != "B" {
		t.Errorf("expected nearest stop B, got %s", first.ID)
	}

	// repeated calls stay deterministic
	for i := 0; i < 10; i++ {
		s, err := NearestStop(point, g)
		if err != nil || s.ID != first.ID {
			t.Fatalf("nearest stop changed between calls: %v, %v", s, err)
		}
	}
}

func TestNearestStopTieKeepsFirst(t *testing.T) {
	g, err := NewStopGraph([]Stop{
		{ID: "A", Location: geo.Coordinate{Latitude: 0, Longitude: 1}},
		{ID: "B", Location: geo.Coordinate{Latitude: 0, Longitude: -1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := NearestStop(geo.Coordinate{Latitude: 0, Longitude: 0}, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID != "A" {
		t.Errorf("tie should keep first stop in load order, got %s", s.ID)
	}
}

func TestNearestStopEmptyGraph(t *testing.T) {
	g, err := NewStopGraph(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NearestStop(geo.Coordinate{}, g); !errors.Is(err, ErrEmptyGraph) {
		t.Errorf("expected ErrEmptyGraph, got %v", err)
	}
}
