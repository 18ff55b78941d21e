package network

import (
	"github.com/theoremus-urban-solutions/trip-planner/geo"
)

// StopGraph is the immutable stop/edge graph. Stops keep their load
// order, which makes every iteration over the graph deterministic.
type StopGraph struct {
	stops []*Stop
	byID  map[string]*Stop
}

// NewStopGraph builds a graph from the given stops. It fails with an
// *InvalidNetworkDataError when a stop id is duplicated, a connection
// references a stop outside the snapshot, or an edge carries a negative
// weight.
func NewStopGraph(stops []Stop) (*StopGraph, error) {
	g := &StopGraph{
		stops: make([]*Stop, 0, len(stops)),
		byID:  make(map[string]*Stop, len(stops)),
	}
	for i := range stops {
		s := stops[i]
		if s.ID == "" {
			return nil, &InvalidNetworkDataError{StopID: s.Name, Reason: "missing stop id"}
		}
		if _, dup := g.byID[s.ID]; dup {
			return nil, &InvalidNetworkDataError{StopID: s.ID, Reason: "duplicate stop id"}
		}
		g.byID[s.ID] = &s
		g.stops = append(g.stops, &s)
	}
	for _, s := range g.stops {
		for i := range s.Connections {
			c := &s.Connections[i]
			c.From = s.ID
			if c.Mode == "" {
				c.Mode = ModeBus
			}
			if _, ok := g.byID[c.To]; !ok {
				return nil, &InvalidNetworkDataError{StopID: s.ID, Reason: "connection references unknown stop " + c.To}
			}
			if c.TravelTimeMin <= 0 {
				return nil, &InvalidNetworkDataError{StopID: s.ID, Reason: "connection travel time must be positive"}
			}
			if c.DistanceKm <= 0 {
				return nil, &InvalidNetworkDataError{StopID: s.ID, Reason: "connection distance must be positive"}
			}
			if c.BaseFare < 0 {
				return nil, &InvalidNetworkDataError{StopID: s.ID, Reason: "connection fare must not be negative"}
			}
		}
	}
	return g, nil
}

// Stops returns all stops in load order. The slice is shared; callers
// must not mutate it.
func (g *StopGraph) Stops() []*Stop { return g.stops }

// Len returns the number of stops.
func (g *StopGraph) Len() int { return len(g.stops) }

// StopByID looks a stop up by id.
func (g *StopGraph) StopByID(id string) (*Stop, error) {
	s, ok := g.byID[id]
	if !ok {
		return nil, ErrStopNotFound
	}
	return s, nil
}

// ConnectionsFrom returns the outgoing connections of a stop, or nil for
// an unknown stop id.
func (g *StopGraph) ConnectionsFrom(id string) []Connection {
	s, ok := g.byID[id]
	if !ok {
		return nil
	}
	return s.Connections
}

// NearestStop scans all stops and returns the one closest to point by
// great-circle distance. Ties keep the first stop in load order, so the
// result is stable for a fixed graph. Fails with ErrEmptyGraph when the
// graph has no stops.
func NearestStop(point geo.Coordinate, g *StopGraph) (*Stop, error) {
	if g == nil || len(g.stops) == 0 {
		return nil, ErrEmptyGraph
	}
	best := g.stops[0]
	bestDist := geo.DistanceKm(point, best.Location)
	for _, s := range g.stops[1:] {
		if d := geo.DistanceKm(point, s.Location); d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best, nil
}
