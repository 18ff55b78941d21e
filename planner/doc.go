/*
Package planner composes door-to-door itineraries for one trip request.

The planner resolves the nearest boarding and alighting stops, computes
time- and fare-weighted transit paths, adds taxi-only and walking-only
alternatives, prices every leg for the request's passenger type and
payment method, and returns the ranked set.

# Usage

	snap := network.NewSnapshot(graph, tariff)
	p := planner.New(snap, planner.Options{})

	set, err := p.PlanTrip(planner.TripRequest{
	    Origin:        &geo.Coordinate{Latitude: 40.765, Longitude: 29.940},
	    Destination:   &geo.Coordinate{Latitude: 40.779, Longitude: 29.951},
	    PassengerType: fare.Student,
	    PaymentMethod: fare.Cash,
	})

A returned set is already sorted by total fare ascending with index 0
selected. Consumers may re-sort or re-select without recomputation.

Planning is a stateless pure computation over an immutable network
snapshot; any number of PlanTrip calls may run concurrently.
*/
package planner
