package integration

import (
	"errors"
	"testing"

	"github.com/theoremus-urban-solutions/trip-planner/fare"
	"github.com/theoremus-urban-solutions/trip-planner/geo"
	"github.com/theoremus-urban-solutions/trip-planner/network"
	"github.com/theoremus-urban-solutions/trip-planner/planner"
	"github.com/theoremus-urban-solutions/trip-planner/tests/helpers"
)

func planOverFixture(t *testing.T, req planner.TripRequest) (*planner.ItinerarySet, error) {
	t.Helper()
	g, tariff := helpers.LoadTestNetwork(t, "izmit.json")
	p := planner.New(network.NewSnapshot(g, tariff), planner.Options{})
	return p.PlanTrip(req)
}

func TestPlanAcrossIzmitNetwork(t *testing.T) {
	origin := geo.Coordinate{Latitude: 40.79, Longitude: 29.87}    // near Umuttepe
	destination := geo.Coordinate{Latitude: 40.766, Longitude: 29.941} // near Merkez

	set, err := planOverFixture(t, planner.TripRequest{
		Origin:        &origin,
		Destination:   &destination,
		PassengerType: fare.General,
		PaymentMethod: fare.Cash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(set.Itineraries) != 4 {
		t.Fatalf("expected 4 itineraries, got %d", len(set.Itineraries))
	}
	for i := 1; i < len(set.Itineraries); i++ {
		if set.Itineraries[i].TotalFare < set.Itineraries[i-1].TotalFare {
			t.Errorf("itineraries not fare-ascending at index %d", i)
		}
	}
	if set.SelectedIndex != 0 {
		t.Errorf("expected default selection 0, got %d", set.SelectedIndex)
	}
	if set.Selected().Label != planner.LabelWalking {
		t.Errorf("walking is free and should rank first, got %s", set.Selected().Label)
	}

	var fastest *planner.Itinerary
	for i := range set.Itineraries {
		if set.Itineraries[i].Label == planner.LabelFastest {
			fastest = &set.Itineraries[i]
		}
	}
	if fastest == nil {
		t.Fatal("transit itinerary missing from connected network")
	}
	if fastest.Legs[0].Mode != network.ModeTaxi {
		t.Errorf("first leg should be the access taxi, got %s", fastest.Legs[0].Mode)
	}
	// legs must chain: each leg starts where the previous one ended
	for i := 1; i < len(fastest.Legs); i++ {
		if fastest.Legs[i].From != fastest.Legs[i-1].To {
			t.Errorf("legs not contiguous at %d: %s -> %s", i, fastest.Legs[i-1].To, fastest.Legs[i].From)
		}
	}
	for _, it := range set.Itineraries {
		if it.TotalFare < 0 || it.TotalDurationMin < 0 || it.TotalDistanceKm < 0 {
			t.Errorf("negative totals in %s", it.Label)
		}
	}
}

func TestReselectionAndBalanceCheck(t *testing.T) {
	origin := geo.Coordinate{Latitude: 40.79, Longitude: 29.87}
	destination := geo.Coordinate{Latitude: 40.766, Longitude: 29.941}
	balance := 1.0

	set, err := planOverFixture(t, planner.TripRequest{
		Origin:        &origin,
		Destination:   &destination,
		PassengerType: fare.General,
		PaymentMethod: fare.TransitCard,
		Balance:       &balance,
	})
	// free walking itinerary is selected, so planning itself succeeds
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// switch to the most expensive alternative and re-verify
	last := len(set.Itineraries) - 1
	if err := set.Select(last); err != nil {
		t.Fatalf("reselection failed: %v", err)
	}
	err = planner.VerifyBalance(set.Selected(), fare.TransitCard, balance)
	var balErr *planner.InsufficientBalanceError
	if !errors.As(err, &balErr) {
		t.Fatalf("expected InsufficientBalanceError, got %v", err)
	}
	if balErr.Shortfall != fare.Round2(balErr.Required-balance) {
		t.Errorf("shortfall arithmetic wrong: %+v", balErr)
	}
	if !set.Selected().Unpayable {
		t.Error("expensive itinerary should be flagged unpayable")
	}
}

func TestDurationOrdering(t *testing.T) {
	origin := geo.Coordinate{Latitude: 40.79, Longitude: 29.87}
	destination := geo.Coordinate{Latitude: 40.766, Longitude: 29.941}

	set, err := planOverFixture(t, planner.TripRequest{
		Origin:        &origin,
		Destination:   &destination,
		PassengerType: fare.General,
		PaymentMethod: fare.Cash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set.SortByDuration()
	for i := 1; i < len(set.Itineraries); i++ {
		if set.Itineraries[i].TotalDurationMin < set.Itineraries[i-1].TotalDurationMin {
			t.Errorf("itineraries not duration-ascending at index %d", i)
		}
	}
	if set.SelectedIndex != 0 {
		t.Errorf("re-sort should reset selection, got %d", set.SelectedIndex)
	}
}

func TestReloadSwapsAtomically(t *testing.T) {
	g, tariff := helpers.LoadTestNetwork(t, "izmit.json")
	snap := network.NewSnapshot(g, tariff)
	p := planner.New(snap, planner.Options{})

	origin := geo.Coordinate{Latitude: 40.79, Longitude: 29.87}
	destination := geo.Coordinate{Latitude: 40.766, Longitude: 29.941}
	req := planner.TripRequest{
		Origin:        &origin,
		Destination:   &destination,
		PassengerType: fare.General,
		PaymentMethod: fare.Cash,
	}

	if _, err := p.PlanTrip(req); err != nil {
		t.Fatalf("plan before swap: %v", err)
	}

	empty, err := network.NewStopGraph(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap.Swap(empty, tariff)

	if _, err := p.PlanTrip(req); !errors.Is(err, network.ErrEmptyGraph) {
		t.Errorf("planner should see the swapped-in graph, got %v", err)
	}
}
