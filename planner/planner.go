package planner

import (
	"fmt"

	"github.com/theoremus-urban-solutions/trip-planner/fare"
	"github.com/theoremus-urban-solutions/trip-planner/network"
)

// state tracks one PlanTrip call through its phases. A fresh state
// machine is created per request; nothing carries over between trips.
type state int

const (
	stateIdle state = iota
	stateValidating
	stateResolvingStops
	statePathfinding
	statePricing
	stateReady
	stateFailed
)

// Options tunes the duration estimates for taxi and walking legs.
type Options struct {
	TaxiSpeedKmh    float64
	WalkingSpeedKmh float64
}

// Planner is the facade over nearest-stop lookup, pathfinding, itinerary
// generation, and pricing.
type Planner struct {
	snap *network.Snapshot
	opts Options
}

// New creates a planner over the given network snapshot.
func New(snap *network.Snapshot, opts Options) *Planner {
	return &Planner{snap: snap, opts: opts}
}

// PlanTrip plans one trip and returns the ranked itinerary set, sorted by
// total fare ascending with index 0 selected.
//
// When the payment method is TransitCard and the balance does not cover
// the selected itinerary, the set is still returned, unpayable
// itineraries are flagged, and the error is an *InsufficientBalanceError
// carrying the shortfall; the caller may offer the remaining alternatives.
func (p *Planner) PlanTrip(req TripRequest) (*ItinerarySet, error) {
	run := planRun{state: stateIdle}
	graph, tariff := p.snap.Current()

	run.state = stateValidating
	if err := validate(req); err != nil {
		return nil, run.fail(err)
	}

	run.state = stateResolvingStops
	boarding, err := network.NearestStop(*req.Origin, graph)
	if err != nil {
		return nil, run.fail(err)
	}
	alighting, err := network.NearestStop(*req.Destination, graph)
	if err != nil {
		return nil, run.fail(err)
	}

	run.state = statePathfinding
	gen := NewGenerator(graph, tariff, p.opts.TaxiSpeedKmh, p.opts.WalkingSpeedKmh)

	run.state = statePricing
	alts, err := gen.Alternatives(*req.Origin, *req.Destination, boarding, alighting, req.PassengerType, req.PaymentMethod)
	if err != nil {
		return nil, run.fail(err)
	}

	set := &ItinerarySet{Itineraries: alts}
	set.SortByFare()

	if req.PaymentMethod == fare.TransitCard {
		for i := range set.Itineraries {
			set.Itineraries[i].Unpayable = *req.Balance < set.Itineraries[i].TotalFare
		}
		if err := VerifyBalance(set.Selected(), req.PaymentMethod, *req.Balance); err != nil {
			run.state = stateFailed
			return set, err
		}
	}

	run.state = stateReady
	return set, nil
}

// VerifyBalance checks whether the given itinerary is payable with the
// method and balance. Only TransitCard is balance-constrained. Meant for
// re-selection as well as the initial plan.
func VerifyBalance(it *Itinerary, m fare.PaymentMethod, balance float64) error {
	if it == nil || m != fare.TransitCard {
		return nil
	}
	required := fare.Round2(it.TotalFare)
	if balance >= required {
		return nil
	}
	return &InsufficientBalanceError{
		Required:  required,
		Balance:   balance,
		Shortfall: fare.Round2(required - balance),
	}
}

func validate(req TripRequest) error {
	if req.Origin == nil {
		return fmt.Errorf("origin: %w", ErrMissingInput)
	}
	if req.Destination == nil {
		return fmt.Errorf("destination: %w", ErrMissingInput)
	}
	if !req.PassengerType.Valid() {
		return fmt.Errorf("passenger type %q: %w", req.PassengerType, fare.ErrUnknownCategory)
	}
	if !req.PaymentMethod.Valid() {
		return fmt.Errorf("payment method %q: %w", req.PaymentMethod, fare.ErrUnknownCategory)
	}
	if req.PaymentMethod == fare.TransitCard {
		if req.Balance == nil {
			return fmt.Errorf("transit card balance: %w", ErrMissingInput)
		}
		if *req.Balance < 0 {
			return fmt.Errorf("transit card balance must not be negative: %w", ErrMissingInput)
		}
	}
	return nil
}

type planRun struct {
	state state
}

func (r *planRun) fail(err error) error {
	r.state = stateFailed
	return err
}
