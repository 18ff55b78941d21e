package network

import (
	"sync/atomic"
)

// Snapshot holds the current graph and tariff behind an atomic pointer.
// Readers call Current and keep using that state for the whole request;
// Swap installs a replacement built elsewhere. There is no in-place
// mutation path.
type Snapshot struct {
	state atomic.Pointer[networkState]
}

type networkState struct {
	graph  *StopGraph
	tariff TaxiTariff
}

// NewSnapshot creates a snapshot holding the given graph and tariff.
func NewSnapshot(g *StopGraph, tariff TaxiTariff) *Snapshot {
	s := &Snapshot{}
	s.state.Store(&networkState{graph: g, tariff: tariff})
	return s
}

// Current returns the graph and tariff as of now.
func (s *Snapshot) Current() (*StopGraph, TaxiTariff) {
	st := s.state.Load()
	return st.graph, st.tariff
}

// Swap atomically replaces the held graph and tariff.
func (s *Snapshot) Swap(g *StopGraph, tariff TaxiTariff) {
	s.state.Store(&networkState{graph: g, tariff: tariff})
}
