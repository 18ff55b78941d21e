package routing

import (
	"container/heap"
	"errors"

	"github.com/theoremus-urban-solutions/trip-planner/network"
)

// ErrNoPath is returned when source and target are not connected. The
// caller is expected to degrade (drop that alternative), not abort.
var ErrNoPath = errors.New("routing: no path between stops")

// WeightFunc selects the cost of traversing one connection.
type WeightFunc func(network.Connection) float64

// ByTime weights edges by travel time in minutes.
func ByTime(c network.Connection) float64 { return c.TravelTimeMin }

// ByFare weights edges by base fare.
func ByFare(c network.Connection) float64 { return c.BaseFare }

// Path is an ordered walk through the graph plus its accumulated weight.
type Path struct {
	Connections []network.Connection
	Weight      float64
}

// TotalTimeMin sums travel time over the path.
func (p Path) TotalTimeMin() float64 {
	var t float64
	for _, c := range p.Connections {
		t += c.TravelTimeMin
	}
	return t
}

// TotalDistanceKm sums distance over the path.
func (p Path) TotalDistanceKm() float64 {
	var d float64
	for _, c := range p.Connections {
		d += c.DistanceKm
	}
	return d
}

// ShortestPath runs Dijkstra from fromID to toID under the given weight.
// Ties on weight prefer fewer hops, then the path discovered first in the
// graph's stop load order, so results are deterministic for a fixed graph.
// Returns an empty path with zero weight when fromID == toID, and
// ErrNoPath when the stops are not connected.
func ShortestPath(g *network.StopGraph, fromID, toID string, weight WeightFunc) (Path, error) {
	if _, err := g.StopByID(fromID); err != nil {
		return Path{}, err
	}
	if _, err := g.StopByID(toID); err != nil {
		return Path{}, err
	}
	if fromID == toID {
		return Path{}, nil
	}

	dist := map[string]pathCost{fromID: {}}
	cameFrom := map[string]network.Connection{}
	settled := map[string]bool{}

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{stopID: fromID})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		cur := item.stopID
		if settled[cur] {
			continue
		}
		settled[cur] = true
		if cur == toID {
			return Path{Connections: reconstructPath(cameFrom, fromID, toID), Weight: dist[toID].weight}, nil
		}
		d := dist[cur]
		for _, c := range g.ConnectionsFrom(cur) {
			if settled[c.To] {
				continue
			}
			cand := pathCost{weight: d.weight + weight(c), hops: d.hops + 1}
			old, seen := dist[c.To]
			if seen && !better(cand, old) {
				continue
			}
			dist[c.To] = cand
			cameFrom[c.To] = c
			heap.Push(pq, &pqItem{stopID: c.To, priority: cand.weight, hops: cand.hops, seq: pq.nextSeq()})
		}
	}
	return Path{}, ErrNoPath
}

type pathCost struct {
	weight float64
	hops   int
}

// better reports whether a strictly improves on b: lower weight, or equal
// weight with fewer hops. A full tie keeps the incumbent.
func better(a, b pathCost) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.hops < b.hops
}

func reconstructPath(cameFrom map[string]network.Connection, fromID, toID string) []network.Connection {
	var path []network.Connection
	cur := toID
	for cur != fromID {
		c, ok := cameFrom[cur]
		if !ok {
			return nil
		}
		path = append([]network.Connection{c}, path...)
		cur = c.From
	}
	return path
}

type pqItem struct {
	stopID   string
	priority float64
	hops     int
	seq      int
}

type priorityQueue struct {
	items []*pqItem
	seq   int
}

func (pq *priorityQueue) nextSeq() int {
	pq.seq++
	return pq.seq
}

func (pq *priorityQueue) Len() int { return len(pq.items) }

func (pq *priorityQueue) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.hops != b.hops {
		return a.hops < b.hops
	}
	return a.seq < b.seq
}

func (pq *priorityQueue) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *priorityQueue) Push(x any) {
	pq.items = append(pq.items, x.(*pqItem))
}

func (pq *priorityQueue) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]
	return item
}
