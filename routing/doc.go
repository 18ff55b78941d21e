// Package routing computes minimum-weight paths through the stop graph.
//
// The edge weight is pluggable so the planner can ask for both a fastest
// (time-weighted) and a cheapest (fare-weighted) path over the same graph.
// All weights are non-negative by the network package's load-time
// validation, so plain Dijkstra applies.
package routing
