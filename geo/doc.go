// Package geo provides the coordinate value type and great-circle
// distance math used across the planner.
package geo
