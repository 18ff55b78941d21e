// Package fare prices legs: a passenger-category discount followed by a
// payment-method multiplier.
package fare
