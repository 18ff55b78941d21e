package fare

import (
	"errors"
	"math"
	"strings"
)

// ErrUnknownCategory is returned for a passenger type or payment method
// outside the recognized set. Requests carrying one are rejected at
// validation, never retried.
var ErrUnknownCategory = errors.New("fare: unknown passenger type or payment method")

// PassengerType is the fare-discount category.
type PassengerType string

const (
	General PassengerType = "general"
	Student PassengerType = "student"
	Senior  PassengerType = "senior"
)

// PaymentMethod is the fare-multiplier category.
type PaymentMethod string

const (
	Cash        PaymentMethod = "cash"
	Card        PaymentMethod = "card"
	TransitCard PaymentMethod = "transitcard"
)

// Seniors ride free; intended policy carried over from the source system.
var discountRates = map[PassengerType]float64{
	General: 0,
	Student: 0.5,
	Senior:  1.0,
}

var paymentMultipliers = map[PaymentMethod]float64{
	Cash:        1.0,
	Card:        1.10,
	TransitCard: 0.95,
}

// ParsePassengerType normalizes a passenger type string. Empty input
// defaults to General.
func ParsePassengerType(s string) (PassengerType, error) {
	if s == "" {
		return General, nil
	}
	p := PassengerType(strings.ToLower(s))
	if _, ok := discountRates[p]; !ok {
		return "", ErrUnknownCategory
	}
	return p, nil
}

// ParsePaymentMethod normalizes a payment method string. Empty input
// defaults to Cash.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	if s == "" {
		return Cash, nil
	}
	m := PaymentMethod(strings.ToLower(s))
	if _, ok := paymentMultipliers[m]; !ok {
		return "", ErrUnknownCategory
	}
	return m, nil
}

// Valid reports whether p is a recognized passenger type.
func (p PassengerType) Valid() bool {
	_, ok := discountRates[p]
	return ok
}

// Valid reports whether m is a recognized payment method.
func (m PaymentMethod) Valid() bool {
	_, ok := paymentMultipliers[m]
	return ok
}

// Price applies the passenger discount and then the payment multiplier to
// a base fare. The result is unrounded; totals should accumulate these
// values and round only for display.
func Price(base float64, p PassengerType, m PaymentMethod) (float64, error) {
	rate, ok := discountRates[p]
	if !ok {
		return 0, ErrUnknownCategory
	}
	mult, ok := paymentMultipliers[m]
	if !ok {
		return 0, ErrUnknownCategory
	}
	return base * (1 - rate) * mult, nil
}

// Round2 rounds a monetary value to two decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
