package fare

import (
	"errors"
	"testing"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name      string
		base      float64
		passenger PassengerType
		payment   PaymentMethod
		expected  float64
	}{
		{"senior rides free", 100, Senior, Cash, 0},
		{"student half price", 100, Student, Cash, 50},
		{"card surcharge", 100, General, Card, 110},
		{"transit card rebate", 100, General, TransitCard, 95},
		{"general cash unchanged", 100, General, Cash, 100},
		{"student card", 100, Student, Card, 55},
		{"zero base fare", 0, General, Card, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Price(tt.base, tt.passenger, tt.payment)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if Round2(got) != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPriceUnknownCategory(t *testing.T) {
	if _, err := Price(10, PassengerType("pensioner"), Cash); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory for passenger type, got %v", err)
	}
	if _, err := Price(10, General, PaymentMethod("check")); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory for payment method, got %v", err)
	}
}

func TestParsePassengerType(t *testing.T) {
	tests := []struct {
		in       string
		expected PassengerType
		wantErr  bool
	}{
		{"", General, false},
		{"general", General, false},
		{"Student", Student, false},
		{"SENIOR", Senior, false},
		{"child", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePassengerType(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownCategory) {
				t.Errorf("ParsePassengerType(%q): expected ErrUnknownCategory, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("ParsePassengerType(%q) = %v, %v; expected %v", tt.in, got, err, tt.expected)
		}
	}
}

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		in       string
		expected PaymentMethod
		wantErr  bool
	}{
		{"", Cash, false},
		{"cash", Cash, false},
		{"Card", Card, false},
		{"TransitCard", TransitCard, false},
		{"crypto", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePaymentMethod(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownCategory) {
				t.Errorf("ParsePaymentMethod(%q): expected ErrUnknownCategory, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("ParsePaymentMethod(%q) = %v, %v; expected %v", tt.in, got, err, tt.expected)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(7.22383); got != 7.22 {
		t.Errorf("expected 7.22, got %v", got)
	}
	if got := Round2(7.226); got != 7.23 {
		t.Errorf("expected 7.23, got %v", got)
	}
	if got := Round2(50); got != 50 {
		t.Errorf("expected 50, got %v", got)
	}
}
