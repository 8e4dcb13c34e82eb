package wb

import (
	"errors"
	"testing"
)

func TestEnvelopeValidate(t *testing.T) {
	cases := []struct {
		name    string
		env     Envelope
		wantErr bool
	}{
		{"valid", Envelope{MinWeight: 80000, MaxWeight: 150000, FwdLimit: 5, AftLimit: 35}, false},
		{"weight limits inverted", Envelope{MinWeight: 150000, MaxWeight: 80000, FwdLimit: 5, AftLimit: 35}, true},
		{"weight limits equal", Envelope{MinWeight: 80000, MaxWeight: 80000, FwdLimit: 5, AftLimit: 35}, true},
		{"mac limits inverted", Envelope{MinWeight: 80000, MaxWeight: 150000, FwdLimit: 35, AftLimit: 5}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.env.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestEnvelopeContains(t *testing.T) {
	env := Envelope{MinWeight: 80000, MaxWeight: 150000, FwdLimit: 5, AftLimit: 35}

	cases := []struct {
		name   string
		weight float64
		mac    float64
		want   bool
	}{
		{"inside", 95000, 20, true},
		{"on boundary", 80000, 5, true},
		{"too light", 70000, 20, false},
		{"too heavy", 160000, 20, false},
		{"too far forward", 95000, 2, false},
		{"too far aft", 95000, 40, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := env.Contains(tc.weight, tc.mac); got != tc.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tc.weight, tc.mac, got, tc.want)
			}
		})
	}
}
