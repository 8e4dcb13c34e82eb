package wb

import (
	"errors"
	"testing"
)

func TestWeighingComputeFullPass(t *testing.T) {
	w := Weighing{
		Points: b737Points(),
		MAC:    &MACRef{LEMAC: 610.0, Length: 130.0},
		Correction: Correction{
			PitchAttitudeDeg: 0.8,
			Subtractions:     []AdjustmentItem{{Description: "residual fuel", Weight: 500, Arm: 400}},
			Additions:        []AdjustmentItem{{Description: "galley cart", Weight: 1000, Arm: 900}},
		},
	}

	res, err := w.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if !closeTo(res.AsWeighed.TotalWeight, 95000) {
		t.Errorf("as-weighed weight = %v, want 95000", res.AsWeighed.TotalWeight)
	}
	if !closeTo(res.Corrected.TotalWeight, 95500) {
		t.Errorf("corrected weight = %v, want 95500", res.Corrected.TotalWeight)
	}

	if len(res.Lines) != 3 {
		t.Fatalf("expected 3 moment lines, got %d", len(res.Lines))
	}
	if res.Lines[0].Name != "NLG" || !closeTo(res.Lines[0].Moment, 15000*93) {
		t.Errorf("NLG line = %+v", res.Lines[0])
	}
	if res.Lines[0].Serial != "SC-0041" {
		t.Errorf("serial not carried through: %+v", res.Lines[0])
	}

	if len(res.SubtractionLines) != 1 || !closeTo(res.SubtractionLines[0].Moment, 200000) {
		t.Errorf("subtraction lines = %+v", res.SubtractionLines)
	}
	if len(res.AdditionLines) != 1 || !closeTo(res.AdditionLines[0].Moment, 900000) {
		t.Errorf("addition lines = %+v", res.AdditionLines)
	}
}

func TestWeighingComputePropagatesInvalidInput(t *testing.T) {
	_, err := Weighing{}.Compute()
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
