package diagram

import (
	"strings"
	"testing"

	"github.com/ferastyb/weight-and-balance/internal/wb"
)

func TestDrawASCIIEnvelope(t *testing.T) {
	data := EnvelopeData{
		Aircraft: "Boeing 737",
		Env:      wb.Envelope{MinWeight: 80000, MaxWeight: 150000, FwdLimit: 5, AftLimit: 35},
		Points: []CGPoint{
			{Label: "As-weighed", Weight: 95000, MACPercent: 12.5},
			{Label: "Corrected", Weight: 95500, MACPercent: 40.0},
		},
	}

	out := DrawASCIIEnvelope(data)

	for _, want := range []string{
		"CG ENVELOPE — Boeing 737",
		"150000",
		"80000",
		"A = As-weighed",
		"WITHIN LIMITS",
		"C = Corrected",
		"OUTSIDE LIMITS",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ASCII envelope missing %q:\n%s", want, out)
		}
	}

	if !strings.Contains(out, "+") || !strings.Contains(out, "|") {
		t.Errorf("envelope box not drawn:\n%s", out)
	}
}

func TestWeightSparkline(t *testing.T) {
	gear := []GearMark{
		{Name: "LMLG", Arm: 706.822, Weight: 40000},
		{Name: "NLG", Arm: 93, Weight: 15000},
		{Name: "RMLG", Arm: 706.822, Weight: 40000},
	}

	out := WeightSparkline(gear)
	if out == "" {
		t.Fatal("expected a sparkline")
	}
	// Nose-to-tail ordering puts NLG first.
	if !strings.Contains(out, "NLG → LMLG → RMLG") {
		t.Errorf("gear order wrong in caption:\n%s", out)
	}
}

func TestWeightSparklineTooFewPoints(t *testing.T) {
	if out := WeightSparkline([]GearMark{{Name: "N", Arm: 1, Weight: 2}}); out != "" {
		t.Errorf("expected empty sparkline for single point, got %q", out)
	}
}
