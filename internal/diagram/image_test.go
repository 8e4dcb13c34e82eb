package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ferastyb/weight-and-balance/internal/wb"
)

func TestExportSideView(t *testing.T) {
	data := SideViewData{
		Aircraft: "Boeing 737",
		Gear: []GearMark{
			{Name: "NLG", Arm: 93, Weight: 15000},
			{Name: "LMLG", Arm: 706.822, Weight: 40000},
			{Name: "RMLG", Arm: 706.822, Weight: 40000},
		},
		CGAsWeighed: 609.9,
		CGCorrected: 614.04,
		LEMAC:       610.0,
		MACLength:   130.0,
	}

	path := filepath.Join(t.TempDir(), "side.png")
	if err := ExportSideView(data, path); err != nil {
		t.Fatalf("ExportSideView: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("exported file missing or empty: %v", err)
	}
}

func TestExportSideViewNoGear(t *testing.T) {
	if err := ExportSideView(SideViewData{}, filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("expected error for empty gear list")
	}
}

func TestExportEnvelope(t *testing.T) {
	data := EnvelopeData{
		Env: wb.Envelope{MinWeight: 80000, MaxWeight: 150000, FwdLimit: 5, AftLimit: 35},
		Points: []CGPoint{
			{Label: "As-weighed", Weight: 95000, MACPercent: 12.5},
		},
	}

	path := filepath.Join(t.TempDir(), "env.svg")
	if err := ExportEnvelope(data, path); err != nil {
		t.Fatalf("ExportEnvelope: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("exported file missing or empty: %v", err)
	}
}

func TestExportEnvelopeRejectsInvalidLimits(t *testing.T) {
	data := EnvelopeData{
		Env: wb.Envelope{MinWeight: 150000, MaxWeight: 80000, FwdLimit: 5, AftLimit: 35},
	}
	if err := ExportEnvelope(data, filepath.Join(t.TempDir(), "bad.png")); err == nil {
		t.Error("expected validation error for inverted weight limits")
	}
}
