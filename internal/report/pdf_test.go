package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ferastyb/weight-and-balance/internal/wb"
)

func exampleResult(t *testing.T) *wb.Result {
	t.Helper()
	w := wb.Weighing{
		Points: []wb.WeighPoint{
			{Name: "NLG", Weight: 15000, Arm: 93, Serial: "SC-0041"},
			{Name: "LMLG", Weight: 40000, Arm: 706.822},
			{Name: "RMLG", Weight: 40000, Arm: 706.822},
		},
		MAC: &wb.MACRef{LEMAC: 610, Length: 130},
		Correction: wb.Correction{
			PitchAttitudeDeg: 0.8,
			Subtractions:     []wb.AdjustmentItem{{Description: "residual fuel", Weight: 500, Arm: 400}},
			Additions:        []wb.AdjustmentItem{{Description: "galley cart", Weight: 1000, Arm: 900}},
		},
	}
	res, err := w.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return res
}

func TestBuildReport(t *testing.T) {
	res := exampleResult(t)
	data := Data{
		Aircraft:     "Boeing 737",
		Registration: "PH-ABC",
		Date:         "2026-08-29",
		WeighedBy:    "J. de Vries",
		CheckedBy:    "M. Jansen",
		Result:       res,
		Correction:   wb.Correction{PitchAttitudeDeg: 0.8},
		Envelope:     &wb.Envelope{MinWeight: 80000, MaxWeight: 150000, FwdLimit: -5, AftLimit: 35},
	}

	path := filepath.Join(t.TempDir(), "weighing.pdf")
	if err := Build(data, path); err != nil {
		t.Fatalf("Build: %v", err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if fi.Size() == 0 {
		t.Fatal("report file is empty")
	}
}

func TestBuildReportWithoutResult(t *testing.T) {
	if err := Build(Data{}, filepath.Join(t.TempDir(), "x.pdf")); err == nil {
		t.Error("expected error without a result")
	}
}

func TestBuildReportWithoutMAC(t *testing.T) {
	w := wb.Weighing{
		Points: []wb.WeighPoint{{Name: "P", Weight: 1000, Arm: 50}},
	}
	res, err := w.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	data := Data{
		Aircraft: "Test Rig",
		Result:   res,
		Envelope: &wb.Envelope{MinWeight: 500, MaxWeight: 2000, FwdLimit: 5, AftLimit: 35},
	}
	path := filepath.Join(t.TempDir(), "nomac.pdf")
	if err := Build(data, path); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("report missing or empty: %v", err)
	}
}
