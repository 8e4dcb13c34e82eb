package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ferastyb/weight-and-balance/internal/aircraft"
)

func writeSheet(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const fullSheet = `aircraft: Boeing 737
registration: PH-ABC
date: 2026-08-29
weighed_by: J. de Vries
checked_by: M. Jansen
points:
  - name: NLG
    weight: 15000
    serial: SC-0041
  - name: LMLG
    weight: 40000
  - name: RMLG
    weight: 40000
pitch_attitude_deg: 0.8
pitch_correction: 0.0
subtractions:
  - description: residual fuel
    weight: 500
    arm: 400
additions:
  - description: galley cart
    weight: 1000
    arm: 900
envelope:
  min_weight: 80000
  max_weight: 150000
  fwd_limit: 5
  aft_limit: 35
`

func TestLoadAndBuildWeighing(t *testing.T) {
	path := writeSheet(t, fullSheet)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Registration != "PH-ABC" || s.WeighedBy != "J. de Vries" {
		t.Errorf("header fields = %+v", s)
	}

	preset, ok := aircraft.Find(s.Aircraft)
	if !ok {
		t.Fatalf("preset %q not found", s.Aircraft)
	}

	w, err := s.Weighing(&preset)
	if err != nil {
		t.Fatalf("Weighing: %v", err)
	}
	if len(w.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(w.Points))
	}
	if w.Points[0].Arm != 93.0 {
		t.Errorf("NLG arm from preset = %v, want 93", w.Points[0].Arm)
	}
	if w.Points[0].Serial != "SC-0041" {
		t.Errorf("serial lost: %+v", w.Points[0])
	}
	if w.MAC == nil || w.MAC.LEMAC != 610.0 {
		t.Errorf("MAC reference from preset = %+v", w.MAC)
	}
	if len(w.Correction.Subtractions) != 1 || len(w.Correction.Additions) != 1 {
		t.Errorf("adjustment items = %+v", w.Correction)
	}

	res, err := w.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if res.Corrected.TotalWeight != 95500 {
		t.Errorf("corrected weight = %v, want 95500", res.Corrected.TotalWeight)
	}

	env := s.Env()
	if env == nil {
		t.Fatal("expected envelope from sheet")
	}
	if err := env.Validate(); err != nil {
		t.Fatalf("envelope should validate: %v", err)
	}
}

func TestSheetExplicitArmsAndMACOverride(t *testing.T) {
	path := writeSheet(t, `aircraft: Custom
points:
  - name: FWD JACK
    weight: 1200
    arm: 50.5
  - name: AFT JACK
    weight: 3400
    arm: 210.0
lemac: 120.0
mac_length: 48.0
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	w, err := s.Weighing(nil)
	if err != nil {
		t.Fatalf("Weighing: %v", err)
	}
	if w.Points[0].Arm != 50.5 || w.Points[1].Arm != 210.0 {
		t.Errorf("explicit arms = %+v", w.Points)
	}
	if w.MAC == nil || w.MAC.LEMAC != 120.0 || w.MAC.Length != 48.0 {
		t.Errorf("MAC override = %+v", w.MAC)
	}
}

func TestSheetMissingArmWithoutPreset(t *testing.T) {
	path := writeSheet(t, `points:
  - name: MYSTERY
    weight: 100
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := s.Weighing(nil); err == nil {
		t.Error("expected error for point without arm or preset")
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeSheet(t, "pilots: 2\n")
	if _, err := Load(path); err == nil {
		t.Error("expected strict decode error")
	}
}

func TestSheetNonPositiveMACOverrideSuppresses(t *testing.T) {
	path := writeSheet(t, `points:
  - name: P
    weight: 100
    arm: 10
lemac: 120.0
mac_length: 0
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	w, err := s.Weighing(nil)
	if err != nil {
		t.Fatalf("Weighing: %v", err)
	}
	if w.MAC != nil {
		t.Errorf("zero chord override should suppress MAC, got %+v", w.MAC)
	}
}

func TestSheetHalfMACOverrideFallsBackToPreset(t *testing.T) {
	path := writeSheet(t, `aircraft: Boeing 737
points:
  - name: NLG
    weight: 15000
  - name: LMLG
    weight: 40000
  - name: RMLG
    weight: 40000
mac_length: 155.81
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	preset, ok := aircraft.Find("Boeing 737")
	if !ok {
		t.Fatal("preset missing")
	}
	w, err := s.Weighing(&preset)
	if err != nil {
		t.Fatalf("Weighing: %v", err)
	}
	if w.MAC == nil || w.MAC.LEMAC != 610.0 || w.MAC.Length != 155.81 {
		t.Errorf("half override should take LEMAC from the preset, got %+v", w.MAC)
	}
}

func TestSheetHalfMACOverrideWithoutPreset(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"mac_length only", "points:\n  - name: P\n    weight: 100\n    arm: 10\nmac_length: 48\n"},
		{"lemac only", "points:\n  - name: P\n    weight: 100\n    arm: 10\nlemac: 120\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Load(writeSheet(t, tc.body))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if _, err := s.Weighing(nil); err == nil {
				t.Error("expected error for half-set MAC override without preset")
			}
		})
	}
}
