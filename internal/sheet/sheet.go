// Package sheet reads weighing-sheet YAML files, the file-driven
// alternative to entering a weighing on the command line. The sheet layer
// only decodes; all domain validation happens in the engine.
package sheet

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ferastyb/weight-and-balance/internal/aircraft"
	"github.com/ferastyb/weight-and-balance/internal/wb"
)

// Sheet mirrors the paper weighing form: identification, scale readings,
// attitude record, and adjustment items.
type Sheet struct {
	Aircraft     string `yaml:"aircraft"`
	Registration string `yaml:"registration"`
	Date         string `yaml:"date"`
	WeighedBy    string `yaml:"weighed_by"`
	CheckedBy    string `yaml:"checked_by"`

	Points []Point `yaml:"points"`

	PitchAttitudeDeg float64 `yaml:"pitch_attitude_deg"`
	PitchCorrection  float64 `yaml:"pitch_correction"`

	Subtractions []Item `yaml:"subtractions"`
	Additions    []Item `yaml:"additions"`

	// Optional overrides of the preset MAC reference.
	LEMAC     *float64 `yaml:"lemac"`
	MACLength *float64 `yaml:"mac_length"`

	Envelope *EnvelopeSpec `yaml:"envelope"`
}

type Point struct {
	Name   string   `yaml:"name"`
	Weight float64  `yaml:"weight"`
	Arm    *float64 `yaml:"arm"`
	Serial string   `yaml:"serial"`
}

type Item struct {
	Description string  `yaml:"description"`
	Weight      float64 `yaml:"weight"`
	Arm         float64 `yaml:"arm"`
}

type EnvelopeSpec struct {
	MinWeight float64 `yaml:"min_weight"`
	MaxWeight float64 `yaml:"max_weight"`
	FwdLimit  float64 `yaml:"fwd_limit"`
	AftLimit  float64 `yaml:"aft_limit"`
}

// Load reads and strictly decodes a weighing sheet.
func Load(path string) (Sheet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("read weighing sheet %s: %w", path, err)
	}

	var s Sheet
	dec := yaml.NewDecoder(strings.NewReader(string(b)))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Sheet{}, fmt.Errorf("parse weighing sheet %s: %w", path, err)
	}
	return s, nil
}

// Weighing assembles the engine input from the sheet, using the preset for
// arms a point leaves unset (matched by point name against the preset gear
// positions) and for the MAC reference unless the sheet overrides it.
func (s Sheet) Weighing(preset *aircraft.Preset) (wb.Weighing, error) {
	w := wb.Weighing{
		Correction: wb.Correction{
			PitchCorrection:  s.PitchCorrection,
			PitchAttitudeDeg: s.PitchAttitudeDeg,
			Subtractions:     items(s.Subtractions),
			Additions:        items(s.Additions),
		},
	}

	for i, p := range s.Points {
		arm, err := s.pointArm(p, preset)
		if err != nil {
			return wb.Weighing{}, fmt.Errorf("points[%d] %q: %w", i, p.Name, err)
		}
		w.Points = append(w.Points, wb.WeighPoint{
			Name:   p.Name,
			Weight: p.Weight,
			Arm:    arm,
			Serial: p.Serial,
		})
	}

	mac, err := s.mac(preset)
	if err != nil {
		return wb.Weighing{}, err
	}
	w.MAC = mac
	return w, nil
}

func (s Sheet) pointArm(p Point, preset *aircraft.Preset) (float64, error) {
	if p.Arm != nil {
		return *p.Arm, nil
	}
	if preset == nil {
		return 0, fmt.Errorf("no arm given and no preset to take it from")
	}
	switch strings.ToUpper(strings.TrimSpace(p.Name)) {
	case "NLG":
		return preset.NLGArm, nil
	case "LMLG":
		return preset.LMLGArm, nil
	case "RMLG":
		return preset.RMLGArm, nil
	}
	return 0, fmt.Errorf("no arm given and preset has no gear position %q", p.Name)
}

// mac resolves the sheet's MAC reference. A full lemac/mac_length pair
// overrides the preset; a half-set pair takes the missing value from the
// preset and is an error without one, so a typo cannot silently drop the
// override. A non-positive chord length suppresses %MAC.
func (s Sheet) mac(preset *aircraft.Preset) (*wb.MACRef, error) {
	if s.LEMAC == nil && s.MACLength == nil {
		if preset == nil {
			return nil, nil
		}
		return preset.MAC(), nil
	}

	var lemac, length float64
	if s.LEMAC != nil {
		lemac = *s.LEMAC
	} else {
		if preset == nil {
			return nil, fmt.Errorf("mac_length set without lemac and no preset to take LEMAC from")
		}
		lemac = preset.LEMAC
	}
	if s.MACLength != nil {
		length = *s.MACLength
	} else {
		if preset == nil {
			return nil, fmt.Errorf("lemac set without mac_length and no preset to take the MAC length from")
		}
		length = preset.MACLength
	}

	if length <= 0 {
		return nil, nil
	}
	return &wb.MACRef{LEMAC: lemac, Length: length}, nil
}

// Env returns the sheet's envelope limits, if any, for the plot layer to
// validate.
func (s Sheet) Env() *wb.Envelope {
	if s.Envelope == nil {
		return nil
	}
	return &wb.Envelope{
		MinWeight: s.Envelope.MinWeight,
		MaxWeight: s.Envelope.MaxWeight,
		FwdLimit:  s.Envelope.FwdLimit,
		AftLimit:  s.Envelope.AftLimit,
	}
}

func items(in []Item) []wb.AdjustmentItem {
	if len(in) == 0 {
		return nil
	}
	out := make([]wb.AdjustmentItem, 0, len(in))
	for _, it := range in {
		out = append(out, wb.AdjustmentItem{
			Description: it.Description,
			Weight:      it.Weight,
			Arm:         it.Arm,
		})
	}
	return out
}
