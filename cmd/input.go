package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ferastyb/weight-and-balance/internal/aircraft"
	"github.com/ferastyb/weight-and-balance/internal/sheet"
	"github.com/ferastyb/weight-and-balance/internal/wb"
)

// weighingFlags is the flag set shared by calc, diagram and report: either
// a weighing sheet file, or a preset plus gear readings, or fully explicit
// --point entries.
type weighingFlags struct {
	file        string
	presetsFile string

	preset string
	nlg    float64
	lmlg   float64
	rmlg   float64

	points []string // name:weight:arm[:serial]

	lemac     float64
	macLength float64

	pitchAttitude   float64
	pitchCorrection float64

	subs []string // description:weight:arm
	adds []string
}

func (f *weighingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Weighing sheet YAML file (replaces the flags below)")
	cmd.Flags().StringVar(&f.presetsFile, "presets-file", "", "Additional aircraft presets YAML file")

	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "Aircraft preset name (see 'wb presets')")
	cmd.Flags().Float64Var(&f.nlg, "nlg", 0, "Nose gear scale reading")
	cmd.Flags().Float64Var(&f.lmlg, "lmlg", 0, "Left main gear scale reading")
	cmd.Flags().Float64Var(&f.rmlg, "rmlg", 0, "Right main gear scale reading")

	cmd.Flags().StringArrayVar(&f.points, "point", nil, "Explicit weighing point name:weight:arm[:serial] (repeatable)")

	cmd.Flags().Float64Var(&f.lemac, "lemac", 0, "LEMAC arm from datum (overrides preset)")
	cmd.Flags().Float64Var(&f.macLength, "mac", 0, "MAC chord length (overrides preset; <= 0 suppresses %MAC)")

	cmd.Flags().Float64Var(&f.pitchAttitude, "pitch-attitude", 0, "Pitch attitude during weighing in degrees (recorded only)")
	cmd.Flags().Float64Var(&f.pitchCorrection, "pitch-correction", 0, "CG-arm correction for pitch attitude (length units)")

	cmd.Flags().StringArrayVar(&f.subs, "sub", nil, "Subtraction item description:weight:arm (repeatable)")
	cmd.Flags().StringArrayVar(&f.adds, "add", nil, "Addition item description:weight:arm (repeatable)")
}

// weighingInput is the assembled input plus the identification the report
// and diagram layers print.
type weighingInput struct {
	weighing wb.Weighing
	aircraft string
	sheet    *sheet.Sheet // set when loaded from file
}

func (f *weighingFlags) build(cmd *cobra.Command) (*weighingInput, error) {
	var filePresets []aircraft.Preset
	if f.presetsFile != "" {
		var err error
		filePresets, err = aircraft.LoadFile(f.presetsFile)
		if err != nil {
			return nil, err
		}
	}

	if f.file != "" {
		s, err := sheet.Load(f.file)
		if err != nil {
			return nil, err
		}
		var preset *aircraft.Preset
		if s.Aircraft != "" {
			if p, ok := aircraft.Resolve(s.Aircraft, filePresets); ok {
				preset = &p
			}
		}
		w, err := s.Weighing(preset)
		if err != nil {
			return nil, err
		}
		return &weighingInput{weighing: w, aircraft: s.Aircraft, sheet: &s}, nil
	}

	in := &weighingInput{}
	in.weighing.Correction = wb.Correction{
		PitchCorrection:  f.pitchCorrection,
		PitchAttitudeDeg: f.pitchAttitude,
	}

	var preset *aircraft.Preset
	if f.preset != "" {
		p, ok := aircraft.Resolve(f.preset, filePresets)
		if !ok {
			return nil, fmt.Errorf("unknown aircraft preset %q (see 'wb presets')", f.preset)
		}
		preset = &p
		in.aircraft = p.Name
		in.weighing.Points = p.Points(f.nlg, f.lmlg, f.rmlg)
		in.weighing.MAC = p.MAC()
	}

	for _, spec := range f.points {
		pt, err := parsePoint(spec)
		if err != nil {
			return nil, err
		}
		in.weighing.Points = append(in.weighing.Points, pt)
	}

	// Explicit MAC flags override the preset reference. When only one of
	// the pair is given, the other comes from the preset; without a preset
	// a half-override is rejected. Setting --mac to a non-positive value
	// deliberately suppresses %MAC.
	lemacChanged := cmd.Flags().Changed("lemac")
	macChanged := cmd.Flags().Changed("mac")
	if lemacChanged || macChanged {
		lemac, macLength := f.lemac, f.macLength
		if !lemacChanged {
			if preset == nil {
				return nil, fmt.Errorf("--mac given without --lemac and no preset to take LEMAC from")
			}
			lemac = preset.LEMAC
		}
		if !macChanged {
			if preset == nil {
				return nil, fmt.Errorf("--lemac given without --mac and no preset to take the MAC length from")
			}
			macLength = preset.MACLength
		}
		if macLength > 0 {
			in.weighing.MAC = &wb.MACRef{LEMAC: lemac, Length: macLength}
		} else {
			in.weighing.MAC = nil
		}
	}

	for _, spec := range f.subs {
		it, err := parseItem(spec)
		if err != nil {
			return nil, err
		}
		in.weighing.Correction.Subtractions = append(in.weighing.Correction.Subtractions, it)
	}
	for _, spec := range f.adds {
		it, err := parseItem(spec)
		if err != nil {
			return nil, err
		}
		in.weighing.Correction.Additions = append(in.weighing.Correction.Additions, it)
	}

	return in, nil
}

// parsePoint parses "name:weight:arm" with an optional ":serial" tail.
func parsePoint(spec string) (wb.WeighPoint, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 && len(parts) != 4 {
		return wb.WeighPoint{}, fmt.Errorf("invalid --point %q: want name:weight:arm[:serial]", spec)
	}
	weight, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return wb.WeighPoint{}, fmt.Errorf("invalid --point %q: weight: %w", spec, err)
	}
	arm, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return wb.WeighPoint{}, fmt.Errorf("invalid --point %q: arm: %w", spec, err)
	}
	pt := wb.WeighPoint{Name: parts[0], Weight: weight, Arm: arm}
	if len(parts) == 4 {
		pt.Serial = parts[3]
	}
	return pt, nil
}

// parseItem parses "description:weight:arm".
func parseItem(spec string) (wb.AdjustmentItem, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return wb.AdjustmentItem{}, fmt.Errorf("invalid adjustment item %q: want description:weight:arm", spec)
	}
	weight, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return wb.AdjustmentItem{}, fmt.Errorf("invalid adjustment item %q: weight: %w", spec, err)
	}
	arm, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return wb.AdjustmentItem{}, fmt.Errorf("invalid adjustment item %q: arm: %w", spec, err)
	}
	return wb.AdjustmentItem{Description: parts[0], Weight: weight, Arm: arm}, nil
}

// parseEnvelope parses "minWeight:maxWeight:fwd:aft".
func parseEnvelope(spec string) (wb.Envelope, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 4 {
		return wb.Envelope{}, fmt.Errorf("invalid --envelope %q: want minWeight:maxWeight:fwdMAC:aftMAC", spec)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return wb.Envelope{}, fmt.Errorf("invalid --envelope %q: %w", spec, err)
		}
		vals[i] = v
	}
	env := wb.Envelope{MinWeight: vals[0], MaxWeight: vals[1], FwdLimit: vals[2], AftLimit: vals[3]}
	if err := env.Validate(); err != nil {
		return wb.Envelope{}, err
	}
	return env, nil
}
