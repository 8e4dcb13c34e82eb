package aircraft

import (
	"github.com/ferastyb/weight-and-balance/internal/wb"
)

// Preset holds the weight-and-balance manual constants for one aircraft
// type: gear arms from datum and the MAC reference. Arms are in the unit
// the WBM uses (inches for the builtin Boeing types).
type Preset struct {
	Name      string
	NLGArm    float64
	LMLGArm   float64
	RMLGArm   float64
	LEMAC     float64
	MACLength float64

	// Placeholder marks illustrative values that must be replaced with
	// approved WBM data before operational use.
	Placeholder bool
}

// builtin aircraft constants. The 737 arms come from the worked example
// (NLG 93 in, MLG 706.822 in from datum); its LEMAC/MAC and all 787 values
// are illustrative placeholders pending real WBM data.
var builtin = []Preset{
	{
		Name:      "Boeing 737",
		NLGArm:    93.0,
		LMLGArm:   706.822,
		RMLGArm:   706.822,
		LEMAC:     610.0,
		MACLength: 130.0,
	},
	{
		Name:        "Boeing 787",
		NLGArm:      200.0,
		LMLGArm:     800.0,
		RMLGArm:     800.0,
		LEMAC:       700.0,
		MACLength:   30.0,
		Placeholder: true,
	},
}

// Builtin returns a copy of the compiled-in preset table.
func Builtin() []Preset {
	out := make([]Preset, len(builtin))
	copy(out, builtin)
	return out
}

// Find looks a preset up by exact name in the builtin table.
func Find(name string) (Preset, bool) {
	for _, p := range builtin {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// MAC returns the preset's MAC reference, or nil when the preset carries
// no usable chord length. The engine's suppression rule does the rest.
func (p Preset) MAC() *wb.MACRef {
	if p.MACLength <= 0 {
		return nil
	}
	return &wb.MACRef{LEMAC: p.LEMAC, Length: p.MACLength}
}

// Points builds the three-point gear weighing from scale readings using the
// preset's arms.
func (p Preset) Points(nlg, lmlg, rmlg float64) []wb.WeighPoint {
	return []wb.WeighPoint{
		{Name: "NLG", Weight: nlg, Arm: p.NLGArm},
		{Name: "LMLG", Weight: lmlg, Arm: p.LMLGArm},
		{Name: "RMLG", Weight: rmlg, Arm: p.RMLGArm},
	}
}
