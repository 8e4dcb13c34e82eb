package diagram

import "github.com/ferastyb/weight-and-balance/internal/wb"

// GearMark is one weighing point positioned along the fuselage for the
// side-view schematic.
type GearMark struct {
	Name   string
	Arm    float64
	Weight float64
}

// SideViewData holds everything the side-view schematic needs. Arms are in
// the computation's length unit, measured from the datum at x = 0.
type SideViewData struct {
	Aircraft string
	Gear     []GearMark

	CGAsWeighed float64
	CGCorrected float64

	// MAC span, drawn when Length > 0.
	LEMAC     float64
	MACLength float64
}

// CGPoint is a computed result positioned in envelope space.
type CGPoint struct {
	Label      string
	Weight     float64
	MACPercent float64
}

// EnvelopeData holds the CG-envelope plot inputs: the validated limits and
// the as-weighed/corrected results. Points without a known %MAC cannot be
// placed in envelope space and must be filtered by the caller.
type EnvelopeData struct {
	Aircraft string
	Env      wb.Envelope
	Points   []CGPoint
}
