package wb

// WeighPoint is one measured load point from a scale reading.
//
// Weight and Arm carry whatever unit pair the operator works in (lb/in,
// kg/m, ...); the engine never converts, it only requires that one
// consistent pair is used across a computation.
type WeighPoint struct {
	Name   string  // display identifier, e.g. "NLG", "LMLG FWD"
	Weight float64 // scale reading
	Arm    float64 // distance from reference datum
	Serial string  // optional scale serial, traceability only
}

// Moment returns the rotational contribution of the point about the datum.
func (p WeighPoint) Moment() float64 {
	return p.Weight * p.Arm
}

// AdjustmentItem is a hypothetical weight/arm pair representing mass added
// or removed between the as-weighed state and the final configuration
// (e.g. drained fuel, removed ballast, installed equipment).
type AdjustmentItem struct {
	Description string
	Weight      float64
	Arm         float64
}

// MACRef is the mean-aerodynamic-chord reference used to express a CG arm
// as %MAC. A nil *MACRef, or one with a non-positive chord length, means
// no %MAC is derivable; derivation is suppressed rather than failed so
// incomplete-data workflows still produce weight and arm results.
type MACRef struct {
	LEMAC  float64 // arm of the MAC leading edge
	Length float64 // chord length, same unit as arms
}

func (m *MACRef) valid() bool {
	return m != nil && m.Length > 0
}

// Correction holds the operator-supplied adjustments applied between the
// as-weighed and corrected results.
//
// PitchCorrection is an arm-delta induced by fuselage attitude during
// weighing, already resolved by the operator to length units.
// PitchAttitudeDeg is recorded for traceability only and never enters the
// arithmetic.
type Correction struct {
	PitchCorrection  float64
	PitchAttitudeDeg float64
	Subtractions     []AdjustmentItem
	Additions        []AdjustmentItem
}

// CGResult is the output of one computation pass, either as-weighed or
// corrected. It is an immutable value; a corrected result is derived from
// an as-weighed one, never mutated in place.
type CGResult struct {
	TotalWeight float64
	TotalMoment float64
	CGArm       float64

	// MACPercent is meaningful only when MACKnown is true; it is left
	// zero when the MAC reference is absent or invalid.
	MACPercent float64
	MACKnown   bool
}

// MomentLine is one row of the itemized moment table handed to the report
// layer: a point or adjustment item with its computed moment.
type MomentLine struct {
	Name   string
	Weight float64
	Arm    float64
	Moment float64
	Serial string
}
