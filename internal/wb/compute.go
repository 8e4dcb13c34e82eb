package wb

import (
	"errors"
	"fmt"
)

// ErrInvalidInput classifies the rejections the engine can raise: an empty
// weighing-point sequence or a non-positive aggregate weight. Callers test
// with errors.Is; the message carries the specifics.
var ErrInvalidInput = errors.New("invalid input")

// Compute reduces a sequence of weighing points into the as-weighed result:
// total weight, total moment about the datum, CG arm, and %MAC when a valid
// MAC reference is supplied.
//
// Summation follows input order so rounding is reproducible; the result is
// order-independent up to floating-point tolerance. Individual negative
// weights are deliberately not rejected here (adjustment-style entries with
// mixed signs reuse this function); only the aggregate is checked.
func Compute(points []WeighPoint, mac *MACRef) (CGResult, error) {
	if len(points) == 0 {
		return CGResult{}, fmt.Errorf("%w: no weighing points provided", ErrInvalidInput)
	}

	var totalWeight, totalMoment float64
	for _, p := range points {
		totalWeight += p.Weight
		totalMoment += p.Moment()
	}

	if totalWeight <= 0 {
		return CGResult{}, fmt.Errorf("%w: total weight must be positive (got %.3f)", ErrInvalidInput, totalWeight)
	}

	r := CGResult{
		TotalWeight: totalWeight,
		TotalMoment: totalMoment,
		CGArm:       totalMoment / totalWeight,
	}
	r.MACPercent, r.MACKnown = PercentMAC(r.CGArm, mac)
	return r, nil
}

// PercentMAC expresses a CG arm as a percentage of the mean aerodynamic
// chord. The second return is false when mac is nil or its chord length is
// non-positive; derivation is suppressed, never an error.
func PercentMAC(cgArm float64, mac *MACRef) (float64, bool) {
	if !mac.valid() {
		return 0, false
	}
	return (cgArm - mac.LEMAC) / mac.Length * 100, true
}

// Correct derives the corrected result from an as-weighed one by applying
// the pitch correction and the subtraction/addition items.
//
// The pitch correction shifts the as-weighed moment by pitch*weight, a
// uniform CG-arm shift. If the corrected weight comes out non-positive the
// corrected CG falls back to the as-weighed arm instead of dividing: the
// weight and moment sums are still reported so an erroneous adjustment
// entry stays visible, but the last known-good CG is what gets plotted.
func Correct(asWeighed CGResult, corr Correction, mac *MACRef) CGResult {
	pitchedMoment := asWeighed.TotalMoment + corr.PitchCorrection*asWeighed.TotalWeight

	var subW, subM, addW, addM float64
	for _, it := range corr.Subtractions {
		subW += it.Weight
		subM += it.Weight * it.Arm
	}
	for _, it := range corr.Additions {
		addW += it.Weight
		addM += it.Weight * it.Arm
	}

	r := CGResult{
		TotalWeight: asWeighed.TotalWeight - subW + addW,
		TotalMoment: pitchedMoment - subM + addM,
	}
	if r.TotalWeight > 0 {
		r.CGArm = r.TotalMoment / r.TotalWeight
	} else {
		r.CGArm = asWeighed.CGArm
	}
	r.MACPercent, r.MACKnown = PercentMAC(r.CGArm, mac)
	return r
}
