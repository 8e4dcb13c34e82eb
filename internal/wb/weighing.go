package wb

// Weighing bundles the inputs of one complete calculation: the raw scale
// readings, the optional MAC reference, and the corrections to apply. All
// fields are transient values scoped to a single Compute call; the engine
// keeps no state between calls.
type Weighing struct {
	Points     []WeighPoint
	MAC        *MACRef
	Correction Correction
}

// Result is the full output of a weighing pass: both CG results plus the
// itemized moment tables the report layer prints. Formatting, units and
// precision are entirely the consumer's concern.
type Result struct {
	AsWeighed CGResult
	Corrected CGResult

	Lines            []MomentLine
	SubtractionLines []MomentLine
	AdditionLines    []MomentLine
}

// Compute runs the whole pipeline: moment accumulation over the weighing
// points, then pitch correction and adjustment items. The only failures are
// the ErrInvalidInput conditions of the accumulator; everything downstream
// resolves to defined fallback values.
func (w Weighing) Compute() (*Result, error) {
	asWeighed, err := Compute(w.Points, w.MAC)
	if err != nil {
		return nil, err
	}

	res := &Result{
		AsWeighed: asWeighed,
		Corrected: Correct(asWeighed, w.Correction, w.MAC),
		Lines:     make([]MomentLine, 0, len(w.Points)),
	}
	for _, p := range w.Points {
		res.Lines = append(res.Lines, MomentLine{
			Name:   p.Name,
			Weight: p.Weight,
			Arm:    p.Arm,
			Moment: p.Moment(),
			Serial: p.Serial,
		})
	}
	res.SubtractionLines = itemLines(w.Correction.Subtractions)
	res.AdditionLines = itemLines(w.Correction.Additions)
	return res, nil
}

func itemLines(items []AdjustmentItem) []MomentLine {
	if len(items) == 0 {
		return nil
	}
	lines := make([]MomentLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, MomentLine{
			Name:   it.Description,
			Weight: it.Weight,
			Arm:    it.Arm,
			Moment: it.Weight * it.Arm,
		})
	}
	return lines
}
