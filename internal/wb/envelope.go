package wb

import "fmt"

// Envelope is the certified CG envelope in weight / %MAC space. It is an
// input to the plotting and report layers, not to the core arithmetic, and
// must pass Validate before use.
type Envelope struct {
	MinWeight float64
	MaxWeight float64
	FwdLimit  float64 // %MAC
	AftLimit  float64 // %MAC
}

// Validate checks the ordering constraints on the limits.
func (e Envelope) Validate() error {
	if e.MinWeight >= e.MaxWeight {
		return fmt.Errorf("%w: envelope min weight %.2f must be below max weight %.2f",
			ErrInvalidInput, e.MinWeight, e.MaxWeight)
	}
	if e.FwdLimit >= e.AftLimit {
		return fmt.Errorf("%w: envelope forward limit %.2f%%MAC must be ahead of aft limit %.2f%%MAC",
			ErrInvalidInput, e.FwdLimit, e.AftLimit)
	}
	return nil
}

// Contains reports whether a (weight, %MAC) point lies inside the envelope,
// boundaries included.
func (e Envelope) Contains(weight, macPercent float64) bool {
	return weight >= e.MinWeight && weight <= e.MaxWeight &&
		macPercent >= e.FwdLimit && macPercent <= e.AftLimit
}
