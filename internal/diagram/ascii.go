package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// DrawASCIIEnvelope renders the CG envelope as a character grid for
// terminal output. The envelope box is drawn with its limits annotated and
// each result point is marked by the first letter of its label ('A' for
// as-weighed, 'C' for corrected).
func DrawASCIIEnvelope(data EnvelopeData) string {
	const (
		cols = 49
		rows = 17
	)

	env := data.Env
	// Plot window with margins so out-of-limits points still land on grid.
	macSpan := env.AftLimit - env.FwdLimit
	wSpan := env.MaxWeight - env.MinWeight
	x0 := env.FwdLimit - 0.25*macSpan
	x1 := env.AftLimit + 0.25*macSpan
	y0 := env.MinWeight - 0.2*wSpan
	y1 := env.MaxWeight + 0.2*wSpan

	toCol := func(mac float64) int {
		c := int((mac - x0) / (x1 - x0) * float64(cols-1))
		if c < 0 {
			c = 0
		}
		if c >= cols {
			c = cols - 1
		}
		return c
	}
	toRow := func(w float64) int {
		// Row 0 is the top of the grid, heaviest weight.
		r := int((y1 - w) / (y1 - y0) * float64(rows-1))
		if r < 0 {
			r = 0
		}
		if r >= rows {
			r = rows - 1
		}
		return r
	}

	grid := make([][]byte, rows)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", cols))
	}

	left, right := toCol(env.FwdLimit), toCol(env.AftLimit)
	top, bottom := toRow(env.MaxWeight), toRow(env.MinWeight)
	for c := left; c <= right; c++ {
		grid[top][c] = '-'
		grid[bottom][c] = '-'
	}
	for r := top; r <= bottom; r++ {
		grid[r][left] = '|'
		grid[r][right] = '|'
	}
	grid[top][left], grid[top][right] = '+', '+'
	grid[bottom][left], grid[bottom][right] = '+', '+'

	for _, pt := range data.Points {
		mark := byte('*')
		if pt.Label != "" {
			mark = pt.Label[0]
		}
		grid[toRow(pt.Weight)][toCol(pt.MACPercent)] = mark
	}

	var sb strings.Builder
	sb.WriteString("  CG ENVELOPE")
	if data.Aircraft != "" {
		sb.WriteString(" — " + data.Aircraft)
	}
	sb.WriteString("\n\n")

	for r, row := range grid {
		switch r {
		case top:
			fmt.Fprintf(&sb, "  %10.0f %s\n", env.MaxWeight, row)
		case bottom:
			fmt.Fprintf(&sb, "  %10.0f %s\n", env.MinWeight, row)
		default:
			fmt.Fprintf(&sb, "  %10s %s\n", "", row)
		}
	}

	fmt.Fprintf(&sb, "  %10s %*s%*s\n", "",
		left+3, fmt.Sprintf("%.1f", env.FwdLimit),
		right-left, fmt.Sprintf("%.1f", env.AftLimit))
	sb.WriteString("             weight vertical, %MAC horizontal\n")

	for _, pt := range data.Points {
		mark := "*"
		if pt.Label != "" {
			mark = string(pt.Label[0])
		}
		status := "WITHIN LIMITS"
		if !env.Contains(pt.Weight, pt.MACPercent) {
			status = "OUTSIDE LIMITS"
		}
		fmt.Fprintf(&sb, "  %s = %s: %.0f @ %.2f%%MAC — %s\n", mark, pt.Label, pt.Weight, pt.MACPercent, status)
	}

	return sb.String()
}

// WeightSparkline renders a compact weight-distribution strip: gear
// weights in arm order, nose to tail.
func WeightSparkline(gear []GearMark) string {
	if len(gear) < 2 {
		return ""
	}

	ordered := make([]GearMark, len(gear))
	copy(ordered, gear)
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j].Arm < ordered[j-1].Arm; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	series := make([]float64, len(ordered))
	names := make([]string, len(ordered))
	for i, g := range ordered {
		series[i] = g.Weight
		names[i] = g.Name
	}

	return asciigraph.Plot(series,
		asciigraph.Height(6),
		asciigraph.Width(3*len(series)+6),
		asciigraph.Caption("weight by gear position: "+strings.Join(names, " → ")),
	)
}
