// Package report lays out the signed-off weighing report as a PDF. All
// formatting decisions (precision, unit text, layout) live here; the
// engine hands over raw numbers only.
package report

import (
	"fmt"
	"os"

	"codeberg.org/go-pdf/fpdf"

	"github.com/ferastyb/weight-and-balance/internal/wb"
)

// Data is everything the report prints: identification, the engine output,
// the correction record, and the optional envelope check.
type Data struct {
	Aircraft     string
	Registration string
	Date         string
	WeighedBy    string
	CheckedBy    string

	Result     *wb.Result
	Correction wb.Correction
	Envelope   *wb.Envelope

	// EnvelopePNG, when set, is embedded on a second page.
	EnvelopePNG string

	// Unit labels for display; the engine itself is unit-agnostic.
	WeightUnit string
	LengthUnit string
}

const (
	pageWidth = 210.0
	marginX   = 15.0
	usableW   = pageWidth - 2*marginX
	lineH     = 6.0
)

// Build writes the PDF report to filename.
func Build(d Data, filename string) error {
	if d.Result == nil {
		return fmt.Errorf("report needs a computed result")
	}
	if d.WeightUnit == "" {
		d.WeightUnit = "lb"
	}
	if d.LengthUnit == "" {
		d.LengthUnit = "in"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginX, 15, marginX)
	pdf.AddPage()

	title(pdf, d)
	momentTable(pdf, d, "WEIGHING POINTS", d.Result.Lines, true)
	resultBlock(pdf, d, "AS-WEIGHED", d.Result.AsWeighed)
	correctionBlock(pdf, d)
	resultBlock(pdf, d, "CORRECTED", d.Result.Corrected)
	envelopeBlock(pdf, d)
	signatureBlock(pdf, d)

	if d.EnvelopePNG != "" {
		if _, err := os.Stat(d.EnvelopePNG); err == nil {
			pdf.AddPage()
			heading(pdf, "CG ENVELOPE")
			pdf.ImageOptions(d.EnvelopePNG, marginX, pdf.GetY()+4, usableW, 0, false,
				fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		}
	}

	return pdf.OutputFileAndClose(filename)
}

func title(pdf *fpdf.Fpdf, d Data) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(usableW, 10, "AIRCRAFT WEIGHT AND BALANCE REPORT", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, lineH, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(usableW-40, lineH, value, "", 1, "L", false, 0, "")
	}
	row("Aircraft:", d.Aircraft)
	row("Registration:", d.Registration)
	row("Date:", d.Date)
	row("Units:", fmt.Sprintf("weight in %s, arms in %s from datum", d.WeightUnit, d.LengthUnit))
	pdf.Ln(3)
}

func heading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(usableW, 7, text, "1", 1, "L", true, 0, "")
}

func momentTable(pdf *fpdf.Fpdf, d Data, name string, lines []wb.MomentLine, withSerial bool) {
	if len(lines) == 0 {
		return
	}
	heading(pdf, name)

	cols := []struct {
		w     float64
		label string
	}{
		{55, "Item"},
		{30, fmt.Sprintf("Weight (%s)", d.WeightUnit)},
		{30, fmt.Sprintf("Arm (%s)", d.LengthUnit)},
		{40, fmt.Sprintf("Moment (%s-%s)", d.WeightUnit, d.LengthUnit)},
		{25, "Serial"},
	}
	if !withSerial {
		cols = cols[:4]
		cols[0].w = 80
	}

	pdf.SetFont("Helvetica", "B", 9)
	for _, c := range cols {
		pdf.CellFormat(c.w, lineH, c.label, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(lineH)

	pdf.SetFont("Helvetica", "", 9)
	var totW, totM float64
	for _, ln := range lines {
		totW += ln.Weight
		totM += ln.Moment
		pdf.CellFormat(cols[0].w, lineH, ln.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[1].w, lineH, fmt.Sprintf("%.1f", ln.Weight), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[2].w, lineH, fmt.Sprintf("%.3f", ln.Arm), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[3].w, lineH, fmt.Sprintf("%.1f", ln.Moment), "1", 0, "R", false, 0, "")
		if withSerial {
			pdf.CellFormat(cols[4].w, lineH, ln.Serial, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(lineH)
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(cols[0].w, lineH, "TOTAL", "1", 0, "L", false, 0, "")
	pdf.CellFormat(cols[1].w, lineH, fmt.Sprintf("%.1f", totW), "1", 0, "R", false, 0, "")
	pdf.CellFormat(cols[2].w, lineH, "", "1", 0, "R", false, 0, "")
	pdf.CellFormat(cols[3].w, lineH, fmt.Sprintf("%.1f", totM), "1", 0, "R", false, 0, "")
	if withSerial {
		pdf.CellFormat(cols[4].w, lineH, "", "1", 0, "C", false, 0, "")
	}
	pdf.Ln(lineH)
	pdf.Ln(3)
}

func resultBlock(pdf *fpdf.Fpdf, d Data, name string, r wb.CGResult) {
	heading(pdf, name+" RESULT")
	pdf.SetFont("Helvetica", "", 10)

	row := func(label, value string) {
		pdf.CellFormat(60, lineH, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(usableW-60, lineH, value, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
	}
	row("Total weight:", fmt.Sprintf("%.1f %s", r.TotalWeight, d.WeightUnit))
	row("Total moment:", fmt.Sprintf("%.1f %s-%s", r.TotalMoment, d.WeightUnit, d.LengthUnit))
	row("CG arm:", fmt.Sprintf("%.3f %s from datum", r.CGArm, d.LengthUnit))
	if r.MACKnown {
		row("CG position:", fmt.Sprintf("%.2f %%MAC", r.MACPercent))
	} else {
		row("CG position:", "%MAC not available (no MAC reference)")
	}
	pdf.Ln(3)
}

func correctionBlock(pdf *fpdf.Fpdf, d Data) {
	heading(pdf, "CORRECTIONS")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(usableW, lineH,
		fmt.Sprintf("Pitch attitude during weighing: %.2f deg (recorded only); CG-arm correction applied: %.3f %s",
			d.Correction.PitchAttitudeDeg, d.Correction.PitchCorrection, d.LengthUnit),
		"", 1, "L", false, 0, "")
	pdf.Ln(2)

	momentTable(pdf, d, "ITEMS REMOVED (SUBTRACTIONS)", d.Result.SubtractionLines, false)
	momentTable(pdf, d, "ITEMS ADDED (ADDITIONS)", d.Result.AdditionLines, false)
}

func envelopeBlock(pdf *fpdf.Fpdf, d Data) {
	if d.Envelope == nil {
		return
	}
	heading(pdf, "ENVELOPE CHECK")
	pdf.SetFont("Helvetica", "", 10)

	corr := d.Result.Corrected
	if !corr.MACKnown {
		pdf.CellFormat(usableW, lineH, "Envelope check skipped: %MAC not available.", "", 1, "L", false, 0, "")
		pdf.Ln(3)
		return
	}

	status := "WITHIN LIMITS"
	if !d.Envelope.Contains(corr.TotalWeight, corr.MACPercent) {
		status = "OUTSIDE LIMITS"
	}
	pdf.CellFormat(usableW, lineH,
		fmt.Sprintf("Corrected: %.1f %s at %.2f %%MAC — %s (weight %.0f–%.0f, CG %.1f–%.1f %%MAC)",
			corr.TotalWeight, d.WeightUnit, corr.MACPercent, status,
			d.Envelope.MinWeight, d.Envelope.MaxWeight, d.Envelope.FwdLimit, d.Envelope.AftLimit),
		"", 1, "L", false, 0, "")
	pdf.Ln(3)
}

func signatureBlock(pdf *fpdf.Fpdf, d Data) {
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)

	half := usableW / 2
	sig := func(label, name string) {
		y := pdf.GetY()
		x := pdf.GetX()
		pdf.Line(x+5, y+12, x+half-15, y+12)
		pdf.CellFormat(half, lineH, label+": "+name, "", 0, "L", false, 0, "")
	}

	sig("Weighed by", d.WeighedBy)
	sig("Checked by", d.CheckedBy)
	pdf.Ln(16)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(usableW, lineH,
		"Engineering support computation — not a substitute for the approved weight and balance manual.",
		"", 1, "C", false, 0, "")
}
