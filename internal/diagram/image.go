package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportSideView exports the schematic fuselage side view to an image file.
// The fuselage is drawn as a reference outline above the gear, with the
// datum at x = 0, a mark at each weighing point, the MAC span when
// available, and vertical markers at the as-weighed and corrected CG arms.
func ExportSideView(data SideViewData, filename string) error {
	if len(data.Gear) == 0 {
		return fmt.Errorf("side view needs at least one gear point")
	}

	p := plot.New()
	p.Title.Text = "Weighing Side View"
	if data.Aircraft != "" {
		p.Title.Text = data.Aircraft + " — Weighing Side View"
	}
	p.X.Label.Text = "Arm from datum"
	p.Y.Min = -1.5
	p.Y.Max = 2.5

	minArm, maxArm := data.Gear[0].Arm, data.Gear[0].Arm
	for _, g := range data.Gear {
		if g.Arm < minArm {
			minArm = g.Arm
		}
		if g.Arm > maxArm {
			maxArm = g.Arm
		}
	}
	span := maxArm - minArm
	if span == 0 {
		span = 1
	}
	noseX := minArm - 0.25*span
	tailX := maxArm + 0.35*span

	// Fuselage outline: crown line with a tapered nose and swept tail.
	crown, err := plotter.NewLine(plotter.XYs{
		{X: noseX, Y: 0.5},
		{X: noseX + 0.1*span, Y: 1.0},
		{X: tailX - 0.15*span, Y: 1.0},
		{X: tailX, Y: 1.4},
	})
	if err != nil {
		return err
	}
	crown.LineStyle.Width = vg.Points(2)
	crown.LineStyle.Color = color.Black
	p.Add(crown)

	belly, err := plotter.NewLine(plotter.XYs{
		{X: noseX, Y: 0.5},
		{X: noseX + 0.1*span, Y: 0.0},
		{X: tailX - 0.15*span, Y: 0.0},
		{X: tailX, Y: 0.6},
	})
	if err != nil {
		return err
	}
	belly.LineStyle.Width = vg.Points(2)
	belly.LineStyle.Color = color.Black
	p.Add(belly)

	// Datum marker.
	datum, err := plotter.NewLine(plotter.XYs{{X: 0, Y: -1.2}, {X: 0, Y: 2.0}})
	if err != nil {
		return err
	}
	datum.LineStyle.Width = vg.Points(1)
	datum.LineStyle.Color = color.Gray{Y: 128}
	datum.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(datum)

	// Gear contact points.
	gearPts := make(plotter.XYs, len(data.Gear))
	for i, g := range data.Gear {
		gearPts[i] = plotter.XY{X: g.Arm, Y: -0.5}
	}
	gear, err := plotter.NewScatter(gearPts)
	if err != nil {
		return err
	}
	gear.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	gear.GlyphStyle.Radius = vg.Points(5)
	gear.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(gear)

	// MAC span drawn along the wing reference level.
	if data.MACLength > 0 {
		macSpan, err := plotter.NewLine(plotter.XYs{
			{X: data.LEMAC, Y: 1.6},
			{X: data.LEMAC + data.MACLength, Y: 1.6},
		})
		if err != nil {
			return err
		}
		macSpan.LineStyle.Width = vg.Points(3)
		macSpan.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
		p.Add(macSpan)
	}

	// CG markers.
	cgMarks := []struct {
		arm   float64
		label string
		col   color.RGBA
	}{
		{data.CGAsWeighed, "CG as-weighed", color.RGBA{R: 0, G: 0, B: 255, A: 255}},
		{data.CGCorrected, "CG corrected", color.RGBA{R: 255, G: 0, B: 0, A: 255}},
	}
	for _, cg := range cgMarks {
		line, err := plotter.NewLine(plotter.XYs{{X: cg.arm, Y: -1.0}, {X: cg.arm, Y: 1.8}})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = cg.col
		line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(line)
		p.Legend.Add(cg.label, line)
	}

	labels := []struct {
		x, y float64
		text string
	}{
		{0, -1.35, "datum"},
	}
	if data.MACLength > 0 {
		labels = append(labels, struct {
			x, y float64
			text string
		}{data.LEMAC, 1.75, "LEMAC"})
	}
	for _, g := range data.Gear {
		labels = append(labels, struct {
			x, y float64
			text string
		}{g.Arm, -0.8, g.Name})
	}

	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	return save(p, 10*vg.Inch, 5*vg.Inch, filename)
}

// ExportEnvelope exports the CG envelope plot: the certified limits as a
// rectangle in (%MAC, weight) space with the computed results scattered on
// top, green inside the limits and red outside.
func ExportEnvelope(data EnvelopeData, filename string) error {
	if err := data.Env.Validate(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "CG Envelope"
	if data.Aircraft != "" {
		p.Title.Text = data.Aircraft + " — CG Envelope"
	}
	p.X.Label.Text = "CG (%MAC)"
	p.Y.Label.Text = "Weight"

	env := data.Env
	outline, err := plotter.NewPolygon(plotter.XYs{
		{X: env.FwdLimit, Y: env.MinWeight},
		{X: env.AftLimit, Y: env.MinWeight},
		{X: env.AftLimit, Y: env.MaxWeight},
		{X: env.FwdLimit, Y: env.MaxWeight},
	})
	if err != nil {
		return err
	}
	outline.Color = color.RGBA{R: 100, G: 149, B: 237, A: 60}
	outline.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	outline.LineStyle.Width = vg.Points(1.5)
	p.Add(outline)

	for _, pt := range data.Points {
		sc, err := plotter.NewScatter(plotter.XYs{{X: pt.MACPercent, Y: pt.Weight}})
		if err != nil {
			return err
		}
		sc.GlyphStyle.Radius = vg.Points(5)
		sc.GlyphStyle.Shape = draw.CrossGlyph{}
		if env.Contains(pt.Weight, pt.MACPercent) {
			sc.GlyphStyle.Color = color.RGBA{R: 0, G: 128, B: 0, A: 255}
		} else {
			sc.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		}
		p.Add(sc)
		p.Legend.Add(pt.Label, sc)

		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: pt.MACPercent, Y: pt.Weight}},
			Labels: []string{fmt.Sprintf("  %.2f%% / %.0f", pt.MACPercent, pt.Weight)},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	// Leave air around the envelope so out-of-limits points stay visible.
	macMargin := (env.AftLimit - env.FwdLimit) * 0.25
	wMargin := (env.MaxWeight - env.MinWeight) * 0.15
	p.X.Min = env.FwdLimit - macMargin
	p.X.Max = env.AftLimit + macMargin
	p.Y.Min = env.MinWeight - wMargin
	p.Y.Max = env.MaxWeight + wMargin

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
