package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ferastyb/weight-and-balance/internal/diagram"
	"github.com/ferastyb/weight-and-balance/internal/wb"
)

var calcFlags weighingFlags

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute as-weighed and corrected weight and CG",
	Long: `Compute total weight, moment, CG arm and %MAC from scale readings,
then apply the pitch correction and adjustment items.

Examples:
  # Boeing 737 weighed on three scales
  wb calc --preset "Boeing 737" --nlg 15000 --lmlg 40000 --rmlg 40000

  # With adjustment items and pitch correction
  wb calc --preset "Boeing 737" --nlg 15000 --lmlg 40000 --rmlg 40000 \
    --pitch-attitude 0.8 --pitch-correction 0.0 \
    --sub "residual fuel:500:400" --add "galley cart:1000:900"

  # Explicit points, no preset
  wb calc --point "FWD JACK:1200:50.5" --point "AFT JACK:3400:210" \
    --lemac 120 --mac 48

  # From a weighing sheet file
  wb calc --file weighing.yaml`,
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcFlags.register(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	in, err := calcFlags.build(cmd)
	if err != nil {
		return err
	}

	res, err := in.weighing.Compute()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          AIRCRAFT WEIGHT AND BALANCE CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if in.aircraft != "" {
		fmt.Printf("  Aircraft: %s\n", in.aircraft)
		fmt.Println()
	}

	fmt.Println("WEIGHING POINTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Point\tWeight\tArm\tMoment\tSerial\n")
	fmt.Fprintf(w, "  ─────\t──────\t───\t──────\t──────\n")
	for _, ln := range res.Lines {
		fmt.Fprintf(w, "  %s\t%.1f\t%.3f\t%.1f\t%s\n", ln.Name, ln.Weight, ln.Arm, ln.Moment, ln.Serial)
	}
	w.Flush()
	fmt.Println()

	if spark := weightSparkline(in.weighing.Points); spark != "" {
		fmt.Println(spark)
		fmt.Println()
	}

	printResult("AS-WEIGHED", res.AsWeighed)

	corr := in.weighing.Correction
	if corr.PitchCorrection != 0 || corr.PitchAttitudeDeg != 0 ||
		len(res.SubtractionLines) > 0 || len(res.AdditionLines) > 0 {
		fmt.Println("CORRECTIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Pitch attitude (recorded):\t%.2f°\n", corr.PitchAttitudeDeg)
		fmt.Fprintf(w, "  Pitch CG-arm correction:\t%.3f\n", corr.PitchCorrection)
		w.Flush()
		printItems("  Removed:", res.SubtractionLines)
		printItems("  Added:", res.AdditionLines)
		fmt.Println()
	}

	printResult("CORRECTED", res.Corrected)

	if res.Corrected.TotalWeight <= 0 {
		fmt.Println("  ⚠ Corrected weight is not positive; corrected CG falls back")
		fmt.Println("    to the as-weighed arm. Check the adjustment items.")
		fmt.Println()
	}

	fmt.Printf("  ╔═════════════════════════════════════════════╗\n")
	if res.Corrected.MACKnown {
		fmt.Printf("  ║  CORRECTED CG = %.3f  (%.2f %%MAC)     \n", res.Corrected.CGArm, res.Corrected.MACPercent)
	} else {
		fmt.Printf("  ║  CORRECTED CG = %.3f from datum        \n", res.Corrected.CGArm)
	}
	fmt.Printf("  ╚═════════════════════════════════════════════╝\n")
	fmt.Println()
	return nil
}

func printResult(name string, r wb.CGResult) {
	fmt.Printf("%s RESULT:\n", name)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total weight:\t%.1f\n", r.TotalWeight)
	fmt.Fprintf(w, "  Total moment:\t%.1f\n", r.TotalMoment)
	fmt.Fprintf(w, "  CG arm:\t%.3f\n", r.CGArm)
	if r.MACKnown {
		fmt.Fprintf(w, "  CG position:\t%.2f %%MAC\n", r.MACPercent)
	} else {
		fmt.Fprintf(w, "  CG position:\t%%MAC n/a (no MAC reference)\n")
	}
	w.Flush()
	fmt.Println()
}

func printItems(label string, lines []wb.MomentLine) {
	if len(lines) == 0 {
		return
	}
	fmt.Println(label)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, ln := range lines {
		fmt.Fprintf(w, "    %s\t%.1f\t@ %.3f\t= %.1f\n", ln.Name, ln.Weight, ln.Arm, ln.Moment)
	}
	w.Flush()
}

func weightSparkline(points []wb.WeighPoint) string {
	gear := make([]diagram.GearMark, 0, len(points))
	for _, p := range points {
		gear = append(gear, diagram.GearMark{Name: p.Name, Arm: p.Arm, Weight: p.Weight})
	}
	return diagram.WeightSparkline(gear)
}
