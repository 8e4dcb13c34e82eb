package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ferastyb/weight-and-balance/internal/diagram"
	"github.com/ferastyb/weight-and-balance/internal/wb"
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Render weighing diagrams",
	Long: `Render the schematic side view and the CG-envelope plot.

Subcommands:
  side      - Schematic fuselage side view with gear, datum and CG markers
  envelope  - CG envelope with the computed results plotted

Output format follows the file extension (.png, .svg, .pdf).`,
}

var (
	sideFlags  weighingFlags
	sideOutput string
)

var diagramSideCmd = &cobra.Command{
	Use:   "side",
	Short: "Export the schematic side-view diagram",
	Long: `Export a schematic fuselage side view: gear positions along the arm
axis, the reference datum, the MAC span when known, and the as-weighed and
corrected CG arms.

Examples:
  wb diagram side --preset "Boeing 737" --nlg 15000 --lmlg 40000 --rmlg 40000 -o side.png
  wb diagram side --file weighing.yaml -o side.svg`,
	RunE: runDiagramSide,
}

var (
	envFlags  weighingFlags
	envOutput string
	envLimits string
	envASCII  bool
)

var diagramEnvelopeCmd = &cobra.Command{
	Use:   "envelope",
	Short: "Export the CG-envelope plot",
	Long: `Plot the certified CG envelope in weight / %MAC space with the
as-weighed and corrected results marked.

The envelope limits come from --envelope minWeight:maxWeight:fwdMAC:aftMAC
or from the weighing sheet file. %MAC must be derivable (a MAC reference is
required) to place results in envelope space.

Examples:
  wb diagram envelope --preset "Boeing 737" --nlg 15000 --lmlg 40000 --rmlg 40000 \
    --envelope 80000:150000:5:35 -o envelope.png

  # Terminal rendering instead of a file
  wb diagram envelope --file weighing.yaml --ascii`,
	RunE: runDiagramEnvelope,
}

func init() {
	rootCmd.AddCommand(diagramCmd)

	diagramCmd.AddCommand(diagramSideCmd)
	sideFlags.register(diagramSideCmd)
	diagramSideCmd.Flags().StringVarP(&sideOutput, "output", "o", "sideview.png", "Output image file (.png/.svg/.pdf)")

	diagramCmd.AddCommand(diagramEnvelopeCmd)
	envFlags.register(diagramEnvelopeCmd)
	diagramEnvelopeCmd.Flags().StringVarP(&envOutput, "output", "o", "envelope.png", "Output image file (.png/.svg/.pdf)")
	diagramEnvelopeCmd.Flags().StringVar(&envLimits, "envelope", "", "Envelope limits minWeight:maxWeight:fwdMAC:aftMAC")
	diagramEnvelopeCmd.Flags().BoolVar(&envASCII, "ascii", false, "Draw the envelope in the terminal instead of a file")
}

func runDiagramSide(cmd *cobra.Command, args []string) error {
	in, err := sideFlags.build(cmd)
	if err != nil {
		return err
	}
	res, err := in.weighing.Compute()
	if err != nil {
		return err
	}

	data := diagram.SideViewData{
		Aircraft:    in.aircraft,
		CGAsWeighed: res.AsWeighed.CGArm,
		CGCorrected: res.Corrected.CGArm,
	}
	for _, p := range in.weighing.Points {
		data.Gear = append(data.Gear, diagram.GearMark{Name: p.Name, Arm: p.Arm, Weight: p.Weight})
	}
	if mac := in.weighing.MAC; mac != nil {
		data.LEMAC = mac.LEMAC
		data.MACLength = mac.Length
	}

	if err := diagram.ExportSideView(data, sideOutput); err != nil {
		return err
	}
	fmt.Printf("Side-view diagram written to %s\n", sideOutput)
	return nil
}

func runDiagramEnvelope(cmd *cobra.Command, args []string) error {
	in, err := envFlags.build(cmd)
	if err != nil {
		return err
	}
	res, err := in.weighing.Compute()
	if err != nil {
		return err
	}

	env, err := resolveEnvelope(in, envLimits)
	if err != nil {
		return err
	}
	if env == nil {
		return fmt.Errorf("no envelope limits: use --envelope minWeight:maxWeight:fwdMAC:aftMAC or add an envelope to the sheet")
	}

	data := diagram.EnvelopeData{Aircraft: in.aircraft, Env: *env}
	if res.AsWeighed.MACKnown {
		data.Points = append(data.Points, diagram.CGPoint{
			Label: "As-weighed", Weight: res.AsWeighed.TotalWeight, MACPercent: res.AsWeighed.MACPercent,
		})
	}
	if res.Corrected.MACKnown {
		data.Points = append(data.Points, diagram.CGPoint{
			Label: "Corrected", Weight: res.Corrected.TotalWeight, MACPercent: res.Corrected.MACPercent,
		})
	}
	if len(data.Points) == 0 {
		return fmt.Errorf("no %%MAC available: supply a MAC reference (--lemac/--mac or preset) to plot the envelope")
	}

	if envASCII {
		fmt.Println(diagram.DrawASCIIEnvelope(data))
		return nil
	}
	if err := diagram.ExportEnvelope(data, envOutput); err != nil {
		return err
	}
	fmt.Printf("Envelope plot written to %s\n", envOutput)
	return nil
}

// resolveEnvelope takes the flag limits first, then the sheet's. A nil
// envelope with a nil error means none was supplied; supplied limits that
// fail to parse or validate are an error, never dropped.
func resolveEnvelope(in *weighingInput, limits string) (*wb.Envelope, error) {
	if limits != "" {
		env, err := parseEnvelope(limits)
		if err != nil {
			return nil, err
		}
		return &env, nil
	}
	if in.sheet != nil {
		if env := in.sheet.Env(); env != nil {
			if err := env.Validate(); err != nil {
				return nil, err
			}
			return env, nil
		}
	}
	return nil, nil
}
