package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ferastyb/weight-and-balance/internal/diagram"
	"github.com/ferastyb/weight-and-balance/internal/report"
)

var (
	reportFlags weighingFlags

	reportOutput       string
	reportRegistration string
	reportDate         string
	reportWeighedBy    string
	reportCheckedBy    string
	reportEnvelope     string
	reportWeightUnit   string
	reportLengthUnit   string
	reportEmbedPlot    bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Produce the signed-off PDF weighing report",
	Long: `Run the full computation and lay out the PDF weighing report:
identification block, itemized moment tables, as-weighed and corrected
results, envelope check, and signature lines.

Examples:
  wb report --file weighing.yaml -o weighing.pdf

  wb report --preset "Boeing 737" --nlg 15000 --lmlg 40000 --rmlg 40000 \
    --registration PH-ABC --weighed-by "J. de Vries" --checked-by "M. Jansen" \
    --envelope 80000:150000:5:35 --embed-plot -o weighing.pdf`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportFlags.register(reportCmd)

	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "weighing.pdf", "Output PDF file")
	reportCmd.Flags().StringVar(&reportRegistration, "registration", "", "Aircraft registration")
	reportCmd.Flags().StringVar(&reportDate, "date", "", "Weighing date (defaults to today)")
	reportCmd.Flags().StringVar(&reportWeighedBy, "weighed-by", "", "Name on the 'Weighed by' signature line")
	reportCmd.Flags().StringVar(&reportCheckedBy, "checked-by", "", "Name on the 'Checked by' signature line")
	reportCmd.Flags().StringVar(&reportEnvelope, "envelope", "", "Envelope limits minWeight:maxWeight:fwdMAC:aftMAC")
	reportCmd.Flags().StringVar(&reportWeightUnit, "weight-unit", "lb", "Weight unit label for the report")
	reportCmd.Flags().StringVar(&reportLengthUnit, "length-unit", "in", "Length unit label for the report")
	reportCmd.Flags().BoolVar(&reportEmbedPlot, "embed-plot", false, "Embed the CG-envelope plot in the report")
}

func runReport(cmd *cobra.Command, args []string) error {
	in, err := reportFlags.build(cmd)
	if err != nil {
		return err
	}
	res, err := in.weighing.Compute()
	if err != nil {
		return err
	}

	data := report.Data{
		Aircraft:     in.aircraft,
		Registration: reportRegistration,
		Date:         reportDate,
		WeighedBy:    reportWeighedBy,
		CheckedBy:    reportCheckedBy,
		Result:       res,
		Correction:   in.weighing.Correction,
		WeightUnit:   reportWeightUnit,
		LengthUnit:   reportLengthUnit,
	}
	if data.Date == "" {
		data.Date = time.Now().Format("2006-01-02")
	}
	if in.sheet != nil {
		if data.Registration == "" {
			data.Registration = in.sheet.Registration
		}
		if in.sheet.Date != "" && !cmd.Flags().Changed("date") {
			data.Date = in.sheet.Date
		}
		if data.WeighedBy == "" {
			data.WeighedBy = in.sheet.WeighedBy
		}
		if data.CheckedBy == "" {
			data.CheckedBy = in.sheet.CheckedBy
		}
	}

	env, err := resolveEnvelope(in, reportEnvelope)
	if err != nil {
		return err
	}
	data.Envelope = env

	if reportEmbedPlot && data.Envelope != nil && res.Corrected.MACKnown {
		plotPath := filepath.Join(os.TempDir(), "wb-envelope.png")
		envData := diagram.EnvelopeData{Aircraft: in.aircraft, Env: *data.Envelope}
		if res.AsWeighed.MACKnown {
			envData.Points = append(envData.Points, diagram.CGPoint{
				Label: "As-weighed", Weight: res.AsWeighed.TotalWeight, MACPercent: res.AsWeighed.MACPercent,
			})
		}
		envData.Points = append(envData.Points, diagram.CGPoint{
			Label: "Corrected", Weight: res.Corrected.TotalWeight, MACPercent: res.Corrected.MACPercent,
		})
		if err := diagram.ExportEnvelope(envData, plotPath); err == nil {
			data.EnvelopePNG = plotPath
			defer os.Remove(plotPath)
		}
	}

	if err := report.Build(data, reportOutput); err != nil {
		return err
	}
	fmt.Printf("Weighing report written to %s\n", reportOutput)
	return nil
}
