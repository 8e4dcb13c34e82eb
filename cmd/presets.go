package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ferastyb/weight-and-balance/internal/aircraft"
)

var presetsFileFlag string

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List known aircraft presets",
	Long: `List the compiled-in aircraft presets and any loaded from a presets
file. Presets carry the WBM constants (gear arms, LEMAC, MAC length) the
calc/diagram/report commands use when given scale readings only.`,
	RunE: runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.Flags().StringVar(&presetsFileFlag, "presets-file", "", "Additional aircraft presets YAML file")
}

func runPresets(cmd *cobra.Command, args []string) error {
	presets := aircraft.Builtin()
	if presetsFileFlag != "" {
		filePresets, err := aircraft.LoadFile(presetsFileFlag)
		if err != nil {
			return err
		}
		presets = append(filePresets, presets...)
	}

	fmt.Println()
	fmt.Println("AIRCRAFT PRESETS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Aircraft\tNLG arm\tLMLG arm\tRMLG arm\tLEMAC\tMAC\t\n")
	fmt.Fprintf(w, "  ────────\t───────\t────────\t────────\t─────\t───\t\n")
	for _, p := range presets {
		note := ""
		if p.Placeholder {
			note = "⚠ placeholder data"
		}
		fmt.Fprintf(w, "  %s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%s\n",
			p.Name, p.NLGArm, p.LMLGArm, p.RMLGArm, p.LEMAC, p.MACLength, note)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  Arms in the unit the WBM uses (inches for the builtin Boeing types).")
	fmt.Println("  Placeholder rows must be replaced with approved WBM data before use.")
	fmt.Println()
	return nil
}
