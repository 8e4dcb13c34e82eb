package cmd

import (
	"fmt"
	"os"

	"github.com/ferastyb/weight-and-balance/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wb",
	Short: "Aircraft Weight and Balance Tool",
	Long: `wb - Aircraft Weight and Balance Calculator

A CLI tool for computing aircraft weight and center of gravity from
scale readings taken during weighing.

This tool helps weight engineers perform:
  - As-weighed weight, moment and CG-arm computation
  - Pitch-attitude correction and adjustment items (removals/additions)
  - CG position as %MAC against the aircraft's MAC reference
  - CG-envelope checks and plots
  - Signed-off PDF weighing reports

All arithmetic assumes one consistent weight/length unit pair per
computation; no unit conversion is performed.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   wb v%-52s║\n", version.Version)
		fmt.Println("  ║   Aircraft Weight and Balance Calculator                  ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for computing aircraft weight and center of gravity")
		fmt.Println("  from scale readings taken during weighing.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • As-weighed and corrected weight/CG computation")
		fmt.Println("    • Pitch correction and adjustment items")
		fmt.Println("    • %MAC derivation and CG-envelope checks")
		fmt.Println("    • Side-view and envelope diagrams (PNG/SVG/PDF)")
		fmt.Println("    • Signed-off PDF weighing reports")
		fmt.Println()
		fmt.Println("  Use 'wb --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
