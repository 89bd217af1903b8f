package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"traygen/mesh"
	"traygen/tray"
)

// NewGenerateCmd creates and returns the generate subcommand for the
// traygen CLI. When invoked with no flags it falls back to an interactive
// prompt for every parameter.
func NewGenerateCmd() *cobra.Command {
	p := tray.DefaultParams()
	output := "grid.stl"

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a grid tray as an ASCII STL",
		Long: `Generate a tray that fills a specified outer width and length, with a
solid base, outer walls, and an internal grid of compartments, all with
configurable thickness. The result is exported as ASCII STL.

All dimensions are in millimeters. Run without flags for interactive
prompting of every parameter.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().NFlag() == 0 {
				answers, ok, err := promptParams(p, output)
				if err != nil {
					log.Fatalf("Interactive mode failed: %v", err)
				}
				if !ok {
					fmt.Println("Aborted.")
					return
				}
				p, output = answers.params, answers.output
			}
			runGenerate(p, output)
		},
	}

	cmd.Flags().Float64Var(&p.OuterWidth, "outer-width", p.OuterWidth, "Outer width in mm")
	cmd.Flags().Float64Var(&p.OuterLength, "outer-length", p.OuterLength, "Outer length in mm")
	cmd.Flags().Float64Var(&p.BaseThickness, "base-thickness", p.BaseThickness, "Base thickness in mm")
	cmd.Flags().Float64Var(&p.WallThickness, "wall-thickness", p.WallThickness, "Wall thickness in mm")
	cmd.Flags().Float64Var(&p.WallHeight, "wall-height", p.WallHeight, "Wall height above the base in mm")
	cmd.Flags().IntVar(&p.Cols, "cols", p.Cols, "Number of grid columns")
	cmd.Flags().IntVar(&p.Rows, "rows", p.Rows, "Number of grid rows")
	cmd.Flags().StringVarP(&output, "output", "o", output, "Output STL filename")

	return cmd
}

func runGenerate(p tray.Params, output string) {
	tris, err := p.Build()
	if err != nil {
		log.Fatalf("Invalid parameters: %v", err)
	}
	if err := mesh.WriteFile(output, p.SolidName(), tris); err != nil {
		log.Fatalf("Failed to write STL: %v", err)
	}
	fmt.Printf("Wrote %d triangles to %s\n", len(tris), output)
}
