package cmd

import (
	"github.com/spf13/cobra"

	"traygen/version"
)

// NewRootCmd creates and returns the root cobra command for the traygen CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "traygen",
		Short: "traygen - parametric grid trays and small workbench utilities",
		Long: `traygen generates parametric storage trays with a grid of compartments
and exports them as ASCII STL for 3D printing.

It also bundles two workbench utilities: bulk folder compression through
the external 7z tool, and cryptographic file digests.

Use subcommands to perform different operations:
  - generate: Generate a grid tray STL from tray dimensions
  - compress: Compress each folder in a directory with 7z
  - digest: Compute cryptographic digests of a file`,
		Version: version.GetFullVersion(),
	}

	groupGeometry := "geometry"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupGeometry,
		Title: "Geometry Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	generateCmd := NewGenerateCmd()
	compressCmd := NewCompressCmd()
	digestCmd := NewDigestCmd()

	generateCmd.GroupID = groupGeometry
	compressCmd.GroupID = groupUtilities
	digestCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(digestCmd)

	return rootCmd
}
