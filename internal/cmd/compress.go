package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"traygen/archive"
)

// NewCompressCmd creates and returns the compress subcommand for the
// traygen CLI. It drives the external 7z tool over every folder in a
// directory.
func NewCompressCmd() *cobra.Command {
	var (
		outputDir string
		level     int
	)

	cmd := &cobra.Command{
		Use:   "compress [DIRECTORY]",
		Short: "Compress each folder in a directory with 7z",
		Long: `Compress every immediate subdirectory of DIRECTORY into its own 7z
archive. DIRECTORY defaults to the current directory.

Folders whose target archive already exists are skipped. Compression is
performed by the external 7z tool, which must be installed and on PATH.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			runCompress(dir, outputDir, level)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for archives (default: same as source)")
	cmd.Flags().IntVarP(&level, "level", "l", 5, "Compression level 0-9 (0=no compression, 9=maximum)")

	return cmd
}

func runCompress(dir, outputDir string, level int) {
	if !archive.Available() {
		log.Fatal("7z is not installed or not in PATH")
	}

	results, sum, err := archive.CompressAll(dir, outputDir, level)
	if err != nil {
		log.Fatalf("Compression failed: %v", err)
	}
	if len(results) == 0 {
		fmt.Printf("No folders found in %s\n", dir)
		return
	}

	for _, r := range results {
		switch {
		case r.Skipped:
			fmt.Printf("%s %s: archive already exists\n", dimStyle.Render("skip"), r.Folder)
		case r.Err != nil:
			fmt.Printf("%s %s: %v\n", failStyle.Render("fail"), r.Folder, r.Err)
		default:
			fmt.Printf("%s %s -> %s\n", okStyle.Render("done"), r.Folder, r.Archive)
		}
	}

	fmt.Println(summaryStyle.Render(fmt.Sprintf(
		"Compressed: %d\nSkipped:    %d\nFailed:     %d",
		sum.Compressed, sum.Skipped, sum.Failed)))
}
