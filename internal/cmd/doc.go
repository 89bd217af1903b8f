// Package cmd provides the command-line interface implementation for traygen.
//
// This package contains all the subcommand implementations for the traygen
// CLI tool. It uses the Cobra library for command structure and Fang for
// styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - generate: Grid tray STL generation, with an interactive fallback
//   - compress: Per-folder 7z compression
//   - digest: Cryptographic file digests
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. When generate is invoked without
// flags, a bubbletea form prompts for every parameter; the form only fills
// the same configuration structure the flags do and never touches the
// geometry code.
package cmd
