// Package main provides the traygen command-line interface.
//
// traygen generates parametric storage trays with a grid of compartments
// and exports them as ASCII STL for 3D printing. It also bundles two small
// workbench utilities.
//
// The binary supports multiple subcommands:
//   - generate: Generate a grid tray STL from tray dimensions
//   - compress: Compress each folder in a directory with 7z
//   - digest: Compute cryptographic digests of a file
package main
