// Package tray plans and builds parametric grid trays.
//
// A tray is a rectangular footprint with a solid base, four outer walls,
// and an internal grid of uniform compartments separated by walls of
// configurable thickness. The planner derives one axis-aligned box extent
// per solid region; the assembler tessellates each extent into triangles
// in a fixed order so the serialized mesh is deterministic.
package tray
