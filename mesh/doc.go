// Package mesh provides axis-aligned box tessellation and ASCII STL
// serialization for triangle meshes.
//
// The package works in three small value types: Point (a location, in
// millimeters), Vector (a direction), and Triangle (an outward normal plus
// three counter-clockwise vertices). Boxes are turned into closed
// 12-triangle surfaces by AppendBox, and finished meshes are serialized
// with WriteASCII or WriteFile.
package mesh
