// Package version provides version information and build metadata for
// traygen.
//
// It supports both compile-time version injection via -ldflags
// (-X traygen/version.Version=...) and runtime detection through Go's
// build info, with fallback defaults for development builds.
package version
