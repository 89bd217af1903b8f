// Package archive compresses folders into 7z archives by driving the
// external 7z tool.
//
// The package performs no compression itself: each folder is handed to a
// single 7z invocation and its exit status is surfaced to the caller.
// Folders whose target archive already exists are skipped.
package archive
