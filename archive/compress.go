package archive

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Sentinel errors for package archive.
// These errors can be checked with errors.Is() for specific error handling.
var (
	ErrSevenZipNotFound  = errors.New("7z is not installed or not in PATH")
	ErrExpectedDirectory = errors.New("expected directory but got file")
	ErrArchiveExists     = errors.New("archive already exists")
	ErrBadLevel          = errors.New("compression level must be between 0 and 9")
)

// sevenZip is the binary driven for every compression run.
const sevenZip = "7z"

// Available reports whether the 7z binary can be found on PATH.
func Available() bool {
	_, err := exec.LookPath(sevenZip)
	return err == nil
}

// Result records the outcome of compressing a single folder.
type Result struct {
	Folder  string
	Archive string
	Skipped bool
	Err     error
}

// Summary aggregates per-folder results for one CompressAll run.
type Summary struct {
	Compressed int
	Skipped    int
	Failed     int
}

// commandArgs builds the 7z argument list.
// -mx sets the compression level, -mmt enables multithreading, -y answers
// yes to any prompt so the run never blocks.
func commandArgs(archivePath, folder string, level int) []string {
	return []string{
		"a",
		fmt.Sprintf("-mx=%d", level),
		"-mmt=on",
		"-y",
		archivePath,
		folder,
	}
}

// CompressFolder compresses folder into <outDir>/<name>.7z and returns the
// archive path. An empty outDir places the archive next to the folder. The
// run is skipped with ErrArchiveExists when the target archive is already
// present; the existing archive's path is still returned.
func CompressFolder(folder, outDir string, level int) (string, error) {
	if level < 0 || level > 9 {
		return "", fmt.Errorf("%w: got %d", ErrBadLevel, level)
	}

	info, err := os.Stat(folder)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", folder, ErrExpectedDirectory)
	}

	if outDir == "" {
		outDir = filepath.Dir(folder)
	} else if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}

	archivePath := filepath.Join(outDir, filepath.Base(folder)+".7z")
	if _, err := os.Stat(archivePath); err == nil {
		return archivePath, fmt.Errorf("%s: %w", archivePath, ErrArchiveExists)
	}

	bin, err := exec.LookPath(sevenZip)
	if err != nil {
		return "", ErrSevenZipNotFound
	}

	out, err := exec.Command(bin, commandArgs(archivePath, folder, level)...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("7z failed for %s: %w: %s", folder, err, strings.TrimSpace(string(out)))
	}
	return archivePath, nil
}

// CompressAll compresses every immediate subdirectory of dir, in lexical
// order, and reports one Result per folder plus aggregate counts. A
// pre-existing archive counts as skipped, not failed. Only a bad level or
// an unreadable dir fail the whole run; per-folder failures are recorded
// and the run continues.
func CompressAll(dir, outDir string, level int) ([]Result, Summary, error) {
	if level < 0 || level > 9 {
		return nil, Summary{}, fmt.Errorf("%w: got %d", ErrBadLevel, level)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, Summary{}, err
	}
	if !info.IsDir() {
		return nil, Summary{}, fmt.Errorf("%s: %w", dir, ErrExpectedDirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, Summary{}, err
	}

	var (
		results []Result
		sum     Summary
	)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		folder := filepath.Join(dir, e.Name())
		archivePath, err := CompressFolder(folder, outDir, level)
		r := Result{Folder: folder, Archive: archivePath}
		switch {
		case errors.Is(err, ErrArchiveExists):
			r.Skipped = true
			sum.Skipped++
		case err != nil:
			r.Err = err
			sum.Failed++
		default:
			sum.Compressed++
		}
		results = append(results, r)
	}
	return results, sum, nil
}
