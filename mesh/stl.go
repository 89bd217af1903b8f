package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteASCII writes the triangles to w as an ASCII STL solid. Facets are
// streamed one at a time; nothing beyond the current facet is buffered. A
// write error aborts immediately, leaving whatever bytes were already
// flushed.
func WriteASCII(w io.Writer, name string, tris []Triangle) error {
	if _, err := fmt.Fprintf(w, "solid %s\n", name); err != nil {
		return err
	}
	for _, t := range tris {
		if err := writeFacet(w, t); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "endsolid %s\n", name)
	return err
}

// Components are rendered with up to 6 significant digits so output stays
// deterministic across runs.
func writeFacet(w io.Writer, t Triangle) error {
	if _, err := fmt.Fprintf(w, "  facet normal %.6g %.6g %.6g\n",
		t.Normal.X, t.Normal.Y, t.Normal.Z); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "    outer loop\n"); err != nil {
		return err
	}
	for _, v := range [3]Point{t.V1, t.V2, t.V3} {
		if _, err := fmt.Fprintf(w, "      vertex %.6g %.6g %.6g\n", v.X, v.Y, v.Z); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "    endloop\n  endfacet\n")
	return err
}

// WriteFile writes the triangles to path as an ASCII STL solid. The file is
// closed on every exit path. A failed write may leave a truncated file
// behind; callers should treat any incomplete output as invalid.
func WriteFile(path, name string, tris []Triangle) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := WriteASCII(w, name, tris); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
