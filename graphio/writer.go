package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/mstgen/builder"
)

// FormatWeight renders w as the shortest non-exponent decimal that parses
// back to w exactly.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// Write emits g to w: the header line, then one line per edge in the
// order the generator produced them (tree edges first).
func Write(w io.Writer, g *builder.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.Size, len(g.Edges)); err != nil {
		return fmt.Errorf("graphio: write header: %w", err)
	}

	line := make([]byte, 0, 64)
	for _, e := range g.Edges {
		line = line[:0]
		line = strconv.AppendInt(line, int64(e.U), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(e.V), 10)
		line = append(line, ' ')
		line = strconv.AppendFloat(line, e.Weight, 'f', -1, 64)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("graphio: write edge (%d,%d): %w", e.U, e.V, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: flush: %w", err)
	}

	return nil
}

// WriteFile writes g to path atomically. The graph is written to a temp file
// in the same directory, synced, then renamed over path. On any error the
// temp file is removed and path is left untouched.
func WriteFile(path string, g *builder.Graph) (err error) {
	if g == nil {
		return ErrNilGraph
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("graphio: create temp for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, g); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("graphio: chmod %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("graphio: sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("graphio: close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("graphio: rename to %s: %w", path, err)
	}

	return nil
}
