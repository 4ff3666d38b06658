package graphio

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// FilePrefix and FileExt frame generated graph file names.
const (
	FilePrefix = "random_"
	FileExt    = ".txt"
)

// fileNameRe is the pattern external analysis scripts use to recover
// (size, density) from a path.
var fileNameRe = regexp.MustCompile(`random_(\d+)_(\d+\.?\d*)`)

// FormatDensity renders density with at least one fractional digit
// (0.1 → "0.1", 1 → "1.0").
func FormatDensity(density float64) string {
	s := strconv.FormatFloat(density, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// FileName returns random_<size>_<density>.txt.
func FileName(size int, density float64) string {
	return FilePrefix + strconv.Itoa(size) + "_" + FormatDensity(density) + FileExt
}

// ParseFileName recovers (size, density) from a path produced by FileName.
// Only the base name is inspected.
func ParseFileName(path string) (int, float64, error) {
	m := fileNameRe.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadFileName, path)
	}
	size, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size %q: %v", ErrBadFileName, m[1], err)
	}
	density, err := strconv.ParseFloat(strings.TrimSuffix(m[2], "."), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: density %q: %v", ErrBadFileName, m[2], err)
	}

	return size, density, nil
}
