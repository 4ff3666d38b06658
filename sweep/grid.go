package sweep

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ErrEmptyGrid is returned when a grid has no sizes or no densities.
var ErrEmptyGrid = errors.New("sweep: grid has no sizes or no densities")

// Grid is the cartesian product of vertex counts and densities.
type Grid struct {
	Sizes     []int
	Densities []float64
}

// Job is one (size, density) configuration.
type Job struct {
	Size    int
	Density float64
}

func (j Job) String() string {
	return fmt.Sprintf("size=%d density=%g", j.Size, j.Density)
}

// Jobs returns the configurations in stable order: sizes outer, densities inner.
func (g Grid) Jobs() []Job {
	jobs := make([]Job, 0, len(g.Sizes)*len(g.Densities))
	for _, s := range g.Sizes {
		for _, d := range g.Densities {
			jobs = append(jobs, Job{Size: s, Density: d})
		}
	}

	return jobs
}

// Validate rejects empty grids. Per-configuration parameter checks are left
// to the builder so that one bad value does not hide the others.
func (g Grid) Validate() error {
	if len(g.Sizes) == 0 || len(g.Densities) == 0 {
		return ErrEmptyGrid
	}

	return nil
}

// jobSeed derives a deterministic per-job seed from the sweep seed.
func jobSeed(seed int64, j Job) int64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(j.Size))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(j.Density))

	return int64(xxhash.Sum64(buf[:]))
}
