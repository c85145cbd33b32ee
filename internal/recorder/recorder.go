// Package recorder captures per-frame particle snapshots during a
// simulation run and serializes them to the text format external
// visualization tooling expects.
package recorder

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gravsim/internal/physics"
)

// Recorder accumulates one text line per recorded frame. Each line is the
// concatenation of every particle's "x y speed n_collisions," record, in
// particle-index order, trailing comma included.
type Recorder struct {
	lines []string
}

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{}
}

// Snapshot appends one frame line built from particles' current state.
// n_collisions on the wire is NTotalCollisions/nSubSteps (integer
// division); both NTotalCollisions and NCollisions are zeroed immediately
// after so the next recorded frame starts its accumulation fresh.
func (r *Recorder) Snapshot(particles []*physics.Particle, nSubSteps uint32) {
	var b strings.Builder

	for _, p := range particles {
		speed := p.Vel().Length()
		nCollisions := p.NTotalCollisions / nSubSteps

		b.WriteString(strconv.FormatFloat(float64(p.Pos.X), 'g', -1, 32))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(float64(p.Pos.Y), 'g', -1, 32))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(float64(speed), 'g', -1, 32))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatUint(uint64(nCollisions), 10))
		b.WriteByte(',')

		p.NTotalCollisions = 0
		p.NCollisions = 0
	}

	r.lines = append(r.lines, b.String())
}

// FrameCount returns the number of frames recorded so far.
func (r *Recorder) FrameCount() int {
	return len(r.lines)
}

// Export writes every recorded frame, one per line, to path. The parent
// directory must already exist; any write failure is returned so the
// caller can treat it as a fatal termination per the error-handling
// design (I/O failure on export has no recovery path).
func (r *Recorder) Export(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("recorder: creating output file: %w", err)
	}
	defer f.Close()

	w := newProgressBar(uint32(len(r.lines)))
	for _, line := range r.lines {
		if _, err := f.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("recorder: writing frame: %w", err)
		}
		w.increment()
		w.refresh()
	}
	fmt.Println()

	return nil
}
