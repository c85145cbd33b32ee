package recorder

import (
	"fmt"
	"strings"
	"time"
)

// progressBarWidth is the number of '=' characters representing a
// complete bar.
const progressBarWidth = 40

// progressBar renders an ETA-tracking export progress indicator to
// standard output. It is purely informational: nothing downstream reads
// it back, and a failure to print would never abort an export.
type progressBar struct {
	total uint32
	done  uint32

	prevTime         time.Time
	iterationElapsed time.Duration
}

func newProgressBar(total uint32) *progressBar {
	return &progressBar{
		total:    total,
		prevTime: time.Now(),
	}
}

// increment records that one more unit of work finished, tracking how
// long it took so refresh can estimate the time remaining.
func (p *progressBar) increment() {
	p.done++
	p.iterationElapsed = time.Since(p.prevTime)
	p.prevTime = time.Now()
}

// refresh prints the current bar, percentage, and estimated time
// remaining, overwriting the previous line via a carriage return.
func (p *progressBar) refresh() {
	if p.total == 0 {
		return
	}

	filled := int(p.done * progressBarWidth / p.total)
	empty := progressBarWidth - filled

	timeLeft := p.iterationElapsed * time.Duration(p.total-p.done)
	minutesLeft := int(timeLeft.Minutes())
	secondsLeft := int(timeLeft.Seconds()) % 60

	fmt.Printf("\r[%s%s] %3d%% (%d/%d) Time Left: (%dm%ds)",
		strings.Repeat("=", filled),
		strings.Repeat(" ", empty),
		p.done*100/p.total,
		p.done,
		p.total,
		minutesLeft,
		secondsLeft,
	)
}
