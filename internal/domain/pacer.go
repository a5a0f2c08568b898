package domain

// Pacer tracks completed frames and the ticks-per-second they imply.
type Pacer struct {
	base  int
	every int

	tps    int
	frames int
}

func NewPacer(base, every int) *Pacer {
	return &Pacer{
		base:  base,
		every: every,
		tps:   base,
	}
}

// CompleteFrame counts one frame and reports whether the rate went up.
func (p *Pacer) CompleteFrame() bool {
	p.frames++
	if p.frames%p.every == 0 {
		p.tps++
		return true
	}
	return false
}

func (p *Pacer) TicksPerSecond() int {
	return p.tps
}

func (p *Pacer) Frames() int {
	return p.frames
}

// Reset goes back to the base rate and restarts the frame count.
func (p *Pacer) Reset() {
	p.tps = p.base
	p.frames = 0
}
