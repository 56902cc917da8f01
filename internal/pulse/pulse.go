// Package pulse drives the focus animation counter.
//
// The counter climbs from 0 to a maximum by a fixed increment, then falls
// back to 0, and repeats. Each value is fed to the spotlight animated-edge
// queries as the tick.
package pulse

// Default animation parameters.
const (
	DefaultMax  = 20
	DefaultStep = 1
)

// Driver produces the bouncing tick sequence. The zero value is not usable;
// create drivers with New.
type Driver struct {
	max, step int
	tick      int
	dir       int
}

// New returns a driver bouncing between 0 and maxTick in increments of step.
// Non-positive arguments fall back to DefaultMax and DefaultStep.
func New(maxTick, step int) *Driver {
	if maxTick <= 0 {
		maxTick = DefaultMax
	}
	if step <= 0 {
		step = DefaultStep
	}
	return &Driver{max: maxTick, step: step, dir: 1}
}

// Tick returns the current counter value.
func (d *Driver) Tick() int { return d.tick }

// Next returns the current counter value and advances the driver.
// The counter never leaves [0, max].
func (d *Driver) Next() int {
	cur := d.tick
	next := d.tick + d.dir*d.step
	switch {
	case next >= d.max:
		next = d.max
		d.dir = -1
	case next <= 0:
		next = 0
		d.dir = 1
	}
	d.tick = next
	return cur
}

// Reset restarts the sequence at 0.
func (d *Driver) Reset() {
	d.tick = 0
	d.dir = 1
}
