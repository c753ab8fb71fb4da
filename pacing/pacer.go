// Package pacing runs a fixed-timestep loop that sleeps out the remainder of
// each frame unless it has fallen behind schedule.
package pacing

import (
	"context"
	"log"
	"time"
)

const (
	DefaultBudget           = 16666667 * time.Nanosecond
	DefaultOverrunThreshold = 18 * time.Millisecond
	DefaultSleepStep        = 100 * time.Microsecond
)

// Clock is the time source used by a Pacer.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Stats summarises the frame just ended.
type Stats struct {
	Frame    uint64
	Duration time.Duration
	Overrun  bool
	// FPS is set to the number of frames in the last whole second, once per second.
	FPS      int
	FPSReady bool
}

// Pacer tracks schedule state for a fixed-timestep loop.
type Pacer struct {
	Budget           time.Duration
	OverrunThreshold time.Duration
	SleepStep        time.Duration
	Logf             func(format string, args ...any)

	clock  Clock
	start  time.Time
	frames uint64
	fps    int
	secs   int64
}

// NewPacer creates a pacer targeting tps ticks per second.
func NewPacer(clock Clock, tps int) *Pacer {
	if clock == nil {
		clock = SystemClock
	}
	budget := DefaultBudget
	if tps > 0 {
		budget = time.Second / time.Duration(tps)
	}
	return &Pacer{
		Budget:           budget,
		OverrunThreshold: DefaultOverrunThreshold,
		SleepStep:        DefaultSleepStep,
		Logf:             log.Printf,
		clock:            clock,
		start:            clock.Now(),
	}
}

// Frames returns the number of completed frames.
func (p *Pacer) Frames() uint64 {
	return p.frames
}

// Behind reports whether fewer than elapsed/budget frames have completed.
// A pacer that is behind skips its sleep to catch up.
func (p *Pacer) Behind(elapsed time.Duration, frames uint64) bool {
	if p.Budget <= 0 || elapsed <= 0 {
		return false
	}
	return frames < uint64(elapsed/p.Budget)
}

// Wait sleeps until one budget has passed since frameStart, unless behind.
func (p *Pacer) Wait(frameStart time.Time) {
	if p.Behind(p.clock.Now().Sub(p.start), p.frames) {
		return
	}
	step := p.SleepStep
	if step <= 0 {
		step = DefaultSleepStep
	}
	for p.clock.Now().Sub(frameStart) < p.Budget {
		p.clock.Sleep(step)
	}
}

// EndFrame records a finished frame and logs overruns.
func (p *Pacer) EndFrame(frameStart time.Time) Stats {
	now := p.clock.Now()
	p.frames++
	p.fps++

	st := Stats{
		Frame:    p.frames,
		Duration: now.Sub(frameStart),
	}
	if secs := int64(now.Sub(p.start) / time.Second); secs > p.secs {
		p.secs = secs
		st.FPS = p.fps
		st.FPSReady = true
		p.logf("fps: %d", p.fps)
		p.fps = 0
	}
	if p.OverrunThreshold > 0 && st.Duration > p.OverrunThreshold {
		st.Overrun = true
		p.logf("pacing: big frame %dms", st.Duration.Milliseconds())
	}
	return st
}

func (p *Pacer) logf(format string, args ...any) {
	if p.Logf != nil {
		p.Logf(format, args...)
	}
}

// Run calls tick once per frame until it returns false or ctx is done.
func Run(ctx context.Context, p *Pacer, tick func() bool) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		frameStart := p.clock.Now()
		if !tick() {
			return nil
		}
		p.Wait(frameStart)
		p.EndFrame(frameStart)
	}
}
