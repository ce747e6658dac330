// Package scheduler drives the emulated CPU at a fixed cycle budget per
// frame and paces real time against it, so the emulator runs at
// approximately its real 1 MHz clock rather than as fast as the host
// can manage.
package scheduler

import (
	"time"
)

// Apple 1 clock constants.
const (
	CPUHz          = 1_000_000
	FPS            = 60
	CyclesPerFrame = CPUHz / FPS
	FrameTime      = time.Second / FPS
)

// Stepper is the subset of *cpu.Chip the scheduler depends on.
type Stepper interface {
	Step() (int, error)
}

// Poller is polled once per CPU step; the keyboard implements this.
type Poller interface {
	Poll()
}

// Scheduler runs the fixed-budget frame loop described by CyclesPerFrame
// and FrameTime. It never accumulates a catch-up backlog: emuTime is a
// monotonically advancing target, and a frame that runs long simply
// skips its sleep rather than bursting extra cycles next frame.
type Scheduler struct {
	cpu  Stepper
	kbd  Poller
	now  func() time.Time
	sleep func(time.Duration)
}

// New builds a Scheduler over a CPU and a keyboard poller, using the
// real wall clock.
func New(c Stepper, kbd Poller) *Scheduler {
	return &Scheduler{cpu: c, kbd: kbd, now: time.Now, sleep: time.Sleep}
}

// Run executes frames until stop is closed, in which case it returns
// nil, or until the CPU halts with an error (an illegal opcode), which
// it returns. stop is checked between frames, so callers that want
// Ctrl-C handling close it from another goroutine and restore terminal
// state via their own deferred cleanup. A nil stop never fires.
func (s *Scheduler) Run(stop <-chan struct{}) error {
	emuTime := s.now()
	for {
		select {
		case <-stop:
			return nil
		default:
		}

		cycles := 0
		for cycles < CyclesPerFrame {
			s.kbd.Poll()
			n, err := s.cpu.Step()
			if err != nil {
				return err
			}
			cycles += n
		}

		emuTime = emuTime.Add(FrameTime)
		if d := emuTime.Sub(s.now()); d > 0 {
			s.sleep(d)
		}
	}
}
