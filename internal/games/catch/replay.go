package catch

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// tailMs is the time allowed after the last object for the final fades.
const tailMs = 5000.0

var (
	// ErrUnfinished is returned when a headless run exceeds its tick budget.
	ErrUnfinished = errors.New("catch: run did not finish")
	// ErrDigestMismatch is returned when two runs of one map judge differently.
	ErrDigestMismatch = errors.New("catch: replay digest mismatch")
)

// Autoplay plays a fresh map to the end with the autopilot, without a terminal.
func Autoplay(mode Mode, seed int64, tickRate int) (*Game, error) {
	g := New(mode)
	g.SetAutopilot(true)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: tickRate, Seed: seed})

	budget := int((g.beatmap.Duration+tailMs)/g.runtime.TickDuration()) + 1
	frame := core.NewInputFrame()
	for range budget {
		if g.Step(frame).State.GameOver {
			return g, nil
		}
	}
	return g, fmt.Errorf("%w: seed %d after %d ticks", ErrUnfinished, seed, budget)
}

// Verify plays a map twice and checks that both runs produce the same digest.
// It returns the first run.
func Verify(mode Mode, seed int64, tickRate int) (*Game, error) {
	first, err := Autoplay(mode, seed, tickRate)
	if err != nil {
		return nil, err
	}
	second, err := Autoplay(mode, seed, tickRate)
	if err != nil {
		return nil, err
	}

	if a, b := first.Digest(), second.Digest(); a != b {
		return first, fmt.Errorf("%w: %s vs %s", ErrDigestMismatch, a, b)
	}
	return first, nil
}
