// Package objects holds the gameplay model of the catch ruleset: the timed,
// positioned objects a beatmap is made of and the judgements they award.
// The model is owned by the gameplay timeline; presentation code only observes it.
package objects

import (
	"fmt"

	"github.com/vovakirdan/tui-catch/internal/catch/bindable"
)

// Playfield geometry in gameplay units.
const (
	PlayfieldWidth = 512.0
	ObjectRadius   = 64.0
)

// Kind selects the flavour of a catchable object.
// Only scale and visuals differ between kinds; judgement follows one protocol.
type Kind int

const (
	KindFruit Kind = iota
	KindDroplet
	KindTinyDroplet
	KindBanana
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindFruit:
		return "Fruit"
	case KindDroplet:
		return "Droplet"
	case KindTinyDroplet:
		return "TinyDroplet"
	case KindBanana:
		return "Banana"
	default:
		return "Unknown"
	}
}

// HitObject is a single catchable object on the gameplay timeline.
// StartTime and X are observable so presentation can mirror them.
type HitObject struct {
	Kind              Kind
	StartTimeBindable *bindable.Bindable[float64]
	XBindable         *bindable.Bindable[float32]

	// TimePreempt is how long before StartTime the object becomes visible.
	TimePreempt float64

	// Scale is the visual scale derived from circle size.
	Scale float32

	// IndexInBeatmap is the object's position in its beatmap (used for palettes).
	IndexInBeatmap int
}

// New creates a hit object of the given kind at startTime and x.
func New(kind Kind, startTime float64, x float32) *HitObject {
	return &HitObject{
		Kind:              kind,
		StartTimeBindable: bindable.New(startTime),
		XBindable:         bindable.New(x),
		TimePreempt:       PreemptFromApproachRate(5),
		Scale:             1,
	}
}

// StartTime returns the time the object should be caught.
func (h *HitObject) StartTime() float64 {
	return h.StartTimeBindable.Value()
}

// SetStartTime moves the object on the timeline.
func (h *HitObject) SetStartTime(t float64) {
	h.StartTimeBindable.Set(t)
}

// X returns the horizontal position in playfield units.
func (h *HitObject) X() float32 {
	return h.XBindable.Value()
}

// SetX moves the object horizontally.
func (h *HitObject) SetX(x float32) {
	h.XBindable.Set(x)
}

// Judgement returns the judgement this object awards.
func (h *HitObject) Judgement() Judgement {
	return JudgementFor(h.Kind)
}

// ApplyDefaults fills preempt and scale from beatmap difficulty.
func (h *HitObject) ApplyDefaults(approachRate, circleSize float64) {
	h.TimePreempt = PreemptFromApproachRate(approachRate)
	h.Scale = ScaleFromCircleSize(circleSize)
}

func (h *HitObject) String() string {
	return fmt.Sprintf("%s@%.0f(x=%.1f)", h.Kind, h.StartTime(), h.X())
}
