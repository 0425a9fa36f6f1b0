// Package drawable is the presentation side of a catchable object.
//
// A DrawableHitObject is pooled and reused: Apply attaches it to a model object,
// Free detaches it. While attached it mirrors the model's position, derives its
// visual randomness from the model's start time, judges the object once when its
// time arrives, and requests the matching exit transition. It never mutates the
// model and never decides on its own when it leaves the scene.
package drawable

import (
	"math"

	"github.com/vovakirdan/tui-catch/internal/catch/anim"
	"github.com/vovakirdan/tui-catch/internal/catch/bindable"
	"github.com/vovakirdan/tui-catch/internal/catch/objects"
	"github.com/vovakirdan/tui-catch/internal/catch/rng"
)

// Transition timing.
const (
	MissFadeDuration       = 250.0
	DefaultHitFadeDuration = 0.0
)

// BaseSize is the unscaled draw width of every catchable object.
const BaseSize = objects.ObjectRadius * 2

// Random series used for per-object visuals.
const (
	SeriesRotation = 1
	SeriesScale    = 2
	SeriesPalette  = 3
)

// PaletteSize is the number of distinct fruit visuals.
const PaletteSize = 4

// ArmedState is the terminal animation state of a judged object.
type ArmedState int

const (
	ArmedStateIdle ArmedState = iota
	ArmedStateHit
	ArmedStateMiss
)

// String returns a human-readable name for the state.
func (s ArmedState) String() string {
	switch s {
	case ArmedStateIdle:
		return "Idle"
	case ArmedStateHit:
		return "Hit"
	case ArmedStateMiss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// PositionCheck answers whether the catcher is under the object right now.
type PositionCheck func(h *objects.HitObject) bool

// ResultHandler is notified once per attachment when a result is committed.
type ResultHandler func(d *DrawableHitObject, result objects.JudgementResult)

// DrawableHitObject presents one catchable object.
type DrawableHitObject struct {
	// XBindable mirrors the model X while attached.
	XBindable *bindable.Bindable[float32]

	// StartTimeBindable mirrors the model start time while attached.
	StartTimeBindable *bindable.Bindable[float64]

	// RandomSeed is the start time truncated to an integer.
	RandomSeed *bindable.Bindable[int]

	// CheckPosition is injected by the catcher. Until it is set the object
	// cannot be judged and simply stays pending.
	CheckPosition PositionCheck

	// IsOnPlate is written by the catcher once the object rests on its plate.
	IsOnPlate bool

	// HitFadeDuration is the fade length used when the object is caught.
	HitFadeDuration float64

	// OnNewResult is called after a result is committed.
	OnNewResult ResultHandler

	hitObject    *objects.HitObject
	result       *objects.JudgementResult
	state        ArmedState
	transforms   anim.Sequence
	clock        float64
	rotation     float64
	scale        float32
	paletteIndex int
}

// New creates a detached drawable.
func New() *DrawableHitObject {
	d := &DrawableHitObject{
		XBindable:         bindable.New[float32](0),
		StartTimeBindable: bindable.New[float64](0),
		RandomSeed:        bindable.New(0),
		HitFadeDuration:   DefaultHitFadeDuration,
		scale:             1,
	}

	// Lives as long as the drawable; follows whatever start time is bound.
	d.StartTimeBindable.BindValueChanged(func(e bindable.ValueChangedEvent[float64]) {
		d.RandomSeed.Set(int(e.NewValue))
	}, true)

	return d
}

// Apply attaches the drawable to h. A drawable that is still attached elsewhere
// is freed first so bindings are replaced, never stacked. Apply(nil) is a no-op.
func (d *DrawableHitObject) Apply(h *objects.HitObject) {
	if h == nil {
		return
	}
	if d.hitObject != nil {
		d.Free()
	}

	d.hitObject = h
	applied := false
	defer func() {
		if !applied {
			d.Free()
		}
	}()

	d.XBindable.BindTo(h.XBindable)
	d.StartTimeBindable.BindTo(h.StartTimeBindable)

	d.result = objects.NewJudgementResult(h.Judgement())
	d.state = ArmedStateIdle
	d.IsOnPlate = false
	d.transforms.Clear()
	d.applyVisuals()

	applied = true
}

// Free detaches the drawable from its model object. Safe to call when detached.
func (d *DrawableHitObject) Free() {
	if d.hitObject == nil {
		return
	}

	d.XBindable.UnbindFrom(d.hitObject.XBindable)
	d.StartTimeBindable.UnbindFrom(d.hitObject.StartTimeBindable)

	d.hitObject = nil
	d.result = nil
	d.state = ArmedStateIdle
	d.IsOnPlate = false
	d.transforms.Clear()
	d.rotation = 0
	d.scale = 1
	d.paletteIndex = 0
}

// applyVisuals derives kind-specific visuals from the random seed.
func (d *DrawableHitObject) applyVisuals() {
	d.rotation = float64((d.RandomSingle(SeriesRotation) - 0.5) * 40)
	d.scale = KindScale(d.hitObject.Kind)
	d.paletteIndex = d.hitObject.IndexInBeatmap % PaletteSize

	if d.hitObject.Kind == objects.KindBanana {
		d.rotation = float64((d.RandomSingle(SeriesRotation) - 0.5) * 360)
		d.scale *= 0.6 + 0.4*d.RandomSingle(SeriesScale)
		d.paletteIndex = rng.NextInt(PaletteSize, d.RandomSeed.Value(), SeriesPalette)
	}
}

// KindScale returns the base visual scale for a kind.
func KindScale(k objects.Kind) float32 {
	switch k {
	case objects.KindDroplet:
		return 0.8
	case objects.KindTinyDroplet:
		return 0.4
	default:
		return 1
	}
}

// HitObject returns the attached model object, or nil.
func (d *DrawableHitObject) HitObject() *objects.HitObject {
	return d.hitObject
}

// IsAttached reports whether a model object is applied.
func (d *DrawableHitObject) IsAttached() bool {
	return d.hitObject != nil
}

// RandomSingle returns a value in [0,1) for the given series, seeded by RandomSeed.
func (d *DrawableHitObject) RandomSingle(series int) float32 {
	return rng.NextSingle(d.RandomSeed.Value(), series)
}

// DisplayRadius is half the scaled draw width.
func (d *DrawableHitObject) DisplayRadius() float32 {
	objScale := float32(1)
	if d.hitObject != nil {
		objScale = d.hitObject.Scale
	}
	return BaseSize / 2 * d.scale * objScale
}

// SamplePlaybackPosition returns X normalized to the playfield width, for panning.
func (d *DrawableHitObject) SamplePlaybackPosition() float32 {
	p := d.XBindable.Value() / objects.PlayfieldWidth
	return float32(math.Max(0, math.Min(1, float64(p))))
}

// PaletteIndex selects one of PaletteSize visuals.
func (d *DrawableHitObject) PaletteIndex() int {
	return d.paletteIndex
}

// Scale returns the kind-specific visual scale.
func (d *DrawableHitObject) Scale() float32 {
	return d.scale
}

// Clock returns the last time passed to Update.
func (d *DrawableHitObject) Clock() float64 {
	return d.clock
}
