package drawable

import (
	"math"

	"github.com/vovakirdan/tui-catch/internal/catch/anim"
	"github.com/vovakirdan/tui-catch/internal/catch/objects"
)

// Update advances the drawable clock to now and gives the object a chance to be
// judged. Callers must have applied any model changes for this tick beforehand.
func (d *DrawableHitObject) Update(now float64) {
	d.clock = now
	d.UpdateResult(false)
}

// UpdateResult evaluates the judgement at the current clock time.
// Returns true if the object is judged after the call.
func (d *DrawableHitObject) UpdateResult(userTriggered bool) bool {
	if d.hitObject == nil {
		return false
	}
	if d.Judged() {
		return true
	}

	d.CheckForResult(userTriggered, d.clock-d.hitObject.StartTime())
	return d.Judged()
}

// CheckForResult commits a result once timeOffset (clock minus start time) has
// reached zero. The position predicate is consulted exactly once, at commit.
//
// A missing predicate leaves the object pending. A user-triggered request before
// the start time is ignored, not queued.
func (d *DrawableHitObject) CheckForResult(userTriggered bool, timeOffset float64) {
	if d.CheckPosition == nil {
		return
	}
	if timeOffset < 0 {
		return
	}
	if d.result == nil || d.result.HasResult() {
		return
	}

	d.applyResult(d.CheckPosition(d.hitObject), timeOffset)
}

// applyResult commits the result type and hands over to the animation state.
func (d *DrawableHitObject) applyResult(caught bool, timeOffset float64) {
	if caught {
		d.result.Type = d.result.Judgement.MaxResult
	} else {
		d.result.Type = d.result.Judgement.MinResult
	}
	d.result.TimeAbsolute = d.clock
	d.result.TimeOffset = timeOffset

	if d.result.IsHit() {
		d.updateState(ArmedStateHit)
	} else {
		d.updateState(ArmedStateMiss)
	}

	if d.OnNewResult != nil {
		d.OnNewResult(d, *d.result)
	}
}

// updateState enters a terminal animation state and requests its transitions.
// Only the first transition out of Idle has any effect.
func (d *DrawableHitObject) updateState(state ArmedState) {
	if d.state != ArmedStateIdle || state == ArmedStateIdle {
		return
	}
	d.state = state

	start := d.clock
	switch state {
	case ArmedStateMiss:
		rotation := d.Rotation()
		d.fadeOut(start, MissFadeDuration)
		d.transforms.Add(anim.Transform{
			Property:   anim.PropertyRotation,
			StartTime:  start,
			EndTime:    start + MissFadeDuration,
			StartValue: rotation,
			EndValue:   rotation * 2,
			Easing:     anim.EasingOut,
		})

	case ArmedStateHit:
		d.fadeOut(start, d.HitFadeDuration)
	}
}

func (d *DrawableHitObject) fadeOut(start, duration float64) {
	d.transforms.Add(anim.Transform{
		Property:   anim.PropertyAlpha,
		StartTime:  start,
		EndTime:    start + duration,
		StartValue: d.Alpha(),
		EndValue:   0,
	})
}

// Judged reports whether a result has been committed for the attached object.
func (d *DrawableHitObject) Judged() bool {
	return d.result.HasResult()
}

// Result returns a copy of the judgement result and whether the drawable is attached.
func (d *DrawableHitObject) Result() (objects.JudgementResult, bool) {
	if d.result == nil {
		return objects.JudgementResult{}, false
	}
	return *d.result, true
}

// State returns the animation state.
func (d *DrawableHitObject) State() ArmedState {
	return d.state
}

// Transforms returns the requested transitions.
func (d *DrawableHitObject) Transforms() []anim.Transform {
	return d.transforms.Transforms()
}

// Alpha returns the opacity at the drawable clock.
func (d *DrawableHitObject) Alpha() float64 {
	return d.AlphaAt(d.clock)
}

// AlphaAt samples opacity at time.
func (d *DrawableHitObject) AlphaAt(time float64) float64 {
	return d.transforms.ValueAt(anim.PropertyAlpha, time, 1)
}

// Rotation returns the rotation in degrees at the drawable clock.
func (d *DrawableHitObject) Rotation() float64 {
	return d.RotationAt(d.clock)
}

// RotationAt samples rotation at time.
func (d *DrawableHitObject) RotationAt(time float64) float64 {
	return d.transforms.ValueAt(anim.PropertyRotation, time, d.rotation)
}

// LifetimeStart is when the object enters the scene: start time minus preempt.
func (d *DrawableHitObject) LifetimeStart() float64 {
	if d.hitObject == nil {
		return math.Inf(1)
	}
	return d.hitObject.StartTime() - d.hitObject.TimePreempt
}

// LifetimeEnd is unbounded until judged, then the end of the exit transition.
func (d *DrawableHitObject) LifetimeEnd() float64 {
	if !d.Judged() {
		return math.Inf(1)
	}
	return math.Max(d.result.TimeAbsolute, d.transforms.EndTime())
}

// IsAlive reports whether time falls inside the object's lifetime.
func (d *DrawableHitObject) IsAlive(time float64) bool {
	return d.hitObject != nil && time >= d.LifetimeStart() && time < d.LifetimeEnd()
}

// ShouldRemoveOnExpiry is asked by the scene once the lifetime has elapsed.
// It returns IsOnPlate: true keeps the object in the active set, now owned by
// the catcher plate; false lets the scene purge and recycle it. A caught object
// must stay until the catcher releases it.
func (d *DrawableHitObject) ShouldRemoveOnExpiry() bool {
	return d.IsOnPlate
}
