// Package anim describes visual transitions as data.
//
// Objects request transitions (fade, rotate) once per state change by appending
// Transforms to a Sequence; whoever draws the object samples the sequence each
// frame. Nothing here advances on its own.
package anim

import "math"

// Easing shapes the progress of a transform.
type Easing int

const (
	EasingNone Easing = iota
	EasingOut
	EasingIn
	EasingOutQuad
	EasingInOutQuad
)

// Apply maps linear progress t in [0,1] onto the eased progress.
func (e Easing) Apply(t float64) float64 {
	switch e {
	case EasingOut:
		// Quadratic deceleration, same curve as OutQuad
		return t * (2 - t)
	case EasingIn:
		return t * t
	case EasingOutQuad:
		return t * (2 - t)
	case EasingInOutQuad:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	default:
		return t
	}
}

// Property identifies what a transform animates.
type Property int

const (
	PropertyAlpha Property = iota
	PropertyRotation
)

// Transform interpolates one property between two values over [StartTime, EndTime].
type Transform struct {
	Property   Property
	StartTime  float64
	EndTime    float64
	StartValue float64
	EndValue   float64
	Easing     Easing
}

// ValueAt returns the transform's value at time.
// Before StartTime it returns StartValue, after EndTime it returns EndValue.
func (t Transform) ValueAt(time float64) float64 {
	if time <= t.StartTime {
		if t.EndTime <= t.StartTime && time >= t.StartTime {
			return t.EndValue
		}
		return t.StartValue
	}
	if time >= t.EndTime {
		return t.EndValue
	}

	progress := (time - t.StartTime) / (t.EndTime - t.StartTime)
	return t.StartValue + (t.EndValue-t.StartValue)*t.Easing.Apply(progress)
}

// Sequence is an ordered set of transforms applied to one object.
type Sequence struct {
	transforms []Transform
}

// Add appends a transform.
func (s *Sequence) Add(t Transform) {
	s.transforms = append(s.transforms, t)
}

// Clear removes all transforms.
func (s *Sequence) Clear() {
	s.transforms = s.transforms[:0]
}

// Len returns the number of transforms.
func (s *Sequence) Len() int {
	return len(s.transforms)
}

// Transforms returns the transforms in insertion order.
func (s *Sequence) Transforms() []Transform {
	return s.transforms
}

// Has reports whether any transform animates the property.
func (s *Sequence) Has(p Property) bool {
	for _, t := range s.transforms {
		if t.Property == p {
			return true
		}
	}
	return false
}

// ValueAt returns the value of property p at time.
// The latest transform that has started wins; base is returned when none has.
func (s *Sequence) ValueAt(p Property, time, base float64) float64 {
	value := base
	for _, t := range s.transforms {
		if t.Property != p || time < t.StartTime {
			continue
		}
		value = t.ValueAt(time)
	}
	return value
}

// EndTime returns the time the last transform finishes, or -Inf when empty.
func (s *Sequence) EndTime() float64 {
	end := math.Inf(-1)
	for _, t := range s.transforms {
		if t.EndTime > end {
			end = t.EndTime
		}
	}
	return end
}
