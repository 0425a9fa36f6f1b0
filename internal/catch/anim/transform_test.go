package anim

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	easings := []Easing{EasingNone, EasingOut, EasingIn, EasingOutQuad, EasingInOutQuad}
	for _, e := range easings {
		if got := e.Apply(0); got != 0 {
			t.Errorf("easing %d at 0 = %v", e, got)
		}
		if got := e.Apply(1); got != 1 {
			t.Errorf("easing %d at 1 = %v", e, got)
		}
	}

	// Ease-out is ahead of linear halfway through
	if EasingOut.Apply(0.5) <= 0.5 {
		t.Error("EasingOut should decelerate")
	}
}

func TestTransformValueAt(t *testing.T) {
	tr := Transform{
		Property:   PropertyAlpha,
		StartTime:  100,
		EndTime:    350,
		StartValue: 1,
		EndValue:   0,
	}

	tests := []struct {
		time     float64
		expected float64
	}{
		{0, 1},
		{100, 1},
		{225, 0.5},
		{350, 0},
		{1000, 0},
	}

	for _, tc := range tests {
		if got := tr.ValueAt(tc.time); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("ValueAt(%v) = %v, expected %v", tc.time, got, tc.expected)
		}
	}
}

func TestInstantTransform(t *testing.T) {
	tr := Transform{Property: PropertyAlpha, StartTime: 50, EndTime: 50, StartValue: 1, EndValue: 0}
	if tr.ValueAt(49) != 1 {
		t.Error("instant transform should not apply before its time")
	}
	if tr.ValueAt(50) != 0 {
		t.Error("instant transform should apply at its time")
	}
}

func TestSequence(t *testing.T) {
	var s Sequence
	if !math.IsInf(s.EndTime(), -1) {
		t.Error("empty sequence should end at -Inf")
	}
	if s.ValueAt(PropertyRotation, 10, 7) != 7 {
		t.Error("empty sequence should return base")
	}

	s.Add(Transform{Property: PropertyAlpha, StartTime: 0, EndTime: 250, StartValue: 1, EndValue: 0})
	s.Add(Transform{Property: PropertyRotation, StartTime: 0, EndTime: 250, StartValue: 10, EndValue: 20, Easing: EasingOut})

	if s.EndTime() != 250 {
		t.Errorf("EndTime() = %v, expected 250", s.EndTime())
	}
	if !s.Has(PropertyRotation) {
		t.Error("expected rotation transform")
	}
	if got := s.ValueAt(PropertyRotation, 250, 0); got != 20 {
		t.Errorf("rotation at end = %v, expected 20", got)
	}
	if got := s.ValueAt(PropertyAlpha, -5, 1); got != 1 {
		t.Errorf("alpha before start = %v, expected base 1", got)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Error("Clear should remove transforms")
	}
}
