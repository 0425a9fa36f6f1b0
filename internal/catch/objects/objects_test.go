package objects

import (
	"math"
	"testing"
)

func TestPreemptFromApproachRate(t *testing.T) {
	tests := []struct {
		ar       float64
		expected float64
	}{
		{0, 1800},
		{5, 1200},
		{10, 450},
		{9, 600},
		{2.5, 1500},
	}

	for _, tc := range tests {
		got := PreemptFromApproachRate(tc.ar)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("PreemptFromApproachRate(%v) = %v, expected %v", tc.ar, got, tc.expected)
		}
	}
}

func TestScaleFromCircleSize(t *testing.T) {
	if got := ScaleFromCircleSize(5); got != 0.5 {
		t.Errorf("ScaleFromCircleSize(5) = %v, expected 0.5", got)
	}
	if ScaleFromCircleSize(7) >= ScaleFromCircleSize(3) {
		t.Error("larger circle size should give smaller objects")
	}
}

func TestJudgementFor(t *testing.T) {
	tests := []struct {
		kind     Kind
		max, min HitResult
	}{
		{KindFruit, HitResultGreat, HitResultMiss},
		{KindDroplet, HitResultLargeTickHit, HitResultLargeTickMiss},
		{KindTinyDroplet, HitResultSmallTickHit, HitResultSmallTickMiss},
		{KindBanana, HitResultLargeBonus, HitResultIgnoreMiss},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			j := JudgementFor(tc.kind)
			if j.MaxResult != tc.max || j.MinResult != tc.min {
				t.Errorf("JudgementFor(%v) = %+v", tc.kind, j)
			}
			if !j.MaxResult.IsHit() {
				t.Errorf("%v should be a hit", j.MaxResult)
			}
			if j.MinResult.IsHit() {
				t.Errorf("%v should not be a hit", j.MinResult)
			}
		})
	}
}

func TestJudgementResultHasResult(t *testing.T) {
	var nilResult *JudgementResult
	if nilResult.HasResult() {
		t.Error("nil result should not have a result")
	}

	r := NewJudgementResult(JudgementFor(KindFruit))
	if r.HasResult() {
		t.Error("fresh result should be unset")
	}
	r.Type = r.Judgement.MaxResult
	if !r.HasResult() || !r.IsHit() {
		t.Error("committed Great should be a hit")
	}
}

func TestHitObjectObservableX(t *testing.T) {
	h := New(KindFruit, 1000, 50)
	h.ApplyDefaults(9, 4)

	if h.StartTime() != 1000 || h.X() != 50 {
		t.Fatalf("unexpected object %v", h)
	}
	if h.TimePreempt != 600 {
		t.Errorf("TimePreempt = %v, expected 600", h.TimePreempt)
	}

	h.SetX(120)
	if h.XBindable.Value() != 120 {
		t.Errorf("SetX should update the bindable, got %v", h.XBindable.Value())
	}
}
