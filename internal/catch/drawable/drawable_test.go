package drawable

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-catch/internal/catch/anim"
	"github.com/vovakirdan/tui-catch/internal/catch/objects"
)

func always(result bool) PositionCheck {
	return func(*objects.HitObject) bool { return result }
}

func TestSeedDerivation(t *testing.T) {
	d := New()

	d.Apply(objects.New(objects.KindFruit, 12345.7, 100))
	if got := d.RandomSeed.Value(); got != 12345 {
		t.Errorf("RandomSeed = %d, expected 12345", got)
	}

	d.Free()
	d.Apply(objects.New(objects.KindFruit, 9999.1, 100))
	if got := d.RandomSeed.Value(); got != 9999 {
		t.Errorf("RandomSeed after reattach = %d, expected 9999", got)
	}
}

func TestSeedFollowsStartTimeChanges(t *testing.T) {
	h := objects.New(objects.KindFruit, 500.2, 0)
	d := New()
	d.Apply(h)

	h.SetStartTime(750.9)
	if got := d.RandomSeed.Value(); got != 750 {
		t.Errorf("RandomSeed = %d, expected 750 after start time change", got)
	}
}

func TestIdenticalStartTimeIdenticalVisuals(t *testing.T) {
	a := New()
	b := New()
	a.Apply(objects.New(objects.KindBanana, 4321, 10))
	b.Apply(objects.New(objects.KindBanana, 4321, 400))

	for series := 0; series < 5; series++ {
		if a.RandomSingle(series) != b.RandomSingle(series) {
			t.Errorf("series %d differs for identical start times", series)
		}
	}
	if a.Rotation() != b.Rotation() || a.Scale() != b.Scale() || a.PaletteIndex() != b.PaletteIndex() {
		t.Error("identical start times should give identical visuals")
	}
}

func TestPositionBinding(t *testing.T) {
	h := objects.New(objects.KindFruit, 1000, 50)
	d := New()
	d.Apply(h)

	if d.XBindable.Value() != 50 {
		t.Fatalf("XBindable = %v, expected 50", d.XBindable.Value())
	}

	h.SetX(256)
	if d.XBindable.Value() != 256 {
		t.Errorf("XBindable should mirror model, got %v", d.XBindable.Value())
	}
	if d.SamplePlaybackPosition() != 0.5 {
		t.Errorf("SamplePlaybackPosition = %v, expected 0.5", d.SamplePlaybackPosition())
	}

	d.Free()
	h.SetX(10)
	if d.XBindable.Value() == 10 {
		t.Error("detached drawable should not follow model")
	}
}

func TestLeakFreeRebinding(t *testing.T) {
	first := objects.New(objects.KindFruit, 100, 0)
	second := objects.New(objects.KindFruit, 200, 0)
	d := New()

	d.Apply(first)
	d.Free()
	d.Apply(second)

	if n := first.XBindable.BindingCount(); n != 0 {
		t.Errorf("old model X has %d bindings, expected 0", n)
	}
	if n := first.StartTimeBindable.BindingCount(); n != 0 {
		t.Errorf("old model start time has %d bindings, expected 0", n)
	}
	if n := second.XBindable.BindingCount(); n != 1 {
		t.Errorf("new model X has %d bindings, expected 1", n)
	}
	if n := second.StartTimeBindable.BindingCount(); n != 1 {
		t.Errorf("new model start time has %d bindings, expected 1", n)
	}
}

func TestApplyWithoutFreeReplacesBindings(t *testing.T) {
	first := objects.New(objects.KindFruit, 100, 0)
	second := objects.New(objects.KindFruit, 200, 0)
	d := New()

	d.Apply(first)
	d.Apply(second)

	if first.XBindable.BindingCount() != 0 || second.XBindable.BindingCount() != 1 {
		t.Error("Apply should replace the previous binding")
	}
}

func TestFreeIsIdempotent(t *testing.T) {
	d := New()
	d.Free()
	d.Free()

	h := objects.New(objects.KindFruit, 100, 0)
	d.Apply(h)
	d.Free()
	d.Free()

	if h.XBindable.BindingCount() != 0 {
		t.Error("double free should leave no bindings")
	}
	if d.IsAttached() {
		t.Error("drawable should be detached")
	}
}

func TestApplyNilIsNoop(t *testing.T) {
	d := New()
	d.Apply(nil)
	if d.IsAttached() {
		t.Error("Apply(nil) should not attach")
	}
}

func TestTimeGate(t *testing.T) {
	d := New()
	d.Apply(objects.New(objects.KindFruit, 1000, 50))
	d.CheckPosition = always(true)

	d.CheckForResult(true, -1)
	if d.Judged() {
		t.Fatal("timeOffset -1 must not commit, even when user triggered")
	}

	d.CheckForResult(false, 0)
	r, _ := d.Result()
	if r.Type != objects.HitResultGreat {
		t.Errorf("timeOffset 0 with catch should commit Great, got %v", r.Type)
	}
}

func TestMissingPredicateStaysPending(t *testing.T) {
	d := New()
	d.Apply(objects.New(objects.KindFruit, 1000, 50))

	d.Update(5000)
	if d.Judged() {
		t.Error("no predicate should leave the object pending")
	}
	if d.State() != ArmedStateIdle {
		t.Errorf("state = %v, expected Idle", d.State())
	}

	// Predicate arrives late; next tick judges
	d.CheckPosition = always(false)
	d.Update(5001)
	if !d.Judged() {
		t.Error("object should be judged once the predicate is set")
	}
}

func TestSingleCommit(t *testing.T) {
	calls := 0
	d := New()
	d.Apply(objects.New(objects.KindFruit, 1000, 50))
	d.CheckPosition = func(*objects.HitObject) bool {
		calls++
		return calls == 1
	}

	results := 0
	d.OnNewResult = func(*DrawableHitObject, objects.JudgementResult) { results++ }

	for _, now := range []float64{900, 1000, 1001, 1002, 2000} {
		d.Update(now)
	}
	d.CheckForResult(true, 50)
	d.UpdateResult(true)

	r, _ := d.Result()
	if r.Type != objects.HitResultGreat {
		t.Errorf("result changed to %v", r.Type)
	}
	if calls != 1 {
		t.Errorf("predicate called %d times, expected 1", calls)
	}
	if results != 1 {
		t.Errorf("OnNewResult called %d times, expected 1", results)
	}
	if r.TimeAbsolute != 1000 || r.TimeOffset != 0 {
		t.Errorf("result timing = (%v, %v), expected (1000, 0)", r.TimeAbsolute, r.TimeOffset)
	}
}

func TestHitScenario(t *testing.T) {
	d := New()
	d.Apply(objects.New(objects.KindFruit, 1000, 50))
	d.CheckPosition = always(true)

	d.Update(995)
	if d.Judged() || d.State() != ArmedStateIdle {
		t.Fatal("timeOffset -5 should not commit")
	}

	d.Update(1002)
	r, _ := d.Result()
	if r.Type != objects.HitResultGreat {
		t.Fatalf("expected Great, got %v", r.Type)
	}
	if d.State() != ArmedStateHit {
		t.Errorf("state = %v, expected Hit", d.State())
	}

	for _, tr := range d.Transforms() {
		if tr.Property == anim.PropertyRotation {
			t.Error("hit must not rotate")
		}
	}
	if d.AlphaAt(1002+d.HitFadeDuration) != 0 {
		t.Error("hit should fade to zero")
	}
}

func TestMissScenario(t *testing.T) {
	d := New()
	d.Apply(objects.New(objects.KindFruit, 1000, 50))
	d.CheckPosition = always(false)

	before := d.Rotation()
	d.Update(1000)

	r, _ := d.Result()
	if r.Type != objects.HitResultMiss {
		t.Fatalf("expected Miss, got %v", r.Type)
	}
	if d.State() != ArmedStateMiss {
		t.Errorf("state = %v, expected Miss", d.State())
	}

	if d.AlphaAt(1000) != 1 {
		t.Errorf("alpha at commit = %v, expected 1", d.AlphaAt(1000))
	}
	if d.AlphaAt(1250) != 0 {
		t.Errorf("alpha after 250 = %v, expected 0", d.AlphaAt(1250))
	}
	if got := d.RotationAt(1250); math.Abs(got-before*2) > 1e-9 {
		t.Errorf("rotation after 250 = %v, expected %v", got, before*2)
	}
	if d.LifetimeEnd() != 1250 {
		t.Errorf("LifetimeEnd = %v, expected 1250", d.LifetimeEnd())
	}

	// Not caught: expiry purges
	if d.ShouldRemoveOnExpiry() {
		t.Error("object not on plate should be purged at expiry")
	}
}

func TestRetentionInversion(t *testing.T) {
	d := New()
	d.Apply(objects.New(objects.KindFruit, 1000, 50))

	d.IsOnPlate = true
	if !d.ShouldRemoveOnExpiry() {
		t.Error("object on plate should be retained")
	}
	d.IsOnPlate = false
	if d.ShouldRemoveOnExpiry() {
		t.Error("object off plate should be purged")
	}
}

func TestReuseStartsClean(t *testing.T) {
	d := New()
	d.Apply(objects.New(objects.KindFruit, 1000, 50))
	d.CheckPosition = always(false)
	d.Update(1100) // mid-animation
	d.IsOnPlate = true

	d.Free()
	d.Apply(objects.New(objects.KindDroplet, 3000.5, 60))

	if d.Judged() || d.State() != ArmedStateIdle || d.IsOnPlate {
		t.Error("reused drawable should start pending, idle and off plate")
	}
	if len(d.Transforms()) != 0 {
		t.Error("reused drawable should have no transforms")
	}
	if d.RandomSeed.Value() != 3000 {
		t.Errorf("RandomSeed = %d, expected 3000", d.RandomSeed.Value())
	}
	r, ok := d.Result()
	if !ok || r.Judgement.MaxResult != objects.HitResultLargeTickHit {
		t.Errorf("result should use droplet judgement, got %+v", r.Judgement)
	}
}

func TestLifetime(t *testing.T) {
	h := objects.New(objects.KindFruit, 2000, 0)
	h.TimePreempt = 600
	d := New()
	d.Apply(h)

	if d.LifetimeStart() != 1400 {
		t.Errorf("LifetimeStart = %v, expected 1400", d.LifetimeStart())
	}
	if !math.IsInf(d.LifetimeEnd(), 1) {
		t.Error("pending object should live indefinitely")
	}
	if d.IsAlive(1399) || !d.IsAlive(1400) {
		t.Error("IsAlive boundary wrong")
	}
}

func TestDisplayRadius(t *testing.T) {
	tests := []struct {
		kind     objects.Kind
		scale    float32
		expected float32
	}{
		{objects.KindFruit, 1, 64},
		{objects.KindFruit, 0.5, 32},
		{objects.KindDroplet, 1, 51.2},
		{objects.KindTinyDroplet, 0.5, 12.8},
	}

	for _, tc := range tests {
		h := objects.New(tc.kind, 0, 0)
		h.Scale = tc.scale
		d := New()
		d.Apply(h)

		if got := d.DisplayRadius(); math.Abs(float64(got-tc.expected)) > 1e-3 {
			t.Errorf("DisplayRadius(%v, %v) = %v, expected %v", tc.kind, tc.scale, got, tc.expected)
		}
	}
}

func TestBananaMissRotates(t *testing.T) {
	d := New()
	d.Apply(objects.New(objects.KindBanana, 777, 0))
	d.CheckPosition = always(false)
	d.Update(777)

	r, _ := d.Result()
	if r.Type != objects.HitResultIgnoreMiss {
		t.Errorf("banana miss = %v, expected IgnoreMiss", r.Type)
	}
	if d.State() != ArmedStateMiss {
		t.Errorf("state = %v, expected Miss", d.State())
	}
}
