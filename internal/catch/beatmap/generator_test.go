package beatmap

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-catch/internal/catch/objects"
	"github.com/vovakirdan/tui-catch/internal/config"
)

func generate(t *testing.T, seed int64, cfg config.CatchConfig) *Beatmap {
	t.Helper()
	bm, err := Generate(seed, &cfg, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return bm
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	a := generate(t, 42, cfg)
	b := generate(t, 42, cfg)

	if len(a.Objects) != len(b.Objects) {
		t.Fatalf("object counts differ: %d vs %d", len(a.Objects), len(b.Objects))
	}
	for i := range a.Objects {
		ha, hb := a.Objects[i], b.Objects[i]
		if ha.Kind != hb.Kind || ha.StartTime() != hb.StartTime() || ha.X() != hb.X() {
			t.Fatalf("object %d differs: %v vs %v", i, ha, hb)
		}
	}

	c := generate(t, 43, cfg)
	same := len(a.Objects) == len(c.Objects)
	for i := 0; same && i < len(a.Objects); i++ {
		same = a.Objects[i].X() == c.Objects[i].X()
	}
	if same {
		t.Error("different seeds should give different maps")
	}
}

func TestGenerateOrderAndIndex(t *testing.T) {
	bm := generate(t, 7, config.DefaultCatchConfig())

	for i, h := range bm.Objects {
		if h.IndexInBeatmap != i {
			t.Errorf("object %d has index %d", i, h.IndexInBeatmap)
		}
		if i > 0 && h.StartTime() < bm.Objects[i-1].StartTime() {
			t.Fatalf("objects not sorted at %d", i)
		}
		if h.X() < 0 || h.X() > objects.PlayfieldWidth {
			t.Errorf("object %d out of playfield: x=%v", i, h.X())
		}
	}
	if bm.Duration != bm.Objects[len(bm.Objects)-1].StartTime() {
		t.Error("Duration should be the last start time")
	}
}

func TestGenerateCounts(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	cfg.Beatmap.Fruits = 96
	cfg.Beatmap.BananaEvery = 32
	cfg.Beatmap.BananaCount = 8
	bm := generate(t, 1, cfg)

	if got := bm.Count(objects.KindFruit); got != 96 {
		t.Errorf("fruits = %d, expected 96", got)
	}
	// Showers after fruit 32 and 64; none after the last fruit
	if got := bm.Count(objects.KindBanana); got != 16 {
		t.Errorf("bananas = %d, expected 16", got)
	}

	cfg.Beatmap.StreamChance = 0
	cfg.Beatmap.BananaEvery = 0
	bm = generate(t, 1, cfg)
	if len(bm.Objects) != 96 {
		t.Errorf("only fruits expected without streams and showers, got %d objects", len(bm.Objects))
	}
}

func TestGenerateStreams(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	cfg.Beatmap.StreamChance = 1
	cfg.Beatmap.DropletsPerStream = 2
	cfg.Beatmap.TinyPerDroplet = 2
	cfg.Beatmap.BananaEvery = 0
	bm := generate(t, 9, cfg)

	droplets := bm.Count(objects.KindDroplet)
	tiny := bm.Count(objects.KindTinyDroplet)
	if droplets == 0 {
		t.Fatal("streams should produce droplets")
	}
	// Each stream: 2 droplets, 3 segments with 2 tiny droplets each
	if tiny*2 != droplets*6 {
		t.Errorf("tiny droplets = %d for %d droplets, expected ratio 3:1", tiny, droplets)
	}
}

func TestGenerateReachable(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	cfg.Beatmap.StreamChance = 0.5
	cfg.Difficulty.InitialLevel = 1
	bm := generate(t, 2024, cfg)

	var prev *objects.HitObject
	for _, h := range bm.Objects {
		if h.Kind == objects.KindBanana {
			continue
		}
		if prev != nil {
			dt := h.StartTime() - prev.StartTime()
			dx := math.Abs(float64(h.X() - prev.X()))
			if dx > cfg.Catcher.WalkSpeed*dt+1e-3 {
				t.Fatalf("jump %v -> %v needs %.1f units in %.1f ms", prev, h, dx, dt)
			}
		}
		prev = h
	}
}

func TestGenerateAppliesDifficulty(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	cfg.Difficulty.Enabled = false
	bm := generate(t, 5, cfg)

	expectedPreempt := objects.PreemptFromApproachRate(
		cfg.Beatmap.ApproachRate + cfg.Difficulty.InitialLevel*cfg.Difficulty.Scaling.ApproachRateBonus)
	expectedScale := objects.ScaleFromCircleSize(cfg.Beatmap.CircleSize)
	for _, h := range bm.Objects {
		if h.TimePreempt != expectedPreempt || h.Scale != expectedScale {
			t.Fatalf("%v: preempt=%v scale=%v, expected %v %v", h, h.TimePreempt, h.Scale, expectedPreempt, expectedScale)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	cfg.Beatmap.BPM = 0
	if _, err := Generate(1, &cfg, nil); err == nil {
		t.Error("zero bpm should fail")
	}
	if _, err := Generate(1, nil, nil); err == nil {
		t.Error("nil config should fail")
	}
}
