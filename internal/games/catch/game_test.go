package catch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-catch/internal/catch/objects"
	"github.com/vovakirdan/tui-catch/internal/catch/playfield"
	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/registry"
)

const smallMap = `
beatmap:
  fruits: 24
  banana_every: 8
  banana_count: 4
rain:
  banana_every: 10
`

func newTestGame(t *testing.T, mode Mode, yaml string, seed int64) *Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catch.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New(mode)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func runToEnd(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 100000; i++ {
		if g.Step(core.NewInputFrame()).State.GameOver {
			return
		}
	}
	t.Fatal("game did not finish")
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"catch", "catch_rain"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
		if _, ok := g.(registry.Digester); !ok {
			t.Errorf("%s should support replay digests", id)
		}
	}
}

func TestAutopilotCatchesEveryFruit(t *testing.T) {
	g := newTestGame(t, ModeStandard, smallMap, 42)
	g.SetAutopilot(true)
	runToEnd(t, g)

	s := g.Summary()
	if s.FruitMisses != 0 || s.DropletMisses != 0 || s.TinyMisses != 0 {
		t.Errorf("autopilot missed objects: %+v", s)
	}
	if s.Fruits != 24 {
		t.Errorf("Fruits = %d, expected 24", s.Fruits)
	}
	if s.Judged() != len(g.Beatmap().Objects) {
		t.Errorf("judged %d of %d objects", s.Judged(), len(g.Beatmap().Objects))
	}
	if s.MaxCombo < 24 {
		t.Errorf("MaxCombo = %d, expected a full combo", s.MaxCombo)
	}
	if s.Accuracy != 1 {
		t.Errorf("Accuracy = %v, expected 1", s.Accuracy)
	}
}

func TestReplayDeterministic(t *testing.T) {
	a := newTestGame(t, ModeRain, smallMap, 7)
	a.SetAutopilot(true)
	runToEnd(t, a)

	b := newTestGame(t, ModeRain, smallMap, 7)
	b.SetAutopilot(true)
	runToEnd(t, b)

	if a.Digest() != b.Digest() {
		t.Errorf("digests differ: %s vs %s", a.Digest(), b.Digest())
	}
	if a.Summary() != b.Summary() {
		t.Errorf("summaries differ:\n%+v\n%+v", a.Summary(), b.Summary())
	}

	c := newTestGame(t, ModeRain, smallMap, 8)
	c.SetAutopilot(true)
	runToEnd(t, c)
	if a.Digest() == c.Digest() {
		t.Error("different seeds should give different digests")
	}
}

func TestRainModeIsDenser(t *testing.T) {
	std := newTestGame(t, ModeStandard, smallMap, 3).Beatmap()
	rain := newTestGame(t, ModeRain, smallMap, 3).Beatmap()

	if rain.Count(objects.KindDroplet) <= std.Count(objects.KindDroplet) {
		t.Errorf("rain droplets = %d, standard = %d", rain.Count(objects.KindDroplet), std.Count(objects.KindDroplet))
	}
}

func TestManualMovement(t *testing.T) {
	g := newTestGame(t, ModeStandard, smallMap, 1)
	start := g.Catcher().X
	dt := float32(g.runtime.TickDuration())

	g.Step(core.NewInputFrame(core.ActionRight))
	walked := g.Catcher().X - start
	if diff := walked - playfield.BaseWalkSpeed*dt; diff > 0.01 || diff < -0.01 {
		t.Errorf("walked %v, expected %v", walked, playfield.BaseWalkSpeed*dt)
	}

	// Movement continues between key repeats
	g.Step(core.NewInputFrame())
	if g.Catcher().X <= start+walked {
		t.Error("catcher should keep moving while the key is held")
	}

	// Stops once the hold expires
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}
	x := g.Catcher().X
	g.Step(core.NewInputFrame())
	if g.Catcher().X != x {
		t.Error("catcher should stop after the hold expires")
	}

	g.Step(core.NewInputFrame(core.ActionLeft, core.ActionDash))
	if !g.Catcher().Dashing {
		t.Error("dash should be active")
	}
	if moved := x - g.Catcher().X; moved < playfield.BaseDashSpeed*dt-0.01 {
		t.Errorf("dash moved %v, expected %v", moved, playfield.BaseDashSpeed*dt)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, ModeStandard, smallMap, 1)
	g.Step(core.NewInputFrame())
	clock := g.Clock()

	res := g.Step(core.NewInputFrame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	g.Step(core.NewInputFrame(core.ActionRight))
	if g.Clock() != clock {
		t.Error("clock should not advance while paused")
	}

	g.Step(core.NewInputFrame(core.ActionPause))
	if g.State().Paused || g.Clock() == clock {
		t.Error("unpausing should resume the clock")
	}
}

func TestHealthDepletionEndsGame(t *testing.T) {
	yaml := smallMap + `
scoring:
  max_health: 10
  miss_penalty: 10
`
	g := newTestGame(t, ModeStandard, yaml, 1)
	g.Catcher().X = 0
	runToEnd(t, g)

	s := g.Summary()
	if s.FruitMisses != 1 {
		t.Errorf("game should end on the first miss, misses = %d", s.FruitMisses)
	}
	if g.playfield.Finished() {
		t.Error("map should not be finished when health runs out")
	}
	if g.Step(core.NewInputFrame()).State.GameOver != true {
		t.Error("game over should be sticky")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, ModeStandard, smallMap, 1)
	for g.Clock() < 1500 {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing: %q", screen.Row(0))
	}
	if !strings.ContainsRune(screen.Row(21), CatcherChar) {
		t.Errorf("catcher missing on row 21: %q", screen.Row(21))
	}
	if !strings.ContainsRune(out, fruitGlyphs[0]) && !strings.ContainsRune(out, fruitGlyphs[1]) &&
		!strings.ContainsRune(out, fruitGlyphs[2]) && !strings.ContainsRune(out, fruitGlyphs[3]) {
		t.Error("first fruit should be visible before its start time")
	}

	g.Step(core.NewInputFrame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause message missing")
	}
}

func TestTally(t *testing.T) {
	cfg := config.DefaultCatchConfig().Scoring
	tally := NewTally(cfg)
	emptyDigest := tally.Digest()

	fruit := objects.New(objects.KindFruit, 1000, 0)
	hit := playfield.ResultEvent{HitObject: fruit, Result: objects.JudgementResult{Type: objects.HitResultGreat}}
	miss := playfield.ResultEvent{HitObject: fruit, Result: objects.JudgementResult{Type: objects.HitResultMiss}}
	tinyMiss := playfield.ResultEvent{
		HitObject: objects.New(objects.KindTinyDroplet, 1000, 0),
		Result:    objects.JudgementResult{Type: objects.HitResultSmallTickMiss},
	}

	tally.Apply(hit)
	tally.Apply(hit)
	if tally.Combo != 2 || tally.Score <= 2*cfg.FruitPoints {
		t.Errorf("combo=%d score=%d after two hits", tally.Combo, tally.Score)
	}

	tally.Apply(tinyMiss)
	if tally.Combo != 2 || tally.Health != cfg.MaxHealth {
		t.Error("tiny droplet miss should not break combo or cost health")
	}

	tally.Apply(miss)
	if tally.Combo != 0 || tally.MaxCombo != 2 {
		t.Errorf("miss should reset combo, combo=%d max=%d", tally.Combo, tally.MaxCombo)
	}
	if tally.Health != cfg.MaxHealth-cfg.MissPenalty {
		t.Errorf("Health = %v, expected %v", tally.Health, cfg.MaxHealth-cfg.MissPenalty)
	}
	if tally.Count(objects.HitResultGreat) != 2 {
		t.Errorf("Count(Great) = %d", tally.Count(objects.HitResultGreat))
	}
	if acc := tally.Accuracy(); acc != 0.5 {
		t.Errorf("Accuracy = %v, expected 0.5", acc)
	}
	if tally.Digest() == emptyDigest {
		t.Error("digest should change with judgements")
	}
}

func TestVerify(t *testing.T) {
	newTestGame(t, ModeStandard, smallMap, 1)

	verified, err := Verify(ModeStandard, 99, 60)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	s := verified.Summary()
	if s.Fruits != 24 || s.FruitMisses != 0 {
		t.Errorf("summary = %+v, expected 24 caught fruits", s)
	}
	if len(s.Digest) != 16 {
		t.Errorf("Digest = %q, expected 16 hex chars", s.Digest)
	}

	g, err := Autoplay(ModeStandard, 99, 60)
	if err != nil {
		t.Fatalf("Autoplay() error = %v", err)
	}
	if g.Digest() != s.Digest || !g.Assisted() || g.Seed() != 99 {
		t.Error("Autoplay should reproduce the verified run")
	}
}
