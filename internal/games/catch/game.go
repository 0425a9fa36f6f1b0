// Package catch implements the fruit catching game on top of the playfield.
// Objects fall towards a catcher at the bottom of the screen; the catcher
// moves left and right to catch them.
package catch

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/catch/beatmap"
	"github.com/vovakirdan/tui-catch/internal/catch/objects"
	"github.com/vovakirdan/tui-catch/internal/catch/playfield"
	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/registry"
)

// Mode selects the map layout.
type Mode string

const (
	ModeStandard Mode = "catch"
	ModeRain     Mode = "catch_rain"
)

// inputHold is how long a key press keeps acting, in ms. Terminals only report
// presses, so movement continues until the key repeat arrives.
const inputHold = 150.0

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game for both catch modes.
type Game struct {
	mode       Mode
	runtime    core.RuntimeConfig
	cfg        config.CatchConfig
	difficulty *config.DifficultyManager
	preset     config.DifficultyPreset
	logger     *log.Logger

	beatmap   *beatmap.Beatmap
	playfield *playfield.Playfield
	catcher   *playfield.Catcher
	tally     *Tally

	clock     float64 // Map time in ms
	tickCount int
	gameOver  bool
	paused    bool
	autopilot bool
	assisted  bool // Autopilot was on at some point of the run

	moveDir  int
	moveHold float64
	dashHold float64
}

// New creates a game in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeRain {
		return "Catch: Juice Rain"
	}
	return "Catch the Beat"
}

// Reset loads config, generates the map for the runtime seed and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = logger.WithPrefix(string(g.mode))

	cfg, err := config.LoadCatch(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultCatchConfig()
	}
	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	if preset != "" {
		config.ApplyCatchPreset(&cfg, preset)
	}
	if g.mode == ModeRain {
		config.ApplyRain(&cfg)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	bm, err := beatmap.Generate(runtime.Seed, &g.cfg, g.difficulty)
	if err != nil {
		g.logger.Error("beatmap generation failed, using defaults", "err", err)
		g.cfg = config.DefaultCatchConfig()
		g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
		bm, _ = beatmap.Generate(runtime.Seed, &g.cfg, g.difficulty)
	}
	g.beatmap = bm

	g.catcher = playfield.NewCatcher(objects.ScaleFromCircleSize(g.cfg.Beatmap.CircleSize) * 2)
	g.catcher.WalkSpeed = float32(g.cfg.Catcher.WalkSpeed)
	g.catcher.DashSpeed = float32(g.cfg.Catcher.DashSpeed)
	g.catcher.MaxPlateSize = g.cfg.Catcher.PlateSize

	g.tally = NewTally(g.cfg.Scoring)
	g.playfield = playfield.New(g.catcher,
		playfield.WithLogger(g.logger.WithPrefix("playfield")),
		playfield.WithHitFadeDuration(g.cfg.Animation.HitFadeMs),
		playfield.WithResultListener(g.tally.Apply),
	)
	g.playfield.Add(bm.Objects...)

	g.clock = 0
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
	g.assisted = g.autopilot
	g.moveDir = 0
	g.moveHold = 0
	g.dashHold = 0

	g.logger.Debug("reset",
		"seed", runtime.Seed,
		"objects", len(bm.Objects),
		"duration", bm.Duration,
		"catch_width", g.catcher.CatchWidth(),
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionAutopilot) {
		g.autopilot = !g.autopilot
		g.assisted = g.assisted || g.autopilot
	}

	g.tickCount++
	dt := g.runtime.TickDuration()
	g.clock += dt

	// The catcher moves before judgement so this tick's position counts
	g.readInput(in)
	if g.autopilot {
		g.autoMove(dt)
	} else {
		g.catcher.Dashing = g.dashHold > 0
		g.catcher.Move(g.moveDir, dt)
	}
	g.decayInput(dt)

	g.playfield.Update(g.clock)

	if g.tally.Health <= 0 {
		g.gameOver = true
		g.logger.Info("health depleted", "time", g.clock, "score", g.tally.Score)
	} else if g.playfield.Finished() {
		g.gameOver = true
		g.logger.Info("map complete", "score", g.tally.Score, "max_combo", g.tally.MaxCombo)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) readInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		g.moveDir, g.moveHold = -1, inputHold
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		g.moveDir, g.moveHold = 1, inputHold
	}
	if in.Has(core.ActionDash) {
		g.dashHold = inputHold
	}
}

func (g *Game) decayInput(dt float64) {
	g.moveHold -= dt
	if g.moveHold <= 0 {
		g.moveDir, g.moveHold = 0, 0
	}
	g.dashHold = max(0, g.dashHold-dt)
}

// autoMove walks the catcher to the next object, dashing only when walking
// would arrive late. Bananas are chased only once no fruit is left.
func (g *Game) autoMove(dt float64) {
	target := g.playfield.NextPendingWhere(func(h *objects.HitObject) bool {
		return h.Kind != objects.KindBanana
	})
	if target == nil {
		target = g.playfield.NextPending()
	}
	if target == nil {
		g.catcher.Dashing = false
		return
	}

	distance := target.X() - g.catcher.X
	if distance < 0 {
		distance = -distance
	}
	timeLeft := target.StartTime() - g.clock
	g.catcher.Dashing = float64(distance) > float64(g.catcher.WalkSpeed)*timeLeft
	g.catcher.MoveTowards(target.X(), dt)
}

// SetDifficulty overrides the package preset for this game. Takes effect on Reset.
func (g *Game) SetDifficulty(preset string) {
	g.preset, _ = config.ParsePreset(preset)
}

// Seed returns the seed the current map was generated from.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// SetAutopilot enables or disables automatic play.
func (g *Game) SetAutopilot(on bool) {
	g.autopilot = on
	g.assisted = g.assisted || on
}

// Autopilot reports whether the catcher plays itself.
func (g *Game) Autopilot() bool {
	return g.autopilot
}

// Assisted reports whether autopilot played any part of the current run.
func (g *Game) Assisted() bool {
	return g.assisted
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	var score, combo int
	if g.tally != nil {
		score, combo = g.tally.Score, g.tally.Combo
	}
	return core.GameState{
		Score:    score,
		Combo:    combo,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Clock returns the current map time in ms.
func (g *Game) Clock() float64 {
	return g.clock
}

// Ticks returns how many simulation ticks have run since Reset.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Catcher returns the player's catcher.
func (g *Game) Catcher() *playfield.Catcher {
	return g.catcher
}

// Playfield returns the scene manager.
func (g *Game) Playfield() *playfield.Playfield {
	return g.playfield
}

// Beatmap returns the generated map.
func (g *Game) Beatmap() *beatmap.Beatmap {
	return g.beatmap
}

// Summary returns the judgement tally of the current run.
func (g *Game) Summary() Summary {
	return g.tally.Summary()
}

// Digest identifies the sequence of judgements; equal runs give equal digests.
func (g *Game) Digest() string {
	return g.tally.Digest()
}

// Register both modes with the registry
func init() {
	registry.Register(string(ModeStandard), "Catch fruits falling to the beat", func() registry.Game {
		return New(ModeStandard)
	})
	registry.Register(string(ModeRain), "Droplet streams and banana showers", func() registry.Game {
		return New(ModeRain)
	})
}
