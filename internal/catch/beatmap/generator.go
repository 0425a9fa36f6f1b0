// Package beatmap generates deterministic catch maps from a seed.
package beatmap

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-catch/internal/catch/objects"
	"github.com/vovakirdan/tui-catch/internal/config"
)

// Beat divisions between consecutive fruits. Repeats weight the choice.
var beatDivisions = []float64{0.5, 1, 1, 1, 2}

// bananaDivision is the spacing of bananas in a shower, in beats.
const bananaDivision = 0.25

// Beatmap is a generated, time-ordered list of objects.
type Beatmap struct {
	Seed     int64
	Objects  []*objects.HitObject
	Duration float64 // Start time of the last object
}

// Count returns how many objects of kind the map holds.
func (b *Beatmap) Count(kind objects.Kind) int {
	n := 0
	for _, h := range b.Objects {
		if h.Kind == kind {
			n++
		}
	}
	return n
}

// Generator lays out fruits on a beat grid, fills some gaps with droplet
// streams and inserts banana showers.
type Generator struct {
	rng        *rand.Rand
	cfg        config.CatchBeatmap
	catcher    config.CatchCatcher
	difficulty *config.DifficultyManager

	objs []*objects.HitObject
}

// NewGenerator creates a generator for the given configuration.
func NewGenerator(seed int64, cfg *config.CatchConfig, diff *config.DifficultyManager) (*Generator, error) {
	if cfg == nil {
		return nil, errors.New("beatmap: nil config")
	}
	if cfg.Beatmap.BPM <= 0 {
		return nil, fmt.Errorf("beatmap: bpm must be positive, got %v", cfg.Beatmap.BPM)
	}
	if cfg.Catcher.WalkSpeed <= 0 {
		return nil, fmt.Errorf("beatmap: walk speed must be positive, got %v", cfg.Catcher.WalkSpeed)
	}
	if diff == nil {
		diff = config.NewDifficultyManager(cfg.Difficulty)
	}
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		cfg:        cfg.Beatmap,
		catcher:    cfg.Catcher,
		difficulty: diff,
	}, nil
}

// Generate builds a map. The same seed and configuration always give the same map.
func Generate(seed int64, cfg *config.CatchConfig, diff *config.DifficultyManager) (*Beatmap, error) {
	g, err := NewGenerator(seed, cfg, diff)
	if err != nil {
		return nil, err
	}
	return g.Build(seed), nil
}

// Build runs the generator once.
func (g *Generator) Build(seed int64) *Beatmap {
	g.objs = g.objs[:0]
	baseBeat := 60000 / g.cfg.BPM

	t := g.cfg.LeadIn
	x := float32(objects.PlayfieldWidth / 2)

	for i := 0; i < g.cfg.Fruits; i++ {
		g.add(objects.KindFruit, t, x)

		beat := g.difficulty.BeatLength(baseBeat, 0, t)
		gap := beat * beatDivisions[g.rng.Intn(len(beatDivisions))]
		nx := g.nextX(x, gap, t)

		if i < g.cfg.Fruits-1 && gap >= beat && g.rng.Float64() < g.cfg.StreamChance {
			g.stream(t, x, t+gap, nx)
		}

		t += gap
		x = nx

		if g.cfg.BananaEvery > 0 && (i+1)%g.cfg.BananaEvery == 0 && i < g.cfg.Fruits-1 {
			t = g.bananaShower(t, beat)
		}
	}

	sort.SliceStable(g.objs, func(i, j int) bool {
		return g.objs[i].StartTime() < g.objs[j].StartTime()
	})
	for i, h := range g.objs {
		h.IndexInBeatmap = i
	}

	bm := &Beatmap{Seed: seed, Objects: append([]*objects.HitObject(nil), g.objs...)}
	if n := len(bm.Objects); n > 0 {
		bm.Duration = bm.Objects[n-1].StartTime()
	}
	return bm
}

// MaxJump is the widest horizontal move allowed between two objects gap ms apart.
func (g *Generator) MaxJump(gap, at float64) float32 {
	allowance := g.difficulty.JumpAllowance(g.cfg.JumpAllowance, 0, at)
	return float32(g.catcher.WalkSpeed * gap * allowance)
}

// nextX picks the next fruit position within walking reach.
func (g *Generator) nextX(x float32, gap, at float64) float32 {
	reach := g.MaxJump(gap, at)
	offset := (g.rng.Float32()*2 - 1) * reach
	return clampX(x + offset)
}

// stream fills a gap with droplets interpolated between two fruits,
// with tiny droplets between each pair of droplets.
func (g *Generator) stream(t0 float64, x0 float32, t1 float64, x1 float32) {
	n := g.cfg.DropletsPerStream
	if n <= 0 {
		return
	}
	tiny := g.cfg.TinyPerDroplet
	if tiny < 0 {
		tiny = 0
	}

	// n droplets and tiny droplets between every neighbouring pair of points
	steps := (n + 1) * (tiny + 1)
	for s := 1; s < steps; s++ {
		f := float64(s) / float64(steps)
		t := t0 + (t1-t0)*f
		x := x0 + (x1-x0)*float32(f)

		kind := objects.KindTinyDroplet
		if s%(tiny+1) == 0 {
			kind = objects.KindDroplet
		}
		g.add(kind, t, x)
	}
}

// bananaShower places bananas at random positions and returns the time after the shower.
func (g *Generator) bananaShower(t, beat float64) float64 {
	spacing := beat * bananaDivision
	for i := 0; i < g.cfg.BananaCount; i++ {
		t += spacing
		g.add(objects.KindBanana, t, g.rng.Float32()*objects.PlayfieldWidth)
	}
	return t + beat
}

func (g *Generator) add(kind objects.Kind, t float64, x float32) {
	h := objects.New(kind, t, x)
	ar := g.difficulty.ApproachRate(g.cfg.ApproachRate, 0, t)
	h.ApplyDefaults(ar, g.cfg.CircleSize)
	g.objs = append(g.objs, h)
}

func clampX(x float32) float32 {
	return float32(math.Max(0, math.Min(objects.PlayfieldWidth, float64(x))))
}
