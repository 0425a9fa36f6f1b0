package catch

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/vovakirdan/tui-catch/internal/catch/objects"
	"github.com/vovakirdan/tui-catch/internal/catch/playfield"
	"github.com/vovakirdan/tui-catch/internal/config"
)

// comboCap bounds the combo bonus at double points.
const comboCap = 100

// Tally accumulates score, combo, health and result counts from judgements.
type Tally struct {
	Score    int
	Combo    int
	MaxCombo int
	Health   float64

	counts map[objects.HitResult]int
	cfg    config.CatchScoring
	hash   hash.Hash
}

// NewTally creates a tally at full health.
func NewTally(cfg config.CatchScoring) *Tally {
	return &Tally{
		Health: cfg.MaxHealth,
		counts: make(map[objects.HitResult]int),
		cfg:    cfg,
		hash:   sha256.New(),
	}
}

// Apply records one judged object.
func (t *Tally) Apply(e playfield.ResultEvent) {
	r := e.Result.Type
	t.counts[r]++
	fmt.Fprintf(t.hash, "%d:%d:%.3f;", e.HitObject.IndexInBeatmap, r, e.Result.TimeOffset)

	if !r.IsHit() {
		if r.AffectsCombo() {
			t.Combo = 0
			t.Health = max(0, t.Health-t.cfg.MissPenalty)
		}
		return
	}

	if r.AffectsCombo() {
		t.Combo++
		t.MaxCombo = max(t.MaxCombo, t.Combo)
		t.Health = min(t.cfg.MaxHealth, t.Health+t.cfg.HitRecovery)
	}

	points := t.points(e.HitObject.Kind)
	t.Score += points + points*min(t.Combo, comboCap)/comboCap
}

func (t *Tally) points(k objects.Kind) int {
	switch k {
	case objects.KindDroplet:
		return t.cfg.DropletPoints
	case objects.KindTinyDroplet:
		return t.cfg.TinyPoints
	case objects.KindBanana:
		return t.cfg.BananaPoints
	default:
		return t.cfg.FruitPoints
	}
}

// Count returns how many objects received result r.
func (t *Tally) Count(r objects.HitResult) int {
	return t.counts[r]
}

// Accuracy is the share of combo and tick objects caught, in [0, 1].
// Bananas are bonus and do not count.
func (t *Tally) Accuracy() float64 {
	caught := t.counts[objects.HitResultGreat] + t.counts[objects.HitResultLargeTickHit] + t.counts[objects.HitResultSmallTickHit]
	total := caught + t.counts[objects.HitResultMiss] + t.counts[objects.HitResultLargeTickMiss] + t.counts[objects.HitResultSmallTickMiss]
	if total == 0 {
		return 1
	}
	return float64(caught) / float64(total)
}

// Digest returns a hex digest of every judgement applied so far.
func (t *Tally) Digest() string {
	return hex.EncodeToString(t.hash.Sum(nil))[:16]
}

// Summary is a snapshot of a finished or running game. Counts are per result:
// fruits are Great/Miss, droplets large ticks, tiny droplets small ticks and
// bananas LargeBonus/IgnoreMiss.
type Summary struct {
	Score         int
	MaxCombo      int
	Accuracy      float64
	Fruits        int
	FruitMisses   int
	Droplets      int
	DropletMisses int
	TinyDroplets  int
	TinyMisses    int
	Bananas       int
	BananasMissed int
	Digest        string
}

// Summary snapshots the tally.
func (t *Tally) Summary() Summary {
	return Summary{
		Score:         t.Score,
		MaxCombo:      t.MaxCombo,
		Accuracy:      t.Accuracy(),
		Fruits:        t.counts[objects.HitResultGreat],
		FruitMisses:   t.counts[objects.HitResultMiss],
		Droplets:      t.counts[objects.HitResultLargeTickHit],
		DropletMisses: t.counts[objects.HitResultLargeTickMiss],
		TinyDroplets:  t.counts[objects.HitResultSmallTickHit],
		TinyMisses:    t.counts[objects.HitResultSmallTickMiss],
		Bananas:       t.counts[objects.HitResultLargeBonus],
		BananasMissed: t.counts[objects.HitResultIgnoreMiss],
		Digest:        t.Digest(),
	}
}

// Judged returns the total number of judged objects.
func (s Summary) Judged() int {
	return s.Fruits + s.FruitMisses + s.Droplets + s.DropletMisses +
		s.TinyDroplets + s.TinyMisses + s.Bananas + s.BananasMissed
}
