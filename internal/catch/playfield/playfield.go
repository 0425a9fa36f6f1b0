// Package playfield manages the lifetime of catchable objects on screen.
//
// It is the scene side of the drawable protocol: objects are taken from a pool
// when their lifetime starts, ticked once per update (judgement happens there),
// and asked at expiry whether they stay with the catcher or return to the pool.
package playfield

import (
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/catch/drawable"
	"github.com/vovakirdan/tui-catch/internal/catch/objects"
)

// ResultEvent is emitted once per judged object.
type ResultEvent struct {
	HitObject *objects.HitObject
	Result    objects.JudgementResult
	Pan       float32 // Stereo position in [0,1] for the hit sample
	Time      float64
}

// Option configures a Playfield.
type Option func(*Playfield)

// WithLogger sets the logger used for debug traces.
func WithLogger(l *log.Logger) Option {
	return func(p *Playfield) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithHitFadeDuration sets the fade length for caught objects.
func WithHitFadeDuration(ms float64) Option {
	return func(p *Playfield) {
		p.hitFadeDuration = ms
	}
}

// WithResultListener registers a callback for judged objects.
func WithResultListener(fn func(ResultEvent)) Option {
	return func(p *Playfield) {
		p.listener = fn
	}
}

// Playfield owns pending objects, alive drawables, and the drawable pool.
type Playfield struct {
	Catcher *Catcher

	pending  []*objects.HitObject
	next     int
	alive    []*drawable.DrawableHitObject
	retained map[*drawable.DrawableHitObject]struct{}
	pool     []*drawable.DrawableHitObject
	created  int
	judged   int
	time     float64

	hitFadeDuration float64
	listener        func(ResultEvent)
	logger          *log.Logger
}

// New creates a playfield around the given catcher.
func New(catcher *Catcher, opts ...Option) *Playfield {
	p := &Playfield{
		Catcher:         catcher,
		retained:        make(map[*drawable.DrawableHitObject]struct{}),
		hitFadeDuration: drawable.DefaultHitFadeDuration,
		logger:          log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}

	catcher.release = p.releaseFromPlate
	return p
}

// Add schedules objects. They are ordered by lifetime start.
func (p *Playfield) Add(objs ...*objects.HitObject) {
	p.pending = append(p.pending, objs...)

	rest := p.pending[p.next:]
	sort.SliceStable(rest, func(i, j int) bool {
		return lifetimeStart(rest[i]) < lifetimeStart(rest[j])
	})
}

func lifetimeStart(h *objects.HitObject) float64 {
	return h.StartTime() - h.TimePreempt
}

// Update advances the scene to now: new objects enter, every alive object is
// ticked, and expired objects are retained or recycled.
func (p *Playfield) Update(now float64) {
	p.time = now

	for p.next < len(p.pending) && lifetimeStart(p.pending[p.next]) <= now {
		d := p.acquire()
		d.Apply(p.pending[p.next])
		p.alive = append(p.alive, d)
		p.next++
	}

	// Model changes are pushed through bindings synchronously, so positions are
	// already current here.
	for i := 0; i < len(p.alive); i++ {
		p.alive[i].Update(now)
	}

	kept := p.alive[:0]
	for _, d := range p.alive {
		if now >= d.LifetimeEnd() {
			p.expire(d)
			continue
		}
		kept = append(kept, d)
	}
	for i := len(kept); i < len(p.alive); i++ {
		p.alive[i] = nil
	}
	p.alive = kept
}

// expire hands the object to the plate or returns it to the pool.
func (p *Playfield) expire(d *drawable.DrawableHitObject) {
	if d.ShouldRemoveOnExpiry() {
		p.retained[d] = struct{}{}
		p.logger.Debug("retained on plate", "object", d.HitObject())
		return
	}

	p.logger.Debug("purged", "object", d.HitObject())
	p.recycle(d)
}

// releaseFromPlate recycles a released object that already expired.
// Objects still alive are purged normally once they expire.
func (p *Playfield) releaseFromPlate(d *drawable.DrawableHitObject) {
	if _, ok := p.retained[d]; !ok {
		return
	}
	delete(p.retained, d)
	p.logger.Debug("released from plate", "object", d.HitObject())
	p.recycle(d)
}

func (p *Playfield) acquire() *drawable.DrawableHitObject {
	if n := len(p.pool); n > 0 {
		d := p.pool[n-1]
		p.pool = p.pool[:n-1]
		return d
	}

	d := drawable.New()
	d.CheckPosition = p.Catcher.CanCatch
	d.HitFadeDuration = p.hitFadeDuration
	d.OnNewResult = p.onNewResult
	p.created++
	return d
}

func (p *Playfield) recycle(d *drawable.DrawableHitObject) {
	d.Free()
	p.pool = append(p.pool, d)
}

func (p *Playfield) onNewResult(d *drawable.DrawableHitObject, result objects.JudgementResult) {
	p.judged++
	p.logger.Debug("judged",
		"object", d.HitObject(),
		"result", result.Type,
		"offset", result.TimeOffset,
		"catcher", p.Catcher.X,
	)

	p.Catcher.OnNewResult(d, result)

	if p.listener != nil {
		p.listener(ResultEvent{
			HitObject: d.HitObject(),
			Result:    result,
			Pan:       d.SamplePlaybackPosition(),
			Time:      result.TimeAbsolute,
		})
	}
}

// Alive returns drawables currently within their lifetime, in entry order.
func (p *Playfield) Alive() []*drawable.DrawableHitObject {
	return p.alive
}

// Plate returns the objects the catcher holds, oldest first.
func (p *Playfield) Plate() []*drawable.DrawableHitObject {
	return p.Catcher.Plate()
}

// Retained returns how many expired objects are held by the plate.
func (p *Playfield) Retained() int {
	return len(p.retained)
}

// Judged returns how many objects have received a result.
func (p *Playfield) Judged() int {
	return p.judged
}

// Total returns how many objects were scheduled.
func (p *Playfield) Total() int {
	return len(p.pending)
}

// Remaining returns how many scheduled objects are not yet judged.
func (p *Playfield) Remaining() int {
	return len(p.pending) - p.judged
}

// Finished reports whether every object has entered and left the scene.
func (p *Playfield) Finished() bool {
	return p.next >= len(p.pending) && len(p.alive) == 0
}

// PoolSize returns the number of idle drawables ready for reuse.
func (p *Playfield) PoolSize() int {
	return len(p.pool)
}

// Created returns how many drawables were ever allocated.
func (p *Playfield) Created() int {
	return p.created
}

// Time returns the time of the last update.
func (p *Playfield) Time() float64 {
	return p.time
}

// NextPending returns the earliest object not yet judged, or nil.
func (p *Playfield) NextPending() *objects.HitObject {
	return p.NextPendingWhere(nil)
}

// NextPendingWhere returns the earliest unjudged object accepted by match.
// A nil match accepts every object.
func (p *Playfield) NextPendingWhere(match func(*objects.HitObject) bool) *objects.HitObject {
	var best *objects.HitObject
	consider := func(h *objects.HitObject) {
		if match != nil && !match(h) {
			return
		}
		if best == nil || h.StartTime() < best.StartTime() {
			best = h
		}
	}

	for _, d := range p.alive {
		if !d.Judged() {
			consider(d.HitObject())
		}
	}
	for _, h := range p.pending[p.next:] {
		consider(h)
	}
	return best
}
