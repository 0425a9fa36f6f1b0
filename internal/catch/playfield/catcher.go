package playfield

import (
	"math"

	"github.com/vovakirdan/tui-catch/internal/catch/drawable"
	"github.com/vovakirdan/tui-catch/internal/catch/objects"
)

// Catcher geometry and movement.
const (
	CatcherBaseSize   = 106.75 // Width of the catcher at scale 1
	AllowedCatchRange = 0.8    // Fraction of the catcher width that catches
	BaseWalkSpeed     = 0.5    // Playfield units per ms
	BaseDashSpeed     = 1.0    // Playfield units per ms
	DefaultPlateSize  = 8      // Objects kept on the plate before the oldest is released
)

// CalculateCatchWidth returns the catching width for a catcher scale.
func CalculateCatchWidth(scale float32) float32 {
	return CatcherBaseSize * float32(math.Abs(float64(scale))) * AllowedCatchRange
}

// Catcher is the player-controlled plate at the bottom of the playfield.
// It answers the position check for falling objects and owns caught objects
// until it releases them.
type Catcher struct {
	X       float32
	Scale   float32
	Dashing bool

	// WalkSpeed and DashSpeed are in playfield units per ms.
	WalkSpeed float32
	DashSpeed float32

	// MaxPlateSize bounds how many caught objects rest on the plate.
	MaxPlateSize int

	plate   []*drawable.DrawableHitObject
	release func(d *drawable.DrawableHitObject)
}

// NewCatcher creates a catcher centered on the playfield.
func NewCatcher(scale float32) *Catcher {
	return &Catcher{
		X:            objects.PlayfieldWidth / 2,
		Scale:        scale,
		WalkSpeed:    BaseWalkSpeed,
		DashSpeed:    BaseDashSpeed,
		MaxPlateSize: DefaultPlateSize,
	}
}

// CatchWidth returns the current catching width.
func (c *Catcher) CatchWidth() float32 {
	return CalculateCatchWidth(c.Scale)
}

// CanCatch reports whether the object lies within the catching range.
// It is injected into drawables as their position check.
func (c *Catcher) CanCatch(h *objects.HitObject) bool {
	half := c.CatchWidth() / 2
	x := h.X()
	return x >= c.X-half && x <= c.X+half
}

// speed returns the movement speed for the current dash state.
func (c *Catcher) speed() float32 {
	if c.Dashing {
		return c.DashSpeed
	}
	return c.WalkSpeed
}

// Move shifts the catcher by direction (-1, 0, 1) for elapsed ms.
func (c *Catcher) Move(direction int, elapsed float64) {
	if direction == 0 {
		return
	}
	c.setX(c.X + float32(direction)*c.speed()*float32(elapsed))
}

// MoveTowards moves the catcher at most one tick's distance towards target.
// Returns the direction moved.
func (c *Catcher) MoveTowards(target float32, elapsed float64) int {
	step := c.speed() * float32(elapsed)
	delta := target - c.X
	switch {
	case delta > step:
		c.setX(c.X + step)
		return 1
	case delta < -step:
		c.setX(c.X - step)
		return -1
	default:
		c.setX(target)
		return 0
	}
}

func (c *Catcher) setX(x float32) {
	c.X = float32(math.Max(0, math.Min(objects.PlayfieldWidth, float64(x))))
}

// OnNewResult reacts to a judged object. Caught fruits and droplets go on the
// plate; a combo-breaking miss drops everything on it.
func (c *Catcher) OnNewResult(d *drawable.DrawableHitObject, result objects.JudgementResult) {
	h := d.HitObject()
	if h == nil {
		return
	}

	if result.Type.IsHit() {
		if h.Kind == objects.KindFruit || h.Kind == objects.KindDroplet {
			c.placeOnPlate(d)
		}
		return
	}

	if result.Type.AffectsCombo() {
		c.Drop()
	}
}

func (c *Catcher) placeOnPlate(d *drawable.DrawableHitObject) {
	d.IsOnPlate = true
	c.plate = append(c.plate, d)

	for c.MaxPlateSize > 0 && len(c.plate) > c.MaxPlateSize {
		oldest := c.plate[0]
		c.plate = c.plate[1:]
		c.releaseOne(oldest)
	}
}

// Drop releases every object on the plate.
func (c *Catcher) Drop() {
	plate := c.plate
	c.plate = nil
	for _, d := range plate {
		c.releaseOne(d)
	}
}

func (c *Catcher) releaseOne(d *drawable.DrawableHitObject) {
	d.IsOnPlate = false
	if c.release != nil {
		c.release(d)
	}
}

// Plate returns the objects resting on the plate, oldest first.
func (c *Catcher) Plate() []*drawable.DrawableHitObject {
	return c.plate
}
