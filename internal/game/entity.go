// Package game implements Space Survivor: a spaceship flying around a
// wrapping playfield, shooting asteroids and collecting bonus stars
// against the clock.
//
// The package is pure game logic. It reads abstract input frames, advances
// a Session by a fixed tick and draws into a core.Screen. It has no
// knowledge of Bubble Tea, audio devices or the database.
package game

import "github.com/vovakirdan/space-survivor/internal/core"

// Visual characters for rendering
const (
	BulletChar = '•'
	BonusChar  = '★'
	HeartChar  = '♥'
)

// shipGlyphs maps the heading, in 45 degree sectors starting at 0 (up) and
// turning counter-clockwise, to an arrow.
var shipGlyphs = [8]rune{'▲', '◤', '◀', '◣', '▼', '◢', '▶', '◥'}

// Asteroid silhouettes, one string per row.
var (
	largeAsteroidGlyph = []string{"/##\\", "\\##/"}
	smallAsteroidGlyph = []string{"()"}
)

// Body is the position and size shared by every entity.
// X and Y are the centre of the entity in playfield cells.
type Body struct {
	X, Y float64
	W, H float64
}

// Box returns the collision box of the body.
func (b Body) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Spaceship is the player-controlled ship.
type Spaceship struct {
	Body
	Angle float64 // Heading in degrees, [0, 360)
	Speed float64 // Always within [0, max_speed]
}

// Direction returns the unit heading vector derived from the angle.
func (s Spaceship) Direction() (float64, float64) {
	return core.Direction(s.Angle)
}

// Glyph returns the arrow that best matches the current heading.
func (s Spaceship) Glyph() rune {
	sector := int((core.WrapAngle(s.Angle)+22.5)/45) % 8
	return shipGlyphs[sector]
}

// AsteroidKind distinguishes the two asteroid size classes.
type AsteroidKind int

const (
	AsteroidLarge AsteroidKind = iota
	AsteroidSmall
)

// String returns the kind name.
func (k AsteroidKind) String() string {
	if k == AsteroidSmall {
		return "small"
	}
	return "large"
}

// Asteroid drifts in a fixed direction at a fixed speed.
type Asteroid struct {
	Body
	Kind   AsteroidKind
	DX, DY float64 // Unit direction, fixed at creation
	Speed  float64
	Value  int // Points awarded when destroyed
}

// Glyph returns the rows of the asteroid silhouette.
func (a Asteroid) Glyph() []string {
	if a.Kind == AsteroidSmall {
		return smallAsteroidGlyph
	}
	return largeAsteroidGlyph
}

// Bullet travels in the direction the ship faced when it was fired.
type Bullet struct {
	Body
	DX, DY float64
	Speed  float64
}

// Bonus is the collectible star. At most one exists at a time.
type Bonus struct {
	Body
}
