package game

import "github.com/vovakirdan/space-survivor/internal/core"

// cellAspect scales vertical motion. Terminal cells are about twice as
// tall as they are wide.
const cellAspect = 0.5

// advance moves a body against its direction vector.
// Motion runs opposite the stored direction: heading 0 gives (0, 1) and
// moves the body up the screen.
func advance(b *Body, dx, dy, speed float64) {
	b.X -= dx * speed
	b.Y -= dy * speed * cellAspect
}

// wrap re-enters a body from the opposite edge once its box has fully left
// the playfield. Velocity is untouched.
func wrap(b *Body, w, h float64) {
	box := b.Box()
	if box.Left() > w {
		b.X = -b.W / 2 // right edge at 0
	}
	if box.Right() < 0 {
		b.X = w + b.W/2 // left edge at w
	}
	if box.Top() > h {
		b.Y = -b.H / 2 // bottom edge at 0
	}
	if box.Bottom() < 0 {
		b.Y = h + b.H/2 // top edge at h
	}
}

// offscreen reports whether a body's box lies fully outside the playfield.
func offscreen(b Body, w, h float64) bool {
	box := b.Box()
	return box.Left() > w || box.Right() < 0 || box.Top() > h || box.Bottom() < 0
}

// steer applies one tick of turning and throttle to the ship.
// Left turns add degrees, right turns subtract them.
func (s *Session) steer(left, right, boost bool) {
	sc := s.cfg.Spaceship
	ship := &s.ship

	if boost {
		ship.Speed += sc.Acceleration
	} else {
		ship.Speed -= sc.Deceleration
	}
	ship.Speed = core.ClampF(ship.Speed, 0, sc.MaxSpeed)

	if right {
		ship.Angle -= sc.TurnSpeed
	}
	if left {
		ship.Angle += sc.TurnSpeed
	}
	ship.Angle = core.WrapAngle(ship.Angle)
}

// moveSpaceship advances the ship along its current heading, then wraps it.
// A stationary ship does not move.
func (s *Session) moveSpaceship() {
	ship := &s.ship
	if ship.Speed > 0 {
		dx, dy := ship.Direction()
		advance(&ship.Body, dx, dy, ship.Speed)
	}
	wrap(&ship.Body, s.fieldW(), s.fieldH())
}

// moveAsteroids advances every asteroid and wraps it around the playfield.
func (s *Session) moveAsteroids() {
	w, h := s.fieldW(), s.fieldH()
	for i := range s.asteroids {
		a := &s.asteroids[i]
		advance(&a.Body, a.DX, a.DY, a.Speed)
		wrap(&a.Body, w, h)
	}
}

// moveBullets advances every bullet and drops the ones that left the screen.
func (s *Session) moveBullets() {
	w, h := s.fieldW(), s.fieldH()
	alive := s.bullets[:0]
	for _, b := range s.bullets {
		advance(&b.Body, b.DX, b.DY, b.Speed)
		if offscreen(b.Body, w, h) {
			continue
		}
		alive = append(alive, b)
	}
	s.bullets = alive
}
