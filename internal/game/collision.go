package game

// collectBonus consumes the bonus if the ship touches it.
// A missing life is restored; with full lives the pilot gets points instead.
func (s *Session) collectBonus() bool {
	if s.bonus == nil || !s.ship.Box().Intersects(s.bonus.Box()) {
		return false
	}

	s.bonus = nil
	if s.lives < s.cfg.Round.MaxLives {
		s.lives++
	} else {
		s.score += s.cfg.Bonus.Score
	}
	s.scheduleBonus()
	return true
}

// shipHit reports whether the ship overlaps any asteroid.
func (s *Session) shipHit() bool {
	return s.firstAsteroidHit(s.ship.Body) >= 0
}

// crash costs the pilot a life. The last life ends the round; otherwise
// the field is reset around a fresh ship.
func (s *Session) crash() {
	s.emit(EventExplosion)
	s.lives--
	if s.lives <= 0 {
		s.lives = 0
		s.finishRound()
		return
	}
	s.softReset()
}

// shootAsteroids resolves bullet hits. Each bullet destroys at most the
// first asteroid it overlaps and is consumed by the hit.
func (s *Session) shootAsteroids() {
	remaining := s.bullets[:0]
	for _, b := range s.bullets {
		idx := s.firstAsteroidHit(b.Body)
		if idx < 0 {
			remaining = append(remaining, b)
			continue
		}
		s.destroyAsteroid(idx)
	}
	s.bullets = remaining
}

// destroyAsteroid scores the asteroid at idx and replaces it with a fresh
// one of the same kind, so the population never shrinks.
func (s *Session) destroyAsteroid(idx int) {
	a := s.asteroids[idx]
	s.score += a.Value
	s.asteroids[idx] = s.newAsteroid(a.Kind)
}

// firstAsteroidHit returns the index of the first asteroid overlapping b, or -1.
func (s *Session) firstAsteroidHit(b Body) int {
	box := b.Box()
	for i, a := range s.asteroids {
		if box.Intersects(a.Box()) {
			return i
		}
	}
	return -1
}
