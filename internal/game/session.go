package game

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/space-survivor/internal/config"
	"github.com/vovakirdan/space-survivor/internal/core"
	"github.com/vovakirdan/space-survivor/internal/storage"
)

// maxNameLen bounds the player name so it fits the name box.
const maxNameLen = 24

// Leaderboard persists finished rounds.
// storage.Store implements it; a nil Leaderboard disables persistence.
type Leaderboard interface {
	Record(name string, score int, difficulty config.Difficulty) error
	Query() ([]storage.Record, error)
}

// Session owns all state of one player's game: the current screen, the
// round counters and the entities on the playfield.
type Session struct {
	cfg   config.SurvivorConfig
	board Leaderboard
	rng   *rand.Rand

	// Screen size in cells, also the playfield size
	width  int
	height int

	// Menu state
	stage       Stage
	player      string
	difficulty  config.Difficulty
	nameFocused bool
	ranking     []storage.Record

	// Round state
	score    int
	lives    int
	timeLeft float64 // Seconds
	bonusIn  float64 // Seconds until the next bonus appears, while none is present

	// Entities
	ship      Spaceship
	asteroids []Asteroid
	bullets   []Bullet
	bonus     *Bonus

	events []Event
	err    error
}

// NewSession creates a session on the start screen.
// The RuntimeConfig provides the screen size and RNG seed.
func NewSession(cfg config.SurvivorConfig, rt core.RuntimeConfig, board Leaderboard) *Session {
	difficulty, err := config.ParseDifficulty(cfg.Round.DefaultLevel)
	if err != nil {
		difficulty = config.DifficultyNormal
	}

	s := &Session{
		cfg:        cfg,
		board:      board,
		rng:        rand.New(rand.NewSource(rt.Seed)),
		width:      rt.ScreenW,
		height:     rt.ScreenH,
		stage:      StageStart,
		player:     cfg.Round.DefaultPlayer,
		difficulty: difficulty,
		lives:      cfg.Round.StartLives,
		timeLeft:   cfg.Round.TimeSeconds,
	}
	s.ship = s.newSpaceship()
	return s
}

// Step advances the session by one tick of dt seconds.
// Menu screens react to input only; the round clock and bonus timer run
// only while a round is in progress.
func (s *Session) Step(in core.InputFrame, dt float64) StepResult {
	s.events = s.events[:0]

	switch s.stage {
	case StageRunning:
		s.stepRunning(in, dt)
	case StageRename:
		s.handleRename(in)
	default:
		s.handleMenu(in)
	}

	return StepResult{
		Stage:  s.stage,
		Events: append([]Event(nil), s.events...),
	}
}

// stepRunning runs one tick of the round: ship control and movement, then
// bonus pickup, ship crashes and bullet hits, then the rest of the field
// and the timers. A crash ends the tick.
func (s *Session) stepRunning(in core.InputFrame, dt float64) {
	if in.Has(core.ActionFire) {
		s.fire()
	}
	s.steer(in.Has(core.ActionTurnLeft), in.Has(core.ActionTurnRight), in.Has(core.ActionBoost))
	s.moveSpaceship()

	s.collectBonus()
	if s.shipHit() {
		s.crash()
		return
	}
	s.shootAsteroids()

	s.moveAsteroids()
	s.moveBullets()

	s.tickBonus(dt)
	s.tickClock(dt)
}

// fire launches a bullet from the ship along its current heading.
func (s *Session) fire() {
	dx, dy := s.ship.Direction()
	bc := s.cfg.Bullet
	s.bullets = append(s.bullets, Bullet{
		Body:  Body{X: s.ship.X, Y: s.ship.Y, W: bc.Width, H: bc.Height},
		DX:    dx,
		DY:    dy,
		Speed: bc.Speed,
	})
	s.emit(EventShoot)
}

// tickBonus counts down to the next bonus and places it when due.
func (s *Session) tickBonus(dt float64) {
	if s.bonus != nil {
		return
	}
	s.bonusIn -= dt
	if s.bonusIn <= 0 {
		s.spawnBonus()
	}
}

// tickClock counts the round down. When time runs out every remaining life
// is converted into points and the round ends.
func (s *Session) tickClock(dt float64) {
	s.timeLeft -= dt
	if s.timeLeft > 0 {
		return
	}
	s.timeLeft = 0
	s.score += s.lives * s.cfg.Round.TimeBonusPerLife
	s.finishRound()
}

// startRound begins a new round from scratch with the current difficulty.
func (s *Session) startRound() {
	s.score = 0
	s.lives = s.cfg.Round.StartLives
	s.timeLeft = s.cfg.Round.TimeSeconds
	s.bonus = nil
	s.scheduleBonus()
	s.respawn()
	s.stage = StageRunning
	s.emit(EventMusicGame)
}

// softReset rebuilds the field after a non-fatal crash.
// Score, lives, time and a bonus already on the field are kept.
func (s *Session) softReset() {
	s.respawn()
	if s.bonus == nil {
		s.scheduleBonus()
	}
}

// finishRound moves to the end screen and records the result.
func (s *Session) finishRound() {
	s.stage = StageEnd
	s.bullets = s.bullets[:0]
	s.emit(EventMusicMenu)
	if s.board == nil {
		return
	}
	if err := s.board.Record(s.player, s.score, s.difficulty); err != nil {
		s.err = err
	}
}

// loadRanking refreshes the high-score table shown on the scores screen.
func (s *Session) loadRanking() {
	s.ranking = nil
	if s.board == nil {
		return
	}
	recs, err := s.board.Query()
	if err != nil {
		s.err = err
		return
	}
	s.ranking = recs
}

// respawn places a fresh ship and the starting asteroid field, and clears bullets.
func (s *Session) respawn() {
	s.ship = s.newSpaceship()
	s.bullets = s.bullets[:0]
	s.asteroids = s.asteroids[:0]

	ac := s.cfg.Asteroids
	for i := 0; i < ac.Large.Count; i++ {
		s.asteroids = append(s.asteroids, s.newAsteroid(AsteroidLarge))
	}
	for i := 0; i < ac.Small.Count; i++ {
		s.asteroids = append(s.asteroids, s.newAsteroid(AsteroidSmall))
	}
}

// newSpaceship creates a stationary ship at the centre, facing up.
func (s *Session) newSpaceship() Spaceship {
	sc := s.cfg.Spaceship
	return Spaceship{
		Body: Body{X: s.fieldW() / 2, Y: s.fieldH() / 2, W: sc.Width, H: sc.Height},
	}
}

// newAsteroid creates an asteroid of the given kind in a random corner,
// heading in a random direction at a speed drawn from the difficulty tier.
func (s *Session) newAsteroid(kind AsteroidKind) Asteroid {
	tier := s.cfg.Tier(s.difficulty)
	shape, speed := s.cfg.Asteroids.Large, tier.LargeSpeed
	if kind == AsteroidSmall {
		shape, speed = s.cfg.Asteroids.Small, tier.SmallSpeed
	}

	x, y := 0.0, 0.0
	if s.rng.Intn(2) == 1 {
		x = s.fieldW()
	}
	if s.rng.Intn(2) == 1 {
		y = s.fieldH()
	}
	dx, dy := core.Direction(s.rng.Float64() * 360)

	return Asteroid{
		Body:  Body{X: x, Y: y, W: shape.Width, H: shape.Height},
		Kind:  kind,
		DX:    dx,
		DY:    dy,
		Speed: speed.Min + s.rng.Float64()*(speed.Max-speed.Min),
		Value: shape.Score,
	}
}

// scheduleBonus draws the next bonus delay, in whole seconds, from the
// difficulty tier's inclusive interval.
func (s *Session) scheduleBonus() {
	iv := s.cfg.Tier(s.difficulty).BonusInterval
	s.bonusIn = float64(iv.Min + s.rng.Intn(iv.Max-iv.Min+1))
}

// spawnBonus places the bonus star in a random cell below the HUD row.
func (s *Session) spawnBonus() {
	bc := s.cfg.Bonus
	rows := max(s.height-1, 1)
	s.bonus = &Bonus{Body: Body{
		X: float64(s.rng.Intn(max(s.width, 1))) + 0.5,
		Y: float64(1+s.rng.Intn(rows)) + 0.5,
		W: bc.Width,
		H: bc.Height,
	}}
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) fieldW() float64 { return float64(s.width) }
func (s *Session) fieldH() float64 { return float64(s.height) }

// Resize updates the playfield to the new screen size.
// Entities left outside the new bounds wrap back in on their next move.
func (s *Session) Resize(width, height int) {
	s.width = width
	s.height = height
}

// SetPlayerName sets the name recorded with the next results.
func (s *Session) SetPlayerName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if r := []rune(name); len(r) > maxNameLen {
		name = string(r[:maxNameLen])
	}
	s.player = name
}

// TakeError returns the last persistence error and clears it.
func (s *Session) TakeError() error {
	err := s.err
	s.err = nil
	return err
}

// Stage returns the current screen.
func (s *Session) Stage() Stage { return s.stage }

// PlayerName returns the current player name.
func (s *Session) PlayerName() string { return s.player }

// Difficulty returns the selected difficulty.
func (s *Session) Difficulty() config.Difficulty { return s.difficulty }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// TimeLeft returns the remaining round time in seconds.
func (s *Session) TimeLeft() float64 { return s.timeLeft }

// Spaceship returns a copy of the ship.
func (s *Session) Spaceship() Spaceship { return s.ship }

// Asteroids returns the live asteroids. The slice must not be modified.
func (s *Session) Asteroids() []Asteroid { return s.asteroids }

// Bullets returns the live bullets. The slice must not be modified.
func (s *Session) Bullets() []Bullet { return s.bullets }

// Bonus returns the bonus star, if one is on the field.
func (s *Session) Bonus() (Bonus, bool) {
	if s.bonus == nil {
		return Bonus{}, false
	}
	return *s.bonus, true
}
