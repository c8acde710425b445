package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/space-survivor/internal/config"
	"github.com/vovakirdan/space-survivor/internal/core"
	"github.com/vovakirdan/space-survivor/internal/storage"
)

const tick = 1.0 / 60

// fakeBoard is an in-memory Leaderboard.
type fakeBoard struct {
	recs []storage.Record
	err  error
}

func (f *fakeBoard) Record(name string, score int, d config.Difficulty) error {
	if f.err != nil {
		return f.err
	}
	f.recs = append(f.recs, storage.Record{PlayerName: name, PlayerScore: score, Difficulty: d})
	return nil
}

func (f *fakeBoard) Query() ([]storage.Record, error) {
	return f.recs, f.err
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func newTestSession(board Leaderboard) *Session {
	return NewSession(config.DefaultSurvivorConfig(), testRuntime(), board)
}

// runningSession returns a session in a fresh round with an empty field.
func runningSession(board Leaderboard) *Session {
	s := newTestSession(board)
	s.startRound()
	s.asteroids = nil
	return s
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession(nil)

	if s.Stage() != StageStart {
		t.Errorf("initial stage = %v, expected start", s.Stage())
	}
	if s.PlayerName() != "New Player" {
		t.Errorf("default name = %q", s.PlayerName())
	}
	if s.Difficulty() != config.DifficultyNormal {
		t.Errorf("default difficulty = %v", s.Difficulty())
	}
	if s.Lives() != 3 || s.Score() != 0 || s.TimeLeft() != 60 {
		t.Errorf("unexpected counters: lives %d score %d time %v", s.Lives(), s.Score(), s.TimeLeft())
	}
}

func TestStartRoundFullReset(t *testing.T) {
	s := runningSession(nil)
	s.score = 99
	s.lives = 1
	s.timeLeft = 3
	s.bonus = &Bonus{Body: Body{X: 1, Y: 1, W: 1, H: 1}}

	s.startRound()

	if s.Score() != 0 || s.Lives() != 3 || s.TimeLeft() != 60 {
		t.Errorf("full reset should restore counters, got score %d lives %d time %v", s.Score(), s.Lives(), s.TimeLeft())
	}
	if _, ok := s.Bonus(); ok {
		t.Error("full reset should clear the bonus")
	}
	if len(s.Asteroids()) != 8 {
		t.Errorf("expected 8 asteroids, got %d", len(s.Asteroids()))
	}
	ship := s.Spaceship()
	if ship.X != 40 || ship.Y != 12 || ship.Speed != 0 || ship.Angle != 0 {
		t.Errorf("ship should be stationary at the centre, got %+v", ship)
	}
}

func TestTimeExpiryAwardsLifeBonus(t *testing.T) {
	board := &fakeBoard{}
	s := runningSession(board)
	s.lives = 2
	s.score = 5
	s.timeLeft = tick

	result := s.Step(core.NewInputFrame(), tick)

	if result.Stage != StageEnd {
		t.Fatalf("stage = %v, expected end", result.Stage)
	}
	if s.Score() != 11 {
		t.Errorf("score = %d, expected 5 + 2*3 = 11", s.Score())
	}
	if len(board.recs) != 1 || board.recs[0].PlayerScore != 11 {
		t.Errorf("expected one persisted record with score 11, got %+v", board.recs)
	}
	if !result.Has(EventMusicMenu) {
		t.Error("round end should switch to menu music")
	}
}

func TestCountdownOnlyWhileRunning(t *testing.T) {
	s := newTestSession(nil)

	for i := 0; i < 120; i++ {
		s.Step(core.NewInputFrame(), tick)
	}
	if s.TimeLeft() != 60 {
		t.Errorf("time should not run on the start screen, got %v", s.TimeLeft())
	}

	s.startRound()
	s.asteroids = nil
	s.Step(core.NewInputFrame(), 0.5)
	if s.TimeLeft() != 59.5 {
		t.Errorf("time left = %v, expected 59.5", s.TimeLeft())
	}
}

func TestBonusAppearsWhenTimerExpires(t *testing.T) {
	s := runningSession(nil)
	s.bonusIn = 0.01

	s.Step(core.NewInputFrame(), tick)

	b, ok := s.Bonus()
	if !ok {
		t.Fatal("bonus should appear once its timer expires")
	}
	if b.X < 0 || b.X > 80 || b.Y < 1 || b.Y > 24 {
		t.Errorf("bonus placed outside the field: %+v", b)
	}

	// The timer is idle while a bonus is on the field
	before := s.bonusIn
	s.tickBonus(tick)
	if s.bonusIn != before {
		t.Errorf("bonus timer advanced while a bonus exists: %v -> %v", before, s.bonusIn)
	}
}

func TestBonusTimerPausedOutsideRound(t *testing.T) {
	s := newTestSession(nil)
	s.bonusIn = 0.01

	s.Step(core.NewInputFrame(), 1)

	if _, ok := s.Bonus(); ok {
		t.Error("bonus should not spawn on a menu screen")
	}
}

func TestHardDifficultyTier(t *testing.T) {
	s := newTestSession(nil)
	s.Step(input(core.ActionNewGame), tick)
	s.Step(input(core.ActionHard), tick)

	if s.Difficulty() != config.DifficultyHard {
		t.Fatalf("difficulty = %v, expected hard", s.Difficulty())
	}
	checkBonusInterval(t, s.bonusIn, 25, 30)

	s.Step(input(core.ActionConfirm), tick)
	if s.Stage() != StageRunning {
		t.Fatalf("stage = %v, expected running", s.Stage())
	}
	checkBonusInterval(t, s.bonusIn, 25, 30)

	for i := 0; i < 50; i++ {
		checkAsteroidSpeeds(t, s)
		s.destroyAsteroid(i % len(s.asteroids))
	}
}

func checkBonusInterval(t *testing.T, got float64, lo, hi int) {
	t.Helper()
	if got != float64(int(got)) || got < float64(lo) || got > float64(hi) {
		t.Errorf("bonus interval %v not a whole number in [%d, %d]", got, lo, hi)
	}
}

func checkAsteroidSpeeds(t *testing.T, s *Session) {
	t.Helper()
	for _, a := range s.Asteroids() {
		lo, hi := 0.2, 0.3
		if a.Kind == AsteroidSmall {
			lo, hi = 0.4, 0.5
		}
		if a.Speed < lo || a.Speed > hi {
			t.Errorf("%s asteroid speed %v outside hard range [%v, %v]", a.Kind, a.Speed, lo, hi)
		}
	}
}

func TestAsteroidsSpawnInCorners(t *testing.T) {
	s := newTestSession(nil)
	s.startRound()

	large, small := 0, 0
	for _, a := range s.Asteroids() {
		if (a.X != 0 && a.X != 80) || (a.Y != 0 && a.Y != 24) {
			t.Errorf("asteroid not in a corner: (%v, %v)", a.X, a.Y)
		}
		if l := a.DX*a.DX + a.DY*a.DY; l < 0.999 || l > 1.001 {
			t.Errorf("asteroid direction not a unit vector: (%v, %v)", a.DX, a.DY)
		}
		if a.Kind == AsteroidLarge {
			large++
			if a.Value != 3 {
				t.Errorf("large asteroid value = %d, expected 3", a.Value)
			}
		} else {
			small++
			if a.Value != 1 {
				t.Errorf("small asteroid value = %d, expected 1", a.Value)
			}
		}
	}
	if large != 5 || small != 3 {
		t.Errorf("expected 5 large and 3 small asteroids, got %d and %d", large, small)
	}
}

func TestFireEmitsShootEvent(t *testing.T) {
	s := runningSession(nil)
	s.ship.Angle = 90

	result := s.Step(input(core.ActionFire), tick)

	if !result.Has(EventShoot) {
		t.Error("firing should emit a shoot event")
	}
	if len(s.Bullets()) != 1 {
		t.Fatalf("expected one bullet, got %d", len(s.Bullets()))
	}
	b := s.Bullets()[0]
	if b.DX < 0.999 || b.Speed != 0.4 {
		t.Errorf("bullet should copy the ship heading, got %+v", b)
	}
	if b.X >= 40 {
		t.Errorf("bullet heading 90 should move left, x = %v", b.X)
	}
}

func TestFireIgnoredOutsideRound(t *testing.T) {
	s := newTestSession(nil)
	result := s.Step(input(core.ActionFire), tick)
	if result.Has(EventShoot) || len(s.Bullets()) != 0 {
		t.Error("fire should do nothing on the start screen")
	}
}

func TestInvariantsOverLongRound(t *testing.T) {
	s := newTestSession(nil)
	s.difficulty = config.DifficultyEasy
	s.startRound()

	lastScore := 0
	for i := 0; i < 3000 && s.Stage() == StageRunning; i++ {
		in := core.NewInputFrame()
		if i%7 == 0 {
			in.Set(core.ActionFire)
		}
		if i%200 < 60 {
			in.Set(core.ActionBoost)
		}
		if i%90 < 30 {
			in.Set(core.ActionTurnLeft)
		}
		s.Step(in, tick)

		if s.Stage() != StageRunning {
			break
		}
		if n := len(s.Asteroids()); n != 8 {
			t.Fatalf("tick %d: asteroid count %d, expected 8", i, n)
		}
		if s.Lives() < 0 || s.Lives() > 5 {
			t.Fatalf("tick %d: lives %d out of range", i, s.Lives())
		}
		if s.Score() < lastScore {
			t.Fatalf("tick %d: score decreased from %d to %d", i, lastScore, s.Score())
		}
		lastScore = s.Score()
		if sp := s.Spaceship().Speed; sp < 0 || sp > 0.3 {
			t.Fatalf("tick %d: ship speed %v out of range", i, sp)
		}
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() (int, Spaceship, []Asteroid) {
		s := newTestSession(nil)
		s.startRound()
		for i := 0; i < 300; i++ {
			in := core.NewInputFrame()
			if i%10 == 0 {
				in.Set(core.ActionFire)
			}
			in.Set(core.ActionTurnRight)
			s.Step(in, tick)
		}
		return s.Score(), s.Spaceship(), append([]Asteroid(nil), s.Asteroids()...)
	}

	score1, ship1, ast1 := run()
	score2, ship2, ast2 := run()
	if score1 != score2 || ship1 != ship2 || len(ast1) != len(ast2) {
		t.Fatal("same seed and input should give the same result")
	}
	for i := range ast1 {
		if ast1[i] != ast2[i] {
			t.Fatalf("asteroid %d differs between runs", i)
		}
	}
}

func TestTakeErrorSurfacesPersistenceFailure(t *testing.T) {
	failure := errors.New("storage: disk full")
	s := runningSession(&fakeBoard{err: failure})
	s.timeLeft = tick

	s.Step(core.NewInputFrame(), tick)

	if s.Stage() != StageEnd {
		t.Fatalf("round should still end, stage = %v", s.Stage())
	}
	if err := s.TakeError(); !errors.Is(err, failure) {
		t.Errorf("TakeError() = %v, expected %v", err, failure)
	}
	if err := s.TakeError(); err != nil {
		t.Errorf("second TakeError() = %v, expected nil", err)
	}
}

func TestSetPlayerName(t *testing.T) {
	s := newTestSession(nil)

	s.SetPlayerName("  alice ")
	if s.PlayerName() != "alice" {
		t.Errorf("name = %q, expected alice", s.PlayerName())
	}

	s.SetPlayerName("")
	if s.PlayerName() != "alice" {
		t.Error("empty names should be ignored")
	}

	s.SetPlayerName("abcdefghijklmnopqrstuvwxyz0123")
	if n := len([]rune(s.PlayerName())); n != maxNameLen {
		t.Errorf("long names should be cut to %d runes, got %d", maxNameLen, n)
	}
}

func TestResizeMovesCentre(t *testing.T) {
	s := newTestSession(nil)
	s.Resize(100, 30)
	s.startRound()

	if ship := s.Spaceship(); ship.X != 50 || ship.Y != 15 {
		t.Errorf("ship should spawn at the new centre, got (%v, %v)", ship.X, ship.Y)
	}
}
