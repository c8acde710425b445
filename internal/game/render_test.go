package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/space-survivor/internal/config"
	"github.com/vovakirdan/space-survivor/internal/core"
	"github.com/vovakirdan/space-survivor/internal/storage"
)

func render(s *Session) *core.Screen {
	dst := core.NewScreen(80, 24)
	s.Render(dst)
	return dst
}

func TestRenderStartScreen(t *testing.T) {
	dst := render(newTestSession(nil))
	out := dst.String()

	for _, want := range []string{"SPACE SURVIVOR", "Pilot: New Player", "New game [n]", "Scores [s]", "Rename player [r]"} {
		if !strings.Contains(out, want) {
			t.Errorf("start screen missing %q", want)
		}
	}
	if footer := dst.Row(23); !strings.HasPrefix(footer, " esc quit") {
		t.Errorf("quit hint should sit bottom-left, row = %q", footer)
	}
}

func TestRenderHUD(t *testing.T) {
	s := runningSession(nil)
	s.score = 12
	dst := render(s)

	top := dst.Row(0)
	if !strings.HasPrefix(strings.TrimSpace(top), "♥ ♥ ♥") {
		t.Errorf("hearts missing from HUD: %q", top)
	}
	if !strings.Contains(top, "Score: 12") || !strings.Contains(top, "Time left: 60 s") {
		t.Errorf("HUD row = %q", top)
	}
	if !strings.HasSuffix(top, "s ") {
		t.Errorf("clock should be right-aligned, row = %q", top)
	}
}

func TestRenderEntities(t *testing.T) {
	s := runningSession(nil)
	s.asteroids = []Asteroid{largeAt(10.5, 6)}
	s.bullets = []Bullet{{Body: Body{X: 20.5, Y: 8.5, W: 1, H: 1}}}
	s.bonus = &Bonus{Body: Body{X: 30.5, Y: 9.5, W: 1, H: 1}}
	dst := render(s)

	if got := dst.GetCell(39, 11).Rune; got != '▲' {
		t.Errorf("ship glyph = %q, expected '▲'", got)
	}
	if dst.Row(5)[8:12] != "/##\\" || dst.Row(6)[8:12] != "\\##/" {
		t.Errorf("asteroid rows = %q / %q", dst.Row(5)[8:12], dst.Row(6)[8:12])
	}
	if dst.GetCell(20, 8).Rune != BulletChar || dst.GetCell(30, 9).Rune != BonusChar {
		t.Error("bullet or bonus not drawn")
	}
	if dst.GetCell(39, 11).Color != shipColor {
		t.Error("ship should be drawn in the ship color")
	}
}

func TestRenderDifficultyHighlight(t *testing.T) {
	s := newTestSession(nil)
	s.stage = StageDifficulty
	s.difficulty = config.DifficultyHard
	dst := render(s)

	for _, b := range s.Buttons() {
		c := dst.GetCell(b.Rect.X, b.Rect.Y).Color
		want := buttonColor
		if b.Action == core.ActionHard {
			want = selectedColor
		}
		if c != want {
			t.Errorf("%s button color = %v, expected %v", b.Label, c, want)
		}
	}
}

func TestRenderScores(t *testing.T) {
	s := newTestSession(nil)
	s.stage = StageScores
	out := render(s).String()
	if !strings.Contains(out, "No scores yet") {
		t.Error("empty table should say so")
	}

	s.ranking = []storage.Record{{PlayerName: "Ann", PlayerScore: 42, Difficulty: config.DifficultyHard}}
	out = render(s).String()
	for _, want := range []string{"LAST RUNS:", "NAME : SCORE : DIFFICULTY", "Ann : 42 : HARD", "Back [b]"} {
		if !strings.Contains(out, want) {
			t.Errorf("scores screen missing %q", want)
		}
	}

	underline := strings.Repeat("─", len("NAME : SCORE : DIFFICULTY"))
	if row := render(s).Row(24/6 + 3); strings.TrimSpace(row) != underline {
		t.Errorf("header should be underlined, row = %q", row)
	}
}

func TestRenderRenameFocus(t *testing.T) {
	s := newTestSession(nil)
	s.stage = StageRename
	s.nameFocused = true
	dst := render(s)

	box := NameBox(80, 24)
	if dst.GetCell(box.X, box.Y).Color != selectedColor {
		t.Error("focused name box should be highlighted")
	}
	if !strings.Contains(dst.Row(box.Y+1), "New Player_") {
		t.Errorf("focused box should show a cursor, row = %q", dst.Row(box.Y+1))
	}
}

func TestRenderEndScreen(t *testing.T) {
	s := newTestSession(nil)
	s.stage = StageEnd
	s.score = 33
	out := render(s).String()

	for _, want := range []string{"Game over", "Score: 33", "One more try?", "YES [y]", "NO [n]"} {
		if !strings.Contains(out, want) {
			t.Errorf("end screen missing %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := newTestSession(nil)
	dst := core.NewScreen(30, 10)
	s.Render(dst)

	if !strings.Contains(dst.String(), "Terminal too small") {
		t.Error("small terminals should get a warning")
	}
}

func overlaps(a, b core.Rect) bool {
	return a.X < b.Right() && a.Right() > b.X && a.Y < b.Bottom() && a.Bottom() > b.Y
}

func TestLayoutsFitMinimumScreen(t *testing.T) {
	screen := core.NewRect(0, 0, MinWidth, MinHeight)
	for _, st := range []Stage{StageStart, StageDifficulty, StageRename, StageScores, StageEnd} {
		buttons := Layout(st, MinWidth, MinHeight)
		for i, a := range buttons {
			if a.Rect.X < 0 || a.Rect.Right() > screen.Right() || a.Rect.Y < 0 || a.Rect.Bottom() > screen.Bottom() {
				t.Errorf("%v: %s button %+v outside %dx%d", st, a.Label, a.Rect, MinWidth, MinHeight)
			}
			for _, b := range buttons[i+1:] {
				if overlaps(a.Rect, b.Rect) {
					t.Errorf("%v: %s and %s overlap", st, a.Label, b.Label)
				}
			}
			if st == StageRename && overlaps(a.Rect, NameBox(MinWidth, MinHeight)) {
				t.Errorf("%s button overlaps the name box", a.Label)
			}
		}
	}
}
