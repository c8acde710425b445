package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/space-survivor/internal/config"
	"github.com/vovakirdan/space-survivor/internal/core"
)

// Palette
const (
	titleColor    = core.ColorBrightGreen
	textColor     = core.ColorGreen
	buttonColor   = core.ColorWhite
	selectedColor = core.ColorBrightGreen
	idleColor     = core.ColorGray
	shipColor     = core.ColorCyan
	bulletColor   = core.ColorBrightRed
	bonusColor    = core.ColorBrightYellow
	heartColor    = core.ColorRed
)

// Render draws the current screen into dst. It never changes the session.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		s.renderTooSmall(dst)
		return
	}

	switch s.stage {
	case StageStart:
		s.renderStart(dst)
	case StageDifficulty:
		s.renderDifficulty(dst)
	case StageRename:
		s.renderRename(dst)
	case StageRunning:
		s.renderRunning(dst)
	case StageScores:
		s.renderScores(dst)
	case StageEnd:
		s.renderEnd(dst)
	}
}

func (s *Session) renderTooSmall(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/2-1, "Terminal too small", core.ColorBrightRed)
	dst.DrawTextCentered(h/2, fmt.Sprintf("need %dx%d, have %dx%d", MinWidth, MinHeight, dst.Width(), h), textColor)
}

func (s *Session) renderStart(dst *core.Screen) {
	h := s.height
	dst.DrawTextCentered(h/5-1, "SPACE SURVIVOR", titleColor)
	dst.DrawTextCentered(h/5+1, "Pilot: "+s.player, textColor)
	s.drawButtons(dst, nil)
	dst.DrawText(1, h-1, "esc quit")
}

func (s *Session) renderDifficulty(dst *core.Screen) {
	dst.DrawTextCentered(s.height/5-1, "Choose game difficulty", titleColor)

	selected := map[core.Action]bool{
		difficultyAction(s.difficulty): true,
	}
	s.drawButtons(dst, selected)
}

func (s *Session) renderRename(dst *core.Screen) {
	dst.DrawTextCentered(s.height/5-1, "Enter new name", titleColor)

	box := NameBox(s.width, s.height)
	color := idleColor
	name := s.player
	if s.nameFocused {
		color = selectedColor
		name += "_"
	}
	dst.DrawBox(box, color)
	_, cy := box.Center()
	dst.DrawTextCentered(cy, name, core.ColorWhite)

	s.drawButtons(dst, nil)
}

func (s *Session) renderRunning(dst *core.Screen) {
	if b, ok := s.Bonus(); ok {
		drawBody(dst, b.Body, []string{string(BonusChar)}, bonusColor)
	}
	for _, a := range s.asteroids {
		drawBody(dst, a.Body, a.Glyph(), asteroidColor(a.Kind))
	}
	for _, b := range s.bullets {
		drawBody(dst, b.Body, []string{string(BulletChar)}, bulletColor)
	}
	drawBody(dst, s.ship.Body, []string{string(s.ship.Glyph())}, shipColor)

	s.renderHUD(dst)
}

// renderHUD draws lives top-left, the score centred and the clock top-right.
func (s *Session) renderHUD(dst *core.Screen) {
	hearts := strings.TrimSpace(strings.Repeat(string(HeartChar)+" ", s.lives))
	dst.DrawTextColored(1, 0, hearts, heartColor)

	dst.DrawTextCentered(0, fmt.Sprintf("Score: %d", s.score), titleColor)

	clock := fmt.Sprintf("Time left: %.0f s", s.timeLeft)
	dst.DrawTextColored(dst.Width()-len(clock)-1, 0, clock, titleColor)
}

func (s *Session) renderScores(dst *core.Screen) {
	y := s.height / 6
	dst.DrawTextCentered(y, "LAST RUNS:", titleColor)
	header := "NAME : SCORE : DIFFICULTY"
	dst.DrawTextCentered(y+2, header, textColor)
	dst.DrawHLine((dst.Width()-len(header))/2, y+3, len(header), '─', idleColor)

	if len(s.ranking) == 0 {
		dst.DrawTextCentered(y+4, "No scores yet", idleColor)
	}
	for i, rec := range s.ranking {
		line := fmt.Sprintf("%s : %d : %s", rec.PlayerName, rec.PlayerScore, rec.Difficulty.Label())
		dst.DrawTextCentered(y+4+i, line, textColor)
	}

	s.drawButtons(dst, nil)
}

func (s *Session) renderEnd(dst *core.Screen) {
	h := s.height
	dst.DrawTextCentered(h/5, "Game over", titleColor)
	dst.DrawTextCentered(h/3, fmt.Sprintf("Score: %d", s.score), titleColor)
	dst.DrawTextCentered(h/2, "One more try?", textColor)
	s.drawButtons(dst, nil)
}

// drawButtons draws the current screen's buttons, highlighting the selected ones.
func (s *Session) drawButtons(dst *core.Screen, selected map[core.Action]bool) {
	for _, b := range s.Buttons() {
		color := buttonColor
		if selected[b.Action] {
			color = selectedColor
		}
		dst.DrawBox(b.Rect, color)

		caption := b.Caption()
		_, cy := b.Rect.Center()
		x := b.Rect.X + (b.Rect.W-len([]rune(caption)))/2
		dst.DrawTextColored(x, cy, caption, color)
	}
}

// drawBody draws glyph rows with their top-left corner on the body's box.
func drawBody(dst *core.Screen, b Body, rows []string, c core.Color) {
	box := b.Box()
	x := int(math.Floor(box.Left()))
	y := int(math.Floor(box.Top()))
	for i, row := range rows {
		dst.DrawTextColored(x, y+i, row, c)
	}
}

func asteroidColor(k AsteroidKind) core.Color {
	if k == AsteroidSmall {
		return core.ColorYellow
	}
	return core.ColorOrange
}

func difficultyAction(d config.Difficulty) core.Action {
	switch d {
	case config.DifficultyEasy:
		return core.ActionEasy
	case config.DifficultyHard:
		return core.ActionHard
	default:
		return core.ActionNormal
	}
}
