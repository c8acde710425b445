package game

import (
	"strings"
	"unicode"

	"github.com/vovakirdan/space-survivor/internal/config"
	"github.com/vovakirdan/space-survivor/internal/core"
)

// Stage is the screen the session is currently showing.
type Stage int

const (
	StageStart Stage = iota
	StageDifficulty
	StageRename
	StageRunning
	StageScores
	StageEnd
)

// String returns the stage name.
func (st Stage) String() string {
	switch st {
	case StageStart:
		return "start"
	case StageDifficulty:
		return "difficulty"
	case StageRename:
		return "rename_player"
	case StageRunning:
		return "running"
	case StageScores:
		return "scores"
	case StageEnd:
		return "end"
	default:
		return "unknown"
	}
}

// handleMenu applies button presses on the menu screens.
// Processing stops at the first press that changes the screen.
func (s *Session) handleMenu(in core.InputFrame) {
	for _, a := range s.menuActions(in) {
		before := s.stage
		s.apply(a)
		if s.stage != before {
			return
		}
	}
}

// handleRename edits the player name. Clicks move the focus in or out of
// the name box; typing only reaches the name while the box is focused.
func (s *Session) handleRename(in core.InputFrame) {
	box := NameBox(s.width, s.height)
	for _, c := range in.Clicks {
		s.nameFocused = box.Contains(c.X, c.Y)
	}

	if s.nameFocused {
		for _, r := range in.Text {
			s.typeRune(r)
		}
		if in.Has(core.ActionBackspace) {
			if r := []rune(s.player); len(r) > 0 {
				s.player = string(r[:len(r)-1])
			}
		}
	}

	s.handleMenu(in)
}

// typeRune appends a printable rune to the name, up to the length limit.
func (s *Session) typeRune(r rune) {
	if !unicode.IsPrint(r) || len([]rune(s.player)) >= maxNameLen {
		return
	}
	s.player += string(r)
}

// menuActions lists the buttons pressed this tick, keyboard shortcuts
// first, then clicks in the order they arrived. Only the current screen's
// buttons count.
func (s *Session) menuActions(in core.InputFrame) []core.Action {
	var actions []core.Action
	for _, b := range s.Buttons() {
		if in.Has(b.Action) {
			actions = append(actions, b.Action)
		}
	}
	for _, c := range in.Clicks {
		if b, ok := s.ButtonAt(c.X, c.Y); ok {
			actions = append(actions, b.Action)
		}
	}
	return actions
}

// apply performs a button action on the current screen.
func (s *Session) apply(a core.Action) {
	switch s.stage {
	case StageStart:
		switch a {
		case core.ActionNewGame:
			s.stage = StageDifficulty
		case core.ActionScores:
			s.loadRanking()
			s.stage = StageScores
		case core.ActionRename:
			s.nameFocused = true
			s.stage = StageRename
		}

	case StageDifficulty:
		switch a {
		case core.ActionEasy:
			s.selectDifficulty(config.DifficultyEasy)
		case core.ActionNormal:
			s.selectDifficulty(config.DifficultyNormal)
		case core.ActionHard:
			s.selectDifficulty(config.DifficultyHard)
		case core.ActionConfirm:
			s.startRound()
		}

	case StageRename:
		switch a {
		case core.ActionClear:
			s.player = ""
		case core.ActionConfirm:
			if strings.TrimSpace(s.player) == "" {
				s.player = s.cfg.Round.DefaultPlayer
			}
			s.nameFocused = false
			s.stage = StageStart
		}

	case StageScores:
		if a == core.ActionBack {
			s.stage = StageStart
		}

	case StageEnd:
		switch a {
		case core.ActionYes:
			s.startRound()
		case core.ActionNo:
			s.stage = StageStart
		}
	}
}

// selectDifficulty switches the tier and restarts the bonus timer with the
// new tier's interval.
func (s *Session) selectDifficulty(d config.Difficulty) {
	s.difficulty = d
	s.scheduleBonus()
}
