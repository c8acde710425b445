package game

import "github.com/vovakirdan/space-survivor/internal/core"

// Minimum screen size for the layouts below.
const (
	MinWidth  = 40
	MinHeight = 20
)

// Button sizes in cells
const (
	buttonW      = 24
	buttonH      = 3
	smallButtonW = 12
	nameBoxW     = maxNameLen + 6
)

// Button is a clickable screen region bound to a menu action.
type Button struct {
	Action core.Action
	Label  string
	Key    string // Keyboard shortcut shown next to the label
	Rect   core.Rect
}

// Caption returns the text drawn inside the button.
func (b Button) Caption() string {
	if b.Key == "" {
		return b.Label
	}
	return b.Label + " [" + b.Key + "]"
}

// Buttons returns the buttons of the current screen.
func (s *Session) Buttons() []Button {
	return Layout(s.stage, s.width, s.height)
}

// ButtonAt returns the button of the current screen containing (x, y).
func (s *Session) ButtonAt(x, y int) (Button, bool) {
	for _, b := range s.Buttons() {
		if b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// Layout returns the buttons of a screen for a w x h terminal.
// The running screen has none.
func Layout(stage Stage, w, h int) []Button {
	switch stage {
	case StageStart:
		return column(w, h/4+2, 4, []Button{
			{Action: core.ActionNewGame, Label: "New game", Key: "n"},
			{Action: core.ActionScores, Label: "Scores", Key: "s"},
			{Action: core.ActionRename, Label: "Rename player", Key: "r"},
		})

	case StageDifficulty:
		buttons := column(w, h/4+1, buttonH, []Button{
			{Action: core.ActionEasy, Label: "Easy", Key: "1"},
			{Action: core.ActionNormal, Label: "Normal", Key: "2"},
			{Action: core.ActionHard, Label: "Hard", Key: "3"},
		})
		return append(buttons, Button{
			Action: core.ActionConfirm, Label: "Apply", Key: "enter",
			Rect: centered(w, h-4, buttonW),
		})

	case StageRename:
		return column(w, h/4+6, 4, []Button{
			{Action: core.ActionClear, Label: "Clear", Key: "ctrl+u"},
			{Action: core.ActionConfirm, Label: "Apply", Key: "enter"},
		})

	case StageScores:
		return []Button{{
			Action: core.ActionBack, Label: "Back", Key: "b",
			Rect: centered(w, h-4, buttonW),
		}}

	case StageEnd:
		y := h * 2 / 3
		return []Button{
			{Action: core.ActionYes, Label: "YES", Key: "y", Rect: core.NewRect(w/2-2-smallButtonW, y, smallButtonW, buttonH)},
			{Action: core.ActionNo, Label: "NO", Key: "n", Rect: core.NewRect(w/2+2, y, smallButtonW, buttonH)},
		}
	}
	return nil
}

// NameBox returns the text box of the rename screen.
func NameBox(w, h int) core.Rect {
	return centered(w, h/4+2, nameBoxW)
}

// column stacks buttons vertically, centred, starting at row y.
func column(w, y, step int, buttons []Button) []Button {
	for i := range buttons {
		buttons[i].Rect = centered(w, y+i*step, buttonW)
	}
	return buttons
}

// centered returns a button-height rect of the given width centred horizontally.
func centered(w, y, width int) core.Rect {
	return core.NewRect((w-width)/2, y, width, buttonH)
}
