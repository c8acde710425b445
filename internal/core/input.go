package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionTurnLeft         // Left, A - rotate counter-clockwise (held)
	ActionTurnRight        // Right, D - rotate clockwise (held)
	ActionBoost            // Up, W - accelerate (held)
	ActionFire             // Space - fire a bullet
	ActionNewGame          // N - start screen: new game
	ActionScores           // S - start screen: show scores
	ActionRename           // R - start screen: rename player
	ActionEasy             // 1 - difficulty screen
	ActionNormal           // 2 - difficulty screen
	ActionHard             // 3 - difficulty screen
	ActionConfirm          // Enter - apply difficulty / save name
	ActionYes              // Y - end screen: play again
	ActionNo               // N - end screen: back to start
	ActionBack             // B - scores screen: back
	ActionClear            // Ctrl+U - rename screen: clear name
	ActionBackspace        // Backspace - rename screen: delete last rune
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionBoost:
		return "Boost"
	case ActionFire:
		return "Fire"
	case ActionNewGame:
		return "NewGame"
	case ActionScores:
		return "Scores"
	case ActionRename:
		return "Rename"
	case ActionEasy:
		return "Easy"
	case ActionNormal:
		return "Normal"
	case ActionHard:
		return "Hard"
	case ActionConfirm:
		return "Confirm"
	case ActionYes:
		return "Yes"
	case ActionNo:
		return "No"
	case ActionBack:
		return "Back"
	case ActionClear:
		return "Clear"
	case ActionBackspace:
		return "Backspace"
	default:
		return "Unknown"
	}
}

// Point is a cell coordinate on the screen.
type Point struct {
	X, Y int
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Text holds runes typed this frame, consumed only by text entry.
	Text []rune

	// Clicks holds left mouse clicks received this frame, in order.
	Clicks []Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Type appends typed runes to the frame.
func (f *InputFrame) Type(r ...rune) {
	f.Text = append(f.Text, r...)
}

// Click records a left click at (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Point{X: x, Y: y})
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Text = f.Text[:0]
	f.Clicks = f.Clicks[:0]
}
