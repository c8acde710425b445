package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-survivor/internal/core"
)

// DefaultHoldWindow is how long a steering key counts as held after its
// last press. Terminals report key repeats but never key releases.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyMap defines the key bindings of the game.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Boost     key.Binding
	Fire      key.Binding
	NewGame   key.Binding
	Scores    key.Binding
	Rename    key.Binding
	Easy      key.Binding
	Normal    key.Binding
	Hard      key.Binding
	Confirm   key.Binding
	Yes       key.Binding
	No        key.Binding
	Back      key.Binding
	Clear     key.Binding
	Backspace key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Boost, k.Fire, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Boost, k.Fire},
		{k.NewGame, k.Scores, k.Rename, k.Back},
		{k.Easy, k.Normal, k.Hard, k.Confirm},
		{k.Yes, k.No, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "turn right"),
		),
		Boost: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "boost"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Scores: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scores"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "easy"),
		),
		Normal: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "normal"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "hard"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "play again"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "to menu"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear name"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// HoldTracker remembers when each steering action was last pressed.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a press of a at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	h.last[a] = now
}

// Held reports whether a was pressed within the hold window before now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	return ok && now.Sub(t) < h.window
}

// Apply sets every held action on the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a := range h.last {
		if h.Held(a, now) {
			frame.Set(a)
		}
	}
}

// Reset forgets all presses.
func (h *HoldTracker) Reset() {
	clear(h.last)
}

// KeyMapper translates Bubble Tea key messages to game input.
// A key may map to several actions (n is both "new game" and "no"); the
// session only honours the ones the current screen offers.
type KeyMapper struct {
	keys  KeyMap
	held  *HoldTracker
	fires []binding
}

// binding pairs a one-shot key binding with its action.
type binding struct {
	key    key.Binding
	action core.Action
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper(holdWindow time.Duration) *KeyMapper {
	k := DefaultKeyMap()
	return &KeyMapper{
		keys: k,
		held: NewHoldTracker(holdWindow),
		fires: []binding{
			{k.Fire, core.ActionFire},
			{k.NewGame, core.ActionNewGame},
			{k.Scores, core.ActionScores},
			{k.Rename, core.ActionRename},
			{k.Easy, core.ActionEasy},
			{k.Normal, core.ActionNormal},
			{k.Hard, core.ActionHard},
			{k.Confirm, core.ActionConfirm},
			{k.Yes, core.ActionYes},
			{k.No, core.ActionNo},
			{k.Back, core.ActionBack},
			{k.Clear, core.ActionClear},
			{k.Backspace, core.ActionBackspace},
		},
	}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, now time.Time) bool {
	if key.Matches(msg, km.keys.Quit) {
		return true
	}

	switch {
	case key.Matches(msg, km.keys.Left):
		km.held.Press(core.ActionTurnLeft, now)
	case key.Matches(msg, km.keys.Right):
		km.held.Press(core.ActionTurnRight, now)
	case key.Matches(msg, km.keys.Boost):
		km.held.Press(core.ActionBoost, now)
	}

	for _, b := range km.fires {
		if key.Matches(msg, b.key) {
			frame.Set(b.action)
		}
	}

	// Text for the name box
	switch msg.Type {
	case tea.KeyRunes:
		if !msg.Alt {
			frame.Type(msg.Runes...)
		}
	case tea.KeySpace:
		frame.Type(' ')
	}

	return false
}

// ApplyHeld sets the steering actions still held at now.
func (km *KeyMapper) ApplyHeld(frame *core.InputFrame, now time.Time) {
	km.held.Apply(frame, now)
}

// MapMouseToFrame records left clicks on the frame.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Click(msg.X, msg.Y)
	}
}
