package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-survivor/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestHoldTracker(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	t0 := time.Now()

	if h.Held(core.ActionTurnLeft, t0) {
		t.Fatal("unpressed action should not be held")
	}

	h.Press(core.ActionTurnLeft, t0)

	tests := []struct {
		name     string
		after    time.Duration
		expected bool
	}{
		{"same instant", 0, true},
		{"inside window", 100 * time.Millisecond, true},
		{"window edge", 150 * time.Millisecond, false},
		{"after window", 400 * time.Millisecond, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := h.Held(core.ActionTurnLeft, t0.Add(tc.after)); got != tc.expected {
				t.Errorf("Held after %v = %v, expected %v", tc.after, got, tc.expected)
			}
		})
	}
}

func TestHoldTrackerApplyAndReset(t *testing.T) {
	h := NewHoldTracker(0) // falls back to the default window
	now := time.Now()
	h.Press(core.ActionBoost, now)
	h.Press(core.ActionTurnRight, now.Add(-time.Second))

	frame := core.NewInputFrame()
	h.Apply(&frame, now)
	if !frame.Has(core.ActionBoost) {
		t.Error("recent press should be applied")
	}
	if frame.Has(core.ActionTurnRight) {
		t.Error("stale press should not be applied")
	}

	h.Reset()
	frame.Clear()
	h.Apply(&frame, now)
	if frame.Has(core.ActionBoost) {
		t.Error("Reset should forget presses")
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper(DefaultHoldWindow)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected bool
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, true},
		{"q types a letter", runeKey('q'), false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			if got := km.MapKeyToFrame(tc.msg, &frame, time.Now()); got != tc.expected {
				t.Errorf("quit = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestMapKeyActions(t *testing.T) {
	km := NewKeyMapper(DefaultHoldWindow)

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		actions []core.Action
	}{
		{"n is new game and no", runeKey('n'), []core.Action{core.ActionNewGame, core.ActionNo}},
		{"s scores", runeKey('s'), []core.Action{core.ActionScores}},
		{"r rename", runeKey('r'), []core.Action{core.ActionRename}},
		{"1 easy", runeKey('1'), []core.Action{core.ActionEasy}},
		{"2 normal", runeKey('2'), []core.Action{core.ActionNormal}},
		{"3 hard", runeKey('3'), []core.Action{core.ActionHard}},
		{"y yes", runeKey('y'), []core.Action{core.ActionYes}},
		{"b back", runeKey('b'), []core.Action{core.ActionBack}},
		{"enter confirm", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionConfirm}},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Action{core.ActionFire}},
		{"ctrl+u clears", tea.KeyMsg{Type: tea.KeyCtrlU}, []core.Action{core.ActionClear}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []core.Action{core.ActionBackspace}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			km.MapKeyToFrame(tc.msg, &frame, time.Now())
			for _, a := range tc.actions {
				if !frame.Has(a) {
					t.Errorf("expected %v to be set", a)
				}
			}
			if len(frame.Actions) != len(tc.actions) {
				t.Errorf("got %d actions, expected %d: %v", len(frame.Actions), len(tc.actions), frame.Actions)
			}
		})
	}
}

func TestMapKeyText(t *testing.T) {
	km := NewKeyMapper(DefaultHoldWindow)
	frame := core.NewInputFrame()
	now := time.Now()

	km.MapKeyToFrame(runeKey('J'), &frame, now)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, &frame, now)
	km.MapKeyToFrame(runeKey('o'), &frame, now)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, &frame, now)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame, now)

	if got := string(frame.Text); got != "J o" {
		t.Errorf("Text = %q, expected %q", got, "J o")
	}
}

func TestMapKeySteeringIsHeld(t *testing.T) {
	km := NewKeyMapper(DefaultHoldWindow)
	frame := core.NewInputFrame()
	now := time.Now()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame, now)
	km.MapKeyToFrame(runeKey('w'), &frame, now)
	if frame.Has(core.ActionTurnLeft) || frame.Has(core.ActionBoost) {
		t.Fatal("steering keys should only apply through the hold tracker")
	}

	km.ApplyHeld(&frame, now.Add(50*time.Millisecond))
	if !frame.Has(core.ActionTurnLeft) || !frame.Has(core.ActionBoost) {
		t.Error("steering keys should be held shortly after the press")
	}
	if frame.Has(core.ActionTurnRight) {
		t.Error("right was never pressed")
	}

	frame.Clear()
	km.ApplyHeld(&frame, now.Add(time.Second))
	if frame.Has(core.ActionTurnLeft) {
		t.Error("steering should stop once the key is no longer repeated")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper(DefaultHoldWindow)
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 7, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 9, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, &frame)

	if len(frame.Clicks) != 1 || frame.Clicks[0] != (core.Point{X: 3, Y: 4}) {
		t.Errorf("Clicks = %v, expected only the left press at (3, 4)", frame.Clicks)
	}
}

func TestKeyMapHelp(t *testing.T) {
	k := DefaultKeyMap()
	if len(k.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	for i, col := range k.FullHelp() {
		if len(col) == 0 {
			t.Errorf("FullHelp column %d is empty", i)
		}
	}
}
