package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-survivor/internal/audio"
	"github.com/vovakirdan/space-survivor/internal/core"
	"github.com/vovakirdan/space-survivor/internal/game"
)

// Model is the Bubble Tea model running one game session.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	player     audio.Player
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	stage      game.Stage
	quitting   bool
}

// NewModel creates a model driving the given session.
// A nil player plays nothing and a nil logger discards everything.
func NewModel(session *game.Session, player audio.Player, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if player == nil {
		player = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		player:     player,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(DefaultHoldWindow),
		inputFrame: core.NewInputFrame(),
		stage:      session.Stage(),
	}
}

// Init starts the menu music and the tick loop.
func (m Model) Init() tea.Cmd {
	m.player.Music(audio.TrackMenu)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame, time.Now()) {
		m.quitting = true
		m.player.Music(audio.TrackNone)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the screen buffer and the playfield at the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation tick with the input gathered since the last one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.keys.ApplyHeld(&m.inputFrame, now)

	result := m.session.Step(m.inputFrame, m.config.TickSeconds())
	playEvents(m.player, result.Events)

	if err := m.session.TakeError(); err != nil {
		m.logger.Error("could not save result", "player", m.session.PlayerName(), "error", err)
	}
	if result.Stage != m.stage {
		m.logger.Debug("stage changed", "from", m.stage, "to", result.Stage)
		// Steering held on one screen must not leak into the next
		m.keys.held.Reset()
		if result.Stage == game.StageEnd {
			m.logger.Info("round finished",
				"player", m.session.PlayerName(),
				"score", m.session.Score(),
				"difficulty", m.session.Difficulty(),
			)
		}
		m.stage = result.Stage
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Session returns the driven session.
func (m Model) Session() *game.Session {
	return m.session
}

// playEvents forwards game events to the audio player.
func playEvents(p audio.Player, events []game.Event) {
	for _, e := range events {
		switch e {
		case game.EventShoot:
			p.Shoot()
		case game.EventExplosion:
			p.Explosion()
		case game.EventMusicMenu:
			p.Music(audio.TrackMenu)
		case game.EventMusicGame:
			p.Music(audio.TrackGame)
		}
	}
}

// Run starts the Bubble Tea program for the session.
func Run(session *game.Session, player audio.Player, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(session, player, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
