// Package ui implements the terminal client: a bubbletea model whose view is
// routed by the session phase.
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/config"
	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/protocol"
	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/session"
	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/sound"
	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/transport"
)

// RaceModel is the top-level model for one client run.
type RaceModel struct {
	client *transport.Client
	ctrl   *session.Controller
	cfg    *config.Config

	connected bool
	connErr   error

	// notice is a transient user-facing line (room id to share, validation
	// errors). It never reflects session state, only the last surfaced event.
	notice string

	// joiningRoom is true while the menu input collects a room id
	joiningRoom bool

	soundManager *sound.SoundManager

	input  textinput.Model
	width  int
	height int
}

// --- Tea messages ---

// ConnectedMsg indicates successful connection.
type ConnectedMsg struct{}

// ConnectionErrorMsg indicates a connection error or loss.
type ConnectionErrorMsg struct {
	Err error
}

// ServerMessage wraps a protocol message for tea.Msg.
type ServerMessage struct {
	Msg *protocol.Message
}

// AnimDoneMsg ends the animation window scheduled for one position update.
// Seq pins it to that update so a stale timer never clears a newer window.
type AnimDoneMsg struct {
	Seq uint64
}

// NewRaceModel creates the model and the controller owning the connection.
func NewRaceModel(cfg *config.Config) *RaceModel {
	ti := textinput.New()
	ti.Placeholder = "Enter room ID"
	ti.CharLimit = 20
	ti.Width = 30

	c := transport.NewClient(cfg.Server.URL())

	return &RaceModel{
		client:       c,
		ctrl:         session.NewController(c),
		cfg:          cfg,
		soundManager: sound.NewSoundManager(),
		input:        ti,
	}
}

// Controller exposes the session controller, mainly for tests.
func (m *RaceModel) Controller() *session.Controller {
	return m.ctrl
}

func (m *RaceModel) Init() tea.Cmd {
	if !m.cfg.Sound.Muted {
		go func() {
			_ = m.soundManager.Init()
		}()
	}

	return tea.Batch(
		m.connectToServer(),
		textinput.Blink,
	)
}

func (m *RaceModel) connectToServer() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Connect(); err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ConnectedMsg{}
	}
}

func (m *RaceModel) listenForMessages() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.client.Receive()
		if err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ServerMessage{Msg: msg}
	}
}

func (m *RaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ConnectedMsg:
		m.connected = true
		return m, m.listenForMessages()

	case ConnectionErrorMsg:
		m.connected = false
		m.connErr = msg.Err
		return m, nil

	case ServerMessage:
		cmds := m.processServerMessage(msg)
		return m, tea.Batch(cmds...)

	case AnimDoneMsg:
		m.ctrl.State().ClearAnimating(msg.Seq)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *RaceModel) processServerMessage(msg ServerMessage) []tea.Cmd {
	var cmds []tea.Cmd
	if cmd := m.handleEvent(msg.Msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.client.IsConnected() {
		cmds = append(cmds, m.listenForMessages())
	}
	return cmds
}

// PlaySound plays a cue unless sound is muted.
func (m *RaceModel) PlaySound(name string) {
	if m.cfg.Sound.Muted {
		return
	}
	m.soundManager.Play(name)
}
