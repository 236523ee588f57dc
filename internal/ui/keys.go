package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/protocol"
	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/session"
)

func (m *RaceModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.ctrl.Close()
		return m, tea.Quit
	case "esc":
		if m.joiningRoom {
			m.joiningRoom = false
			m.input.Blur()
			m.input.SetValue("")
			m.notice = ""
			return m, nil
		}
		m.ctrl.Close()
		return m, tea.Quit
	}

	switch m.ctrl.State().Phase {
	case session.PhaseMenu:
		return m.handleMenuKey(msg)
	case session.PhaseLobby:
		return m.handleLobbyKey(msg)
	case session.PhaseGame:
		return m.handleGameKey(msg)
	}
	return m, nil
}

func (m *RaceModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.joiningRoom {
		if msg.String() == "enter" {
			if err := m.ctrl.JoinRoom(m.input.Value()); err != nil {
				m.notice = err.Error()
				return m, nil
			}
			m.notice = ""
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "1", "c":
		if err := m.ctrl.CreateRoom(); err != nil {
			m.notice = err.Error()
		}
	case "2", "j":
		m.joiningRoom = true
		m.input.Focus()
		return m, nil
	}
	return m, nil
}

func (m *RaceModel) handleLobbyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// 头像按序号选择，选过之后按键静默无效
	switch msg.String() {
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		if idx < len(protocol.Avatars) {
			if err := m.ctrl.SelectAvatar(protocol.Avatars[idx]); err != nil {
				m.notice = err.Error()
			}
		}
	}
	return m, nil
}

func (m *RaceModel) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		if err := m.ctrl.AnswerQuestion(protocol.AnswerYes); err != nil {
			m.notice = err.Error()
		}
	case "n":
		if err := m.ctrl.AnswerQuestion(protocol.AnswerNo); err != nil {
			m.notice = err.Error()
		}
	}
	return m, nil
}
