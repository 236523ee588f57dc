package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/protocol"
	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/session"
	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/sound"
)

// handleEvent feeds one server message through the controller and reacts to
// the canonical event it produced. Rejected messages change nothing on screen.
func (m *RaceModel) handleEvent(raw *protocol.Message) tea.Cmd {
	ev, err := m.ctrl.HandleMessage(raw)
	if err != nil {
		return nil
	}

	switch e := ev.(type) {
	case session.RoomEntered:
		if e.Created {
			m.notice = fmt.Sprintf("Room created! Share this Room ID: %s", e.RoomID)
		} else {
			m.notice = ""
		}

	case session.PartnerPresent:
		m.PlaySound(sound.CueJoin)

	case session.GameStarted:
		m.notice = ""
		m.PlaySound(sound.CueStart)

	case session.QuestionPosed:
		m.PlaySound(sound.CueQuestion)

	case session.PositionsUpdated:
		m.PlaySound(sound.CueMove)
		return m.scheduleAnimDone()
	}
	return nil
}

// scheduleAnimDone arms the clear timer for the animation window that the
// update just opened.
func (m *RaceModel) scheduleAnimDone() tea.Cmd {
	seq := m.ctrl.State().AnimSeq
	return tea.Tick(m.cfg.Game.AnimationWindow(), func(time.Time) tea.Msg {
		return AnimDoneMsg{Seq: seq}
	})
}
