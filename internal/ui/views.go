package ui

import (
	"fmt"
	"strings"

	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/protocol"
	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/session"
)

func (m *RaceModel) View() string {
	var body string
	switch {
	case m.connErr != nil:
		body = m.errorView()
	case !m.connected:
		body = "Connecting to server..."
	default:
		switch m.ctrl.State().Phase {
		case session.PhaseMenu:
			body = m.menuView()
		case session.PhaseLobby:
			body = m.lobbyView()
		case session.PhaseWaiting:
			body = m.waitingView()
		case session.PhaseGame:
			body = m.gameView()
		}
	}
	return DocStyle.Render(body)
}

func (m *RaceModel) errorView() string {
	var sb strings.Builder
	sb.WriteString(ErrorStyle.Render(fmt.Sprintf("Connection lost: %v", m.connErr)))
	sb.WriteString("\n\n")
	sb.WriteString(FaintStyle.Render("Restart the client to play again. Press ESC to quit."))
	return sb.String()
}

func (m *RaceModel) menuView() string {
	var sb strings.Builder
	sb.WriteString(TitleStyle("🏁 Race for Two"))
	sb.WriteString("\n\n")
	sb.WriteString("1. Create Room\n")
	sb.WriteString("2. Join Room\n")

	if m.joiningRoom {
		sb.WriteString("\n")
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
		sb.WriteString(FaintStyle.Render("Enter to join, ESC to cancel"))
	}

	m.writeNotice(&sb)
	return sb.String()
}

func (m *RaceModel) lobbyView() string {
	st := m.ctrl.State()
	var sb strings.Builder
	sb.WriteString(TitleStyle(fmt.Sprintf("Room: %s", st.RoomID)))
	sb.WriteString("\n\n")

	if st.SelfAvatar == "" {
		sb.WriteString("Select your avatar:\n")
		for i, a := range protocol.Avatars {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, a))
		}
	}

	sb.WriteString(fmt.Sprintf("\nYour avatar:    %s\n", orPlaceholder(st.SelfAvatar, "not selected")))
	sb.WriteString(fmt.Sprintf("Partner avatar: %s\n", orPlaceholder(st.PartnerAvatar, "waiting…")))

	m.writeNotice(&sb)
	return sb.String()
}

func (m *RaceModel) waitingView() string {
	return TitleStyle("Waiting for partner…")
}

func (m *RaceModel) gameView() string {
	st := m.ctrl.State()
	var sb strings.Builder
	sb.WriteString(TitleStyle("🎮 Game Started"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("You: %s   Partner: %s\n", st.SelfAvatar, st.PartnerAvatar))

	if q := st.ActiveQuestion; q != nil {
		sb.WriteString("\n")
		sb.WriteString(BoxStyle.Render(fmt.Sprintf("%s\n\n[Y]es  /  [N]o", q.Text)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.trackView())
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("💔 Distance between you: %d chairs\n", st.Distance))

	m.writeNotice(&sb)
	return sb.String()
}

// trackView draws both avatars on the 82-chair track, scaled to the terminal.
// During the animation window the avatars get a motion trail; outside it they
// are drawn plain.
func (m *RaceModel) trackView() string {
	st := m.ctrl.State()

	cols := m.width - 6
	if cols < session.NumChairs/2 {
		cols = session.NumChairs / 2
	}
	if cols > session.NumChairs {
		cols = session.NumChairs
	}

	selfRow := trackRow(st.SelfPosition, st.SelfAvatar, st.Animating, cols)
	partnerRow := trackRow(st.PartnerPosition, st.PartnerAvatar, st.Animating, cols)

	return BoxStyle.Render(selfRow + "\n" + partnerRow)
}

func trackRow(chair int, avatar string, animating bool, cols int) string {
	offset := int(session.ChairToX(chair, float64(cols)))
	if offset > cols-1 {
		offset = cols - 1
	}
	marker := avatar
	if marker == "" {
		marker = "?"
	}
	if animating {
		marker += "💨"
	}
	return strings.Repeat("·", offset) + marker + strings.Repeat("·", cols-offset)
}

func (m *RaceModel) writeNotice(sb *strings.Builder) {
	if m.notice == "" {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(NoticeStyle.Render(m.notice))
	sb.WriteString("\n")
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return FaintStyle.Render(placeholder)
	}
	return s
}
