package session

import (
	"fmt"

	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/apperrors"
)

// Phase 会话阶段，同一时刻只能处于其中一个
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseLobby
	PhaseWaiting
	PhaseGame
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseLobby:
		return "lobby"
	case PhaseWaiting:
		return "waiting"
	case PhaseGame:
		return "game"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Question 当前待回答的问题
type Question struct {
	ID   string
	Text string
}

// 开局前的默认椅子位置
const (
	DefaultSelfPosition    = 40
	DefaultPartnerPosition = 41
)

// State 本端会话状态。一次运行只创建一次，只能前进，不会销毁；
// 阶段切换只发生在 Apply 里。非并发安全，必须从单个事件循环驱动。
type State struct {
	Phase         Phase
	RoomID        string
	Slot          Slot
	SelfAvatar    string
	PartnerAvatar string

	ActiveQuestion *Question

	SelfPosition    int
	PartnerPosition int
	Distance        int

	// Animating 在每次位置更新后的动画窗口内为 true。AnimSeq 随每次
	// 更新单调递增，过期的清除定时器据此被忽略，新更新总是赢。
	Animating bool
	AnimSeq   uint64
}

// NewState 创建初始会话状态
func NewState() *State {
	return &State{
		Phase:           PhaseMenu,
		SelfPosition:    DefaultSelfPosition,
		PartnerPosition: DefaultPartnerPosition,
	}
}

// Apply 按转移表消费一个规范化事件。返回错误时状态必定原封不动。
func (s *State) Apply(ev Event) error {
	switch e := ev.(type) {
	case RoomEntered:
		return s.applyRoomEntered(e)

	case PartnerPresent:
		if s.Phase == PhaseGame {
			return &apperrors.ProtocolError{Reason: "PLAYER_JOINED after game start"}
		}
		s.Phase = PhaseLobby
		return nil

	case AwaitingPartner:
		if s.Phase == PhaseGame {
			return &apperrors.ProtocolError{Reason: "WAITING_FOR_PLAYER after game start"}
		}
		// 只有本地已选头像才前进到等待页，否则停在大厅让玩家还能选
		if s.SelfAvatar != "" {
			s.Phase = PhaseWaiting
		} else {
			s.Phase = PhaseLobby
		}
		return nil

	case PartnerAvatarChosen:
		s.PartnerAvatar = e.Avatar
		return nil

	case GameStarted:
		if s.Phase == PhaseGame {
			return &apperrors.ProtocolError{Reason: "duplicate GAME_STARTED"}
		}
		s.Phase = PhaseGame
		s.Slot = e.Slot
		s.SelfAvatar = e.SelfAvatar
		s.PartnerAvatar = e.PartnerAvatar
		s.SelfPosition = e.SelfPosition
		s.PartnerPosition = e.PartnerPosition
		return nil

	case QuestionPosed:
		if s.Phase != PhaseGame {
			return &apperrors.ProtocolError{Reason: fmt.Sprintf("QUESTION in phase %s", s.Phase)}
		}
		s.ActiveQuestion = &Question{ID: e.ID, Text: e.Text}
		return nil

	case PositionsUpdated:
		if s.Phase != PhaseGame {
			return &apperrors.ProtocolError{Reason: fmt.Sprintf("UPDATE in phase %s", s.Phase)}
		}
		s.SelfPosition = e.SelfPosition
		s.PartnerPosition = e.PartnerPosition
		s.Distance = e.Distance
		// 位置更新就是服务端对上一个回答的确认，当前问题随之结束
		s.ActiveQuestion = nil
		s.Animating = true
		s.AnimSeq++
		return nil

	case NoOp:
		return nil

	default:
		return &apperrors.ProtocolError{Reason: fmt.Sprintf("unhandled event %T", ev)}
	}
}

func (s *State) applyRoomEntered(e RoomEntered) error {
	if s.Phase == PhaseGame {
		return &apperrors.ProtocolError{Reason: "room event after game start"}
	}
	// 房间号在一次会话内只设置一次
	if s.RoomID != "" && s.RoomID != e.RoomID {
		return &apperrors.ProtocolError{Reason: fmt.Sprintf("room changed from %s to %s", s.RoomID, e.RoomID)}
	}
	s.RoomID = e.RoomID
	s.Slot = e.Slot
	s.Phase = PhaseLobby
	return nil
}

// ClearAnimating 结束 seq 对应的动画窗口。若期间有更新的位置到达
// （AnimSeq 已前进）则忽略，返回是否真正清除。
func (s *State) ClearAnimating(seq uint64) bool {
	if s.AnimSeq != seq || !s.Animating {
		return false
	}
	s.Animating = false
	return true
}
