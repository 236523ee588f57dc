// Package session holds the client-side session core: the canonical event
// union produced from wire messages, the phase state machine that consumes it,
// and the controller that owns the transport and translates user intents into
// outbound messages.
package session

import "github.com/Jenny-2005/relationship-mirror-game-frontend/internal/protocol"

// Slot 本端占据的玩家角色
type Slot int

const (
	SlotUnknown Slot = iota
	SlotFirst
	SlotSecond
)

func (s Slot) String() string {
	switch s {
	case SlotFirst:
		return "first"
	case SlotSecond:
		return "second"
	default:
		return "unknown"
	}
}

// Event 规范化后的入站事件。闭合联合：只有本包内的类型实现它。
type Event interface {
	event()
}

// RoomEntered 进入房间。ROOM_CREATED 和 ROOM_JOINED 在线上是两种类型，
// 规范化成同一形态：创建方固定 SlotFirst，加入方固定 SlotSecond。
type RoomEntered struct {
	RoomID  string
	Slot    Slot
	Created bool // 创建路径需要把房间号展示给用户
}

// PartnerPresent 对方已进入房间
type PartnerPresent struct{}

// AwaitingPartner 服务端仍在等待。落到哪个阶段取决于本地是否已选头像，
// 该判断属于状态机，这里只透传。
type AwaitingPartner struct{}

// PartnerAvatarChosen 对方选好头像
type PartnerAvatarChosen struct {
	Avatar string
}

// GameStarted 游戏开始，两种线上形态归一后的结果
type GameStarted struct {
	Slot            Slot
	SelfAvatar      string
	PartnerAvatar   string
	SelfPosition    int
	PartnerPosition int
}

// QuestionPosed 服务端出题
type QuestionPosed struct {
	ID   string
	Text string
}

// PositionsUpdated 位置更新
type PositionsUpdated struct {
	SelfPosition    int
	PartnerPosition int
	Distance        int
}

// NoOp 无法识别的消息类型，仅用于诊断
type NoOp struct {
	Type protocol.MessageType
}

func (RoomEntered) event()         {}
func (PartnerPresent) event()      {}
func (AwaitingPartner) event()     {}
func (PartnerAvatarChosen) event() {}
func (GameStarted) event()         {}
func (QuestionPosed) event()       {}
func (PositionsUpdated) event()    {}
func (NoOp) event()                {}
