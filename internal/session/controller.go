package session

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/apperrors"
	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/logger"
	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/protocol"
)

// Sender 控制器持有的传输出站面。*transport.Client 实现它。
type Sender interface {
	Send(msg *protocol.Message) error
	IsConnected() bool
	Close()
}

// Controller 会话控制器：独占一条连接和一份会话状态，把用户意图翻译成
// 出站消息，把入站消息规范化后喂给状态机。与 State 一样非并发安全，
// 入站消息和用户动作必须在同一个事件循环上处理。
type Controller struct {
	// RunID 标记这一次客户端运行，只用于日志
	RunID string

	sender Sender
	state  *State
}

// NewController 创建控制器
func NewController(sender Sender) *Controller {
	return &Controller{
		RunID:  uuid.NewString(),
		sender: sender,
		state:  NewState(),
	}
}

// State 当前会话状态
func (c *Controller) State() *State {
	return c.state
}

// Close 无条件释放连接，可重复调用
func (c *Controller) Close() {
	c.sender.Close()
}

// --- 用户意图 ---

// CreateRoom 创建房间，无前置条件
func (c *Controller) CreateRoom() error {
	return c.send(protocol.NewCreateRoom())
}

// JoinRoom 加入房间。房间号去掉首尾空白后不能为空。
func (c *Controller) JoinRoom(idInput string) error {
	roomID := strings.TrimSpace(idInput)
	if roomID == "" {
		return apperrors.ErrEmptyRoomID
	}
	return c.send(protocol.NewJoinRoom(roomID))
}

// SelectAvatar 选择头像。每次会话最多选一次，重复调用静默忽略。
// 本地状态在发送成功后立即更新，不等服务端确认。
func (c *Controller) SelectAvatar(avatar string) error {
	if c.state.SelfAvatar != "" {
		return nil
	}
	if !protocol.ValidAvatar(avatar) {
		return apperrors.ErrUnknownAvatar
	}
	if err := c.send(protocol.NewSubmitAvatar(c.state.RoomID, avatar)); err != nil {
		return err
	}
	c.state.SelfAvatar = avatar
	return nil
}

// AnswerQuestion 回答当前问题。只有游戏阶段且确有待回答问题时才允许。
func (c *Controller) AnswerQuestion(answer string) error {
	if answer != protocol.AnswerYes && answer != protocol.AnswerNo {
		return apperrors.ErrInvalidAnswer
	}
	if c.state.Phase != PhaseGame {
		return &apperrors.InvalidStateError{Action: "answer", Reason: "game has not started"}
	}
	if c.state.ActiveQuestion == nil {
		return &apperrors.InvalidStateError{Action: "answer", Reason: "no question awaiting an answer"}
	}
	return c.send(protocol.NewAnswer(answer))
}

// send 发送前检查连接就绪，未就绪的动作直接失败，不重试
func (c *Controller) send(msg *protocol.Message) error {
	if !c.sender.IsConnected() {
		return apperrors.ErrTransportNotReady
	}
	if err := c.sender.Send(msg); err != nil {
		logger.LogError("send %s: %v", msg.Type, err)
		return err
	}
	return nil
}

// --- 入站消息 ---

// HandleMessage 规范化并应用一帧入站消息，返回产生的事件供上层渲染使用。
// 协议错误只记日志丢弃该帧，会话不受影响；返回错误仅供调用方观测。
func (c *Controller) HandleMessage(msg *protocol.Message) (Event, error) {
	ev, err := Normalize(msg)
	if err != nil {
		logger.LogError("run=%s drop %s: %v", c.RunID, msg.Type, err)
		return nil, err
	}

	if noop, ok := ev.(NoOp); ok {
		logger.LogInfo("run=%s unknown message type %q ignored", c.RunID, noop.Type)
		return ev, nil
	}

	// 开局消息是头像的权威来源；与本地乐观选择不一致时以服务端为准
	if started, ok := ev.(GameStarted); ok {
		if c.state.SelfAvatar != "" && c.state.SelfAvatar != started.SelfAvatar {
			logger.LogError("run=%s avatar mismatch: local %s, server %s",
				c.RunID, c.state.SelfAvatar, started.SelfAvatar)
		}
	}

	if err := c.state.Apply(ev); err != nil {
		var protoErr *apperrors.ProtocolError
		if errors.As(err, &protoErr) {
			logger.LogError("run=%s reject %s in phase %s: %v", c.RunID, msg.Type, c.state.Phase, err)
		}
		return ev, err
	}
	return ev, nil
}
