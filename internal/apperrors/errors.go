package apperrors

import "fmt"

// ValidationError 用户输入非法（如空房间号）。本地恢复，不发消息，状态不变。
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// TransportNotReadyError 连接尚未就绪或已断开时尝试发送。动作直接丢弃，由用户重试。
type TransportNotReadyError struct{}

func (e *TransportNotReadyError) Error() string {
	return "connection not ready"
}

// ProtocolError 服务端消息不合法：未知类型、载荷损坏、或与当前阶段冲突。
// 记录日志后丢弃该消息，会话继续。
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return e.Reason
}

// InvalidStateError 当前阶段不允许的用户动作（如没有问题时回答）。
// 必须上浮给用户，不能静默吞掉。
type InvalidStateError struct {
	Action string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Action, e.Reason)
}

// 预定义错误
var (
	ErrEmptyRoomID       = &ValidationError{Reason: "room ID must not be empty"}
	ErrUnknownAvatar     = &ValidationError{Reason: "unknown avatar"}
	ErrInvalidAnswer     = &ValidationError{Reason: "answer must be yes or no"}
	ErrTransportNotReady = &TransportNotReadyError{}
)
