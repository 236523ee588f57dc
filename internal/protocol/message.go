package protocol

import (
	"encoding/json"
	"fmt"
)

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	MsgCreateRoom   MessageType = "CREATE_ROOM"   // 创建房间
	MsgJoinRoom     MessageType = "JOIN_ROOM"     // 加入房间
	MsgSubmitAvatar MessageType = "SUBMIT_AVATAR" // 提交头像
	MsgAnswer       MessageType = "ANSWER"        // 回答问题
)

// 服务端 → 客户端 消息类型
const (
	MsgRoomCreated           MessageType = "ROOM_CREATED"            // 房间创建成功
	MsgRoomJoined            MessageType = "ROOM_JOINED"             // 加入房间成功
	MsgPlayerJoined          MessageType = "PLAYER_JOINED"           // 对方玩家加入
	MsgWaitingForPlayer      MessageType = "WAITING_FOR_PLAYER"      // 等待对方玩家
	MsgPartnerAvatarSelected MessageType = "PARTNER_AVATAR_SELECTED" // 对方选好头像
	MsgGameStarted           MessageType = "GAME_STARTED"            // 游戏开始
	MsgQuestion              MessageType = "QUESTION"                // 新问题
	MsgUpdate                MessageType = "UPDATE"                  // 位置更新
)

// Message 基础消息结构。
// The server speaks flat JSON: one object per text frame, a mandatory "type"
// discriminator, every other field at the top level. Raw keeps the whole frame
// so type-specific fields can be decoded after dispatching on Type.
type Message struct {
	Type MessageType
	Raw  json.RawMessage
}

// envelope 只用于提取 type 字段
type envelope struct {
	Type MessageType `json:"type"`
}

// Decode 解析一帧消息，只校验 type 字段
func Decode(data []byte) (*Message, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("malformed frame: %w", err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("frame missing type discriminator")
	}
	return &Message{Type: env.Type, Raw: append(json.RawMessage(nil), data...)}, nil
}

// DecodeInto 将整帧解析到指定的 payload 结构
func (m *Message) DecodeInto(v any) error {
	if err := json.Unmarshal(m.Raw, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", m.Type, err)
	}
	return nil
}

// Encode 返回要发送的帧字节
func (m *Message) Encode() ([]byte, error) {
	if len(m.Raw) == 0 {
		return nil, fmt.Errorf("message %s has no frame", m.Type)
	}
	return m.Raw, nil
}

// newMessage 构造一帧出站消息。出站结构都是本包定义的纯数据，Marshal 失败即 bug。
func newMessage(msgType MessageType, v any) *Message {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return &Message{Type: msgType, Raw: raw}
}
