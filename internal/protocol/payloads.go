package protocol

import "encoding/json"

// --- 客户端请求 ---

// CreateRoomRequest 创建房间请求
type CreateRoomRequest struct {
	Type MessageType `json:"type"`
}

// JoinRoomRequest 加入房间请求
type JoinRoomRequest struct {
	Type   MessageType `json:"type"`
	RoomID string      `json:"roomId"`
}

// SubmitAvatarRequest 提交头像请求
type SubmitAvatarRequest struct {
	Type   MessageType `json:"type"`
	RoomID string      `json:"roomId"`
	Avatar string      `json:"avatar"`
}

// AnswerRequest 回答问题请求
type AnswerRequest struct {
	Type   MessageType `json:"type"`
	Answer string      `json:"answer"` // "yes" | "no"
}

// 合法的回答值
const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)

// NewCreateRoom 构造创建房间消息
func NewCreateRoom() *Message {
	return newMessage(MsgCreateRoom, CreateRoomRequest{Type: MsgCreateRoom})
}

// NewJoinRoom 构造加入房间消息
func NewJoinRoom(roomID string) *Message {
	return newMessage(MsgJoinRoom, JoinRoomRequest{Type: MsgJoinRoom, RoomID: roomID})
}

// NewSubmitAvatar 构造提交头像消息
func NewSubmitAvatar(roomID, avatar string) *Message {
	return newMessage(MsgSubmitAvatar, SubmitAvatarRequest{Type: MsgSubmitAvatar, RoomID: roomID, Avatar: avatar})
}

// NewAnswer 构造回答消息
func NewAnswer(answer string) *Message {
	return newMessage(MsgAnswer, AnswerRequest{Type: MsgAnswer, Answer: answer})
}

// --- 服务端响应 Payloads ---

// RoomCreatedPayload 房间创建成功响应
type RoomCreatedPayload struct {
	RoomID string `json:"roomId"`
}

// RoomJoinedPayload 加入房间成功响应
type RoomJoinedPayload struct {
	RoomID string `json:"roomId"`
}

// PartnerAvatarSelectedPayload 对方选好头像通知
type PartnerAvatarSelectedPayload struct {
	Avatar string `json:"avatar"`
}

// GameStartedPayload 游戏开始通知。
// The server emits two incompatible shapes for this message: a full shape with
// yourAvatar/opponentAvatar and optional positions, and a short shape carrying
// only player1Avatar/player2Avatar keyed by yourPlayerNumber. Pointer position
// fields distinguish "absent" from chair 0.
type GameStartedPayload struct {
	YourPlayerNumber int    `json:"yourPlayerNumber"`
	YourAvatar       string `json:"yourAvatar,omitempty"`
	OpponentAvatar   string `json:"opponentAvatar,omitempty"`
	YourPosition     *int   `json:"yourPosition,omitempty"`
	OpponentPosition *int   `json:"opponentPosition,omitempty"`
	Player1Avatar    string `json:"player1Avatar,omitempty"`
	Player2Avatar    string `json:"player2Avatar,omitempty"`
}

// IsFullShape 是否为完整形态（携带 yourAvatar）
func (p *GameStartedPayload) IsFullShape() bool {
	return p.YourAvatar != ""
}

// QuestionID 问题编号。id 在线上可能是数字也可能是字符串，统一按字符串保存。
type QuestionID string

func (id *QuestionID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = QuestionID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*id = QuestionID(s)
	return nil
}

// QuestionPayload 新问题通知
type QuestionPayload struct {
	ID   QuestionID `json:"id"`
	Text string     `json:"text"`
}

// UpdatePayload 位置更新通知
type UpdatePayload struct {
	YourPosition     int `json:"yourPosition"`
	OpponentPosition int `json:"opponentPosition"`
	Distance         int `json:"distance"`
}
