package session

import (
	"fmt"

	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/apperrors"
	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/protocol"
)

// Normalize 把一帧入站消息映射为一个规范化事件。
// 不认识的消息类型得到 NoOp；载荷损坏或字段越界返回 ProtocolError，事件为 nil。
func Normalize(msg *protocol.Message) (Event, error) {
	switch msg.Type {
	case protocol.MsgRoomCreated:
		var payload protocol.RoomCreatedPayload
		if err := msg.DecodeInto(&payload); err != nil {
			return nil, &apperrors.ProtocolError{Reason: err.Error()}
		}
		if payload.RoomID == "" {
			return nil, &apperrors.ProtocolError{Reason: "ROOM_CREATED without roomId"}
		}
		return RoomEntered{RoomID: payload.RoomID, Slot: SlotFirst, Created: true}, nil

	case protocol.MsgRoomJoined:
		var payload protocol.RoomJoinedPayload
		if err := msg.DecodeInto(&payload); err != nil {
			return nil, &apperrors.ProtocolError{Reason: err.Error()}
		}
		if payload.RoomID == "" {
			return nil, &apperrors.ProtocolError{Reason: "ROOM_JOINED without roomId"}
		}
		return RoomEntered{RoomID: payload.RoomID, Slot: SlotSecond}, nil

	case protocol.MsgPlayerJoined:
		return PartnerPresent{}, nil

	case protocol.MsgWaitingForPlayer:
		return AwaitingPartner{}, nil

	case protocol.MsgPartnerAvatarSelected:
		var payload protocol.PartnerAvatarSelectedPayload
		if err := msg.DecodeInto(&payload); err != nil {
			return nil, &apperrors.ProtocolError{Reason: err.Error()}
		}
		if payload.Avatar == "" {
			return nil, &apperrors.ProtocolError{Reason: "PARTNER_AVATAR_SELECTED without avatar"}
		}
		return PartnerAvatarChosen{Avatar: payload.Avatar}, nil

	case protocol.MsgGameStarted:
		var payload protocol.GameStartedPayload
		if err := msg.DecodeInto(&payload); err != nil {
			return nil, &apperrors.ProtocolError{Reason: err.Error()}
		}
		return normalizeGameStarted(&payload)

	case protocol.MsgQuestion:
		var payload protocol.QuestionPayload
		if err := msg.DecodeInto(&payload); err != nil {
			return nil, &apperrors.ProtocolError{Reason: err.Error()}
		}
		if payload.Text == "" {
			return nil, &apperrors.ProtocolError{Reason: "QUESTION without text"}
		}
		return QuestionPosed{ID: string(payload.ID), Text: payload.Text}, nil

	case protocol.MsgUpdate:
		var payload protocol.UpdatePayload
		if err := msg.DecodeInto(&payload); err != nil {
			return nil, &apperrors.ProtocolError{Reason: err.Error()}
		}
		if !ValidChair(payload.YourPosition) || !ValidChair(payload.OpponentPosition) {
			return nil, &apperrors.ProtocolError{
				Reason: fmt.Sprintf("UPDATE positions out of range: %d/%d", payload.YourPosition, payload.OpponentPosition),
			}
		}
		if payload.Distance < 0 {
			return nil, &apperrors.ProtocolError{Reason: fmt.Sprintf("UPDATE with negative distance %d", payload.Distance)}
		}
		return PositionsUpdated{
			SelfPosition:    payload.YourPosition,
			PartnerPosition: payload.OpponentPosition,
			Distance:        payload.Distance,
		}, nil

	default:
		return NoOp{Type: msg.Type}, nil
	}
}

// normalizeGameStarted 消解 GAME_STARTED 的两种线上形态。
// 完整形态直接携带双方头像和可选位置；精简形态只有 player1Avatar/player2Avatar，
// 需要按 yourPlayerNumber 解析出自己和对方，位置缺省为 40/41。
func normalizeGameStarted(p *protocol.GameStartedPayload) (Event, error) {
	slot, err := slotFromNumber(p.YourPlayerNumber)
	if err != nil {
		return nil, err
	}

	ev := GameStarted{
		Slot:            slot,
		SelfPosition:    DefaultSelfPosition,
		PartnerPosition: DefaultPartnerPosition,
	}

	if p.IsFullShape() {
		ev.SelfAvatar = p.YourAvatar
		ev.PartnerAvatar = p.OpponentAvatar
		if p.YourPosition != nil {
			ev.SelfPosition = *p.YourPosition
		}
		if p.OpponentPosition != nil {
			ev.PartnerPosition = *p.OpponentPosition
		}
	} else {
		if p.Player1Avatar == "" || p.Player2Avatar == "" {
			return nil, &apperrors.ProtocolError{Reason: "GAME_STARTED short shape missing player avatars"}
		}
		if slot == SlotFirst {
			ev.SelfAvatar = p.Player1Avatar
			ev.PartnerAvatar = p.Player2Avatar
		} else {
			ev.SelfAvatar = p.Player2Avatar
			ev.PartnerAvatar = p.Player1Avatar
		}
	}

	if ev.PartnerAvatar == "" {
		return nil, &apperrors.ProtocolError{Reason: "GAME_STARTED without opponent avatar"}
	}
	if !ValidChair(ev.SelfPosition) || !ValidChair(ev.PartnerPosition) {
		return nil, &apperrors.ProtocolError{
			Reason: fmt.Sprintf("GAME_STARTED positions out of range: %d/%d", ev.SelfPosition, ev.PartnerPosition),
		}
	}
	return ev, nil
}

func slotFromNumber(n int) (Slot, error) {
	switch n {
	case 1:
		return SlotFirst, nil
	case 2:
		return SlotSecond, nil
	default:
		return SlotUnknown, &apperrors.ProtocolError{Reason: fmt.Sprintf("invalid yourPlayerNumber %d", n)}
	}
}
