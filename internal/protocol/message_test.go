package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"ROOM_CREATED","roomId":"R1"}`))
	require.NoError(t, err)
	assert.Equal(t, MsgRoomCreated, msg.Type)

	var payload RoomCreatedPayload
	require.NoError(t, msg.DecodeInto(&payload))
	assert.Equal(t, "R1", payload.RoomID)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		frame string
	}{
		{name: "not json", frame: `hello`},
		{name: "missing type", frame: `{"roomId":"R1"}`},
		{name: "empty type", frame: `{"type":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.frame))
			assert.Error(t, err)
		})
	}
}

func TestOutboundFrames(t *testing.T) {
	tests := []struct {
		name string
		msg  *Message
		want map[string]any
	}{
		{
			name: "create room",
			msg:  NewCreateRoom(),
			want: map[string]any{"type": "CREATE_ROOM"},
		},
		{
			name: "join room",
			msg:  NewJoinRoom("R1"),
			want: map[string]any{"type": "JOIN_ROOM", "roomId": "R1"},
		},
		{
			name: "submit avatar",
			msg:  NewSubmitAvatar("R1", "🐱"),
			want: map[string]any{"type": "SUBMIT_AVATAR", "roomId": "R1", "avatar": "🐱"},
		},
		{
			name: "answer",
			msg:  NewAnswer(AnswerYes),
			want: map[string]any{"type": "ANSWER", "answer": "yes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.msg.Encode()
			require.NoError(t, err)

			var frame map[string]any
			require.NoError(t, json.Unmarshal(data, &frame))
			assert.Equal(t, tt.want, frame)
		})
	}
}

func TestGameStartedPayload_Shapes(t *testing.T) {
	t.Run("full shape detected by yourAvatar", func(t *testing.T) {
		msg, err := Decode([]byte(`{"type":"GAME_STARTED","yourPlayerNumber":1,"yourAvatar":"🐱","opponentAvatar":"🐶","yourPosition":0}`))
		require.NoError(t, err)

		var payload GameStartedPayload
		require.NoError(t, msg.DecodeInto(&payload))
		assert.True(t, payload.IsFullShape())
		require.NotNil(t, payload.YourPosition)
		assert.Equal(t, 0, *payload.YourPosition, "chair zero is not the same as absent")
		assert.Nil(t, payload.OpponentPosition)
	})

	t.Run("short shape", func(t *testing.T) {
		msg, err := Decode([]byte(`{"type":"GAME_STARTED","yourPlayerNumber":2,"player1Avatar":"🐶","player2Avatar":"🐱"}`))
		require.NoError(t, err)

		var payload GameStartedPayload
		require.NoError(t, msg.DecodeInto(&payload))
		assert.False(t, payload.IsFullShape())
		assert.Equal(t, 2, payload.YourPlayerNumber)
	})
}

func TestQuestionID_FlexibleDecode(t *testing.T) {
	var p QuestionPayload
	require.NoError(t, json.Unmarshal([]byte(`{"id":12,"text":"t"}`), &p))
	assert.Equal(t, QuestionID("12"), p.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"q-12","text":"t"}`), &p))
	assert.Equal(t, QuestionID("q-12"), p.ID)

	assert.Error(t, json.Unmarshal([]byte(`{"id":{},"text":"t"}`), &p))
}

func TestValidAvatar(t *testing.T) {
	for _, a := range Avatars {
		assert.True(t, ValidAvatar(a), a)
	}
	assert.False(t, ValidAvatar("🦖"))
	assert.False(t, ValidAvatar(""))
}
