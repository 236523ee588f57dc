package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/apperrors"
	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/protocol"
)

var upgrader = websocket.Upgrader{}

func echoHandler(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer c.Close()
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		// simple echo
		_ = c.WriteMessage(mt, message)
	}
}

func newEchoClient(t *testing.T) *Client {
	t.Helper()
	s := httptest.NewServer(http.HandlerFunc(echoHandler))
	t.Cleanup(s.Close)

	wsURL := "ws" + strings.TrimPrefix(s.URL, "http")
	client := NewClient(wsURL)
	require.NoError(t, client.Connect())
	t.Cleanup(client.Close)
	return client
}

func TestClient_ConnectAndSend(t *testing.T) {
	client := newEchoClient(t)

	time.Sleep(100 * time.Millisecond)
	assert.True(t, client.IsConnected())

	// The echo server bounces our frame back, so the read pump must decode it
	err := client.Send(protocol.NewJoinRoom("R1"))
	require.NoError(t, err)

	receivedMsg, err := client.ReceiveWithTimeout(1 * time.Second)
	require.NoError(t, err)
	require.NotNil(t, receivedMsg)
	assert.Equal(t, protocol.MsgJoinRoom, receivedMsg.Type)

	var payload protocol.JoinRoomRequest
	require.NoError(t, receivedMsg.DecodeInto(&payload))
	assert.Equal(t, "R1", payload.RoomID)
}

func TestClient_OnMessageCallback(t *testing.T) {
	client := newEchoClient(t)

	got := make(chan *protocol.Message, 1)
	client.OnMessage = func(msg *protocol.Message) {
		select {
		case got <- msg:
		default:
		}
	}

	require.NoError(t, client.Send(protocol.NewCreateRoom()))

	select {
	case msg := <-got:
		assert.Equal(t, protocol.MsgCreateRoom, msg.Type)
	case <-time.After(time.Second):
		t.Fatal("OnMessage was not invoked")
	}
}

func TestClient_SendBeforeConnect(t *testing.T) {
	client := NewClient("ws://localhost:0")

	err := client.Send(protocol.NewCreateRoom())
	var notReady *apperrors.TransportNotReadyError
	assert.ErrorAs(t, err, &notReady)
}

func TestClient_Close(t *testing.T) {
	client := newEchoClient(t)

	client.Close()
	assert.False(t, client.IsConnected())

	// Close is idempotent
	assert.NotPanics(t, client.Close)

	err := client.Send(protocol.NewCreateRoom())
	var notReady *apperrors.TransportNotReadyError
	assert.ErrorAs(t, err, &notReady)

	_, err = client.Receive()
	assert.Error(t, err)
}
