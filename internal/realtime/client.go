package realtime

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Client is one live websocket connection. Its identity (if any) lives
// in the registry; the client itself only carries the transport.
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, 16),
	}
}

// HandleWS upgrades the request and runs the connection's read and
// write loops. All state changes go through the hub's event channel.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := newClient(conn)
	log.Debug().Str("conn_id", client.id).Msg("connection opened")

	go client.writeLoop()
	h.readLoop(client)
}

func (h *Hub) readLoop(c *Client) {
	defer func() {
		h.events <- event{kind: evDisconnect, client: c}
		_ = c.conn.Close()
	}()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			log.Debug().Str("conn_id", c.id).Err(err).Msg("connection closed")
			return
		}
		h.events <- event{kind: evFrame, client: c, data: msg}
	}
}

func (c *Client) writeLoop() {
	for msg := range c.send {
		_ = c.conn.WriteMessage(websocket.TextMessage, msg)
	}
}

func safeSend(ch chan []byte, msg []byte) {
	defer func() {
		_ = recover()
	}()
	select {
	case ch <- msg:
	default:
	}
}

func safeClose(ch chan []byte) {
	defer func() {
		_ = recover()
	}()
	close(ch)
}
