package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxInboundSize = 512
	sendBuffer     = 16
)

// ClientGauge is told the connected client count whenever it changes.
type ClientGauge interface {
	SetFeedClients(n int)
}

// Message is the frame pushed to every feed client.
type Message struct {
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload"`
}

type client struct {
	conn   *websocket.Conn
	userID uuid.UUID
	send   chan []byte
}

// Hub fans events out to websocket clients. Run owns the client set; each
// client has its own writer goroutine and is dropped when its buffer fills.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	clients    map[*client]struct{}
	gauge      ClientGauge
	done       chan struct{}
}

func NewHub(gauge ClientGauge) *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, sendBuffer),
		clients:    make(map[*client]struct{}),
		gauge:      gauge,
		done:       make(chan struct{}),
	}
}

// Run must be called exactly once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.gauge.SetFeedClients(len(h.clients))
			slog.Info("Order feed client connected", "user_id", c.userID.String(), "clients", len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					slog.Warn("Dropping slow order feed client", "user_id", c.userID.String())
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
	h.gauge.SetFeedClients(len(h.clients))
}

func (h *Hub) Name() string { return "websocket" }

func (h *Hub) Publish(ctx context.Context, topic string, payload []byte) error {
	frame, err := json.Marshal(Message{Topic: topic, Payload: payload})
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- frame:
		return nil
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Serve registers conn and blocks until the client goes away or the hub stops.
func (h *Hub) Serve(conn *websocket.Conn, userID uuid.UUID) {
	c := &client{conn: conn, userID: userID, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go h.writePump(c)
	h.readPump(c)
}

// readPump only services control frames; the feed is server-to-client.
func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxInboundSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("Order feed client read failed", "user_id", c.userID.String(), "error", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
