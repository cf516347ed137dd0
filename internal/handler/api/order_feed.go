package api

import (
	"log/slog"
	"net/http"
	"slices"

	"furnicraft/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// OrderFeed streams order events to one websocket client until it disconnects.
type OrderFeed interface {
	Serve(conn *websocket.Conn, userID uuid.UUID)
}

type OrderFeedHandler struct {
	feed     OrderFeed
	upgrader websocket.Upgrader
}

func NewOrderFeedHandler(feed OrderFeed, cors config.CORSConfig) *OrderFeedHandler {
	return &OrderFeedHandler{
		feed: feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				// Non-browser clients send no Origin.
				return origin == "" || slices.Contains(cors.AllowOrigins, origin)
			},
		},
	}
}

// @Summary Live order feed
// @Description Websocket stream of order.status_changed events
// @Tags orders
// @Security BearerAuth
// @Success 101 "Switching Protocols"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /ws/orders [get]
func (h *OrderFeedHandler) Subscribe(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		slog.Warn("Order feed upgrade failed", "user_id", userID.String(), "error", err.Error())
		return
	}
	h.feed.Serve(conn, userID)
}
