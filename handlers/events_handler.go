package handlers

import (
	"log/slog"
	"net/http"

	"github.com/darshan1301/psfa-landing-page-sub001/realtime"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Панель и API живут на одном origin; cookie-гейт уже отработал.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// EventsHandler подключает сессию панели к ленте событий. Маршрут находится
// под защищённым префиксом, так что сюда попадают только аутентифицированные
// админы.
type EventsHandler struct {
	hub    *realtime.Hub
	logger *slog.Logger
}

func NewEventsHandler(hub *realtime.Hub, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{hub: hub, logger: logger}
}

func (h *EventsHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("failed to upgrade events connection", slog.Any("error", err))
		return
	}

	h.hub.NewClient(conn)
}
