package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var progressUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS layer; the socket itself accepts all.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ImportProgress is a broadcast message sent after every persisted chunk.
type ImportProgress struct {
	UserID string `json:"user_id"`
	Sent   int    `json:"sent"`
	Total  int    `json:"total"`
	Done   bool   `json:"done"`
}

type progressHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// Progress fans import progress out to every connected client. Imports run
// fine with zero listeners; broadcasting is best effort.
var Progress = &progressHub{conns: make(map[*websocket.Conn]bool)}

func (h *progressHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()
}

func (h *progressHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}

// Broadcast sends a progress update to all clients, dropping any whose
// write fails.
func (h *progressHub) Broadcast(msg ImportProgress) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(msg); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

// ImportProgressWS upgrades the connection and holds it open until the
// client disconnects. The server never expects client messages; the read
// loop only detects the close.
func ImportProgressWS(c *gin.Context) {
	conn, err := progressUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	Progress.add(conn)

	go func() {
		defer Progress.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
