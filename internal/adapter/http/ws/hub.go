package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"patoz_consumer/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The consumer app connects from a file:// webview; origin checks
		// happen at the gateway.
		return true
	},
}

// Message is the envelope pushed to connected clients.
type Message struct {
	Type      string      `json:"type"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// Hub fans repair lifecycle events out to connected websocket clients.
// It satisfies the use cases' publisher port, so lifecycle changes reach
// the app without polling.

type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mutex      sync.RWMutex
}

var _ interfaces.IRepairEventPublisher = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run owns the client set. Must run in its own goroutine before the first
// Publish or HandleConnection call.
func (h *Hub) Run() {
	log.Printf("[ws][hub] started")

	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			log.Printf("[ws][hub] client connected total=%d", total)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			total := len(h.clients)
			h.mutex.Unlock()
			log.Printf("[ws][hub] client disconnected total=%d", total)

		case message := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
					log.Printf("[ws][hub] write failed, dropping client err=%v", err)
					client.Close()
					delete(h.clients, client)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Publish broadcasts a repair lifecycle event to every connected client.
// Fire-and-forget: a marshal failure is logged and dropped.
func (h *Hub) Publish(event interfaces.RepairEvent) {
	msg := Message{
		Type:      event.Type,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      event,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[ws][hub] marshal failed type=%s err=%v", event.Type, err)
		return
	}
	h.broadcast <- data
}

// HandleConnection upgrades the request and keeps the connection registered
// until the peer goes away.
func (h *Hub) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[ws][hub] upgrade failed err=%v", err)
		return
	}

	h.register <- conn

	go func() {
		defer func() {
			h.unregister <- conn
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("[ws][hub] read failed err=%v", err)
				}
				return
			}
		}
	}()
}
