package gui

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/yanun0323/logs"

	"main/internal/model"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type pricePayload struct {
	ProductID string  `json:"productId"`
	Mid       string  `json:"mid"`
	MidValue  float64 `json:"midValue"`
	Spread    string  `json:"spread"`
}

// Hub broadcasts throttled price updates to connected websocket clients.
// It is the only concurrent component of the pipeline; payloads arrive
// over a buffered channel and the hub never calls back into a service.
type Hub struct {
	mu        sync.Mutex
	clients   map[*websocket.Conn]struct{}
	broadcast chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]struct{}),
		broadcast: make(chan []byte, 256),
	}
}

// Publish renders the update and hands it to the broadcast loop. A full
// buffer drops the update; the hub inherits the display's lossy contract.
func (h *Hub) Publish(p model.PriceUpdate) {
	payload, err := json.Marshal(pricePayload{
		ProductID: p.Product.ID(),
		Mid:       p.Mid.Fraction(),
		MidValue:  p.Mid.Float64(),
		Spread:    p.Spread.Fraction(),
	})
	if err != nil {
		logs.Errorf("marshal price payload, err: %+v", err)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
	}
}

// Run drains the broadcast channel until the context is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					_ = conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ServeHTTP upgrades the request and registers the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logs.Errorf("websocket upgrade, err: %+v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()
	logs.Infof("gui client connected, total: %d", total)
}
