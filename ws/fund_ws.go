package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/HandyAndyTobes/lunch-club-orders-app/repository"
	"github.com/HandyAndyTobes/lunch-club-orders-app/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// FundHub pushes a fresh pay-it-forward balance to every connected
// client whenever a donation or usage lands, replacing polling on the
// balance display.
type FundHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan *repository.FundBalance
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
	service    *services.FundService
}

func NewFundHub(service *services.FundService) *FundHub {
	return &FundHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan *repository.FundBalance),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		service:    service,
	}
}

func (h *FundHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case balance := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(balance); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyChanged refetches the balance and fans it out. Called by the
// controllers after any ledger write.
func (h *FundHub) NotifyChanged() {
	balance, err := h.service.GetBalance()
	if err != nil {
		log.Printf("ws balance fetch error: %v", err)
		return
	}
	h.broadcast <- balance
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/pay-it-forward
func (h *FundHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	// the initial snapshot must go out before the hub knows the conn:
	// once registered, the hub is the connection's only writer
	if balance, err := h.service.GetBalance(); err == nil {
		if err := conn.WriteJSON(balance); err != nil {
			conn.Close()
			return
		}
	}

	h.register <- conn

	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
