package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgSessionCompleted MessageType = "session_completed"
	MsgLeadSubmitted    MessageType = "lead_submitted"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans quiz events out to connected staff dashboards
type Hub struct {
	conns map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message
}

// Connection represents one staff WebSocket connection
type Connection struct {
	StaffID string
	Send    chan []byte
	Hub     *Hub
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *Message, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn] = true
			h.mu.Unlock()
			log.Printf("Staff %s connected to admin feed", conn.StaffID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.conns[conn] {
				delete(h.conns, conn)
				close(conn.Send)
				log.Printf("Staff %s disconnected from admin feed", conn.StaffID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, _ := json.Marshal(msg)
			h.mu.RLock()
			for conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastSessionCompleted implements service.Broadcaster
func (h *Hub) BroadcastSessionCompleted(session *model.QuizSession) {
	h.send(MsgSessionCompleted, session)
}

// BroadcastLeadSubmitted implements service.Broadcaster
func (h *Hub) BroadcastLeadSubmitted(lead *model.Lead) {
	h.send(MsgLeadSubmitted, lead)
}

func (h *Hub) send(msgType MessageType, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ws: marshaling %s payload: %v", msgType, err)
		return
	}
	h.broadcast <- &Message{Type: msgType, Payload: data}
}
