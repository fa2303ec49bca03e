package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Hub fans dashboard events out to connected recruiters. Every client is
// bound to one recruiter at upgrade time; Send only reaches that
// recruiter's connections.
type Hub struct {
	clients    map[*Client]bool
	send       chan targetedMessage
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

type targetedMessage struct {
	recruiterID uuid.UUID
	payload     []byte
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		send:       make(chan targetedMessage, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("[WS] connected | recruiter=%s total_clients=%d", client.recruiterID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("[WS] disconnected | recruiter=%s total_clients=%d", client.recruiterID, total)
			}

		case msg := <-h.send:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				if c.recruiterID == msg.recruiterID {
					targets = append(targets, c)
				}
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					h.unregister <- client
				}
			}

			if h.logger != nil && len(targets) > 0 {
				h.logger.Printf("[WS] event delivered | recruiter=%s clients=%d", msg.recruiterID, len(targets))
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Send queues payload for every connection owned by recruiterID. Drops the
// event when the queue is full rather than blocking the caller.
func (h *Hub) Send(recruiterID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.send <- targetedMessage{recruiterID: recruiterID, payload: payload}:
	default:
		if h.logger != nil {
			h.logger.Printf("[WS] event dropped | reason=buffer_full recruiter=%s", recruiterID)
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
