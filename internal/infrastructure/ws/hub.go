// Package ws pushes announcements to connected websocket clients.
package ws

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/skillsaathi/skill-swap/internal/api/metrics"
	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
)

var _ ports.AnnouncementPublisher = (*Hub)(nil)

// ErrHubStopped is returned by Serve after Stop.
var ErrHubStopped = errors.New("announcement hub stopped")

// Hub owns the set of live clients. All membership changes go through Run.
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	log        zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run processes registrations and broadcasts until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			metrics.LiveSubscribers.Set(0)
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			total := len(h.clients)
			h.mu.Unlock()
			metrics.LiveSubscribers.Set(float64(total))
			h.log.Debug().Int("clients", total).Msg("announcement subscriber connected")

		case c := <-h.unregister:
			h.drop(c)

		case msg := <-h.broadcast:
			h.mu.RLock()
			snapshot := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				snapshot = append(snapshot, c)
			}
			h.mu.RUnlock()

			for _, c := range snapshot {
				select {
				case c.send <- msg:
				default:
					// slow consumer
					h.drop(c)
				}
			}
			h.log.Debug().Int("clients", len(snapshot)).Msg("announcement broadcast")
		}
	}
}

// Stop ends Run and closes every client's send queue.
func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) drop(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	total := len(h.clients)
	h.mu.Unlock()
	metrics.LiveSubscribers.Set(float64(total))
}

// Register queues c for Run. It returns false once the hub has stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish encodes a and queues it for every client. It never blocks; when the
// broadcast buffer is full the announcement is dropped from the live feed
// (it is still listed by the announcements endpoint).
func (h *Hub) Publish(a domain.Announcement) {
	b, err := json.Marshal(message{Type: "announcement", Announcement: a})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to encode announcement")
		return
	}
	select {
	case h.broadcast <- b:
	default:
		h.log.Warn().Str("announcement_id", a.ID).Msg("announcement broadcast dropped, buffer full")
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

type message struct {
	Type         string              `json:"type"`
	Announcement domain.Announcement `json:"announcement"`
}
