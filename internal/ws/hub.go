// Package ws pushes refreshed consensus output to connected clients. The hub
// owns the client set; broadcasts are drop-on-slow-client so one stalled
// connection never blocks a pipeline run.
package ws

import (
	"context"
	"fmt"
	"sync"

	"github.com/pickline/consensus/pkg/models"
)

// Hub maintains the set of active clients and broadcasts consensus updates
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	broadcast  chan models.FormattedOutput
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan models.FormattedOutput, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.shutdown()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case output := <-h.broadcast:
			h.broadcastOutput(output)
		}
	}
}

// Done is closed when the hub stops. Client pumps use it as their lifetime
// signal; the upgrade request's own context ends as soon as the handler
// returns and must not bound the subscription.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

// Unregister removes a client from the hub. Safe after shutdown: once Run has
// returned there is no receiver, so the send is abandoned instead of blocking
// the caller forever.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientCount reports the number of connected subscribers
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// Broadcast queues a consensus update for all clients
func (h *Hub) Broadcast(output models.FormattedOutput) {
	select {
	case h.broadcast <- output:
	default:
		fmt.Println("broadcast buffer full, dropping consensus update")
	}
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	h.clients[c] = true
	fmt.Printf("client %s connected (total: %d)\n", c.ID, len(h.clients))
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
		fmt.Printf("client %s disconnected (total: %d)\n", c.ID, len(h.clients))
	}
}

func (h *Hub) broadcastOutput(output models.FormattedOutput) {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()

	for c := range h.clients {
		select {
		case c.Send <- output:
		default:
			// Slow client; skip this update rather than block the hub
		}
	}
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	for c := range h.clients {
		close(c.Send)
		delete(h.clients, c)
	}
}
