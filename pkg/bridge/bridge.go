// Package bridge broadcasts dock state changes over a local websocket, so
// external tools (status bars, automation) can follow the workspace without
// polling. Subscribers connect to /events and receive one JSON document per
// change; /health answers liveness probes.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/workbench/dock"
	"github.com/grovetools/workbench/errors"
	"github.com/grovetools/workbench/logging"
)

// DefaultListen is the address the bridge binds when none is configured.
const DefaultListen = "127.0.0.1:7599"

// Event types published by the workspace.
const (
	EventDockOpened     = "dock.opened"
	EventDockClosed     = "dock.closed"
	EventPanelActivated = "panel.activated"
	EventPanelRelocated = "panel.relocated"
)

// Event is one dock state change, broadcast to every connected subscriber.
type Event struct {
	Type     string    `json:"type"`
	Position string    `json:"position,omitempty"`
	Panel    string    `json:"panel,omitempty"`
	From     string    `json:"from,omitempty"`
	Time     time.Time `json:"time"`
}

// DockOpened reports a dock opening.
func DockOpened(pos dock.Position) Event {
	return Event{Type: EventDockOpened, Position: pos.String(), Time: time.Now()}
}

// DockClosed reports a dock closing.
func DockClosed(pos dock.Position) Event {
	return Event{Type: EventDockClosed, Position: pos.String(), Time: time.Now()}
}

// PanelActivated reports a panel becoming the active one in its dock.
func PanelActivated(panel string, pos dock.Position) Event {
	return Event{Type: EventPanelActivated, Panel: panel, Position: pos.String(), Time: time.Now()}
}

// PanelRelocated reports a panel moving between docks.
func PanelRelocated(panel string, from, to dock.Position) Event {
	return Event{Type: EventPanelRelocated, Panel: panel, From: from.String(), Position: to.String(), Time: time.Now()}
}

// sendBuffer is the per-subscriber event queue length. Subscribers that fall
// further behind lose events rather than stalling the UI loop.
const sendBuffer = 16

// Bridge is the websocket broadcast server.
type Bridge struct {
	addr     string
	server   *http.Server
	listener net.Listener
	upgrader websocket.Upgrader

	mu     sync.Mutex
	conns  map[*websocket.Conn]chan Event
	closed bool

	logger *logrus.Entry
}

// New creates a bridge that will listen on addr. An empty addr uses
// DefaultListen.
func New(addr string) *Bridge {
	if addr == "" {
		addr = DefaultListen
	}
	return &Bridge{
		addr: addr,
		upgrader: websocket.Upgrader{
			// The bridge binds to loopback; browser origin checks do not
			// apply to local tooling.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns:  make(map[*websocket.Conn]chan Event),
		logger: logging.NewLogger("bridge"),
	}
}

// Start binds the listener and serves in the background. The returned error
// covers listen failures; serve errors are logged.
func (b *Bridge) Start() error {
	ln, err := net.Listen("tcp", b.addr)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeBridgeListen,
			fmt.Sprintf("failed to listen on %s", b.addr))
	}
	b.listener = ln

	mux := http.NewServeMux()
	mux.HandleFunc("/events", b.handleEvents)
	mux.HandleFunc("/health", b.handleHealth)
	b.server = &http.Server{Handler: mux}

	go func() {
		if err := b.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			b.logger.WithError(err).Error("Bridge server stopped")
		}
	}()

	b.logger.Infof("Event bridge listening on %s", b.Addr())
	return nil
}

// Addr returns the bound address. Useful when listening on port 0.
func (b *Bridge) Addr() string {
	if b.listener == nil {
		return b.addr
	}
	return b.listener.Addr().String()
}

// Publish queues ev for every connected subscriber. Publishing never blocks;
// subscribers with full queues skip the event.
func (b *Bridge) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for conn, send := range b.conns {
		select {
		case send <- ev:
		default:
			b.logger.Warnf("Dropping %s event for slow subscriber %s", ev.Type, conn.RemoteAddr())
		}
	}
}

// SubscriberCount returns the number of connected subscribers.
func (b *Bridge) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.conns)
}

// Close disconnects all subscribers and shuts the server down.
func (b *Bridge) Close() error {
	b.mu.Lock()
	b.closed = true
	conns := make([]*websocket.Conn, 0, len(b.conns))
	for conn := range b.conns {
		conns = append(conns, conn)
	}
	b.mu.Unlock()

	for _, conn := range conns {
		b.drop(conn)
	}

	if b.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return b.server.Shutdown(ctx)
}

func (b *Bridge) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}

	send := make(chan Event, sendBuffer)
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		conn.Close()
		return
	}
	b.conns[conn] = send
	active := len(b.conns)
	b.mu.Unlock()
	b.logger.Infof("Subscriber connected from %s (%d active)", conn.RemoteAddr(), active)

	go b.writeLoop(conn, send)
	b.readLoop(conn)
}

// readLoop discards inbound frames; its job is noticing the disconnect.
func (b *Bridge) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			b.drop(conn)
			return
		}
	}
}

func (b *Bridge) writeLoop(conn *websocket.Conn, send chan Event) {
	for ev := range send {
		if err := conn.WriteJSON(ev); err != nil {
			b.drop(conn)
			return
		}
	}
	// Queue closed by drop; nothing more to write.
}

// drop unregisters a subscriber and closes its connection. Safe to call more
// than once per connection.
func (b *Bridge) drop(conn *websocket.Conn) {
	b.mu.Lock()
	send, ok := b.conns[conn]
	if ok {
		delete(b.conns, conn)
	}
	active := len(b.conns)
	b.mu.Unlock()

	if ok {
		close(send)
		b.logger.Infof("Subscriber disconnected (%d active)", active)
	}
	conn.Close()
}

func (b *Bridge) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":      "ok",
		"subscribers": b.SubscriberCount(),
	})
}
