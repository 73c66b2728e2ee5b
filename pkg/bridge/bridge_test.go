package bridge

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/grovetools/workbench/dock"
)

func startBridge(t *testing.T) *Bridge {
	t.Helper()
	b := New("127.0.0.1:0")
	if err := b.Start(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func dialEvents(t *testing.T, b *Bridge) *websocket.Conn {
	t.Helper()
	url := fmt.Sprintf("ws://%s/events", b.Addr())
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for b.SubscriberCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscriber never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func TestPublishReachesSubscriber(t *testing.T) {
	b := startBridge(t)
	conn := dialEvents(t, b)

	b.Publish(PanelRelocated("terminal", dock.PositionBottom, dock.PositionRight))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatal(err)
	}
	if ev.Type != EventPanelRelocated || ev.Panel != "terminal" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.From != "bottom" || ev.Position != "right" {
		t.Errorf("relocation endpoints wrong: from %q to %q", ev.From, ev.Position)
	}
}

func TestHealthEndpoint(t *testing.T) {
	b := startBridge(t)

	resp, err := http.Get(fmt.Sprintf("http://%s/health", b.Addr()))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health returned %d", resp.StatusCode)
	}

	var body struct {
		Status      string `json:"status"`
		Subscribers int    `json:"subscribers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" {
		t.Errorf("status = %q, want ok", body.Status)
	}
}

func TestCloseDisconnectsSubscribers(t *testing.T) {
	b := startBridge(t)
	conn := dialEvents(t, b)

	if err := b.Close(); err != nil {
		t.Fatal(err)
	}

	if b.SubscriberCount() != 0 {
		t.Errorf("%d subscribers remain after close", b.SubscriberCount())
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("read after close should fail")
	}

	// Publishing into a closed bridge is a no-op.
	b.Publish(DockOpened(dock.PositionLeft))
}
