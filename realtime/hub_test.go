package realtime

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func registerTestClient(t *testing.T, hub *Hub, sendBuffer int) *Client {
	t.Helper()
	client := &Client{hub: hub, send: make(chan []byte, sendBuffer)}
	hub.register <- client

	deadline := time.After(time.Second)
	for hub.ClientCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("client was not registered in time")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	return client
}

func TestHubBroadcastsEventToClients(t *testing.T) {
	hub := newTestHub()
	go hub.Run()

	client := registerTestClient(t, hub, 16)

	published := Event{
		Type:      EventCreated,
		Entity:    "enquiry",
		ID:        12,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	hub.Publish(published)

	select {
	case message := <-client.send:
		var got Event
		if err := json.Unmarshal(message, &got); err != nil {
			t.Fatalf("failed to decode broadcast message: %v", err)
		}
		if got.Type != published.Type || got.Entity != published.Entity || got.ID != published.ID {
			t.Errorf("got event %+v, want %+v", got, published)
		}
	case <-time.After(time.Second):
		t.Fatal("broadcast message was not delivered")
	}
}

// Клиент с переполненным каналом отключается, остальные продолжают
// получать события.
func TestHubDropsSlowClient(t *testing.T) {
	hub := newTestHub()
	go hub.Run()

	slow := registerTestClient(t, hub, 0)
	_ = slow

	hub.Publish(Event{Type: EventCreated, Entity: "subscriber", ID: 1})

	deadline := time.After(time.Second)
	for hub.ClientCount() != 0 {
		select {
		case <-deadline:
			t.Fatal("slow client was not dropped")
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	hub := newTestHub()
	// Run не запущен: очередь заполняется, лишние события отбрасываются.

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			hub.Publish(Event{Type: EventCreated, Entity: "enquiry", ID: i})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked with a full broadcast queue")
	}
}
