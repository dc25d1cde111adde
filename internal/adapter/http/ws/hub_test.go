package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"patoz_consumer/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestHub_PublishReachesClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	go hub.Run()

	r := gin.New()
	r.GET("/v1/ws/repairs", hub.HandleConnection)

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws/repairs"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// Give the hub a moment to register the client before broadcasting.
	time.Sleep(50 * time.Millisecond)

	hub.Publish(interfaces.RepairEvent{
		Type:     interfaces.EventStageAdvanced,
		DeviceID: "dev-1",
		Stage:    "REPAIR_COMPLETED",
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.Type != interfaces.EventStageAdvanced {
		t.Errorf("expected type %q, got %q", interfaces.EventStageAdvanced, msg.Type)
	}

	data, _ := msg.Data.(map[string]any)
	if data["device_id"] != "dev-1" || data["stage"] != "REPAIR_COMPLETED" {
		t.Errorf("unexpected event payload %v", msg.Data)
	}
}
