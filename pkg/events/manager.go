package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/delver-project/delver/pkg/models"
)

const defaultPingInterval = 20 * time.Second

// ClientMessage is the JSON shape of frames a client may send.
type ClientMessage struct {
	Action string `json:"action"`
}

// ConnectionManager bridges accepted WebSocket connections to bus observers.
// Each process has one instance; connections subscribe to exactly one task,
// fixed at connect time.
type ConnectionManager struct {
	bus *Bus

	connections map[string]*Connection
	mu          sync.RWMutex

	writeTimeout time.Duration
	pingInterval time.Duration
}

// Connection is a single WebSocket client.
type Connection struct {
	ID     string
	TaskID string
	Conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
}

func NewConnectionManager(bus *Bus, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		bus:          bus,
		connections:  make(map[string]*Connection),
		writeTimeout: writeTimeout,
		pingInterval: defaultPingInterval,
	}
}

// HandleConnection manages the lifecycle of one WebSocket connection bound
// to one task's progress stream. Called by the HTTP handler after upgrade;
// blocks until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn, taskID string) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:     connID,
		TaskID: taskID,
		Conn:   conn,
		ctx:    ctx,
		cancel: cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	obs, err := m.bus.Subscribe(taskID)
	if err != nil {
		// The stream already delivered its terminal event. Tell the client
		// to fall back to the REST report and close cleanly.
		m.sendJSON(c, map[string]string{
			"type":    "task.finished",
			"task_id": taskID,
		})
		return
	}
	defer obs.Close()

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
		"task_id":       taskID,
	})

	go m.forwardEvents(c, obs)

	// Read loop: process client frames until the connection closes.
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		m.handleClientFrame(c, data)
	}
}

// forwardEvents pumps bus events to the client and keeps the connection
// alive with periodic pings. The bus closes the observer channel right after
// the terminal event, which ends this loop with a normal closure.
func (m *ConnectionManager) forwardEvents(c *Connection, obs *Observer) {
	ticker := time.NewTicker(m.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return

		case ev, ok := <-obs.Events():
			if !ok {
				_ = c.Conn.Close(websocket.StatusNormalClosure, "stream finished")
				c.cancel()
				return
			}
			if err := m.sendEvent(c, ev); err != nil {
				slog.Warn("Failed to send progress event",
					"connection_id", c.ID, "task_id", c.TaskID, "error", err)
				c.cancel()
				return
			}

		case <-ticker.C:
			pingCtx, pingCancel := context.WithTimeout(c.ctx, m.writeTimeout)
			err := c.Conn.Ping(pingCtx)
			pingCancel()
			if err != nil {
				c.cancel()
				return
			}
		}
	}
}

// handleClientFrame answers ping frames, raw or JSON, and ignores the rest.
func (m *ConnectionManager) handleClientFrame(c *Connection, data []byte) {
	if strings.TrimSpace(string(data)) == "ping" {
		if err := m.sendRaw(c, []byte("pong")); err != nil {
			slog.Warn("Failed to answer ping", "connection_id", c.ID, "error", err)
		}
		return
	}

	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		slog.Warn("Ignoring malformed WebSocket frame",
			"connection_id", c.ID, "error", err)
		return
	}
	if msg.Action == "ping" {
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregisterConnection(c *Connection) {
	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendEvent(c *Connection, ev models.ProgressEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return m.sendRaw(c, data)
}

// sendJSON marshals and sends a JSON message to a single connection.
func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
