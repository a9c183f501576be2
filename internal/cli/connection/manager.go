// Package connection provides connection management for solgate-cli.
package connection

import (
	"fmt"
	"net"
	"strings"
)

// Manager manages connections to SolGate servers.
type Manager struct {
	current *Connection
}

// Connection represents a connection to a SolGate server.
type Connection struct {
	Name   string
	Server string
	TLS    bool
}

// NewManager creates a new connection manager.
func NewManager() *Manager {
	return &Manager{}
}

// Connect validates the address and sets it as the current connection.
func (m *Manager) Connect(conn *Connection) error {
	if conn == nil || conn.Server == "" {
		return fmt.Errorf("server address required")
	}

	addr := strings.TrimPrefix(strings.TrimPrefix(conn.Server, "https://"), "http://")
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("invalid server address %q: %w", conn.Server, err)
	}

	m.current = conn
	return nil
}

// Disconnect closes the current connection.
func (m *Manager) Disconnect() {
	m.current = nil
}

// Current returns the current connection.
func (m *Manager) Current() *Connection {
	return m.current
}

// IsConnected returns true if connected to a server.
func (m *Manager) IsConnected() bool {
	return m.current != nil
}
