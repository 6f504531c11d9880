// Package mongodb manages the MongoDB connection for the feed service.
package mongodb

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ishahbak/feed-service/pkg/logger"
)

// ErrNotConnected is returned by Database while the connection is down.
// Requests in flight during an outage fail with it; reconnection happens
// in the background, never on the request path.
var ErrNotConnected = errors.New("mongodb: not connected")

// State describes the connection lifecycle.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

const (
	reconnectBackoff = 5 * time.Second
	pingInterval     = 5 * time.Second
	opTimeout        = 10 * time.Second
)

// Manager owns the MongoDB client and keeps it connected with a fixed
// backoff. Repositories obtain the database through Database and must be
// prepared for ErrNotConnected.
type Manager struct {
	uri    string
	dbName string

	mu     sync.RWMutex
	client *mongo.Client
	state  State

	done     chan struct{}
	stopOnce sync.Once
}

// NewManager creates a Manager for the given URI and database name. Call
// Start to begin connecting.
func NewManager(uri, dbName string) *Manager {
	return &Manager{
		uri:    uri,
		dbName: dbName,
		state:  StateDisconnected,
		done:   make(chan struct{}),
	}
}

// Start launches the background connect/monitor loop and returns
// immediately. The service serves requests (and fails them) while the
// first connection attempt is still in progress.
func (m *Manager) Start() {
	go m.run()
}

// Stop shuts down the monitor loop and disconnects the client.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.done) })

	m.mu.Lock()
	client := m.client
	m.client = nil
	m.state = StateDisconnected
	m.mu.Unlock()

	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		_ = client.Disconnect(ctx)
	}
}

// Database returns the configured database, or ErrNotConnected while the
// connection is down.
func (m *Manager) Database() (*mongo.Database, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateConnected || m.client == nil {
		return nil, ErrNotConnected
	}
	return m.client.Database(m.dbName), nil
}

// State reports the current connection state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Manager) run() {
	for {
		select {
		case <-m.done:
			return
		default:
		}

		if err := m.connect(); err != nil {
			logger.Errorf("mongodb connection error: %v", err)
			m.setState(nil, StateDisconnected)
			select {
			case <-m.done:
				return
			case <-time.After(reconnectBackoff):
			}
			continue
		}

		logger.Info("mongodb connected")
		m.monitor()
		logger.Warning("mongodb disconnected, attempting to reconnect")
	}
}

func (m *Manager) connect() error {
	m.setState(nil, StateConnecting)

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), opTimeout)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return err
	}

	m.setState(client, StateConnected)
	return nil
}

// monitor pings until the connection drops or the manager stops.
func (m *Manager) monitor() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.mu.RLock()
			client := m.client
			m.mu.RUnlock()
			if client == nil {
				return
			}

			ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
			err := client.Ping(ctx, readpref.Primary())
			cancel()
			if err != nil {
				disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), opTimeout)
				_ = client.Disconnect(disconnectCtx)
				disconnectCancel()
				m.setState(nil, StateDisconnected)
				return
			}
		}
	}
}

func (m *Manager) setState(client *mongo.Client, state State) {
	m.mu.Lock()
	m.client = client
	m.state = state
	m.mu.Unlock()
}
