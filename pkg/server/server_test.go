package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"pulsegate/pkg/cache"
	"pulsegate/pkg/identity"
	"pulsegate/pkg/models"
)

// mockStore implements the cache.Store interface for testing
type mockStore struct {
	mu          sync.Mutex
	snapshots   map[int]*models.StatusSnapshot
	history     map[int][]models.HistoryPoint
	bookkeeping map[int]string

	statusErr  error
	historyErr error

	// purgeErrs maps cache keys to forced purge failures
	purgeErrs map[string]error
	// purgeDelay stalls the history key purge to exercise concurrent purges
	purgeDelay time.Duration

	purgeCalls int
}

func newMockStore() *mockStore {
	return &mockStore{
		snapshots:   make(map[int]*models.StatusSnapshot),
		history:     make(map[int][]models.HistoryPoint),
		bookkeeping: make(map[int]string),
		purgeErrs:   make(map[string]error),
	}
}

func (m *mockStore) Status(ctx context.Context, monitorID int) (*models.StatusSnapshot, error) {
	if m.statusErr != nil {
		return nil, m.statusErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshots[monitorID], nil
}

func (m *mockStore) History(ctx context.Context, monitorID int) ([]models.HistoryPoint, error) {
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	points := m.history[monitorID]
	if points == nil {
		points = []models.HistoryPoint{}
	}
	return points, nil
}

func (m *mockStore) PurgeMonitor(ctx context.Context, monitorID int) []cache.KeyOutcome {
	m.mu.Lock()
	m.purgeCalls++
	m.mu.Unlock()

	keys := cache.MonitorKeys(monitorID)
	outcomes := make([]cache.KeyOutcome, len(keys))

	var waitGroup sync.WaitGroup
	for i, key := range keys {
		waitGroup.Add(1)
		go func(i int, key string) {
			defer waitGroup.Done()

			if key == cache.HistoryKey(monitorID) && m.purgeDelay > 0 {
				time.Sleep(m.purgeDelay)
			}

			if err, forced := m.purgeErrs[key]; forced {
				outcomes[i] = cache.KeyOutcome{Key: key, Err: err}
				return
			}

			m.mu.Lock()
			switch key {
			case cache.StatusKey(monitorID):
				delete(m.snapshots, monitorID)
			case cache.HistoryKey(monitorID):
				delete(m.history, monitorID)
			case cache.LastLoggedStateKey(monitorID):
				delete(m.bookkeeping, monitorID)
			}
			m.mu.Unlock()

			outcomes[i] = cache.KeyOutcome{Key: key}
		}(i, key)
	}
	waitGroup.Wait()

	return outcomes
}

func (m *mockStore) Ping(ctx context.Context) error { return nil }

func (m *mockStore) Close() error { return nil }

func (m *mockStore) purgeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.purgeCalls
}

func (m *mockStore) hasAnyData(monitorID int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, hasSnapshot := m.snapshots[monitorID]
	_, hasHistory := m.history[monitorID]
	_, hasBookkeeping := m.bookkeeping[monitorID]
	return hasSnapshot || hasHistory || hasBookkeeping
}

var errStoreDown = errors.New("connection refused")

// newTestGateway wires a gateway with routes registered, a mock cache store
// and an identity client pointed at the given upstream.
func newTestGateway(store cache.Store, upstreamURL string) *Gateway {
	client := identity.NewClient(upstreamURL, 0, 10*time.Millisecond, 50*time.Millisecond, 2*time.Second)
	gateway := NewGateway(store, client, "")
	gateway.setupRoutes()
	return gateway
}
