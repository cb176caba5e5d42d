package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := NewRedisStore("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store, mr
}

// checkerPayload mimics the JSON the checker pipeline writes to redis.
func checkerPayload(t *testing.T, monitorID int, timestamp string, isUp bool, latencyMs *int64) string {
	t.Helper()

	payload := map[string]interface{}{
		"monitor_id":  monitorID,
		"url":         "https://example.com",
		"timestamp":   timestamp,
		"is_up":       isUp,
		"status_code": 200,
		"latency_ms":  latencyMs,
		"error":       nil,
	}
	if !isUp {
		payload["status_code"] = nil
		payload["error"] = "Network timeout"
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(raw)
}

func int64Ptr(v int64) *int64 { return &v }

func TestNewRedisStoreInvalidURL(t *testing.T) {
	_, err := NewRedisStore("not-a-redis-url")
	assert.Error(t, err)
}

func TestStatusUnknownMonitor(t *testing.T) {
	store, _ := newTestStore(t)

	// No snapshot ever written must read as unknown, not as an error.
	snapshot, err := store.Status(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestStatusRoundTrip(t *testing.T) {
	store, mr := newTestStore(t)

	mr.Set(StatusKey(7), checkerPayload(t, 7, "2026-08-29T10:00:00", true, int64Ptr(42)))

	snapshot, err := store.Status(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, 7, snapshot.MonitorID)
	assert.True(t, snapshot.IsUp)
	require.NotNil(t, snapshot.LatencyMs)
	assert.Equal(t, int64(42), *snapshot.LatencyMs)
	assert.Nil(t, snapshot.Error)
}

func TestStatusMalformedPayload(t *testing.T) {
	store, mr := newTestStore(t)

	mr.Set(StatusKey(7), "{not json")

	_, err := store.Status(context.Background(), 7)
	assert.Error(t, err)
}

func TestHistoryEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	points, err := store.History(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestHistoryChronologicalOrder(t *testing.T) {
	store, mr := newTestStore(t)

	// The checker pushes newest to the head, so the stored order is
	// [t3, t2, t1]. Reads must come back oldest first.
	key := HistoryKey(7)
	_, err := mr.Lpush(key, checkerPayload(t, 7, "2026-08-29T10:00:00", true, int64Ptr(80)))
	require.NoError(t, err)
	_, err = mr.Lpush(key, checkerPayload(t, 7, "2026-08-29T10:01:00", true, int64Ptr(95)))
	require.NoError(t, err)
	_, err = mr.Lpush(key, checkerPayload(t, 7, "2026-08-29T10:02:00", false, nil))
	require.NoError(t, err)

	points, err := store.History(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, "2026-08-29T10:00:00", points[0].Timestamp)
	assert.Equal(t, "2026-08-29T10:01:00", points[1].Timestamp)
	assert.Equal(t, "2026-08-29T10:02:00", points[2].Timestamp)

	require.NotNil(t, points[0].LatencyMs)
	assert.Equal(t, int64(80), *points[0].LatencyMs)
	require.NotNil(t, points[1].LatencyMs)
	assert.Equal(t, int64(95), *points[1].LatencyMs)

	// A failed probe retains its null latency.
	assert.False(t, points[2].IsUp)
	assert.Nil(t, points[2].LatencyMs)
}

func TestHistoryBounded(t *testing.T) {
	store, mr := newTestStore(t)

	key := HistoryKey(7)
	for i := 0; i < HistoryLimit+15; i++ {
		timestamp := fmt.Sprintf("2026-08-29T10:%02d:00", i)
		_, err := mr.Lpush(key, checkerPayload(t, 7, timestamp, true, int64Ptr(int64(i))))
		require.NoError(t, err)
	}

	points, err := store.History(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, points, HistoryLimit)

	// The cap keeps the newest entries; order stays chronological.
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i-1].Timestamp, points[i].Timestamp)
	}
	assert.Equal(t, "2026-08-29T10:34:00", points[len(points)-1].Timestamp)
}

func TestHistoryMalformedEntry(t *testing.T) {
	store, mr := newTestStore(t)

	_, err := mr.Lpush(HistoryKey(7), "{not json")
	require.NoError(t, err)

	_, err = store.History(context.Background(), 7)
	assert.Error(t, err)
}

func TestPurgeMonitorDeletesAllKeys(t *testing.T) {
	store, mr := newTestStore(t)

	mr.Set(StatusKey(7), checkerPayload(t, 7, "2026-08-29T10:00:00", true, int64Ptr(42)))
	_, err := mr.Lpush(HistoryKey(7), checkerPayload(t, 7, "2026-08-29T10:00:00", true, int64Ptr(42)))
	require.NoError(t, err)
	mr.Set(LastLoggedStateKey(7), "UP")

	outcomes := store.PurgeMonitor(context.Background(), 7)
	require.Len(t, outcomes, 3)
	for _, outcome := range outcomes {
		assert.NoError(t, outcome.Err, outcome.Key)
	}

	assert.False(t, mr.Exists(StatusKey(7)))
	assert.False(t, mr.Exists(HistoryKey(7)))
	assert.False(t, mr.Exists(LastLoggedStateKey(7)))

	// Purged keys read back as unknown/empty.
	snapshot, err := store.Status(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, snapshot)

	points, err := store.History(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestPurgeMonitorAbsentKeys(t *testing.T) {
	store, _ := newTestStore(t)

	// Deleting keys that never existed is not a failure.
	outcomes := store.PurgeMonitor(context.Background(), 99)
	require.Len(t, outcomes, 3)
	for _, outcome := range outcomes {
		assert.NoError(t, outcome.Err)
	}
}

func TestPurgeMonitorLeavesOtherMonitorsAlone(t *testing.T) {
	store, mr := newTestStore(t)

	mr.Set(StatusKey(7), checkerPayload(t, 7, "2026-08-29T10:00:00", true, int64Ptr(42)))
	mr.Set(StatusKey(8), checkerPayload(t, 8, "2026-08-29T10:00:00", true, int64Ptr(10)))

	store.PurgeMonitor(context.Background(), 7)

	assert.False(t, mr.Exists(StatusKey(7)))
	assert.True(t, mr.Exists(StatusKey(8)))
}

func TestPing(t *testing.T) {
	store, mr := newTestStore(t)

	require.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}

func TestMonitorKeys(t *testing.T) {
	keys := MonitorKeys(7)
	assert.Equal(t, []string{
		"monitor:7:status",
		"monitor:7:history",
		"monitor:7:last_logged_state",
	}, keys)
}
