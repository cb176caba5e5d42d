package cache

import (
	"context"
	"fmt"

	"pulsegate/pkg/models"
)

// HistoryLimit caps how many recent history points a read may return. The
// checker trims the stored list to the same bound, so the retrievable history
// never grows past it regardless of how many samples were ever written.
const HistoryLimit = 20

// StatusKey holds the single encoded snapshot for a monitor.
func StatusKey(monitorID int) string {
	return fmt.Sprintf("monitor:%d:status", monitorID)
}

// HistoryKey holds the bounded recent-history list, newest at the head.
func HistoryKey(monitorID int) string {
	return fmt.Sprintf("monitor:%d:history", monitorID)
}

// LastLoggedStateKey is opaque transition bookkeeping owned by the checker.
// The gateway never reads or writes it, only purges it on monitor deletion.
func LastLoggedStateKey(monitorID int) string {
	return fmt.Sprintf("monitor:%d:last_logged_state", monitorID)
}

// MonitorKeys returns every cache key derived from a monitor id.
func MonitorKeys(monitorID int) []string {
	return []string{
		StatusKey(monitorID),
		HistoryKey(monitorID),
		LastLoggedStateKey(monitorID),
	}
}

// KeyOutcome reports the result of purging a single cache key.
type KeyOutcome struct {
	Key string
	Err error
}

// Store is the cache-store contract the gateway relies on. The gateway only
// reads and deletes; all writes belong to the external checker. Keeping the
// gateway write-free is what lets it run stateless behind a load balancer.
type Store interface {
	// Status returns the live snapshot for a monitor, or (nil, nil) when no
	// snapshot has been written yet. Errors are real store failures only.
	Status(ctx context.Context, monitorID int) (*models.StatusSnapshot, error)

	// History returns up to HistoryLimit recent points in chronological order
	// (oldest first). A monitor with no history yields an empty slice, not an
	// error.
	History(ctx context.Context, monitorID int) ([]models.HistoryPoint, error)

	// PurgeMonitor deletes all cache keys derived from the monitor id,
	// issuing the deletes concurrently. It always returns one outcome per
	// key; the caller decides how to treat individual failures.
	PurgeMonitor(ctx context.Context, monitorID int) []KeyOutcome

	// Ping verifies store connectivity.
	Ping(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}
