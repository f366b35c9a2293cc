package report_cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

const TTL = 5 * time.Minute

// ── Memoized derived reports ─────────────────────────────────────────────────
// The aggregation functions are pure, so a report is fully determined by its
// input snapshots. Each slot holds the report for the most recent snapshot
// key; a new key replaces it. TTL bounds staleness when the key happens to
// repeat across store rewrites.

// Key derives the memoization key from the inputs that determine a report.
// Identical snapshots always yield an identical report, so a content hash is
// a sound cache key.
func Key(snapshots ...any) string {
	h := sha256.New()
	for _, snapshot := range snapshots {
		raw, _ := json.Marshal(snapshot)
		h.Write(raw)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ── Dashboard summary slot ───────────────────────────────────────────────────

type summaryEntry struct {
	key       string
	data      models.DashboardSummary
	fetchedAt time.Time
}

var (
	summaryMu    sync.RWMutex
	summaryCache *summaryEntry
)

func GetSummary(key string) (models.DashboardSummary, bool) {
	summaryMu.RLock()
	defer summaryMu.RUnlock()
	if summaryCache != nil && summaryCache.key == key && time.Since(summaryCache.fetchedAt) < TTL {
		return summaryCache.data, true
	}
	return models.DashboardSummary{}, false
}

func SetSummary(key string, data models.DashboardSummary) {
	summaryMu.Lock()
	defer summaryMu.Unlock()
	summaryCache = &summaryEntry{key: key, data: data, fetchedAt: time.Now()}
}

// ── Sales analytics slot ─────────────────────────────────────────────────────

type analyticsEntry struct {
	key       string
	data      models.SalesAnalyticsReport
	fetchedAt time.Time
}

var (
	analyticsMu    sync.RWMutex
	analyticsCache *analyticsEntry
)

func GetAnalytics(key string) (models.SalesAnalyticsReport, bool) {
	analyticsMu.RLock()
	defer analyticsMu.RUnlock()
	if analyticsCache != nil && analyticsCache.key == key && time.Since(analyticsCache.fetchedAt) < TTL {
		return analyticsCache.data, true
	}
	return models.SalesAnalyticsReport{}, false
}

func SetAnalytics(key string, data models.SalesAnalyticsReport) {
	analyticsMu.Lock()
	defer analyticsMu.Unlock()
	analyticsCache = &analyticsEntry{key: key, data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any order log write) ──────────────────────

func Invalidate() {
	summaryMu.Lock()
	summaryCache = nil
	summaryMu.Unlock()

	analyticsMu.Lock()
	analyticsCache = nil
	analyticsMu.Unlock()
}
