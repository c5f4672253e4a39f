package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPurgeExpiredDropsStaleEntriesFromBothMaps(t *testing.T) {
	now := time.Now()

	ipMapMu.Lock()
	ipMap["10.0.0.1"] = &ipEntry{count: 3, windowEnd: now.Add(-time.Minute)}
	ipMap["10.0.0.2"] = &ipEntry{count: 1, windowEnd: now.Add(time.Minute)}
	ipMapMu.Unlock()

	apiRateMapMu.Lock()
	apiRateMap["10.0.0.3"] = &rateEntry{count: 99, windowEnd: now.Add(-time.Hour)}
	apiRateMap["10.0.0.4"] = &rateEntry{count: 5, windowEnd: now.Add(time.Minute)}
	apiRateMapMu.Unlock()

	purgedLogin, purgedAPI := purgeExpired(now)

	assert.Equal(t, 1, purgedLogin)
	assert.Equal(t, 1, purgedAPI)

	// Expired IPs are gone, live windows survive.
	ipMapMu.Lock()
	_, staleGone := ipMap["10.0.0.1"]
	_, liveKept := ipMap["10.0.0.2"]
	ipMapMu.Unlock()
	assert.False(t, staleGone)
	assert.True(t, liveKept)

	apiRateMapMu.Lock()
	_, staleGone = apiRateMap["10.0.0.3"]
	_, liveKept = apiRateMap["10.0.0.4"]
	apiRateMapMu.Unlock()
	assert.False(t, staleGone)
	assert.True(t, liveKept)
}
