package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tank-shmup/internal/event"
)

func TestCollectorCountsEvents(t *testing.T) {
	d := event.NewDispatcher()
	c := NewCollector(d)

	d.Dispatch(event.Event{Type: event.RunStarted, Data: event.RunStartedData{RunID: "r1"}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{EnemyID: 3}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{EnemyID: 4}})
	d.Dispatch(event.Event{Type: event.BulletFired, Data: event.BulletFiredData{Count: 5, Archetype: "rocket"}})
	d.Dispatch(event.Event{Type: event.CurrencyCollected, Data: event.CurrencyCollectedData{Amount: 1, Balance: 7}})
	d.Dispatch(event.Event{Type: event.UpgradePurchased, Data: event.UpgradePurchasedData{NodeID: "twin", Cost: 5, Balance: 2}})
	d.Dispatch(event.Event{Type: event.DifficultyRamped, Data: event.DifficultyRampedData{Scale: 1.5, SpawnInterval: 0.5}})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.runsStarted))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.enemiesKilled))
	assert.Equal(t, 5.0, testutil.ToFloat64(c.bulletsFired.WithLabelValues("rocket")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.currencyEarned))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.currencyBalance))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.upgrades.WithLabelValues("twin")))
	assert.Equal(t, 1.5, testutil.ToFloat64(c.difficultyScale))
}

func TestHandlerServesMetrics(t *testing.T) {
	d := event.NewDispatcher()
	c := NewCollector(d)
	d.Dispatch(event.Event{Type: event.HighScoreUpdated, Data: event.HighScoreUpdatedData{Previous: 100, Current: 150}})

	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "shmup_high_score 150"))
}
