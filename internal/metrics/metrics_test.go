package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/event"
	"github.com/osse101/GardenIdle_Go/internal/persistence"
)

func TestEventMetricsCollector(t *testing.T) {
	ctx := context.Background()
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	at := time.Now()

	autoBefore := testutil.ToFloat64(CurrencyEarned.WithLabelValues(SourceHarvestAuto))
	harvestsBefore := testutil.ToFloat64(Harvests.WithLabelValues("fern", domain.HarvestSourceAuto))
	spentBefore := testutil.ToFloat64(CurrencySpent)
	offlineBefore := testutil.ToFloat64(CurrencyEarned.WithLabelValues(SourceOffline))
	savesBefore := testutil.ToFloat64(Saves.WithLabelValues(ResultFailure))

	require.NoError(t, bus.Publish(ctx, event.NewHarvestedEvent(0, "fern", 60, 1, domain.HarvestSourceAuto, at)))
	require.NoError(t, bus.Publish(ctx, event.NewUpgradePurchasedEvent("growth_speed", 2, 150, at)))
	require.NoError(t, bus.Publish(ctx, event.NewOfflineAppliedEvent(domain.OfflineReward{Currency: 900, PlantsMatured: 2}, at)))
	require.NoError(t, bus.Publish(ctx, event.NewSaveEvent("id", time.Millisecond, assert.AnError, at)))

	assert.Equal(t, autoBefore+60, testutil.ToFloat64(CurrencyEarned.WithLabelValues(SourceHarvestAuto)))
	assert.Equal(t, harvestsBefore+1, testutil.ToFloat64(Harvests.WithLabelValues("fern", domain.HarvestSourceAuto)))
	assert.Equal(t, spentBefore+150, testutil.ToFloat64(CurrencySpent))
	assert.Equal(t, offlineBefore+900, testutil.ToFloat64(CurrencyEarned.WithLabelValues(SourceOffline)))
	assert.Equal(t, savesBefore+1, testutil.ToFloat64(Saves.WithLabelValues(ResultFailure)))
}

func TestEventMetricsCollector_IgnoresBadPayloads(t *testing.T) {
	c := NewEventMetricsCollector()
	err := c.HandleEvent(context.Background(), event.Event{Type: event.Harvested, Payload: func() {}})
	assert.NoError(t, err)
}

func TestLoadObserver(t *testing.T) {
	var obs persistence.Observer = LoadObserver{}

	before := testutil.ToFloat64(SaveLoads.WithLabelValues(string(persistence.SourceBackup)))
	corruptBefore := testutil.ToFloat64(CorruptSlots.WithLabelValues(string(persistence.SlotPrimary)))

	obs.SlotCorrupt(persistence.SlotPrimary)
	obs.Loaded(persistence.SourceBackup)

	assert.Equal(t, before+1, testutil.ToFloat64(SaveLoads.WithLabelValues(string(persistence.SourceBackup))))
	assert.Equal(t, corruptBefore+1, testutil.ToFloat64(CorruptSlots.WithLabelValues(string(persistence.SlotPrimary))))
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Post("/upgrades/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/upgrades/{id}", "409")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/upgrades/growth_speed", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
