package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenIdle_Go/internal/catalog"
	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/garden"
	"github.com/osse101/GardenIdle_Go/internal/persistence"
	"github.com/osse101/GardenIdle_Go/mocks"
)

var t0 = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

// directRunner runs commands on the caller's goroutine and saves to store
// when one is set
type directRunner struct {
	engine *garden.Engine
	store  *persistence.Store
}

func (d *directRunner) Do(_ context.Context, fn func(*garden.Engine)) error {
	fn(d.engine)
	return nil
}

func (d *directRunner) Persist(ctx context.Context) error {
	if d.store == nil {
		return nil
	}
	state, records := d.engine.Checkpoint()
	return d.store.Save(ctx, persistence.NewSnapshot(state, records, state.LastSavedAt))
}

type testEnv struct {
	router http.Handler
	engine *garden.Engine
	store  *persistence.Store
	now    time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{now: t0}
	cat := catalog.Default()
	env.engine = garden.NewEngine(cat, garden.WithClock(func() time.Time { return env.now }))
	env.store = persistence.NewStore(persistence.NewMemoryBackend(), cat)
	env.router = testRouter(NewGardenHandlers(&directRunner{engine: env.engine, store: env.store}, env.store))
	return env
}

func testRouter(h *GardenHandlers) http.Handler {
	r := chi.NewRouter()
	r.Get("/state", h.HandleGetState())
	r.Post("/plant", h.HandlePlant())
	r.Post("/harvest", h.HandleHarvest())
	r.Post("/harvest-all", h.HandleHarvestAll())
	r.Post("/uproot", h.HandleUproot())
	r.Get("/upgrades", h.HandleGetUpgrades())
	r.Post("/upgrades/{id}", h.HandlePurchaseUpgrade())
	r.Get("/offline", h.HandleGetOffline())
	r.Post("/offline/apply", h.HandleApplyOffline())
	r.Post("/prestige", h.HandlePrestige())
	r.Post("/reset", h.HandleReset())
	r.Get("/achievements", h.HandleGetAchievements())
	r.Get("/export", h.HandleExport())
	r.Post("/import", h.HandleImport())
	return r
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleGetState_Fresh(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/state", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	state := decode[StateResponse](t, rec)
	assert.Equal(t, domain.StartingCurrency, state.Currency)
	assert.Len(t, state.Plots, domain.BaseCapacity)
	assert.Equal(t, domain.BaseCapacity, state.PlotCapacity)
	assert.Equal(t, "×1.00", state.GrowthSpeed)
	assert.False(t, state.CanPrestige)
	assert.Contains(t, state.UnlockedPlants, string(catalog.PlantSprout))
	assert.Nil(t, state.Offline)
}

func TestHandlePlant(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			body:           `{"plant_id":"sprout","plot":0}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"outcome":"ok"}`,
		},
		{
			name:           "Unknown Plant",
			body:           `{"plant_id":"cactus","plot":0}`,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"outcome":"unknown_plant","error":"unknown plant"}`,
		},
		{
			name:           "Locked Plant",
			body:           `{"plant_id":"lotus","plot":0}`,
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"outcome":"plant_locked","error":"plant is locked"}`,
		},
		{
			name:           "Plot Out Of Range",
			body:           `{"plant_id":"sprout","plot":99}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"outcome":"plot_out_of_range","error":"plot index out of range"}`,
		},
		{
			name:           "Missing Plot",
			body:           `{"plant_id":"sprout"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request","fields":{"plot":"This field is required"}}`,
		},
		{
			name:           "Negative Plot",
			body:           `{"plant_id":"sprout","plot":-1}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request","fields":{"plot":"Must be at least 0"}}`,
		},
		{
			name:           "Malformed Plant Id",
			body:           `{"plant_id":"Sprout!","plot":0}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request","fields":{"plant_id":"Must be a lowercase id"}}`,
		},
		{
			name:           "Invalid JSON",
			body:           `{"plant_id":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			rec := env.do(t, http.MethodPost, "/plant", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestHandlePlant_OccupiedPlot(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/plant", `{"plant_id":"sprout","plot":1}`).Code)

	rec := env.do(t, http.MethodPost, "/plant", `{"plant_id":"sprout","plot":1}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.OutcomePlotOccupied, decode[OutcomeResponse](t, rec).Outcome)
}

func TestHandleHarvest(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/plant", `{"plant_id":"sprout","plot":0}`).Code)

	rec := env.do(t, http.MethodPost, "/harvest", `{"plot":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), decode[HarvestResponse](t, rec).Amount)

	env.now = env.now.Add(16 * time.Second)
	env.engine.Tick(context.Background(), env.now)

	rec = env.do(t, http.MethodPost, "/harvest", `{"plot":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), decode[HarvestResponse](t, rec).Amount)

	state := decode[StateResponse](t, env.do(t, http.MethodGet, "/state", ""))
	assert.Equal(t, int64(12), state.Currency)
	assert.Equal(t, int64(1), state.PlantsHarvested)
}

func TestHandleHarvestAll(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/plant", `{"plant_id":"sprout","plot":0}`)
	env.do(t, http.MethodPost, "/plant", `{"plant_id":"sprout","plot":2}`)
	env.now = env.now.Add(time.Minute)
	env.engine.Tick(context.Background(), env.now)

	rec := env.do(t, http.MethodPost, "/harvest-all", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(4), decode[HarvestResponse](t, rec).Amount)
}

func TestHandleUproot(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/uproot", `{"plot":0}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.OutcomePlotEmpty, decode[OutcomeResponse](t, rec).Outcome)

	env.do(t, http.MethodPost, "/plant", `{"plant_id":"sprout","plot":0}`)
	rec = env.do(t, http.MethodPost, "/uproot", `{"plot":0}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleUpgrades(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/upgrades", "")
	require.Equal(t, http.StatusOK, rec.Code)
	upgrades := decode[[]UpgradeView](t, rec)
	require.Len(t, upgrades, len(catalog.DefaultUpgrades()))
	assert.Equal(t, string(catalog.UpgradeGrowthSpeed), upgrades[0].ID)
	require.NotNil(t, upgrades[0].Cost)
	assert.Equal(t, int64(100), *upgrades[0].Cost)
	assert.False(t, upgrades[0].Affordable)

	rec = env.do(t, http.MethodPost, "/upgrades/growth_speed", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.OutcomeInsufficientFunds, decode[OutcomeResponse](t, rec).Outcome)

	rec = env.do(t, http.MethodPost, "/upgrades/warp_drive", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPost, "/upgrades/DROP%20TABLE", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpgrades_Purchase(t *testing.T) {
	env := newTestEnv(t)
	s := domain.NewState(t0)
	s.Currency = 1_000
	env.engine.Load(s, nil)

	rec := env.do(t, http.MethodPost, "/upgrades/plot_capacity", "")
	require.Equal(t, http.StatusOK, rec.Code)

	state := decode[StateResponse](t, env.do(t, http.MethodGet, "/state", ""))
	assert.Equal(t, int64(500), state.Currency)
	assert.Len(t, state.Plots, domain.BaseCapacity+1)
}

func TestHandleOffline(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/offline", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[OfflineView](t, rec).Pending)

	rec = env.do(t, http.MethodPost, "/offline/apply", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.OutcomeNothingPending, decode[OutcomeResponse](t, rec).Outcome)

	env.do(t, http.MethodPost, "/plant", `{"plant_id":"sprout","plot":0}`)
	env.now = env.now.Add(time.Hour)
	env.engine.Reconcile(context.Background(), env.now)

	rec = env.do(t, http.MethodGet, "/offline", "")
	view := decode[OfflineView](t, rec)
	assert.True(t, view.Pending)
	assert.Positive(t, view.Currency)
	assert.Equal(t, int64(3600), view.ElapsedSeconds)

	rec = env.do(t, http.MethodPost, "/offline/apply", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	state := decode[StateResponse](t, env.do(t, http.MethodGet, "/state", ""))
	assert.Equal(t, domain.StartingCurrency+view.Currency, state.Currency)
}

func TestHandlePrestige(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/prestige", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.OutcomeNotEligible, decode[OutcomeResponse](t, rec).Outcome)

	s := domain.NewState(t0)
	s.Currency = 4_000_000
	env.engine.Load(s, nil)

	rec = env.do(t, http.MethodPost, "/prestige", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[PrestigeResponse](t, rec)
	assert.Equal(t, domain.OutcomeOK, resp.Outcome)
	assert.Equal(t, int64(2), resp.Gain)
}

func TestHandleReset(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/reset", `{"confirm":false}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env.do(t, http.MethodPost, "/plant", `{"plant_id":"sprout","plot":0}`)
	rec = env.do(t, http.MethodPost, "/reset", `{"confirm":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	state := decode[StateResponse](t, env.do(t, http.MethodGet, "/state", ""))
	assert.Empty(t, state.Plots[0].PlantID)
}

func TestHandleGetAchievements(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/achievements", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[AchievementsResponse](t, rec)
	assert.Equal(t, 11, resp.Total)
	assert.Zero(t, resp.Unlocked)
	require.Len(t, resp.Achievements, 11)
	assert.NotEmpty(t, resp.Achievements[0].Name)
	assert.Positive(t, resp.Achievements[0].Reward)
}

func TestHandleExportImport_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/plant", `{"plant_id":"sprout","plot":3}`)

	rec := env.do(t, http.MethodGet, "/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	blob := decode[ExportResponse](t, rec).Blob
	require.NotEmpty(t, blob)

	env.do(t, http.MethodPost, "/reset", `{"confirm":true}`)

	body, err := json.Marshal(ImportRequest{Blob: blob})
	require.NoError(t, err)
	rec = env.do(t, http.MethodPost, "/import", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	state := decode[StateResponse](t, rec)
	assert.Equal(t, string(catalog.PlantSprout), state.Plots[3].PlantID)

	snap, source := env.store.Load(context.Background())
	assert.Equal(t, persistence.SourcePrimary, source)
	assert.Equal(t, catalog.PlantSprout, snap.State.Plots[3].Crop.PlantID)
}

func TestHandleImport_Invalid(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/import", `{"blob":"not base64 at all"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Save data is invalid"}`, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/import", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlers_RunnerUnavailable(t *testing.T) {
	runner := mocks.NewMockRunner(t)
	runner.On("Do", mock.Anything, mock.Anything).Return(assert.AnError)
	router := testRouter(NewGardenHandlers(runner, mocks.NewMockPorter(t)))

	for _, path := range []string{"/state", "/upgrades", "/achievements", "/offline"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
}

func TestHandleExport_PorterFailure(t *testing.T) {
	env := newTestEnv(t)
	porter := mocks.NewMockPorter(t)
	porter.On("ExportPortable", mock.Anything).Return("", assert.AnError)
	router := testRouter(NewGardenHandlers(&directRunner{engine: env.engine}, porter))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to export save"}`, rec.Body.String())
}

func TestHandleImport_ParseFailure(t *testing.T) {
	env := newTestEnv(t)
	porter := mocks.NewMockPorter(t)
	porter.On("ParsePortable", mock.Anything, "blob").Return(persistence.Snapshot{}, assert.AnError)
	router := testRouter(NewGardenHandlers(&directRunner{engine: env.engine}, porter))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/import", bytes.NewBufferString(`{"blob":"blob"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleImport_SaveFailure(t *testing.T) {
	runner := mocks.NewMockRunner(t)
	runner.On("Do", mock.Anything, mock.Anything).Return(nil)
	runner.On("Persist", mock.Anything).Return(assert.AnError)
	porter := mocks.NewMockPorter(t)
	porter.On("ParsePortable", mock.Anything, "blob").Return(persistence.Snapshot{}, nil)
	router := testRouter(NewGardenHandlers(runner, porter))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/import", bytes.NewBufferString(`{"blob":"blob"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to import save"}`, rec.Body.String())
}

func TestHandleImport_InvalidLeavesEngineAndSaveAlone(t *testing.T) {
	runner := mocks.NewMockRunner(t)
	router := testRouter(NewGardenHandlers(runner, persistence.NewStore(persistence.NewMemoryBackend(), catalog.Default())))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/import", bytes.NewBufferString(`{"blob":"not base64 at all"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	runner.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
	runner.AssertNotCalled(t, "Persist", mock.Anything)
}
