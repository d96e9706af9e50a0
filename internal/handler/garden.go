package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/garden"
	"github.com/osse101/GardenIdle_Go/internal/persistence"
)

// Runner serialises access to the engine
type Runner interface {
	Do(ctx context.Context, fn func(*garden.Engine)) error
	// Persist saves the engine state in order with other saves and waits
	// for the write
	Persist(ctx context.Context) error
}

// Porter converts saves to and from the portable string form
type Porter interface {
	ExportPortable(snap persistence.Snapshot) (string, error)
	ParsePortable(ctx context.Context, blob string) (persistence.Snapshot, error)
}

// GardenHandlers contains HTTP handlers for the garden
type GardenHandlers struct {
	runner Runner
	porter Porter
}

// NewGardenHandlers creates new garden handlers
func NewGardenHandlers(runner Runner, porter Porter) *GardenHandlers {
	return &GardenHandlers{runner: runner, porter: porter}
}

// run executes fn on the engine, writing a 503 if the loop is gone
func (h *GardenHandlers) run(w http.ResponseWriter, r *http.Request, fn func(*garden.Engine)) bool {
	if err := h.runner.Do(r.Context(), fn); err != nil {
		logRequest(r).Warn(LogMsgCommandFailed, "error", err)
		respondError(w, http.StatusServiceUnavailable, ErrMsgGardenUnavailable)
		return false
	}
	return true
}

// HandleGetState returns the garden summary
func (h *GardenHandlers) HandleGetState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := PrinterFor(r)
		var resp StateResponse
		if !h.run(w, r, func(e *garden.Engine) { resp = buildState(e, p) }) {
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandlePlant plants a crop
func (h *GardenHandlers) HandlePlant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlantRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
			return
		}

		var outcome domain.Outcome
		if !h.run(w, r, func(e *garden.Engine) {
			outcome = e.Plant(r.Context(), domain.PlantID(req.PlantID), *req.Plot)
		}) {
			return
		}
		respondOutcome(w, r, outcome, nil)
	}
}

// HandleHarvest harvests one plot. An unready or empty plot yields zero.
func (h *GardenHandlers) HandleHarvest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlotRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
			return
		}

		var amount int64
		if !h.run(w, r, func(e *garden.Engine) { amount = e.Harvest(r.Context(), *req.Plot) }) {
			return
		}
		respondJSON(w, http.StatusOK, HarvestResponse{Amount: amount, AmountDisplay: FormatAmount(PrinterFor(r), amount)})
	}
}

// HandleHarvestAll harvests every ready plot
func (h *GardenHandlers) HandleHarvestAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var amount int64
		if !h.run(w, r, func(e *garden.Engine) { amount = e.HarvestAll(r.Context()) }) {
			return
		}
		respondJSON(w, http.StatusOK, HarvestResponse{Amount: amount, AmountDisplay: FormatAmount(PrinterFor(r), amount)})
	}
}

// HandleUproot clears a plot without harvesting
func (h *GardenHandlers) HandleUproot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlotRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Uproot"); err != nil {
			return
		}

		var outcome domain.Outcome
		if !h.run(w, r, func(e *garden.Engine) { outcome = e.Uproot(r.Context(), *req.Plot) }) {
			return
		}
		respondOutcome(w, r, outcome, nil)
	}
}

// HandleGetUpgrades lists upgrades with their next cost
func (h *GardenHandlers) HandleGetUpgrades() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := PrinterFor(r)
		var upgrades []UpgradeView
		if !h.run(w, r, func(e *garden.Engine) { upgrades = buildUpgrades(e, p) }) {
			return
		}
		respondJSON(w, http.StatusOK, upgrades)
	}
}

// HandlePurchaseUpgrade buys one level of the upgrade named in the path
func (h *GardenHandlers) HandlePurchaseUpgrade() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if GetValidator().validate.Var(id, "required,catalogid,max=64") != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		var outcome domain.Outcome
		if !h.run(w, r, func(e *garden.Engine) { outcome = e.PurchaseUpgrade(r.Context(), domain.UpgradeID(id)) }) {
			return
		}
		respondOutcome(w, r, outcome, nil)
	}
}

// HandleGetOffline reports the pending offline reward, if any
func (h *GardenHandlers) HandleGetOffline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			reward  domain.OfflineReward
			pending bool
		)
		if !h.run(w, r, func(e *garden.Engine) { reward, pending = e.PendingOfflineReward() }) {
			return
		}
		respondJSON(w, http.StatusOK, offlineView(reward, pending, PrinterFor(r)))
	}
}

// HandleApplyOffline credits the pending offline reward
func (h *GardenHandlers) HandleApplyOffline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var outcome domain.Outcome
		if !h.run(w, r, func(e *garden.Engine) { outcome = e.ApplyOfflineReward(r.Context()) }) {
			return
		}
		respondOutcome(w, r, outcome, nil)
	}
}

// HandlePrestige resets the garden for prestige points
func (h *GardenHandlers) HandlePrestige() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			gain    int64
			outcome domain.Outcome
		)
		if !h.run(w, r, func(e *garden.Engine) { gain, outcome = e.PerformPrestige(r.Context()) }) {
			return
		}
		respondOutcome(w, r, outcome, PrestigeResponse{Outcome: outcome, Gain: gain})
	}
}

// HandleReset starts over, keeping prestige progress
func (h *GardenHandlers) HandleReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Reset"); err != nil {
			return
		}

		var outcome domain.Outcome
		if !h.run(w, r, func(e *garden.Engine) { outcome = e.ResetAll(r.Context()) }) {
			return
		}
		respondOutcome(w, r, outcome, nil)
	}
}

// HandleGetAchievements lists achievements and progress
func (h *GardenHandlers) HandleGetAchievements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resp AchievementsResponse
		if !h.run(w, r, func(e *garden.Engine) { resp = buildAchievements(e) }) {
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleExport returns the current garden as a portable string
func (h *GardenHandlers) HandleExport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var snap persistence.Snapshot
		if !h.run(w, r, func(e *garden.Engine) {
			snap = persistence.NewSnapshot(e.CurrentState(), e.Achievements(), e.Now())
		}) {
			return
		}

		blob, err := h.porter.ExportPortable(snap)
		if err != nil {
			logRequest(r).Error(ErrMsgExportFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgExportFailed)
			return
		}
		respondJSON(w, http.StatusOK, ExportResponse{Blob: blob})
	}
}

// HandleImport validates a portable save, loads it into the engine and saves
// it through the runner, so no autosave taken earlier can overwrite it
func (h *GardenHandlers) HandleImport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImportRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Import"); err != nil {
			return
		}

		snap, err := h.porter.ParsePortable(r.Context(), req.Blob)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidSnapshot) {
				logRequest(r).Warn(ErrMsgImportInvalid, "error", err)
				respondError(w, http.StatusBadRequest, ErrMsgImportInvalid)
				return
			}
			logRequest(r).Error(ErrMsgImportFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgImportFailed)
			return
		}

		p := PrinterFor(r)
		var resp StateResponse
		if !h.run(w, r, func(e *garden.Engine) {
			e.Load(snap.State, snap.Achievements)
			e.Reconcile(r.Context(), e.Now())
			resp = buildState(e, p)
		}) {
			return
		}
		if err := h.runner.Persist(r.Context()); err != nil {
			logRequest(r).Error(ErrMsgImportFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgImportFailed)
			return
		}
		logRequest(r).Info(LogMsgImported, "save_id", snap.SaveID)
		respondJSON(w, http.StatusOK, resp)
	}
}
