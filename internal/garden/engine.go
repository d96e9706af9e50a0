// Package garden holds the progression engine: the single owner of a
// player's garden state and the only code that mutates it.
//
// The engine is not safe for concurrent use. Callers serialise access, which
// the scheduler package does by running every command on one goroutine.
package garden

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/achievement"
	"github.com/osse101/GardenIdle_Go/internal/catalog"
	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/economy"
	"github.com/osse101/GardenIdle_Go/internal/event"
	"github.com/osse101/GardenIdle_Go/internal/logger"
)

// RandSource supplies the uniform draws used for auto-harvest
type RandSource interface {
	Float64() float64
}

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces the wall clock used by commands
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithRand replaces the random source used for auto-harvest draws
func WithRand(r RandSource) Option {
	return func(e *Engine) { e.rng = r }
}

// WithBus publishes engine events to the given bus
func WithBus(bus event.Bus) Option {
	return func(e *Engine) { e.bus = bus }
}

// WithAchievements replaces the achievement table
func WithAchievements(defs []achievement.Definition) Option {
	return func(e *Engine) { e.tracker = achievement.NewTracker(defs) }
}

// Engine applies player commands and time to a garden state
type Engine struct {
	cat     *catalog.Catalog
	state   *domain.State
	tracker *achievement.Tracker

	clock func() time.Time
	rng   RandSource
	bus   event.Bus
}

// NewEngine creates an engine holding a freshly seeded state
func NewEngine(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		cat:   cat,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if e.tracker == nil {
		e.tracker = achievement.NewTracker(achievement.Defaults())
	}
	e.state = domain.NewState(e.now())
	return e
}

// Load replaces the engine's state and achievement records, typically with a
// loaded save. A pending offline reward carried by the save is kept.
func (e *Engine) Load(s *domain.State, records []domain.AchievementRecord) {
	next := s.Clone()
	if next == nil {
		next = domain.NewState(e.now())
	}
	if next.Upgrades == nil {
		next.Upgrades = make(map[domain.UpgradeID]int)
	}
	e.state = next
	e.state.EnsureCapacity(e.PlotCapacity())
	e.tracker.Restore(records)
}

// Checkpoint stamps the state as saved now and returns deep copies of the
// state and achievement records for persisting.
func (e *Engine) Checkpoint() (*domain.State, []domain.AchievementRecord) {
	e.state.LastSavedAt = e.now()
	return e.state.Clone(), e.tracker.AllRecords()
}

// CurrentState returns a deep copy of the state
func (e *Engine) CurrentState() *domain.State {
	return e.state.Clone()
}

// Catalog returns the catalog the engine was built with
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// PlotCapacity is the plot count granted by the current capacity level
func (e *Engine) PlotCapacity() int {
	def, ok := e.cat.UpgradeByKind(domain.UpgradeKindPlotCapacity)
	if !ok {
		return domain.BaseCapacity
	}
	return domain.BaseCapacity + e.state.UpgradeLevel(def.ID)*domain.CapacityPerLevel
}

// MaxPlotCapacity is the plot count with the capacity upgrade fully bought
func (e *Engine) MaxPlotCapacity() int {
	return e.cat.MaxCapacity()
}

// UpgradeLevel returns the purchased level of an upgrade
func (e *Engine) UpgradeLevel(id domain.UpgradeID) int {
	return e.state.UpgradeLevel(id)
}

// UpgradeCost is the price of the next level; false when unknown or maxed
func (e *Engine) UpgradeCost(id domain.UpgradeID) (int64, bool) {
	return e.cat.UpgradeCost(id, e.state.UpgradeLevel(id))
}

// GrowthSpeedMultiplier is the current growth speed factor
func (e *Engine) GrowthSpeedMultiplier() float64 {
	return economy.ModifiersFor(e.cat, e.state).GrowthSpeed
}

// YieldMultiplier is the current upgrade yield factor
func (e *Engine) YieldMultiplier() float64 {
	return economy.ModifiersFor(e.cat, e.state).Yield
}

// UnlockedPlants lists the plants the player may plant now
func (e *Engine) UnlockedPlants() []domain.PlantDefinition {
	return e.cat.UnlockedPlants(e.state.LifetimeEarned, e.state.PrestigeCount)
}

// Achievements returns every achievement record
func (e *Engine) Achievements() []domain.AchievementRecord {
	return e.tracker.AllRecords()
}

// AchievementCounts returns the unlocked and total achievement counts
func (e *Engine) AchievementCounts() (unlocked, total int) {
	return e.tracker.UnlockedCount(), e.tracker.TotalCount()
}

// AchievementDefinition looks up an achievement's display data
func (e *Engine) AchievementDefinition(id domain.AchievementID) (achievement.Definition, bool) {
	return e.tracker.Definition(id)
}

// Now reads the engine clock
func (e *Engine) Now() time.Time {
	return e.now()
}

func (e *Engine) now() time.Time {
	return e.clock().UTC().Round(0)
}

func (e *Engine) plotInRange(i int) bool {
	return i >= 0 && i < len(e.state.Plots)
}

func (e *Engine) publish(ctx context.Context, evt event.Event) {
	if e.bus == nil {
		return
	}
	if err := e.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
