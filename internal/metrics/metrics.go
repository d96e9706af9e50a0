package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Garden Metrics
var (
	Harvests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvests,
			Help: HelpTextHarvests,
		},
		[]string{LabelPlant, LabelSource},
	)

	CurrencyEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCurrencyEarned,
			Help: HelpTextCurrencyEarned,
		},
		[]string{LabelSource},
	)

	CurrencySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCurrencySpent,
			Help: HelpTextCurrencySpent,
		},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesPurchased,
			Help: HelpTextUpgradesPurchased,
		},
		[]string{LabelUpgrade},
	)

	Prestiges = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePrestiges,
			Help: HelpTextPrestiges,
		},
	)

	AchievementsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsUnlocked,
			Help: HelpTextAchievementsUnlocked,
		},
		[]string{LabelAchievement},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDuration,
			Help:    HelpTextTickDuration,
			Buckets: TickBuckets,
		},
	)
)

// Persistence Metrics
var (
	Saves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSaves,
			Help: HelpTextSaves,
		},
		[]string{LabelResult},
	)

	SaveLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSaveLoads,
			Help: HelpTextSaveLoads,
		},
		[]string{LabelSource},
	)

	CorruptSlots = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCorruptSlots,
			Help: HelpTextCorruptSlots,
		},
		[]string{LabelSlot},
	)
)
