// Package metrics экспортирует счётчики забега в Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-tank-shmup/internal/event"
)

const namespace = "shmup"

// Collector подписывается на диспетчер событий и обновляет метрики.
// Метрики регистрируются в собственном реестре, чтобы тесты не делили глобальный.
type Collector struct {
	registry *prometheus.Registry

	runsStarted      prometheus.Counter
	runsEnded        prometheus.Counter
	enemiesSpawned   prometheus.Counter
	enemiesKilled    prometheus.Counter
	bulletsFired     *prometheus.CounterVec
	currencyEarned   prometheus.Counter
	upgrades         *prometheus.CounterVec
	difficultyScale  prometheus.Gauge
	spawnInterval    prometheus.Gauge
	currencyBalance  prometheus.Gauge
	highScore        prometheus.Gauge
	runDuration      prometheus.Histogram
	phaseTransitions *prometheus.CounterVec
}

// NewCollector создаёт коллектор и подписывает его на все события.
func NewCollector(d *event.Dispatcher) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		runsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "runs_started_total",
			Help: "Число начатых забегов.",
		}),
		runsEnded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "runs_ended_total",
			Help: "Число забегов, завершённых смертью игрока.",
		}),
		enemiesSpawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "enemies_spawned_total",
			Help: "Созданные враги.",
		}),
		enemiesKilled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "enemies_killed_total",
			Help: "Уничтоженные враги.",
		}),
		bulletsFired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "bullets_fired_total",
			Help: "Выпущенные снаряды по архетипу.",
		}, []string{"archetype"}),
		currencyEarned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "currency_collected_total",
			Help: "Собранная валюта.",
		}),
		upgrades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "upgrades_purchased_total",
			Help: "Купленные узлы дерева навыков.",
		}, []string{"node"}),
		difficultyScale: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "difficulty_scale",
			Help: "Текущий множитель сложности.",
		}),
		spawnInterval: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "spawn_interval_seconds",
			Help: "Текущий интервал спавна врагов.",
		}),
		currencyBalance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "currency_balance",
			Help: "Текущий баланс валюты.",
		}),
		highScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "high_score",
			Help: "Последний записанный рекорд.",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "run_duration_seconds",
			Help:    "Длительность забегов.",
			Buckets: []float64{30, 60, 120, 300, 600, 1200},
		}),
		phaseTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "phase_transitions_total",
			Help: "Переходы между фазами забега.",
		}, []string{"to"}),
	}

	c.registry.MustRegister(
		c.runsStarted, c.runsEnded, c.enemiesSpawned, c.enemiesKilled, c.bulletsFired,
		c.currencyEarned, c.upgrades, c.difficultyScale, c.spawnInterval,
		c.currencyBalance, c.highScore, c.runDuration, c.phaseTransitions,
	)
	d.SubscribeAll(c, event.AllTypes()...)
	return c
}

// Registry возвращает реестр коллектора.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler отдаёт метрики для /metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.RunStarted:
		c.runsStarted.Inc()
		c.currencyBalance.Set(0)
	case event.RunEnded:
		c.runsEnded.Inc()
		if data, ok := e.Data.(event.RunEndedData); ok {
			c.runDuration.Observe(data.Duration)
		}
	case event.EnemySpawned:
		c.enemiesSpawned.Inc()
	case event.EnemyKilled:
		c.enemiesKilled.Inc()
	case event.BulletFired:
		if data, ok := e.Data.(event.BulletFiredData); ok {
			c.bulletsFired.WithLabelValues(data.Archetype).Add(float64(data.Count))
		}
	case event.CurrencyCollected:
		if data, ok := e.Data.(event.CurrencyCollectedData); ok {
			c.currencyEarned.Add(float64(data.Amount))
			c.currencyBalance.Set(float64(data.Balance))
		}
	case event.UpgradePurchased:
		if data, ok := e.Data.(event.UpgradePurchasedData); ok {
			c.upgrades.WithLabelValues(data.NodeID).Inc()
			c.currencyBalance.Set(float64(data.Balance))
		}
	case event.DifficultyRamped:
		if data, ok := e.Data.(event.DifficultyRampedData); ok {
			c.difficultyScale.Set(data.Scale)
			c.spawnInterval.Set(data.SpawnInterval)
		}
	case event.HighScoreUpdated:
		if data, ok := e.Data.(event.HighScoreUpdatedData); ok {
			c.highScore.Set(float64(data.Current))
		}
	case event.PhaseChanged:
		if data, ok := e.Data.(event.PhaseChangedData); ok {
			c.phaseTransitions.WithLabelValues(data.To).Inc()
		}
	}
}
