package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	ScrapesTotal      *prometheus.CounterVec
	ScrapeDuration    prometheus.Histogram
	InventoryItems    prometheus.Gauge
	SoldItemsTotal    prometheus.Counter
	NotificationsSent prometheus.Counter
}

// New creates the collectors and registers them with the given registerer.
// Pass prometheus.DefaultRegisterer in production; a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ScrapesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trashion_scrapes_total",
				Help: "Total number of scrape attempts by outcome",
			},
			[]string{"outcome"},
		),
		ScrapeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "trashion_scrape_duration_seconds",
				Help:    "Duration of full inventory scrapes",
				Buckets: prometheus.ExponentialBuckets(1, 2, 8),
			},
		),
		InventoryItems: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "trashion_inventory_items",
				Help: "Item count of the latest snapshot",
			},
		),
		SoldItemsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "trashion_sold_items_total",
				Help: "Total number of items detected as sold",
			},
		),
		NotificationsSent: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "trashion_notifications_sent_total",
				Help: "Webhook notifications delivered",
			},
		),
	}

	reg.MustRegister(
		m.ScrapesTotal,
		m.ScrapeDuration,
		m.InventoryItems,
		m.SoldItemsTotal,
		m.NotificationsSent,
	)
	return m
}

// NewNop returns metrics backed by an unregistered, throwaway registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
