// Package metrics exposes Prometheus counters for the booking domain.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	FlightViews     *prometheus.CounterVec
	PriceSurges     prometheus.Counter
	CatalogSearches *prometheus.CounterVec
	Bookings        prometheus.Counter
	Cancellations   prometheus.Counter
	WalletMovement  *prometheus.CounterVec
}

// New creates the metrics on a private registry so that several instances
// (one per test) never collide.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		FlightViews: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flight_views_total",
			Help:      "Flight price evaluations by pricing outcome",
		}, []string{"outcome"}),
		PriceSurges: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_surges_total",
			Help:      "The total number of demand surges applied",
		}),
		CatalogSearches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_searches_total",
			Help:      "Flight searches by whether the catalog was generated or loaded",
		}, []string{"source"}),
		Bookings: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "The total number of confirmed bookings",
		}),
		Cancellations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cancellations_total",
			Help:      "The total number of cancelled bookings",
		}),
		WalletMovement: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wallet_amount_total",
			Help:      "Sum of wallet debits and credits in rupees",
		}, []string{"type"}),
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
