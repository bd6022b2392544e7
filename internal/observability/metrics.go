package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RecordsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "listings_processed_total",
			Help: "Listings that completed enrichment",
		},
	)
	RecordsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "listings_rejected_total",
			Help: "Listings rejected for a missing source URL",
		},
	)
	DuplicatesDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "listings_duplicates_dropped_total",
			Help: "Listings collapsed into a dedup representative",
		},
	)
	UnknownAttributes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listings_unknown_attributes_total",
			Help: "Attributes that resolved to unknown, by attribute name",
		},
		[]string{"attribute"},
	)
)

func Start(port string) {
	prometheus.MustRegister(RecordsProcessed, RecordsRejected, DuplicatesDropped, UnknownAttributes)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
