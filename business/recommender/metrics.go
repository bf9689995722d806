package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	unknownPreferenceValues = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_unknown_preference_values_total",
			Help: "Count of preference lookups that fell back to an empty query fragment, by field.",
		},
		[]string{"field"},
	)

	indexRebuildsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommender_index_rebuilds_total",
			Help: "Count of feature index rebuilds over the catalog snapshot.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		unknownPreferenceValues,
		indexRebuildsTotal,
	)
}
