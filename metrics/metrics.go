package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RatingsSubmittedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ratings_submitted_total",
	Help: "The total number of ratings submitted, by event",
}, []string{"event"})

var LoginCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "logins_total",
	Help: "The total number of login attempts, by outcome",
}, []string{"outcome"})

var RegistrationCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "registrations_total",
	Help: "The total number of successful judge registrations",
})

var ParticipationDecisionCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "participation_decisions_total",
	Help: "The total number of approval decisions on event participations",
}, []string{"status"})

var ScoreAggregationDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "score_aggregation_duration_s",
	Help: "Duration of the rating aggregation step",
}, []string{"aggregation-step"})

var QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "sql_query_duration_seconds",
	Help: "Duration of sql queries in seconds",
}, []string{"query"})
