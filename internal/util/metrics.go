package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_queries_total",
		Help: "Total number of catalog filter queries",
	}, []string{"category"})

	CatalogQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_query_duration_seconds",
		Help:    "Latency of catalog filter queries",
		Buckets: prometheus.DefBuckets,
	})

	OffersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "offers_created_total",
		Help: "Total number of timed offers created",
	})

	OffersExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "offers_expired_total",
		Help: "Total number of timed offers that reached zero",
	})

	OfferPurchasesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "offer_purchases_total",
		Help: "Total number of offer purchase attempts",
	}, []string{"result"})

	PlaysTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reward_plays_total",
		Help: "Total number of reward plays",
	}, []string{"game"})

	PlaysWonTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reward_plays_won_total",
		Help: "Total number of winning reward plays",
	}, []string{"game"})

	PlaysRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reward_plays_rejected_total",
		Help: "Total number of plays rejected before any state change",
	}, []string{"reason"})

	RedemptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reward_redemptions_total",
		Help: "Total number of Credit redemption attempts",
	}, []string{"result"})

	CopyRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "copy_requests_total",
		Help: "Total number of marketing copy requests",
	}, []string{"source"})

	GeneratorLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "generator_request_latency_seconds",
		Help:    "Latency of text-generation requests",
		Buckets: prometheus.DefBuckets,
	})

	GeneratorFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "generator_failures_total",
		Help: "Total number of generator failures degraded to fallback text",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
