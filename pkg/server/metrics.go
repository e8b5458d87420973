/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	OutcomeLabel = "outcome"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncClientConnection()
	IncEvaluations(outcome string)
	ObserveEvaluationNS(outcome string, t int64)
}

type metricsStore struct {
	registry *prometheus.Registry

	ClientConnections prometheus.Counter
	Evaluations       *prometheus.CounterVec
	EvaluationNS      *prometheus.HistogramVec
}

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(2*i*int(time.Microsecond)))
	}

	factory := promauto.With(reg)

	return &metricsStore{
		registry: reg,
		ClientConnections: factory.NewCounter(prometheus.CounterOpts{
			Name: "abacus_client_connections",
			Help: "The total number of client connections made to the server",
		}),
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "abacus_evaluations",
			Help: "The total number of expressions evaluated, partitioned by outcome",
		}, []string{OutcomeLabel}),
		EvaluationNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "abacus_evaluation_ns",
			Help:    "Time spent evaluating an expression",
			Buckets: buckets,
		}, []string{OutcomeLabel}),
	}
}

func (m *metricsStore) Registry() *prometheus.Registry {
	return m.registry
}

func (m *metricsStore) RegisterCollector(c prometheus.Collector) {
	m.registry.MustRegister(c)
}

func (m *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *metricsStore) IncClientConnection() {
	m.ClientConnections.Inc()
}

func (m *metricsStore) IncEvaluations(outcome string) {
	m.Evaluations.WithLabelValues(outcome).Inc()
}

func (m *metricsStore) ObserveEvaluationNS(outcome string, t int64) {
	m.EvaluationNS.WithLabelValues(outcome).Observe(float64(t))
}
