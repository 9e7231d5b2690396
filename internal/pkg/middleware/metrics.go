// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpMetricsOnce sync.Once
	durationVec     *prometheus.SummaryVec
	requestVec      *prometheus.CounterVec
)

// web 和 admin 两个 server 共用同一组指标，用 server 标签区分
func httpMetrics() (*prometheus.SummaryVec, *prometheus.CounterVec) {
	httpMetricsOnce.Do(func() {
		labels := []string{"server", "method", "path", "status_code"}
		durationVec = promauto.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: "jobboard",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP 请求耗时",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, labels)
		requestVec = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobboard",
			Name:      "http_requests_total",
			Help:      "HTTP 请求数",
		}, labels)
	})
	return durationVec, requestVec
}

type MetricsBuilder struct {
	server     string
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

func NewMetricsBuilder(server string) *MetricsBuilder {
	summaryVec, counterVec := httpMetrics()
	return &MetricsBuilder{
		server:     server,
		summaryVec: summaryVec,
		counterVec: counterVec,
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		// 未匹配到路由时用原始路径
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		method := ctx.Request.Method
		status := strconv.Itoa(ctx.Writer.Status())
		b.summaryVec.WithLabelValues(b.server, method, path, status).Observe(time.Since(start).Seconds())
		b.counterVec.WithLabelValues(b.server, method, path, status).Inc()
	}
}
