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
package job

import (
	"context"
	"fmt"
	"sync"

	"github.com/ecodeclub/jobboard/internal/posting/internal/service"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ ecron.NamedJob = (*StatsJob)(nil)

var (
	gaugeOnce   sync.Once
	bucketGauge *prometheus.GaugeVec
)

// BucketGauge 全局只注册一次
func BucketGauge() *prometheus.GaugeVec {
	gaugeOnce.Do(func() {
		bucketGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "jobboard",
			Name:      "posting_bucket_total",
			Help:      "各个状态下的职位数量",
		}, []string{"bucket"})
	})
	return bucketGauge
}

// StatsJob 只读，定时统计每个 Bucket 下的职位数量
type StatsJob struct {
	svc   service.Service
	gauge *prometheus.GaugeVec
}

func NewStatsJob(svc service.Service, gauge *prometheus.GaugeVec) *StatsJob {
	return &StatsJob{
		svc:   svc,
		gauge: gauge,
	}
}

func (s *StatsJob) Name() string {
	return "PostingStatsJob"
}

func (s *StatsJob) Run(ctx context.Context) error {
	stats, err := s.svc.Stats(ctx)
	if err != nil {
		return fmt.Errorf("统计职位数量失败: %w", err)
	}
	for bucket, cnt := range stats {
		s.gauge.WithLabelValues(bucket.String()).Set(float64(cnt))
	}
	return nil
}
