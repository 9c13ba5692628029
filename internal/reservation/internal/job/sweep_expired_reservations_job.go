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

	"github.com/ecodeclub/eshop/internal/reservation/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// SweepExpiredReservationsJob 定时释放逻辑过期但仍处于预占中的记录,
// 把预占的展示库存归还给后续买家
type SweepExpiredReservationsJob struct {
	svc    service.Service
	logger *elog.Component
}

func NewSweepExpiredReservationsJob(svc service.Service) *SweepExpiredReservationsJob {
	return &SweepExpiredReservationsJob{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (j *SweepExpiredReservationsJob) Name() string {
	return "SweepExpiredReservationsJob"
}

func (j *SweepExpiredReservationsJob) Run(ctx context.Context) error {
	released, err := j.svc.SweepExpired(ctx)
	if err != nil {
		return err
	}
	if len(released) > 0 {
		j.logger.Info("释放过期预占",
			elog.String("job", j.Name()),
			elog.Int("count", len(released)))
	}
	return nil
}
