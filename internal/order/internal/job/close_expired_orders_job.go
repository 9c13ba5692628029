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
	"time"

	"github.com/ecodeclub/eshop/internal/order/internal/service"
)

// CloseExpiredOrdersJob 回滚超过预占时限仍未支付的订单,
// 与预占清扫任务互为兜底, 两边的释放操作都幂等
type CloseExpiredOrdersJob struct {
	svc    service.Service
	limit  int
	minute int64
}

func NewCloseExpiredOrdersJob(svc service.Service, limit int, minute int64) *CloseExpiredOrdersJob {
	return &CloseExpiredOrdersJob{svc: svc, limit: limit, minute: minute}
}

func (c *CloseExpiredOrdersJob) Name() string {
	return "CloseExpiredOrdersJob"
}

func (c *CloseExpiredOrdersJob) Run(ctx context.Context) error {
	// 在预占时限之外再冗余10秒, 避免和正在进行中的支付回调抢同一批订单
	ctime := time.Now().Add(time.Duration(-c.minute)*time.Minute - 10*time.Second).UnixMilli()

	for {
		orders, total, err := c.svc.ListExpiredPendingOrders(ctx, 0, c.limit, ctime)
		if err != nil {
			return fmt.Errorf("获取超时订单失败: %w", err)
		}

		err = c.svc.CloseExpiredOrders(ctx, orders)
		if err != nil {
			return fmt.Errorf("关闭超时订单失败: %w", err)
		}

		if len(orders) < c.limit {
			break
		}

		if int64(c.limit) >= total {
			break
		}
	}
	return nil
}
