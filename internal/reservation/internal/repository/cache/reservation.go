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

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ecodeclub/eshop/internal/reservation/internal/domain"
	"github.com/redis/go-redis/v9"
)

var (
	ErrDuplicateReservation = errors.New("订单已存在预占记录")
	ErrInsufficientStock    = errors.New("预占库存不足")
	ErrReservationNotFound  = errors.New("预占记录不存在")
)

// 预占记录兜底过期时间, 正常过期由后台清扫任务负责,
// 这里只是防止清扫任务长期不可用时key泄漏
const safetyTTL = 24 * time.Hour

// reserveScript 原子完成: 幂等检查 + 逐项校验(展示库存-预占量) + 扣减预占计数 + 落预占记录。
// KEYS[1]=预占记录, KEYS[2]=过期索引, KEYS[3..]=各SKU预占计数。
// ARGV[1]=items JSON, ARGV[2]=expires_at, ARGV[3]=ctime, ARGV[4]=orderSN,
// ARGV[5]=兜底TTL秒, ARGV[5+2i-1]=展示库存, ARGV[5+2i]=预占数量。
// 返回 -1=重复预占, 0=成功, i>0=第i项库存不足。
var reserveScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return -1
end
local n = #KEYS - 2
for i = 1, n do
	local holds = tonumber(redis.call('GET', KEYS[i+2]) or '0')
	local advertised = tonumber(ARGV[5 + i*2 - 1])
	local qty = tonumber(ARGV[5 + i*2])
	if advertised - holds < qty then
		return i
	end
end
for i = 1, n do
	redis.call('INCRBY', KEYS[i+2], tonumber(ARGV[5 + i*2]))
end
redis.call('HSET', KEYS[1], 'status', '1', 'items', ARGV[1], 'ctime', ARGV[3], 'expires_at', ARGV[2])
redis.call('EXPIRE', KEYS[1], tonumber(ARGV[5]))
redis.call('ZADD', KEYS[2], tonumber(ARGV[2]), ARGV[4])
return 0
`)

// finishScript 把"预占中"的记录迁移到终态并归还预占计数。
// 对已处于终态的记录是空操作, Confirm/Release 共用。
// KEYS 同 reserveScript, ARGV[1..n]=各项数量, ARGV[n+1]=orderSN, ARGV[n+2]=目标状态。
// 返回 -1=记录不存在, 1=已是终态, 0=成功。
var finishScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if not status then
	return -1
end
if status ~= '1' then
	return 1
end
local n = #KEYS - 2
for i = 1, n do
	redis.call('DECRBY', KEYS[i+2], tonumber(ARGV[i]))
end
redis.call('HSET', KEYS[1], 'status', ARGV[n+2])
redis.call('ZREM', KEYS[2], ARGV[n+1])
return 0
`)

type ReservationCache interface {
	Reserve(ctx context.Context, r domain.Reservation, advertised map[int64]int64) error
	Confirm(ctx context.Context, orderSN string) error
	Release(ctx context.Context, orderSN string) error
	FindByOrderSN(ctx context.Context, orderSN string) (domain.Reservation, error)
	// ExpiredOrderSNs 返回逻辑过期时间早于now的全部订单号
	ExpiredOrderSNs(ctx context.Context, now int64) ([]string, error)
	RemoveFromExpiryIndex(ctx context.Context, orderSN string) error
}

type reservationRedisCache struct {
	rdb redis.Cmdable
}

func NewReservationRedisCache(rdb redis.Cmdable) ReservationCache {
	return &reservationRedisCache{rdb: rdb}
}

func (c *reservationRedisCache) Reserve(ctx context.Context, r domain.Reservation, advertised map[int64]int64) error {
	data, err := json.Marshal(r.Items)
	if err != nil {
		return fmt.Errorf("序列化预占明细失败: %w", err)
	}
	keys := make([]string, 0, len(r.Items)+2)
	keys = append(keys, c.orderKey(r.OrderSN), c.expiryIndexKey())
	argv := make([]any, 0, 5+2*len(r.Items))
	argv = append(argv, string(data), r.ExpiresAt, r.Ctime, r.OrderSN, int64(safetyTTL.Seconds()))
	for _, it := range r.Items {
		keys = append(keys, c.holdsKey(it.SKUID))
		argv = append(argv, advertised[it.SKUID], it.Quantity)
	}
	res, err := reserveScript.Run(ctx, c.rdb, keys, argv...).Int()
	if err != nil {
		return fmt.Errorf("执行预占脚本失败: %w", err)
	}
	switch {
	case res == -1:
		return fmt.Errorf("%w: order_sn = %s", ErrDuplicateReservation, r.OrderSN)
	case res > 0:
		it := r.Items[res-1]
		return fmt.Errorf("%w: sku_id = %d, 请求数量 = %d", ErrInsufficientStock, it.SKUID, it.Quantity)
	}
	return nil
}

func (c *reservationRedisCache) Confirm(ctx context.Context, orderSN string) error {
	return c.finish(ctx, orderSN, domain.ReservationStatusConfirmed)
}

func (c *reservationRedisCache) Release(ctx context.Context, orderSN string) error {
	return c.finish(ctx, orderSN, domain.ReservationStatusReleased)
}

func (c *reservationRedisCache) finish(ctx context.Context, orderSN string, target domain.ReservationStatus) error {
	r, err := c.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(r.Items)+2)
	keys = append(keys, c.orderKey(orderSN), c.expiryIndexKey())
	argv := make([]any, 0, len(r.Items)+2)
	for _, it := range r.Items {
		keys = append(keys, c.holdsKey(it.SKUID))
		argv = append(argv, it.Quantity)
	}
	argv = append(argv, orderSN, strconv.Itoa(int(target.ToUint8())))
	res, err := finishScript.Run(ctx, c.rdb, keys, argv...).Int()
	if err != nil {
		return fmt.Errorf("执行预占终结脚本失败: %w", err)
	}
	if res == -1 {
		return fmt.Errorf("%w: order_sn = %s", ErrReservationNotFound, orderSN)
	}
	// res == 1: 已是终态, 幂等空操作
	return nil
}

func (c *reservationRedisCache) FindByOrderSN(ctx context.Context, orderSN string) (domain.Reservation, error) {
	vals, err := c.rdb.HGetAll(ctx, c.orderKey(orderSN)).Result()
	if err != nil {
		return domain.Reservation{}, err
	}
	if len(vals) == 0 {
		return domain.Reservation{}, fmt.Errorf("%w: order_sn = %s", ErrReservationNotFound, orderSN)
	}
	var items []domain.ReservationItem
	if err = json.Unmarshal([]byte(vals["items"]), &items); err != nil {
		return domain.Reservation{}, fmt.Errorf("解析预占明细失败: %w", err)
	}
	status, _ := strconv.Atoi(vals["status"])
	ctime, _ := strconv.ParseInt(vals["ctime"], 10, 64)
	expiresAt, _ := strconv.ParseInt(vals["expires_at"], 10, 64)
	return domain.Reservation{
		OrderSN:   orderSN,
		Items:     items,
		Status:    domain.ReservationStatus(status),
		Ctime:     ctime,
		ExpiresAt: expiresAt,
	}, nil
}

func (c *reservationRedisCache) ExpiredOrderSNs(ctx context.Context, now int64) ([]string, error) {
	return c.rdb.ZRangeByScore(ctx, c.expiryIndexKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now, 10),
	}).Result()
}

func (c *reservationRedisCache) RemoveFromExpiryIndex(ctx context.Context, orderSN string) error {
	return c.rdb.ZRem(ctx, c.expiryIndexKey(), orderSN).Err()
}

func (c *reservationRedisCache) orderKey(orderSN string) string {
	return fmt.Sprintf("reservation:order:%s", orderSN)
}

func (c *reservationRedisCache) holdsKey(skuID int64) string {
	return fmt.Sprintf("reservation:holds:%d", skuID)
}

func (c *reservationRedisCache) expiryIndexKey() string {
	return "reservation:expiring"
}
