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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDuplicatedBatchCode    = errors.New("批次号冲突")
	ErrInsufficientBatchStock = errors.New("批次库存不足")
	ErrBatchCorrupted         = errors.New("批次剩余数量非法")
)

type InventoryDAO interface {
	CreateBatch(ctx context.Context, b StockBatch) (int64, error)
	FindBatchesBySKUID(ctx context.Context, skuID int64) ([]StockBatch, error)
	TotalRemainingBySKUID(ctx context.Context, skuID int64) (int64, error)
	// AllocateFIFO 在单个事务内按入库时间先进先出地消耗批次。
	// 批次不够时整个事务回滚, 不会留下部分分配。
	AllocateFIFO(ctx context.Context, skuID, qty, orderItemID int64) ([]StockAllocation, error)
	FindAllocationsByOrderItemID(ctx context.Context, orderItemID int64) ([]StockAllocation, error)
	// ReleaseByOrderItemID 把订单项占用的数量逐批次加回去, 可重复调用。
	ReleaseByOrderItemID(ctx context.Context, orderItemID int64) error
}

type InventoryGORMDAO struct {
	db *egorm.Component
}

func NewInventoryGORMDAO(db *egorm.Component) InventoryDAO {
	return &InventoryGORMDAO{db: db}
}

func (d *InventoryGORMDAO) CreateBatch(ctx context.Context, b StockBatch) (int64, error) {
	now := time.Now().UnixMilli()
	b.Ctime, b.Utime = now, now
	if b.ImportedAt == 0 {
		b.ImportedAt = now
	}
	b.RemainingQuantity = b.ImportedQuantity
	if err := d.db.WithContext(ctx).Create(&b).Error; err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicatedBatchCode
			}
		}
		return 0, err
	}
	return b.Id, nil
}

func (d *InventoryGORMDAO) FindBatchesBySKUID(ctx context.Context, skuID int64) ([]StockBatch, error) {
	var res []StockBatch
	err := d.db.WithContext(ctx).
		Where("sku_id = ?", skuID).
		Order("imported_at ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (d *InventoryGORMDAO) TotalRemainingBySKUID(ctx context.Context, skuID int64) (int64, error) {
	var total int64
	err := d.db.WithContext(ctx).Model(&StockBatch{}).
		Where("sku_id = ?", skuID).
		Select("COALESCE(SUM(remaining_quantity), 0)").
		Scan(&total).Error
	return total, err
}

func (d *InventoryGORMDAO) AllocateFIFO(ctx context.Context, skuID, qty, orderItemID int64) ([]StockAllocation, error) {
	var allocations []StockAllocation
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 幂等: 订单项已有未释放的分配记录时直接返回
		var existing []StockAllocation
		if err := tx.Where("order_item_id = ? AND status = ?",
			orderItemID, AllocationStatusAllocated).Find(&existing).Error; err != nil {
			return err
		}
		if len(existing) > 0 {
			allocations = existing
			return nil
		}

		var batches []StockBatch
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("sku_id = ? AND remaining_quantity > 0", skuID).
			Order("imported_at ASC, id ASC").
			Find(&batches).Error; err != nil {
			return err
		}

		now := time.Now().UnixMilli()
		need := qty
		for _, b := range batches {
			if need == 0 {
				break
			}
			take := need
			if take > b.RemainingQuantity {
				take = b.RemainingQuantity
			}
			if err := tx.Model(&StockBatch{}).
				Where("id = ?", b.Id).
				Updates(map[string]any{
					"remaining_quantity": gorm.Expr("remaining_quantity - ?", take),
					"utime":              now,
				}).Error; err != nil {
				return err
			}
			a := StockAllocation{
				OrderItemId: orderItemID,
				BatchId:     b.Id,
				BatchCode:   b.BatchCode,
				Quantity:    take,
				Status:      AllocationStatusAllocated,
				Ctime:       now,
				Utime:       now,
			}
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
			allocations = append(allocations, a)
			need -= take
		}
		if need > 0 {
			// 返回错误让整个事务回滚, 已经扣掉的批次会被还原
			return fmt.Errorf("%w: sku_id = %d, 缺口 = %d", ErrInsufficientBatchStock, skuID, need)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return allocations, nil
}

func (d *InventoryGORMDAO) FindAllocationsByOrderItemID(ctx context.Context, orderItemID int64) ([]StockAllocation, error) {
	var res []StockAllocation
	err := d.db.WithContext(ctx).
		Where("order_item_id = ?", orderItemID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (d *InventoryGORMDAO) ReleaseByOrderItemID(ctx context.Context, orderItemID int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var allocations []StockAllocation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_item_id = ? AND status = ?",
				orderItemID, AllocationStatusAllocated).
			Find(&allocations).Error; err != nil {
			return err
		}
		// 没有未释放的分配记录, 视为已经释放过
		if len(allocations) == 0 {
			return nil
		}
		now := time.Now().UnixMilli()
		for _, a := range allocations {
			res := tx.Model(&StockBatch{}).
				Where("id = ? AND remaining_quantity + ? <= imported_quantity", a.BatchId, a.Quantity).
				Updates(map[string]any{
					"remaining_quantity": gorm.Expr("remaining_quantity + ?", a.Quantity),
					"utime":              now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: batch_id = %d", ErrBatchCorrupted, a.BatchId)
			}
		}
		return tx.Model(&StockAllocation{}).
			Where("order_item_id = ? AND status = ?",
				orderItemID, AllocationStatusAllocated).
			Updates(map[string]any{
				"status": AllocationStatusReleased,
				"utime":  now,
			}).Error
	})
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&StockBatch{}, &StockAllocation{})
}

const (
	AllocationStatusAllocated = 1
	AllocationStatusReleased  = 2
)

type StockBatch struct {
	Id                int64  `gorm:"primaryKey;autoIncrement;comment:批次自增ID"`
	SPUID             int64  `gorm:"column:spu_id;not null;comment:商品SPU自增ID"`
	SKUID             int64  `gorm:"column:sku_id;not null;index:idx_sku_imported,priority:1;comment:商品SKU自增ID"`
	BatchCode         string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_batch_code;comment:批次号,人工可追溯"`
	ImportedQuantity  int64  `gorm:"not null;comment:入库数量"`
	RemainingQuantity int64  `gorm:"not null;comment:剩余数量, 0 <= 剩余 <= 入库"`
	ImportPrice       int64  `gorm:"not null;default:0;comment:入库单价;单位为分, 0表示未记录"`
	ImportedAt        int64  `gorm:"not null;index:idx_sku_imported,priority:2;comment:入库时间"`
	Ctime             int64
	Utime             int64
}

type StockAllocation struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:分配记录自增ID"`
	OrderItemId int64  `gorm:"not null;index:idx_order_item_id;comment:订单项自增ID"`
	BatchId     int64  `gorm:"not null;index:idx_batch_id;comment:批次自增ID"`
	BatchCode   string `gorm:"type:varchar(64);not null;comment:批次号冗余,便于追溯"`
	Quantity    int64  `gorm:"not null;comment:从该批次消耗的数量"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=已分配 2=已释放"`
	Ctime       int64
	Utime       int64
}
