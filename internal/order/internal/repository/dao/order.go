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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound        = gorm.ErrRecordNotFound
	ErrInvalidStatusChange  = errors.New("订单状态流转非法")
	ErrOrderItemNotFound    = errors.New("订单项不存在")
	ErrDuplicateOrderCreate = errors.New("订单序列号冲突")
)

type OrderDAO interface {
	CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error)
	FindOrderBySN(ctx context.Context, sn string) (Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error)
	List(ctx context.Context, offset, limit int, uid int64) ([]Order, error)
	Count(ctx context.Context, uid int64) (int64, error)
	// UpdateOrderStatus 带前置状态守卫的状态迁移, 0行受影响返回 ErrInvalidStatusChange
	UpdateOrderStatus(ctx context.Context, oid int64, from, to uint8) error
	// MarkOrderPaid 待支付订单置为已支付并回填承运信息
	MarkOrderPaid(ctx context.Context, oid int64, carrier, trackingNumber string) error
	UpdateOrderItemBatchCode(ctx context.Context, itemID int64, batchCode string) error
	DeleteOrderItems(ctx context.Context, oid int64) error
	// ListExpiredPendingOrders 创建时间早于ctime且仍处于待支付的订单
	ListExpiredPendingOrders(ctx context.Context, offset, limit int, ctime int64) ([]Order, error)
	CountExpiredPendingOrders(ctx context.Context, ctime int64) (int64, error)
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func (d *OrderGORMDAO) CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		order.Ctime, order.Utime = now, now
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = order.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return 0, err
	}
	return order.Id, nil
}

func (d *OrderGORMDAO) FindOrderBySN(ctx context.Context, sn string) (Order, error) {
	var order Order
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&order).Error
	return order, err
}

func (d *OrderGORMDAO) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var order Order
	err := d.db.WithContext(ctx).
		Where("sn = ? AND buyer_id = ?", sn, buyerID).First(&order).Error
	return order, err
}

func (d *OrderGORMDAO) FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error) {
	var items []OrderItem
	err := d.db.WithContext(ctx).Where("order_id = ?", oid).Find(&items).Error
	return items, err
}

func (d *OrderGORMDAO) List(ctx context.Context, offset, limit int, uid int64) ([]Order, error) {
	var orders []Order
	err := d.db.WithContext(ctx).
		Where("buyer_id = ?", uid).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (d *OrderGORMDAO) Count(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ?", uid).Count(&count).Error
	return count, err
}

func (d *OrderGORMDAO) UpdateOrderStatus(ctx context.Context, oid int64, from, to uint8) error {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", oid, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidStatusChange
	}
	return nil
}

func (d *OrderGORMDAO) MarkOrderPaid(ctx context.Context, oid int64, carrier, trackingNumber string) error {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", oid, 1).
		Updates(map[string]any{
			"status":          2,
			"carrier":         carrier,
			"tracking_number": trackingNumber,
			"utime":           time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidStatusChange
	}
	return nil
}

func (d *OrderGORMDAO) UpdateOrderItemBatchCode(ctx context.Context, itemID int64, batchCode string) error {
	res := d.db.WithContext(ctx).Model(&OrderItem{}).
		Where("id = ?", itemID).
		Updates(map[string]any{
			"batch_code": batchCode,
			"utime":      time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderItemNotFound
	}
	return nil
}

func (d *OrderGORMDAO) DeleteOrderItems(ctx context.Context, oid int64) error {
	return d.db.WithContext(ctx).Where("order_id = ?", oid).Delete(&OrderItem{}).Error
}

func (d *OrderGORMDAO) ListExpiredPendingOrders(ctx context.Context, offset, limit int, ctime int64) ([]Order, error) {
	var orders []Order
	err := d.db.WithContext(ctx).
		Where("status = ? AND ctime < ?", 1, ctime).
		Order("ctime ASC").
		Offset(offset).Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (d *OrderGORMDAO) CountExpiredPendingOrders(ctx context.Context, ctime int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("status = ? AND ctime < ?", 1, ctime).Count(&count).Error
	return count, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{})
}

type Order struct {
	Id             int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN             string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId        int64  `gorm:"not null;index:idx_buyer_id,comment:购买者ID"`
	Channel        int64  `gorm:"type:tinyint unsigned;not null;comment:支付渠道 1=货到付款 2=微信"`
	SubtotalAmount int64  `gorm:"not null;comment:商品小计;单位为分, 999表示9.99元"`
	ShippingFee    int64  `gorm:"not null;comment:运费;单位为分"`
	TotalAmount    int64  `gorm:"not null;comment:实付总额;单位为分"`
	ReceiverName   string `gorm:"type:varchar(255);not null;comment:收件人姓名"`
	ReceiverPhone  string `gorm:"type:varchar(63);not null;comment:收件人电话"`
	Province       string `gorm:"type:varchar(63);not null;comment:省"`
	City           string `gorm:"type:varchar(63);not null;comment:市"`
	Detail         string `gorm:"type:varchar(512);not null;comment:详细地址"`
	Zip            string `gorm:"type:varchar(31);not null;comment:邮编"`
	Carrier        string `gorm:"type:varchar(63);comment:承运商"`
	TrackingNumber string `gorm:"type:varchar(255);comment:运单号"`
	Status         uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status_ctime;comment:订单状态 1=待支付 2=已支付 3=已取消 4=支付失败 5=已揽收 6=已签收"`
	Ctime          int64  `gorm:"index:idx_status_ctime"`
	Utime          int64
}

type OrderItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId   int64  `gorm:"not null;index:idx_order_id,comment:订单自增ID"`
	SPUId     int64  `gorm:"not null;comment:SPU自增ID"`
	SKUId     int64  `gorm:"not null;index:idx_sku_id,comment:SKU自增ID"`
	SKUSN     string `gorm:"type:varchar(255);not null;comment:SKU序列号"`
	SKUName   string `gorm:"type:varchar(255);not null;comment:SKU名称"`
	Price     int64  `gorm:"not null;comment:下单时单价快照;单位为分, 999表示9.99元"`
	Quantity  int64  `gorm:"not null;comment:购买数量"`
	BatchCode string `gorm:"type:varchar(255);comment:履约批次号, FIFO分配成功后回填"`
	Ctime     int64
	Utime     int64
}
