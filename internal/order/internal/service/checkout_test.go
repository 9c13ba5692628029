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

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/eshop/internal/cart"
	cartmocks "github.com/ecodeclub/eshop/internal/cart/mocks"
	"github.com/ecodeclub/eshop/internal/inventory"
	inventorymocks "github.com/ecodeclub/eshop/internal/inventory/mocks"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	repomocks "github.com/ecodeclub/eshop/internal/order/internal/repository/mocks"
	"github.com/ecodeclub/eshop/internal/payment"
	paymentmocks "github.com/ecodeclub/eshop/internal/payment/mocks"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/eshop/internal/product"
	productmocks "github.com/ecodeclub/eshop/internal/product/mocks"
	"github.com/ecodeclub/eshop/internal/reservation"
	reservationmocks "github.com/ecodeclub/eshop/internal/reservation/mocks"
	"github.com/ecodeclub/eshop/internal/shipping"
	shippingmocks "github.com/ecodeclub/eshop/internal/shipping/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUID = int64(234)
	testTTL = 15 * time.Minute
)

type testMocks struct {
	repo           *repomocks.MockOrderRepository
	cartSvc        *cartmocks.MockService
	productSvc     *productmocks.MockService
	reservationSvc *reservationmocks.MockService
	inventorySvc   *inventorymocks.MockService
	shippingSvc    *shippingmocks.MockService
	paymentSvc     *paymentmocks.MockService
}

func newTestService(ctrl *gomock.Controller) (Service, testMocks, string) {
	m := testMocks{
		repo:           repomocks.NewMockOrderRepository(ctrl),
		cartSvc:        cartmocks.NewMockService(ctrl),
		productSvc:     productmocks.NewMockService(ctrl),
		reservationSvc: reservationmocks.NewMockService(ctrl),
		inventorySvc:   inventorymocks.NewMockService(ctrl),
		shippingSvc:    shippingmocks.NewMockService(ctrl),
		paymentSvc:     paymentmocks.NewMockService(ctrl),
	}
	// 固定时间戳和UUID让订单序列号可预期
	gen := sequencenumber.NewGeneratorWith(
		func(_ time.Time) int64 { return 1700000000000 },
		func() string { return "abcdefghijklmnopqrstuvwxyz" })
	sn, _ := gen.Generate(testUID)
	svc := NewService(m.repo, m.cartSvc, m.productSvc, m.reservationSvc,
		m.inventorySvc, m.shippingSvc, m.paymentSvc, gen, Config{ReservationTTL: testTTL})
	return svc, m, sn
}

func testReceiver() domain.Receiver {
	return domain.Receiver{Name: "王二", Phone: "13800000000"}
}

func testAddress() domain.Address {
	return domain.Address{Province: "广东", City: "深圳", Detail: "南山区科技园1号", Zip: "518000"}
}

func testCart() cart.Cart {
	return cart.Cart{
		Uid: testUID,
		Items: []cart.CartItem{
			{SKUSN: "sku-11", Quantity: 2},
			{SKUSN: "sku-12", Quantity: 1},
		},
	}
}

func testSKU1() product.SKU {
	return product.SKU{ID: 11, SN: "sku-11", SPUID: 1, Name: "机械键盘", Price: 28900, Stock: 10}
}

func testSKU2() product.SKU {
	return product.SKU{ID: 12, SN: "sku-12", SPUID: 1, Name: "无线鼠标", Price: 9900, Stock: 5}
}

func expectResolveCart(m testMocks) {
	m.cartSvc.EXPECT().GetCart(gomock.Any(), testUID).Return(testCart(), nil)
	m.productSvc.EXPECT().FindSKUBySN(gomock.Any(), "sku-11").Return(testSKU1(), nil)
	m.productSvc.EXPECT().FindSKUBySN(gomock.Any(), "sku-12").Return(testSKU2(), nil)
}

func expectReserve(m testMocks, sn string) {
	m.reservationSvc.EXPECT().Reserve(gomock.Any(), sn,
		[]reservation.ReservationItem{
			{SPUID: 1, SKUID: 11, Quantity: 2},
			{SPUID: 1, SKUID: 12, Quantity: 1},
		},
		map[int64]int64{11: 10, 12: 5},
		testTTL).Return(reservation.Reservation{OrderSN: sn}, nil)
}

// pendingOrder 是落库之后回查出来的待支付订单, 订单项已有自增ID
func pendingOrder(sn string, channel payment.ChannelType) domain.Order {
	return domain.Order{
		ID:             100,
		SN:             sn,
		BuyerID:        testUID,
		Channel:        int64(channel),
		SubtotalAmount: 67700,
		ShippingFee:    800,
		TotalAmount:    68500,
		Receiver:       testReceiver(),
		Address:        testAddress(),
		Status:         domain.StatusPending,
		Items: []domain.OrderItem{
			{ID: 1001, OrderID: 100, SPUID: 1, SKUID: 11, SKUSN: "sku-11", SKUName: "机械键盘", Price: 28900, Quantity: 2},
			{ID: 1002, OrderID: 100, SPUID: 1, SKUID: 12, SKUSN: "sku-12", SKUName: "无线鼠标", Price: 9900, Quantity: 1},
		},
	}
}

func expectCreatePendingOrder(m testMocks, sn string, channel payment.ChannelType) {
	m.shippingSvc.EXPECT().CalculateFee(gomock.Any(), shipping.Address(testAddress())).Return(int64(800), nil)
	m.repo.EXPECT().CreateOrder(gomock.Any(), domain.Order{
		SN:             sn,
		BuyerID:        testUID,
		Channel:        int64(channel),
		SubtotalAmount: 67700,
		ShippingFee:    800,
		TotalAmount:    68500,
		Receiver:       testReceiver(),
		Address:        testAddress(),
		Status:         domain.StatusPending,
		Items: []domain.OrderItem{
			{SPUID: 1, SKUID: 11, SKUSN: "sku-11", SKUName: "机械键盘", Price: 28900, Quantity: 2},
			{SPUID: 1, SKUID: 12, SKUSN: "sku-12", SKUName: "无线鼠标", Price: 9900, Quantity: 1},
		},
	}).Return(pendingOrder(sn, channel), nil)
}

func expectAllocateBatches(m testMocks) {
	m.inventorySvc.EXPECT().AllocateFIFO(gomock.Any(), int64(11), int64(2), int64(1001)).
		Return(inventory.Allocation{OrderItemID: 1001, BatchCode: "B-20260101-0001"}, nil)
	m.repo.EXPECT().UpdateOrderItemBatchCode(gomock.Any(), int64(1001), "B-20260101-0001").Return(nil)
	m.inventorySvc.EXPECT().AllocateFIFO(gomock.Any(), int64(12), int64(1), int64(1002)).
		Return(inventory.Allocation{OrderItemID: 1002, BatchCode: "B-20260105-0002"}, nil)
	m.repo.EXPECT().UpdateOrderItemBatchCode(gomock.Any(), int64(1002), "B-20260105-0002").Return(nil)
}

func expectRollback(m testMocks, sn string) {
	m.repo.EXPECT().UpdateOrderStatus(gomock.Any(), int64(100),
		domain.StatusPending, domain.StatusCancelled).Return(nil)
	m.reservationSvc.EXPECT().Release(gomock.Any(), sn).Return(nil)
	m.inventorySvc.EXPECT().Release(gomock.Any(), int64(1001)).Return(nil)
	m.inventorySvc.EXPECT().Release(gomock.Any(), int64(1002)).Return(nil)
	m.repo.EXPECT().DeleteOrderItems(gomock.Any(), int64(100)).Return(nil)
}

func TestService_Checkout_COD(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	expectResolveCart(m)
	expectReserve(m, sn)
	expectCreatePendingOrder(m, sn, payment.ChannelTypeCOD)
	expectAllocateBatches(m)
	m.cartSvc.EXPECT().ClearCart(gomock.Any(), testUID).Return(nil)
	m.shippingSvc.EXPECT().CreateShipment(gomock.Any(), sn,
		shipping.Receiver(testReceiver()), shipping.Address(testAddress()), int64(68500)).
		Return(shipping.Shipment{OrderSN: sn, Carrier: "SF", TrackingNumber: "SF123456789"}, nil)
	m.reservationSvc.EXPECT().Confirm(gomock.Any(), sn).Return(nil)
	m.productSvc.EXPECT().AdjustSKUStock(gomock.Any(), int64(11), int64(-2)).Return(nil)
	m.productSvc.EXPECT().AdjustSKUStock(gomock.Any(), int64(12), int64(-1)).Return(nil)
	m.repo.EXPECT().MarkOrderPaid(gomock.Any(), int64(100), "SF", "SF123456789").Return(nil)

	res, err := svc.Checkout(context.Background(), testUID, payment.ChannelTypeCOD, testReceiver(), testAddress())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, res.Order.Status)
	assert.Equal(t, "SF", res.Order.Carrier)
	assert.Equal(t, "SF123456789", res.Order.TrackingNumber)
	assert.Equal(t, int64(68500), res.Order.TotalAmount)
	assert.Empty(t, res.WechatCodeURL)
}

func TestService_Checkout_Wechat(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	expectResolveCart(m)
	expectReserve(m, sn)
	expectCreatePendingOrder(m, sn, payment.ChannelTypeWechat)
	expectAllocateBatches(m)
	m.cartSvc.EXPECT().ClearCart(gomock.Any(), testUID).Return(nil)
	m.paymentSvc.EXPECT().CreatePaymentURL(gomock.Any(), payment.ChannelTypeWechat,
		sn, "机械键盘 等2件商品", int64(68500)).Return("weixin://wxpay/bizpayurl?pr=xxx", nil)

	res, err := svc.Checkout(context.Background(), testUID, payment.ChannelTypeWechat, testReceiver(), testAddress())
	require.NoError(t, err)
	// 在线支付的订单停留在待支付, 等回调推进
	assert.Equal(t, domain.StatusPending, res.Order.Status)
	assert.Equal(t, "weixin://wxpay/bizpayurl?pr=xxx", res.WechatCodeURL)
}

func TestService_Checkout_UnsupportedChannel(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestService(ctrl)

	_, err := svc.Checkout(context.Background(), testUID, payment.ChannelType(99), testReceiver(), testAddress())
	assert.ErrorIs(t, err, ErrUnsupportedChannel)
}

func TestService_Checkout_EmptyCart(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, _ := newTestService(ctrl)

	m.cartSvc.EXPECT().GetCart(gomock.Any(), testUID).Return(cart.Cart{Uid: testUID}, nil)

	_, err := svc.Checkout(context.Background(), testUID, payment.ChannelTypeCOD, testReceiver(), testAddress())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestService_Checkout_AdvertisedStockTooLow(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, _ := newTestService(ctrl)

	// 展示库存只有1件, 预检直接拒绝, 不产生任何预占
	m.cartSvc.EXPECT().GetCart(gomock.Any(), testUID).Return(cart.Cart{
		Uid:   testUID,
		Items: []cart.CartItem{{SKUSN: "sku-11", Quantity: 2}},
	}, nil)
	sku := testSKU1()
	sku.Stock = 1
	m.productSvc.EXPECT().FindSKUBySN(gomock.Any(), "sku-11").Return(sku, nil)

	_, err := svc.Checkout(context.Background(), testUID, payment.ChannelTypeCOD, testReceiver(), testAddress())
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestService_Checkout_ReservationInsufficient(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	expectResolveCart(m)
	m.reservationSvc.EXPECT().
		Reserve(gomock.Any(), sn, gomock.Any(), gomock.Any(), testTTL).
		Return(reservation.Reservation{}, reservation.ErrInsufficientStock)

	_, err := svc.Checkout(context.Background(), testUID, payment.ChannelTypeCOD, testReceiver(), testAddress())
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestService_Checkout_BatchAllocationInsufficient(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	expectResolveCart(m)
	expectReserve(m, sn)
	expectCreatePendingOrder(m, sn, payment.ChannelTypeCOD)
	// 第一项分配成功, 第二项批次不足, 整单回滚
	m.inventorySvc.EXPECT().AllocateFIFO(gomock.Any(), int64(11), int64(2), int64(1001)).
		Return(inventory.Allocation{OrderItemID: 1001, BatchCode: "B-20260101-0001"}, nil)
	m.repo.EXPECT().UpdateOrderItemBatchCode(gomock.Any(), int64(1001), "B-20260101-0001").Return(nil)
	m.inventorySvc.EXPECT().AllocateFIFO(gomock.Any(), int64(12), int64(1), int64(1002)).
		Return(inventory.Allocation{}, inventory.ErrInsufficientBatchStock)
	expectRollback(m, sn)

	_, err := svc.Checkout(context.Background(), testUID, payment.ChannelTypeCOD, testReceiver(), testAddress())
	assert.ErrorIs(t, err, ErrInsufficientBatchStock)
}

func TestService_Checkout_ShipmentFailureRollsBack(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	expectResolveCart(m)
	expectReserve(m, sn)
	expectCreatePendingOrder(m, sn, payment.ChannelTypeCOD)
	expectAllocateBatches(m)
	m.cartSvc.EXPECT().ClearCart(gomock.Any(), testUID).Return(nil)
	m.shippingSvc.EXPECT().CreateShipment(gomock.Any(), sn,
		shipping.Receiver(testReceiver()), shipping.Address(testAddress()), int64(68500)).
		Return(shipping.Shipment{}, errors.New("承运商接口超时"))
	expectRollback(m, sn)

	_, err := svc.Checkout(context.Background(), testUID, payment.ChannelTypeCOD, testReceiver(), testAddress())
	assert.ErrorIs(t, err, ErrShipmentCreationFailed)
}

func TestService_Checkout_PaymentSetupFailureRollsBack(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	expectResolveCart(m)
	expectReserve(m, sn)
	expectCreatePendingOrder(m, sn, payment.ChannelTypeWechat)
	expectAllocateBatches(m)
	m.cartSvc.EXPECT().ClearCart(gomock.Any(), testUID).Return(nil)
	m.paymentSvc.EXPECT().CreatePaymentURL(gomock.Any(), payment.ChannelTypeWechat,
		sn, "机械键盘 等2件商品", int64(68500)).Return("", errors.New("微信预支付失败"))
	expectRollback(m, sn)

	_, err := svc.Checkout(context.Background(), testUID, payment.ChannelTypeWechat, testReceiver(), testAddress())
	assert.ErrorIs(t, err, ErrPaymentSetupFailed)
}

func TestService_HandlePaymentConfirmed(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	order := pendingOrder(sn, payment.ChannelTypeWechat)
	m.repo.EXPECT().FindOrderBySN(gomock.Any(), sn).Return(order, nil)
	m.shippingSvc.EXPECT().CreateShipment(gomock.Any(), sn,
		shipping.Receiver(testReceiver()), shipping.Address(testAddress()), int64(0)).
		Return(shipping.Shipment{OrderSN: sn, Carrier: "SF", TrackingNumber: "SF987654321"}, nil)
	m.reservationSvc.EXPECT().Confirm(gomock.Any(), sn).Return(nil)
	m.productSvc.EXPECT().AdjustSKUStock(gomock.Any(), int64(11), int64(-2)).Return(nil)
	m.productSvc.EXPECT().AdjustSKUStock(gomock.Any(), int64(12), int64(-1)).Return(nil)
	m.repo.EXPECT().MarkOrderPaid(gomock.Any(), int64(100), "SF", "SF987654321").Return(nil)

	err := svc.HandlePaymentConfirmed(context.Background(), sn)
	require.NoError(t, err)
}

func TestService_HandlePaymentConfirmed_Duplicate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	// 事件重复投递, 订单已是已支付, 不做任何事
	order := pendingOrder(sn, payment.ChannelTypeWechat)
	order.Status = domain.StatusPaid
	m.repo.EXPECT().FindOrderBySN(gomock.Any(), sn).Return(order, nil)

	err := svc.HandlePaymentConfirmed(context.Background(), sn)
	require.NoError(t, err)
}

func TestService_HandlePaymentConfirmed_ShipmentFailure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	order := pendingOrder(sn, payment.ChannelTypeWechat)
	m.repo.EXPECT().FindOrderBySN(gomock.Any(), sn).Return(order, nil)
	m.shippingSvc.EXPECT().CreateShipment(gomock.Any(), sn,
		shipping.Receiver(testReceiver()), shipping.Address(testAddress()), int64(0)).
		Return(shipping.Shipment{}, errors.New("承运商拒单"))
	// 钱已收到但发不出货: 归还两边库存, 订单进入支付失败态, 订单项保留
	m.reservationSvc.EXPECT().Release(gomock.Any(), sn).Return(nil)
	m.inventorySvc.EXPECT().Release(gomock.Any(), int64(1001)).Return(nil)
	m.inventorySvc.EXPECT().Release(gomock.Any(), int64(1002)).Return(nil)
	m.repo.EXPECT().UpdateOrderStatus(gomock.Any(), int64(100),
		domain.StatusPending, domain.StatusPaymentFailed).Return(nil)

	err := svc.HandlePaymentConfirmed(context.Background(), sn)
	assert.ErrorIs(t, err, ErrShipmentCreationFailed)
}

func TestService_HandlePaymentFailed(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	order := pendingOrder(sn, payment.ChannelTypeWechat)
	m.repo.EXPECT().FindOrderBySN(gomock.Any(), sn).Return(order, nil)
	expectRollback(m, sn)

	err := svc.HandlePaymentFailed(context.Background(), sn)
	require.NoError(t, err)
}

func TestService_CancelOrder(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	order := pendingOrder(sn, payment.ChannelTypeWechat)
	m.repo.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), sn, testUID).Return(order, nil)
	expectRollback(m, sn)

	err := svc.CancelOrder(context.Background(), testUID, sn)
	require.NoError(t, err)
}

func TestService_CancelOrder_NotPending(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	order := pendingOrder(sn, payment.ChannelTypeCOD)
	order.Status = domain.StatusPaid
	m.repo.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), sn, testUID).Return(order, nil)

	err := svc.CancelOrder(context.Background(), testUID, sn)
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestService_CancelOrder_ConcurrentlySettled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	// 读到的快照还是待支付, 但支付回调在取消落地前把订单结算掉了:
	// 状态CAS抢不到就不能再碰预占/批次/订单项
	order := pendingOrder(sn, payment.ChannelTypeWechat)
	m.repo.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), sn, testUID).Return(order, nil)
	m.repo.EXPECT().UpdateOrderStatus(gomock.Any(), int64(100),
		domain.StatusPending, domain.StatusCancelled).Return(repository.ErrInvalidStatusChange)
	paid := pendingOrder(sn, payment.ChannelTypeWechat)
	paid.Status = domain.StatusPaid
	m.repo.EXPECT().FindOrderBySN(gomock.Any(), sn).Return(paid, nil)

	err := svc.CancelOrder(context.Background(), testUID, sn)
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestService_CancelOrder_ResumesInterruptedRollback(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	// 上一次回滚在CAS之后崩溃: 订单已是已取消, 这次重试继续把补偿做完
	order := pendingOrder(sn, payment.ChannelTypeWechat)
	m.repo.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), sn, testUID).Return(order, nil)
	m.repo.EXPECT().UpdateOrderStatus(gomock.Any(), int64(100),
		domain.StatusPending, domain.StatusCancelled).Return(repository.ErrInvalidStatusChange)
	cancelled := pendingOrder(sn, payment.ChannelTypeWechat)
	cancelled.Status = domain.StatusCancelled
	m.repo.EXPECT().FindOrderBySN(gomock.Any(), sn).Return(cancelled, nil)
	m.reservationSvc.EXPECT().Release(gomock.Any(), sn).Return(nil)
	m.inventorySvc.EXPECT().Release(gomock.Any(), int64(1001)).Return(nil)
	m.inventorySvc.EXPECT().Release(gomock.Any(), int64(1002)).Return(nil)
	m.repo.EXPECT().DeleteOrderItems(gomock.Any(), int64(100)).Return(nil)

	err := svc.CancelOrder(context.Background(), testUID, sn)
	require.NoError(t, err)
}

func TestService_HandlePaymentFailed_ConcurrentlySettled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	// 失败事件和成功回调打架时以抢到状态CAS的一方为准, 迟到方静默退出
	order := pendingOrder(sn, payment.ChannelTypeWechat)
	m.repo.EXPECT().FindOrderBySN(gomock.Any(), sn).Return(order, nil)
	m.repo.EXPECT().UpdateOrderStatus(gomock.Any(), int64(100),
		domain.StatusPending, domain.StatusCancelled).Return(repository.ErrInvalidStatusChange)
	paid := pendingOrder(sn, payment.ChannelTypeWechat)
	paid.Status = domain.StatusPaid
	m.repo.EXPECT().FindOrderBySN(gomock.Any(), sn).Return(paid, nil)

	err := svc.HandlePaymentFailed(context.Background(), sn)
	require.NoError(t, err)
}

func TestService_CloseExpiredOrders(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	order := pendingOrder(sn, payment.ChannelTypeWechat)
	expectRollback(m, sn)

	err := svc.CloseExpiredOrders(context.Background(), []domain.Order{order})
	require.NoError(t, err)
}

func TestService_CloseExpiredOrders_SkipsConcurrentlySettled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m, sn := newTestService(ctrl)

	// 第一单在扫描后被支付回调结算, 跳过且不释放它的库存; 第二单正常回滚
	settled := pendingOrder(sn, payment.ChannelTypeWechat)
	m.repo.EXPECT().UpdateOrderStatus(gomock.Any(), int64(100),
		domain.StatusPending, domain.StatusCancelled).Return(repository.ErrInvalidStatusChange)
	paid := pendingOrder(sn, payment.ChannelTypeWechat)
	paid.Status = domain.StatusPaid
	m.repo.EXPECT().FindOrderBySN(gomock.Any(), sn).Return(paid, nil)

	expired := pendingOrder(sn, payment.ChannelTypeWechat)
	expired.ID = 101
	expired.SN = sn + "-2"
	expired.Items = []domain.OrderItem{
		{ID: 1003, OrderID: 101, SPUID: 1, SKUID: 11, SKUSN: "sku-11", SKUName: "机械键盘", Price: 28900, Quantity: 1},
	}
	m.repo.EXPECT().UpdateOrderStatus(gomock.Any(), int64(101),
		domain.StatusPending, domain.StatusCancelled).Return(nil)
	m.reservationSvc.EXPECT().Release(gomock.Any(), expired.SN).Return(nil)
	m.inventorySvc.EXPECT().Release(gomock.Any(), int64(1003)).Return(nil)
	m.repo.EXPECT().DeleteOrderItems(gomock.Any(), int64(101)).Return(nil)

	err := svc.CloseExpiredOrders(context.Background(), []domain.Order{settled, expired})
	require.NoError(t, err)
}
